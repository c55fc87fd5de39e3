package config

import "encoding/json"

// tsconfigFile mirrors the subset of tsconfig.json the locator cares about.
// compilerOptions stays a raw map so unknown options survive the merge and
// feed the fingerprint via the origin bytes.
type tsconfigFile struct {
	Extends         extendsList    `json:"extends"`
	CompilerOptions map[string]any `json:"compilerOptions"`
	Include         []string       `json:"include"`
	Exclude         []string       `json:"exclude"`
	Files           []string       `json:"files"`
}

// extendsList accepts both the string and the array form of "extends".
// In the array form later entries override earlier ones, and the deriving
// file overrides all of them.
type extendsList []string

func (e *extendsList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*e = extendsList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*e = many
	return nil
}
