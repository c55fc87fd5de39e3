package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tscheck/tscheck/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// optionsFile is the YAML shape of tscheck.yaml. Pointer fields distinguish
// "unset" from zero values so the file only overrides what it declares.
type optionsFile struct {
	Project      string   `yaml:"project"`
	MaxDepth     *int     `yaml:"maxDepth"`
	MaxFiles     *int     `yaml:"maxFiles"`
	Recursive    *bool    `yaml:"recursive"`
	Cache        *bool    `yaml:"cache"`
	SkipLibCheck *bool    `yaml:"skipLibCheck"`
	Include      []string `yaml:"include"`
}

// LoadOptions walks upward from startDir for a tscheck.yaml and merges it
// over the given base options. A missing file returns base unchanged;
// a malformed file is a configuration error.
func LoadOptions(startDir string, base domain.CheckOptions) (domain.CheckOptions, error) {
	path, found, err := findOptionsFile(startDir)
	if err != nil || !found {
		return base, err
	}

	// #nosec G304 -- path was located by the upward walk
	data, err := os.ReadFile(path)
	if err != nil {
		return base, zerr.With(zerr.With(domain.ErrConfigRead, "cause", err.Error()), "path", path)
	}

	var file optionsFile
	if parseErr := yaml.Unmarshal(data, &file); parseErr != nil {
		err := zerr.With(domain.ErrConfigParse, "cause", parseErr.Error())
		return base, zerr.With(err, "path", path)
	}

	if file.Project != "" {
		if filepath.IsAbs(file.Project) {
			base.ConfigPath = file.Project
		} else {
			base.ConfigPath = filepath.Join(filepath.Dir(path), file.Project)
		}
	}
	if file.MaxDepth != nil {
		base.MaxDepth = *file.MaxDepth
	}
	if file.MaxFiles != nil {
		base.MaxFiles = *file.MaxFiles
	}
	if file.Recursive != nil {
		base.Recursive = *file.Recursive
	}
	if file.Cache != nil {
		base.Cache = *file.Cache
	}
	if file.SkipLibCheck != nil {
		base.SkipLibCheck = *file.SkipLibCheck
	}
	base.ExtraIncludes = append(base.ExtraIncludes, file.Include...)

	return base, nil
}

func findOptionsFile(startDir string) (string, bool, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, zerr.With(domain.ErrConfigRead, "cause", err.Error())
	}

	for dir := abs; ; dir = filepath.Dir(dir) {
		candidate := filepath.Join(dir, domain.OptionsFileName)
		info, statErr := os.Stat(candidate)
		switch {
		case statErr == nil && !info.IsDir():
			return candidate, true, nil
		case statErr != nil && !errors.Is(statErr, fs.ErrNotExist):
			return "", false, zerr.With(zerr.With(domain.ErrConfigRead, "cause", statErr.Error()), "path", candidate)
		}
		if filepath.Dir(dir) == dir {
			return "", false, nil
		}
	}
}
