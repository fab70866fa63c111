// Package config resolves the fixed settings of the fixture tool. Every value
// comes from the Defaults table; nothing is read from the environment, flags or
// a config file, so two runs in the same working directory always agree.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Settings holds the resolved settings for one run
type Settings struct {
	DestDir  string
	DirPerm  os.FileMode
	FilePerm os.FileMode
}

// Load resolves Settings from the Defaults table
func Load() (*Settings, error) {
	return resolve(Defaults)
}

func resolve(values map[string]string) (*Settings, error) {
	destDir, err := get(values, KeyDestDir)
	if err != nil {
		return nil, err
	}
	if destDir == "" {
		return nil, fmt.Errorf("%s cannot be empty", KeyDestDir)
	}

	dirPerm, err := getPerm(values, KeyDirPerm)
	if err != nil {
		return nil, err
	}

	filePerm, err := getPerm(values, KeyFilePerm)
	if err != nil {
		return nil, err
	}

	return &Settings{
		DestDir:  destDir,
		DirPerm:  dirPerm,
		FilePerm: filePerm,
	}, nil
}

func get(values map[string]string, key string) (string, error) {
	value, exists := values[key]
	if !exists {
		return "", fmt.Errorf("config key not found: %s", key)
	}
	return value, nil
}

func getPerm(values map[string]string, key string) (os.FileMode, error) {
	raw, err := get(values, key)
	if err != nil {
		return 0, err
	}
	perm, err := strconv.ParseUint(raw, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid permission for %s: %q: %w", key, raw, err)
	}
	if perm > 0777 {
		return 0, fmt.Errorf("permission for %s out of range: %s", key, raw)
	}
	return os.FileMode(perm), nil
}
