package config

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// LocalConfigPath is checked before the user config.
const LocalConfigPath = ".pgtail/config.yaml"

// UserConfigDir returns ~/.config/pgtail.
func UserConfigDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "pgtail"), nil
}

// UserConfigPath returns ~/.config/pgtail/config.yaml.
func UserConfigPath() (string, error) {
	dir, err := UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	return homedir.Expand(path)
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
