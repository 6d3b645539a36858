package pathlib

import (
	"os"
	"path/filepath"
)

func IsFile(pathname string) bool {
	stat, err := os.Stat(pathname)
	return err == nil && stat.Mode().IsRegular()
}

func EnsureDirectory(directory string) (string, error) {
	err := os.MkdirAll(directory, 0o750)
	if err != nil {
		return "", err
	}
	return directory, nil
}

// WriteFile creates parent directories as needed, so that output
// locations like build/audit/bom.yaml just work.
func WriteFile(filename string, blob []byte, mode os.FileMode) error {
	_, err := EnsureDirectory(filepath.Dir(filename))
	if err != nil {
		return err
	}
	return os.WriteFile(filename, blob, mode)
}
