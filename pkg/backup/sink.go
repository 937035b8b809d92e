package backup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const backupFileMode = 0o600

// DirSink keeps backups as files in one local directory.
type DirSink struct {
	Dir string
}

func (d DirSink) Save(_ context.Context, name string, data []byte) error {
	if err := os.MkdirAll(d.Dir, 0o750); err != nil {
		return err
	}

	temp := filepath.Join(d.Dir, "."+name+".tmp")
	if err := os.WriteFile(temp, data, backupFileMode); err != nil {
		return err
	}

	return os.Rename(temp, filepath.Join(d.Dir, name))
}

func (d DirSink) List(_ context.Context, prefix string) ([]string, error) {
	entries, err := os.ReadDir(d.Dir)
	if os.IsNotExist(err) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	var names []string

	for _, entry := range entries {
		if entry.Type().IsRegular() && strings.HasPrefix(entry.Name(), prefix) {
			names = append(names, entry.Name())
		}
	}

	return names, nil
}

func (d DirSink) Remove(_ context.Context, name string) error {
	if filepath.Base(name) != name {
		return fmt.Errorf("refusing to remove %q outside %s", name, d.Dir)
	}

	return os.Remove(filepath.Join(d.Dir, name))
}
