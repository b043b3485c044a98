package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/logicossoftware/go-cfb"
)

// addDir mirrors the directory at path under the storage at parent.
// Stream contents are not read here: each file is registered with its
// current size and read when the encoder serializes that stream.
func addDir(b *cfb.Builder, parent int, path string) error {
	list, err := os.ReadDir(path)
	if err != nil {
		return err
	}
	for _, de := range list {
		full := filepath.Join(path, de.Name())
		if de.IsDir() {
			idx, err := b.AddStorage(parent, de.Name())
			if err != nil {
				return err
			}
			if err := addDir(b, idx, full); err != nil {
				return err
			}
			continue
		}
		if !de.Type().IsRegular() {
			continue
		}
		info, err := de.Info()
		if err != nil {
			return err
		}
		if info.Size() > int64(^uint32(0)) {
			return fmt.Errorf("%s: file too large for a stream", full)
		}
		_, err = b.AddStreamFunc(parent, de.Name(), uint32(info.Size()), func() ([]byte, error) {
			return os.ReadFile(full)
		})
		if err != nil {
			return err
		}
	}
	return nil
}
