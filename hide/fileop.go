package hide

import (
	"fmt"
	"os"
	"path/filepath"
)

func readPayload(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot stat payload file %q: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("cannot embed non-regular file %q: %s", path, info.Mode().String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read payload file %q: %w", path, err)
	}
	return data, nil
}

// writeFile writes data through a temporary file and renames it into
// place, so a failed decode never leaves a partial output behind.
func writeFile(path string, data []byte) (err error) {
	outFile, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path))
	if err != nil {
		return fmt.Errorf("could not create temporary destination for %q: %w", path, err)
	}
	defer func() {
		if err != nil {
			outFile.Close()
			os.Remove(outFile.Name())
		}
	}()

	if _, err = outFile.Write(data); err != nil {
		return fmt.Errorf("could not write destination %q: %w", path, err)
	}
	if err = outFile.Sync(); err != nil {
		return fmt.Errorf("could not flush destination %q: %w", path, err)
	}
	if err = outFile.Close(); err != nil {
		return fmt.Errorf("could not close destination %q: %w", path, err)
	}
	if err = os.Rename(outFile.Name(), path); err != nil {
		return fmt.Errorf("could not rename destination %q: %w", path, err)
	}
	return nil
}
