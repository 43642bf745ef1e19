package buildpipeline

import (
	"os"
	"path/filepath"

	"jsbundle/internal/errs"
)

// writeAtomic replaces path with content via a temp file in the same
// directory, so a failed build never leaves a partial bundle.
func writeAtomic(path string, content []byte) (err error) {
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o750); err != nil {
		return errs.FileWrite(path, err)
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return errs.FileWrite(path, err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()
	if _, err = f.Write(content); err != nil {
		return errs.FileWrite(path, err)
	}
	if err = f.Close(); err != nil {
		return errs.FileWrite(path, err)
	}
	// #nosec G302 -- bundles are plain readable scripts
	if err = os.Chmod(f.Name(), 0o644); err != nil {
		return errs.FileWrite(path, err)
	}
	if err = os.Rename(f.Name(), path); err != nil {
		return errs.FileWrite(path, err)
	}
	return nil
}
