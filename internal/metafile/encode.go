package metafile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

type Format uint8

const (
	FormatJSON Format = iota
	FormatMsgpack
)

func (f Format) String() string {
	if f == FormatMsgpack {
		return "msgpack"
	}
	return "json"
}

// FormatFor picks the encoding from the file extension: .mp and .msgpack
// are msgpack, everything else is JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp", ".msgpack":
		return FormatMsgpack
	default:
		return FormatJSON
	}
}

// Encode writes mf to w.
func (mf *Metafile) Encode(w io.Writer, f Format) error {
	switch f {
	case FormatMsgpack:
		enc := msgpack.NewEncoder(w)
		// детерминированный порядок ключей map
		enc.SetSortMapKeys(true)
		return enc.Encode(mf)
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(mf)
	}
}

// Decode reads a metafile written by Encode.
func Decode(r io.Reader, f Format) (*Metafile, error) {
	var mf Metafile
	var err error
	switch f {
	case FormatMsgpack:
		err = msgpack.NewDecoder(r).Decode(&mf)
	default:
		err = json.NewDecoder(r).Decode(&mf)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s metafile: %w", f, err)
	}
	return &mf, nil
}

// WriteFile encodes mf into path, choosing the format by extension.
// The file is replaced atomically.
func (mf *Metafile) WriteFile(path string) (err error) {
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".metafile-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()
	if err = mf.Encode(f, FormatFor(path)); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), path)
}

// ReadFile loads a metafile written by WriteFile.
func ReadFile(path string) (*Metafile, error) {
	f, err := os.Open(path) // #nosec G304 -- path is provided by the caller
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return Decode(f, FormatFor(path))
}
