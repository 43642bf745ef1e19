package graph

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// Digest - 256 битный хеш, совместим с source.File.Hash.
type Digest [32]byte

// moduleDigest binds a module's identifier to its content hash; the same
// bytes under another path give a different digest.
func moduleDigest(m *Module) Digest {
	h := sha256.New()
	_, _ = io.WriteString(h, m.Path)
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(m.File.Hash[:])
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// Fingerprint chains the module digests in Order. Two builds with equal
// fingerprints emit the same bundle.
func (g *Graph) Fingerprint() string {
	order := g.Order()
	if len(order) == 0 {
		return ""
	}
	h := sha256.New()
	for _, m := range order {
		d := moduleDigest(m)
		_, _ = h.Write(d[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}
