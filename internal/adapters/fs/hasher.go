package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/nest/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher fingerprints content with XXHash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashContent returns the XXHash of parts, each followed by a NUL separator.
func (h *Hasher) HashContent(parts ...string) string {
	hasher := xxhash.New()
	for _, part := range parts {
		_, _ = hasher.WriteString(part)
		_, _ = hasher.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}
