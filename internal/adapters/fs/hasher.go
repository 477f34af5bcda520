package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/shelf/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher fingerprints manifest content with xxhash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint returns the hex encoded xxhash of data.
func (h *Hasher) Fingerprint(data []byte) string {
	digest := xxhash.New()
	_, _ = digest.Write(data)
	return fmt.Sprintf("%016x", digest.Sum64())
}
