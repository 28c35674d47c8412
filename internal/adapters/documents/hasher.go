package documents

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/render/internal/core/ports"
)

var _ ports.DocumentHasher = (*Hasher)(nil)

// Hasher computes document ids with XXHash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Hash returns the hex encoded XXHash of the document text.
func (h *Hasher) Hash(text string) string {
	hasher := xxhash.New()
	_, _ = hasher.WriteString(text)
	return fmt.Sprintf("%016x", hasher.Sum64())
}
