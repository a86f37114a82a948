// Package keycodec issues raw API key secrets and computes their one-way
// hashes.
//
// A raw secret looks like "kk_" followed by 64 lowercase hex characters
// (32 random bytes). Its first PrefixLength characters are not secret and
// are stored in clear for display.
package keycodec

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/dmitrijs2005/keykeeper/internal/common"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Tag marks every raw secret issued by this service.
	Tag = "kk_"
	// PrefixLength is the number of leading characters kept for display.
	PrefixLength = len(Tag) + 8
	// MinCost is the lowest accepted bcrypt work factor.
	MinCost = bcrypt.DefaultCost

	randomBytes = 32
)

// randReader is a seam for tests.
var randReader io.Reader = rand.Reader

// Secret is the result of issuing a new key. Raw must be handed to the caller
// once and then dropped.
type Secret struct {
	Raw    string
	Prefix string
	Hash   string
}

// Codec issues and verifies secrets with a fixed bcrypt cost.
type Codec struct {
	cost int
}

// New returns a Codec hashing with the given bcrypt cost. Costs below MinCost
// are raised to MinCost.
func New(cost int) (*Codec, error) {
	if cost < MinCost {
		cost = MinCost
	}
	if cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d exceeds maximum %d", cost, bcrypt.MaxCost)
	}
	return &Codec{cost: cost}, nil
}

// Cost returns the bcrypt work factor in use.
func (c *Codec) Cost() int {
	return c.cost
}

// Issue generates a new random secret together with its prefix and hash.
func (c *Codec) Issue() (*Secret, error) {
	buf := make([]byte, randomBytes)
	if _, err := io.ReadFull(randReader, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrEntropySource, err)
	}

	raw := Tag + hex.EncodeToString(buf)

	hash, err := bcrypt.GenerateFromPassword([]byte(raw), c.cost)
	if err != nil {
		return nil, fmt.Errorf("hash secret: %w", err)
	}

	return &Secret{Raw: raw, Prefix: Prefix(raw), Hash: string(hash)}, nil
}

// Verify reports whether raw matches hash, using bcrypt's constant-time
// comparison.
func (c *Codec) Verify(raw, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw))
	return err == nil
}

// Prefix returns the display prefix of a raw secret.
func Prefix(raw string) string {
	if len(raw) <= PrefixLength {
		return raw
	}
	return raw[:PrefixLength]
}

// IsWellFormed reports whether s has the shape of a secret issued here.
func IsWellFormed(s string) bool {
	if len(s) != len(Tag)+2*randomBytes || s[:len(Tag)] != Tag {
		return false
	}
	_, err := hex.DecodeString(s[len(Tag):])
	return err == nil
}

