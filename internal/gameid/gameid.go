// Package gameid generates sortable hand identifiers: UUIDv7 values encoded
// as 26 characters of Crockford base32, the TypeID suffix format.
package gameid

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/coder/quartz"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// RandSource interface for dependency injection of randomness.
// *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	IntN(n int) int
}

// Generator creates IDs from a clock and an optional RandSource. A nil
// RandSource uses crypto/rand. A Generator is not safe for concurrent use
// when its RandSource is not.
type Generator struct {
	randSource RandSource
	clock      quartz.Clock
}

// NewGenerator creates a generator. Pass a seeded RandSource and a mock clock
// for reproducible IDs.
func NewGenerator(randSource RandSource, clock quartz.Clock) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{randSource: randSource, clock: clock}
}

// Generate creates a new ID from the real clock and crypto/rand.
func Generate() string {
	return NewGenerator(nil, nil).Generate()
}

// Generate creates a new ID.
func (g *Generator) Generate() string {
	return encodeBase32(g.generateUUIDv7())
}

// generateUUIDv7 creates a 128-bit UUIDv7
func (g *Generator) generateUUIDv7() [16]byte {
	var uuid [16]byte

	// UUIDv7 format:
	// 48-bit timestamp (milliseconds since Unix epoch)
	// 4-bit version (0111), 2-bit variant (10), the rest random
	now := g.clock.Now().UnixMilli()
	for i := 0; i < 6; i++ {
		uuid[i] = byte(now >> (40 - 8*i))
	}

	if g.randSource != nil {
		for i := 6; i < 16; i++ {
			uuid[i] = byte(g.randSource.IntN(256))
		}
	} else if _, err := rand.Read(uuid[6:]); err != nil {
		panic("failed to generate random bytes: " + err.Error())
	}

	uuid[6] = (uuid[6] & 0x0f) | 0x70
	uuid[8] = (uuid[8] & 0x3f) | 0x80

	return uuid
}

// encodeBase32 encodes 128 bits as 26 characters. The value is treated as
// 130 bits with two leading zero bits, so the first character is 0-7.
func encodeBase32(data [16]byte) string {
	var sb strings.Builder
	sb.Grow(26)
	for i := 0; i < 26; i++ {
		var value byte
		for b := 0; b < 5; b++ {
			value <<= 1
			if pos := i*5 + b - 2; pos >= 0 {
				value |= (data[pos/8] >> (7 - pos%8)) & 1
			}
		}
		sb.WriteByte(alphabet[value])
	}
	return sb.String()
}

func decodeBase32(id string) ([16]byte, error) {
	var data [16]byte
	if err := Validate(id); err != nil {
		return data, err
	}
	for i := 0; i < 26; i++ {
		value := byte(strings.IndexByte(alphabet, id[i]))
		for b := 0; b < 5; b++ {
			pos := i*5 + b - 2
			if pos < 0 {
				continue
			}
			bit := (value >> (4 - b)) & 1
			data[pos/8] |= bit << (7 - pos%8)
		}
	}
	return data, nil
}

// Timestamp returns the creation time embedded in id.
func Timestamp(id string) (time.Time, error) {
	data, err := decodeBase32(id)
	if err != nil {
		return time.Time{}, err
	}
	var ms int64
	for i := 0; i < 6; i++ {
		ms = ms<<8 | int64(data[i])
	}
	return time.UnixMilli(ms), nil
}

// Validate checks if an ID is valid (26 characters, valid base32)
func Validate(id string) error {
	if len(id) != 26 {
		return fmt.Errorf("game ID must be exactly 26 characters, got %d", len(id))
	}

	// Two padding bits keep the first character within 0-7
	if id[0] > '7' {
		return fmt.Errorf("game ID first character must be 0-7, got %c", id[0])
	}

	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}

	return nil
}
