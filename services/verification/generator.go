package verification

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// CodeGenerator produces the numeric codes handed to recipients. It is an
// interface so tests can substitute deterministic codes.
type CodeGenerator interface {
	Generate() (string, error)
}

// RandomGenerator draws codes uniformly over the full numeric range for the
// configured length. Leading zeros are permitted: "000000" is a valid
// six-digit code.
type RandomGenerator struct {
	length int
}

func NewRandomGenerator(length int) *RandomGenerator {
	if length <= 0 {
		length = 6
	}
	return &RandomGenerator{length: length}
}

func (g *RandomGenerator) Generate() (string, error) {
	bound := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(g.length)), nil)

	n, err := rand.Int(rand.Reader, bound)
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}

	return fmt.Sprintf("%0*d", g.length, n), nil
}
