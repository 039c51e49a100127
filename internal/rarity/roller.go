package rarity

import (
	"math/rand/v2"

	"github.com/curioboard/curio/internal/domain"
)

// Source supplies uniform random draws. The production source is backed by
// the global math/rand/v2 generator; tests inject a seeded variant so
// rolls are reproducible.
type Source interface {
	Uint32() uint32
	Intn(n int) int
}

type mathSource struct{}

func (mathSource) Uint32() uint32 {
	return rand.Uint32() //nolint:gosec // Game logic randomness, not security critical
}

func (mathSource) Intn(n int) int {
	return rand.IntN(n) //nolint:gosec // Game logic randomness, not security critical
}

// NewSource returns the production random source.
func NewSource() Source {
	return mathSource{}
}

type seededSource struct {
	rng *rand.Rand
}

func (s *seededSource) Uint32() uint32 { return s.rng.Uint32() }

func (s *seededSource) Intn(n int) int { return s.rng.IntN(n) }

// NewSeededSource returns a reproducible source for tests. It is not safe
// for concurrent use.
func NewSeededSource(seed uint64) Source {
	return &seededSource{rng: rand.New(rand.NewPCG(seed, 0))}
}

// Roller maps uniform 32-bit draws to rarity tiers.
type Roller struct {
	src Source
}

// NewRoller creates a Roller backed by src.
func NewRoller(src Source) *Roller {
	return &Roller{src: src}
}

// Roll draws one rarity tier. Unique is never returned; those items are
// mint-only.
func (r *Roller) Roll() domain.Rarity {
	roll := r.src.Uint32()
	switch {
	case roll >= LegendaryThreshold:
		return domain.RarityLegendary
	case roll >= UltraRareThreshold:
		return domain.RarityUltraRare
	case roll >= RareThreshold:
		return domain.RarityRare
	case roll >= UncommonThreshold:
		return domain.RarityUncommon
	default:
		return domain.RarityCommon
	}
}

// Pattern draws an opaque cosmetic seed for a freshly minted drop.
func (r *Roller) Pattern() uint16 {
	return uint16(r.src.Uint32())
}
