package engine

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/dependencies/random"
)

// PieceSource picks the kind of the next piece.
type PieceSource interface {
	Next() Kind
}

// UniformSource samples the seven kinds with equal probability.
type UniformSource struct {
	rng random.Random
}

// NewUniformSource creates a source drawing from rng.
func NewUniformSource(rng random.Random) *UniformSource {
	return &UniformSource{rng: rng}
}

// Next returns a uniformly chosen kind.
func (s *UniformSource) Next() Kind {
	return Kinds[s.rng.Intn(len(Kinds))]
}

// SequenceSource replays a fixed list of kinds, wrapping around at the end.
type SequenceSource struct {
	kinds []Kind
	next  int
}

// NewSequenceSource creates a source cycling through kinds. It panics if
// kinds is empty or holds an unknown kind.
func NewSequenceSource(kinds ...Kind) *SequenceSource {
	if len(kinds) == 0 {
		panic("engine: empty piece sequence")
	}
	for _, k := range kinds {
		if !k.Valid() {
			panic(fmt.Sprintf("engine: invalid piece kind %d in sequence", k))
		}
	}
	return &SequenceSource{kinds: kinds}
}

// Next returns the next kind in the sequence.
func (s *SequenceSource) Next() Kind {
	k := s.kinds[s.next]
	s.next = (s.next + 1) % len(s.kinds)
	return k
}
