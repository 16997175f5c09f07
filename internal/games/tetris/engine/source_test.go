package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/dependencies/mocks"
	"github.com/vovakirdan/tui-tetris/internal/dependencies/random"
)

func TestUniformSourceMapsIndexToKind(t *testing.T) {
	src := NewUniformSource(mocks.NewMockRandom(0, 1, 6, 4))
	assert.Equal(t, KindO, src.Next())
	assert.Equal(t, KindI, src.Next())
	assert.Equal(t, KindS, src.Next())
	assert.Equal(t, KindT, src.Next())
}

func TestUniformSourceSeededIsDeterministic(t *testing.T) {
	a := NewUniformSource(random.NewSeeded(42))
	b := NewUniformSource(random.NewSeeded(42))
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestSequenceSourceCycles(t *testing.T) {
	src := NewSequenceSource(KindI, KindZ)
	assert.Equal(t, []Kind{KindI, KindZ, KindI, KindZ},
		[]Kind{src.Next(), src.Next(), src.Next(), src.Next()})
}

func TestSequenceSourceRejectsBadInput(t *testing.T) {
	assert.Panics(t, func() { NewSequenceSource() })
	assert.Panics(t, func() { NewSequenceSource(KindT, kindCount) })
}

func TestUniformSourceQueuedDraws(t *testing.T) {
	rng := mocks.NewMockRandom()
	src := NewUniformSource(rng)
	assert.Equal(t, KindO, src.Next(), "empty queue draws index 0")

	rng.QueueIntn(2, 3)
	assert.Equal(t, KindL, src.Next())
	assert.Equal(t, KindJ, src.Next())

	rng.QueueIntn(5)
	rng.Reset()
	assert.Equal(t, KindO, src.Next())
}
