package memory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDGenerator(t *testing.T) {
	tests := []struct {
		strategy string
		want     IDGenerator
		wantErr  bool
	}{
		{strategy: StrategySequential, want: &SequentialIDs{}},
		{strategy: "", want: &SequentialIDs{}},
		{strategy: StrategyLength, want: LengthIDs{}},
		{strategy: StrategyUUID, want: UUIDs{}},
		{strategy: "random", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.strategy, func(t *testing.T) {
			gen, err := NewIDGenerator(tc.strategy)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrUnknownIDStrategy)
				assert.Nil(t, gen)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tc.want, gen)
		})
	}
}

func TestSequentialIDs(t *testing.T) {
	gen := &SequentialIDs{}
	gen.Observe("1")
	gen.Observe("3")
	gen.Observe("2")
	gen.Observe("not-a-number")

	assert.Equal(t, "4", gen.Next(3))
	// The collection length is irrelevant once ids have been handed out.
	assert.Equal(t, "5", gen.Next(2))

	gen.Observe("4")
	assert.Equal(t, "6", gen.Next(0))
}

func TestLengthIDs(t *testing.T) {
	gen := LengthIDs{}
	gen.Observe("10")

	assert.Equal(t, "1", gen.Next(0))
	assert.Equal(t, "4", gen.Next(3))
	assert.Equal(t, "3", gen.Next(2))
}

func TestUUIDs(t *testing.T) {
	gen := UUIDs{}

	first := gen.Next(0)
	second := gen.Next(0)

	_, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
