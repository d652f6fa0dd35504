package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequencerWalksInOrder(t *testing.T) {
	q := NewSequencer([]string{"Alice", "Bob"})

	turn, err := q.Current()
	require.NoError(t, err)
	assert.Equal(t, "Alice", turn.Player)
	assert.Equal(t, 1, q.Position())
	assert.Equal(t, 2, q.Remaining())

	require.NoError(t, q.Advance())
	turn, err = q.Current()
	require.NoError(t, err)
	assert.Equal(t, "Bob", turn.Player)

	require.NoError(t, q.Advance())
	assert.True(t, q.Done())

	_, err = q.Current()
	assert.ErrorIs(t, err, ErrPhaseComplete)
	assert.ErrorIs(t, q.Advance(), ErrPhaseComplete)
}

func TestSequencerExpectGatesOnCurrentPlayer(t *testing.T) {
	q := NewSequencer([]string{"Alice", "Bob"})

	_, err := q.Expect("Bob")
	assert.ErrorIs(t, err, ErrIllegalAction)

	turn, err := q.Expect("Alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", turn.Player)
}

func TestSequencerAdvanceClearsFlags(t *testing.T) {
	q := NewSequencer([]string{"Alice"})
	turn, err := q.Current()
	require.NoError(t, err)

	turn.Revealed = true
	turn.Acted = true
	turn.Result = "You did nothing."
	require.NoError(t, q.Advance())

	assert.Equal(t, TurnRecord{Player: "Alice"}, *turn)
}

func TestSequencerCopiesOrder(t *testing.T) {
	order := []string{"Alice", "Bob"}
	q := NewSequencer(order)
	order[0] = "Mallory"

	turn, err := q.Current()
	require.NoError(t, err)
	assert.Equal(t, "Alice", turn.Player)
}

func TestEmptySequencerIsDone(t *testing.T) {
	q := NewSequencer(nil)
	assert.True(t, q.Done())
	_, err := q.Current()
	assert.ErrorIs(t, err, ErrPhaseComplete)
}
