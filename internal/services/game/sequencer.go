package game

// TurnRecord tracks one player's progress through their private turn
type TurnRecord struct {
	Player   string
	Revealed bool
	Acted    bool
	Result   string
}

// Sequencer hands the shared device to one player at a time. The index only
// moves forward, and only through Advance.
type Sequencer struct {
	order []string
	turns map[string]*TurnRecord
	index int
}

// NewSequencer creates a sequencer over a copy of order
func NewSequencer(order []string) *Sequencer {
	q := &Sequencer{
		order: make([]string, len(order)),
		turns: make(map[string]*TurnRecord, len(order)),
	}
	copy(q.order, order)
	for _, name := range q.order {
		q.turns[name] = &TurnRecord{Player: name}
	}
	return q
}

// Current returns the turn record of the player holding the device, or
// ErrPhaseComplete once every player has had their turn
func (q *Sequencer) Current() (*TurnRecord, error) {
	if q.index >= len(q.order) {
		return nil, ErrPhaseComplete
	}
	return q.turns[q.order[q.index]], nil
}

// Expect returns the current turn record if it belongs to player
func (q *Sequencer) Expect(player string) (*TurnRecord, error) {
	turn, err := q.Current()
	if err != nil {
		return nil, err
	}
	if turn.Player != player {
		return nil, illegal("it is %s's turn, not %s's", turn.Player, player)
	}
	return turn, nil
}

// Advance completes the current turn, clearing its flags, and moves on
func (q *Sequencer) Advance() error {
	turn, err := q.Current()
	if err != nil {
		return err
	}
	*turn = TurnRecord{Player: turn.Player}
	q.index++
	return nil
}

// Done reports whether every player has had their turn
func (q *Sequencer) Done() bool {
	return q.index >= len(q.order)
}

// Position returns the 1-based position of the current turn
func (q *Sequencer) Position() int {
	return q.index + 1
}

// Len returns the number of turns in the cycle
func (q *Sequencer) Len() int {
	return len(q.order)
}

// Remaining returns the number of turns not yet completed
func (q *Sequencer) Remaining() int {
	return len(q.order) - q.index
}
