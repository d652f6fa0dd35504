package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/mafia/internal/models"
)

func TestTallyVotesIgnoresSkips(t *testing.T) {
	tally := tallyVotes(map[string]string{
		"Alice": models.SkipVote,
		"Bob":   "Alice",
		"Carol": "Alice",
		"Dave":  "Bob",
	})

	assert.Equal(t, map[string]int{"Alice": 2, "Bob": 1}, tally)
}

func TestDecideElimination(t *testing.T) {
	testCases := []struct {
		name  string
		tally map[string]int
		want  string
	}{
		{name: "tie at the top", tally: map[string]int{"A": 2, "B": 2}, want: ""},
		{name: "single vote is not enough", tally: map[string]int{"A": 1}, want: ""},
		{name: "clear leader", tally: map[string]int{"A": 3, "B": 1}, want: "A"},
		{name: "two votes eliminate", tally: map[string]int{"A": 2, "B": 1, "C": 1}, want: "A"},
		{name: "no votes", tally: map[string]int{}, want: ""},
		{name: "all ones", tally: map[string]int{"A": 1, "B": 1, "C": 1}, want: ""},
		{name: "tie below leader does not matter", tally: map[string]int{"A": 3, "B": 2, "C": 2}, want: "A"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, decideElimination(tc.tally))
		})
	}
}
