package game

import "github.com/KirkDiggler/mafia/internal/models"

// minEliminationVotes is the smallest winning count that removes a player.
// A single accusation is never enough.
const minEliminationVotes = 2

// tallyVotes counts non-skip ballots per accused player
func tallyVotes(ballots map[string]string) map[string]int {
	tally := make(map[string]int)
	for _, choice := range ballots {
		if choice == models.SkipVote {
			continue
		}
		tally[choice]++
	}
	return tally
}

// decideElimination returns the player holding the strict single maximum of
// the tally, provided that maximum reaches minEliminationVotes. Ties and thin
// pluralities eliminate nobody.
func decideElimination(tally map[string]int) string {
	leader := ""
	max := 0
	tied := false
	for candidate, count := range tally {
		switch {
		case count > max:
			leader = candidate
			max = count
			tied = false
		case count == max:
			tied = true
		}
	}

	if tied || max < minEliminationVotes {
		return ""
	}
	return leader
}
