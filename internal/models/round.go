package models

import "time"

// SkipVote is the ballot for not accusing anyone
const SkipVote = "Skip"

// NightResult is what the table learns when a night resolves
type NightResult struct {
	// Round is the night number, starting at 1
	Round int

	// Killed is the name of the victim, empty if nobody died
	Killed string

	// Saved is true when the doctor protected the mafia's target
	Saved bool

	// Warnings carries consistency problems noticed during resolution
	Warnings []string
}

// VoteResult is the outcome of a voting round
type VoteResult struct {
	// Round is the voting round number, starting at 1
	Round int

	// Tally counts non-skip votes per accused player
	Tally map[string]int

	// Ballots maps each voter to their choice, SkipVote included
	Ballots map[string]string

	// Eliminated is the name of the player voted out, empty if nobody was
	Eliminated string
}

// RoundRecord is one entry in the session history
type RoundRecord struct {
	Phase      Phase
	Night      *NightResult
	Vote       *VoteResult
	ResolvedAt time.Time
}

// Clone returns a copy of the record that shares no slices or maps with it
func (r RoundRecord) Clone() RoundRecord {
	out := r
	if r.Night != nil {
		night := *r.Night
		night.Warnings = make([]string, len(r.Night.Warnings))
		copy(night.Warnings, r.Night.Warnings)
		out.Night = &night
	}
	if r.Vote != nil {
		vote := *r.Vote
		vote.Tally = make(map[string]int, len(r.Vote.Tally))
		for name, count := range r.Vote.Tally {
			vote.Tally[name] = count
		}
		vote.Ballots = make(map[string]string, len(r.Vote.Ballots))
		for voter, choice := range r.Vote.Ballots {
			vote.Ballots[voter] = choice
		}
		out.Vote = &vote
	}
	return out
}
