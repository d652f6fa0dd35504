package models

// Phase represents the current state of a game session
type Phase string

const (
	// PhaseSetup waits for a roster and role counts
	PhaseSetup Phase = "setup"

	// PhaseReveal passes the device around so everyone sees their role
	PhaseReveal Phase = "reveal"

	// PhaseNight wakes each living player in turn
	PhaseNight Phase = "night"

	// PhaseVoting collects one accusation per living player
	PhaseVoting Phase = "voting"

	// PhaseEnded is terminal until the session is reset
	PhaseEnded Phase = "ended"
)

// IsSetup returns true if the session is waiting for setup
func (p Phase) IsSetup() bool {
	return p == PhaseSetup
}

// IsReveal returns true if roles are being revealed
func (p Phase) IsReveal() bool {
	return p == PhaseReveal
}

// IsNight returns true during the night cycle
func (p Phase) IsNight() bool {
	return p == PhaseNight
}

// IsVoting returns true during the voting cycle
func (p Phase) IsVoting() bool {
	return p == PhaseVoting
}

// IsEnded returns true once a faction has won
func (p Phase) IsEnded() bool {
	return p == PhaseEnded
}

// Winner names the faction that won, or WinnerNone while the game is running
type Winner string

const (
	WinnerNone     Winner = ""
	WinnerMafia    Winner = Winner(FactionMafia)
	WinnerCitizens Winner = Winner(FactionCitizens)
)

// String returns the phase name
func (p Phase) String() string {
	return string(p)
}
