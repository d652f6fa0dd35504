package models

// Player is a seat at the table. The name is the player's identity for the
// whole session.
type Player struct {
	// Name is the unique display name of the player
	Name string

	// Role is dealt once at distribution and never changes
	Role Role

	// Alive is cleared by a night kill or a vote
	Alive bool
}
