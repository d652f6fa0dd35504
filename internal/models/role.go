package models

// Role identifies a character card dealt to a player
type Role string

const (
	// RoleMafia picks a victim every night
	RoleMafia Role = "mafia"

	// RolePolice learns whether one player is mafia each night
	RolePolice Role = "police"

	// RoleDoctor protects one player from the night's kill
	RoleDoctor Role = "doctor"

	// RoleLikend guesses which player is the police
	RoleLikend Role = "likend"

	// RoleCitizen has no night action
	RoleCitizen Role = "citizen"
)

// String returns the role identifier
func (r Role) String() string {
	return string(r)
}

// Faction is the side a role wins with
type Faction string

const (
	// FactionMafia wins once it matches the rest of the town in numbers
	FactionMafia Faction = "mafia"

	// FactionCitizens wins once every mafia member is gone
	FactionCitizens Faction = "citizens"
)

// ActionKind describes what a role does when woken at night
type ActionKind string

const (
	// ActionNone ends the turn without a choice
	ActionNone ActionKind = "none"

	// ActionKill nominates the night's victim
	ActionKill ActionKind = "kill"

	// ActionSave protects a player from the night's kill
	ActionSave ActionKind = "save"

	// ActionInvestigate reveals whether the target is mafia
	ActionInvestigate ActionKind = "investigate"

	// ActionIdentifyPolice reveals whether the target is the police
	ActionIdentifyPolice ActionKind = "identify_police"
)

// NeedsTarget reports whether the action requires choosing a player
func (a ActionKind) NeedsTarget() bool {
	return a != ActionNone && a != ""
}

// AllowsSelfTarget reports whether the acting player may choose themselves
func (a ActionKind) AllowsSelfTarget() bool {
	return a == ActionSave
}
