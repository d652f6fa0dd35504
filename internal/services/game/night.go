package game

// mafiaChoice is one mafia player's nominated victim
type mafiaChoice struct {
	player string
	target string
	seq    int
}

// nightActions holds the choices that take effect when the night resolves.
// Police and likend answers are immediate and never stored here.
type nightActions struct {
	mafia  []mafiaChoice
	doctor string
	seq    int
}

func newNightActions() *nightActions {
	return &nightActions{}
}

// recordKill stores a mafia player's choice, replacing their earlier one
func (n *nightActions) recordKill(player, target string) {
	n.seq++
	for i := range n.mafia {
		if n.mafia[i].player == player {
			n.mafia[i].target = target
			n.mafia[i].seq = n.seq
			return
		}
	}
	n.mafia = append(n.mafia, mafiaChoice{player: player, target: target, seq: n.seq})
}

// recordSave stores the doctor's choice; the latest save wins
func (n *nightActions) recordSave(target string) {
	n.seq++
	n.doctor = target
}

// mafiaTarget returns the victim the mafia agreed on: the most nominated
// player, with ties going to whichever tied player was nominated last.
// Returns "" when no mafia player acted.
func (n *nightActions) mafiaTarget() string {
	votes := make(map[string]int)
	latest := make(map[string]int)
	for _, choice := range n.mafia {
		votes[choice.target]++
		if choice.seq > latest[choice.target] {
			latest[choice.target] = choice.seq
		}
	}

	best := ""
	for target, count := range votes {
		switch {
		case best == "":
			best = target
		case count > votes[best]:
			best = target
		case count == votes[best] && latest[target] > latest[best]:
			best = target
		}
	}
	return best
}

// resolveKill compares the mafia's target with the doctor's save. A kill only
// happens when the mafia chose someone the doctor did not protect.
func resolveKill(mafiaTarget, doctorTarget string) (killed string, saved bool) {
	if mafiaTarget == "" {
		return "", false
	}
	if mafiaTarget == doctorTarget {
		return "", true
	}
	return mafiaTarget, false
}
