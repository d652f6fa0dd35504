package game

import (
	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/roles"
)

// EvaluateWin decides the game from the living head count: no mafia left
// means the citizens win, mafia at or above the rest means the mafia win.
func EvaluateWin(mafiaAlive, alive int) models.Winner {
	switch {
	case mafiaAlive == 0:
		return models.WinnerCitizens
	case mafiaAlive >= alive-mafiaAlive:
		return models.WinnerMafia
	default:
		return models.WinnerNone
	}
}

// evaluatePlayers counts the living players and their mafia members
func evaluatePlayers(registry *roles.Registry, players []*models.Player) models.Winner {
	alive, mafia := 0, 0
	for _, p := range players {
		if !p.Alive {
			continue
		}
		alive++
		if registry.IsMafia(p.Role) {
			mafia++
		}
	}
	return EvaluateWin(mafia, alive)
}
