package terminal

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/services/game"
)

// renderTally prints the vote count per candidate, most votes first
func (s *Shell) renderTally(title string, result *models.VoteResult) {
	type row struct {
		name  string
		votes int
	}
	rows := make([]row, 0, len(result.Tally))
	for name, votes := range result.Tally {
		rows = append(rows, row{name: name, votes: votes})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].votes != rows[j].votes {
			return rows[i].votes > rows[j].votes
		}
		return rows[i].name < rows[j].name
	})

	skips := 0
	for _, choice := range result.Ballots {
		if choice == models.SkipVote {
			skips++
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(s.out)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Candidate", "Votes"})
	for _, r := range rows {
		name := r.name
		if r.name == result.Eliminated {
			name = s.palette.Mafia.Sprint(r.name)
		}
		t.AppendRow(table.Row{name, r.votes})
	}
	t.AppendFooter(table.Row{models.SkipVote, skips})
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	t.Render()
}

// renderRoster reveals every role once the game is over
func (s *Shell) renderRoster(dealt []models.Player, status *game.GetStatusOutput) {
	if len(dealt) == 0 {
		return
	}

	alive := make(map[string]bool, len(status.Alive))
	for _, name := range status.Alive {
		alive[name] = true
	}

	t := table.NewWriter()
	t.SetOutputMirror(s.out)
	t.SetTitle("Final Roles")
	t.AppendHeader(table.Row{"Player", "Role", "Status"})
	for _, p := range dealt {
		state := "dead"
		if alive[p.Name] {
			state = "alive"
		}
		t.AppendRow(table.Row{p.Name, s.palette.roleColor(s.registry, p.Role).Sprint(p.Role), state})
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.Render()
}

// renderHistory prints one line per resolved night or vote
func (s *Shell) renderHistory(history []models.RoundRecord) {
	if len(history) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(s.out)
	t.SetTitle("History")
	t.AppendHeader(table.Row{"Round", "Phase", "Outcome"})
	for _, record := range history {
		t.AppendRow(table.Row{roundOf(record), record.Phase, outcomeOf(record)})
	}
	t.SetStyle(table.StyleLight)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})
	t.Render()
}

func roundOf(record models.RoundRecord) int {
	switch {
	case record.Night != nil:
		return record.Night.Round
	case record.Vote != nil:
		return record.Vote.Round
	default:
		return 0
	}
}

func outcomeOf(record models.RoundRecord) string {
	switch {
	case record.Night != nil && record.Night.Killed != "":
		return fmt.Sprintf("%s killed", record.Night.Killed)
	case record.Night != nil && record.Night.Saved:
		return "saved by the doctor"
	case record.Night != nil:
		return "no one killed"
	case record.Vote != nil && record.Vote.Eliminated != "":
		return fmt.Sprintf("%s eliminated", record.Vote.Eliminated)
	case record.Vote != nil:
		return "no one eliminated"
	default:
		return ""
	}
}
