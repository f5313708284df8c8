package screen

import (
	"fmt"

	"github.com/rakaarfi/jardin-inteligente-client/internal/viewmodel"
)

func (r *Renderer) Achievements(s viewmodel.GamificationState) {
	r.title("Achievements")
	if s.Loading {
		r.loading("achievements")
		return
	}
	if s.Achievements == nil {
		r.errorCard(s.Error, "jardin achievements")
		return
	}

	rows := make([][]string, 0, len(s.Achievements.Achievements))
	for _, a := range s.Achievements.Achievements {
		state := "locked"
		switch {
		case a.Unlocked:
			state = "unlocked"
		case a.Progress != nil && a.Target != nil:
			state = fmt.Sprintf("%d/%d", *a.Progress, *a.Target)
		}
		rows = append(rows, []string{a.Icon, a.Name, fmt.Sprint(a.Points), state, a.Description})
	}
	r.table([]string{"", "NAME", "POINTS", "STATE", "DESCRIPTION"}, rows)
	r.printf("Total points: %d\n", s.Achievements.TotalPoints)
}

func (r *Renderer) Missions(s viewmodel.GamificationState) {
	r.title("Missions")
	if s.Loading {
		r.loading("missions")
		return
	}
	if s.Missions == nil {
		r.errorCard(s.Error, "jardin missions")
		return
	}
	if len(s.Missions.Missions) == 0 {
		r.printf("No active missions.\n")
		return
	}

	rows := make([][]string, 0, len(s.Missions.Missions))
	for _, m := range s.Missions.Missions {
		progress := fmt.Sprintf("%d/%d", m.Progress, m.Target)
		if m.Completed {
			progress = "done"
		}
		rows = append(rows, []string{m.Title, progress, fmt.Sprintf("+%d XP, +%d pts", m.RewardXP, m.RewardPoints), when(m.ExpiresAt)})
	}
	r.table([]string{"MISSION", "PROGRESS", "REWARD", "EXPIRES"}, rows)
}
