package screen

import (
	"fmt"
	"strconv"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/viewmodel"
)

func (r *Renderer) Garden(s viewmodel.GardenState) {
	r.title("My garden")
	if s.Loading {
		r.loading("plants")
		return
	}
	if s.Error != "" {
		r.errorCard(s.Error, "jardin garden")
	}
	r.notice(s.Notice)

	if s.Stats != nil {
		st := s.Stats
		r.printf("%d plant(s), %d healthy · %d diagnoses · level %d (%d/%d XP) · streak %d\n",
			st.TotalPlants, st.HealthyPlants, st.DiagnosesCount, st.Level, st.XP, st.NextLevelXP, st.StreakDays)
	}
	if s.Error == "" && len(s.Plants) == 0 {
		r.printf("No plants yet. Add one with: jardin plant add --name <name>\n")
		return
	}

	rows := make([][]string, 0, len(s.Plants))
	for _, p := range s.Plants {
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			p.Name,
			deref(p.Species, "-"),
			string(p.Status),
			fmt.Sprintf("%d", p.HealthScore),
			when(p.LastWatered),
		})
	}
	r.table([]string{"ID", "NAME", "SPECIES", "STATUS", "HEALTH", "WATERED"}, rows)
}

func (r *Renderer) PlantDetail(s viewmodel.PlantDetailState) {
	if s.Loading {
		r.loading("plant")
		return
	}
	if s.Deleted {
		r.notice(s.Notice)
		return
	}
	if s.Plant == nil {
		if s.Error != "" {
			r.errorCard(s.Error, "jardin plant show <id>")
		}
		return
	}
	if s.Error != "" {
		r.errorCard(s.Error, "")
	}
	r.notice(s.Notice)

	p := s.Plant
	r.title(fmt.Sprintf("%s (#%d)", p.Name, p.ID))
	r.field("Species", deref(p.Species, "-"))
	r.field("Location", deref(p.Location, "-"))
	r.field("Status", r.status(p.Status))
	r.field("Health", fmt.Sprintf("%d/100", p.HealthScore))
	r.field("Watered", when(p.LastWatered))
	r.field("Fertilized", when(p.LastFertilized))
	if s.Summary != "" {
		r.printf("\n%s\n", s.Summary)
	}

	if len(s.Diagnoses) > 0 {
		r.printf("\n")
		r.diagnosisTable(s.Diagnoses)
	}
}

func (r *Renderer) AddPlant(s viewmodel.Async[models.Plant]) {
	switch s.Phase {
	case viewmodel.PhaseLoading:
		r.loading("new plant")
	case viewmodel.PhaseError:
		r.errorCard(s.Message, "jardin plant add --name <name>")
	case viewmodel.PhaseSuccess:
		r.notice(fmt.Sprintf("Added %s (#%d) to your garden.", s.Data.Name, s.Data.ID))
	}
}

func (r *Renderer) status(st models.PlantStatus) string {
	switch st {
	case models.PlantStatusHealthy:
		return r.paint(ansiGreen, string(st))
	case models.PlantStatusNeedsAttention:
		return r.paint(ansiYellow, string(st))
	case models.PlantStatusSick:
		return r.paint(ansiRed, string(st))
	default:
		return string(st)
	}
}

func when(ts *models.Timestamp) string {
	if ts == nil || ts.IsZero() {
		return "never"
	}
	return ts.Format("2006-01-02 15:04")
}
