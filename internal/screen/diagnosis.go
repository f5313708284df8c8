package screen

import (
	"fmt"
	"strconv"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/viewmodel"
)

// Capture renders both steps of the capture flow.
func (r *Renderer) Capture(s viewmodel.CaptureState) {
	switch v := s.Validation; v.Phase {
	case viewmodel.PhaseIdle:
		if s.ImagePath == "" {
			r.printf("No photo selected.\n")
		}
	case viewmodel.PhaseLoading:
		r.loading("photo check")
	case viewmodel.PhaseError:
		r.errorCard(v.Message, "jardin capture <image> --plant <id>")
		return
	case viewmodel.PhaseSuccess:
		r.Guidance(v.Data)
	}

	switch d := s.Diagnosis; d.Phase {
	case viewmodel.PhaseLoading:
		r.loading("diagnosis")
	case viewmodel.PhaseError:
		r.errorCard(d.Message, "jardin capture <image> --plant <id>")
	case viewmodel.PhaseSuccess:
		r.printf("\n")
		r.Diagnosis(d.Data)
	}
}

func (r *Renderer) Guidance(g models.CaptureGuidance) {
	if g.Success {
		r.notice(g.Message)
	} else {
		r.printf("%s %s\n", r.paint(ansiYellow, "!"), g.Message)
	}
	if g.Guidance != "" {
		r.printf("  %s\n", g.Guidance)
	}
}

func (r *Renderer) Diagnosis(d models.Diagnosis) {
	r.title(fmt.Sprintf("Diagnosis #%d: %s", d.DiagnosisID, deref(d.DiseaseName, "no disease detected")))
	r.field("Confidence", percent(d.Confidence))
	r.field("Severity", d.Severity)
	r.printf("\n%s\n", d.DiagnosisText)

	if len(d.Recommendations) > 0 {
		r.printf("\n%s\n", r.paint(ansiBold, "Recommendations"))
		for _, rec := range d.Recommendations {
			r.printf("  • %s\n", rec)
		}
	}
	if len(d.WeeklyPlan) > 0 {
		r.printf("\n%s\n", r.paint(ansiBold, "Weekly plan"))
		rows := make([][]string, 0, len(d.WeeklyPlan))
		for _, t := range d.WeeklyPlan {
			rows = append(rows, []string{t.Day, t.Priority, t.Task})
		}
		r.table([]string{"DAY", "PRIORITY", "TASK"}, rows)
	}
	if d.AudioURL != nil && *d.AudioURL != "" {
		r.field("Audio", *d.AudioURL)
	}
}

func (r *Renderer) DiagnosisRecord(d models.DiagnosisRecord) {
	r.title(fmt.Sprintf("Diagnosis #%d: %s", d.ID, deref(d.DiseaseName, "no disease detected")))
	r.field("Plant", d.PlantName)
	r.field("Date", d.CreatedAt.Format("2006-01-02 15:04"))
	r.field("Confidence", percent(d.Confidence))
	r.field("Severity", d.Severity)
	if d.ImageURL != nil {
		r.field("Photo", *d.ImageURL)
	}
	r.printf("\n%s\n", d.DiagnosisText)
	for _, rec := range d.Recommendations {
		r.printf("  • %s\n", rec)
	}
}

func (r *Renderer) DiagnosisDetail(s viewmodel.DiagnosisDetailState) {
	switch {
	case s.Diagnosis != nil:
		r.Diagnosis(*s.Diagnosis)
	case s.Record.IsLoading():
		r.loading("diagnosis")
	case s.Record.IsError():
		r.errorCard(s.Record.Message, "jardin diagnosis show <id>")
	case s.Record.IsSuccess():
		r.DiagnosisRecord(s.Record.Data)
	}

	switch f := s.Feedback; f.Phase {
	case viewmodel.PhaseLoading:
		r.loading("feedback")
	case viewmodel.PhaseError:
		r.errorCard(f.Message, "jardin diagnosis feedback <id>")
	case viewmodel.PhaseSuccess:
		r.notice(f.Data.Message)
	}
}

func (r *Renderer) History(s viewmodel.DiagnosisHistoryState) {
	r.title("Diagnosis history")
	switch {
	case s.Loading:
		r.loading("history")
	case s.Error != "":
		r.errorCard(s.Error, "jardin diagnosis history")
	case len(s.Diagnoses) == 0:
		r.printf("No diagnoses yet. Start with: jardin capture <image> --plant <id>\n")
	default:
		r.diagnosisTable(s.Diagnoses)
		if s.Total > len(s.Diagnoses) {
			r.printf("%s\n", r.paint(ansiDim, fmt.Sprintf("showing %d of %d", len(s.Diagnoses), s.Total)))
		}
	}
}

func (r *Renderer) diagnosisTable(records []models.DiagnosisRecord) {
	rows := make([][]string, 0, len(records))
	for _, d := range records {
		rows = append(rows, []string{
			strconv.Itoa(d.ID),
			d.CreatedAt.Format("2006-01-02"),
			d.PlantName,
			deref(d.DiseaseName, "healthy"),
			d.Severity,
			percent(d.Confidence),
		})
	}
	r.table([]string{"ID", "DATE", "PLANT", "FINDING", "SEVERITY", "CONF"}, rows)
}
