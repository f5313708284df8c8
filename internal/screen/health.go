package screen

import (
	"time"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
)

// HealthCheck is one line of the connectivity report.
type HealthCheck struct {
	Name    string
	OK      bool
	Detail  string
	Latency time.Duration
}

// Doctor renders the connectivity report of `jardin doctor`.
func (r *Renderer) Doctor(baseURL string, health *models.HealthResponse, checks []HealthCheck) {
	r.title("Connection check")
	r.field("Server", baseURL)
	if health != nil {
		r.field("Backend", health.App+" "+health.Version+" ("+health.Status+")")
	}
	for _, c := range checks {
		mark := r.paint(ansiGreen, "✓")
		if !c.OK {
			mark = r.paint(ansiRed, "✗")
		}
		line := c.Name
		if c.Latency > 0 {
			line += " " + r.paint(ansiDim, c.Latency.Round(time.Millisecond).String())
		}
		r.printf("%s %s\n", mark, line)
		if c.Detail != "" {
			r.printf("  %s\n", c.Detail)
		}
	}
}
