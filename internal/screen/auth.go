package screen

import (
	"fmt"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/viewmodel"
)

func (r *Renderer) Auth(s viewmodel.AuthState) {
	switch s.Status {
	case viewmodel.AuthIdle:
	case viewmodel.AuthLoading:
		r.loading("session")
	case viewmodel.AuthAuthenticated:
		if s.User != nil {
			r.User(*s.User)
		}
	case viewmodel.AuthUnauthenticated:
		if s.Message != "" {
			r.errorCard(s.Message, "jardin login <email-or-username>")
			return
		}
		r.printf("Not signed in. Run: jardin login <email-or-username>\n")
	case viewmodel.AuthError:
		r.errorCard(s.Message, "jardin whoami")
	}
}

func (r *Renderer) User(u models.User) {
	r.title(fmt.Sprintf("Signed in as %s", u.Username))
	r.field("Email", u.Email)
	if u.FullName != nil && *u.FullName != "" {
		r.field("Name", *u.FullName)
	}
	r.field("Level", fmt.Sprintf("%d (%d XP)", u.Level, u.XP))
	r.field("Points", fmt.Sprint(u.Points))
	r.field("Streak", fmt.Sprintf("%d day(s)", u.StreakDays))
}
