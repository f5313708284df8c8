// internal/repository/auth_repo.go
package repository

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rakaarfi/jardin-inteligente-client/internal/apiclient"
	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/result"
	"github.com/rakaarfi/jardin-inteligente-client/internal/session"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils"
	zlog "github.com/rs/zerolog/log"
)

type authRepo struct {
	api      apiclient.Service
	sessions *session.Manager
	validate *validator.Validate
}

// NewAuthRepository returns an AuthRepository persisting sessions through sessions.
func NewAuthRepository(api apiclient.Service, sessions *session.Manager) AuthRepository {
	return &authRepo{api: api, sessions: sessions, validate: utils.NewValidator()}
}

func (r *authRepo) Login(ctx context.Context, emailOrUsername, password string) result.Result[models.User] {
	input := models.LoginInput{EmailOrUsername: strings.TrimSpace(emailOrUsername), Password: password}
	if err := r.validate.Struct(input); err != nil {
		return failure[models.User]("login", err)
	}

	resp, err := r.api.Login(ctx, input)
	if err != nil {
		return failure[models.User]("login", err)
	}
	return r.persist(ctx, "login", resp)
}

func (r *authRepo) Register(ctx context.Context, input models.RegisterInput) result.Result[models.User] {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)
	if err := r.validate.Struct(input); err != nil {
		return failure[models.User]("register", err)
	}

	resp, err := r.api.Register(ctx, input)
	if err != nil {
		return failure[models.User]("register", err)
	}
	return r.persist(ctx, "register", resp)
}

// persist stores the token and identity of a successful sign-in.
func (r *authRepo) persist(ctx context.Context, op string, resp *models.TokenResponse) result.Result[models.User] {
	if resp.AccessToken == "" || resp.User.ID <= 0 {
		zlog.Warn().Str("op", op).Msg("Repository: token response without token or user")
		return result.Failure[models.User](MsgMalformed, 0)
	}

	err := r.sessions.Save(ctx, session.Session{
		Token:    resp.AccessToken,
		UserID:   resp.User.ID,
		Username: resp.User.Username,
		Email:    resp.User.Email,
	})
	if err != nil {
		return failure[models.User](op, err)
	}

	zlog.Info().Int("user_id", resp.User.ID).Str("username", resp.User.Username).Msg("Repository: signed in")
	return result.Success(resp.User)
}

func (r *authRepo) CurrentUser(ctx context.Context) result.Result[models.User] {
	if r.sessions.Token() == "" {
		return result.Failure[models.User](MsgNoSession, 0)
	}

	user, err := r.api.Me(ctx)
	if err != nil {
		if apiclient.IsStatus(err, http.StatusUnauthorized) {
			return r.expire(ctx)
		}
		return failure[models.User]("current user", err)
	}
	return result.Success(*user)
}

func (r *authRepo) Refresh(ctx context.Context) result.Result[models.User] {
	if r.sessions.Token() == "" {
		return result.Failure[models.User](MsgNoSession, 0)
	}

	resp, err := r.api.Refresh(ctx)
	if err != nil {
		if apiclient.IsStatus(err, http.StatusUnauthorized) {
			return r.expire(ctx)
		}
		return failure[models.User]("refresh", err)
	}
	return r.persist(ctx, "refresh", resp)
}

// expire drops a session the backend no longer accepts.
func (r *authRepo) expire(ctx context.Context) result.Result[models.User] {
	zlog.Info().Int("user_id", r.sessions.UserID()).Msg("Repository: session rejected by server, clearing")
	r.ClearSession(ctx)
	return result.Failure[models.User](MsgSessionExpired, http.StatusUnauthorized)
}

func (r *authRepo) Logout(ctx context.Context) result.Result[Unit] {
	if r.sessions.Token() != "" {
		if _, err := r.api.Logout(ctx); err != nil {
			// The local session goes away either way.
			zlog.Warn().Err(err).Msg("Repository: server logout failed, clearing local session anyway")
		}
	}
	r.ClearSession(ctx)
	return result.Success(Unit{})
}

func (r *authRepo) ClearSession(ctx context.Context) {
	if err := r.sessions.Clear(ctx); err != nil && !errors.Is(err, session.ErrSessionNotFound) {
		zlog.Error().Err(err).Msg("Repository: failed to clear stored session")
	}
}

func (r *authRepo) Token() string    { return r.sessions.Token() }
func (r *authRepo) UserID() int      { return r.sessions.UserID() }
func (r *authRepo) Username() string { return r.sessions.Username() }
func (r *authRepo) IsLoggedIn() bool { return r.sessions.IsLoggedIn() }
