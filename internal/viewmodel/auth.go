package viewmodel

import (
	"context"
	"net/http"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/repository"
	"github.com/rakaarfi/jardin-inteligente-client/internal/result"
	zlog "github.com/rs/zerolog/log"
)

// AuthStatus is the step of the sign-in state machine.
type AuthStatus int

const (
	AuthIdle AuthStatus = iota
	AuthLoading
	AuthAuthenticated
	AuthUnauthenticated
	AuthError
)

func (s AuthStatus) String() string {
	switch s {
	case AuthIdle:
		return "idle"
	case AuthLoading:
		return "loading"
	case AuthAuthenticated:
		return "authenticated"
	case AuthUnauthenticated:
		return "unauthenticated"
	case AuthError:
		return "error"
	default:
		return "unknown"
	}
}

// AuthState carries User when Authenticated and Message when Error (or when a
// session was dropped by the server).
type AuthState struct {
	Status  AuthStatus
	User    *models.User
	Message string
}

type AuthViewModel struct {
	repo  repository.AuthRepository
	state *StateFlow[AuthState]
	scope *scope
}

func NewAuthViewModel(repo repository.AuthRepository) *AuthViewModel {
	return &AuthViewModel{
		repo:  repo,
		state: NewStateFlow(AuthState{Status: AuthIdle}),
		scope: newScope(),
	}
}

func (vm *AuthViewModel) State() *StateFlow[AuthState] { return vm.state }

// CheckAuthentication resolves the stored session into Authenticated or
// Unauthenticated. A session the server rejects has already been cleared by the
// repository; a network failure keeps it and reports Error.
func (vm *AuthViewModel) CheckAuthentication(ctx context.Context) {
	ctx, done := vm.scope.join(ctx)
	defer done()

	if !vm.repo.IsLoggedIn() {
		if vm.repo.Token() != "" {
			zlog.Info().Msg("ViewModel: stored token expired, clearing session")
			vm.repo.ClearSession(ctx)
		}
		vm.state.Set(AuthState{Status: AuthUnauthenticated})
		return
	}

	vm.state.Set(AuthState{Status: AuthLoading})
	res := vm.repo.CurrentUser(ctx)
	switch {
	case res.IsSuccess():
		user := res.Data()
		vm.state.Set(AuthState{Status: AuthAuthenticated, User: &user})
	case res.Code() == http.StatusUnauthorized:
		vm.state.Set(AuthState{Status: AuthUnauthenticated, Message: res.Message()})
	default:
		vm.state.Set(AuthState{Status: AuthError, Message: res.Message()})
	}
}

func (vm *AuthViewModel) Login(ctx context.Context, emailOrUsername, password string) {
	ctx, done := vm.scope.join(ctx)
	defer done()

	vm.state.Set(AuthState{Status: AuthLoading})
	vm.settle(vm.repo.Login(ctx, emailOrUsername, password))
}

func (vm *AuthViewModel) Register(ctx context.Context, input models.RegisterInput) {
	ctx, done := vm.scope.join(ctx)
	defer done()

	vm.state.Set(AuthState{Status: AuthLoading})
	vm.settle(vm.repo.Register(ctx, input))
}

// Logout always ends Unauthenticated; the repository clears the local session
// even when the server cannot be reached.
func (vm *AuthViewModel) Logout(ctx context.Context) {
	ctx, done := vm.scope.join(ctx)
	defer done()

	vm.state.Set(AuthState{Status: AuthLoading})
	vm.repo.Logout(ctx)
	vm.state.Set(AuthState{Status: AuthUnauthenticated})
}

func (vm *AuthViewModel) UserID() int      { return vm.repo.UserID() }
func (vm *AuthViewModel) IsLoggedIn() bool { return vm.repo.IsLoggedIn() }

// Close cancels calls still in flight.
func (vm *AuthViewModel) Close() { vm.scope.close() }

func (vm *AuthViewModel) settle(res result.Result[models.User]) {
	if res.IsSuccess() {
		user := res.Data()
		vm.state.Set(AuthState{Status: AuthAuthenticated, User: &user})
		return
	}
	vm.state.Set(AuthState{Status: AuthError, Message: res.Message()})
}
