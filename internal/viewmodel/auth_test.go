package viewmodel_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/rakaarfi/jardin-inteligente-client/internal/apiclient"
	"github.com/rakaarfi/jardin-inteligente-client/internal/apiclient/mocks"
	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/repository"
	"github.com/rakaarfi/jardin-inteligente-client/internal/session"
	"github.com/rakaarfi/jardin-inteligente-client/internal/viewmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	api   *mocks.MockService
	store *session.MemoryStore
	vm    *viewmodel.AuthViewModel
	seen  []viewmodel.AuthStatus
}

func newAuthFixture(t *testing.T, stored *session.Session) *authFixture {
	t.Helper()
	f := &authFixture{api: mocks.NewMockService(t), store: session.NewMemoryStore()}
	if stored != nil {
		require.NoError(t, f.store.Save(context.Background(), *stored))
	}
	sessions := session.NewManager(context.Background(), f.store)
	f.vm = viewmodel.NewAuthViewModel(repository.NewAuthRepository(f.api, sessions))
	t.Cleanup(f.vm.Close)
	f.vm.State().Subscribe(func(s viewmodel.AuthState) { f.seen = append(f.seen, s.Status) })
	return f
}

func TestAuthViewModel_LoginPersistsToken(t *testing.T) {
	f := newAuthFixture(t, nil)
	f.api.On("Login", mock.Anything, models.LoginInput{EmailOrUsername: "ana@example.com", Password: "secret1"}).
		Return(&models.TokenResponse{
			AccessToken: "token-123",
			TokenType:   "bearer",
			User:        models.User{ID: 5, Username: "ana", Email: "ana@example.com"},
		}, nil).Once()

	f.vm.Login(context.Background(), "ana@example.com", "secret1")

	assert.Equal(t, []viewmodel.AuthStatus{viewmodel.AuthIdle, viewmodel.AuthLoading, viewmodel.AuthAuthenticated}, f.seen)
	state := f.vm.State().Value()
	require.NotNil(t, state.User)
	assert.Equal(t, "ana", state.User.Username)

	stored, err := f.store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-123", stored.Token)
	assert.Equal(t, 5, stored.UserID)
	assert.Equal(t, 5, f.vm.UserID())
}

func TestAuthViewModel_LoginFailure(t *testing.T) {
	f := newAuthFixture(t, nil)
	f.api.On("Login", mock.Anything, mock.Anything).
		Return(nil, &apiclient.Error{Kind: apiclient.KindHTTP, Op: "Login", Status: 401, Detail: "Incorrect credentials"}).Once()

	f.vm.Login(context.Background(), "ana", "nope")

	assert.Equal(t, []viewmodel.AuthStatus{viewmodel.AuthIdle, viewmodel.AuthLoading, viewmodel.AuthError}, f.seen)
	assert.Equal(t, "Incorrect credentials", f.vm.State().Value().Message)
	_, err := f.store.Load(context.Background())
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestAuthViewModel_CheckAuthentication(t *testing.T) {
	stored := &session.Session{Token: "token-123", UserID: 5, Username: "ana"}

	t.Run("401 clears the session and ends Unauthenticated", func(t *testing.T) {
		f := newAuthFixture(t, stored)
		f.api.On("Me", mock.Anything).
			Return(nil, &apiclient.Error{Kind: apiclient.KindHTTP, Op: "Load profile", Status: http.StatusUnauthorized, Detail: "Could not validate credentials"}).Once()

		f.vm.CheckAuthentication(context.Background())

		assert.Equal(t, []viewmodel.AuthStatus{viewmodel.AuthIdle, viewmodel.AuthLoading, viewmodel.AuthUnauthenticated}, f.seen)
		_, err := f.store.Load(context.Background())
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
		assert.False(t, f.vm.IsLoggedIn())
	})

	t.Run("Valid session ends Authenticated", func(t *testing.T) {
		f := newAuthFixture(t, stored)
		f.api.On("Me", mock.Anything).Return(&models.User{ID: 5, Username: "ana"}, nil).Once()

		f.vm.CheckAuthentication(context.Background())

		assert.Equal(t, viewmodel.AuthAuthenticated, f.vm.State().Value().Status)
	})

	t.Run("Server unreachable keeps the session", func(t *testing.T) {
		f := newAuthFixture(t, stored)
		f.api.On("Me", mock.Anything).
			Return(nil, &apiclient.Error{Kind: apiclient.KindNetwork, Op: "Load profile"}).Once()

		f.vm.CheckAuthentication(context.Background())

		state := f.vm.State().Value()
		assert.Equal(t, viewmodel.AuthError, state.Status)
		assert.Equal(t, repository.MsgNetwork, state.Message)
		_, err := f.store.Load(context.Background())
		assert.NoError(t, err)
	})

	t.Run("No stored session makes no call", func(t *testing.T) {
		f := newAuthFixture(t, nil)

		f.vm.CheckAuthentication(context.Background())

		assert.Equal(t, []viewmodel.AuthStatus{viewmodel.AuthIdle, viewmodel.AuthUnauthenticated}, f.seen)
	})
}

func TestAuthViewModel_Logout(t *testing.T) {
	f := newAuthFixture(t, &session.Session{Token: "token-123", UserID: 5})
	f.api.On("Logout", mock.Anything).Return(&models.LogoutResponse{Message: "bye", UserID: 5}, nil).Once()

	f.vm.Logout(context.Background())

	assert.Equal(t, viewmodel.AuthUnauthenticated, f.vm.State().Value().Status)
	assert.False(t, f.vm.IsLoggedIn())
}
