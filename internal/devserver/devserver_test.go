package devserver_test

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/rakaarfi/jardin-inteligente-client/configs"
	"github.com/rakaarfi/jardin-inteligente-client/internal/apiclient"
	"github.com/rakaarfi/jardin-inteligente-client/internal/devserver"
	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/repository"
	"github.com/rakaarfi/jardin-inteligente-client/internal/session"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "stub-secret"

// startServer runs the stub on a random local port and returns its base URL.
func startServer(t *testing.T) (*devserver.Server, string) {
	t.Helper()
	srv, err := devserver.New(configs.DevServerConfig{JWTSecret: testSecret, TokenTTL: time.Hour})
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = srv.App.Listener(ln) }()
	t.Cleanup(func() { _ = srv.App.ShutdownWithTimeout(time.Second) })

	return srv, "http://" + ln.Addr().String()
}

type client struct {
	api       *apiclient.Client
	auth      repository.AuthRepository
	plants    repository.PlantRepository
	diagnosis repository.DiagnosisRepository
	community repository.CommunityRepository
	gamify    repository.GamificationRepository
}

func newClient(t *testing.T, baseURL string) *client {
	t.Helper()
	sessions := session.NewManager(context.Background(), session.NewMemoryStore())
	api := apiclient.New(configs.APIConfig{
		BaseURL:        baseURL,
		ConnectTimeout: 5 * time.Second,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   5 * time.Second,
	}, sessions)
	return &client{
		api:       api,
		auth:      repository.NewAuthRepository(api, sessions),
		plants:    repository.NewPlantRepository(api),
		diagnosis: repository.NewDiagnosisRepository(api),
		community: repository.NewCommunityRepository(api),
		gamify:    repository.NewGamificationRepository(api),
	}
}

func TestNew_RequiresSecret(t *testing.T) {
	_, err := devserver.New(configs.DevServerConfig{})
	assert.Error(t, err)
}

func TestDevServer_Health(t *testing.T) {
	_, baseURL := startServer(t)
	c := newClient(t, baseURL)

	health, err := c.api.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)

	resp, err := http.Get(baseURL + "/swagger/index.html")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDevServer_GardenFlow(t *testing.T) {
	ctx := context.Background()
	_, baseURL := startServer(t)
	c := newClient(t, baseURL)

	// --- Account ---
	reg := c.auth.Register(ctx, models.RegisterInput{Username: "rosa", Email: "rosa@example.com", Password: "secret123"})
	require.True(t, reg.IsSuccess(), reg.Message())
	userID := reg.Data().ID
	assert.True(t, c.auth.IsLoggedIn())

	me := c.auth.CurrentUser(ctx)
	require.True(t, me.IsSuccess(), me.Message())
	assert.Equal(t, "rosa", me.Data().Username)

	dup := newClient(t, baseURL).auth.Register(ctx, models.RegisterInput{Username: "ROSA", Email: "other@example.com", Password: "secret123"})
	require.True(t, dup.IsError())
	assert.Equal(t, http.StatusBadRequest, dup.Code())

	// --- Garden ---
	created := c.plants.Create(ctx, models.PlantCreateInput{Name: "Monstera", UserID: userID})
	require.True(t, created.IsSuccess(), created.Message())
	plant := created.Data()
	assert.Equal(t, models.PlantStatusHealthy, plant.Status)

	watered := c.plants.Water(ctx, plant.ID)
	require.True(t, watered.IsSuccess(), watered.Message())
	assert.NotNil(t, watered.Data().LastWatered)

	// --- Capture guidance ---
	good := c.diagnosis.ValidatePhoto(ctx, test_utils.WriteSizedPNG(t, 128, 96))
	require.True(t, good.IsSuccess(), good.Message())
	assert.True(t, good.Data().Success)

	tiny := c.diagnosis.ValidatePhoto(ctx, test_utils.WritePNG(t))
	require.True(t, tiny.IsSuccess(), tiny.Message())
	assert.False(t, tiny.Data().Success)

	// --- Diagnosis ---
	symptoms := "brown edges"
	analyzed := c.diagnosis.AnalyzePlant(ctx, apiclient.AnalyzeRequest{
		PlantID:   plant.ID,
		UserID:    userID,
		ImagePath: test_utils.WriteSizedPNG(t, 128, 96),
		Symptoms:  &symptoms,
	})
	require.True(t, analyzed.IsSuccess(), analyzed.Message())
	diag := analyzed.Data()
	assert.Contains(t, diag.DiagnosisText, "brown edges")
	assert.Contains(t, []string{"low", "medium", "high"}, diag.Severity)

	history := c.diagnosis.History(ctx, userID, 10)
	require.True(t, history.IsSuccess(), history.Message())
	require.Equal(t, 1, history.Data().Total)
	record := history.Data().Diagnoses[0]
	require.NotNil(t, record.ImageURL)

	photo, err := http.Get(*record.ImageURL)
	require.NoError(t, err)
	photo.Body.Close()
	assert.Equal(t, http.StatusOK, photo.StatusCode)
	assert.Equal(t, "image/png", photo.Header.Get("Content-Type"))

	// --- Community ---
	shared := c.community.CreatePost(ctx, userID, models.CommunityPostCreateInput{DiagnosisID: diag.DiagnosisID})
	require.True(t, shared.IsSuccess(), shared.Message())
	postID := shared.Data().ID

	liked := c.community.ToggleLike(ctx, postID, userID)
	require.True(t, liked.IsSuccess(), liked.Message())
	assert.True(t, liked.Data().Liked)
	assert.Equal(t, 1, liked.Data().TotalLikes)

	comment := c.community.AddComment(ctx, postID, userID, models.CommentCreateInput{Content: "Trim the brown leaves"})
	require.True(t, comment.IsSuccess(), comment.Message())

	comments := c.community.Comments(ctx, postID)
	require.True(t, comments.IsSuccess(), comments.Message())
	assert.Len(t, comments.Data(), 1)

	feed := c.community.Posts(ctx, 20)
	require.True(t, feed.IsSuccess(), feed.Message())
	require.Len(t, feed.Data(), 1)
	assert.Equal(t, 1, feed.Data()[0].CommentsCount)

	// --- Gamification ---
	achievements := c.gamify.Achievements(ctx, userID)
	require.True(t, achievements.IsSuccess(), achievements.Message())
	unlocked := map[string]bool{}
	for _, a := range achievements.Data().Achievements {
		unlocked[a.Name] = a.Unlocked
	}
	assert.True(t, unlocked["First sprout"])
	assert.True(t, unlocked["Plant doctor"])
	assert.False(t, unlocked["Green thumb"])

	missions := c.gamify.Missions(ctx, userID)
	require.True(t, missions.IsSuccess(), missions.Message())
	assert.NotEmpty(t, missions.Data().Missions)

	// --- Sign out ---
	out := c.auth.Logout(ctx)
	require.True(t, out.IsSuccess(), out.Message())
	assert.False(t, c.auth.IsLoggedIn())
}

func TestDevServer_RejectsForeignTokens(t *testing.T) {
	ctx := context.Background()
	_, baseURL := startServer(t)

	token, err := utils.NewJWTManager("someone-else", time.Hour).GenerateJWT(1, "mallory", "m@example.com")
	require.NoError(t, err)
	api := apiclient.New(configs.APIConfig{BaseURL: baseURL, ConnectTimeout: 5 * time.Second}, apiclient.TokenFunc(func() string { return token }))

	_, err = api.Me(ctx)
	require.Error(t, err)
	apiErr, ok := apiclient.AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Could not validate credentials", apiErr.Detail)
}

func TestDevServer_CrossUserAccess(t *testing.T) {
	ctx := context.Background()
	_, baseURL := startServer(t)

	alice := newClient(t, baseURL)
	require.True(t, alice.auth.Register(ctx, models.RegisterInput{Username: "alice", Email: "alice@example.com", Password: "secret123"}).IsSuccess())
	bob := newClient(t, baseURL)
	bobUser := bob.auth.Register(ctx, models.RegisterInput{Username: "bob", Email: "bob@example.com", Password: "secret123"})
	require.True(t, bobUser.IsSuccess())

	peek := alice.plants.UserPlants(ctx, bobUser.Data().ID)
	require.True(t, peek.IsError())
	assert.Equal(t, http.StatusForbidden, peek.Code())
}
