// internal/service/store.go
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidCredentials    = errors.New("incorrect username/email or password")
	ErrUsernameOrEmailExists = errors.New("username or email already registered")
	ErrTokenFailed           = errors.New("failed to issue token")
	ErrPlantNotFound         = errors.New("plant not found")
	ErrNotPlantOwner         = errors.New("plant belongs to another user")
	ErrDiagnosisNotFound     = errors.New("diagnosis not found")
	ErrPostNotFound          = errors.New("post not found")
	ErrUploadNotFound        = errors.New("upload not found")
)

// xpPerLevel is the XP needed for each level; level n starts at (n-1)*xpPerLevel.
const xpPerLevel = 100

// UploadsPrefix is the path under which stored photos are served.
const UploadsPrefix = "/uploads/"

type account struct {
	user         models.User
	passwordHash string
	lastActive   time.Time
}

// activity counts what a user did, overall and on the current UTC day.
type activity struct {
	waterings, fertilizings, diagnoses, posts, comments int

	day            string
	todayWaterings int
	todayDiagnoses int
	todayComments  int
}

type diagnosisEntry struct {
	record models.DiagnosisRecord
	result models.Diagnosis
}

type upload struct {
	data     []byte
	mimeType string
}

// Store is the in-memory state of the stub server. Every service method takes the
// lock once, so each operation is atomic with respect to the others.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	seq        map[string]int
	accounts   map[int]*account
	plants     map[int]*models.Plant
	diagnoses  map[int]*diagnosisEntry
	feedback   map[int]models.DiagnosisFeedbackInput
	posts      map[int]*models.CommunityPost
	likes      map[int]map[int]bool
	comments   map[int][]models.Comment
	uploads    map[string]upload
	activities map[int]*activity
	unlocked   map[int]map[int]time.Time
}

func NewStore() *Store {
	return &Store{
		now:        time.Now,
		seq:        make(map[string]int),
		accounts:   make(map[int]*account),
		plants:     make(map[int]*models.Plant),
		diagnoses:  make(map[int]*diagnosisEntry),
		feedback:   make(map[int]models.DiagnosisFeedbackInput),
		posts:      make(map[int]*models.CommunityPost),
		likes:      make(map[int]map[int]bool),
		comments:   make(map[int][]models.Comment),
		uploads:    make(map[string]upload),
		activities: make(map[int]*activity),
		unlocked:   make(map[int]map[int]time.Time),
	}
}

// SetClock replaces the time source. Tests use it to pin timestamps and streaks.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// ====================================================================================
// Helpers (callers hold s.mu)
// ====================================================================================

func (s *Store) next(kind string) int {
	s.seq[kind]++
	return s.seq[kind]
}

func (s *Store) timestamp() models.Timestamp {
	return models.NewTimestamp(s.now())
}

func (s *Store) activity(userID int) *activity {
	a, ok := s.activities[userID]
	if !ok {
		a = &activity{}
		s.activities[userID] = a
	}
	today := s.now().UTC().Format(time.DateOnly)
	if a.day != today {
		a.day = today
		a.todayWaterings = 0
		a.todayDiagnoses = 0
		a.todayComments = 0
	}
	return a
}

// award adds XP and points and recomputes the level.
func (s *Store) award(userID, xp, points int) {
	acc, ok := s.accounts[userID]
	if !ok {
		return
	}
	acc.user.XP += xp
	acc.user.Points += points
	acc.user.Level = 1 + acc.user.XP/xpPerLevel
}

// touch updates the daily streak: consecutive UTC days extend it, a gap resets it.
func (s *Store) touch(userID int) {
	acc, ok := s.accounts[userID]
	if !ok {
		return
	}
	now := s.now().UTC()
	today := now.Truncate(24 * time.Hour)
	last := acc.lastActive.UTC().Truncate(24 * time.Hour)

	switch {
	case acc.lastActive.IsZero():
		acc.user.StreakDays = 1
	case today.Equal(last):
	case today.Sub(last) == 24*time.Hour:
		acc.user.StreakDays++
	default:
		acc.user.StreakDays = 1
	}
	acc.lastActive = now
}

// saveUpload keeps a photo and returns the relative URL it is served under.
func (s *Store) saveUpload(data []byte, mimeType string) string {
	ext := ""
	if m := mimetype.Lookup(mimeType); m != nil {
		ext = m.Extension()
	}
	name := uuid.NewString() + ext
	s.uploads[name] = upload{data: data, mimeType: mimeType}
	return UploadsPrefix + name
}

func (s *Store) authorName(userID int, anonymous bool) string {
	if anonymous {
		return "Anonymous"
	}
	if acc, ok := s.accounts[userID]; ok {
		return acc.user.Username
	}
	return "Gardener"
}

// ====================================================================================
// Uploads
// ====================================================================================

type uploadServiceImpl struct {
	store *Store
}

// NewUploadService serves the photos saved by the other services.
func NewUploadService(store *Store) UploadService {
	return &uploadServiceImpl{store: store}
}

func (u *uploadServiceImpl) Upload(_ context.Context, name string) ([]byte, string, error) {
	u.store.mu.RLock()
	defer u.store.mu.RUnlock()
	up, ok := u.store.uploads[name]
	if !ok {
		return nil, "", ErrUploadNotFound
	}
	return up.data, up.mimeType, nil
}
