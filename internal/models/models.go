package models

// Wire DTOs of the plant-care backend. Field names follow the backend's JSON
// (snake_case). Optional fields are pointers so "absent" and "zero" stay distinct.

// ====================================================================================
// Auth
// ====================================================================================

type User struct {
	ID         int     `json:"id"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	FullName   *string `json:"full_name,omitempty"`
	Level      int     `json:"level"`
	XP         int     `json:"xp"`
	Points     int     `json:"points"`
	StreakDays int     `json:"streak_days"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

type LoginInput struct {
	EmailOrUsername string `json:"email_or_username" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

type RegisterInput struct {
	Username string  `json:"username" validate:"required,min=3,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	FullName *string `json:"full_name,omitempty"`
}

type LogoutResponse struct {
	Message string `json:"message"`
	UserID  int    `json:"user_id"`
}

// ====================================================================================
// Plants
// ====================================================================================

type PlantStatus string

const (
	PlantStatusHealthy        PlantStatus = "healthy"
	PlantStatusNeedsAttention PlantStatus = "needs_attention"
	PlantStatusSick           PlantStatus = "sick"
)

type Plant struct {
	ID             int         `json:"id"`
	UserID         int         `json:"user_id"`
	Name           string      `json:"name"`
	Species        *string     `json:"species,omitempty"`
	Description    *string     `json:"description,omitempty"`
	ImageURL       *string     `json:"image_url,omitempty"`
	Location       *string     `json:"location,omitempty"`
	Status         PlantStatus `json:"status"`
	HealthScore    int         `json:"health_score"`
	LastWatered    *Timestamp  `json:"last_watered,omitempty"`
	LastFertilized *Timestamp  `json:"last_fertilized,omitempty"`
	CreatedAt      Timestamp   `json:"created_at,omitzero"`
}

type PlantCreateInput struct {
	Name        string  `json:"name" validate:"required,notblank,max=100"`
	UserID      int     `json:"user_id" validate:"required,gt=0"`
	Species     *string `json:"species,omitempty"`
	Location    *string `json:"location,omitempty"`
	DiagnosisID *int    `json:"diagnosis_id,omitempty" validate:"omitempty,gt=0"`
}

type PlantUpdateInput struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,notblank,max=100"`
	Species     *string `json:"species,omitempty"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CareResponse is returned by the water and fertilize endpoints.
type CareResponse struct {
	Message        string     `json:"message"`
	LastWatered    *Timestamp `json:"last_watered,omitempty"`
	LastFertilized *Timestamp `json:"last_fertilized,omitempty"`
}

type DeletePlantResponse struct {
	Message string `json:"message"`
	PlantID int    `json:"plant_id"`
}

type ProgressStats struct {
	TotalPlants    int `json:"total_plants"`
	HealthyPlants  int `json:"healthy_plants"`
	DiagnosesCount int `json:"diagnoses_count"`
	StreakDays     int `json:"streak_days"`
	Level          int `json:"level"`
	XP             int `json:"xp"`
	NextLevelXP    int `json:"next_level_xp"`
}

// ====================================================================================
// Diagnosis
// ====================================================================================

// CaptureGuidance is the photo pre-check result. Success tells whether the photo
// is good enough for a full diagnosis.
type CaptureGuidance struct {
	Step     string  `json:"step"`
	Message  string  `json:"message"`
	Success  bool    `json:"success"`
	Guidance string  `json:"guidance"`
	AudioURL *string `json:"audio_url,omitempty"`
}

type WeeklyTask struct {
	Day      string `json:"day"`
	Task     string `json:"task"`
	Priority string `json:"priority"`
}

// Diagnosis is immutable once returned by the backend.
type Diagnosis struct {
	DiagnosisID     int          `json:"diagnosis_id"`
	DiagnosisText   string       `json:"diagnosis_text"`
	DiseaseName     *string      `json:"disease_name"`
	Confidence      float64      `json:"confidence"`
	Severity        string       `json:"severity"`
	Recommendations []string     `json:"recommendations"`
	WeeklyPlan      []WeeklyTask `json:"weekly_plan"`
	AudioURL        *string      `json:"audio_url,omitempty"`
}

// DiagnosisRecord is a stored diagnosis as returned by the detail and history endpoints.
type DiagnosisRecord struct {
	ID              int       `json:"id"`
	PlantID         *int      `json:"plant_id"`
	PlantName       string    `json:"plant_name"`
	UserID          int       `json:"user_id,omitempty"`
	DiagnosisText   string    `json:"diagnosis_text"`
	DiseaseName     *string   `json:"disease_name"`
	Severity        string    `json:"severity"`
	Confidence      float64   `json:"confidence"`
	ImageURL        *string   `json:"image_url,omitempty"`
	Recommendations []string  `json:"recommendations"`
	CreatedAt       Timestamp `json:"created_at"`
}

type DiagnosisHistory struct {
	Diagnoses []DiagnosisRecord `json:"diagnoses"`
	Total     int               `json:"total"`
}

type DiagnosisFeedbackInput struct {
	IsCorrect        bool    `json:"is_correct"`
	CorrectDiagnosis *string `json:"correct_diagnosis,omitempty"`
	FeedbackText     *string `json:"feedback_text,omitempty"`
}

type DiagnosisFeedbackResponse struct {
	Message    string `json:"message"`
	FeedbackID int    `json:"feedback_id"`
	IsCorrect  bool   `json:"is_correct"`
}

// ====================================================================================
// Community
// ====================================================================================

type PostStatus string

const (
	PostStatusPending  PostStatus = "pending"
	PostStatusApproved PostStatus = "approved"
	PostStatusResolved PostStatus = "resolved"
)

type CommunityPost struct {
	ID            int        `json:"id"`
	DiagnosisID   int        `json:"diagnosis_id"`
	UserID        int        `json:"user_id"`
	AuthorName    string     `json:"author_name"`
	IsAnonymous   bool       `json:"is_anonymous"`
	PlantName     *string    `json:"plant_name,omitempty"`
	Description   *string    `json:"description,omitempty"`
	ImageURL      *string    `json:"image_url,omitempty"`
	Likes         int        `json:"likes"`
	CommentsCount int        `json:"comments_count"`
	Status        PostStatus `json:"status"`
	CreatedAt     Timestamp  `json:"created_at"`
}

type CommunityPostCreateInput struct {
	DiagnosisID int      `json:"diagnosis_id" validate:"required,gt=0"`
	IsAnonymous bool     `json:"is_anonymous"`
	Tags        []string `json:"tags,omitempty"`
}

// CommunityImagePostInput describes a post shared straight from a captured photo
// (sent as multipart, not JSON).
type CommunityImagePostInput struct {
	ImagePath   string  `validate:"required"`
	Description string  `validate:"required,notblank"`
	PlantName   *string
	Symptoms    *string
	IsAnonymous bool
	UserID      int `validate:"required,gt=0"`
}

type Comment struct {
	ID         int       `json:"id"`
	PostID     int       `json:"post_id"`
	UserID     int       `json:"user_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	IsSolution bool      `json:"is_solution"`
	Likes      int       `json:"likes"`
	CreatedAt  Timestamp `json:"created_at"`
}

type CommentCreateInput struct {
	Content    string `json:"content" validate:"required,notblank"`
	IsSolution bool   `json:"is_solution"`
}

type CommentCreatedResponse struct {
	Message   string `json:"message"`
	CommentID int    `json:"comment_id"`
}

// LikeResponse is the server-confirmed outcome of a like toggle.
type LikeResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Liked      bool   `json:"liked"`
	TotalLikes int    `json:"total_likes"`
}

type LikedResponse struct {
	Liked bool `json:"liked"`
}

// ====================================================================================
// Gamification
// ====================================================================================

type Achievement struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Points      int        `json:"points"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *Timestamp `json:"unlocked_at,omitempty"`
	Progress    *int       `json:"progress,omitempty"`
	Target      *int       `json:"target,omitempty"`
}

type AchievementsResponse struct {
	Achievements []Achievement `json:"achievements"`
	TotalPoints  int           `json:"total_points"`
}

type Mission struct {
	ID           int        `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	RewardXP     int        `json:"reward_xp"`
	RewardPoints int        `json:"reward_points"`
	Progress     int        `json:"progress"`
	Target       int        `json:"target"`
	Completed    bool       `json:"completed"`
	ExpiresAt    *Timestamp `json:"expires_at,omitempty"`
}

type MissionsResponse struct {
	Missions []Mission `json:"missions"`
}

// ====================================================================================
// Errors
// ====================================================================================

// HealthResponse is served by GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	App     string `json:"app"`
	Version string `json:"version"`
}

// APIError is the error body the backend sends with 4xx/5xx responses.
type APIError struct {
	Detail string `json:"detail"`
}
