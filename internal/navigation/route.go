// Package navigation describes the screens of the client as value routes that
// can be handed from one command to the next as an opaque token.
package navigation

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
)

var (
	ErrUnknownRoute = errors.New("unknown route")
	ErrBadToken     = errors.New("malformed route token")
)

type Name string

const (
	Garden          Name = "garden"
	PlantDetail     Name = "plant_detail"
	AddPlant        Name = "add_plant"
	Capture         Name = "capture"
	DiagnosisDetail Name = "diagnosis_detail"
	History         Name = "history"
	Community       Name = "community"
	CommunityPost   Name = "community_post"
	CommunityShare  Name = "community_share"
	Gamification    Name = "gamification"
	Login           Name = "login"
)

var known = map[Name]bool{
	Garden: true, PlantDetail: true, AddPlant: true, Capture: true,
	DiagnosisDetail: true, History: true, Community: true, CommunityPost: true,
	CommunityShare: true, Gamification: true, Login: true,
}

// Route is a screen plus its arguments, encoded as JSON.
type Route struct {
	Name Name            `json:"name"`
	Args json.RawMessage `json:"args,omitempty"`
}

type idArgs struct {
	ID int `json:"id"`
}

// ====================================================================================
// Constructors
// ====================================================================================

func To(name Name) Route { return Route{Name: name} }

func ToPlant(plantID int) Route { return withArgs(PlantDetail, idArgs{ID: plantID}) }

func ToCommunityPost(postID int) Route { return withArgs(CommunityPost, idArgs{ID: postID}) }

// ToAddPlant opens the add-plant form, seeded from diagnosisID when > 0.
func ToAddPlant(diagnosisID int) Route {
	if diagnosisID <= 0 {
		return To(AddPlant)
	}
	return withArgs(AddPlant, idArgs{ID: diagnosisID})
}

// ToDiagnosis carries the complete diagnosis so the detail screen shows exactly
// what the capture screen received, without another request.
func ToDiagnosis(d models.Diagnosis) Route { return withArgs(DiagnosisDetail, d) }

func withArgs(name Name, args any) Route {
	// Args are plain structs of this package or models; Marshal cannot fail on them.
	raw, _ := json.Marshal(args)
	return Route{Name: name, Args: raw}
}

// ====================================================================================
// Arguments
// ====================================================================================

// ID returns the id argument of plant, post and add-plant routes (0 when absent).
func (r Route) ID() (int, error) {
	if len(r.Args) == 0 {
		return 0, nil
	}
	var a idArgs
	if err := json.Unmarshal(r.Args, &a); err != nil {
		return 0, fmt.Errorf("route %s: %w", r.Name, err)
	}
	return a.ID, nil
}

// Diagnosis returns the diagnosis carried by a DiagnosisDetail route.
func (r Route) Diagnosis() (models.Diagnosis, error) {
	var d models.Diagnosis
	if r.Name != DiagnosisDetail {
		return d, fmt.Errorf("route %s carries no diagnosis", r.Name)
	}
	if err := json.Unmarshal(r.Args, &d); err != nil {
		return d, fmt.Errorf("route %s: %w", r.Name, err)
	}
	return d, nil
}

// ====================================================================================
// Tokens
// ====================================================================================

// Encode serialises r as unpadded base64url JSON, safe to paste on a command line.
func Encode(r Route) (string, error) {
	if !known[r.Name] {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoute, r.Name)
	}
	raw, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to encode route %s: %w", r.Name, err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func Decode(token string) (Route, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Route{}, fmt.Errorf("%w: %v", ErrBadToken, err)
	}
	var r Route
	if err := json.Unmarshal(raw, &r); err != nil {
		return Route{}, fmt.Errorf("%w: %v", ErrBadToken, err)
	}
	if !known[r.Name] {
		return Route{}, fmt.Errorf("%w: %q", ErrUnknownRoute, r.Name)
	}
	return r, nil
}
