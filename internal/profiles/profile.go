// Package profiles stores user skill profiles and the recommendations last
// produced for them.
package profiles

import (
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/spigell/career-scorer/internal/recommend"
)

var (
	// ErrNotFound is returned when no profile exists for a user.
	ErrNotFound = errors.New("profile not found")
	// ErrInvalidPatch is returned when a profile update cannot be applied.
	ErrInvalidPatch = errors.New("invalid profile patch")
)

type Profile struct {
	UserID    string    `json:"user_id" mapstructure:"-"`
	Interests string    `json:"interests" mapstructure:"interests"`
	Skills    []string  `json:"skills" mapstructure:"skills"`
	Projects  []string  `json:"projects" mapstructure:"projects"`
	UpdatedAt time.Time `json:"updated_at" mapstructure:"-"`
}

// Ranking returns the part of the profile the ranker consumes.
func (p *Profile) Ranking() recommend.Profile {
	return recommend.Profile{
		Interests: p.Interests,
		Skills:    p.Skills,
		Projects:  p.Projects,
	}
}

// Apply merges patch into the profile. Keys absent from patch keep their
// current values; unknown keys are rejected.
func (p *Profile) Apply(patch map[string]any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           p,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		ZeroFields:       true,
	})
	if err != nil {
		return fmt.Errorf("create profile decoder: %w", err)
	}

	if err := decoder.Decode(patch); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}
	return nil
}

// Recommendations is the last ranking stored for a user.
type Recommendations struct {
	UserID    string                     `json:"user_id"`
	Domains   []recommend.Recommendation `json:"domains"`
	CreatedAt time.Time                  `json:"timestamp"`
}
