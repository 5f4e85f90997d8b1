package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/xid"
)

// ErrNoProfile is returned by CurrentUser before setup has stored an
// artisan profile.
var ErrNoProfile = errors.New("no artisan profile: run setup first")

// Artisan is the seller's profile. The ID is assigned on the first
// ProfileSet and stays stable across profile replacements.
type Artisan struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Location string    `json:"location"`
	Craft    string    `json:"craft,omitempty"`
	JoinedAt time.Time `json:"joined_at"`
}

// ProfileSet stores or replaces the artisan profile. The original JoinedAt
// is preserved across replacements.
func (s *Store) ProfileSet(ctx context.Context, a Artisan) error {
	if a.Name == "" {
		return fmt.Errorf("name is required")
	}
	if a.ID == "" {
		a.ID = xid.New().String()
	}

	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	event := Event{
		Entity: EntityProfile,
		Action: "set",
		Data:   data,
	}
	_, err = s.PublishEvent(ctx, event)
	return err
}

// CurrentUser returns the stored artisan profile, or ErrNoProfile when
// setup has not run yet.
func (s *Store) CurrentUser(ctx context.Context) (*Artisan, error) {
	state, err := s.LoadState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	if state.Profile == nil {
		return nil, ErrNoProfile
	}
	return state.Profile, nil
}
