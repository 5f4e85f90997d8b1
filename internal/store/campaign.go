package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/rs/xid"
)

// Campaign is a marketing campaign tied to a product.
type Campaign struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id,omitempty"`
	Name      string    `json:"name"`
	Platform  string    `json:"platform"` // instagram, whatsapp, ...
	Status    string    `json:"status"`   // draft, active
	CreatedAt time.Time `json:"created_at"`
}

// CampaignCreate appends a campaign to the log.
func (s *Store) CampaignCreate(ctx context.Context, c Campaign) (*Campaign, error) {
	if c.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	if c.ID == "" {
		c.ID = xid.New().String()
	}
	if c.Status == "" {
		c.Status = "draft"
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}

	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal campaign: %w", err)
	}

	event := Event{
		ID:        c.ID,
		Timestamp: c.CreatedAt,
		Entity:    EntityCampaign,
		Action:    "create",
		Data:      data,
	}
	if _, err := s.PublishEvent(ctx, event); err != nil {
		return nil, err
	}

	return &c, nil
}

// CampaignList returns all campaigns, newest first.
func (s *Store) CampaignList(ctx context.Context) ([]*Campaign, error) {
	state, err := s.LoadState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	campaigns := state.Campaigns
	sort.SliceStable(campaigns, func(i, j int) bool {
		return campaigns[i].CreatedAt.After(campaigns[j].CreatedAt)
	})
	return campaigns, nil
}
