package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/rs/xid"
)

// Product is a published catalog listing. Field names follow the
// marketplace wire format.
type Product struct {
	ID                string    `json:"id"`
	ArtisanID         string    `json:"artisan_id"`
	TitleEnglish      string    `json:"title_english"`
	TitleHindi        string    `json:"title_hindi,omitempty"`
	DescriptionShort  string    `json:"description_short"`
	DescriptionLong   string    `json:"description_long,omitempty"`
	Price             float64   `json:"price"`
	BulkPrice         float64   `json:"bulk_price"`
	Images            []string  `json:"images"`
	VoiceNote         string    `json:"voice_note,omitempty"`
	CraftType         string    `json:"craft_type"`
	Materials         []string  `json:"materials"`
	Colors            []string  `json:"colors"`
	Location          string    `json:"location"`
	MinimumOrder      int       `json:"minimum_order"`
	TargetMarkets     []string  `json:"target_markets,omitempty"`
	Status            string    `json:"status"`
	SEOTags           []string  `json:"seo_tags"`
	Certificate       string    `json:"certificate"`
	Hashtags          []string  `json:"hashtags,omitempty"`
	InstagramCaption  string    `json:"instagram_caption,omitempty"`
	WhatsappMessage   string    `json:"whatsapp_message,omitempty"`
	AuthenticityStory string    `json:"authenticity_story,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// ProductCreate appends a product to the catalog. ID and CreatedAt are
// assigned here if unset. Returns the stored product.
func (s *Store) ProductCreate(ctx context.Context, p Product) (*Product, error) {
	if p.TitleEnglish == "" {
		return nil, fmt.Errorf("title is required")
	}

	if p.ID == "" {
		p.ID = xid.New().String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal product: %w", err)
	}

	event := Event{
		ID:        p.ID,
		Timestamp: p.CreatedAt,
		Entity:    EntityProduct,
		Action:    "create",
		Data:      data,
	}
	if _, err := s.PublishEvent(ctx, event); err != nil {
		return nil, err
	}

	return &p, nil
}

// ProductList returns all products, newest first.
func (s *Store) ProductList(ctx context.Context) ([]*Product, error) {
	state, err := s.LoadState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	products := state.Products
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}
