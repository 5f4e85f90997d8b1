// Package publish turns a finished wizard draft into a catalog product.
// Generated content is preferred where present; every field has a fallback
// so publishing never blocks on a missing generation.
package publish

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rs/xid"

	"github.com/janhvi-crypto/CraftConnect/internal/draft"
	"github.com/janhvi-crypto/CraftConnect/internal/logger"
	"github.com/janhvi-crypto/CraftConnect/internal/store"
)

const shortDescriptionLimit = 150

// Assemble builds the product payload from a draft without storing it.
// Fallback rules:
//   - title falls back to "Handcrafted Item"
//   - short description falls back to the first 150 characters of the
//     typed story
//   - colors default to Natural, minimum order to 1
//   - the certificate id is freshly minted per publish
func Assemble(d *draft.Draft) store.Product {
	p := store.Product{
		TitleEnglish:     "Handcrafted Item",
		DescriptionShort: truncate(d.TextDescription, shortDescriptionLimit),
		DescriptionLong:  d.TextDescription,
		Images:           d.Images,
		VoiceNote:        d.VoiceNote,
		CraftType:        string(d.CraftType),
		Materials:        d.Materials,
		Colors:           []string{"Natural"},
		Location:         d.Location,
		MinimumOrder:     1,
		TargetMarkets:    d.TargetMarkets,
		Status:           "published",
		SEOTags:          seoTags(d),
		Certificate:      "CRAFT-" + xid.New().String(),
	}

	if g := d.Generated; g != nil {
		if g.TitleEnglish != "" {
			p.TitleEnglish = g.TitleEnglish
		}
		p.TitleHindi = g.TitleHindi
		if g.DescriptionShort != "" {
			p.DescriptionShort = g.DescriptionShort
		}
		if g.DescriptionLong != "" {
			p.DescriptionLong = g.DescriptionLong
		}
		p.Price = g.SuggestedPrice
		p.BulkPrice = g.BulkPrice
		p.Hashtags = g.Hashtags
		p.InstagramCaption = g.InstagramCaption
		p.WhatsappMessage = g.WhatsappMessage
		p.AuthenticityStory = g.AuthenticityStory
	}

	// A review-step edit wins over both the generated and the typed text.
	p.DescriptionLong = d.LongDescription()

	return p
}

// Publish resolves the artisan, assembles the draft, and appends it to
// the catalog. A missing profile surfaces as store.ErrNoProfile so the
// wizard can tell the user to run setup; the draft stays untouched.
func Publish(ctx context.Context, s *store.Store, d *draft.Draft) (*store.Product, error) {
	artisan, err := s.CurrentUser(ctx)
	if err != nil {
		logger.Error("Publish blocked: %v", err)
		return nil, err
	}

	p := Assemble(d)
	p.ArtisanID = artisan.ID
	logger.Info("Publishing product for %s: %s (certificate %s)", artisan.Name, p.TitleEnglish, p.Certificate)

	stored, err := s.ProductCreate(ctx, p)
	if err != nil {
		logger.Error("Publish failed: %v", err)
		return nil, err
	}
	return stored, nil
}

func seoTags(d *draft.Draft) []string {
	tags := make([]string, 0, 4)
	if d.CraftType != "" {
		tags = append(tags, string(d.CraftType))
	}
	if d.Location != "" {
		tags = append(tags, d.Location)
	}
	return append(tags, "handmade", "authentic")
}

// truncate cuts s to limit characters, never splitting a rune: Hindi
// stories must stay valid UTF-8 after the cut.
func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	r := []rune(s)
	return string(r[:limit])
}
