package generate

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/janhvi-crypto/CraftConnect/internal/draft"
)

// MockClient is an offline Client for tests and local runs without an API
// key. It derives a deterministic listing from the draft.
type MockClient struct {
	// Err, when set, is returned instead of a listing.
	Err error
}

func (m *MockClient) Generate(_ context.Context, d *draft.Draft) (*draft.Listing, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	craft := d.CraftType.Label()
	if craft == "" {
		craft = "Handcraft"
	}
	material := "Mixed Media"
	if len(d.Materials) > 0 {
		material = d.Materials[0]
	}

	title := fmt.Sprintf("Handmade %s %s", material, craft)
	return &draft.Listing{
		TitleEnglish:     title,
		TitleHindi:       "हस्तनिर्मित " + craft,
		DescriptionShort: firstLine(d.TextDescription, 150),
		DescriptionLong:  d.TextDescription,
		SuggestedPrice:   500,
		BulkPrice:        400,
		Hashtags:         []string{"handmade", strings.ToLower(string(d.CraftType))},
		InstagramCaption: title + " ✨ straight from " + d.Location,
		WhatsappMessage:  "Namaste! Have a look at my new " + strings.ToLower(craft) + " piece.",
		AuthenticityStory: "This piece carries a craft tradition passed down through generations in " +
			d.Location + ".",
	}, nil
}

// firstLine returns the first line of s, cut to limit characters on a
// rune boundary.
func firstLine(s string, limit int) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if utf8.RuneCountInString(s) > limit {
		r := []rune(s)
		s = string(r[:limit])
	}
	return s
}
