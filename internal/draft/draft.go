// Package draft holds the in-progress product listing accumulated across the
// creation wizard. The draft is owned by the wizard model and touched by
// exactly one active step at a time, so no locking is needed.
package draft

import "strings"

// Listing is the structured content returned by the generation service.
// Field names mirror the response schema sent with the generation request.
// Once set on a draft it is treated as immutable output.
type Listing struct {
	TitleEnglish      string   `json:"title_english"`
	TitleHindi        string   `json:"title_hindi"`
	DescriptionShort  string   `json:"description_short"`
	DescriptionLong   string   `json:"description_long"`
	SuggestedPrice    float64  `json:"suggested_price"`
	BulkPrice         float64  `json:"bulk_price"`
	Hashtags          []string `json:"hashtags"`
	InstagramCaption  string   `json:"instagram_caption"`
	WhatsappMessage   string   `json:"whatsapp_message"`
	AuthenticityStory string   `json:"authenticity_story"`
}

// Draft is the accumulated state of one wizard session. It is created empty
// when the wizard starts and discarded on publish success or abandonment.
type Draft struct {
	Images          []string  // stored image references, ordered
	VoiceNote       string    // stored audio reference, empty if none
	TextDescription string    // typed story text
	CraftType       CraftType // empty until chosen
	Materials       []string  // toggled subset of MaterialOptions
	PriceHint       string    // advisory only, never validated
	TargetMarkets   []string  // toggled subset of MarketOptions
	Location        string    // free text, required for details
	Generated       *Listing  // nil until generation completes this session

	// EditedDescription holds the user's review-step rewrite of the long
	// description. Generated stays untouched once set; this field takes
	// precedence over Generated.DescriptionLong downstream.
	EditedDescription string
}

// New returns an empty draft.
func New() *Draft {
	return &Draft{}
}

// Patch is a partial update to a draft. Nil fields are left untouched;
// non-nil fields shallow-replace the corresponding draft field. No
// validation happens here - gating is a read-side concern of each step.
type Patch struct {
	Images          *[]string
	VoiceNote       *string
	TextDescription *string
	CraftType       *CraftType
	Materials       *[]string
	PriceHint       *string
	TargetMarkets   *[]string
	Location        *string
	Generated       *Listing

	EditedDescription *string
}

// Apply merges the patch into the draft, left-biased: absent fields keep
// their current values.
func (d *Draft) Apply(p Patch) {
	if p.Images != nil {
		d.Images = *p.Images
	}
	if p.VoiceNote != nil {
		d.VoiceNote = *p.VoiceNote
	}
	if p.TextDescription != nil {
		d.TextDescription = *p.TextDescription
	}
	if p.CraftType != nil {
		d.CraftType = *p.CraftType
	}
	if p.Materials != nil {
		d.Materials = *p.Materials
	}
	if p.PriceHint != nil {
		d.PriceHint = *p.PriceHint
	}
	if p.TargetMarkets != nil {
		d.TargetMarkets = *p.TargetMarkets
	}
	if p.Location != nil {
		d.Location = *p.Location
	}
	if p.Generated != nil {
		d.Generated = p.Generated
	}
	if p.EditedDescription != nil {
		d.EditedDescription = *p.EditedDescription
	}
}

// LongDescription returns the long description the listing should carry:
// the user's review-step edit when present, then the generated text, then
// the typed story.
func (d *Draft) LongDescription() string {
	if d.EditedDescription != "" {
		return d.EditedDescription
	}
	if d.Generated != nil && d.Generated.DescriptionLong != "" {
		return d.Generated.DescriptionLong
	}
	return d.TextDescription
}

// AddImage appends a stored image reference.
func (d *Draft) AddImage(ref string) {
	images := append(append([]string{}, d.Images...), ref)
	d.Apply(Patch{Images: &images})
}

// RemoveImage drops the image at index. Out-of-range indexes are ignored.
func (d *Draft) RemoveImage(index int) {
	if index < 0 || index >= len(d.Images) {
		return
	}
	images := append(append([]string{}, d.Images[:index]...), d.Images[index+1:]...)
	d.Apply(Patch{Images: &images})
}

// ToggleMaterial adds the material if absent, removes it if present.
func (d *Draft) ToggleMaterial(material string) {
	materials := toggle(d.Materials, material)
	d.Apply(Patch{Materials: &materials})
}

// ToggleMarket adds the target market if absent, removes it if present.
func (d *Draft) ToggleMarket(market string) {
	markets := toggle(d.TargetMarkets, market)
	d.Apply(Patch{TargetMarkets: &markets})
}

func toggle(set []string, value string) []string {
	for i, v := range set {
		if v == value {
			return append(append([]string{}, set[:i]...), set[i+1:]...)
		}
	}
	return append(append([]string{}, set...), value)
}

// HasMaterial reports whether the material is currently selected.
func (d *Draft) HasMaterial(material string) bool {
	return contains(d.Materials, material)
}

// HasMarket reports whether the target market is currently selected.
func (d *Draft) HasMarket(market string) bool {
	return contains(d.TargetMarkets, market)
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

// HasPhotos reports whether the photos step can advance.
func (d *Draft) HasPhotos() bool {
	return len(d.Images) > 0
}

// HasStory reports whether the story step can advance: a typed description
// longer than 10 characters (trimmed) or a recorded voice note, either one.
func (d *Draft) HasStory() bool {
	return len(strings.TrimSpace(d.TextDescription)) > 10 || d.VoiceNote != ""
}

// HasDetails reports whether the details step can advance: craft type chosen,
// at least one material, and a non-blank location.
func (d *Draft) HasDetails() bool {
	return d.CraftType != "" && len(d.Materials) > 0 && strings.TrimSpace(d.Location) != ""
}
