package draft

import "strings"

// CraftType is one value from the fixed craft taxonomy.
type CraftType string

// The closed set of craft types. "other" is the catch-all.
const (
	CraftPottery      CraftType = "pottery"
	CraftTextiles     CraftType = "textiles"
	CraftJewelry      CraftType = "jewelry"
	CraftWoodwork     CraftType = "woodwork"
	CraftMetalwork    CraftType = "metalwork"
	CraftPaintings    CraftType = "paintings"
	CraftSculptures   CraftType = "sculptures"
	CraftEmbroidery   CraftType = "embroidery"
	CraftLeatherGoods CraftType = "leather_goods"
	CraftBambooCrafts CraftType = "bamboo_crafts"
	CraftStoneCarving CraftType = "stone_carving"
	CraftGlassWork    CraftType = "glass_work"
	CraftOther        CraftType = "other"
)

// CraftTypes returns the taxonomy in display order.
func CraftTypes() []CraftType {
	return []CraftType{
		CraftPottery, CraftTextiles, CraftJewelry, CraftWoodwork,
		CraftMetalwork, CraftPaintings, CraftSculptures, CraftEmbroidery,
		CraftLeatherGoods, CraftBambooCrafts, CraftStoneCarving,
		CraftGlassWork, CraftOther,
	}
}

// Valid reports whether the value belongs to the taxonomy.
func (c CraftType) Valid() bool {
	for _, t := range CraftTypes() {
		if c == t {
			return true
		}
	}
	return false
}

// Label returns the human-readable form, e.g. "leather_goods" -> "Leather Goods".
func (c CraftType) Label() string {
	words := strings.Split(string(c), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// MaterialOptions is the fixed material vocabulary offered in the details step.
var MaterialOptions = []string{
	"Cotton", "Silk", "Wool", "Clay", "Wood", "Metal", "Stone",
	"Bamboo", "Leather", "Glass", "Silver", "Brass", "Natural Dyes",
}

// MarketOptions is the fixed target-market vocabulary offered in the details step.
var MarketOptions = []string{
	"Local Customers", "Tourists", "Online Buyers", "Wholesale",
	"Export", "Wedding Market", "Festival Season", "Corporate Gifts",
}
