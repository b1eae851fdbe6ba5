package model

import "strings"

// TierColor names the accent used for a tier badge
type TierColor string

const (
	TierGreen  TierColor = "green"
	TierBlue   TierColor = "blue"
	TierIndigo TierColor = "indigo"
	TierPurple TierColor = "purple"
	TierPink   TierColor = "pink"
	TierOrange TierColor = "orange"
	TierGray   TierColor = "gray"
)

// DefaultTierColor is used for tier names missing from the table
const DefaultTierColor = TierGray

// tierColors maps lower-cased tier names to badge colors.
// New tiers are added here, not as branches in TierColorFor.
var tierColors = map[string]TierColor{
	"free":       TierGreen,
	"hobby":      TierGreen,
	"pro":        TierBlue,
	"pro+":       TierIndigo,
	"max 5x":     TierPurple,
	"max 20x":    TierPink,
	"ultra":      TierPink,
	"business":   TierOrange,
	"enterprise": TierPurple,
	"team":       TierOrange,
	"teams":      TierOrange,
}

// TierColorFor returns the badge color of a tier name, case-insensitively
func TierColorFor(name string) TierColor {
	if c, ok := tierColors[strings.ToLower(name)]; ok {
		return c
	}
	return DefaultTierColor
}
