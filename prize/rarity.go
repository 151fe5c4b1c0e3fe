package prize

// Rarity is a display tier derived from the win percentage.
type Rarity string

const (
	RarityNormal    Rarity = "Normal"
	RarityRare      Rarity = "Rare"
	RaritySuperRare Rarity = "SuperRare"
)

// Tier thresholds: >= 10% Normal, >= 3% Rare, below that SuperRare.
// Lower bounds are inclusive (exactly 10 is Normal, exactly 3 is Rare).
const (
	normalThreshold = 10
	rareThreshold   = 3
)

var rarityColors = map[Rarity]string{
	RarityNormal:    "#8d9099",
	RarityRare:      "#ffb205",
	RaritySuperRare: "#d9b34c",
}

var rarityIcons = map[Rarity]string{
	RarityNormal:    "●",
	RarityRare:      "★",
	RaritySuperRare: "✦",
}

// Classifier maps win percentages to rarity tiers and their fixed display
// attributes.
type Classifier struct{}

// Classify returns the tier for a win percentage in [0, 100].
func (Classifier) Classify(probability float64) Rarity {
	switch {
	case probability >= normalThreshold:
		return RarityNormal
	case probability >= rareThreshold:
		return RarityRare
	default:
		return RaritySuperRare
	}
}

// Color returns the tier's display color code.
func (Classifier) Color(r Rarity) string { return rarityColors[r] }

// Icon returns the tier's display icon.
func (Classifier) Icon(r Rarity) string { return rarityIcons[r] }
