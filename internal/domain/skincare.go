package domain

// SkinType is the user's declared or quiz-derived skin category
type SkinType string

const (
	SkinTypeDry         SkinType = "dry"
	SkinTypeOily        SkinType = "oily"
	SkinTypeCombination SkinType = "combination"
	SkinTypeSensitive   SkinType = "sensitive"
	SkinTypeNormal      SkinType = "normal"
)

// SkinTypes lists every recognized skin type
var SkinTypes = []SkinType{
	SkinTypeDry,
	SkinTypeOily,
	SkinTypeCombination,
	SkinTypeSensitive,
	SkinTypeNormal,
}

// IsKnown reports whether s is one of the recognized skin types
func (s SkinType) IsKnown() bool {
	for _, known := range SkinTypes {
		if s == known {
			return true
		}
	}
	return false
}

// Verdict is the safety classification of a product for a skin type
type Verdict string

const (
	VerdictSafe    Verdict = "safe"
	VerdictCaution Verdict = "caution"
	VerdictAvoid   Verdict = "avoid"
)

// Severity orders verdicts: avoid > caution > safe
func (v Verdict) Severity() int {
	switch v {
	case VerdictAvoid:
		return 2
	case VerdictCaution:
		return 1
	default:
		return 0
	}
}

// SignalSet holds the boolean facts extracted from product text
type SignalSet struct {
	HasFragrance       bool `json:"hasFragrance"`
	HasHarshAlcohol    bool `json:"hasHarshAlcohol"`
	HasScrubOrPeel     bool `json:"hasScrubOrPeel"`
	IsHeavyProduct     bool `json:"isHeavyProduct"`
	MentionsOily       bool `json:"mentionsOily"`
	MentionsDry        bool `json:"mentionsDry"`
	MentionsSensitive  bool `json:"mentionsSensitive"`
	BrighteningActives bool `json:"brighteningActives"`
}

// Product is a search result annotated with a safety verdict
type Product struct {
	Title   string  `json:"title"`
	Snippet string  `json:"snippet"`
	Link    string  `json:"link"`
	Source  string  `json:"source"`
	Image   *string `json:"image"` // nil when the result carries no image metadata
	Verdict Verdict `json:"verdict"`
}

// RecommendResponse is the payload returned by the recommend endpoint
type RecommendResponse struct {
	Products []Product `json:"products"`
}
