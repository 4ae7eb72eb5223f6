package usecase

import (
	"strings"

	"github.com/safeglow/backend/internal/domain"
)

// Keyword taxonomy. Terms are matched as lowercase substrings of the input,
// with no tokenization, stemming or negation handling: "fragrance-free"
// still counts as fragrance. "oil-free" belongs to the oily-marketing list
// only and must not be moved into the heavy-product list.
var (
	fragranceTerms = []string{"fragrance", "parfum", "perfume"}

	harshAlcoholTerms = []string{"alcohol denat", "denatured alcohol"}

	scrubOrPeelTerms = []string{"scrub", "exfoliating", "peeling", "peel"}

	heavyProductTerms = []string{
		"heavy cream", "rich cream", "body butter",
		"facial oil", "nourishing oil", "face oil",
	}

	oilyMarketingTerms = []string{
		"for oily skin", "oily skin", "oil control", "oil-control",
		"oil free", "oil-free", "mattifying", "matte finish",
		"anti acne", "acne control",
	}

	dryMarketingTerms = []string{
		"for dry skin", "dry skin", "very dry skin",
		"intense hydration", "deeply moisturizing", "extra nourishing",
	}

	sensitiveMarketingTerms = []string{"for sensitive skin", "sensitive skin"}

	brighteningActiveTerms = []string{
		"brightening", "whitening", "lightening", "retinol",
		"vitamin c", "aha", "bha", "peel",
	}
)

// ExtractSignals derives the signal set from free text. It never depends on
// skin type and is total over all strings; empty text yields no signals.
func ExtractSignals(text string) domain.SignalSet {
	lower := strings.ToLower(text)

	return domain.SignalSet{
		HasFragrance:       containsAny(lower, fragranceTerms),
		HasHarshAlcohol:    containsAny(lower, harshAlcoholTerms),
		HasScrubOrPeel:     containsAny(lower, scrubOrPeelTerms),
		IsHeavyProduct:     containsAny(lower, heavyProductTerms),
		MentionsOily:       containsAny(lower, oilyMarketingTerms),
		MentionsDry:        containsAny(lower, dryMarketingTerms),
		MentionsSensitive:  containsAny(lower, sensitiveMarketingTerms),
		BrighteningActives: containsAny(lower, brighteningActiveTerms),
	}
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// SafetyRule maps a signal predicate to the verdict it produces
type SafetyRule struct {
	Name    string
	Matches func(s domain.SignalSet) bool
	Verdict domain.Verdict
}

// safetyRules holds the ordered rule list per skin type. Within a list the
// first matching rule wins; when nothing matches the verdict is safe.
var safetyRules = map[domain.SkinType][]SafetyRule{
	domain.SkinTypeDry: {
		{
			Name:    "oily-targeted",
			Matches: func(s domain.SignalSet) bool { return s.MentionsOily },
			Verdict: domain.VerdictAvoid,
		},
		{
			Name:    "harsh-alcohol",
			Matches: func(s domain.SignalSet) bool { return s.HasHarshAlcohol },
			Verdict: domain.VerdictAvoid,
		},
		{
			Name:    "scrub-or-fragrance",
			Matches: func(s domain.SignalSet) bool { return s.HasScrubOrPeel || s.HasFragrance },
			Verdict: domain.VerdictCaution,
		},
	},
	domain.SkinTypeOily: {
		{
			Name:    "heavy-or-dry-targeted",
			Matches: func(s domain.SignalSet) bool { return s.IsHeavyProduct || s.MentionsDry },
			Verdict: domain.VerdictAvoid,
		},
		{
			Name:    "sensitive-targeted",
			Matches: func(s domain.SignalSet) bool { return s.MentionsSensitive },
			Verdict: domain.VerdictCaution,
		},
	},
	domain.SkinTypeCombination: {
		{
			Name:    "heavy-and-dry-targeted",
			Matches: func(s domain.SignalSet) bool { return s.IsHeavyProduct && s.MentionsDry },
			Verdict: domain.VerdictAvoid,
		},
		{
			Name:    "single-zone-targeted",
			Matches: func(s domain.SignalSet) bool { return s.MentionsOily || s.MentionsDry },
			Verdict: domain.VerdictCaution,
		},
		{
			Name:    "fragrance",
			Matches: func(s domain.SignalSet) bool { return s.HasFragrance },
			Verdict: domain.VerdictCaution,
		},
	},
	domain.SkinTypeSensitive: {
		{
			Name:    "irritant",
			Matches: func(s domain.SignalSet) bool { return s.HasFragrance || s.HasHarshAlcohol || s.HasScrubOrPeel },
			Verdict: domain.VerdictAvoid,
		},
		{
			Name:    "strong-actives",
			Matches: func(s domain.SignalSet) bool { return s.BrighteningActives },
			Verdict: domain.VerdictCaution,
		},
	},
	domain.SkinTypeNormal: {
		{
			Name:    "alcohol-or-heavy",
			Matches: func(s domain.SignalSet) bool { return s.HasHarshAlcohol || s.IsHeavyProduct },
			Verdict: domain.VerdictCaution,
		},
	},
}

// RulesFor returns the ordered rule list for a skin type. Unrecognized skin
// types, including the empty string, get the normal list.
func RulesFor(skinType domain.SkinType) []SafetyRule {
	if rules, ok := safetyRules[skinType]; ok {
		return rules
	}
	return safetyRules[domain.SkinTypeNormal]
}

// Evaluate returns the verdict for the signals and the name of the rule that
// produced it. The name is empty when no rule matched.
func Evaluate(skinType domain.SkinType, signals domain.SignalSet) (domain.Verdict, string) {
	for _, rule := range RulesFor(skinType) {
		if rule.Matches(signals) {
			return rule.Verdict, rule.Name
		}
	}
	return domain.VerdictSafe, ""
}

// Classify maps a skin type and signal set to a verdict
func Classify(skinType domain.SkinType, signals domain.SignalSet) domain.Verdict {
	verdict, _ := Evaluate(skinType, signals)
	return verdict
}

// AnalyzeSafety extracts signals from text and classifies them for the skin type
func AnalyzeSafety(skinType domain.SkinType, text string) domain.Verdict {
	return Classify(skinType, ExtractSignals(text))
}
