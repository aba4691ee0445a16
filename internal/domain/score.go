package domain

import "fmt"

// DefaultScore is the fallback assessment substituted whenever the external
// scorer cannot produce one. The breakdown values are the historical defaults
// and intentionally do not line up with the maxima the report prints; see
// DESIGN.md.
func DefaultScore() TransparencyScore {
	return TransparencyScore{
		Score: 85,
		Grade: "B - Good Transparency",
		Breakdown: ScoreBreakdown{
			BasicInfo:              30,
			DescriptionQuality:     15,
			IngredientTransparency: 15,
			Certifications:         10,
			ManufacturingInfo:      15,
		},
		Recommendations: []string{},
	}
}

// Validate reports whether the score is complete enough to render. Score
// resolution guarantees a valid value, so a failure here is a programming
// error on the caller's side.
func (s TransparencyScore) Validate() error {
	if s.Score < 0 || s.Score > 100 {
		return fmt.Errorf("score %d outside [0,100]", s.Score)
	}
	if s.Grade == "" {
		return fmt.Errorf("empty grade")
	}
	return nil
}
