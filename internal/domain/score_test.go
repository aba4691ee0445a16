package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultScore(t *testing.T) {
	s := DefaultScore()

	assert.Equal(t, 85, s.Score)
	assert.Equal(t, "B - Good Transparency", s.Grade)
	assert.Equal(t, ScoreBreakdown{
		BasicInfo:              30,
		DescriptionQuality:     15,
		IngredientTransparency: 15,
		Certifications:         10,
		ManufacturingInfo:      15,
	}, s.Breakdown)
	assert.Empty(t, s.Recommendations)
	assert.NotNil(t, s.Recommendations)

	require.NoError(t, s.Validate())
}

func TestDefaultScoreIsolation(t *testing.T) {
	// Mutating one copy must not leak into the next.
	a := DefaultScore()
	a.Recommendations = append(a.Recommendations, "changed")
	b := DefaultScore()
	assert.Empty(t, b.Recommendations)
}

func TestTransparencyScoreValidate(t *testing.T) {
	valid := TransparencyScore{Score: 50, Grade: "C - Moderate Transparency"}
	assert.NoError(t, valid.Validate())

	for _, score := range []int{0, 100} {
		s := TransparencyScore{Score: score, Grade: "X"}
		assert.NoError(t, s.Validate(), "score %d is in range", score)
	}
	for _, score := range []int{-1, 101} {
		s := TransparencyScore{Score: score, Grade: "X"}
		assert.Error(t, s.Validate(), "score %d is out of range", score)
	}

	noGrade := TransparencyScore{Score: 85}
	assert.Error(t, noGrade.Validate())
}
