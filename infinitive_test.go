package viceverser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuffixReconstructor(t *testing.T) {
	r := NewSuffixReconstructor()

	tests := []struct {
		word, lemma, model string
	}{
		{"chantons", "chanter", ModelFirstGroup},
		{"chantait", "chanter", ModelFirstGroup},
		{"chanteraient", "chanter", ModelFirstGroup},
		{"aimée", "aimer", ModelFirstGroup},
		{"mangeons", "manger", ModelFirstGroup},
		{"commençons", "commencer", ModelFirstGroup},
		{"finissons", "finir", ModelSecondGroup},
		{"bâtissaient", "bâtir", ModelSecondGroup},
		{"finit", "finir", ModelSecondGroup},
	}
	for _, tt := range tests {
		lemma, model, err := r.Reconstruct(tt.word)
		require.NoError(t, err, tt.word)
		assert.Equal(t, tt.lemma, lemma, "Reconstruct(%q)", tt.word)
		assert.Equal(t, tt.model, model, "Reconstruct(%q)", tt.word)
	}
}

func TestSuffixReconstructorUnknownEnding(t *testing.T) {
	r := NewSuffixReconstructor()
	lemma, model, err := r.Reconstruct("t8âùèildv")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(lemma, "er"), lemma)
	assert.Equal(t, ModelFirstGroup, model)
}

func TestSuffixReconstructorMinStem(t *testing.T) {
	r := NewSuffixReconstructor()
	r.MinStem = 4
	// "fin" is too short once "issons" is removed, "finiss" once "ons" is
	lemma, model, err := r.Reconstruct("finissons")
	require.NoError(t, err)
	assert.Equal(t, "finisser", lemma)
	assert.Equal(t, ModelFirstGroup, model)
}

func TestSuffixReconstructorTooShort(t *testing.T) {
	r := NewSuffixReconstructor()
	for _, w := range []string{"", "a"} {
		_, _, err := r.Reconstruct(w)
		assert.ErrorIs(t, err, ErrEmptyLemma, "Reconstruct(%q)", w)
	}
}

func TestReconstructorFunc(t *testing.T) {
	var r Reconstructor = ReconstructorFunc(func(word string) (string, string, error) {
		return word + "er", "aimer", nil
	})
	lemma, model, err := r.Reconstruct("chant")
	require.NoError(t, err)
	assert.Equal(t, "chanter", lemma)
	assert.Equal(t, "aimer", model)
}
