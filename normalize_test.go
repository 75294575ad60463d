package viceverser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Maison", "maison"},
		{"L’Été", "l'été"},
		{"aujourdʼhui", "aujourd'hui"},
		{"Auteur‑Compositeur", "auteur-compositeur"},
		{"été", "été"},
		{"ÇA", "ça"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestKeyOf(t *testing.T) {
	assert.Equal(t, KeyOf("maison"), KeyOf("maison"))
	assert.NotEqual(t, KeyOf("maison"), KeyOf("maisons"))
	// decomposed accents compose before hashing
	assert.Equal(t, KeyOf("été"), KeyOf(Normalize("E\u0301te\u0301")))
}
