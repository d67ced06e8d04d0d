package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePlayerName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "LeBron James", "lebron james"},
		{"strips trailing jr suffix", "LeBron James Jr.", "lebron james"},
		{"strips trailing sr suffix", "Marvin Harrison Sr", "marvin harrison"},
		{"strips roman numeral suffix", "Kelly Oubre III", "kelly oubre"},
		{"strips iv suffix", "Lonnie Walker IV", "lonnie walker"},
		{"strips apostrophes", "D'Angelo Russell", "dangelo russell"},
		{"strips periods", "A.J. Brown", "aj brown"},
		{"strips accents", "Nikola Jokić", "nikola jokic"},
		{"collapses whitespace", "  Jayson   Tatum ", "jayson tatum"},
		{"drops hyphen", "Shai Gilgeous-Alexander", "shai gilgeousalexander"},
		{"keeps a lone suffix-looking name", "Jr", "jr"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePlayerName(tt.input))
		})
	}
}

func TestNormalizePlayerNameVariantsCollide(t *testing.T) {
	variants := []string{
		"LeBron James Jr.",
		"lebron james jr",
		"LEBRON JAMES",
		"Lebron  James",
	}
	key := NormalizePlayerName("lebron james")
	for _, v := range variants {
		assert.Equal(t, key, NormalizePlayerName(v), "variant %q must collide", v)
	}
}

func TestNormalizePlayerNameDeterministic(t *testing.T) {
	first := NormalizePlayerName("Jaylen Brown Jr.")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, NormalizePlayerName("Jaylen Brown Jr."))
	}
}
