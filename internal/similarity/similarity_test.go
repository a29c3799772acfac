package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var catalogTitles = []string{"Titanic", "The Matrix", "Inception", "Interstellar"}

func TestProcess(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"The Matrix", "the matrix"},
		{"  The Matrix: Reloaded! ", "the matrix  reloaded"},
		{"Amélie", "amlie"},
		{"snake_case 42", "snake_case 42"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Process(tt.in))
		})
	}
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 100, Ratio("heat", "heat"))
	assert.Equal(t, 86, Ratio("titanik", "titanic"))
	assert.Equal(t, 67, Ratio("matrx", "the matrix"))
	assert.Equal(t, 0, Ratio("", "heat"))
	assert.Equal(t, 0, Ratio("abc", "xyz"))
}

func TestPartialRatio(t *testing.T) {
	assert.Equal(t, 100, PartialRatio("matrix", "the matrix"))
	assert.Equal(t, 100, PartialRatio("the matrix", "matrix"))
	assert.Equal(t, 80, PartialRatio("matrx", "the matrix"))
	assert.Equal(t, 0, PartialRatio("", "the matrix"))
}

func TestTokenRatios(t *testing.T) {
	assert.Equal(t, 100, TokenSortRatio("matrix the", "The Matrix"))
	assert.Equal(t, 100, TokenSetRatio("the matrix reloaded", "Matrix"))
	assert.Equal(t, 0, TokenSetRatio("", "Matrix"))
}

func TestWRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"identical", "Heat", "heat", 100},
		{"one typo", "titanik", "Titanic", 86},
		{"partial weighting", "matrx", "The Matrix", 72},
		{"token order", "matrix the", "The Matrix", 95},
		{"unrelated", "zzz", "The Matrix", 0},
		{"empty after processing", "!!", "The Matrix", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WRatio(tt.a, tt.b))
		})
	}
}

func TestExtractOne(t *testing.T) {
	t.Run("best match", func(t *testing.T) {
		match, score, ok := ExtractOne("titanik", catalogTitles)
		assert.True(t, ok)
		assert.Equal(t, "Titanic", match)
		assert.Equal(t, 86, score)
	})

	t.Run("no similarity keeps first choice", func(t *testing.T) {
		match, score, ok := ExtractOne("zzz", catalogTitles)
		assert.True(t, ok)
		assert.Equal(t, "Titanic", match)
		assert.Equal(t, 0, score)
	})

	t.Run("ties keep catalog order", func(t *testing.T) {
		match, score, ok := ExtractOne("heat", []string{"HEAT", "Heat", "heat"})
		assert.True(t, ok)
		assert.Equal(t, "HEAT", match)
		assert.Equal(t, 100, score)
	})

	t.Run("no choices", func(t *testing.T) {
		_, _, ok := ExtractOne("heat", nil)
		assert.False(t, ok)
	})
}
