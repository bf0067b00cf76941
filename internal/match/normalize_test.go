package match

import (
	"testing"
)

func TestNormalizeToken(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Basic cases
		{"NOUN", "noun"},
		{" ЖР ", "жр"},
		{"1-л", "1л"},
		{"opencorpora-int", "opencorporaint"},
		{"opencorpora_int", "opencorporaint"},

		// Separators inside multi-word names
		{"местоименное наречие", "местоименноенаречие"},

		// ё folding
		{"Ёж", "еж"},

		// Edge cases
		{"", ""},
		{"-", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeToken(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeToken(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
