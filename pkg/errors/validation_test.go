package errors

import (
	"strings"
	"testing"
)

func TestValidateFamilyName(t *testing.T) {
	tests := []struct {
		name    string
		family  string
		wantErr bool
	}{
		{"valid simple", "Roboto", false},
		{"valid with space", "Noto Sans JP", false},
		{"valid with digits", "Exo 2", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"path traversal", "../etc/passwd", true},
		{"forward slash", "Open/Sans", true},
		{"backslash", "Open\\Sans", true},
		{"null byte", "Open\x00Sans", true},
		{"control character", "Open\nSans", true},
		{"too long", strings.Repeat("a", 129), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFamilyName(tt.family)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFamilyName(%q) error = %v, wantErr %v", tt.family, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidFamily) {
				t.Errorf("expected INVALID_FAMILY code, got %v", GetCode(err))
			}
		})
	}
}

func TestValidateWeights(t *testing.T) {
	tests := []struct {
		name    string
		weights []int
		wantErr bool
	}{
		{"standard triple", []int{300, 400, 700}, false},
		{"single weight", []int{400}, false},
		{"boundary low", []int{1}, false},
		{"boundary high", []int{1000}, false},
		{"empty", nil, true},
		{"zero weight", []int{0}, true},
		{"negative", []int{-100}, true},
		{"too large", []int{1001}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWeights(tt.weights)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWeights(%v) error = %v, wantErr %v", tt.weights, err, tt.wantErr)
			}
		})
	}
}
