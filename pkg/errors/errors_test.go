package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidPath, "test message: %s", "value")

	if err.Code != ErrCodeInvalidPath {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidPath)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_PATH: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeNetwork, cause, "failed to fetch")

	if err.Code != ErrCodeNetwork {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeNetwork)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodePathNotFound, "test"),
			code:     ErrCodePathNotFound,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodePathNotFound, "test"),
			code:     ErrCodeNetwork,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeNetwork, New(ErrCodeParse, "inner"), "outer"),
			code:     ErrCodeNetwork,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodePathNotFound,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodePathNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeUnsupportedExt, "test"),
			expected: ErrCodeUnsupportedExt,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	structured := New(ErrCodeDefaultAssetMissing, "default font not found: Go-Bold.ttf")
	if got := UserMessage(structured); got != "default font not found: Go-Bold.ttf" {
		t.Errorf("UserMessage() = %q, want message without code prefix", got)
	}

	plain := errors.New("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain error")
	}
}
