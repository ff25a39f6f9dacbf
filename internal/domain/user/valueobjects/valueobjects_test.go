package valueobjects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStudentID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"eight digits", "20230001", false},
		{"twelve digits", "202300010001", false},
		{"too short", "1234567", true},
		{"too long", "1234567890123", true},
		{"non numeric", "2023000a", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sid, err := NewStudentID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, sid.String())
		})
	}
}

func TestNewEmail(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		email, err := NewEmail("  Student@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "student@example.com", email.String())
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, input := range []string{"", "plain", "no@tld@twice", "@example.com"} {
			_, err := NewEmail(input)
			assert.Error(t, err, "input %q", input)
		}
	})

	t.Run("rejects overlong addresses", func(t *testing.T) {
		_, err := NewEmail(strings.Repeat("a", 250) + "@example.com")
		assert.Error(t, err)
	})
}

func TestNewName(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		name, err := NewName("  Jane Doe  ")
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", name.String())
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := NewName("   ")
		assert.Error(t, err)
	})

	t.Run("rejects overlong", func(t *testing.T) {
		_, err := NewName(strings.Repeat("x", 51))
		assert.Error(t, err)
	})
}

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid mobile", "13812345678", false},
		{"valid high prefix", "19900000000", false},
		{"landline style", "01012345678", true},
		{"too short", "1381234567", true},
		{"too long", "138123456789", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phone, err := NewPhone(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, phone.String())
		})
	}
}

func TestNewPassword(t *testing.T) {
	t.Run("accepts minimum length", func(t *testing.T) {
		pw, err := NewPassword("abcdef")
		require.NoError(t, err)
		assert.Equal(t, "abcdef", pw.String())
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		_, err := NewPassword("abcde")
		assert.Error(t, err)
	})
}
