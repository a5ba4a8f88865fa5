package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertCode は err が ValidationError で、期待するコードとフィールドを持つことを検証します。
func assertCode(t *testing.T, err error, want ErrorCode, field string) {
	t.Helper()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected *ValidationError, got %T (%v)", err, err)
	assert.Equal(t, want, ve.Code)
	assert.Equal(t, field, ve.Field)
}

// TestValidateExchange は取引所コードの検証をテーブル駆動テストで検証します。
func TestValidateExchange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		exchange string
		wantErr  bool
	}{
		{"valid XJPX", "XJPX", false},
		{"valid XNYS", "XNYS", false},
		{"too short", "XJP", true},
		{"too long", "XJPXX", true},
		{"lowercase", "xjpx", true},
		{"digit", "XJP1", true},
		{"empty", "", true},
		{"fullwidth", "ＸＪＰＸ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateExchange(tt.exchange)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assertCode(t, err, ErrUnknownExchange, "exchange")
		})
	}
}

// TestValidateCode は証券コードの長さと文字種の検証をテーブル駆動テストで検証します。
func TestValidateCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		code    string
		wantErr bool
	}{
		{"numeric", "7203", false},
		{"alpha", "NK", false},
		{"alphanumeric", "N225O", false},
		{"single char", "A", false},
		{"ten chars", strings.Repeat("A", 10), false},
		{"eleven chars", strings.Repeat("A", 11), true},
		{"empty", "", true},
		{"lowercase", "nk", true},
		{"hyphen", "BRK-B", true},
		{"dot", "7203.T", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateCode(tt.code)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assertCode(t, err, ErrInvalidCode, "code")
		})
	}
}

// TestValidateExpiry は限月の形式とカレンダー上の妥当性を検証します。
func TestValidateExpiry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expiry   string
		wantCode ErrorCode
	}{
		{"valid", "20250314", ""},
		{"leap day", "20240229", ""},
		{"leap day 2000", "20000229", ""},
		{"end of year", "20251231", ""},
		{"year 1", "00010101", ""},
		{"non leap day", "20250229", ErrInvalidDate},
		{"non leap century", "21000229", ErrInvalidDate},
		{"feb 30", "20250230", ErrInvalidDate},
		{"april 31", "20250431", ErrInvalidDate},
		{"month 0", "20250014", ErrInvalidDate},
		{"month 13", "20251314", ErrInvalidDate},
		{"day 0", "20250300", ErrInvalidDate},
		{"year 0", "00000101", ErrInvalidDate},
		{"too short", "2025031", ErrInvalidExpiryFormat},
		{"too long", "202503140", ErrInvalidExpiryFormat},
		{"dashes", "2025-03-14", ErrInvalidExpiryFormat},
		{"letters", "2025MAR1", ErrInvalidExpiryFormat},
		{"empty", "", ErrInvalidExpiryFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateExpiry(tt.expiry)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			assertCode(t, err, tt.wantCode, "expiry")
		})
	}
}

// TestValidateOptionType は種別 C/P/O/F のみが受理されることを検証します。
func TestValidateOptionType(t *testing.T) {
	t.Parallel()

	for _, ok := range []string{"C", "P", "O", "F"} {
		assert.NoError(t, ValidateOptionType(ok), ok)
	}
	for _, bad := range []string{"", "X", "c", "CALL", "FF"} {
		assertCode(t, ValidateOptionType(bad), ErrInvalidOptionType, "option_type")
	}
}

// TestValidateStrike は権利行使価格が1以上であることを検証します。
func TestValidateStrike(t *testing.T) {
	t.Parallel()

	for _, ok := range []int{1, 100, 42000, 1 << 30} {
		assert.NoError(t, ValidateStrike(ok))
	}
	for _, bad := range []int{0, -1, -42000} {
		assertCode(t, ValidateStrike(bad), ErrInvalidStrikeValue, "strike")
	}
}
