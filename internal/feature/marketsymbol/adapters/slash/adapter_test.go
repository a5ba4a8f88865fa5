package slash

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketsymbol/internal/feature/marketsymbol/adapters"
	"marketsymbol/internal/feature/marketsymbol/domain"
	"marketsymbol/internal/feature/marketsymbol/domain/entity"
	"marketsymbol/internal/feature/marketsymbol/parser"
)

func newJPX(t *testing.T) *Adapter {
	t.Helper()
	a, err := NewAdapter("XJPX")
	require.NoError(t, err)
	return a
}

// TestNewAdapter は取引所コードが検証されることを検証します。
func TestNewAdapter(t *testing.T) {
	t.Parallel()

	a := newJPX(t)
	assert.Equal(t, "XJPX", a.Exchange())
	assert.True(t, a.SupportedAssetClasses().Contains(entity.AssetClassFuture))
	assert.True(t, a.SupportedAssetClasses().Contains(entity.AssetClassOption))
	assert.False(t, a.SupportedAssetClasses().Contains(entity.AssetClassEquity))

	_, err := NewAdapter("JPX")
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, domain.ErrUnknownExchange, ve.Code)
}

// TestAdapter_ToSymbol はスラッシュ区切り表記の変換をテーブル駆動テストで検証します。
func TestAdapter_ToSymbol(t *testing.T) {
	t.Parallel()

	a := newJPX(t)

	tests := []struct {
		name     string
		input    string
		want     string
		wantErr  error
		wantCode domain.ErrorCode
	}{
		{"future", "NK/20250314", "XJPX:NK:20250314:F", nil, ""},
		{"series", "N225O/20250314/O", "XJPX:N225O:20250314:O", nil, ""},
		{"call", "N225O/20250314/C/42000", "XJPX:N225O:20250314:C:42000", nil, ""},
		{"put lowercase", "n225o/20250314/p/38000", "XJPX:N225O:20250314:P:38000", nil, ""},
		{"one part", "NK", "", adapters.ErrInvalidVendorFormat, ""},
		{"five parts", "NK/20250314/C/1/2", "", adapters.ErrInvalidVendorFormat, ""},
		{"three parts not series", "NK/20250314/C", "", adapters.ErrInvalidVendorFormat, ""},
		{"bad option type", "NK/20250314/X/100", "", adapters.ErrInvalidVendorFormat, ""},
		{"non numeric strike", "NK/20250314/C/ABC", "", adapters.ErrInvalidVendorFormat, ""},
		{"zero strike", "NK/20250314/C/0", "", nil, domain.ErrInvalidStrikeValue},
		{"bad date", "NK/20250230", "", nil, domain.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := a.ToSymbol(tt.input)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantCode != "":
				code, ok := domain.CodeOf(err)
				require.True(t, ok, "expected coded error, got %v", err)
				assert.Equal(t, tt.wantCode, code)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, s.String())
			}
		})
	}
}

// TestAdapter_FromSymbol は統一シンボルからスラッシュ表記への変換を検証します。
func TestAdapter_FromSymbol(t *testing.T) {
	t.Parallel()

	a := newJPX(t)

	tests := []struct {
		name    string
		symbol  string
		want    string
		wantErr error
	}{
		{"future", "XJPX:NK:20250314:F", "NK/20250314", nil},
		{"series", "XJPX:N225O:20250314:O", "N225O/20250314/O", nil},
		{"call", "XJPX:N225O:20250314:C:42000", "N225O/20250314/C/42000", nil},
		{"put", "XJPX:N225O:20250314:P:38000", "N225O/20250314/P/38000", nil},
		{"equity", "XJPX:7203", "", adapters.ErrUnsupportedAssetClass},
		{"other exchange", "XOSE:NK:20250314:F", "", ErrExchangeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := a.FromSymbol(parser.MustParse(tt.symbol))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)

			back, err := a.ToSymbol(out)
			require.NoError(t, err)
			assert.Equal(t, tt.symbol, back.String())
		})
	}
}
