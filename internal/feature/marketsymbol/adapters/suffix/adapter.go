// Package suffix implements a vendor adapter for "CODE.SUFFIX" equity tickers,
// as used by Twelve Data and Yahoo Finance (e.g. "7203.T" for Toyota on the
// Tokyo Stock Exchange).
package suffix

import (
	"errors"
	"fmt"
	"strings"

	"marketsymbol/internal/feature/marketsymbol/adapters"
	"marketsymbol/internal/feature/marketsymbol/domain/entity"
)

var (
	// ErrUnknownSuffix is returned when the ticker suffix or the symbol's exchange
	// has no entry in the adapter's table.
	ErrUnknownSuffix = errors.New("unknown exchange suffix")

	// ErrInvalidSuffixTable is returned by NewAdapter for empty or malformed tables.
	ErrInvalidSuffixTable = errors.New("invalid suffix table")
)

var _ adapters.VendorAdapter = (*Adapter)(nil)

// Adapter converts "CODE.SUFFIX" tickers to equity symbols and back.
type Adapter struct {
	toMIC    map[string]string
	toSuffix map[string]string
}

// NewAdapter creates an Adapter from a suffix → MIC table, e.g. {"T": "XJPX"}.
// Suffixes are matched case-insensitively. When two suffixes map to the same
// MIC, FromSymbol uses the lexically smallest one.
func NewAdapter(suffixToMIC map[string]string) (*Adapter, error) {
	if len(suffixToMIC) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidSuffixTable)
	}
	a := &Adapter{
		toMIC:    make(map[string]string, len(suffixToMIC)),
		toSuffix: make(map[string]string, len(suffixToMIC)),
	}
	for sfx, mic := range suffixToMIC {
		sfx = strings.ToUpper(strings.TrimSpace(sfx))
		if sfx == "" || strings.Contains(sfx, ".") {
			return nil, fmt.Errorf("%w: suffix %q", ErrInvalidSuffixTable, sfx)
		}
		// MIC の形式チェックはエクイティ生成時と同じルールで行う
		if _, err := entity.NewEquitySymbol(mic, "A"); err != nil {
			return nil, fmt.Errorf("%w: suffix %q: %w", ErrInvalidSuffixTable, sfx, err)
		}
		a.toMIC[sfx] = mic
		if cur, ok := a.toSuffix[mic]; !ok || sfx < cur {
			a.toSuffix[mic] = sfx
		}
	}
	return a, nil
}

// TwelveData returns the adapter preconfigured for Japanese listings on Twelve Data.
func TwelveData() *Adapter {
	a, err := NewAdapter(map[string]string{"T": "XJPX"})
	if err != nil {
		panic(err)
	}
	return a
}

// SupportedAssetClasses implements adapters.VendorAdapter.
func (a *Adapter) SupportedAssetClasses() entity.AssetClassSet {
	return entity.NewAssetClassSet(entity.AssetClassEquity)
}

// ToSymbol converts "7203.T" into XJPX:7203.
func (a *Adapter) ToSymbol(vendorSymbol string) (entity.Symbol, error) {
	i := strings.LastIndexByte(vendorSymbol, '.')
	if i <= 0 || i == len(vendorSymbol)-1 {
		return nil, fmt.Errorf("%w: %q (expected CODE.SUFFIX)", adapters.ErrInvalidVendorFormat, vendorSymbol)
	}
	code, sfx := strings.ToUpper(vendorSymbol[:i]), strings.ToUpper(vendorSymbol[i+1:])

	mic, ok := a.toMIC[sfx]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSuffix, sfx)
	}
	sym, err := entity.NewEquitySymbol(mic, code)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", vendorSymbol, err)
	}
	return sym, nil
}

// FromSymbol converts XJPX:7203 into "7203.T".
func (a *Adapter) FromSymbol(symbol entity.Symbol) (string, error) {
	if err := adapters.EnsureSupported(a, symbol); err != nil {
		return "", err
	}
	sfx, ok := a.toSuffix[symbol.Exchange()]
	if !ok {
		return "", fmt.Errorf("%w: no suffix for exchange %s", ErrUnknownSuffix, symbol.Exchange())
	}
	return symbol.Code() + "." + sfx, nil
}
