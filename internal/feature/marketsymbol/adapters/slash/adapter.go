// Package slash implements a vendor adapter for slash-delimited derivative
// tickers on a single exchange:
//
//	NK/20250314               future
//	N225O/20250314/O          option series
//	N225O/20250314/C/42000    call (P for put)
package slash

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"marketsymbol/internal/feature/marketsymbol/adapters"
	"marketsymbol/internal/feature/marketsymbol/domain"
	"marketsymbol/internal/feature/marketsymbol/domain/entity"
)

// ErrExchangeMismatch is returned by FromSymbol for symbols listed on another exchange.
var ErrExchangeMismatch = errors.New("symbol exchange does not match adapter")

var _ adapters.VendorAdapter = (*Adapter)(nil)

// Adapter converts slash-delimited futures and options tickers for one exchange.
type Adapter struct {
	exchange string
}

// NewAdapter creates an Adapter that maps every ticker onto exchange.
func NewAdapter(exchange string) (*Adapter, error) {
	if err := domain.ValidateExchange(exchange); err != nil {
		return nil, err
	}
	return &Adapter{exchange: exchange}, nil
}

// Exchange returns the MIC the adapter maps tickers onto.
func (a *Adapter) Exchange() string {
	return a.exchange
}

// SupportedAssetClasses implements adapters.VendorAdapter.
func (a *Adapter) SupportedAssetClasses() entity.AssetClassSet {
	return entity.NewAssetClassSet(entity.AssetClassFuture, entity.AssetClassOption)
}

// ToSymbol converts slash text into a future or option symbol.
func (a *Adapter) ToSymbol(vendorSymbol string) (entity.Symbol, error) {
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(vendorSymbol)), "/")

	var (
		sym entity.Symbol
		err error
	)
	switch len(parts) {
	case 2:
		sym, err = entity.NewFutureSymbol(a.exchange, parts[0], parts[1])
	case 3:
		if parts[2] != string(entity.OptionSeries) {
			return nil, fmt.Errorf("%w: %q (3-part form must end with /O)", adapters.ErrInvalidVendorFormat, vendorSymbol)
		}
		sym, err = entity.NewSeriesOption(a.exchange, parts[0], parts[1])
	case 4:
		var ot entity.OptionType
		switch parts[2] {
		case string(entity.OptionCall):
			ot = entity.OptionCall
		case string(entity.OptionPut):
			ot = entity.OptionPut
		default:
			return nil, fmt.Errorf("%w: %q (option type must be C or P)", adapters.ErrInvalidVendorFormat, vendorSymbol)
		}
		strike, convErr := strconv.Atoi(parts[3])
		if convErr != nil {
			return nil, fmt.Errorf("%w: %q (strike must be an integer)", adapters.ErrInvalidVendorFormat, vendorSymbol)
		}
		sym, err = entity.NewOptionSymbol(a.exchange, parts[0], parts[1], ot, entity.StrikeOf(strike))
	default:
		return nil, fmt.Errorf("%w: %q", adapters.ErrInvalidVendorFormat, vendorSymbol)
	}
	if err != nil {
		return nil, fmt.Errorf("%q: %w", vendorSymbol, err)
	}
	return sym, nil
}

// FromSymbol converts a future or option symbol into slash text.
func (a *Adapter) FromSymbol(symbol entity.Symbol) (string, error) {
	if err := adapters.EnsureSupported(a, symbol); err != nil {
		return "", err
	}
	if symbol.Exchange() != a.exchange {
		return "", fmt.Errorf("%w: %s (adapter handles %s)", ErrExchangeMismatch, symbol.Exchange(), a.exchange)
	}

	switch s := symbol.(type) {
	case entity.FutureSymbol:
		return s.Code() + "/" + s.Expiry(), nil
	case entity.OptionSymbol:
		base := s.Code() + "/" + s.Expiry() + "/" + string(s.OptionType())
		if n, ok := s.Strike(); ok {
			return base + "/" + strconv.Itoa(n), nil
		}
		return base, nil
	default:
		return "", fmt.Errorf("%w: %T", adapters.ErrUnsupportedAssetClass, symbol)
	}
}
