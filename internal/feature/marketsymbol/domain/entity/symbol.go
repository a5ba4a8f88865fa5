// Package entity defines the unified symbol forms: equity, future and option.
//
// Symbols can only be obtained from the constructors in this package (directly or
// through the parser), and every constructor validates all fields. A Symbol value
// is therefore always valid and immutable; values are comparable with == and can
// be used as map keys.
package entity

import (
	"fmt"
	"strconv"

	"marketsymbol/internal/feature/marketsymbol/domain"
)

// Symbol is the closed set of symbol forms. Only EquitySymbol, FutureSymbol and
// OptionSymbol implement it; consume it with a type switch.
type Symbol interface {
	fmt.Stringer
	AssetClass() AssetClass
	Exchange() string
	Code() string
	isSymbol()
}

var (
	_ Symbol = EquitySymbol{}
	_ Symbol = FutureSymbol{}
	_ Symbol = OptionSymbol{}
)

// EquitySymbol は株式・ETF のシンボルです (EXCH:CODE)。
type EquitySymbol struct {
	exchange string
	code     string
}

// NewEquitySymbol validates exchange and code and returns an EquitySymbol.
func NewEquitySymbol(exchange, code string) (EquitySymbol, error) {
	if err := domain.ValidateExchange(exchange); err != nil {
		return EquitySymbol{}, err
	}
	if err := domain.ValidateCode(code); err != nil {
		return EquitySymbol{}, err
	}
	return EquitySymbol{exchange: exchange, code: code}, nil
}

func (s EquitySymbol) Exchange() string       { return s.exchange }
func (s EquitySymbol) Code() string           { return s.code }
func (s EquitySymbol) AssetClass() AssetClass { return AssetClassEquity }
func (EquitySymbol) isSymbol()                {}

// String returns "EXCH:CODE".
func (s EquitySymbol) String() string {
	return s.exchange + ":" + s.code
}

// FutureSymbol は先物のシンボルです (EXCH:CODE:EXPIRY:F)。
type FutureSymbol struct {
	exchange string
	code     string
	expiry   string
}

// NewFutureSymbol validates all fields and returns a FutureSymbol.
func NewFutureSymbol(exchange, code, expiry string) (FutureSymbol, error) {
	if err := validateContract(exchange, code, expiry); err != nil {
		return FutureSymbol{}, err
	}
	return FutureSymbol{exchange: exchange, code: code, expiry: expiry}, nil
}

func (s FutureSymbol) Exchange() string       { return s.exchange }
func (s FutureSymbol) Code() string           { return s.code }
func (s FutureSymbol) Expiry() string         { return s.expiry }
func (s FutureSymbol) AssetClass() AssetClass { return AssetClassFuture }
func (FutureSymbol) isSymbol()                {}

// String returns "EXCH:CODE:EXPIRY:F".
func (s FutureSymbol) String() string {
	return s.exchange + ":" + s.code + ":" + s.expiry + ":" + domain.TypeFuture
}

// Strike is an optional strike price. The zero value means "no strike".
type Strike struct {
	value   int
	present bool
}

// NoStrike is the absent strike used by SERIES options.
var NoStrike = Strike{}

// StrikeOf returns a present strike. Range checks happen in NewOptionSymbol.
func StrikeOf(n int) Strike {
	return Strike{value: n, present: true}
}

// Value returns the strike and whether it is present.
func (s Strike) Value() (int, bool) {
	return s.value, s.present
}

// OptionSymbol はオプションのシンボルです。
// CALL/PUT は EXCH:CODE:EXPIRY:C|P:STRIKE、SERIES は EXCH:CODE:EXPIRY:O と表記します。
type OptionSymbol struct {
	exchange   string
	code       string
	expiry     string
	optionType OptionType
	strike     Strike
}

// NewOptionSymbol validates all fields and the option type / strike invariant:
// CALL and PUT need a strike >= 1, SERIES must not have one.
func NewOptionSymbol(exchange, code, expiry string, optionType OptionType, strike Strike) (OptionSymbol, error) {
	if err := validateContract(exchange, code, expiry); err != nil {
		return OptionSymbol{}, err
	}

	switch optionType {
	case OptionCall, OptionPut:
		n, ok := strike.Value()
		if !ok {
			return OptionSymbol{}, domain.NewValidationError(
				domain.ErrOptionWithoutStrike,
				fmt.Sprintf("Option type '%s' requires strike price", optionType),
				"strike",
				nil,
			)
		}
		if err := domain.ValidateStrike(n); err != nil {
			return OptionSymbol{}, err
		}
	case OptionSeries:
		if n, ok := strike.Value(); ok {
			return OptionSymbol{}, domain.NewValidationError(
				domain.ErrFutureWithStrike,
				fmt.Sprintf("Type '%s' must not have strike price", optionType),
				"strike",
				n,
			)
		}
	default:
		return OptionSymbol{}, domain.NewValidationError(
			domain.ErrInvalidOptionType,
			fmt.Sprintf("Invalid option type: '%s' (must be C, P, or O)", optionType),
			"option_type",
			string(optionType),
		)
	}

	return OptionSymbol{
		exchange:   exchange,
		code:       code,
		expiry:     expiry,
		optionType: optionType,
		strike:     strike,
	}, nil
}

// NewSeriesOption returns a SERIES option (no strike).
func NewSeriesOption(exchange, code, expiry string) (OptionSymbol, error) {
	return NewOptionSymbol(exchange, code, expiry, OptionSeries, NoStrike)
}

func (s OptionSymbol) Exchange() string       { return s.exchange }
func (s OptionSymbol) Code() string           { return s.code }
func (s OptionSymbol) Expiry() string         { return s.expiry }
func (s OptionSymbol) OptionType() OptionType { return s.optionType }
func (s OptionSymbol) AssetClass() AssetClass { return AssetClassOption }
func (OptionSymbol) isSymbol()                {}

// Strike returns the strike price and whether the option has one.
func (s OptionSymbol) Strike() (int, bool) {
	return s.strike.Value()
}

// String returns the canonical text of the option.
func (s OptionSymbol) String() string {
	base := s.exchange + ":" + s.code + ":" + s.expiry + ":" + string(s.optionType)
	if n, ok := s.strike.Value(); ok {
		return base + ":" + strconv.Itoa(n)
	}
	return base
}

func validateContract(exchange, code, expiry string) error {
	if err := domain.ValidateExchange(exchange); err != nil {
		return err
	}
	if err := domain.ValidateCode(code); err != nil {
		return err
	}
	return domain.ValidateExpiry(expiry)
}
