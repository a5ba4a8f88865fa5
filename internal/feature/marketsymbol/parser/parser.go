// Package parser turns symbol text into validated entity.Symbol values.
//
// Accepted forms (after normalization):
//
//	EXCH:CODE                   equity
//	EXCH:CODE:EXPIRY:F          future
//	EXCH:CODE:EXPIRY:O          option series
//	EXCH:CODE:EXPIRY:C:STRIKE   call
//	EXCH:CODE:EXPIRY:P:STRIKE   put
//
// All functions are pure and safe for concurrent use.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"marketsymbol/internal/feature/marketsymbol/domain"
	"marketsymbol/internal/feature/marketsymbol/domain/entity"
)

const (
	equitySegmentCount   = 2
	contractSegmentCount = 4
	optionSegmentCount   = 5
)

// Parse はシンボル文字列をパースして Symbol を返します。
//
// 失敗時は必ず *domain.ParseError を返し、RawSymbol には正規化前の入力が入ります。
func Parse(raw string) (entity.Symbol, error) {
	normalized := Normalize(raw)

	if n := utf8.RuneCountInString(normalized); n > domain.MaxSymbolLength {
		return nil, domain.NewParseError(
			domain.ErrSymbolTooLong,
			fmt.Sprintf("Symbol too long: %d characters (max %d)", n, domain.MaxSymbolLength),
			raw,
		)
	}
	if normalized == "" {
		return nil, domain.NewParseError(domain.ErrInvalidSegmentCount, "Empty symbol string", raw)
	}

	segments := strings.Split(normalized, ":")

	var (
		sym entity.Symbol
		err error
	)
	switch len(segments) {
	case equitySegmentCount:
		sym, err = parseEquity(segments)
	case contractSegmentCount:
		sym, err = parseFutureOrSeries(segments, raw)
	case optionSegmentCount:
		sym, err = parseOption(segments, raw)
	default:
		return nil, domain.NewParseError(
			domain.ErrInvalidSegmentCount,
			fmt.Sprintf("Invalid segment count: %d (expected 2, 4, or 5)", len(segments)),
			raw,
		)
	}
	if err != nil {
		return nil, toParseError(err, raw)
	}
	return sym, nil
}

// ParseValue parses v when it is a string. Any other type is a caller error and
// yields an *domain.InputTypeError (errors.Is(err, domain.ErrInvalidInputType)),
// never a ParseError.
func ParseValue(v any) (entity.Symbol, error) {
	s, ok := v.(string)
	if !ok {
		return nil, &domain.InputTypeError{Got: typeName(v)}
	}
	return Parse(s)
}

// MustParse is like Parse but panics on failure. Use it for static tables and tests.
func MustParse(raw string) entity.Symbol {
	s, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return s
}

func parseEquity(seg []string) (entity.Symbol, error) {
	exchange, code := seg[0], seg[1]
	if err := domain.ValidateExchange(exchange); err != nil {
		return nil, err
	}
	if err := domain.ValidateCode(code); err != nil {
		return nil, err
	}
	return entity.NewEquitySymbol(exchange, code)
}

func parseFutureOrSeries(seg []string, raw string) (entity.Symbol, error) {
	exchange, code, expiry, typ := seg[0], seg[1], seg[2], seg[3]
	if err := validateHead(exchange, code, expiry, typ); err != nil {
		return nil, err
	}

	switch typ {
	case domain.TypeFuture:
		return entity.NewFutureSymbol(exchange, code, expiry)
	case domain.TypeSeries:
		return entity.NewSeriesOption(exchange, code, expiry)
	default:
		// C/P の4セグメント表記は権利行使価格を持てない
		return nil, domain.NewParseError(
			domain.ErrOptionWithoutStrike,
			fmt.Sprintf("Option type '%s' requires strike price", typ),
			raw,
		)
	}
}

func parseOption(seg []string, raw string) (entity.Symbol, error) {
	exchange, code, expiry, typ, strikeText := seg[0], seg[1], seg[2], seg[3], seg[4]
	if err := validateHead(exchange, code, expiry, typ); err != nil {
		return nil, err
	}

	// 権利行使価格のみ、セグメント内の前後の空白を許容する
	strike, err := strconv.Atoi(strings.TrimSpace(strikeText))
	if err != nil {
		return nil, domain.NewParseError(
			domain.ErrInvalidStrikeValue,
			fmt.Sprintf("Invalid strike: '%s' (must be a positive integer)", strikeText),
			raw,
		)
	}

	if typ == domain.TypeFuture || typ == domain.TypeSeries {
		return nil, domain.NewParseError(
			domain.ErrFutureWithStrike,
			fmt.Sprintf("Type '%s' must not have strike price", typ),
			raw,
		)
	}

	if err := domain.ValidateStrike(strike); err != nil {
		return nil, err
	}

	optionType := entity.OptionCall
	if typ == domain.TypePut {
		optionType = entity.OptionPut
	}
	return entity.NewOptionSymbol(exchange, code, expiry, optionType, entity.StrikeOf(strike))
}

func validateHead(exchange, code, expiry, typ string) error {
	if err := domain.ValidateExchange(exchange); err != nil {
		return err
	}
	if err := domain.ValidateCode(code); err != nil {
		return err
	}
	if err := domain.ValidateExpiry(expiry); err != nil {
		return err
	}
	return domain.ValidateOptionType(typ)
}

// toParseError rewraps validation failures so the caller always gets a
// ParseError carrying the raw input.
func toParseError(err error, raw string) error {
	var pe *domain.ParseError
	if errors.As(err, &pe) {
		return pe
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return domain.WrapValidationError(ve, raw)
	}
	return err
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
