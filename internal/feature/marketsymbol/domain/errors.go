// Package domain defines the error model, constants and field validators
// shared by every symbol form.
package domain

import (
	"errors"
	"fmt"
)

// ErrorCode is the stable code attached to every symbol parse or validation failure.
// The string value is the code itself (E001...) so it can be logged across systems.
type ErrorCode string

const (
	// ErrFutureWithStrike: 先物またはシリーズに権利行使価格が指定された。
	ErrFutureWithStrike ErrorCode = "E001"
	// ErrOptionWithoutStrike: コール/プットに権利行使価格がない。
	ErrOptionWithoutStrike ErrorCode = "E002"
	// ErrInvalidExpiryFormat: 限月が8桁の数字でない。
	ErrInvalidExpiryFormat ErrorCode = "E003"
	// ErrInvalidSegmentCount: セグメント数が 2/4/5 以外、または空文字列。
	ErrInvalidSegmentCount ErrorCode = "E004"
	// ErrInvalidDate: 限月が実在する日付でない。
	ErrInvalidDate ErrorCode = "E005"
	// ErrInvalidOptionType: 種別が C/P/O/F 以外。
	ErrInvalidOptionType ErrorCode = "E006"
	// ErrUnknownExchange: 取引所コードが英大文字4文字でない。
	ErrUnknownExchange ErrorCode = "E007"
	// ErrInvalidCode: 証券・商品コードが長さ/文字種の制約を満たさない。
	ErrInvalidCode ErrorCode = "E008"
	// ErrInvalidStrikeValue: 権利行使価格が数値でない、または1未満。
	ErrInvalidStrikeValue ErrorCode = "E009"
	// ErrSymbolTooLong: シンボル文字列が MaxSymbolLength を超える。
	ErrSymbolTooLong ErrorCode = "E010"
)

var codeNames = map[ErrorCode]string{
	ErrFutureWithStrike:    "FUTURE_WITH_STRIKE",
	ErrOptionWithoutStrike: "OPTION_WITHOUT_STRIKE",
	ErrInvalidExpiryFormat: "INVALID_EXPIRY_FORMAT",
	ErrInvalidSegmentCount: "INVALID_SEGMENT_COUNT",
	ErrInvalidDate:         "INVALID_DATE",
	ErrInvalidOptionType:   "INVALID_OPTION_TYPE",
	ErrUnknownExchange:     "UNKNOWN_EXCHANGE",
	ErrInvalidCode:         "INVALID_CODE",
	ErrInvalidStrikeValue:  "INVALID_STRIKE_VALUE",
	ErrSymbolTooLong:       "SYMBOL_TOO_LONG",
}

// Name returns the kind name of the code, e.g. "INVALID_DATE".
// Codes outside the closed set return "UNKNOWN".
func (c ErrorCode) Name() string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	return "UNKNOWN"
}

// String returns the stable code.
func (c ErrorCode) String() string {
	return string(c)
}

// ErrorCodes returns every code in the closed set, ordered E001..E010.
func ErrorCodes() []ErrorCode {
	return []ErrorCode{
		ErrFutureWithStrike,
		ErrOptionWithoutStrike,
		ErrInvalidExpiryFormat,
		ErrInvalidSegmentCount,
		ErrInvalidDate,
		ErrInvalidOptionType,
		ErrUnknownExchange,
		ErrInvalidCode,
		ErrInvalidStrikeValue,
		ErrSymbolTooLong,
	}
}

// ValidationError is returned by the field validators and symbol constructors.
// Field and Value identify the offending input.
type ValidationError struct {
	Code    ErrorCode
	Message string
	Field   string
	Value   any
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(code ErrorCode, message, field string, value any) *ValidationError {
	return &ValidationError{
		Code:    code,
		Message: message,
		Field:   field,
		Value:   value,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ErrorCode returns the code of the failure.
func (e *ValidationError) ErrorCode() ErrorCode {
	return e.Code
}

// ParseError is returned by the parser. It always carries the raw input as
// received, before normalization.
type ParseError struct {
	Code      ErrorCode
	Message   string
	RawSymbol string
	wrapped   error
}

// NewParseError creates a ParseError for raw.
func NewParseError(code ErrorCode, message, raw string) *ParseError {
	return &ParseError{
		Code:      code,
		Message:   message,
		RawSymbol: raw,
	}
}

// WrapValidationError converts a validation failure raised while parsing raw into
// a ParseError with the same code. The original error stays reachable via errors.As.
func WrapValidationError(ve *ValidationError, raw string) *ParseError {
	return &ParseError{
		Code:      ve.Code,
		Message:   ve.Message,
		RawSymbol: raw,
		wrapped:   ve,
	}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the validation error the parse error was built from, if any.
func (e *ParseError) Unwrap() error {
	return e.wrapped
}

// ErrorCode returns the code of the failure.
func (e *ParseError) ErrorCode() ErrorCode {
	return e.Code
}

// ErrInvalidInputType marks a caller-contract violation: the parser was given
// something that is not text. It carries no ErrorCode.
var ErrInvalidInputType = errors.New("symbol input must be a string")

// InputTypeError reports the dynamic type that was passed instead of a string.
type InputTypeError struct {
	Got string
}

// Error implements the error interface.
func (e *InputTypeError) Error() string {
	return fmt.Sprintf("expected string, got %s", e.Got)
}

// Is makes errors.Is(err, ErrInvalidInputType) report true.
func (e *InputTypeError) Is(target error) bool {
	return target == ErrInvalidInputType
}

type coded interface {
	ErrorCode() ErrorCode
}

// CodeOf extracts the ErrorCode carried by err or anything it wraps.
// The outermost coded error wins.
func CodeOf(err error) (ErrorCode, bool) {
	var c coded
	if errors.As(err, &c) {
		return c.ErrorCode(), true
	}
	return "", false
}
