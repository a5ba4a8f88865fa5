package domain

import (
	"fmt"
	"time"
)

// Type indicators accepted in the fourth segment of a symbol.
const (
	TypeCall   = "C"
	TypePut    = "P"
	TypeSeries = "O"
	TypeFuture = "F"
)

// ValidateExchange は取引所コード (MIC) を検証します。
// 英大文字4文字であることのみを確認し、実在する MIC かどうかは確認しません。
func ValidateExchange(exchange string) error {
	if len(exchange) != MICLength || !allUpper(exchange) {
		return NewValidationError(
			ErrUnknownExchange,
			fmt.Sprintf("Invalid exchange code: '%s' (must be %d uppercase letters)", exchange, MICLength),
			"exchange",
			exchange,
		)
	}
	return nil
}

// ValidateCode は証券・商品コードを検証します。
func ValidateCode(code string) error {
	if len(code) < MinCodeLength || len(code) > MaxCodeLength {
		return NewValidationError(
			ErrInvalidCode,
			fmt.Sprintf("Invalid code: '%s' (must be %d-%d characters)", code, MinCodeLength, MaxCodeLength),
			"code",
			code,
		)
	}
	for i := 0; i < len(code); i++ {
		if !isUpper(code[i]) && !isDigit(code[i]) {
			return NewValidationError(
				ErrInvalidCode,
				fmt.Sprintf("Invalid code: '%s' (must be uppercase alphanumeric)", code),
				"code",
				code,
			)
		}
	}
	return nil
}

// ValidateExpiry は限月 (YYYYMMDD) を検証します。
// 形式不正は ErrInvalidExpiryFormat、実在しない日付は ErrInvalidDate を返します。
func ValidateExpiry(expiry string) error {
	if len(expiry) != ExpiryLength || !allDigits(expiry) {
		return NewValidationError(
			ErrInvalidExpiryFormat,
			fmt.Sprintf("Invalid expiry format: '%s' (must be YYYYMMDD)", expiry),
			"expiry",
			expiry,
		)
	}

	year := atoiDigits(expiry[:4])
	month := atoiDigits(expiry[4:6])
	day := atoiDigits(expiry[6:8])

	if year < 1 {
		return NewValidationError(
			ErrInvalidDate,
			fmt.Sprintf("Invalid date: '%s' (invalid year: %d)", expiry, year),
			"expiry",
			expiry,
		)
	}
	if month < 1 || month > 12 {
		return NewValidationError(
			ErrInvalidDate,
			fmt.Sprintf("Invalid date: '%s' (invalid month: %d)", expiry, month),
			"expiry",
			expiry,
		)
	}
	if maxDay := daysIn(year, month); day < 1 || day > maxDay {
		return NewValidationError(
			ErrInvalidDate,
			fmt.Sprintf("Invalid date: '%s' (invalid day: %d for month %d)", expiry, day, month),
			"expiry",
			expiry,
		)
	}
	return nil
}

// ValidateOptionType は種別識別子 (C/P/O/F) を検証します。大文字小文字は区別します。
func ValidateOptionType(optionType string) error {
	switch optionType {
	case TypeCall, TypePut, TypeSeries, TypeFuture:
		return nil
	}
	return NewValidationError(
		ErrInvalidOptionType,
		fmt.Sprintf("Invalid option type: '%s' (must be C, P, O, or F)", optionType),
		"option_type",
		optionType,
	)
}

// ValidateStrike は権利行使価格を検証します。
func ValidateStrike(strike int) error {
	if strike < MinStrike {
		return NewValidationError(
			ErrInvalidStrikeValue,
			fmt.Sprintf("Invalid strike: %d (must be positive integer >= %d)", strike, MinStrike),
			"strike",
			strike,
		)
	}
	return nil
}

// daysIn returns the number of days in month of year (proleptic Gregorian).
func daysIn(year, month int) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func allUpper(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isUpper(s[i]) {
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// atoiDigits converts a string already checked by allDigits.
func atoiDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
