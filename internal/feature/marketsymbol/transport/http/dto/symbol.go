// Package dto defines data transfer objects for the marketsymbol HTTP API.
package dto

import (
	"errors"

	"marketsymbol/internal/feature/marketsymbol/domain"
	"marketsymbol/internal/feature/marketsymbol/domain/entity"
)

// SymbolResponse is the JSON form of a parsed symbol.
// Expiry, OptionType and Strike are omitted when the asset class has none.
type SymbolResponse struct {
	Symbol     string `json:"symbol"`
	AssetClass string `json:"asset_class"`
	Exchange   string `json:"exchange"`
	Code       string `json:"code"`
	Expiry     string `json:"expiry,omitempty"`
	OptionType string `json:"option_type,omitempty"`
	Strike     *int   `json:"strike,omitempty"`
}

// NewSymbolResponse converts a symbol into its response DTO.
func NewSymbolResponse(s entity.Symbol) SymbolResponse {
	out := SymbolResponse{
		Symbol:     s.String(),
		AssetClass: string(s.AssetClass()),
		Exchange:   s.Exchange(),
		Code:       s.Code(),
	}
	switch v := s.(type) {
	case entity.EquitySymbol:
	case entity.FutureSymbol:
		out.Expiry = v.Expiry()
	case entity.OptionSymbol:
		out.Expiry = v.Expiry()
		out.OptionType = v.OptionType().Name()
		if n, ok := v.Strike(); ok {
			out.Strike = &n
		}
	}
	return out
}

// ErrorResponse is the JSON body of every failed request.
// Code and Kind are set for symbol parse/validation failures only.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Kind  string `json:"kind,omitempty"`
	Raw   string `json:"raw,omitempty"`
	Field string `json:"field,omitempty"`
}

// NewErrorResponse builds an ErrorResponse, filling the symbol error details when err carries them.
func NewErrorResponse(err error) ErrorResponse {
	out := ErrorResponse{Error: err.Error()}
	if code, ok := domain.CodeOf(err); ok {
		out.Code = code.String()
		out.Kind = code.Name()
	}
	var pe *domain.ParseError
	if errors.As(err, &pe) {
		out.Raw = pe.RawSymbol
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		out.Field = ve.Field
	}
	return out
}

// NormalizeResponse is returned by GET /symbols/normalize.
type NormalizeResponse struct {
	Input      string `json:"input"`
	Normalized string `json:"normalized"`
}

// ParseRequest is the body of POST /symbols/parse.
// Symbol is decoded as any so non-string input can be reported as a caller error.
type ParseRequest struct {
	Symbol any `json:"symbol"`
}

// BatchParseRequest is the body of POST /symbols/parse/batch.
type BatchParseRequest struct {
	Symbols []string `json:"symbols" binding:"required,max=1000"`
}

// BatchParseItem is one entry of a batch response.
type BatchParseItem struct {
	Input  string          `json:"input"`
	Symbol *SymbolResponse `json:"symbol,omitempty"`
	Error  *ErrorResponse  `json:"error,omitempty"`
}

// BatchParseResponse is returned by POST /symbols/parse/batch.
type BatchParseResponse struct {
	Results []BatchParseItem `json:"results"`
	Failed  int              `json:"failed"`
}

// VendorListResponse is returned by GET /vendors.
type VendorListResponse struct {
	Vendors []string `json:"vendors"`
}

// VendorSymbolResponse is returned by GET /vendors/:vendor/text.
type VendorSymbolResponse struct {
	Vendor       string `json:"vendor"`
	VendorSymbol string `json:"vendor_symbol"`
}

// RegisterVendorRequest is the body of POST /vendors.
type RegisterVendorRequest struct {
	Name     string            `json:"name" binding:"required"`
	Kind     string            `json:"kind" binding:"required,oneof=suffix slash"`
	Suffixes map[string]string `json:"suffixes"`
	Exchange string            `json:"exchange"`
}
