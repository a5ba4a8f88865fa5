// Package usecase implements the application logic of the marketsymbol feature.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"marketsymbol/internal/feature/marketsymbol/adapters"
	"marketsymbol/internal/feature/marketsymbol/adapters/slash"
	"marketsymbol/internal/feature/marketsymbol/adapters/suffix"
	"marketsymbol/internal/feature/marketsymbol/domain"
	"marketsymbol/internal/feature/marketsymbol/domain/entity"
	"marketsymbol/internal/feature/marketsymbol/parser"
)

// Vendor adapter kinds that can be registered declaratively.
const (
	VendorKindSuffix = "suffix"
	VendorKindSlash  = "slash"
)

// ErrUnknownVendorKind is returned by RegisterVendor for kinds other than suffix/slash.
var ErrUnknownVendorKind = errors.New("unknown vendor adapter kind")

// AdapterRegistry abstracts the vendor adapter registry.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type AdapterRegistry interface {
	Register(vendor string, adapter adapters.VendorAdapter) error
	Lookup(vendor string) (adapters.VendorAdapter, error)
	List() []string
}

// VendorSpec describes an adapter to build and register at runtime.
type VendorSpec struct {
	Name     string
	Kind     string
	Suffixes map[string]string // suffix kind: suffix -> MIC
	Exchange string            // slash kind: MIC
}

// SymbolUsecase provides symbol parsing and vendor conversion.
type SymbolUsecase struct {
	registry AdapterRegistry
	log      *slog.Logger
}

// NewSymbolUsecase creates a SymbolUsecase. A nil logger falls back to slog.Default().
func NewSymbolUsecase(registry AdapterRegistry, logger *slog.Logger) *SymbolUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &SymbolUsecase{registry: registry, log: logger}
}

// Normalize returns the normalized form of raw.
func (u *SymbolUsecase) Normalize(ctx context.Context, raw string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return parser.Normalize(raw), nil
}

// Parse parses raw into a symbol. Parse failures are logged at debug level
// with their stable code; they are data-quality signals, not server errors.
func (u *SymbolUsecase) Parse(ctx context.Context, raw string) (entity.Symbol, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sym, err := parser.Parse(raw)
	if err != nil {
		u.logParseFailure(ctx, err, raw)
		return nil, err
	}
	return sym, nil
}

// ParseValue parses an arbitrary decoded value (e.g. from JSON).
// Non-string values return an error matching domain.ErrInvalidInputType.
func (u *SymbolUsecase) ParseValue(ctx context.Context, v any) (entity.Symbol, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sym, err := parser.ParseValue(v)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInputType) {
			u.log.WarnContext(ctx, "symbol input is not a string", "error", err)
			return nil, err
		}
		raw, _ := v.(string)
		u.logParseFailure(ctx, err, raw)
		return nil, err
	}
	return sym, nil
}

// ParseBatch parses every entry independently.
func (u *SymbolUsecase) ParseBatch(ctx context.Context, raws []string) ([]parser.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	results := parser.ParseBatch(raws)
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	u.log.DebugContext(ctx, "symbol batch parsed", "total", len(results), "failed", failed)
	return results, nil
}

// ToSymbol converts vendor text into a unified symbol using the named adapter.
func (u *SymbolUsecase) ToSymbol(ctx context.Context, vendor, vendorSymbol string) (entity.Symbol, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a, err := u.registry.Lookup(vendor)
	if err != nil {
		return nil, err
	}
	sym, err := a.ToSymbol(vendorSymbol)
	if err != nil {
		u.log.DebugContext(ctx, "vendor symbol conversion failed", "vendor", vendor, "vendor_symbol", vendorSymbol, "error", err)
		return nil, err
	}
	return sym, nil
}

// FromSymbol parses raw unified text and converts it with the named adapter.
func (u *SymbolUsecase) FromSymbol(ctx context.Context, vendor, raw string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	a, err := u.registry.Lookup(vendor)
	if err != nil {
		return "", err
	}
	sym, err := u.Parse(ctx, raw)
	if err != nil {
		return "", err
	}
	out, err := a.FromSymbol(sym)
	if err != nil {
		u.log.DebugContext(ctx, "unified symbol conversion failed", "vendor", vendor, "symbol", sym.String(), "error", err)
		return "", err
	}
	return out, nil
}

// ListVendors returns the registered vendor names.
func (u *SymbolUsecase) ListVendors(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return u.registry.List(), nil
}

// RegisterVendor builds the adapter described by spec and registers it.
func (u *SymbolUsecase) RegisterVendor(ctx context.Context, spec VendorSpec) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a, err := BuildAdapter(spec)
	if err != nil {
		return err
	}
	if err := u.registry.Register(spec.Name, a); err != nil {
		return err
	}
	u.log.InfoContext(ctx, "vendor adapter registered", "vendor", spec.Name, "kind", spec.Kind)
	return nil
}

// BuildAdapter creates the adapter described by spec without registering it.
func BuildAdapter(spec VendorSpec) (adapters.VendorAdapter, error) {
	switch spec.Kind {
	case VendorKindSuffix:
		a, err := suffix.NewAdapter(spec.Suffixes)
		if err != nil {
			return nil, err
		}
		return a, nil
	case VendorKindSlash:
		a, err := slash.NewAdapter(spec.Exchange)
		if err != nil {
			return nil, err
		}
		return a, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVendorKind, spec.Kind)
	}
}

func (u *SymbolUsecase) logParseFailure(ctx context.Context, err error, raw string) {
	code, _ := domain.CodeOf(err)
	u.log.DebugContext(ctx, "symbol parse failed",
		"code", code.String(),
		"kind", code.Name(),
		"raw", raw,
		"error", err,
	)
}
