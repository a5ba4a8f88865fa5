// Package adapters defines the vendor adapter capability and the registry that
// maps vendor names to adapters.
package adapters

import (
	"errors"
	"fmt"

	"marketsymbol/internal/feature/marketsymbol/domain/entity"
)

var (
	// ErrInvalidVendorFormat is returned by ToSymbol when the vendor text does not
	// match the adapter's format.
	ErrInvalidVendorFormat = errors.New("invalid vendor symbol format")

	// ErrUnsupportedAssetClass is returned by FromSymbol when the symbol's asset
	// class is not in the adapter's supported set.
	ErrUnsupportedAssetClass = errors.New("unsupported asset class")
)

// VendorAdapter converts between a vendor's symbol text and unified symbols.
// Implementations must be safe for concurrent use; the registry hands the same
// instance to every caller.
type VendorAdapter interface {
	// ToSymbol converts vendor text into a unified symbol.
	ToSymbol(vendorSymbol string) (entity.Symbol, error)
	// FromSymbol converts a unified symbol into vendor text.
	FromSymbol(symbol entity.Symbol) (string, error)
	// SupportedAssetClasses declares which asset classes the adapter handles.
	SupportedAssetClasses() entity.AssetClassSet
}

// EnsureSupported returns ErrUnsupportedAssetClass when a does not declare
// support for the asset class of s.
func EnsureSupported(a VendorAdapter, s entity.Symbol) error {
	if s == nil {
		return fmt.Errorf("%w: nil symbol", ErrUnsupportedAssetClass)
	}
	if !a.SupportedAssetClasses().Contains(s.AssetClass()) {
		return fmt.Errorf("%w: %s", ErrUnsupportedAssetClass, s.AssetClass())
	}
	return nil
}
