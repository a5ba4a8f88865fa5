// Package di provides dependency injection factories for creating application components.
package di

import (
	"log/slog"

	"marketsymbol/internal/feature/marketsymbol/adapters"
	"marketsymbol/internal/feature/marketsymbol/adapters/slash"
	"marketsymbol/internal/feature/marketsymbol/adapters/suffix"
	"marketsymbol/internal/feature/marketsymbol/transport/handler"
	"marketsymbol/internal/feature/marketsymbol/usecase"
)

// Built-in vendor names registered at startup.
const (
	VendorTwelveData = "twelvedata"
	VendorJPX        = "jpx"
)

// NewRegistry creates a registry with the built-in vendor adapters.
func NewRegistry() (*adapters.Registry, error) {
	reg := adapters.NewRegistry()

	jpx, err := slash.NewAdapter("XJPX")
	if err != nil {
		return nil, err
	}
	builtins := []struct {
		name    string
		adapter adapters.VendorAdapter
	}{
		{VendorTwelveData, suffix.TwelveData()},
		{VendorJPX, jpx},
	}
	for _, b := range builtins {
		if err := reg.Register(b.name, b.adapter); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// NewSymbolHandler wires registry, usecase and handler for the marketsymbol feature.
func NewSymbolHandler(reg *adapters.Registry, logger *slog.Logger) *handler.SymbolHandler {
	uc := usecase.NewSymbolUsecase(reg, logger)
	return handler.NewSymbolHandler(uc)
}
