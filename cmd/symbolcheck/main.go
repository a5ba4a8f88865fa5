// Command symbolcheck validates unified symbols line by line.
//
//	symbolcheck [-vendor NAME] [-json] [FILE]
//
// Each non-blank input line is parsed. Valid lines print the canonical form
// (or the vendor text when -vendor is set); invalid lines print the error
// with its stable code. The exit status is 1 if any line failed.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"marketsymbol/internal/app/di"
	"marketsymbol/internal/feature/marketsymbol/adapters"
	"marketsymbol/internal/feature/marketsymbol/parser"
	"marketsymbol/internal/feature/marketsymbol/transport/http/dto"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type line struct {
	Input        string              `json:"input"`
	Symbol       *dto.SymbolResponse `json:"symbol,omitempty"`
	VendorSymbol string              `json:"vendor_symbol,omitempty"`
	Error        *dto.ErrorResponse  `json:"error,omitempty"`
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("symbolcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	vendor := fs.String("vendor", "", "convert valid symbols with this vendor adapter")
	asJSON := fs.Bool("json", false, "write one JSON object per line")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	in := stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		defer f.Close()
		in = f
	}

	var adapter adapters.VendorAdapter
	if *vendor != "" {
		reg, err := di.NewRegistry()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		if adapter, err = reg.Lookup(*vendor); err != nil {
			fmt.Fprintf(stderr, "%v (available: %s)\n", err, strings.Join(reg.List(), ", "))
			return 2
		}
	}

	raws, err := readLines(in)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	failed := 0
	enc := json.NewEncoder(stdout)
	for _, r := range parser.ParseBatch(raws) {
		out := line{Input: r.Raw}
		err := r.Err
		if err == nil {
			s := dto.NewSymbolResponse(r.Symbol)
			out.Symbol = &s
			if adapter != nil {
				out.VendorSymbol, err = adapter.FromSymbol(r.Symbol)
			}
		}
		if err != nil {
			failed++
			e := dto.NewErrorResponse(err)
			out.Error = &e
			out.Symbol = nil
		}

		if *asJSON {
			if err := enc.Encode(out); err != nil {
				fmt.Fprintln(stderr, err)
				return 2
			}
			continue
		}
		switch {
		case out.Error != nil:
			fmt.Fprintf(stdout, "%s\tERROR\t%s\n", out.Input, out.Error.Error)
		case adapter != nil:
			fmt.Fprintf(stdout, "%s\t%s\n", out.Input, out.VendorSymbol)
		default:
			fmt.Fprintf(stdout, "%s\t%s\n", out.Input, out.Symbol.Symbol)
		}
	}

	if failed > 0 {
		fmt.Fprintf(stderr, "%d of %d symbols failed\n", failed, len(raws))
		return 1
	}
	return 0
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return out, nil
}
