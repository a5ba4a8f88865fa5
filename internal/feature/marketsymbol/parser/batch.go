package parser

import "marketsymbol/internal/feature/marketsymbol/domain/entity"

// Result is the outcome of parsing one entry of a batch.
// Exactly one of Symbol and Err is set.
type Result struct {
	Raw    string
	Symbol entity.Symbol
	Err    error
}

// ParseBatch parses every entry independently; one failure does not stop the rest.
// Results keep the order of raws.
func ParseBatch(raws []string) []Result {
	out := make([]Result, len(raws))
	for i, raw := range raws {
		sym, err := Parse(raw)
		out[i] = Result{Raw: raw, Symbol: sym, Err: err}
	}
	return out
}
