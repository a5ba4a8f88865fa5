package entity

// OptionType はオプションのコール/プット/シリーズを識別します。
// 値はシンボル文字列上の種別識別子と一致します。
type OptionType string

const (
	OptionCall OptionType = "C"
	OptionPut  OptionType = "P"
	// OptionSeries は特定の権利行使価格を持たないオプション銘柄群を表します。
	OptionSeries OptionType = "O"
)

// Name returns CALL, PUT or SERIES. Unknown values return "".
func (t OptionType) Name() string {
	switch t {
	case OptionCall:
		return "CALL"
	case OptionPut:
		return "PUT"
	case OptionSeries:
		return "SERIES"
	}
	return ""
}

// RequiresStrike reports whether symbols of this type must carry a strike.
func (t OptionType) RequiresStrike() bool {
	return t == OptionCall || t == OptionPut
}
