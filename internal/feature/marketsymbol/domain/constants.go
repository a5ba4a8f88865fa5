package domain

// シンボルのバリデーションに使用する定数。
// 値は ISO 10383 (MIC) と社内のシンボル表記ルールに基づく。
const (
	// MICLength は ISO 10383 の MIC コード長です。
	MICLength = 4

	// MinCodeLength / MaxCodeLength は証券・商品コードの長さ制約です。
	MinCodeLength = 1
	MaxCodeLength = 10

	// ExpiryLength は限月 (YYYYMMDD) の長さです。
	ExpiryLength = 8

	// MinStrike は権利行使価格の最小値です。
	MinStrike = 1

	// MaxSymbolLength は正規化後のシンボル文字列の最大長 (rune 数) です。
	MaxSymbolLength = 100
)
