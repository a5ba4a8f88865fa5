package entity

// AssetClass はシンボルが表す金融商品の種類です。
type AssetClass string

const (
	AssetClassEquity AssetClass = "equity"
	AssetClassFuture AssetClass = "future"
	AssetClassOption AssetClass = "option"
)

// AssetClasses returns every asset class in declaration order.
func AssetClasses() []AssetClass {
	return []AssetClass{AssetClassEquity, AssetClassFuture, AssetClassOption}
}

// IsValid reports whether a is one of the declared asset classes.
func (a AssetClass) IsValid() bool {
	return a.bit() != 0
}

func (a AssetClass) bit() AssetClassSet {
	switch a {
	case AssetClassEquity:
		return 1 << 0
	case AssetClassFuture:
		return 1 << 1
	case AssetClassOption:
		return 1 << 2
	}
	return 0
}

// AssetClassSet is an immutable set of asset classes, used by vendor adapters
// to declare what they can convert.
type AssetClassSet uint8

// NewAssetClassSet builds a set from classes. Unknown classes are ignored.
func NewAssetClassSet(classes ...AssetClass) AssetClassSet {
	var s AssetClassSet
	for _, c := range classes {
		s |= c.bit()
	}
	return s
}

// Contains reports whether c is in the set.
func (s AssetClassSet) Contains(c AssetClass) bool {
	b := c.bit()
	return b != 0 && s&b == b
}

// Classes returns the members in declaration order.
func (s AssetClassSet) Classes() []AssetClass {
	out := make([]AssetClass, 0, 3)
	for _, c := range AssetClasses() {
		if s.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of members.
func (s AssetClassSet) Len() int {
	return len(s.Classes())
}
