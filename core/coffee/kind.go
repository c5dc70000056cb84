package coffee

// Kind identifies one of the drinks on the menu.
type Kind int

const (
	KindUnknown Kind = iota
	KindExpresso
	KindLatte
	KindCappuccino
)

// String returns the name a drink is ordered by.
func (k Kind) String() string {
	switch k {
	case KindExpresso:
		return "Expresso"
	case KindLatte:
		return "Latte"
	case KindCappuccino:
		return "Cappuccino"
	default:
		return "unknown"
	}
}

// IsValid reports whether k is a member of the menu.
func (k Kind) IsValid() bool {
	return k >= KindExpresso && k <= KindCappuccino
}

// Kinds returns every drink in menu order.
func Kinds() []Kind {
	return []Kind{KindExpresso, KindLatte, KindCappuccino}
}

// ParseKind resolves an order name. Matching is exact and case-sensitive.
func ParseKind(name string) (Kind, bool) {
	for _, k := range Kinds() {
		if k.String() == name {
			return k, true
		}
	}
	return KindUnknown, false
}
