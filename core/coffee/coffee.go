package coffee

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned for a Kind outside the menu.
var ErrUnknownKind = errors.New("unknown coffee kind")

// Coffee is a drink that can be prepared.
type Coffee interface {
	Prepare() string
	Kind() Kind
}

// Expresso is a short, strong coffee.
type Expresso struct{}

func (Expresso) Prepare() string { return "Preparing a rich and strong Expresso." }
func (Expresso) Kind() Kind      { return KindExpresso }

// Latte is espresso with steamed milk.
type Latte struct{}

func (Latte) Prepare() string { return "Preparing a smooth and creamy Latte." }
func (Latte) Kind() Kind      { return KindLatte }

// Cappuccino is espresso topped with milk foam.
type Cappuccino struct{}

func (Cappuccino) Prepare() string { return "Preparing a frothy Cappuccino." }
func (Cappuccino) Kind() Kind      { return KindCappuccino }

// New returns the drink for k.
func New(k Kind) (Coffee, error) {
	switch k {
	case KindExpresso:
		return Expresso{}, nil
	case KindLatte:
		return Latte{}, nil
	case KindCappuccino:
		return Cappuccino{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
}

// Describe returns the preparation message for k.
func Describe(k Kind) (string, error) {
	c, err := New(k)
	if err != nil {
		return "", err
	}
	return c.Prepare(), nil
}
