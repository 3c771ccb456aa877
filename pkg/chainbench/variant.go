package chainbench

import (
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/singly/pkg/arenalist"
	"go.llib.dev/singly/pkg/boxlist"
	"go.llib.dev/singly/pkg/rclist"
	"go.llib.dev/singly/port/chainlist"
)

const (
	ErrUnknownVariant  errorkit.Error = "unknown list variant"
	ErrUnknownWorkload errorkit.Error = "unknown workload"
)

// Variant names a list implementation.
type Variant string

const (
	VariantBox   Variant = "box"
	VariantRC    Variant = "rc"
	VariantArena Variant = "arena"
)

// Variants returns every known Variant in a stable order.
func Variants() []Variant {
	return []Variant{VariantBox, VariantRC, VariantArena}
}

// NewList makes an empty list of the given Variant.
func NewList[T any](v Variant) (chainlist.List[T], error) {
	switch v {
	case VariantBox:
		return boxlist.New[T](), nil
	case VariantRC:
		return rclist.New[T](), nil
	case VariantArena:
		return arenalist.New[T](), nil
	default:
		return nil, ErrUnknownVariant.F("%q", v)
	}
}
