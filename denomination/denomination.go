// Package denomination defines the fixed set of notes and coins a cash count
// is tallied against.
//
// A Registry is an ordered, immutable list of descriptors. Its order is both
// the display order and the order in which entry advances from one field to
// the next. Registries are built once at startup and never mutated:
//
//	reg := denomination.AUD
//	for _, d := range reg.List() {
//	    fmt.Println(d.Label, d.Value)
//	}
package denomination

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// ID identifies a denomination. It is stable and unique within a registry.
type ID string

// Kind separates notes from coins.
type Kind int

const (
	Note Kind = iota
	Coin
)

func (k Kind) String() string {
	switch k {
	case Note:
		return "note"
	case Coin:
		return "coin"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText renders the kind as "note" or "coin".
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses "note" or "coin".
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "note":
		*k = Note
	case "coin":
		*k = Coin
	default:
		return fmt.Errorf("unknown denomination kind %q", text)
	}
	return nil
}

// Descriptor describes a single note or coin.
type Descriptor struct {
	ID    ID
	Label string
	Value decimal.Decimal
	Kind  Kind
}

// Registry is an ordered list of descriptors.
type Registry struct {
	descriptors []Descriptor
	index       map[ID]int
}

// NewRegistry validates the descriptors and returns a registry preserving
// their order.
func NewRegistry(descriptors ...Descriptor) (*Registry, error) {
	if len(descriptors) == 0 {
		return nil, ErrEmptyRegistry
	}

	r := &Registry{
		descriptors: make([]Descriptor, 0, len(descriptors)),
		index:       make(map[ID]int, len(descriptors)),
	}

	for _, d := range descriptors {
		if d.ID == "" {
			return nil, &InvalidDescriptorError{Label: d.Label, Reason: "empty id"}
		}
		if !d.Value.IsPositive() {
			return nil, &InvalidDescriptorError{ID: d.ID, Label: d.Label, Reason: "face value must be positive"}
		}
		if _, ok := r.index[d.ID]; ok {
			return nil, &DuplicateDescriptorError{ID: d.ID, Field: "id"}
		}
		if slices.ContainsFunc(r.descriptors, func(existing Descriptor) bool {
			return existing.Value.Equal(d.Value)
		}) {
			return nil, &DuplicateDescriptorError{ID: d.ID, Field: "face value"}
		}

		r.index[d.ID] = len(r.descriptors)
		r.descriptors = append(r.descriptors, d)
	}

	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on invalid input.
// Use only for static tables.
func MustNewRegistry(descriptors ...Descriptor) *Registry {
	r, err := NewRegistry(descriptors...)
	if err != nil {
		panic(err)
	}
	return r
}

// List returns the descriptors in registry order. The returned slice is a copy.
func (r *Registry) List() []Descriptor {
	return slices.Clone(r.descriptors)
}

// Len returns the number of descriptors.
func (r *Registry) Len() int {
	return len(r.descriptors)
}

// IndexOf returns the position of id in registry order, or -1 if unknown.
func (r *Registry) IndexOf(id ID) int {
	if i, ok := r.index[id]; ok {
		return i
	}
	return -1
}

// Lookup returns the descriptor for id.
func (r *Registry) Lookup(id ID) (Descriptor, bool) {
	i := r.IndexOf(id)
	if i < 0 {
		return Descriptor{}, false
	}
	return r.descriptors[i], true
}

// Contains reports whether id is part of the registry.
func (r *Registry) Contains(id ID) bool {
	return r.IndexOf(id) >= 0
}

// Next returns the descriptor following id. It returns false when id is the
// last descriptor or unknown.
func (r *Registry) Next(id ID) (Descriptor, bool) {
	i := r.IndexOf(id)
	if i < 0 || i+1 >= len(r.descriptors) {
		return Descriptor{}, false
	}
	return r.descriptors[i+1], true
}

// Previous returns the descriptor preceding id. It returns false when id is
// the first descriptor or unknown.
func (r *Registry) Previous(id ID) (Descriptor, bool) {
	i := r.IndexOf(id)
	if i <= 0 {
		return Descriptor{}, false
	}
	return r.descriptors[i-1], true
}

// First returns the first descriptor.
func (r *Registry) First() Descriptor {
	return r.descriptors[0]
}

// Last returns the last descriptor.
func (r *Registry) Last() Descriptor {
	return r.descriptors[len(r.descriptors)-1]
}

// IsLast reports whether id is the final descriptor in registry order.
func (r *Registry) IsLast(id ID) bool {
	return r.IndexOf(id) == len(r.descriptors)-1
}
