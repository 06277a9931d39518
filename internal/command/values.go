package command

import (
	"fmt"

	"github.com/leandrodaf/lilymidi/internal/aggregator"
	"github.com/leandrodaf/lilymidi/internal/enum"
	"github.com/leandrodaf/lilymidi/internal/notation"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Value is one accepted spelling of an enumeration.
type Value struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
}

func describe[T comparable](entries []enum.Entry[T]) []Value {
	out := make([]Value, len(entries))
	for i, e := range entries {
		out[i] = Value{Name: e.Name, Aliases: e.Aliases}
	}
	return out
}

var enumerations = map[string]func() []Value{
	"keys":           func() []Value { return describe(notation.KeySignatures()) },
	"accidentals":    func() []Value { return describe(notation.Accidentals()) },
	"modes":          func() []Value { return describe(aggregator.InputModes()) },
	"languages":      func() []Value { return describe(notation.Languages()) },
	"octave-entries": func() []Value { return describe(notation.OctaveEntries()) },
}

// Enumerations lists the names accepted by Values, sorted.
func Enumerations() []string {
	names := maps.Keys(enumerations)
	slices.Sort(names)
	return names
}

// Values lists the registered values of an enumeration in table order.
func Values(name string) ([]Value, error) {
	values, ok := enumerations[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEnum, name)
	}
	return values(), nil
}
