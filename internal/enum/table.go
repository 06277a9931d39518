// Package enum holds the registration tables used by the small configuration
// enums: each variant maps to one canonical name plus any number of aliases.
package enum

import "fmt"

// Entry registers one variant with its canonical name and aliases.
type Entry[T comparable] struct {
	Value   T
	Name    string
	Aliases []string
}

// E builds an Entry.
func E[T comparable](value T, name string, aliases ...string) Entry[T] {
	return Entry[T]{Value: value, Name: name, Aliases: aliases}
}

// Table is an immutable variant <-> string registry, built once at package init.
type Table[T comparable] struct {
	entries []Entry[T]
	lookup  map[string]T
	names   map[T]string
}

// New builds a table. It panics on a duplicated name or alias, since tables
// are only ever built from package-level literals.
func New[T comparable](entries ...Entry[T]) *Table[T] {
	t := &Table[T]{
		entries: entries,
		lookup:  make(map[string]T, len(entries)*2),
		names:   make(map[T]string, len(entries)),
	}
	for _, e := range entries {
		if _, dup := t.names[e.Value]; dup {
			panic(fmt.Sprintf("enum: variant %v registered twice", e.Value))
		}
		t.names[e.Value] = e.Name
		for _, s := range append([]string{e.Name}, e.Aliases...) {
			if _, dup := t.lookup[s]; dup {
				panic(fmt.Sprintf("enum: string %q registered twice", s))
			}
			t.lookup[s] = e.Value
		}
	}
	return t
}

// Parse looks up a canonical name or alias. Matching is exact.
func (t *Table[T]) Parse(s string) (T, bool) {
	v, ok := t.lookup[s]
	return v, ok
}

// Name returns the canonical name of v, or "" if v is not registered.
func (t *Table[T]) Name(v T) string {
	return t.names[v]
}

// Names lists canonical names in registration order.
func (t *Table[T]) Names() []string {
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Name
	}
	return out
}

// Entries returns a copy of the registered entries in registration order.
func (t *Table[T]) Entries() []Entry[T] {
	out := make([]Entry[T], len(t.entries))
	copy(out, t.entries)
	return out
}
