// Package vars holds the single, flat variable table of a run.
package vars

import (
	"sort"

	"git.sr.ht/~mango/logo/literal"
)

type Table struct {
	m map[string]literal.Literal
}

func New() *Table {
	return &Table{make(map[string]literal.Literal, 64)}
}

func (t *Table) Get(name string) (literal.Literal, bool) {
	v, ok := t.m[name]
	return v, ok
}

// Set creates or overwrites name.
func (t *Table) Set(name string, v literal.Literal) {
	t.m[name] = v
}

// Remove deletes name and returns the value it held, if any.
func (t *Table) Remove(name string) (literal.Literal, bool) {
	v, ok := t.m[name]
	if ok {
		delete(t.m, name)
	}
	return v, ok
}

// Names returns the names of all variables in sorted order.
func (t *Table) Names() []string {
	xs := make([]string, 0, len(t.m))
	for k := range t.m {
		xs = append(xs, k)
	}
	sort.Strings(xs)
	return xs
}
