package kv

import (
	"fmt"
	"iter"

	"github.com/signadot/cavatina/debug"
	"github.com/signadot/cavatina/list"
	"github.com/signadot/cavatina/token"
)

// Key is a named, ordered set of Values.
type Key struct {
	link list.Link[*Key]
	name token.Slice
	vals list.List[*Value]
}

func (k *Key) ListLink() *list.Link[*Key] { return &k.link }

func (k *Key) Name() token.Slice { return k.name }

// Value returns the value called name, or nil.
func (k *Key) Value(name token.Slice) *Value {
	return get(&k.vals, name)
}

// AddValue returns the value called name, creating and appending it
// if there is none.
func (k *Key) AddValue(name token.Slice) *Value {
	if v := k.Value(name); v != nil {
		return v
	}
	v := &Value{name: name}
	k.vals.Append(v)
	if debug.Store() {
		debug.Logf("kv: add value %q to key %q\n", name, k.name)
	}
	return v
}

// RemoveValue unlinks v.
func (k *Key) RemoveValue(v *Value) error {
	if v == nil {
		return fmt.Errorf("%w: nil value in key %q", ErrNotAMember, k.name)
	}
	if err := k.vals.Remove(v); err != nil {
		return fmt.Errorf("%w: value %q in key %q", err, v.name, k.name)
	}
	if debug.Store() {
		debug.Logf("kv: remove value %q from key %q\n", v.name, k.name)
	}
	return nil
}

// RemoveValueByName removes the value called name.
func (k *Key) RemoveValueByName(name token.Slice) error {
	v := k.Value(name)
	if v == nil {
		return fmt.Errorf("%w: value %q in key %q", ErrNotFound, name, k.name)
	}
	return k.RemoveValue(v)
}

// Values yields the values in insertion order.
func (k *Key) Values() iter.Seq[*Value] {
	return k.vals.All()
}

// Len returns the number of values.
func (k *Key) Len() int { return k.vals.Len() }

// Strings returns the value names in order.
func (k *Key) Strings() []string {
	res := make([]string, 0, k.vals.Len())
	for v := range k.vals.All() {
		res = append(res, v.name.String())
	}
	return res
}

// Value is a named leaf.
type Value struct {
	link list.Link[*Value]
	name token.Slice
}

func (v *Value) ListLink() *list.Link[*Value] { return &v.link }

func (v *Value) Name() token.Slice { return v.name }
