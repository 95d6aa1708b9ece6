package kv

import (
	"fmt"
	"iter"

	"github.com/signadot/cavatina/debug"
	"github.com/signadot/cavatina/list"
	"github.com/signadot/cavatina/token"
)

// Group is a named, ordered collection of Keys.
type Group struct {
	link list.Link[*Group]
	name token.Slice
	keys list.List[*Key]
}

func (g *Group) ListLink() *list.Link[*Group] { return &g.link }

func (g *Group) Name() token.Slice { return g.name }

// Key returns the key called name, or nil.
func (g *Group) Key(name token.Slice) *Key {
	return get(&g.keys, name)
}

// AddKey returns the key called name, creating and appending it if
// there is none.
func (g *Group) AddKey(name token.Slice) *Key {
	if k := g.Key(name); k != nil {
		return k
	}
	k := &Key{name: name}
	g.keys.Append(k)
	if debug.Store() {
		debug.Logf("kv: add key %q to group %q\n", name, g.name)
	}
	return k
}

// RemoveKey unlinks k together with its values.
func (g *Group) RemoveKey(k *Key) error {
	if k == nil {
		return fmt.Errorf("%w: nil key in group %q", ErrNotAMember, g.name)
	}
	if err := g.keys.Remove(k); err != nil {
		return fmt.Errorf("%w: key %q in group %q", err, k.name, g.name)
	}
	if debug.Store() {
		debug.Logf("kv: remove key %q from group %q\n", k.name, g.name)
	}
	k.vals.Clear()
	return nil
}

// RemoveKeyByName removes the key called name.
func (g *Group) RemoveKeyByName(name token.Slice) error {
	k := g.Key(name)
	if k == nil {
		return fmt.Errorf("%w: key %q in group %q", ErrNotFound, name, g.name)
	}
	return g.RemoveKey(k)
}

// Keys yields the keys in insertion order.
func (g *Group) Keys() iter.Seq[*Key] {
	return g.keys.All()
}

// Len returns the number of keys.
func (g *Group) Len() int { return g.keys.Len() }

func (g *Group) release() {
	for k := range g.keys.All() {
		k.vals.Clear()
	}
	g.keys.Clear()
}
