package kv

import (
	"fmt"
	"iter"

	"github.com/signadot/cavatina/debug"
	"github.com/signadot/cavatina/list"
	"github.com/signadot/cavatina/token"
)

// record is implemented by Group, Key and Value.
type record[T any] interface {
	list.Elem[T]
	Name() token.Slice
}

func get[T record[T]](l *list.List[T], name token.Slice) T {
	var zero T
	for x := range l.All() {
		if token.Equal(x.Name(), name) {
			return x
		}
	}
	return zero
}

func getString[T record[T]](l *list.List[T], name string) T {
	return get(l, token.FromString(name))
}

// Store is the root of a parsed tree: an ordered collection of Groups.
// The zero value is an empty store.
type Store struct {
	groups list.List[*Group]
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Group returns the group called name, or nil.
func (s *Store) Group(name token.Slice) *Group {
	return get(&s.groups, name)
}

// AddGroup returns the group called name, creating and appending it
// if there is none.
func (s *Store) AddGroup(name token.Slice) *Group {
	if g := s.Group(name); g != nil {
		return g
	}
	g := &Group{name: name}
	s.groups.Append(g)
	if debug.Store() {
		debug.Logf("kv: add group %q\n", name)
	}
	return g
}

// RemoveGroup unlinks g together with all its keys and values.
func (s *Store) RemoveGroup(g *Group) error {
	if g == nil {
		return fmt.Errorf("%w: nil group", ErrNotAMember)
	}
	if err := s.groups.Remove(g); err != nil {
		return fmt.Errorf("%w: group %q", err, g.name)
	}
	if debug.Store() {
		debug.Logf("kv: remove group %q\n", g.name)
	}
	g.release()
	return nil
}

// RemoveGroupByName removes the group called name.
func (s *Store) RemoveGroupByName(name token.Slice) error {
	g := s.Group(name)
	if g == nil {
		return fmt.Errorf("%w: group %q", ErrNotFound, name)
	}
	return s.RemoveGroup(g)
}

// Groups yields the groups in insertion order.
func (s *Store) Groups() iter.Seq[*Group] {
	return s.groups.All()
}

// Len returns the number of groups.
func (s *Store) Len() int { return s.groups.Len() }

// Lookup finds key in group by string names, returning nil if either
// is missing.
func (s *Store) Lookup(group, key string) *Key {
	g := getString(&s.groups, group)
	if g == nil {
		return nil
	}
	return getString(&g.keys, key)
}

// Clear releases every group, key and value, leaving s empty. Buffers
// the names were parsed from are not touched.
func (s *Store) Clear() {
	for g := range s.groups.All() {
		g.release()
	}
	s.groups.Clear()
}

// Merge adds every group, key and value of other into s with
// get-or-create semantics; the names in s keep referencing the
// buffers of other.
func (s *Store) Merge(other *Store) {
	for og := range other.Groups() {
		g := s.AddGroup(og.name)
		for sk := range og.Keys() {
			k := g.AddKey(sk.name)
			for ov := range sk.Values() {
				k.AddValue(ov.name)
			}
		}
	}
}
