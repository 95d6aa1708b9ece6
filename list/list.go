// Package list provides an intrusive, append-ordered, singly linked list.
//
// Records take part in a list by embedding a [Link] and returning it
// from a ListLink method, so linking a record allocates nothing:
//
//	type rec struct {
//		link list.Link[*rec]
//	}
//
//	func (r *rec) ListLink() *list.Link[*rec] { return &r.link }
//
// A record may belong to at most one list at a time.
package list

import (
	"errors"
	"iter"
)

// ErrNotMember is returned when removing a record that is not linked
// into the list.
var ErrNotMember = errors.New("not a member")

// Link is the link field embedded in list records.
type Link[T any] struct {
	next T
}

// Elem is satisfied by record pointer types that embed a Link.
type Elem[T any] interface {
	comparable
	ListLink() *Link[T]
}

// List is an ordered collection of records. The zero value is an empty
// list ready to use.
type List[T Elem[T]] struct {
	first, last T
	n           int
}

// Append adds x at the end of the list in O(1).
func (l *List[T]) Append(x T) {
	var zero T
	x.ListLink().next = zero
	if l.first == zero {
		l.first = x
	} else {
		l.last.ListLink().next = x
	}
	l.last = x
	l.n++
}

// Remove unlinks x from the list. It scans from the head for x's
// predecessor and returns ErrNotMember if x is not found.
func (l *List[T]) Remove(x T) error {
	var zero, prev T
	cur := l.first
	for cur != zero && cur != x {
		prev = cur
		cur = cur.ListLink().next
	}
	if cur == zero {
		return ErrNotMember
	}
	next := x.ListLink().next
	if prev == zero {
		l.first = next
	} else {
		prev.ListLink().next = next
	}
	if l.last == x {
		l.last = prev
	}
	x.ListLink().next = zero
	l.n--
	return nil
}

// Contains reports whether x is linked into l.
func (l *List[T]) Contains(x T) bool {
	for y := range l.All() {
		if y == x {
			return true
		}
	}
	return false
}

// All yields the records in insertion order. The list must not be
// modified while iterating.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		var zero T
		for cur := l.first; cur != zero; cur = cur.ListLink().next {
			if !yield(cur) {
				return
			}
		}
	}
}

// Len returns the number of records in the list.
func (l *List[T]) Len() int { return l.n }

// First returns the head of the list, or the zero T if empty.
func (l *List[T]) First() T { return l.first }

// Last returns the tail of the list, or the zero T if empty.
func (l *List[T]) Last() T { return l.last }

// Clear empties the list, unlinking every record.
func (l *List[T]) Clear() {
	var zero T
	cur := l.first
	for cur != zero {
		next := cur.ListLink().next
		cur.ListLink().next = zero
		cur = next
	}
	*l = List[T]{}
}
