// Package libdiff computes structural differences between two stores.
//
// Group names are diffed as sequences, so a group present in both
// stores is matched even if other groups were added or removed around
// it. Matched groups are diffed key by key, matched keys value by value.
package libdiff

import (
	"slices"
	"unicode/utf8"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/cavatina/kv"
	"github.com/signadot/cavatina/token"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}

type ValueDiff struct {
	Op   Op
	Name string
}

// KeyDiff describes a key. For an Equal key only the differing values
// are listed; for an inserted or deleted key all of them are.
type KeyDiff struct {
	Op     Op
	Name   string
	Values []ValueDiff
}

// GroupDiff describes a group, listing keys the way KeyDiff lists values.
type GroupDiff struct {
	Op   Op
	Name string
	Keys []KeyDiff
}

type Delta struct {
	Groups []GroupDiff
}

// Empty reports whether the two stores were equal.
func (d *Delta) Empty() bool {
	return len(d.Groups) == 0
}

// Diff returns the changes turning from into to.
func Diff(from, to *kv.Store) *Delta {
	fromGroups := slices.Collect(from.Groups())
	toGroups := slices.Collect(to.Groups())
	res := &Delta{}
	walk(names(fromGroups), names(toGroups), func(op Op, fi, ti int) {
		switch op {
		case Delete:
			res.Groups = append(res.Groups, wholeGroup(Delete, fromGroups[fi]))
		case Insert:
			res.Groups = append(res.Groups, wholeGroup(Insert, toGroups[ti]))
		case Equal:
			keys := diffKeys(fromGroups[fi], toGroups[ti])
			if len(keys) != 0 {
				res.Groups = append(res.Groups, GroupDiff{Op: Equal, Name: fromGroups[fi].Name().String(), Keys: keys})
			}
		}
	})
	return res
}

func diffKeys(from, to *kv.Group) []KeyDiff {
	fromKeys := slices.Collect(from.Keys())
	toKeys := slices.Collect(to.Keys())
	var res []KeyDiff
	walk(names(fromKeys), names(toKeys), func(op Op, fi, ti int) {
		switch op {
		case Delete:
			res = append(res, wholeKey(Delete, fromKeys[fi]))
		case Insert:
			res = append(res, wholeKey(Insert, toKeys[ti]))
		case Equal:
			vals := diffValues(fromKeys[fi], toKeys[ti])
			if len(vals) != 0 {
				res = append(res, KeyDiff{Op: Equal, Name: fromKeys[fi].Name().String(), Values: vals})
			}
		}
	})
	return res
}

func diffValues(from, to *kv.Key) []ValueDiff {
	fromVals := from.Strings()
	toVals := to.Strings()
	var res []ValueDiff
	walk(fromVals, toVals, func(op Op, fi, ti int) {
		switch op {
		case Delete:
			res = append(res, ValueDiff{Op: Delete, Name: fromVals[fi]})
		case Insert:
			res = append(res, ValueDiff{Op: Insert, Name: toVals[ti]})
		}
	})
	return res
}

func wholeGroup(op Op, g *kv.Group) GroupDiff {
	res := GroupDiff{Op: op, Name: g.Name().String()}
	for k := range g.Keys() {
		res.Keys = append(res.Keys, wholeKey(op, k))
	}
	return res
}

func wholeKey(op Op, k *kv.Key) KeyDiff {
	res := KeyDiff{Op: op, Name: k.Name().String()}
	for _, v := range k.Strings() {
		res.Values = append(res.Values, ValueDiff{Op: op, Name: v})
	}
	return res
}

// walk diffs two sequences of names and calls f for each element in
// diff order with the indices of the element in from and to.
func walk(from, to []string, f func(op Op, fi, ti int)) {
	runeMap := map[string]rune{}
	diffs := diffpatch.New().DiffMainRunes(mapNames(runeMap, from), mapNames(runeMap, to), false)
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := utf8.RuneCountInString(diff.Text)
		for range n {
			switch diff.Type {
			case diffpatch.DiffDelete:
				f(Delete, fi, ti)
				fi++
			case diffpatch.DiffEqual:
				f(Equal, fi, ti)
				fi++
				ti++
			case diffpatch.DiffInsert:
				f(Insert, fi, ti)
				ti++
			}
		}
	}
}

// mapNames assigns each distinct name a rune, skipping the surrogate
// range so every rune survives conversion to a string.
func mapNames(m map[string]rune, ns []string) []rune {
	rs := make([]rune, len(ns))
	for i, n := range ns {
		r, ok := m[n]
		if !ok {
			r = rune(len(m))
			if r >= 0xD800 {
				r += 0x800
			}
			m[n] = r
		}
		rs[i] = r
	}
	return rs
}

func names[T interface{ Name() token.Slice }](xs []T) []string {
	res := make([]string, len(xs))
	for i, x := range xs {
		res[i] = x.Name().String()
	}
	return res
}
