package parse

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/signadot/cavatina/kv"
	"github.com/signadot/cavatina/token"
)

// ParseJSON merges a JSON encoded store into s. The document is an
// object of groups, each an object of keys, each an array of string
// values, as written by encode with format.JSONFormat. Object member
// order is kept. A null group or key is treated as empty.
//
// Unlike Parse, the whole document is decoded before s is changed.
func ParseJSON(s *kv.Store, d []byte) error {
	var doc yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(d, &doc, yaml.UseOrderedMap()); err != nil {
		return fmt.Errorf("%w: %w", ErrJSON, err)
	}
	tmp := kv.NewStore()
	for _, gi := range doc {
		gName, ok := gi.Key.(string)
		if !ok {
			return fmt.Errorf("%w: group name %v is not a string", ErrJSON, gi.Key)
		}
		g := tmp.AddGroup(token.FromString(gName))
		if gi.Value == nil {
			continue
		}
		keys, ok := gi.Value.(yaml.MapSlice)
		if !ok {
			return fmt.Errorf("%w: group %q is not an object", ErrJSON, gName)
		}
		for _, ki := range keys {
			kName, ok := ki.Key.(string)
			if !ok {
				return fmt.Errorf("%w: key name %v in group %q is not a string", ErrJSON, ki.Key, gName)
			}
			k := g.AddKey(token.FromString(kName))
			if ki.Value == nil {
				continue
			}
			vals, ok := ki.Value.([]any)
			if !ok {
				return fmt.Errorf("%w: key %q in group %q is not an array", ErrJSON, kName, gName)
			}
			for _, v := range vals {
				vs, ok := v.(string)
				if !ok {
					return fmt.Errorf("%w: value %v of key %q in group %q is not a string", ErrJSON, v, kName, gName)
				}
				k.AddValue(token.FromString(vs))
			}
		}
	}
	s.Merge(tmp)
	return nil
}
