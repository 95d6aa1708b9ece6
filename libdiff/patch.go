package libdiff

import (
	"bytes"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/cavatina/encode"
	"github.com/signadot/cavatina/format"
	"github.com/signadot/cavatina/kv"
	"github.com/signadot/cavatina/parse"
)

// Patch applies the RFC 6902 JSON patch p to the JSON form of s and
// returns the result as a new store. s is unchanged.
//
// Groups and keys surviving the patch keep their order in s; those the
// patch adds follow them.
func Patch(s *kv.Store, p []byte) (*kv.Store, error) {
	ops, err := jsonpatch.DecodePatch(p)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch: %w", err)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(s, buf, encode.EncodeFormat(format.JSONFormat), encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	out, err := ops.Apply(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("error applying patch: %w", err)
	}
	patched := kv.NewStore()
	if err := parse.ParseJSON(patched, out); err != nil {
		return nil, err
	}
	res := kv.NewStore()
	for g := range s.Groups() {
		pg := patched.Group(g.Name())
		if pg == nil {
			continue
		}
		rg := res.AddGroup(pg.Name())
		for k := range g.Keys() {
			if pk := pg.Key(k.Name()); pk != nil {
				rg.AddKey(pk.Name())
			}
		}
	}
	res.Merge(patched)
	return res, nil
}
