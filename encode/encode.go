package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-yaml"

	"github.com/signadot/cavatina/format"
	"github.com/signadot/cavatina/kv"
	"github.com/signadot/cavatina/token"
)

// ErrUnencodable is returned when a name cannot be written in the
// requested format, for example a text name holding whitespace or a
// JSON name that is not valid UTF-8.
var ErrUnencodable = errors.New("name cannot be encoded")

type EncState struct {
	format format.Format
	wire   bool

	Color func(ColorAttr, string) string
}

func Encode(s *kv.Store, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if es.Color == nil {
		es.Color = func(_ ColorAttr, v string) string { return v }
	}
	switch es.format {
	case format.TextFormat:
		return encodeText(s, w, es)
	case format.JSONFormat:
		return encodeJSON(s, w, es)
	case format.YAMLFormat:
		return encodeYAML(s, w)
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
}

// encodeText writes the canonical form: one header per group, one line
// per key with all its values, groups separated by a blank line. Keys
// without values have no text form and are left out.
func encodeText(s *kv.Store, w io.Writer, es *EncState) error {
	buf := bytes.NewBuffer(nil)
	first := true
	for g := range s.Groups() {
		if err := checkName(g.Name(), "[]"); err != nil {
			return fmt.Errorf("group: %w", err)
		}
		if !first {
			buf.WriteByte('\n')
		}
		first = false
		buf.WriteString(es.Color(SepColor, "["))
		buf.WriteString(es.Color(GroupColor, g.Name().String()))
		buf.WriteString(es.Color(SepColor, "]"))
		buf.WriteByte('\n')
		for k := range g.Keys() {
			if k.Len() == 0 {
				continue
			}
			if err := checkName(k.Name(), "="); err != nil {
				return fmt.Errorf("key in group %q: %w", g.Name(), err)
			}
			if b := k.Name().Bytes(); b[0] == '#' || b[0] == '[' {
				return fmt.Errorf("key in group %q: %w: %q", g.Name(), ErrUnencodable, k.Name())
			}
			buf.WriteString(es.Color(KeyColor, k.Name().String()))
			buf.WriteString(" ")
			buf.WriteString(es.Color(SepColor, "="))
			for v := range k.Values() {
				if err := checkName(v.Name(), ""); err != nil {
					return fmt.Errorf("value of %q: %w", k.Name(), err)
				}
				buf.WriteString(" ")
				buf.WriteString(es.Color(ValueColor, v.Name().String()))
			}
			buf.WriteByte('\n')
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func checkName(name token.Slice, reserved string) error {
	b := name.Bytes()
	if len(b) == 0 {
		return fmt.Errorf("%w: empty name", ErrUnencodable)
	}
	if token.HasSpace(b, 0, len(b)) || bytes.IndexByte(b, '\n') >= 0 || bytes.ContainsAny(b, reserved) {
		return fmt.Errorf("%w: %q", ErrUnencodable, name)
	}
	return nil
}

// encodeJSON writes an object of groups, each an object of keys, each
// an array of values. Objects keep store order.
func encodeJSON(s *kv.Store, w io.Writer, es *EncState) error {
	buf := bytes.NewBuffer(nil)
	buf.WriteByte('{')
	gi := 0
	for g := range s.Groups() {
		if gi > 0 {
			buf.WriteByte(',')
		}
		gi++
		if err := writeJSONString(buf, g.Name()); err != nil {
			return fmt.Errorf("group: %w", err)
		}
		buf.WriteString(":{")
		ki := 0
		for k := range g.Keys() {
			if ki > 0 {
				buf.WriteByte(',')
			}
			ki++
			if err := writeJSONString(buf, k.Name()); err != nil {
				return fmt.Errorf("key in group %q: %w", g.Name(), err)
			}
			buf.WriteString(":[")
			vi := 0
			for v := range k.Values() {
				if vi > 0 {
					buf.WriteByte(',')
				}
				vi++
				if err := writeJSONString(buf, v.Name()); err != nil {
					return fmt.Errorf("value of %q: %w", k.Name(), err)
				}
			}
			buf.WriteByte(']')
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	if es.wire {
		buf.WriteByte('\n')
		_, err := w.Write(buf.Bytes())
		return err
	}
	out := bytes.NewBuffer(nil)
	if err := json.Indent(out, buf.Bytes(), "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err := w.Write(out.Bytes())
	return err
}

func writeJSONString(buf *bytes.Buffer, name token.Slice) error {
	if err := checkUTF8(name); err != nil {
		return err
	}
	d, err := json.Marshal(name.String())
	if err != nil {
		return err
	}
	buf.Write(d)
	return nil
}

// encodeYAML writes a mapping of groups to mappings of keys to value
// sequences, in store order.
func encodeYAML(s *kv.Store, w io.Writer) error {
	ms, err := ToMapSlice(s)
	if err != nil {
		return err
	}
	d, err := yaml.Marshal(ms)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// ToMapSlice converts s to an ordered yaml.MapSlice of groups whose
// values are MapSlices of keys to []string. Names must be valid UTF-8.
func ToMapSlice(s *kv.Store) (yaml.MapSlice, error) {
	res := make(yaml.MapSlice, 0, s.Len())
	for g := range s.Groups() {
		if err := checkUTF8(g.Name()); err != nil {
			return nil, fmt.Errorf("group: %w", err)
		}
		keys := make(yaml.MapSlice, 0, g.Len())
		for k := range g.Keys() {
			if err := checkUTF8(k.Name()); err != nil {
				return nil, fmt.Errorf("key in group %q: %w", g.Name(), err)
			}
			for v := range k.Values() {
				if err := checkUTF8(v.Name()); err != nil {
					return nil, fmt.Errorf("value of %q: %w", k.Name(), err)
				}
			}
			keys = append(keys, yaml.MapItem{Key: k.Name().String(), Value: k.Strings()})
		}
		res = append(res, yaml.MapItem{Key: g.Name().String(), Value: keys})
	}
	return res, nil
}

// checkUTF8 rejects names JSON and YAML cannot carry unchanged.
func checkUTF8(name token.Slice) error {
	if !utf8.Valid(name.Bytes()) {
		return fmt.Errorf("%w: invalid utf-8 %q", ErrUnencodable, name)
	}
	return nil
}

func MustString(s *kv.Store) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(s, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
