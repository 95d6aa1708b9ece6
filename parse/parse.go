package parse

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/signadot/cavatina/debug"
	"github.com/signadot/cavatina/kv"
	"github.com/signadot/cavatina/token"
)

// Parse parses d into s. On error, s holds everything parsed before
// the offending line and the error is a *ParseError.
func Parse(s *kv.Store, d []byte, opts ...ParseOption) error {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.logger == nil {
		pOpts.logger = slog.Default()
	}
	p := &parser{
		store: s,
		doc:   token.NewPosDoc(d),
		opts:  pOpts,
	}
	for ln := range p.doc.Lines() {
		if err := p.line(ln); err != nil {
			pOpts.logger.Debug("parse stopped",
				"file", pOpts.filename,
				"line", ln.Num+1,
				"error", err)
			return err
		}
	}
	pOpts.logger.Debug("parsed",
		"file", pOpts.filename,
		"lines", p.doc.NumLines(),
		"groups", s.Len())
	return nil
}

func ParseString(s *kv.Store, text string, opts ...ParseOption) error {
	return Parse(s, []byte(text), opts...)
}

// ParseFile reads and parses the file at path.
func ParseFile(s *kv.Store, path string, opts ...ParseOption) error {
	d, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return Parse(s, d, append([]ParseOption{WithFilename(path)}, opts...)...)
}

// parser carries the cursors of a single Parse call: the group and key
// that following lines attach to.
type parser struct {
	store *kv.Store
	doc   *token.PosDoc
	opts  *parseOpts

	group *kv.Group
	key   *kv.Key
	value *kv.Value
}

func (p *parser) line(ln token.Line) error {
	if ln.Blank() {
		return nil
	}
	d := p.doc.Bytes()
	switch d[ln.Begin] {
	case '#':
		return nil
	case '[':
		return p.header(ln)
	}
	if eq := token.IndexByte(d, ln.Begin, ln.End, '='); eq >= 0 {
		return p.keyValues(ln, eq)
	}
	return p.errorAt(ln, ln.Begin, ErrSyntax)
}

// header handles "[name]".
func (p *parser) header(ln token.Line) error {
	d := p.doc.Bytes()
	if d[ln.End-1] != ']' || ln.End-ln.Begin < 2 {
		return p.errorAt(ln, ln.End-1, ErrBadHeader)
	}
	b, e := token.Trim(d, ln.Begin+1, ln.End-1)
	if b == e {
		return p.errorAt(ln, ln.Begin+1, fmt.Errorf("%w: empty name", ErrBadHeader))
	}
	if i := token.IndexByte(d, b, e, '['); i >= 0 {
		return p.errorAt(ln, i, ErrBadHeader)
	}
	if i := token.IndexByte(d, b, e, ']'); i >= 0 {
		return p.errorAt(ln, i, ErrBadHeader)
	}
	if token.HasSpace(d, b, e) {
		return p.errorAt(ln, b, fmt.Errorf("%w: space in name", ErrBadHeader))
	}
	p.group = p.store.AddGroup(p.name(b, e))
	p.key = nil
	p.value = nil
	if debug.Parse() {
		debug.Logf("parse: group %q %s\n", p.group.Name(), ln.Pos())
	}
	return nil
}

// keyValues handles "name = token...", eq being the offset of the '='.
// The whole line is checked before the store is touched.
func (p *parser) keyValues(ln token.Line, eq int) error {
	d := p.doc.Bytes()
	b, e := token.Trim(d, ln.Begin, eq)
	if b == e {
		return p.errorAt(ln, eq, fmt.Errorf("%w: empty name", ErrBadKey))
	}
	if token.HasSpace(d, b, e) {
		return p.errorAt(ln, b, fmt.Errorf("%w: space in name", ErrBadKey))
	}
	vb, ve := token.Trim(d, eq+1, ln.End)
	if vb == ve {
		return p.errorAt(ln, eq, ErrNoValue)
	}
	if p.group == nil {
		return p.errorAt(ln, ln.Begin, ErrNoGroup)
	}
	p.key = p.group.AddKey(p.name(b, e))
	for f := range token.Fields(d, vb, ve) {
		p.value = p.key.AddValue(p.name(f.Begin(), f.End()))
	}
	if debug.Parse() {
		debug.Logf("parse: key %q = %v %s\n", p.key.Name(), p.key.Strings(), ln.Pos())
	}
	return nil
}

func (p *parser) name(b, e int) token.Slice {
	s := token.At(p.doc.Bytes(), b, e)
	if p.opts.copyNames {
		return s.Clone()
	}
	return s
}

func (p *parser) errorAt(ln token.Line, off int, err error) error {
	line, col := p.doc.LineCol(off)
	return &ParseError{
		Filename: p.opts.filename,
		Line:     line + 1,
		Col:      col + 1,
		Offset:   off,
		Text:     ln.Content().String(),
		Err:      err,
	}
}
