package libdiff

import (
	"bytes"
	"io"

	"github.com/signadot/cavatina/encode"
)

// Write prints d one name per line, prefixed by the operation and
// indented by depth:
//
//	  [db]
//	    port
//	-     5433
//	+     5434
//
// A nil colors writes plain text.
func (d *Delta) Write(w io.Writer, colors *encode.Colors) error {
	color := func(op Op, s string) string {
		if colors == nil {
			return s
		}
		switch op {
		case Insert:
			return colors.Color(encode.InsertColor, s)
		case Delete:
			return colors.Color(encode.DeleteColor, s)
		}
		return s
	}
	buf := bytes.NewBuffer(nil)
	line := func(op Op, indent, s string) {
		buf.WriteString(color(op, op.String()+" "+indent+s))
		buf.WriteByte('\n')
	}
	for _, g := range d.Groups {
		line(g.Op, "", "["+g.Name+"]")
		for _, k := range g.Keys {
			line(k.Op, "  ", k.Name)
			for _, v := range k.Values {
				line(v.Op, "    ", v.Name)
			}
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}
