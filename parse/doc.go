// Package parse parses cavatina text into a [kv.Store].
//
// # Format
//
//	# comment
//	[group-name]
//	key-name = value1 value2 value3
//
// Lines are trimmed of surrounding whitespace. Blank lines and lines
// starting with '#' are skipped. A "[name]" line opens a group; every
// following "key = values" line adds to that group until the next
// header. Values are whitespace separated and repeated values collapse.
//
// # Usage
//
//	s := kv.NewStore()
//	if err := parse.Parse(s, data, parse.WithFilename("app.cav")); err != nil {
//	    return err
//	}
//
// Parsing is incremental: parsing more text into the same store merges
// it into the existing groups, keys and values. Parsing is not
// transactional: on a syntax error, the lines before the offending one
// remain in the store.
//
// By default names in the store reference the parsed buffer; see
// [CopyNames].
//
// # Related Packages
//
//   - github.com/signadot/cavatina/kv - the store
//   - github.com/signadot/cavatina/encode - encode a store to text
//   - github.com/signadot/cavatina/token - slices and positions
package parse
