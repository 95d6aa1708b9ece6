// Package token provides the lexical layer for cavatina text.
//
// A [Slice] is a non-owning view of a byte range in a caller supplied
// buffer. Slices compare by content, never by address, and every by-name
// lookup in the store goes through [Compare] or [Equal].
//
// [PosDoc] indexes the newlines of a buffer so that byte offsets can be
// reported as line/column positions, and splits the buffer into
// whitespace-trimmed [Line]s. [Fields] splits a line into
// whitespace-separated tokens.
//
// # Related Packages
//
//   - github.com/signadot/cavatina/parse - the parser built on these primitives
//   - github.com/signadot/cavatina/kv - the store holding parsed Slices
package token
