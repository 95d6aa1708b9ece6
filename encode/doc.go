// Package encode writes a [kv.Store] as cavatina text, JSON or YAML.
//
// # Usage
//
//	// canonical text, reparseable by package parse
//	err := encode.Encode(s, os.Stdout)
//
//	// YAML
//	err := encode.Encode(s, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
//	// colored text for a terminal
//	err := encode.Encode(s, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Groups, keys and values are written in store order.
//
// # Related Packages
//
//   - github.com/signadot/cavatina/parse - parse text into a store
//   - github.com/signadot/cavatina/format - output formats
package encode
