// Package kv holds the three level store populated by the parser:
// a [Store] contains [Group]s, a Group contains [Key]s and a Key
// contains [Value]s.
//
// Every level keeps its children in insertion order and identifies them
// by name alone; names are [token.Slice]s and are compared by content.
// Each level offers the same accessors:
//
//   - get (Group, Key, Value) looks a child up by name,
//   - add (AddGroup, AddKey, AddValue) is get-or-create and never
//     duplicates or renames an existing child,
//   - remove (RemoveGroup, ...) unlinks a child the caller holds,
//   - remove by name (RemoveGroupByName, ...) composes get and remove.
//
// A Store is not safe for concurrent use.
//
// # Usage
//
//	s := kv.NewStore()
//	db := s.AddGroup(token.FromString("db"))
//	port := db.AddKey(token.FromString("port"))
//	port.AddValue(token.FromString("5432"))
//
//	for g := range s.Groups() {
//	    for k := range g.Keys() {
//	        fmt.Println(g.Name(), k.Name(), k.Strings())
//	    }
//	}
package kv
