// Package document provides the generic value tree that OpenAPI documents are
// decoded into before normalization.
//
// A [Value] is a tagged union over the six JSON shapes (null, bool, number,
// string, sequence, mapping). Mappings keep their keys in document order, so
// paths, tags and properties come out in the order the author wrote them.
//
// Accessors never panic and never require key-existence probing. Each one
// returns the typed value and a boolean that reports whether the shape matched:
//
//	root, err := document.Decode(data, document.FormatYAML)
//	if err != nil {
//		return err
//	}
//	if paths, ok := root.MapField("paths"); ok {
//		for _, e := range paths.Entries() {
//			fmt.Println(e.Key)
//		}
//	}
//
// Values are pointers. After $ref resolution the same *Value can be reachable
// from several parents, and a schema can reach itself. Everything in this
// package that walks a tree (Clone, MarshalJSON, ToAny) is cycle-safe.
package document
