// Package model holds the canonical client model built from a normalized
// document: one Folder per document, one Tag per group of operations and one
// Operation per (path, method) pair.
//
// Build is a pure function of its inputs. Tags declared at the top of the
// document come first, in declaration order, even when no operation uses
// them; tags first seen on operations follow in encounter order. Operations
// without a tag are grouped under the empty tag name.
//
//	doc, _ := normalizer.Normalize(ctx, raw)
//	folder := model.Build(doc, model.DefaultFolderName(raw.Source.Location), model.CLITypeVite)
//	for _, tag := range folder.Tags {
//		fmt.Println(tag.Name, len(tag.Operations))
//	}
package model
