// Package normalizer turns a loaded document into the canonical OpenAPI 3.x
// tree the model builder reads.
//
// Normalization runs three steps in order, each consuming the complete output
// of the previous one:
//
//  1. every $ref is replaced with its target ([parser.RefResolver])
//  2. Swagger 2.0 documents are upgraded to the 3.0 shape ([converter.ToOAS3])
//  3. every allOf is merged into a single schema ([Flatten])
//
// A failure in any step fails the whole document; nothing partial is returned.
//
//	raw, err := loader.Load(ctx, parser.Source{Location: "petstore.yaml", IsLocalFile: true})
//	if err != nil {
//		return err
//	}
//	doc, err := normalizer.Normalize(ctx, raw, normalizer.WithRefResolver(loader.Resolver(raw)))
//	if err != nil {
//		return err
//	}
//	for _, e := range doc.Paths().Entries() {
//		fmt.Println(e.Key)
//	}
package normalizer
