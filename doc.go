// Package swaggertoaxios turns Swagger 2.0 and OpenAPI 3.x documents into
// axios request functions for frontend projects.
//
// The work is split across a small pipeline of packages:
//
//   - parser: load a document from a URL or local file and resolve every $ref
//   - converter: upgrade Swagger 2.0 documents to the OpenAPI 3.0 shape
//   - normalizer: run resolution, upgrade and allOf flattening in order
//   - model: build the Folder → Tag → Operation tree from a normalized document
//   - typegen: translate schema objects into TypeScript type expressions
//   - batch: process many documents concurrently, keeping input order
//   - generator: render one JavaScript or TypeScript file per tag
//
// # Quick Start
//
//	res, err := batch.Run(ctx, []batch.Document{
//		{URL: "https://petstore.swagger.io/v2/swagger.json", URLType: "json"},
//	}, batch.WithCLIType(model.CLITypeVite))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, f := range res.Failures {
//		log.Printf("skipped %s: %v", f.Document.URL, f.Err)
//	}
//	cfg := generator.DefaultConfig()
//	out, err := generator.Generate(res.Folders, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := out.WriteFiles(cfg.OutputFolder); err != nil {
//		log.Fatal(err)
//	}
//
// The command line tool lives in cmd/swagger2axios.
package swaggertoaxios
