// Package batch runs the load, normalize and build pipeline over a list of
// documents.
//
// Documents are independent: each one is fetched, normalized and built on its
// own, several at a time, and a failure affects only that document. Results
// come back in input order regardless of completion order.
//
//	res, err := batch.Run(ctx, []batch.Document{
//		{URL: "https://example.com/v2/swagger.yaml"},
//		{URL: "./api.json", IsLocalFile: true, URLType: "json", Name: "local"},
//	}, batch.WithCLIType(model.CLITypeVite))
//	if err != nil {
//		return err // invalid options only
//	}
//	for _, f := range res.Failures {
//		log.Printf("skipped %s: %v", f.Document.URL, f.Err)
//	}
//
// A document is either fully built or reported as a failure, never both, so
// a consumer that writes files for res.Folders never writes partial output.
package batch
