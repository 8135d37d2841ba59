// Package converter upgrades Swagger 2.0 documents to the OpenAPI 3.0 shape.
//
// It works on the generic [document.Value] tree after $ref resolution, so the
// upgrade never has to chase references itself. OpenAPI 3.x documents pass
// through unchanged.
//
// # Quick Start
//
//	res, err := converter.ToOAS3(root)
//	if err != nil {
//		// errors.Is(err, oaserrors.ErrUnsupportedVersion)
//		return err
//	}
//	for _, issue := range res.Issues {
//		fmt.Println(issue)
//	}
//
// # What changes
//
//   - host, basePath and schemes become servers (one per scheme, https when absent)
//   - definitions, parameters, responses and securityDefinitions move under components
//   - body parameters become requestBody, with one content entry per consumes media type
//   - formData parameters become an object schema under a form or multipart requestBody
//   - non-body parameters get a schema built from type, format, items and enum
//   - response schemas move under content, one entry per produces media type
//   - local $ref prefixes are rewritten (#/definitions/ → #/components/schemas/)
//
// # Conversion Issues
//
// Notes are collected at three severity levels: Info (choices made), Warning
// (best-effort transformations) and Critical (content that was dropped).
// Structural failures such as a paths value that is not a mapping abort the
// conversion with *oaserrors.ConversionError.
package converter
