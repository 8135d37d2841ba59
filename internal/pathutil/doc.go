// Package pathutil holds path helpers shared by the model builder and the
// file writer.
//
// [ExpandTemplate] substitutes {name} placeholders, as found in server URLs:
//
//	pathutil.ExpandTemplate("{scheme}://api.example.com/{version}", map[string]string{"scheme": "https"})
//	// "https://api.example.com/{version}"
//
// [SanitizeOutputPath] turns a user supplied output path into a clean
// absolute path and refuses to write through symlinks.
package pathutil
