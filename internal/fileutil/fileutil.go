// Package fileutil holds the permission modes used for generated output.
package fileutil

import "os"

// ReadableByAll is the file permission mode for generated API files, which
// are read by bundlers and other users.
const ReadableByAll os.FileMode = 0o644

// DirReadableByAll is the permission mode for directories created for
// generated output.
const DirReadableByAll os.FileMode = 0o755
