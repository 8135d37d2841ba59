package generator

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/FreezeNow/swagger-to-axios/internal/naming"
	"github.com/FreezeNow/swagger-to-axios/model"
	"github.com/FreezeNow/swagger-to-axios/oaserrors"
	"github.com/FreezeNow/swagger-to-axios/parser"
)

// IndexFileName is the base name of the file holding untagged operations.
const IndexFileName = "index"

// GeneratedFile represents a single generated file
type GeneratedFile struct {
	// Folder is the folder name the file belongs to (may be empty)
	Folder string
	// Name is the file name (e.g., "user.js", "index.ts")
	Name string
	// Tag is the tag the file was rendered from
	Tag string
	// Functions is the number of exported request functions
	Functions int
	// Content is the generated source
	Content []byte
}

// Path returns the slash-separated path of f relative to the output folder.
func (f *GeneratedFile) Path() string {
	return path.Join(f.Folder, f.Name)
}

// Result contains the files generated from a set of folders
type Result struct {
	// Files holds one file per tag, in folder then tag order
	Files []GeneratedFile
	// Folders is the number of folders rendered
	Folders int
	// Functions is the total number of request functions
	Functions int
	// GenerateTime is the time taken to render all files
	GenerateTime time.Duration
}

// GetFile returns the file at the slash-separated path p, or nil if not found
func (r *Result) GetFile(p string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Path() == p {
			return &r.Files[i]
		}
	}
	return nil
}

// Option configures Generate.
type Option func(*genOptions) error

type genOptions struct {
	logger parser.Logger
}

// WithLogger sets the logger for generation progress.
func WithLogger(l parser.Logger) Option {
	return func(o *genOptions) error {
		if l == nil {
			return &oaserrors.ConfigError{Option: "logger", Message: "must not be nil"}
		}
		o.logger = l
		return nil
	}
}

// Generate renders one file per tag of every folder.
//
// A folder's own CLIType takes precedence over cfg.CLIType. Folder names must
// be unique and usable as a single directory name; an empty name places the
// folder's files directly in the output folder.
func Generate(folders []model.Folder, cfg Config, opts ...Option) (*Result, error) {
	o := &genOptions{logger: parser.NopLogger{}}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("generator: invalid options: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generator: invalid config: %w", err)
	}

	start := time.Now()
	res := &Result{}
	seen := make(map[string]bool, len(folders))
	for i := range folders {
		folder := &folders[i]
		if err := checkFolderName(folder.Name); err != nil {
			return nil, fmt.Errorf("generator: %w", err)
		}
		if seen[folder.Name] {
			return nil, fmt.Errorf("generator: %w", &oaserrors.ConfigError{Option: "name", Value: folder.Name, Message: "duplicate folder name"})
		}
		seen[folder.Name] = true

		files, err := renderFolder(folder, cfg)
		if err != nil {
			return nil, fmt.Errorf("generator: folder %q: %w", folder.Name, err)
		}
		for _, f := range files {
			o.logger.Debug("rendered file", "path", f.Path(), "functions", f.Functions, "bytes", len(f.Content))
			res.Functions += f.Functions
		}
		res.Files = append(res.Files, files...)
		res.Folders++
	}
	res.GenerateTime = time.Since(start)
	o.logger.Info("generated files", "folders", res.Folders, "files", len(res.Files), "functions", res.Functions, "duration", res.GenerateTime)
	return res, nil
}

func renderFolder(folder *model.Folder, cfg Config) ([]GeneratedFile, error) {
	if folder.CLIType != "" {
		cfg.CLIType = folder.CLIType
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	files := make([]GeneratedFile, 0, len(folder.Tags))
	names := naming.NameSet{}
	for i := range folder.Tags {
		tag := &folder.Tags[i]
		name := names.Claim(fileBaseName(tag.Name)) + cfg.extension()
		content, err := executeTemplate("api.tmpl", newFileData(folder, tag, &cfg), len(tag.Operations))
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", name, err)
		}
		files = append(files, GeneratedFile{
			Folder:    folder.Name,
			Name:      name,
			Tag:       tag.Name,
			Functions: len(tag.Operations),
			Content:   content,
		})
	}
	return files, nil
}

// fileBaseName maps a tag name to a file name without extension.
// Characters that are not portable in file names become underscores.
func fileBaseName(tag string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, strings.ContainsRune(`/\:*?"<>|`, r):
			return '_'
		}
		return r
	}, tag)
	name = strings.Trim(name, " .")
	if name == "" {
		return IndexFileName
	}
	return name
}

func checkFolderName(name string) error {
	if name == "" {
		return nil
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return &oaserrors.ConfigError{Option: "name", Value: name, Message: "must be a single directory name"}
	}
	return nil
}
