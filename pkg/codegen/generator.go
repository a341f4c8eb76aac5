package codegen

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/platinummonkey/syspropc/pkg/schema"
	"github.com/platinummonkey/syspropc/pkg/validation"
)

// Request describes one compilation: a schema file in, a declaration and a
// definition artifact out.
type Request struct {
	// SchemaPath is the schema file to compile.
	SchemaPath string
	// DeclDir receives the declaration artifact, DefDir the definition
	// artifact. A backend with a single artifact writes only to DefDir.
	DeclDir string
	DefDir  string
	// IncludePath is how the definition artifact references the declaration
	// artifact (the caller controls where the declaration gets installed).
	IncludePath string
	// Language selects the backend; empty means "cpp".
	Language string
}

// Result is the outcome of a successful compilation.
type Result struct {
	Module string
	// Files lists every artifact written, in emission order.
	Files []GeneratedFile
	// Warnings are the non-fatal diagnostics produced during default
	// resolution. They never block output.
	Warnings []*validation.Diagnostic
	// InputHash is the SHA256 of the schema text; identical inputs produce
	// byte-identical artifacts, so the hash identifies the whole output.
	InputHash string
	Duration  time.Duration
}

// Compile runs the full pipeline for one schema file: parse, validate,
// resolve defaults, emit, write. On a validation failure it returns the
// first violated rule's diagnostic as the error and writes nothing. Output
// is all-or-nothing: a failed write removes any artifact written before it.
func Compile(req *Request) (*Result, error) {
	start := time.Now()

	language := req.Language
	if language == "" {
		language = "cpp"
	}
	backend, err := GetBackend(language)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(req.SchemaPath)
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}

	props, err := schema.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.SchemaPath, err)
	}

	if diag := validation.Validate(props); diag != nil {
		return nil, diag
	}
	warnings := validation.Normalize(props)

	files, err := backend.Generate(props, req.IncludePath)
	if err != nil {
		return nil, fmt.Errorf("generating %s code for %s: %w", language, props.Module, err)
	}

	var written []string
	for _, file := range files {
		dir := req.DefDir
		if file.Kind == KindDeclaration {
			dir = req.DeclDir
		}
		path := filepath.Join(dir, file.Name)
		if err := os.WriteFile(path, []byte(file.Content), 0644); err != nil {
			// A failed write must not leave a partial artifact set behind.
			for _, p := range written {
				os.Remove(p)
			}
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}

	return &Result{
		Module:    props.Module,
		Files:     files,
		Warnings:  warnings,
		InputHash: HashSchema(content),
		Duration:  time.Since(start),
	}, nil
}
