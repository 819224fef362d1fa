package linter

import "context"

const (
	// ModuleName is the npm package resolved from the workspace
	// dependency tree. The server never bundles a linter of its own.
	ModuleName = "ember-template-lint"

	// ConfigFileName gates linting: presence of this file in the
	// workspace root is the sole signal that linting is active.
	ConfigFileName = ".template-lintrc.js"

	// SourceName tags every published diagnostic.
	SourceName = "ember-template-lint"
)

// Finding is one raw issue reported by the linter. Line is 1-based,
// Column is the editor-native column as the linter reports it.
type Finding struct {
	Rule     string
	Severity int
	ModuleID string
	Message  string
	Line     int
	Column   int
}

// Linter is the narrow capability adapted over a dynamically loaded
// lint module.
type Linter interface {
	Verify(ctx context.Context, source string, moduleID string) ([]Finding, error)
}
