package linter

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveError describes a failed module resolution. Details are meant
// for the log channel, one line per pair, never for a diagnostic.
type ResolveError struct {
	Module string
	Tried  []string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("cannot resolve module %q from workspace", e.Module)
}

// Details returns loggable key/value pairs about the failure.
func (e *ResolveError) Details() [][2]string {
	details := [][2]string{
		{"module", e.Module},
	}

	for i, dir := range e.Tried {
		details = append(details, [2]string{fmt.Sprintf("tried[%d]", i), dir})
	}

	return details
}

// Resolve locates ModuleName in the dependency tree rooted at rootDir,
// checking node_modules of rootDir first and then of each parent
// directory, the same order the host runtime would use. It returns the
// module directory.
func Resolve(rootDir string) (string, error) {
	resErr := &ResolveError{Module: ModuleName}

	for dir := rootDir; ; {
		candidate := filepath.Join(dir, "node_modules", ModuleName)

		if _, err := os.Stat(filepath.Join(candidate, "package.json")); err == nil {
			return candidate, nil
		}

		resErr.Tried = append(resErr.Tried, candidate)

		parent := filepath.Dir(dir)

		if parent == dir {
			return "", resErr
		}

		dir = parent
	}
}
