package state

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/emberlint/template-lint-lsp/linter"
)

type LogFunc func(msg string, args ...any)

// Root is the long-lived session state: the workspace folder, the open
// documents and the memoized linter handle.
type Root struct {
	// Folder is the workspace root path, set once at initialize and
	// read-only after.
	Folder string

	// Docs is guarded by mu, handlers and re-lint timers touch it
	// from different goroutines.
	Docs    Docs
	Linters *LinterCache

	Log LogFunc

	mu sync.Mutex
}

func CreateRoot(log LogFunc) *Root {
	if log == nil {
		log = func(string, ...any) {}
	}

	return &Root{
		Docs:    make(Docs),
		Linters: CreateLinterCache(log),
		Log:     log,
	}
}

// SetFolder pins the workspace root. First call wins.
func (root *Root) SetFolder(path string) {
	if root.Folder == "" {
		root.Folder = path
	}
}

// ConfigPath is the expected workspace lint config location.
func (root *Root) ConfigPath() string {
	return filepath.Join(root.Folder, linter.ConfigFileName)
}

// HasConfig reports whether the lint config exists. The file contents
// are never read here, only the linter reads them.
func (root *Root) HasConfig() bool {
	if root.Folder == "" {
		return false
	}

	_, err := os.Stat(root.ConfigPath())

	return err == nil
}
