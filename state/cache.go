package state

import (
	"errors"
	"sync"

	"github.com/emberlint/template-lint-lsp/linter"
)

// ResolveFunc locates the lint module directory for a workspace root.
type ResolveFunc func(rootDir string) (string, error)

// BuildFunc adapts a resolved module directory to the Linter interface.
type BuildFunc func(moduleDir string, configPath string) linter.Linter

// LinterCache memoizes the resolved linter for the process lifetime.
// A failed resolution is not cached, the next call retries. Concurrent
// resolutions may run redundantly, last writer wins.
type LinterCache struct {
	// Resolve and Build are swappable in tests.
	Resolve ResolveFunc
	Build   BuildFunc

	// NodePath overrides the node binary used by built linters.
	NodePath string

	mu     sync.Mutex
	handle linter.Linter

	log LogFunc
}

func CreateLinterCache(log LogFunc) *LinterCache {
	cache := &LinterCache{
		Resolve: linter.Resolve,
		log:     log,
	}

	cache.Build = func(moduleDir string, configPath string) linter.Linter {
		return &linter.NodeLinter{
			ModulePath: moduleDir,
			ConfigPath: configPath,
			NodePath:   cache.NodePath,
		}
	}

	return cache
}

// GetOrResolve returns the cached linter, resolving it on first use.
// On resolution failure it logs each failure detail and returns false,
// callers treat that as linting unavailable for this call.
func (cache *LinterCache) GetOrResolve(rootDir string, configPath string) (linter.Linter, bool) {
	cache.mu.Lock()
	handle := cache.handle
	cache.mu.Unlock()

	if handle != nil {
		return handle, true
	}

	moduleDir, err := cache.Resolve(rootDir)

	if err != nil {
		var resErr *linter.ResolveError

		if errors.As(err, &resErr) {
			for _, pair := range resErr.Details() {
				cache.log("%s: %s", pair[0], pair[1])
			}
		} else {
			cache.log("resolve %s: %s", linter.ModuleName, err)
		}

		return nil, false
	}

	handle = cache.Build(moduleDir, configPath)

	cache.mu.Lock()
	cache.handle = handle
	cache.mu.Unlock()

	return handle, true
}

// Reset drops the cached handle so the next use resolves again, used
// when client configuration affecting the linter changes.
func (cache *LinterCache) Reset() {
	cache.mu.Lock()
	cache.handle = nil
	cache.mu.Unlock()
}
