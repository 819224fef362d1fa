package providers

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/emberlint/template-lint-lsp/linter"
)

var configWatcher *fsnotify.Watcher

// watchConfig watches the workspace root for the lint config appearing,
// changing or disappearing and schedules a re-lint of all open
// documents. The watch covers the directory since the file itself may
// not exist yet.
func watchConfig() {
	if root == nil || root.Folder == "" || configWatcher != nil {
		return
	}

	watcher, err := fsnotify.NewWatcher()

	if err != nil {
		LogDebug("config watcher: %s", err)
		return
	}

	if err = watcher.Add(root.Folder); err != nil {
		LogDebug("config watcher: %s", err)
		watcher.Close()
		return
	}

	configWatcher = watcher

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				if filepath.Base(event.Name) != linter.ConfigFileName {
					continue
				}

				if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					relint.Schedule()
				}

			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}

				LogDebug("config watcher: %s", watchErr)
			}
		}
	}()
}

func stopConfigWatcher() {
	if configWatcher == nil {
		return
	}

	configWatcher.Close()
	configWatcher = nil
}
