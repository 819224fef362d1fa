package providers

import (
	urlParser "net/url"
	"path/filepath"
	"strings"

	. "github.com/emberlint/template-lint-lsp/types"
)

func UriToPath(uri Uri) (string, error) {
	if strings.HasPrefix(uri, "/") {
		return uri, nil
	}

	url, err := urlParser.Parse(uri)

	if err != nil {
		return "", err
	}

	return url.Path, nil
}

func ToUri(path string) Uri {
	if strings.HasPrefix(path, "/") {
		path = "file://" + path
	}

	return path
}

func NormalizeUri(uri Uri) (Uri, error) {
	path, err := UriToPath(uri)

	if err != nil {
		return "", err
	}

	return ToUri(path), nil
}

// ModuleId mirrors the identifier the linter computes for a file on
// disk, its path without the extension.
func ModuleId(uri Uri) string {
	path, err := UriToPath(uri)

	if err != nil {
		path = uri
	}

	return strings.TrimSuffix(path, filepath.Ext(path))
}

func LogDebug(msg string, args ...any) {
	if server == nil {
		return
	}

	server.Log.Debugf(msg, args...)
}

func P[T ~string | ~int32](src T) *T {
	return &src
}
