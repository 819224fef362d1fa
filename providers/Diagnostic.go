package providers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/emberlint/template-lint-lsp/linter"
	"github.com/emberlint/template-lint-lsp/state"
	proto "github.com/tliron/glsp/protocol_3_16"

	. "github.com/emberlint/template-lint-lsp/types"
)

// LintDocument runs the workspace linter over doc and publishes the
// full result list, replacing whatever was published before. An empty
// list is still published so a clean document clears its diagnostics.
//
// When the workspace lint config is absent, or the lint module cannot
// be resolved, nothing is published and no error reaches the editor.
func LintDocument(ctx *Ctx, uri Uri, doc *state.Doc) {
	if root == nil || !supportDiagnostics {
		return
	}

	if !root.HasConfig() {
		return
	}

	handle, ok := root.Linters.GetOrResolve(root.Folder, root.ConfigPath())

	if !ok {
		return
	}

	findings, err := verify(handle, doc.Text, ModuleId(uri))

	if err != nil {
		LogDebug("lint %s: %s", uri, err)
		return
	}

	list := make([]proto.Diagnostic, len(findings))

	for i, finding := range findings {
		list[i] = FindingToDiagnostic(finding)
	}

	ctx.Notify(proto.ServerTextDocumentPublishDiagnostics, proto.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: list,
	})
}

// verify is the failure boundary around the resolved linter. One bad
// document must not take the server down.
func verify(handle linter.Linter, source string, moduleID string) (findings []linter.Finding, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("verify panic: %v", r)
		}
	}()

	return handle.Verify(context.Background(), source, moduleID)
}

// FindingToDiagnostic maps one raw finding to the wire shape. Severity
// is pinned to Error and the range spans a single character at the
// reported column, the linter reports no end position.
func FindingToDiagnostic(finding linter.Finding) proto.Diagnostic {
	line := finding.Line - 1

	if line < 0 {
		line = 0
	}

	column := finding.Column

	if column < 0 {
		column = 0
	}

	start := proto.Position{
		Line:      uint32(line),
		Character: uint32(column),
	}

	return proto.Diagnostic{
		Severity: P(proto.DiagnosticSeverityError),
		Range: proto.Range{
			Start: start,
			End: proto.Position{
				Line:      start.Line,
				Character: start.Character + 1,
			},
		},
		Message: finding.Message,
		Source:  P(linter.SourceName),
	}
}

// Relinter remembers the last context each open document was seen on
// and re-lints all of them on demand. Bursts of lint config events
// collapse into one pass; per-edit linting never goes through here.
//
// Track and Forget run on the handler path while Flush runs on the
// debounce timer goroutine, so the tracked map is mutex guarded.
type Relinter struct {
	Debounce func(func())

	mu   sync.Mutex
	docs map[Uri]*Ctx
}

func createRelinter() *Relinter {
	return &Relinter{
		Debounce: debounce.New(200 * time.Millisecond),
		docs:     make(map[Uri]*Ctx),
	}
}

func (r *Relinter) Track(uri Uri, ctx *Ctx) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.docs[uri] = ctx
}

func (r *Relinter) Forget(uri Uri) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.docs, uri)
}

func (r *Relinter) Tracked(uri Uri) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.docs[uri]

	return ok
}

func (r *Relinter) Schedule() {
	r.Debounce(func() {
		r.Flush()
	})
}

func (r *Relinter) Flush() {
	r.mu.Lock()

	tracked := make(map[Uri]*Ctx, len(r.docs))

	for uri, ctx := range r.docs {
		tracked[uri] = ctx
	}

	r.mu.Unlock()

	for uri, ctx := range tracked {
		doc := root.GetDoc(uri)

		if doc == nil {
			r.Forget(uri)
			continue
		}

		LintDocument(ctx, uri, doc)
	}
}
