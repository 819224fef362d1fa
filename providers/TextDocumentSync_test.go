package providers

import (
	"testing"

	proto "github.com/tliron/glsp/protocol_3_16"

	"github.com/emberlint/template-lint-lsp/linter"
)

func TestDocOpenLints(t *testing.T) {
	s := setup(t, true, &fakeLinter{
		findings: []linter.Finding{
			{Line: 1, Column: 0, Message: "x"},
		},
	})

	err := DocOpen(s.ctx, &proto.DidOpenTextDocumentParams{
		TextDocument: proto.TextDocumentItem{
			URI:        "file:///ws/app/templates/index.hbs",
			LanguageID: "handlebars",
			Version:    1,
			Text:       "<div></div>",
		},
	})

	if err != nil {
		t.Fatalf("DocOpen: %v", err)
	}

	if len(s.published) != 1 {
		t.Fatalf("publishes got: %d; expect: 1", len(s.published))
	}

	if !relint.Tracked("file:///ws/app/templates/index.hbs") {
		t.Error("open doc should be tracked for re-lints")
	}
}

func TestDocChangeWholeText(t *testing.T) {
	s := setup(t, true, &fakeLinter{})

	openDoc(t, s, "file:///ws/app/templates/index.hbs", "<div></div>")

	err := DocChange(s.ctx, &proto.DidChangeTextDocumentParams{
		TextDocument: proto.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: proto.TextDocumentIdentifier{URI: "file:///ws/app/templates/index.hbs"},
			Version:                2,
		},
		ContentChanges: []any{
			proto.TextDocumentContentChangeEventWhole{Text: "<p></p>"},
		},
	})

	if err != nil {
		t.Fatalf("DocChange: %v", err)
	}

	doc := root.Docs["file:///ws/app/templates/index.hbs"]

	if doc == nil || doc.Text != "<p></p>" {
		t.Fatalf("stored text got: %v", doc)
	}

	// one publish for open, one for change
	if len(s.published) != 2 {
		t.Errorf("publishes got: %d; expect: 2", len(s.published))
	}
}

func TestDocChangeRangedMatchesWholeText(t *testing.T) {
	s := setup(t, true, &fakeLinter{})

	openDoc(t, s, "file:///ws/app/templates/index.hbs", "<div>{{name}}</div>")

	r := &proto.Range{
		Start: proto.Position{Line: 0, Character: 5},
		End:   proto.Position{Line: 0, Character: 13},
	}

	err := DocChange(s.ctx, &proto.DidChangeTextDocumentParams{
		TextDocument: proto.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: proto.TextDocumentIdentifier{URI: "file:///ws/app/templates/index.hbs"},
			Version:                2,
		},
		ContentChanges: []any{
			proto.TextDocumentContentChangeEvent{Range: r, Text: "{{fullName}}"},
		},
	})

	if err != nil {
		t.Fatalf("DocChange: %v", err)
	}

	doc := root.Docs["file:///ws/app/templates/index.hbs"]

	if doc.Text != "<div>{{fullName}}</div>" {
		t.Errorf("stored text got: %s; expect: <div>{{fullName}}</div>", doc.Text)
	}
}

func TestDocClose(t *testing.T) {
	s := setup(t, true, &fakeLinter{})

	openDoc(t, s, "file:///ws/app/templates/index.hbs", "<div></div>")

	err := DocClose(s.ctx, &proto.DidCloseTextDocumentParams{
		TextDocument: proto.TextDocumentIdentifier{URI: "file:///ws/app/templates/index.hbs"},
	})

	if err != nil {
		t.Fatalf("DocClose: %v", err)
	}

	if _, ok := root.Docs["file:///ws/app/templates/index.hbs"]; ok {
		t.Error("doc should be removed on close")
	}

	if relint.Tracked("file:///ws/app/templates/index.hbs") {
		t.Error("closed doc should not be tracked for re-lints")
	}
}

func openDoc(t *testing.T, s *session, uri string, text string) {
	t.Helper()

	err := DocOpen(s.ctx, &proto.DidOpenTextDocumentParams{
		TextDocument: proto.TextDocumentItem{
			URI:        uri,
			LanguageID: "handlebars",
			Version:    1,
			Text:       text,
		},
	})

	if err != nil {
		t.Fatalf("DocOpen: %v", err)
	}
}
