package providers

import (
	proto "github.com/tliron/glsp/protocol_3_16"

	. "github.com/emberlint/template-lint-lsp/types"
)

func DocOpen(ctx *Ctx, params *proto.DidOpenTextDocumentParams) (err error) {
	uri, err := NormalizeUri(params.TextDocument.URI)

	if err != nil {
		return
	}

	doc := root.OpenDoc(uri, params.TextDocument.Text)

	relint.Track(uri, ctx)
	LintDocument(ctx, uri, doc)

	return
}

func DocChange(ctx *Ctx, params *proto.DidChangeTextDocumentParams) (err error) {
	uri, err := NormalizeUri(params.TextDocument.URI)

	if err != nil {
		return
	}

	for _, wrap := range params.ContentChanges {
		switch change := wrap.(type) {
		case proto.TextDocumentContentChangeEventWhole:
			root.SetText(uri, change.Text)

		case proto.TextDocumentContentChangeEvent:
			if change.Range == nil {
				root.SetText(uri, change.Text)
				continue
			}

			root.ChangeText(uri, change.Range, change.Text)
		}
	}

	doc := root.GetDoc(uri)

	if doc == nil {
		return
	}

	relint.Track(uri, ctx)
	LintDocument(ctx, uri, doc)

	return
}

func DocClose(_ *Ctx, params *proto.DidCloseTextDocumentParams) (err error) {
	uri, err := NormalizeUri(params.TextDocument.URI)

	if err != nil {
		return
	}

	root.CloseDoc(uri)
	relint.Forget(uri)

	return
}
