package state

import (
	"strings"

	"github.com/redexp/textdocument"

	. "github.com/emberlint/template-lint-lsp/types"
)

type Doc struct {
	*TextDocument

	Uri  Uri
	Open bool
}

type Docs map[Uri]*Doc

func CreateDoc(uri Uri, text string) *Doc {
	return &Doc{
		TextDocument: textdocument.NewTextDocument(text),
		Uri:          uri,
		Open:         true,
	}
}

// OpenDoc stores the document with its full text. Reopening an
// unchanged document keeps the existing entry.
func (root *Root) OpenDoc(uri Uri, text string) *Doc {
	root.mu.Lock()
	defer root.mu.Unlock()

	if doc, ok := root.Docs[uri]; ok && doc.Text == text {
		doc.Open = true
		return doc
	}

	doc := CreateDoc(uri, text)
	root.Docs[uri] = doc

	return doc
}

// SetText replaces the document content with a full new text.
func (root *Root) SetText(uri Uri, text string) *Doc {
	root.mu.Lock()
	defer root.mu.Unlock()

	doc := CreateDoc(uri, text)
	root.Docs[uri] = doc

	return doc
}

// ChangeText applies a ranged edit to the stored document.
func (root *Root) ChangeText(uri Uri, r *Range, newText string) *Doc {
	root.mu.Lock()
	defer root.mu.Unlock()

	doc, ok := root.Docs[uri]

	if !ok {
		return nil
	}

	next := CreateDoc(uri, ApplyChange(doc.Text, r, newText))
	root.Docs[uri] = next

	return next
}

func (root *Root) GetDoc(uri Uri) *Doc {
	root.mu.Lock()
	defer root.mu.Unlock()

	return root.Docs[uri]
}

func (root *Root) CloseDoc(uri Uri) {
	root.mu.Lock()
	defer root.mu.Unlock()

	delete(root.Docs, uri)
}

// ApplyChange splices newText over the ranged part of text.
func ApplyChange(text string, r *Range, newText string) string {
	start := positionOffset(text, r.Start)
	end := positionOffset(text, r.End)

	if end < start {
		end = start
	}

	return text[:start] + newText + text[end:]
}

func positionOffset(text string, pos Position) int {
	offset := getLineOffset(text, int(pos.Line))

	line := text[offset:]

	if i := strings.Index(line, "\n"); i != -1 {
		line = line[:i]
	}

	return offset + charOffset(line, int(pos.Character))
}

// charOffset converts a character count into a byte offset within a
// single line. Position.Character counts UTF-16 code units, so runes
// outside the basic plane count as two.
func charOffset(line string, char int) int {
	units := 0

	for i, r := range line {
		if units >= char {
			return i
		}

		if r > 0xFFFF {
			units += 2
		} else {
			units++
		}
	}

	return len(line)
}

func getLineOffset(text string, line int) int {
	offset := 0

	for n := 0; n < line; n++ {
		i := strings.Index(text[offset:], "\n")

		if i == -1 {
			return len(text)
		}

		offset += i + 1
	}

	return offset
}
