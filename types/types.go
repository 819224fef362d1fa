package types

import (
	"github.com/redexp/textdocument"
	"github.com/tliron/glsp"
	proto "github.com/tliron/glsp/protocol_3_16"
)

type TextDocument = textdocument.TextDocument
type Uri = proto.DocumentUri
type Position = proto.Position
type Range = proto.Range
type Ctx = glsp.Context
