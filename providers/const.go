package providers

import (
	"github.com/emberlint/template-lint-lsp/state"
	serv "github.com/tliron/glsp/server"
)

const lsName = "ember-template-lint"

var (
	server *serv.Server
	root   *state.Root
	relint *Relinter

	// nodeBinary is the --node flag value, applied to the session at
	// initialize.
	nodeBinary string

	// verboseLogging tracks whether debug logging is already on, the
	// log backend only needs configuring once.
	verboseLogging bool
)

var supportDiagnostics = false
