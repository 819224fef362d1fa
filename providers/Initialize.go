package providers

import (
	"github.com/emberlint/template-lint-lsp/state"
	proto "github.com/tliron/glsp/protocol_3_16"

	. "github.com/emberlint/template-lint-lsp/types"
)

func Initialize(ctx *Ctx, params *proto.InitializeParams) (any, error) {
	root = state.CreateRoot(LogDebug)
	relint = createRelinter()

	if nodeBinary != "" {
		root.Linters.NodePath = nodeBinary
	}

	if params != nil {
		options, err := GetClientConfiguration(params.InitializationOptions)

		if err == nil {
			applyConfiguration(options)
		}

		if folder := rootFolder(params); folder != "" {
			root.SetFolder(folder)
		}

		supportDiagnostics = params.Capabilities.TextDocument != nil && params.Capabilities.TextDocument.PublishDiagnostics != nil
	}

	syncType := proto.TextDocumentSyncKindFull

	res := &proto.InitializeResult{
		ServerInfo: &proto.InitializeResultServerInfo{
			Name: lsName,
		},
		Capabilities: proto.ServerCapabilities{
			TextDocumentSync: proto.TextDocumentSyncOptions{
				OpenClose: &proto.True,
				Change:    &syncType,
			},
		},
	}

	return res, nil
}

// rootFolder picks the workspace root from the initialize params, in
// the order clients populate them.
func rootFolder(params *proto.InitializeParams) string {
	if params.RootPath != nil && *params.RootPath != "" {
		return *params.RootPath
	}

	if params.RootURI != nil {
		if path, err := UriToPath(*params.RootURI); err == nil && path != "" {
			return path
		}
	}

	for _, folder := range params.WorkspaceFolders {
		if path, err := UriToPath(folder.URI); err == nil && path != "" {
			return path
		}
	}

	return ""
}

func Initialized(ctx *Ctx, params *proto.InitializedParams) error {
	watchConfig()

	return nil
}

func Shutdown(ctx *Ctx) error {
	stopConfigWatcher()

	return nil
}

func SetTrace(ctx *Ctx, params *proto.SetTraceParams) error {
	return nil
}

func CancelRequest(ctx *Ctx, params *proto.CancelParams) error {
	return nil
}
