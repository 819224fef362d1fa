package providers

import (
	"github.com/mitchellh/mapstructure"
	"github.com/tliron/commonlog"
	proto "github.com/tliron/glsp/protocol_3_16"

	. "github.com/emberlint/template-lint-lsp/types"
)

type ClientConfiguration struct {
	// NodePath overrides the node binary used to run the linter.
	NodePath string `json:"node_path" mapstructure:"node_path"`

	// Verbose turns on debug logging.
	Verbose bool `json:"verbose" mapstructure:"verbose"`
}

func GetClientConfiguration(src any) (res ClientConfiguration, err error) {
	err = mapstructure.Decode(src, &res)

	return
}

// ConfigurationChange re-lints every open document: the lint config the
// gate depends on may have appeared or gone away, and the linter reads
// its config fresh per invocation.
func ConfigurationChange(ctx *Ctx, params *proto.DidChangeConfigurationParams) error {
	config, err := GetClientConfiguration(params.Settings)

	if err == nil {
		applyConfiguration(config)
	}

	relint.Schedule()

	return nil
}

func applyConfiguration(config ClientConfiguration) {
	if config.Verbose && !verboseLogging {
		verboseLogging = true
		commonlog.Configure(2, nil)
	}

	if root == nil {
		return
	}

	if config.NodePath != "" && config.NodePath != root.Linters.NodePath {
		root.Linters.NodePath = config.NodePath
		root.Linters.Reset()
	}
}
