package main

import (
	lsp "github.com/emberlint/template-lint-lsp/providers"
	"github.com/spf13/pflag"
)

func init() {
	pflag.CommandLine.ParseErrorsWhitelist.UnknownFlags = true
	pflag.Int("web-socket", 0, "Start websocket server on port")
	pflag.Bool("verbose", false, "Enable debug logging")
	pflag.String("node", "", "Node binary used to run the workspace linter")
	pflag.Parse()
}

func main() {
	err := lsp.StartServer()

	if err != nil {
		panic(err)
	}
}
