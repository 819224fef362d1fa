//go:build !wasm && !wasip1

package providers

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"
	serv "github.com/tliron/glsp/server"
)

func StartServer() error {
	webSocketPort, err := pflag.CommandLine.GetInt("web-socket")

	if err != nil {
		return err
	}

	verbose, err := pflag.CommandLine.GetBool("verbose")

	if err != nil {
		return err
	}

	nodeBinary, err = pflag.CommandLine.GetString("node")

	if err != nil {
		return err
	}

	verbosity := 0

	if verbose {
		verbosity = 2
		verboseLogging = true
	}

	commonlog.Configure(verbosity, nil)

	server = serv.NewServer(CreateRequestHandler(), lsName, false)

	if webSocketPort > 0 {
		return server.RunWebSocket(fmt.Sprintf("127.0.0.1:%d", webSocketPort))
	}

	return server.RunStdio()
}
