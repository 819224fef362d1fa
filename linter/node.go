package linter

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// verifyScript runs inside the workspace's own node. It reads one JSON
// request from stdin, loads the resolved lint module and writes the raw
// result list as JSON to stdout.
const verifyScript = `
let input = "";
process.stdin.on("data", (chunk) => input += chunk);
process.stdin.on("end", async () => {
	const req = JSON.parse(input);
	const TemplateLinter = require(req.modulePath);
	const linter = new TemplateLinter({ configPath: req.configPath });
	let results = linter.verify({ source: req.source, moduleId: req.moduleId });
	if (results && typeof results.then === "function") {
		results = await results;
	}
	process.stdout.write(JSON.stringify(results || []));
});
`

// NodeLinter adapts the lint module resolved from the workspace to the
// Linter interface by running it in a node subprocess per verification.
type NodeLinter struct {
	// ModulePath is the resolved lint module directory.
	ModulePath string

	// ConfigPath is the workspace lint config the linter instance is
	// constructed with.
	ConfigPath string

	// NodePath overrides the node binary, "node" when empty.
	NodePath string
}

func (nl *NodeLinter) Verify(ctx context.Context, source string, moduleID string) ([]Finding, error) {
	req, err := buildRequest(nl.ModulePath, nl.ConfigPath, source, moduleID)

	if err != nil {
		return nil, err
	}

	node := nl.NodePath

	if node == "" {
		node = "node"
	}

	cmd := exec.CommandContext(ctx, node, "-e", verifyScript)
	cmd.Stdin = bytes.NewReader(req)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err = cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s verify: %w: %s", ModuleName, err, stderr.String())
	}

	return parseFindings(stdout.Bytes())
}

func buildRequest(modulePath string, configPath string, source string, moduleID string) ([]byte, error) {
	pairs := [][2]string{
		{"modulePath", modulePath},
		{"configPath", configPath},
		{"source", source},
		{"moduleId", moduleID},
	}

	req := []byte(`{}`)

	var err error

	for _, pair := range pairs {
		req, err = sjson.SetBytes(req, pair[0], pair[1])

		if err != nil {
			return nil, err
		}
	}

	return req, nil
}

func parseFindings(raw []byte) ([]Finding, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%s verify: output is not valid json", ModuleName)
	}

	results := gjson.ParseBytes(raw)

	if !results.IsArray() {
		return nil, fmt.Errorf("%s verify: expected a result list, got %s", ModuleName, results.Type)
	}

	findings := make([]Finding, 0)

	for _, item := range results.Array() {
		findings = append(findings, Finding{
			Rule:     item.Get("rule").String(),
			Severity: int(item.Get("severity").Int()),
			ModuleID: item.Get("moduleId").String(),
			Message:  item.Get("message").String(),
			Line:     int(item.Get("line").Int()),
			Column:   int(item.Get("column").Int()),
		})
	}

	return findings, nil
}
