package linter

import (
	"testing"

	"github.com/tidwall/gjson"
)

func TestBuildRequest(t *testing.T) {
	req, err := buildRequest("/ws/node_modules/ember-template-lint", "/ws/.template-lintrc.js", "<div>{{foo}}</div>", "app/components/foo")

	if err != nil {
		t.Fatalf("buildRequest: %v", err)
	}

	list := []struct {
		Path   string
		Expect string
	}{
		{"modulePath", "/ws/node_modules/ember-template-lint"},
		{"configPath", "/ws/.template-lintrc.js"},
		{"source", "<div>{{foo}}</div>"},
		{"moduleId", "app/components/foo"},
	}

	for _, item := range list {
		value := gjson.GetBytes(req, item.Path).String()

		if value != item.Expect {
			t.Errorf("%s got: %s; expect: %s", item.Path, value, item.Expect)
		}
	}
}

func TestParseFindings(t *testing.T) {
	raw := []byte(`[
		{"rule":"no-bare-strings","severity":2,"moduleId":"app/templates/index","message":"Non-translated string used","line":3,"column":4},
		{"rule":"no-invalid-interactive","severity":1,"moduleId":"app/templates/index","message":"bad attr","line":5,"column":3}
	]`)

	findings, err := parseFindings(raw)

	if err != nil {
		t.Fatalf("parseFindings: %v", err)
	}

	if len(findings) != 2 {
		t.Fatalf("len got: %d; expect: 2", len(findings))
	}

	second := findings[1]

	if second.Rule != "no-invalid-interactive" {
		t.Errorf("Rule got: %s", second.Rule)
	}

	if second.Message != "bad attr" {
		t.Errorf("Message got: %s", second.Message)
	}

	if second.Line != 5 || second.Column != 3 {
		t.Errorf("position got: %d:%d; expect: 5:3", second.Line, second.Column)
	}

	if second.Severity != 1 {
		t.Errorf("Severity got: %d; expect: 1", second.Severity)
	}
}

func TestParseFindingsEmpty(t *testing.T) {
	findings, err := parseFindings([]byte(`[]`))

	if err != nil {
		t.Fatalf("parseFindings: %v", err)
	}

	if len(findings) != 0 {
		t.Errorf("len got: %d; expect: 0", len(findings))
	}
}

func TestParseFindingsInvalid(t *testing.T) {
	list := []string{
		`not json`,
		`{"results": []}`,
		`"text"`,
	}

	for _, raw := range list {
		_, err := parseFindings([]byte(raw))

		if err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}
