package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeDump(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const buttonDump = `DocumentStart
ElementStart	type=Button
Property	attr=Content	value=OK
DocumentEnd
`

func TestTreeCmd(t *testing.T) {
	path := writeDump(t, "button.records", buttonDump)

	out, err := run(t, newTreeCmd(), path)
	if err != nil {
		t.Fatalf("tree: %v", err)
	}
	if !strings.Contains(out, `#1 ElementStart(type="Button") → (omitted)`) {
		t.Errorf("unexpected output:\n%s", out)
	}

	out, err = run(t, newTreeCmd(), "--format", "json", path)
	if err != nil {
		t.Fatalf("tree --format json: %v", err)
	}
	if !strings.Contains(out, `"type": "DocumentEnd"`) {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestTreeCmdErrors(t *testing.T) {
	bad := writeDump(t, "bad.records", "DocumentStart\nElementStart\n")
	if _, err := run(t, newTreeCmd(), bad); err == nil || !strings.Contains(err.Error(), "unterminated document") {
		t.Errorf("tree on unterminated dump: err = %v", err)
	}

	good := writeDump(t, "good.records", buttonDump)
	if _, err := run(t, newTreeCmd(), "--format", "xml", good); err == nil {
		t.Error("tree --format xml should fail")
	}
	if _, err := run(t, newTreeCmd(), "--input", "yaml", good); err == nil {
		t.Error("tree --input yaml should fail")
	}
}

func TestStatsCmd(t *testing.T) {
	path := writeDump(t, "button.records", buttonDump)
	out, err := run(t, newStatsCmd(), path)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	for _, want := range []string{"elements\t2\n", "records\t4\n", "unterminated\t1\n", "type\tProperty\t1\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q:\n%s", want, out)
		}
	}
}

func TestCheckCmd(t *testing.T) {
	good := writeDump(t, "good.records", buttonDump)
	out, err := run(t, newCheckCmd(), good)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "[OK] "+good) {
		t.Errorf("unexpected output:\n%s", out)
	}

	bad := writeDump(t, "bad.records", "ElementEnd\n")
	out, err = run(t, newCheckCmd(), good, bad)
	if err == nil {
		t.Fatal("check with a bad dump should fail")
	}
	if !strings.Contains(out, "[failed] "+bad) {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestConvertCmd(t *testing.T) {
	in := writeDump(t, "button.records", buttonDump)
	out := filepath.Join(t.TempDir(), "button.json")

	if _, err := run(t, newConvertCmd(), in, out); err != nil {
		t.Fatalf("convert: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"type": "ElementStart"`) {
		t.Errorf("unexpected JSON:\n%s", data)
	}

	text, err := run(t, newTreeCmd(), out)
	if err != nil {
		t.Fatalf("tree on converted dump: %v", err)
	}
	if !strings.Contains(text, "(omitted)") {
		t.Errorf("unexpected output:\n%s", text)
	}
}
