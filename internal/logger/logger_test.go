package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false after SetVerbose(false)")
	}
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("test message %s", "arg")

	if got := buf.String(); got != "[DEBUG] test message arg\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("should not appear")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestSection(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Import")

	if got := buf.String(); !strings.Contains(got, "=== Import ===") {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestDump(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Dump("State", map[string]any{
		"name":    "survey",
		"rows":    42,
		"columns": []string{"a", "b"},
	})

	got := buf.String()
	for _, want := range []string{
		"[DEBUG] State:",
		`name = "survey"`,
		"rows = 42",
		"columns = [a b]",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestDump_SummarisesLargeCollections(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	many := make([]string, 25)
	Dump("State", map[string]any{"items": many})

	if got := buf.String(); !strings.Contains(got, "[25 items]") {
		t.Errorf("expected summarised slice, got %q", got)
	}
}

func TestDump_WhenNotVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	Dump("State", map[string]any{"rows": 1})

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
