package log

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestPrintfSuppressedWhenQuiet(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false, true)
	l.Printf("hello %s\n", "world")
	l.Println("more")
	if buf.Len() != 0 {
		t.Errorf("quiet logger wrote %q", buf.String())
	}
}

func TestCommandOnlyWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false, false)
	l.Command("git", "-C", "/tmp", "status")
	if buf.Len() != 0 {
		t.Errorf("non-verbose logger echoed command: %q", buf.String())
	}

	l = New(&buf, true, false)
	l.Command("git", "-C", "/tmp", "status")
	if got := buf.String(); !strings.HasPrefix(got, "$ git -C /tmp status") {
		t.Errorf("verbose echo = %q", got)
	}
}

func TestFromContextFallsBackToNoop(t *testing.T) {
	l := FromContext(context.Background())
	// Must not panic and must swallow output.
	l.Printf("dropped %d\n", 1)
	l.Command("git", "status")
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true, false)
	ctx := WithLogger(context.Background(), l)
	if FromContext(ctx) != l {
		t.Error("logger lost in context round trip")
	}
}
