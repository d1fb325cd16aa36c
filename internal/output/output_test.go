package output

import (
	"bytes"
	"context"
	"testing"
)

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithPrinter(context.Background(), &buf)

	p := FromContext(ctx)
	p.Printf("view %s\n", "fix-auth")
	p.Println("done")

	if got := buf.String(); got != "view fix-auth\ndone\n" {
		t.Errorf("output = %q", got)
	}
}

func TestFromContextDefaultsToStdout(t *testing.T) {
	p := FromContext(context.Background())
	if p.Writer() == nil {
		t.Fatal("default printer has no writer")
	}
}
