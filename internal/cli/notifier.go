package cli

import (
	"context"
	"fmt"
	"io"
)

// TerminalNotifier renders notifications as a highlighted line on the
// terminal. Fire-and-forget; write errors are ignored.
type TerminalNotifier struct {
	w io.Writer
}

func NewTerminalNotifier(w io.Writer) *TerminalNotifier {
	return &TerminalNotifier{w: w}
}

func (n *TerminalNotifier) Notify(_ context.Context, title, body string) {
	fmt.Fprintf(n.w, "\n[%s] %s\n", title, body)
}
