package notify

import (
	"context"
	"fmt"
	"io"
	"os"
)

// StdoutNotifier writes messages to a stream, for CLI use and tests.
type StdoutNotifier struct {
	out io.Writer
}

// NewStdoutNotifier creates a notifier writing to os.Stdout.
func NewStdoutNotifier() *StdoutNotifier {
	return &StdoutNotifier{out: os.Stdout}
}

// NewWriterNotifier creates a notifier writing to the given stream.
func NewWriterNotifier(w io.Writer) *StdoutNotifier {
	return &StdoutNotifier{out: w}
}

func (s *StdoutNotifier) Channel() Channel { return ChannelStdout }

// Send prints the message title and body.
func (s *StdoutNotifier) Send(_ context.Context, msg Message) error {
	_, err := fmt.Fprintf(s.out, "%s\n%s\n", msg.Title, msg.Body)
	return err
}
