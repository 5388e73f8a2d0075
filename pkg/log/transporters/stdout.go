package transporters

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"sync"

	"tweetweb/pkg/log"
)

// Stdout writes one JSON object per line to stdout or any io.Writer.
// HTML escaping is off so URLs keep their literal '&'.
type Stdout struct {
	mu     sync.Mutex
	writer io.Writer
	buf    bytes.Buffer
	enc    *json.Encoder
}

// NewStdout creates a transporter writing to os.Stdout.
func NewStdout() *Stdout {
	return NewStdoutWithWriter(os.Stdout)
}

// NewStdoutWithWriter creates a transporter writing to w.
func NewStdoutWithWriter(w io.Writer) *Stdout {
	s := &Stdout{writer: w}
	s.enc = json.NewEncoder(&s.buf)
	s.enc.SetEscapeHTML(false)
	return s
}

func (s *Stdout) Name() string {
	return "stdout"
}

// Write encodes entry as a single line. Concurrent writes never interleave.
func (s *Stdout) Write(entry log.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf.Reset()
	// Encode appends the trailing newline
	if err := s.enc.Encode(entry); err != nil {
		return err
	}
	_, err := s.writer.Write(s.buf.Bytes())
	return err
}

// Close is a no-op; the writer is owned by the caller.
func (s *Stdout) Close() error {
	return nil
}
