package log

// Transporter is a destination for log entries. The Logger calls Write
// synchronously from the logging goroutine, so implementations shared by
// goroutines must serialize their own output.
type Transporter interface {
	Name() string
	Write(entry Entry) error
	// Close flushes and releases the destination. Write must not be called after.
	Close() error
}
