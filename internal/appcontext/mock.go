package appcontext

import (
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/marquee"
	"github.com/agentstation/marquee/pkg/constants"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding field.
// If a field is nil or zero, the method returns a default value.
type Mock struct {
	ClientFunc   func() (marquee.Client, error)
	LoggerFunc   func() *zerolog.Logger
	Format       string
	DisableColor bool
	Width        int
	Input        io.Reader
	VersionFunc  func() string
	CommitFunc   func() string
	DateFunc     func() string
	BuiltByFunc  func() string
}

// Client returns a client using the mock function or nil.
func (m *Mock) Client() (marquee.Client, error) {
	if m.ClientFunc != nil {
		return m.ClientFunc()
	}
	return nil, nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns Format or "table".
func (m *Mock) OutputFormat() string {
	if m.Format != "" {
		return m.Format
	}
	return "table"
}

// NoColor returns DisableColor.
func (m *Mock) NoColor() bool {
	return m.DisableColor
}

// HistogramWidth returns Width or the default width.
func (m *Mock) HistogramWidth() int {
	if m.Width > 0 {
		return m.Width
	}
	return constants.HistogramWidth
}

// In returns Input or an empty reader.
func (m *Mock) In() io.Reader {
	if m.Input != nil {
		return m.Input
	}
	return strings.NewReader("")
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
