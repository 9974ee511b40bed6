// Package errors provides error formatting infrastructure for cash count errors.
// It separates error formatting from domain logic, allowing errors to be rendered in
// multiple formats (text, JSON) for different consumers (CLI, HTTP API).
//
// It provides two formatters:
//   - TextFormatter: Formats errors for command-line output, with hints
//   - JSONFormatter: Formats errors as structured JSON for the HTTP API
//
// Domain-specific error types remain in their respective packages (e.g., ledger),
// while this package handles the presentation layer.
package errors

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/robinvdvleuten/cashcount/denomination"
)

// TextFormatter formats errors for command-line output.
type TextFormatter struct {
	registry *denomination.Registry
}

// TextFormatterOption is an option for configuring TextFormatter.
type TextFormatterOption func(*TextFormatter)

// WithRegistry lets the formatter list the valid denominations when an
// error names an unknown one.
func WithRegistry(registry *denomination.Registry) TextFormatterOption {
	return func(tf *TextFormatter) {
		tf.registry = registry
	}
}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter(opts ...TextFormatterOption) *TextFormatter {
	tf := &TextFormatter{}
	for _, opt := range opts {
		opt(tf)
	}
	return tf
}

// Format formats a single error, followed by a hint when one applies.
func (tf *TextFormatter) Format(err error) string {
	e, ok := err.(interface {
		GetDenomination() denomination.ID
		Error() string
	})
	if !ok || tf.registry == nil || tf.registry.Contains(e.GetDenomination()) {
		return err.Error()
	}

	ids := make([]string, 0, tf.registry.Len())
	for _, d := range tf.registry.List() {
		ids = append(ids, string(d.ID))
	}

	var buf bytes.Buffer
	buf.WriteString(e.Error())
	buf.WriteString("\n\n   valid denominations: ")
	buf.WriteString(strings.Join(ids, ", "))
	return buf.String()
}

// FormatAll formats multiple errors, separating them with blank lines.
func (tf *TextFormatter) FormatAll(errs []error) string {
	if len(errs) == 0 {
		return ""
	}

	var buf bytes.Buffer
	for i, err := range errs {
		buf.WriteString(tf.Format(err))

		if i < len(errs)-1 {
			buf.WriteString("\n\n")
		}
	}

	return buf.String()
}

// JSONFormatter formats errors as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// ErrorJSON represents an error in JSON format.
type ErrorJSON struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// ToJSON converts an error to ErrorJSON.
func (jf *JSONFormatter) ToJSON(err error) ErrorJSON {
	errJSON := ErrorJSON{
		Type:    fmt.Sprintf("%T", err),
		Message: err.Error(),
	}

	details := make(map[string]string)
	if e, ok := err.(interface{ GetDenomination() denomination.ID }); ok {
		details["denomination"] = string(e.GetDenomination())
	}
	if e, ok := err.(interface{ GetValue() string }); ok {
		details["value"] = e.GetValue()
	}
	if len(details) > 0 {
		errJSON.Details = details
	}

	return errJSON
}
