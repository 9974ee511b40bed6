// Package report turns the state of a cash count into a printable document.
//
// Generate is a pure transform: it reads the registry, ledger and totals,
// and returns the document bytes together with a suggested filename. Saving
// or downloading the document is left to the host.
//
// Only denominations with a non-zero count are listed, in registry order.
// The summary repeats the totals engine's figures: grand total with the
// item count, the float shown as a deduction, and the net amount with its
// sign.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/cashcount/currency"
	"github.com/robinvdvleuten/cashcount/denomination"
	"github.com/robinvdvleuten/cashcount/ledger"
)

const (
	// DefaultTitle heads every report.
	DefaultTitle = "CASH COUNT"

	// DefaultFooter closes every report.
	DefaultFooter = "Generated by AUD Cash Counter"

	filenamePrefix = "Cash_Count_"
)

// Format selects the document layout.
type Format int

const (
	FormatHTML Format = iota
	FormatText
)

// ParseFormat maps "html" or "text" (also "txt") onto a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "html":
		return FormatHTML, nil
	case "text", "txt":
		return FormatText, nil
	default:
		return 0, fmt.Errorf("unknown report format %q, expected html or text", s)
	}
}

func (f Format) String() string {
	if f == FormatText {
		return "text"
	}
	return "html"
}

// Extension returns the filename extension including the dot.
func (f Format) Extension() string {
	if f == FormatText {
		return ".txt"
	}
	return ".html"
}

// ContentType returns the MIME type of documents in this format.
func (f Format) ContentType() string {
	if f == FormatText {
		return "text/plain; charset=utf-8"
	}
	return "text/html; charset=utf-8"
}

// Report is a rendered document.
type Report struct {
	Document    []byte
	Filename    string
	ContentType string
}

type options struct {
	format Format
	footer string
}

// Option configures Generate.
type Option func(*options)

// WithFormat selects the document layout. The default is HTML.
func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithFooter replaces the footer line.
func WithFooter(footer string) Option {
	return func(o *options) {
		o.footer = footer
	}
}

// Status classifies the net amount.
type Status string

const (
	StatusShort    Status = "SHORT"
	StatusBalanced Status = "BALANCED"
	StatusOver     Status = "OVER"
)

func statusOf(net decimal.Decimal) Status {
	switch net.Sign() {
	case -1:
		return StatusShort
	case 0:
		return StatusBalanced
	default:
		return StatusOver
	}
}

// line is one counted denomination.
type line struct {
	Label    string
	Quantity int
	Total    string
}

// document is the layout-independent content of a report.
type document struct {
	Title      string
	Date       string
	Time       string
	Lines      []line
	TotalItems int
	GrandTotal string
	Float      string
	Net        string
	Negative   bool
	Status     Status
	Footer     string
}

// ItemsLabel reads "1 item" or "N items".
func (d document) ItemsLabel() string {
	if d.TotalItems == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", d.TotalItems)
}

// Generate renders the ledger as a document stamped with timestamp.
func Generate(
	registry *denomination.Registry,
	l *ledger.Ledger,
	totals ledger.Totals,
	timestamp time.Time,
	formatCurrency currency.Formatter,
	opts ...Option,
) (*Report, error) {
	o := options{format: FormatHTML, footer: DefaultFooter}
	for _, opt := range opts {
		opt(&o)
	}

	doc := document{
		Title:      DefaultTitle,
		Date:       timestamp.Format("02 Jan 2006"),
		Time:       timestamp.Format("03:04 pm"),
		TotalItems: totals.TotalItems,
		GrandTotal: formatCurrency(totals.GrandTotal),
		Float:      formatCurrency(totals.Float),
		Net:        formatCurrency.Abs(totals.NetAmount),
		Negative:   totals.NetAmount.IsNegative(),
		Status:     statusOf(totals.NetAmount),
		Footer:     o.footer,
	}
	if doc.Negative {
		doc.Net = "-" + doc.Net
	}

	for _, d := range registry.List() {
		n := l.Get(d.ID)
		if n <= 0 {
			continue
		}
		doc.Lines = append(doc.Lines, line{
			Label:    d.Label,
			Quantity: n,
			Total:    formatCurrency(ledger.LineTotal(d, n)),
		})
	}

	var (
		body []byte
		err  error
	)
	switch o.format {
	case FormatText:
		body = renderText(doc)
	default:
		body, err = renderHTML(doc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	return &Report{
		Document:    body,
		Filename:    Filename(timestamp, o.format),
		ContentType: o.format.ContentType(),
	}, nil
}

// Filename derives the suggested filename from the UTC date of timestamp,
// e.g. Cash_Count_2024-03-09.html.
func Filename(timestamp time.Time, f Format) string {
	return filenamePrefix + timestamp.UTC().Format("2006-01-02") + f.Extension()
}
