package report

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	textWidth    = 44
	labelColumn  = 16
	qtyColumn    = 8
	totalColumn  = textWidth - labelColumn - qtyColumn
	summaryLabel = 28
)

func renderText(doc document) []byte {
	var buf bytes.Buffer

	writeCentered(&buf, doc.Title)
	writeCentered(&buf, doc.Date+" at "+doc.Time)
	buf.WriteByte('\n')

	writeColumns(&buf, "Denomination", "Qty", "Total")
	buf.WriteString(strings.Repeat("-", textWidth))
	buf.WriteByte('\n')
	for _, l := range doc.Lines {
		writeColumns(&buf, l.Label, strconv.Itoa(l.Quantity), l.Total)
	}
	buf.WriteString(strings.Repeat("=", textWidth))
	buf.WriteByte('\n')

	writeSummary(&buf, "Grand Total ("+doc.ItemsLabel()+")", doc.GrandTotal)
	writeSummary(&buf, "Float Deduction", "- "+doc.Float)
	writeSummary(&buf, "Net Amount", doc.Net)
	writeSummary(&buf, "Status", string(doc.Status))

	if doc.Footer != "" {
		buf.WriteByte('\n')
		writeCentered(&buf, doc.Footer)
	}

	return buf.Bytes()
}

func writeCentered(buf *bytes.Buffer, s string) {
	if pad := (textWidth - runewidth.StringWidth(s)) / 2; pad > 0 {
		buf.WriteString(strings.Repeat(" ", pad))
	}
	buf.WriteString(s)
	buf.WriteByte('\n')
}

func writeColumns(buf *bytes.Buffer, label, qty, total string) {
	buf.WriteString(runewidth.FillRight(label, labelColumn))
	buf.WriteString(runewidth.FillLeft(qty, qtyColumn))
	buf.WriteString(runewidth.FillLeft(total, totalColumn))
	buf.WriteByte('\n')
}

func writeSummary(buf *bytes.Buffer, label, value string) {
	buf.WriteString(runewidth.FillRight(label, summaryLabel))
	buf.WriteString(runewidth.FillLeft(value, textWidth-summaryLabel))
	buf.WriteByte('\n')
}
