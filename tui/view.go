package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/robinvdvleuten/cashcount/session"
)

const (
	labelWidth = 6
	qtyWidth   = 7
	totalWidth = 14
)

// View implements tea.Model.
func (m Model) View() string {
	snap := m.session.Snapshot()
	st := m.styles

	var b strings.Builder

	b.WriteString(st.Keyword(strings.ToUpper(m.title)))
	b.WriteString("\n\n")

	for _, row := range snap.Rows {
		label := runewidth.FillRight(row.Denomination.Label, labelWidth)
		b.WriteString(st.Denomination(label, row.Denomination.Kind, row.Active))
		b.WriteString("  ")
		b.WriteString(st.Dim("QTY "))

		qty := strconv.Itoa(row.Quantity)
		switch {
		case row.Active && snap.Buffer == "":
			b.WriteString(st.Dim(runewidth.FillLeft("0", qtyWidth-1)) + "▏")
		case row.Active:
			b.WriteString(runewidth.FillLeft(qty, qtyWidth-1) + "▏")
		case row.Quantity == 0:
			b.WriteString(st.Dim(runewidth.FillLeft(qty, qtyWidth)))
		default:
			b.WriteString(runewidth.FillLeft(qty, qtyWidth))
		}

		total := runewidth.FillLeft(m.format(row.Total), totalWidth)
		if row.Quantity == 0 {
			total = st.Dim(total)
		}
		b.WriteString(total)
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(st.Dim(itemsCounted(snap.Totals.TotalItems)))
	b.WriteString("\n\n")

	if status := m.status(snap); status != "" {
		b.WriteString(st.Keyword(status))
		b.WriteByte('\n')
	}

	net := m.format.Abs(snap.Totals.NetAmount)
	if snap.Totals.Short() {
		net = "−" + net
	}
	b.WriteString(fmt.Sprintf("TOTAL %s   FLOAT %s   NET %s\n",
		m.format(snap.Totals.GrandTotal),
		m.format(snap.Totals.Float),
		st.Net(net, snap.Totals.Short()),
	))

	if m.confirmReset {
		b.WriteByte('\n')
		b.WriteString(st.Box("Reset All Counts?\nAll quantities will be cleared. Float stays the same.\n\n[y] Reset   [n] Cancel"))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) status(snap session.Snapshot) string {
	switch snap.State {
	case session.EditingFloat:
		buffer := snap.Buffer
		if buffer == "" {
			buffer = "0"
		}
		return fmt.Sprintf("Editing Float → $%s   [enter] %s", buffer, snap.NextLabel)
	case session.EditingDenomination:
		d, _ := m.session.Registry().Lookup(snap.Target)
		return fmt.Sprintf("%s - enter quantity   [enter] %s", d.Label, snap.NextLabel)
	default:
		return ""
	}
}

func itemsCounted(n int) string {
	if n == 1 {
		return "1 ITEM COUNTED"
	}
	return fmt.Sprintf("%d ITEMS COUNTED", n)
}
