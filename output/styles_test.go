package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/robinvdvleuten/cashcount/denomination"
)

func TestNewStyles(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	if styles == nil {
		t.Fatal("NewStyles should return non-nil Styles")
	}
}

func TestStylesDenomination(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	t.Run("Note", func(t *testing.T) {
		result := styles.Denomination("$100", denomination.Note, false)
		if !strings.Contains(result, "$100") {
			t.Errorf("Denomination() result should contain label, got: %s", result)
		}
	})

	t.Run("ActiveCoin", func(t *testing.T) {
		result := styles.Denomination("50¢", denomination.Coin, true)
		if !strings.Contains(result, "50¢") {
			t.Errorf("Denomination() result should contain label, got: %s", result)
		}
	})
}

func TestStylesNet(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	if result := styles.Net("-$98.50", true); !strings.Contains(result, "-$98.50") {
		t.Errorf("Net() result should contain amount, got: %s", result)
	}
	if result := styles.Net("$1.00", false); !strings.Contains(result, "$1.00") {
		t.Errorf("Net() result should contain amount, got: %s", result)
	}
}

func TestStylesText(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	for name, fn := range map[string]func(string) string{
		"Keyword":  styles.Keyword,
		"Dim":      styles.Dim,
		"FilePath": styles.FilePath,
		"Box":      styles.Box,
	} {
		t.Run(name, func(t *testing.T) {
			if result := fn("some text"); !strings.Contains(result, "some text") {
				t.Errorf("%s() result should contain text, got: %s", name, result)
			}
		})
	}
}
