package errors

import (
	"bytes"
	"encoding/json"
	stdErrors "errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/cashcount/denomination"
	"github.com/robinvdvleuten/cashcount/ledger"
)

func TestTextFormatter_Format_Plain(t *testing.T) {
	tf := NewTextFormatter()

	output := tf.Format(stdErrors.New("something went wrong"))
	assert.Equal(t, "something went wrong", output)
}

func TestTextFormatter_Format_UnknownDenominationHint(t *testing.T) {
	tf := NewTextFormatter(WithRegistry(denomination.AUD))

	output := tf.Format(&ledger.InvalidDenominationError{Denomination: "3"})
	assert.Contains(t, output, `unknown denomination "3"`)
	assert.Contains(t, output, "valid denominations: 100, 50, 20")
}

func TestTextFormatter_Format_KnownDenominationNoHint(t *testing.T) {
	tf := NewTextFormatter(WithRegistry(denomination.AUD))

	output := tf.Format(&ledger.InvalidCountError{Denomination: "20", Value: -4})
	assert.NotContains(t, output, "valid denominations")
}

func TestTextFormatter_FormatAll(t *testing.T) {
	tf := NewTextFormatter()

	assert.Equal(t, "", tf.FormatAll(nil))

	output := tf.FormatAll([]error{
		stdErrors.New("first"),
		stdErrors.New("second"),
	})
	assert.Equal(t, "first\n\nsecond", output)
}

func TestJSONFormatter_ToJSON(t *testing.T) {
	jf := NewJSONFormatter()

	got := jf.ToJSON(&ledger.InvalidFloatError{Value: decimal.NewFromInt(-20)})
	assert.Equal(t, "*ledger.InvalidFloatError", got.Type)
	assert.Equal(t, "invalid float -20: must not be negative", got.Message)
	assert.Equal(t, map[string]string{"value": "-20"}, got.Details)
}

func TestJSONFormatter_ToJSONDetails(t *testing.T) {
	jf := NewJSONFormatter()

	assert.Equal(t, map[string]string{"denomination": "3"}, jf.ToJSON(&ledger.InvalidDenominationError{Denomination: "3"}).Details)
	assert.Equal(t, map[string]string(nil), jf.ToJSON(stdErrors.New("plain")).Details)

	var body bytes.Buffer
	assert.NoError(t, json.NewEncoder(&body).Encode(jf.ToJSON(stdErrors.New("plain"))))
	assert.NotContains(t, body.String(), "details")
}
