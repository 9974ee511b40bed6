package errors_test

import (
	"encoding/json"
	"fmt"

	"github.com/robinvdvleuten/cashcount/denomination"
	"github.com/robinvdvleuten/cashcount/errors"
	"github.com/robinvdvleuten/cashcount/ledger"
)

// Example showing how to use TextFormatter for CLI output
func ExampleTextFormatter() {
	err := &ledger.InvalidDenominationError{Denomination: "3"}

	formatter := errors.NewTextFormatter(errors.WithRegistry(denomination.AUD))
	fmt.Println(formatter.Format(err))
	// Output:
	// unknown denomination "3"
	//
	//    valid denominations: 100, 50, 20, 10, 5, 2, 1, 50c, 20c, 10c, 5c
}

// Example showing how to use JSONFormatter for API output
func ExampleJSONFormatter() {
	err := &ledger.InvalidCountError{Denomination: "20", Value: -1}

	formatter := errors.NewJSONFormatter()
	data, _ := json.Marshal(formatter.ToJSON(err))
	fmt.Println(string(data))
	// Output:
	// {"type":"*ledger.InvalidCountError","message":"invalid count -1 for denomination \"20\": must not be negative","details":{"denomination":"20","value":"-1"}}
}
