package denomination

import "github.com/shopspring/decimal"

// AUD is the Australian note and coin series, largest first.
var AUD = MustNewRegistry(
	Descriptor{ID: "100", Label: "$100", Value: decimal.NewFromInt(100), Kind: Note},
	Descriptor{ID: "50", Label: "$50", Value: decimal.NewFromInt(50), Kind: Note},
	Descriptor{ID: "20", Label: "$20", Value: decimal.NewFromInt(20), Kind: Note},
	Descriptor{ID: "10", Label: "$10", Value: decimal.NewFromInt(10), Kind: Note},
	Descriptor{ID: "5", Label: "$5", Value: decimal.NewFromInt(5), Kind: Note},
	Descriptor{ID: "2", Label: "$2", Value: decimal.NewFromInt(2), Kind: Coin},
	Descriptor{ID: "1", Label: "$1", Value: decimal.NewFromInt(1), Kind: Coin},
	Descriptor{ID: "50c", Label: "50¢", Value: decimal.New(50, -2), Kind: Coin},
	Descriptor{ID: "20c", Label: "20¢", Value: decimal.New(20, -2), Kind: Coin},
	Descriptor{ID: "10c", Label: "10¢", Value: decimal.New(10, -2), Kind: Coin},
	Descriptor{ID: "5c", Label: "5¢", Value: decimal.New(5, -2), Kind: Coin},
)
