package models

import "github.com/shopspring/decimal"

// The API contract serializes monetary values as JSON numbers, matching
// the wire format consumers already parse.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
