package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Item struct {
	ShortDescription string
	Price            decimal.Decimal
}

// Receipt is a submitted receipt that passed validation.
type Receipt struct {
	Retailer     string
	PurchaseDate time.Time
	PurchaseTime time.Time
	Items        []Item
	Total        decimal.Decimal
}

// ItemInput and ReceiptInput mirror the request body. Pointers tell a missing
// field apart from an empty one.
type ItemInput struct {
	ShortDescription *string `json:"shortDescription"`
	Price            *string `json:"price"`
}

type ReceiptInput struct {
	Retailer     *string      `json:"retailer"`
	PurchaseDate *string      `json:"purchaseDate"`
	PurchaseTime *string      `json:"purchaseTime"`
	Items        []*ItemInput `json:"items"`
	Total        *string      `json:"total"`
}

type ProcessOutput struct {
	ID string `json:"id"`
}

type PointsOutput struct {
	Points int `json:"points"`
}

type ErrorOutput struct {
	Detail string `json:"detail"`
}
