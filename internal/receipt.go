package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"github.com/DrGermanius/ReceiptProcessor/internal/model"
)

const (
	purchaseDateLayout = "2006-01-02"
	purchaseTimeLayout = "15:04"
)

var (
	// Word characters and whitespace in the Unicode sense.
	namePattern = regexp.MustCompile(`^[\p{L}\p{M}\p{Nd}\p{Nl}\p{Pc}\p{Z}\t\n\v\f\r\x{85}\-&]+$`)

	// At most 12 integer digits keeps every points sum far inside int.
	moneyPattern = regexp.MustCompile(`^[0-9]{1,12}\.[0-9]{2}$`)
)

// ParseReceipt decodes a request body and validates it. Every failure wraps
// ErrReceiptInvalid.
func ParseReceipt(body []byte) (model.Receipt, error) {
	var i model.ReceiptInput
	if err := json.Unmarshal(body, &i); err != nil {
		return model.Receipt{}, invalid("decode body: %s", err)
	}

	return ValidateReceipt(i)
}

func ValidateReceipt(i model.ReceiptInput) (model.Receipt, error) {
	var r model.Receipt

	if i.Retailer == nil || !namePattern.MatchString(*i.Retailer) {
		return model.Receipt{}, invalid("retailer")
	}
	r.Retailer = *i.Retailer

	if i.PurchaseDate == nil {
		return model.Receipt{}, invalid("purchaseDate is missing")
	}
	d, err := time.Parse(purchaseDateLayout, *i.PurchaseDate)
	if err != nil {
		return model.Receipt{}, invalid("purchaseDate: %s", err)
	}
	r.PurchaseDate = d

	if i.PurchaseTime == nil {
		return model.Receipt{}, invalid("purchaseTime is missing")
	}
	t, err := time.Parse(purchaseTimeLayout, *i.PurchaseTime)
	if err != nil {
		return model.Receipt{}, invalid("purchaseTime: %s", err)
	}
	r.PurchaseTime = t

	if len(i.Items) == 0 {
		return model.Receipt{}, invalid("no items")
	}

	sum := decimal.Zero
	r.Items = make([]model.Item, 0, len(i.Items))
	for n, item := range i.Items {
		if item == nil || item.ShortDescription == nil || !namePattern.MatchString(*item.ShortDescription) {
			return model.Receipt{}, invalid("items[%d].shortDescription", n)
		}

		price, err := parseMoney(item.Price)
		if err != nil {
			return model.Receipt{}, invalid("items[%d].price: %s", n, err)
		}

		sum = sum.Add(price)
		r.Items = append(r.Items, model.Item{ShortDescription: *item.ShortDescription, Price: price})
	}

	total, err := parseMoney(i.Total)
	if err != nil {
		return model.Receipt{}, invalid("total: %s", err)
	}
	if !total.Equal(sum) {
		return model.Receipt{}, invalid("total %s does not match items sum %s", total, sum)
	}
	r.Total = total

	return r, nil
}

func parseMoney(s *string) (decimal.Decimal, error) {
	if s == nil {
		return decimal.Decimal{}, errors.New("missing")
	}
	if !moneyPattern.MatchString(*s) {
		return decimal.Decimal{}, fmt.Errorf("%q is not a 2-decimal amount", *s)
	}
	return decimal.NewFromString(*s)
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrReceiptInvalid}, args...)...)
}
