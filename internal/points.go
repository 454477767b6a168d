package internal

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/DrGermanius/ReceiptProcessor/internal/model"
)

const (
	roundTotalPoints   = 50
	quarterTotalPoints = 25
	itemPairPoints     = 5
	oddDayPoints       = 6
	afternoonPoints    = 10

	afternoonStart = 14 * 60
	afternoonEnd   = 16 * 60
)

var (
	quarter         = decimal.New(25, -2)
	descriptionRate = decimal.New(2, -1)
)

// CalculatePoints scores a validated receipt. Rules are independent and additive.
func CalculatePoints(r model.Receipt) int {
	points := retailerPoints(r.Retailer)
	points += totalPoints(r.Total)
	points += itemCountPoints(len(r.Items))
	for _, item := range r.Items {
		points += descriptionPoints(item)
	}
	points += purchaseDatePoints(r)
	points += purchaseTimePoints(r)

	return points
}

func retailerPoints(retailer string) int {
	n := 0
	for _, c := range retailer {
		if unicode.IsLetter(c) || unicode.IsNumber(c) {
			n++
		}
	}
	return n
}

func totalPoints(total decimal.Decimal) int {
	points := 0
	if total.Equal(total.Truncate(0)) {
		points += roundTotalPoints
	}
	if total.Mod(quarter).IsZero() {
		points += quarterTotalPoints
	}
	return points
}

func itemCountPoints(count int) int {
	return count / 2 * itemPairPoints
}

func descriptionPoints(item model.Item) int {
	if utf8.RuneCountInString(strings.TrimSpace(item.ShortDescription))%3 != 0 {
		return 0
	}
	return int(item.Price.Mul(descriptionRate).Ceil().IntPart())
}

func purchaseDatePoints(r model.Receipt) int {
	if r.PurchaseDate.Day()%2 == 1 {
		return oddDayPoints
	}
	return 0
}

// 14:00 and 16:00 both count.
func purchaseTimePoints(r model.Receipt) int {
	m := r.PurchaseTime.Hour()*60 + r.PurchaseTime.Minute()
	if m >= afternoonStart && m <= afternoonEnd {
		return afternoonPoints
	}
	return 0
}
