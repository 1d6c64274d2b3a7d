package util

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidPrice = errors.New("price must be a non-negative number with at most 2 decimal places")

/*
金額一律以最小幣值單位(分)的int64儲存與計算
decimal只用於API邊界的字串轉換, 內部不做浮點運算
*/

// ParsePriceToCents 將 "10.00" 這類十進位字串轉為分
// 超過2位小數或負數視為無效
func ParsePriceToCents(price string) (int64, error) {
	d, err := decimal.NewFromString(price)
	if err != nil {
		return 0, ErrInvalidPrice
	}
	if d.IsNegative() {
		return 0, ErrInvalidPrice
	}
	if d.Exponent() < -2 {
		// 重新正規化後再檢查一次, "1.50" exponent為-2, "1.500"為-3但值相同
		if !d.Equal(d.Round(2)) {
			return 0, ErrInvalidPrice
		}
	}
	return d.Mul(decimal.NewFromInt(100)).IntPart(), nil
}

// FormatCents 將分轉為十進位字串, ex: 1775 -> "17.75"
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
