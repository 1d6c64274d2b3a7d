package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	testCases := []struct {
		name    string
		price   string
		want    int64
		wantErr bool
	}{
		{name: "整數", price: "10", want: 1000},
		{name: "兩位小數", price: "10.00", want: 1000},
		{name: "一位小數", price: "5.5", want: 550},
		{name: "零", price: "0", want: 0},
		{name: "尾數零可正規化", price: "2.250", want: 225},
		{name: "超過兩位小數", price: "1.999", wantErr: true},
		{name: "負數", price: "-1.00", wantErr: true},
		{name: "非數字", price: "abc", wantErr: true},
		{name: "空字串", price: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePriceToCents(tc.price)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidPrice)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFormatCents(t *testing.T) {
	require.Equal(t, "17.75", FormatCents(1775))
	require.Equal(t, "10.00", FormatCents(1000))
	require.Equal(t, "0.05", FormatCents(5))
	require.Equal(t, "0.00", FormatCents(0))
}
