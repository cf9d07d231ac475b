package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		num  int
		want string
	}{
		{0, ""},
		{7, "Seven"},
		{19, "Nineteen"},
		{42, "Forty Two"},
		{100, "One Hundred"},
		{215, "Two Hundred Fifteen"},
		{1000, "One Thousand"},
		{2150, "Two Thousand One Hundred Fifty"},
		{100000, "One Lakh"},
		{250430, "Two Lakh Fifty Thousand Four Hundred Thirty"},
		{10000000, "One Crore"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NumberToWords(tt.num), "num=%d", tt.num)
	}
}

func TestNumberToCurrencyWords(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Zero Rupees Only"},
		{90, "Ninety Rupees Only"},
		{1250.50, "One Thousand Two Hundred Fifty Rupees and Fifty Paise Only"},
		{0.75, "Seventy Five Paise Only"},
		{-120, "One Hundred Twenty Rupees Only"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NumberToCurrencyWords(tt.amount), "amount=%v", tt.amount)
	}
}
