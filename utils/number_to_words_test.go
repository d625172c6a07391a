package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, ""},
		{7, "Seven"},
		{40, "Forty"},
		{99, "Ninety Nine"},
		{100, "One Hundred"},
		{105, "One Hundred Five"},
		{1000, "One Thousand"},
		{12345, "Twelve Thousand Three Hundred Forty Five"},
		{100000, "One Lakh"},
		{250075, "Two Lakh Fifty Thousand Seventy Five"},
		{10000000, "One Crore"},
		{12000001, "One Crore Twenty Lakh One"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NumberToWords(tt.in), "%d", tt.in)
	}
}

func TestNumberToCurrencyWords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "Zero Rupees Only"},
		{"40", "Forty Rupees Only"},
		{"1250.50", "One Thousand Two Hundred Fifty Rupees and Fifty Paise Only"},
		{"0.05", "Five Paise Only"},
		{"10.999", "Eleven Rupees Only"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NumberToCurrencyWords(decimal.RequireFromString(tt.in)), tt.in)
	}
}
