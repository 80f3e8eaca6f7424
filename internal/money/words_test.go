package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Zero Only"},
		{1, "One Only"},
		{19, "Nineteen Only"},
		{20, "Twenty Only"},
		{45, "Forty Five Only"},
		{100, "One Hundred Only"},
		{118, "One Hundred Eighteen Only"},
		{1000, "One Thousand Only"},
		{1180, "One Thousand One Hundred Eighty Only"},
		{100000, "One Lakh Only"},
		{1234567, "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven Only"},
		{10000000, "One Crore Only"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Only"},
		{20000000000, "Two Thousand Crore Only"},
		{25000000000, "Two Thousand Five Hundred Crore Only"},
		{123456789012, "Twelve Thousand Three Hundred Forty Five Crore Sixty Seven Lakh Eighty Nine Thousand Twelve Only"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Words(tc.in), "n=%d", tc.in)
	}
}
