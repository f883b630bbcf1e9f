package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		amount float64
		want   string
	}{
		{name: "grouped thousands", symbol: "Rp", amount: 1500000, want: "Rp1.500.000"},
		{name: "small amount", symbol: "Rp", amount: 50, want: "Rp50"},
		{name: "decimal comma", symbol: "$", amount: 1234.5, want: "$1.234,5"},
		{name: "negative keeps sign", symbol: "Rp", amount: -50, want: "Rp-50"},
		{name: "zero", symbol: "Rp", amount: 0, want: "Rp0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.symbol, tt.amount))
		})
	}
}
