package validators

import (
	"testing"
)

func TestCoerceQuantity(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want int
	}{
		{"plain int", 4, 4},
		{"json float", float64(3), 3},
		{"numeric string", "7", 7},
		{"zero defaults to one", 0, 1},
		{"negative defaults to one", -2, 1},
		{"garbage defaults to one", "lots", 1},
		{"nil defaults to one", nil, 1},
	}
	for _, tc := range cases {
		if got := CoerceQuantity(tc.raw); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}
