package format

import "testing"

func TestIndianCurrencyScaling(t *testing.T) {
	cases := map[float64]string{
		0:        "₹0",
		999:      "₹999",
		1000:     "₹1K",
		23500:    "₹24K", // K 档取整
		100000:   "₹1.00L",
		1550000:  "₹15.50L",
		10000000: "₹1.00Cr",
		25000000: "₹2.50Cr",
	}
	for num, want := range cases {
		if got := IndianCurrency(num); got != want {
			t.Fatalf("IndianCurrency(%v): expected %s, got %s", num, want, got)
		}
	}
}

func TestIndianCurrencyNegative(t *testing.T) {
	if got := IndianCurrency(-150000); got != "-₹1.50L" {
		t.Fatalf("expected -₹1.50L, got %s", got)
	}
}

func TestIndianNumberHasNoCurrencySymbol(t *testing.T) {
	if got := IndianNumber(1550000); got != "15.50L" {
		t.Fatalf("expected 15.50L, got %s", got)
	}
	if got := IndianNumber(42); got != "42" {
		t.Fatalf("expected 42, got %s", got)
	}
}

func TestCurrencyIndianGrouping(t *testing.T) {
	cases := map[float64]string{
		999:      "₹999",
		1000:     "₹1,000",
		100000:   "₹1,00,000",
		1234567:  "₹12,34,567",
		12345678: "₹1,23,45,678",
	}
	for num, want := range cases {
		if got := Currency(num); got != want {
			t.Fatalf("Currency(%v): expected %s, got %s", num, want, got)
		}
	}
}
