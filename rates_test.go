package folio

import "testing"

func TestConvert(t *testing.T) {
	rates := usdRates()

	tests := []struct {
		name string
		in   Money
		to   string
		want Money
	}{
		{"same currency", USD(100), "USD", USD(100)},
		{"base to quote", USD(100), "EUR", EUR(85)},
		{"quote to base", EUR(85), "USD", USD(100)},
		{"cross via base", EUR(85), "GBP", M(75, "GBP")},
		{"zero amount", USD(0), "EUR", EUR(0)},
	}
	for _, tt := range tests {
		got := rates.Convert(tt.in, tt.to)
		if !got.Equal(tt.want) {
			t.Errorf("%s: Convert(%v, %q) = %v, want %v", tt.name, tt.in, tt.to, got, tt.want)
		}
	}
}

func TestConvertFailsOpen(t *testing.T) {
	zeroRate := usdRates()
	zeroRate.Rates["EUR"] = dec(0)

	tests := []struct {
		name  string
		rates RateTable
		in    Money
		to    string
		want  Money
	}{
		{"empty table", RateTable{}, EUR(100), "USD", USD(100)},
		{"missing target", usdRates(), USD(100), "JPY", M(100, "JPY")},
		{"missing source", usdRates(), M(100, "JPY"), "USD", USD(100)},
		{"missing cross leg", usdRates(), M(100, "JPY"), "EUR", EUR(100)},
		{"zero rate", zeroRate, EUR(100), "USD", USD(100)},
	}
	for _, tt := range tests {
		got := tt.rates.Convert(tt.in, tt.to)
		if !got.Equal(tt.want) {
			t.Errorf("%s: Convert(%v, %q) = %v, want %v", tt.name, tt.in, tt.to, got, tt.want)
		}
	}
}

func TestConvertCaseInsensitive(t *testing.T) {
	rates := usdRates()
	got := rates.Convert(M(100, "usd"), "eur")
	if !got.Amount().Equal(dec(85)) || got.Currency() != "eur" {
		t.Errorf("Convert(usd, eur) = %v, want 85 eur", got)
	}
}
