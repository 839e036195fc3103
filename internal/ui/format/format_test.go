package format

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"int", Int(3090), "3,090"},
		{"int rounds", Int(849.6), "850"},
		{"decimal", Decimal(1234.5, 1), "1,234.5"},
		{"tons", Tons(850), "850,000 t"},
		{"millions", Millions(4.2), "4.2M"},
		{"usd", USD(8000), "$8,000"},
		{"percent", Percent(0.068), "6.8%"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}
