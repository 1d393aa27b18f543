package service

import (
	"testing"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"9876543210", "9876543210", false},
		{"+919876543210", "+919876543210", false},
		{"919876543210", "919876543210", false},
		{"98765 43210", "9876543210", false},
		{"98765-43210", "9876543210", false},
		{"(98765)43210", "9876543210", false},
		{"1234567890", "", true},  // starts with 1
		{"5876543210", "", true},  // starts with 5
		{"98765", "", true},       // too short
		{"98765432101", "", true}, // too long
		{"", "", true},
		{"abcdefghij", "", true},
	}
	for _, tt := range tests {
		got, err := ValidatePhone(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ValidatePhone(%q): expected error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ValidatePhone(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ValidatePhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name@example.com", "x+y@sub.domain.in"}
	for _, e := range valid {
		if err := ValidateEmail(e); err != nil {
			t.Errorf("ValidateEmail(%q): unexpected error: %v", e, err)
		}
	}
	invalid := []string{"", "plain", "a @b.co", "a@b", "a@.co", "@b.co"}
	for _, e := range invalid {
		if err := ValidateEmail(e); err == nil {
			t.Errorf("ValidateEmail(%q): expected error", e)
		}
	}
}

func TestValidatePinCode(t *testing.T) {
	if err := ValidatePinCode("600001"); err != nil {
		t.Errorf("unexpected error for valid PIN: %v", err)
	}
	for _, p := range []string{"", "60001", "6000011", "60000a", "600 01"} {
		if err := ValidatePinCode(p); err == nil {
			t.Errorf("ValidatePinCode(%q): expected error", p)
		}
	}
}

func TestValidateProductCode(t *testing.T) {
	if err := ValidateProductCode("PROD00001"); err != nil {
		t.Errorf("unexpected error for valid code: %v", err)
	}
	for _, c := range []string{"", "PROD1", "PROD123456", "PRD00001", "prod00001x"} {
		if err := ValidateProductCode(c); err == nil {
			t.Errorf("ValidateProductCode(%q): expected error", c)
		}
	}
}

func TestValidateOfferPrice(t *testing.T) {
	offer := 80.0
	if err := ValidateOfferPrice(100, &offer); err != nil {
		t.Errorf("offer below price should pass: %v", err)
	}

	tooHigh := 150.0
	if err := ValidateOfferPrice(100, &tooHigh); err == nil {
		t.Error("offer above price should fail")
	}

	equal := 100.0
	if err := ValidateOfferPrice(100, &equal); err == nil {
		t.Error("offer equal to price should fail")
	}

	zero := 0.0
	if err := ValidateOfferPrice(100, &zero); err == nil {
		t.Error("zero offer should fail")
	}

	if err := ValidateOfferPrice(100, nil); err != nil {
		t.Errorf("nil offer should pass: %v", err)
	}
}

func TestValidateTrendingPosition(t *testing.T) {
	pos := 1
	if err := ValidateTrendingPosition(true, &pos); err != nil {
		t.Errorf("position 1 should pass: %v", err)
	}
	pos = 100
	if err := ValidateTrendingPosition(true, &pos); err != nil {
		t.Errorf("position 100 should pass: %v", err)
	}
	pos = 0
	if err := ValidateTrendingPosition(true, &pos); err == nil {
		t.Error("position 0 should fail")
	}
	pos = 101
	if err := ValidateTrendingPosition(true, &pos); err == nil {
		t.Error("position 101 should fail")
	}
	if err := ValidateTrendingPosition(true, nil); err != nil {
		t.Errorf("trending without position should pass: %v", err)
	}
}

func TestValidateContactPerson(t *testing.T) {
	for _, name := range []string{"Ravi Kumar", "A. B. & Sons", "Jean-Pierre"} {
		if err := ValidateContactPerson(name); err != nil {
			t.Errorf("ValidateContactPerson(%q): unexpected error: %v", name, err)
		}
	}
	for _, name := range []string{"", "A", "Name123", "Bad@Name"} {
		if err := ValidateContactPerson(name); err == nil {
			t.Errorf("ValidateContactPerson(%q): expected error", name)
		}
	}
}

func TestValidateAddress(t *testing.T) {
	if err := ValidateAddress("12 Long Enough Street"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateAddress("short"); err == nil {
		t.Error("short address should fail")
	}
}
