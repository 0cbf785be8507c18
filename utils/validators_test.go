package utils

import "testing"

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "valid password", password: "secret1!", want: true},
		{name: "too short", password: "a1!", want: false},
		{name: "no number", password: "secrets!", want: false},
		{name: "no special character", password: "secret123", want: false},
		{name: "empty", password: "", want: false},
		{name: "symbols count as special", password: "passw0rd+", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePassword(tt.password); got != tt.want {
				t.Errorf("ValidatePassword(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestValidateClockTime(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"09:00", true},
		{"00:00", true},
		{"23:59", true},
		{"24:00", false},
		{"9:00", false},
		{"12:60", false},
		{"12-30", false},
		{"", false},
		{"12:30:00", false},
	}

	for _, tt := range tests {
		if got := ValidateClockTime(tt.value); got != tt.want {
			t.Errorf("ValidateClockTime(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
