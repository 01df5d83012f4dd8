package mains

import "testing"

func TestHumFrequencyForTimezone(t *testing.T) {
	tests := []struct {
		timezone string
		want     int
	}{
		// 50Hz grids
		{"Europe/London", 50},
		{"Europe/Berlin", 50},
		{"Australia/Sydney", 50},
		{"Asia/Shanghai", 50},
		{"Asia/Tokyo", 50}, // Japan defaults to the 50Hz side

		// 60Hz grids
		{"America/New_York", 60},
		{"America/Los_Angeles", 60},
		{"America/Mexico_City", 60},
		{"America/Sao_Paulo", 60},
		{"Asia/Seoul", 60},
		{"Asia/Manila", 60},

		// No country association
		{"UTC", 50},
		{"GMT", 50},
		{"Etc/UTC", 50},
	}

	for _, tt := range tests {
		t.Run(tt.timezone, func(t *testing.T) {
			if got := HumFrequencyForTimezone(tt.timezone); got != tt.want {
				t.Errorf("HumFrequencyForTimezone(%q) = %d, want %d", tt.timezone, got, tt.want)
			}
		})
	}
}

func TestHumFrequency(t *testing.T) {
	if freq := HumFrequency(); freq != 50 && freq != 60 {
		t.Errorf("HumFrequency() = %d, want 50 or 60", freq)
	}
}
