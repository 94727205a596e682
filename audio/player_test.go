package audio

import "testing"

func TestGain(t *testing.T) {
	tests := []struct {
		name   string
		volume int
		want   float64
	}{
		{"Full volume is unity", 100, 0},
		{"Half loudness", 75, -1},
		{"Quarter loudness", 50, -2},
		{"Zero", 0, -4},
		{"Clamped high", 150, 0},
		{"Clamped low", -10, -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Gain(tt.volume); got != tt.want {
				t.Errorf("Gain(%d) = %v, want %v", tt.volume, got, tt.want)
			}
		})
	}
}
