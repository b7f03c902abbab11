package core

import "testing"

func TestConfigSized(t *testing.T) {
	base := DefaultConfig()

	got := base.Sized(120, 40)
	if got.ScreenW != 120 || got.ScreenH != 40 {
		t.Errorf("Sized(120, 40) = %dx%d", got.ScreenW, got.ScreenH)
	}
	if got.TickRate != DefaultTickRate {
		t.Errorf("Sized changed TickRate to %d", got.TickRate)
	}

	got = base.Sized(0, -1)
	if got.ScreenW != DefaultScreenW || got.ScreenH != DefaultScreenH {
		t.Errorf("Sized(0, -1) = %dx%d, want defaults", got.ScreenW, got.ScreenH)
	}
}

func TestTickDuration(t *testing.T) {
	tests := []struct {
		rate int
		want float64
	}{
		{60, 1.0 / 60},
		{30, 1.0 / 30},
		{0, 1.0 / 60},
		{-5, 1.0 / 60},
	}
	for _, tc := range tests {
		if got := (RuntimeConfig{TickRate: tc.rate}).TickDuration(); got != tc.want {
			t.Errorf("TickDuration(%d) = %v, want %v", tc.rate, got, tc.want)
		}
	}
}
