package tone

import "testing"

func TestScaledVolume(t *testing.T) {
	tests := []struct {
		frequency int
		expected  float64
	}{
		{1000, DefaultVolume},
		{40, DefaultVolume},
		{39, DefaultVolume * 1.5},
		{20, DefaultVolume * 1.5},
		{19, DefaultVolume * 2.0},
		{10, DefaultVolume * 2.0},
		{9, DefaultVolume * 2.5},
		{5, DefaultVolume * 2.5},
		{4, DefaultVolume * 3.0},
		{2, DefaultVolume * 3.0},
		{0, DefaultVolume * 3.0},
	}

	for _, test := range tests {
		result := ScaledVolume(test.frequency)
		if !almostEqual(result, test.expected) {
			t.Errorf("ScaledVolume(%d) = %v; ожидалось %v", test.frequency, result, test.expected)
		}
	}
}

func TestScaleVolumeCustomBase(t *testing.T) {
	if v := ScaleVolume(0.5, 2); !almostEqual(v, 0.5*3.0) {
		t.Errorf("ScaleVolume(0.5, 2) = %v; ожидалось %v", v, 0.5*3.0)
	}
	if v := ScaleVolume(0.5, 40); !almostEqual(v, 0.5) {
		t.Errorf("ScaleVolume(0.5, 40) = %v; ожидалось 0.5", v)
	}
}
