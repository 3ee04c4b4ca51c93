package carve

import (
	"errors"
	"testing"
)

func TestEnergyMap(t *testing.T) {
	// 2x2 gradient buffer with distinct channel values per pixel.
	gradient := []uint8{
		1, 2, 3, 255, // (0,0) -> 6
		10, 20, 30, 0, // (0,1) -> 60
		0, 0, 0, 128, // (1,0) -> 0
		5, 0, 7, 9, // (1,1) -> 12
	}

	energy, err := EnergyMap(gradient, 2, 2)
	if err != nil {
		t.Fatalf("EnergyMap failed: %v", err)
	}

	want := [][]int{
		{6, 60},
		{0, 12},
	}
	for row := range want {
		for col := range want[row] {
			if energy[row][col] != want[row][col] {
				t.Errorf("energy[%d][%d]: got %d, want %d", row, col, energy[row][col], want[row][col])
			}
		}
	}
}

func TestEnergyMap_SumsExceed255(t *testing.T) {
	// Channel sums are not clamped to a byte.
	gradient := []uint8{200, 200, 200, 255}

	energy, err := EnergyMap(gradient, 1, 1)
	if err != nil {
		t.Fatalf("EnergyMap failed: %v", err)
	}
	if energy[0][0] != 600 {
		t.Errorf("energy: got %d, want 600", energy[0][0])
	}
}

func TestEnergyMap_AlphaIgnored(t *testing.T) {
	a := []uint8{10, 20, 30, 0}
	b := []uint8{10, 20, 30, 255}

	ea, err := EnergyMap(a, 1, 1)
	if err != nil {
		t.Fatalf("EnergyMap failed: %v", err)
	}
	eb, err := EnergyMap(b, 1, 1)
	if err != nil {
		t.Fatalf("EnergyMap failed: %v", err)
	}
	if ea[0][0] != eb[0][0] {
		t.Errorf("alpha changed energy: %d vs %d", ea[0][0], eb[0][0])
	}
}

func TestEnergyMap_MalformedBuffer(t *testing.T) {
	tests := []struct {
		name   string
		length int
		w, h   int
	}{
		{"short buffer", 12, 2, 2},
		{"long buffer", 20, 2, 2},
		{"empty buffer nonzero dims", 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EnergyMap(make([]uint8, tt.length), tt.w, tt.h)
			if !errors.Is(err, ErrMalformedBuffer) {
				t.Errorf("got %v, want ErrMalformedBuffer", err)
			}
		})
	}
}
