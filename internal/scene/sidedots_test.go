package scene

import (
	"math"
	"testing"

	"github.com/iburimskiy/globe-backdrop/internal/config"
)

func TestColumnAnchors(t *testing.T) {
	p := config.StandardPreset
	left := Column(Left, p.DotsPerSide, p, 1000, 500)
	right := Column(Right, p.DotsPerSide, p, 1000, 500)
	if len(left) != 15 || len(right) != 15 {
		t.Fatalf("got %d/%d dots", len(left), len(right))
	}
	for i := range left {
		if left[i].X != 40 || right[i].X != 960 {
			t.Errorf("slot %d: x = %g/%g", i, left[i].X, right[i].X)
		}
		wantY := 100 + float64(i)*20
		if math.Abs(left[i].Y-wantY) > eps || left[i].Y != right[i].Y {
			t.Errorf("slot %d: y = %g/%g, want %g", i, left[i].Y, right[i].Y, wantY)
		}
		if left[i].Slot != i || left[i].Slots != 15 {
			t.Errorf("slot %d: %+v", i, left[i])
		}
	}
}

func TestColumnNoSlots(t *testing.T) {
	if dots := Column(Left, 0, config.StandardPreset, 800, 600); dots != nil {
		t.Errorf("Column with zero slots = %v", dots)
	}
}

func TestPulseIdle(t *testing.T) {
	d := SideDot{Slot: 3, Slots: 15}
	for _, tm := range []float64{0, 0.1, 1.7, 42} {
		pu := d.Pulse(tm, false, 5)
		if pu.ScaleX != 1 || pu.ScaleY != 1 || pu.Alpha != config.IdleOpacity {
			t.Errorf("t=%g: idle pulse %+v", tm, pu)
		}
	}
}

func TestPulseActiveStretchRange(t *testing.T) {
	for _, amp := range []float64{config.StandardPreset.Stretch, config.ConstrainedPreset.Stretch} {
		for slot := 0; slot < 15; slot++ {
			d := SideDot{Slot: slot, Slots: 15}
			for i := 0; i < 200; i++ {
				pu := d.Pulse(float64(i)*0.013, true, amp)
				if pu.ScaleX < 1 || pu.ScaleX > 1+amp {
					t.Fatalf("stretch %g outside [1, %g]", pu.ScaleX, 1+amp)
				}
				if pu.ScaleY != 1 || pu.Alpha != 1 {
					t.Fatalf("active pulse %+v", pu)
				}
			}
		}
	}
}

func TestPulsePhase(t *testing.T) {
	d := SideDot{Slot: 0}
	// sin(0) = 0 maps to the middle of the range
	if pu := d.Pulse(0, true, 4); math.Abs(pu.ScaleX-3) > eps {
		t.Errorf("scaleX = %g, want 3", pu.ScaleX)
	}
	// slot 2 leads by 1.6 rad
	d2 := SideDot{Slot: 2}
	want := 1 + (math.Sin(1.6)+1)/2*4
	if pu := d2.Pulse(0, true, 4); math.Abs(pu.ScaleX-want) > eps {
		t.Errorf("scaleX = %g, want %g", pu.ScaleX, want)
	}
}
