package scene

import (
	"math"
	"testing"
	"time"

	"github.com/iburimskiy/globe-backdrop/internal/config"
)

func TestTypingDecay(t *testing.T) {
	clock := newFakeClock()
	var st InteractionState
	tr := NewTracker(&st, clock, 200*time.Millisecond)

	if tr.IsActive() {
		t.Fatal("active before any input")
	}
	tr.TextInput()
	clock.Advance(199 * time.Millisecond)
	if !tr.IsActive() {
		t.Fatal("inactive at 199ms")
	}
	clock.Advance(2 * time.Millisecond)
	if tr.IsActive() {
		t.Fatal("still active at 201ms")
	}
}

func TestTypingRetriggerExtends(t *testing.T) {
	clock := newFakeClock()
	var st InteractionState
	tr := NewTracker(&st, clock, 200*time.Millisecond)

	for i := 0; i < 4; i++ {
		tr.TextInput()
		clock.Advance(150 * time.Millisecond)
		if !tr.IsActive() {
			t.Fatalf("keystroke %d: decayed while typing", i)
		}
	}
	clock.Advance(50 * time.Millisecond)
	if tr.IsActive() {
		t.Fatal("active 200ms after last keystroke")
	}
}

func TestTrackerStop(t *testing.T) {
	clock := newFakeClock()
	var st InteractionState
	tr := NewTracker(&st, clock, 200*time.Millisecond)
	tr.TextInput()
	tr.Stop()
	if st.Active {
		t.Fatal("active after Stop")
	}
}

func TestPointerOffset(t *testing.T) {
	var st InteractionState
	tr := NewTracker(&st, newFakeClock(), config.ActivityDecay)

	tr.PointerMoved(400, 300, 800, 600)
	if st.Pointer != (Vec2{}) {
		t.Errorf("center offset = %+v", st.Pointer)
	}
	tr.PointerMoved(800, 0, 800, 600)
	if math.Abs(st.Pointer.X-0.4) > eps || math.Abs(st.Pointer.Y+0.3) > eps {
		t.Errorf("corner offset = %+v", st.Pointer)
	}
}

func TestTouchMoved(t *testing.T) {
	var st InteractionState
	tr := NewTracker(&st, newFakeClock(), config.ActivityDecay)

	tr.TouchMoved([]Vec2{{X: 500, Y: 300}, {X: 0, Y: 0}}, 800, 600)
	if math.Abs(st.Pointer.X-0.1) > eps || st.Pointer.Y != 0 {
		t.Errorf("first touch not used: %+v", st.Pointer)
	}
	tr.TouchMoved(nil, 800, 600)
	if math.Abs(st.Pointer.X-0.1) > eps {
		t.Errorf("empty touch list changed pointer: %+v", st.Pointer)
	}
}

func TestEaseConverges(t *testing.T) {
	st := InteractionState{Pointer: Vec2{X: 0.3, Y: -0.2}}
	target := st.Target()
	// the drift settles at drift/ease past the target
	fixed := Rotation{
		Pitch: target.Pitch + config.PitchDrift/config.EaseFactor,
		Yaw:   target.Yaw + config.YawDrift/config.EaseFactor,
	}

	prevYaw := math.Abs(fixed.Yaw - st.Rotation.Yaw)
	prevPitch := math.Abs(fixed.Pitch - st.Rotation.Pitch)
	for i := 0; i < 600; i++ {
		st.Ease()
		dy := math.Abs(fixed.Yaw - st.Rotation.Yaw)
		dp := math.Abs(fixed.Pitch - st.Rotation.Pitch)
		if dy > prevYaw+eps || dp > prevPitch+eps {
			t.Fatalf("frame %d: moved away from target (yaw %g>%g, pitch %g>%g)", i, dy, prevYaw, dp, prevPitch)
		}
		if st.Rotation.Yaw > fixed.Yaw+eps || st.Rotation.Pitch < fixed.Pitch-eps {
			t.Fatalf("frame %d: overshot %+v past %+v", i, st.Rotation, fixed)
		}
		prevYaw, prevPitch = dy, dp
	}
	if prevYaw > 1e-6 || prevPitch > 1e-6 {
		t.Errorf("did not converge: %+v vs %+v", st.Rotation, fixed)
	}
}

func TestEaseDriftsWithoutPointer(t *testing.T) {
	var st InteractionState
	prev := st.Rotation
	for i := 0; i < 100; i++ {
		st.Ease()
		if st.Rotation.Yaw <= prev.Yaw || st.Rotation.Pitch <= prev.Pitch {
			t.Fatalf("frame %d: no drift %+v -> %+v", i, prev, st.Rotation)
		}
		prev = st.Rotation
	}
}
