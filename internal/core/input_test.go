package core

import (
	"testing"
	"time"
)

func TestKeyStateWithoutHoldWindow(t *testing.T) {
	ks := NewKeyState(0)
	t0 := time.Unix(100, 0)

	if ks.Held(KeyUp, t0) {
		t.Error("Fresh key state should hold nothing")
	}

	ks.Press(KeyUp, t0)
	if !ks.Held(KeyUp, t0.Add(time.Hour)) {
		t.Error("Without a hold window a key stays held until released")
	}

	ks.Release(KeyUp)
	if ks.Held(KeyUp, t0) {
		t.Error("Released key should not be held")
	}
}

func TestKeyStateHoldWindow(t *testing.T) {
	ks := NewKeyState(100 * time.Millisecond)
	t0 := time.Unix(100, 0)

	ks.Press(KeyLeft, t0)
	if !ks.Held(KeyLeft, t0.Add(50*time.Millisecond)) {
		t.Error("Key should be held inside the hold window")
	}
	if ks.Held(KeyLeft, t0.Add(100*time.Millisecond)) {
		t.Error("Key should expire at the end of the hold window")
	}

	// A repeat press extends the hold.
	ks.Press(KeyLeft, t0.Add(90*time.Millisecond))
	if !ks.Held(KeyLeft, t0.Add(150*time.Millisecond)) {
		t.Error("Repeat press should extend the hold window")
	}
}

func TestKeyStateIndependentKeys(t *testing.T) {
	ks := NewKeyState(0)
	now := time.Unix(0, 0)

	ks.Press(KeyUp, now)
	ks.Press(KeyRight, now)
	ks.Press(KeyNone, now)

	if !ks.Held(KeyUp, now) || !ks.Held(KeyRight, now) {
		t.Error("Both pressed keys should be held")
	}
	if ks.Held(KeyDown, now) || ks.Held(KeyNone, now) {
		t.Error("Unpressed keys should not be held")
	}

	ks.ReleaseAll()
	for _, k := range DirectionKeys {
		if ks.Held(k, now) {
			t.Errorf("%s should be released after ReleaseAll", k)
		}
	}
}

func TestKeyDirection(t *testing.T) {
	tests := []struct {
		key      Key
		expected Vec2
	}{
		{KeyUp, Vec2{Y: 1}},
		{KeyDown, Vec2{Y: -1}},
		{KeyLeft, Vec2{X: -1}},
		{KeyRight, Vec2{X: 1}},
		{KeyNone, Vec2{}},
	}

	for _, tc := range tests {
		if got := tc.key.Direction(); got != tc.expected {
			t.Errorf("%s.Direction() = %+v, expected %+v", tc.key, got, tc.expected)
		}
	}
}
