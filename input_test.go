package blockviz_test

import (
	"testing"

	"github.com/go-theft-auto/blockviz"
)

func TestInputKeyEdges(t *testing.T) {
	input := blockviz.NewInputState()

	input.SetKey(blockviz.KeyUp, true)
	if !input.KeyDown(blockviz.KeyUp) || !input.KeyPressed(blockviz.KeyUp) {
		t.Fatal("expected Up down and pressed on the first frame")
	}

	input.Reset()
	input.SetKey(blockviz.KeyUp, true) // key repeat
	if !input.KeyDown(blockviz.KeyUp) {
		t.Error("expected Up still down")
	}
	if input.KeyPressed(blockviz.KeyUp) {
		t.Error("a held key must not be pressed again")
	}

	input.Reset()
	input.SetKey(blockviz.KeyUp, false)
	if input.KeyDown(blockviz.KeyUp) {
		t.Error("expected Up released")
	}
	if !input.KeyReleased(blockviz.KeyUp) {
		t.Error("expected release edge")
	}

	input.Reset()
	if input.KeyReleased(blockviz.KeyUp) {
		t.Error("release edge must last one frame")
	}
}

func TestInputIgnoresUnknownKeys(t *testing.T) {
	input := blockviz.NewInputState()

	input.SetKey(blockviz.KeyNone, true)
	input.SetKey(blockviz.KeyCount, true)
	input.SetKey(blockviz.Key(-3), true)

	for _, k := range []blockviz.Key{blockviz.KeyNone, blockviz.KeyCount, -3, 99} {
		if input.KeyDown(k) || input.KeyPressed(k) || input.KeyReleased(k) {
			t.Errorf("key %d should never report state", k)
		}
	}
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  blockviz.Key
		want string
	}{
		{blockviz.KeyLeft, "Left"},
		{blockviz.KeyJ, "J"},
		{blockviz.KeyEscape, "Esc"},
		{blockviz.KeyNone, "--"},
		{blockviz.KeyCount, "?"},
	}
	for _, tt := range tests {
		if got := blockviz.KeyName(tt.key); got != tt.want {
			t.Errorf("KeyName(%d) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
