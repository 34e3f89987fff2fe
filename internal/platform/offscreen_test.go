package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pollframe/internal/input"
)

func TestOffscreen_CursorProperties(t *testing.T) {
	w := NewOffscreen(800, 600)

	assert.True(t, w.CursorVisible())
	assert.False(t, w.CursorGrabbed())

	w.SetCursorIcon(input.CursorGrabbing)
	assert.Equal(t, input.CursorGrabbing, w.CursorIcon())

	require.NoError(t, w.SetCursorGrab(true))
	assert.True(t, w.CursorGrabbed())

	w.SetCursorVisible(false)
	assert.False(t, w.CursorVisible())
}

func TestOffscreen_SetCursorPosition(t *testing.T) {
	tests := []struct {
		name    string
		point   input.Point
		wantErr bool
	}{
		{"origin", input.Point{}, false},
		{"inside", input.Point{X: 400, Y: 300}, false},
		{"on right edge", input.Point{X: 800, Y: 300}, true},
		{"on bottom edge", input.Point{X: 400, Y: 600}, true},
		{"negative", input.Point{X: -1, Y: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewOffscreen(800, 600)
			err := w.SetCursorPosition(tt.point)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, w.CursorPosition().IsZero(), "rejected warp must not move the cursor")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.point, w.CursorPosition())
			}
		})
	}
}

// An offscreen window refusing a warp surfaces to tracker callers as a
// platform rejection without disturbing the mirror.
func TestOffscreen_RejectionThroughTracker(t *testing.T) {
	w := NewOffscreen(100, 100)
	tr := input.NewTracker()
	tr.SetLastPosition(input.Point{X: 50, Y: 50})

	err := tr.SetCursorPosition(w, input.Point{X: 500, Y: 500})
	require.Error(t, err)
	assert.ErrorIs(t, err, input.ErrPlatformRejected)
	assert.Equal(t, input.Point{X: 50, Y: 50}, tr.Position())
}

func TestUinput_RequiresDevice(t *testing.T) {
	u, err := NewUinput()
	if err != nil {
		t.Skipf("cannot create virtual pointer: %v (needs /dev/uinput access)", err)
	}
	defer func() { _ = u.Close() }()

	assert.Error(t, u.SetCursorGrab(true), "virtual pointers cannot grab")

	if err := u.SetCursorPosition(input.Point{X: 10, Y: 10}); err != nil {
		t.Errorf("warp failed: %v", err)
	}

	require.NoError(t, u.Close())
	assert.Error(t, u.SetCursorPosition(input.Point{X: 20, Y: 20}), "closed pointer must refuse warps")
}
