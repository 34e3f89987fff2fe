package platform

import (
	"fmt"
	"sync"

	"github.com/ThomasT75/uinput"

	"pollframe/internal/input"
	"pollframe/internal/logger"
)

// Uinput realizes the Window capability over a uinput virtual pointer, so
// cursor warps move the real system cursor. Position sets are translated
// into relative moves from the last warped position, since uinput mice are
// relative devices. Grab is not something a virtual pointer can provide,
// so grab requests are always refused; icon and visibility have no kernel
// counterpart and are accepted as no-ops.
type Uinput struct {
	mu     sync.Mutex
	mouse  uinput.Mouse
	closed bool

	// Last position we warped to, for computing relative moves.
	currentX float64
	currentY float64
}

// NewUinput creates a virtual pointer device. Requires write access to
// /dev/uinput, which usually means root or membership in the input group.
func NewUinput() (*Uinput, error) {
	mouse, err := uinput.CreateMouse("/dev/uinput", []byte("pollframe virtual pointer"))
	if err != nil {
		return nil, fmt.Errorf("failed to create virtual pointer: %w", err)
	}
	return &Uinput{mouse: mouse}, nil
}

// Close releases the virtual pointer device.
func (u *Uinput) Close() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.closed {
		return nil
	}
	u.closed = true
	return u.mouse.Close()
}

func (u *Uinput) SetCursorIcon(icon input.CursorIcon) {
	logger.Debugf("uinput window: ignoring cursor icon %s (no kernel counterpart)", icon)
}

func (u *Uinput) SetCursorGrab(grabbed bool) error {
	return fmt.Errorf("virtual pointer cannot confine the cursor")
}

func (u *Uinput) SetCursorVisible(visible bool) {
	logger.Debugf("uinput window: ignoring cursor visibility %v (no kernel counterpart)", visible)
}

// SetCursorPosition moves the system cursor by the difference between the
// requested point and the last warp target.
func (u *Uinput) SetCursorPosition(p input.Point) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.closed {
		return fmt.Errorf("virtual pointer is closed")
	}

	dx := int32(p.X - u.currentX)
	dy := int32(p.Y - u.currentY)
	if dx != 0 || dy != 0 {
		if err := u.mouse.Move(dx, dy); err != nil {
			return fmt.Errorf("virtual pointer move failed: %w", err)
		}
	}
	u.currentX = p.X
	u.currentY = p.Y
	return nil
}
