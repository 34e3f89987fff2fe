package input

// Window is the opaque platform capability the tracker forwards cursor
// requests to. It is passed into each mutating call rather than stored, so
// the window stays owned by whoever created it.
//
// SetCursorGrab and SetCursorPosition may be refused by the platform and
// return an error; icon and visibility changes are treated as infallible
// at this layer.
type Window interface {
	SetCursorIcon(icon CursorIcon)
	SetCursorGrab(grabbed bool) error
	SetCursorVisible(visible bool)
	SetCursorPosition(p Point) error
}
