package input

// CursorIcon is the shape shown for the pointer cursor.
type CursorIcon int

const (
	CursorDefault CursorIcon = iota
	CursorCrosshair
	CursorPointer
	CursorText
	CursorMove
	CursorGrab
	CursorGrabbing
	CursorWait
	CursorProgress
	CursorHelp
	CursorNotAllowed
)

var cursorIconNames = map[CursorIcon]string{
	CursorDefault:    "default",
	CursorCrosshair:  "crosshair",
	CursorPointer:    "pointer",
	CursorText:       "text",
	CursorMove:       "move",
	CursorGrab:       "grab",
	CursorGrabbing:   "grabbing",
	CursorWait:       "wait",
	CursorProgress:   "progress",
	CursorHelp:       "help",
	CursorNotAllowed: "not-allowed",
}

func (c CursorIcon) String() string {
	if name, ok := cursorIconNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseCursorIcon resolves a config-file icon name to its CursorIcon.
// Unknown names fall back to CursorDefault.
func ParseCursorIcon(name string) CursorIcon {
	for icon, n := range cursorIconNames {
		if n == name {
			return icon
		}
	}
	return CursorDefault
}

// CursorIcons lists every known icon in declaration order, for selection UIs.
func CursorIcons() []CursorIcon {
	icons := make([]CursorIcon, 0, len(cursorIconNames))
	for i := CursorDefault; i <= CursorNotAllowed; i++ {
		icons = append(icons, i)
	}
	return icons
}
