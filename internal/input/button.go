package input

import "fmt"

// Button identifies a pointer button. The named constants cover the common
// five-button vocabulary; OtherButton maps anything beyond that.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	ButtonBack
	ButtonForward

	// buttonOtherBase is where numbered extra buttons start.
	buttonOtherBase Button = 8
)

// OtherButton returns the Button for a numbered extra button (side keys,
// macro buttons) beyond the named set.
func OtherButton(n uint8) Button {
	return buttonOtherBase + Button(n)
}

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	case ButtonBack:
		return "back"
	case ButtonForward:
		return "forward"
	default:
		if b >= buttonOtherBase {
			return fmt.Sprintf("other(%d)", int(b-buttonOtherBase))
		}
		return fmt.Sprintf("button(%d)", int(b))
	}
}
