package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestButton_String(t *testing.T) {
	tests := []struct {
		button Button
		want   string
	}{
		{ButtonLeft, "left"},
		{ButtonRight, "right"},
		{ButtonMiddle, "middle"},
		{ButtonBack, "back"},
		{ButtonForward, "forward"},
		{OtherButton(0), "other(0)"},
		{OtherButton(5), "other(5)"},
		{Button(6), "button(6)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.button.String())
	}
}
