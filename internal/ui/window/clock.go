package window

import (
	"time"

	"pomodoro/internal/display"

	"fyne.io/fyne/v2"
)

// UIClock delivers scheduled frames on the fyne UI goroutine.
type UIClock struct{}

// Now returns the wall clock time.
func (UIClock) Now() time.Time {
	return time.Now()
}

// AfterFunc runs callback through fyne.Do once delay has passed.
func (UIClock) AfterFunc(delay time.Duration, callback func()) display.Timer {
	return time.AfterFunc(delay, func() {
		fyne.Do(callback)
	})
}
