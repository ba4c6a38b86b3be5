package timer

import (
	"fmt"
	"time"
)

// FormatRemaining renders a duration as MM:SS, flooring to whole seconds.
func FormatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int64(remaining / time.Second)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
