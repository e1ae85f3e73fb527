// utils/filename.go
package utils

import (
	"fmt"
	"time"

	"github.com/gosimple/slug"
)

// ExportFilename builds a safe attachment name like
// "cpe-fair-scores-2026-02-14.xlsx" from a free-form event name.
func ExportFilename(eventName string, ts time.Time) string {
	base := slug.Make(eventName)
	if base == "" {
		base = "leaderboard"
	}
	return fmt.Sprintf("%s-scores-%s.xlsx", base, ts.Format("2006-01-02"))
}
