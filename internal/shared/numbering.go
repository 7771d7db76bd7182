package shared

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NextDocumentNumber returns the next <kind>-YYYYMMDD-NNN number for day given
// the numbers already issued. Numbers in other formats are ignored; the
// sequence keeps counting past 999 so issued numbers are never repeated.
func NextDocumentNumber(kind string, existing []string, day time.Time) string {
	prefix := kind + "-" + day.Format("20060102") + "-"
	highest := 0
	for _, n := range existing {
		if !strings.HasPrefix(n, prefix) {
			continue
		}
		seq, err := strconv.Atoi(strings.TrimPrefix(n, prefix))
		if err == nil && seq > highest {
			highest = seq
		}
	}
	return fmt.Sprintf("%s%03d", prefix, highest+1)
}
