package core

import (
	"fmt"
	"time"
)

// ReceiptCounter allocates receipt numbers of the form RCP-YYYYMMDD-NNNN
// with a per-day monotonic sequence. It is persisted as part of the engine
// snapshot, so a restart resumes the sequence instead of risking a same-day
// collision. The sequence resets when the UTC date changes.
type ReceiptCounter struct {
	Day string `json:"day"`
	Seq int    `json:"seq"`
}

// Next returns the receipt number for a sale completed at now and advances
// the counter.
func (c *ReceiptCounter) Next(now time.Time) string {
	day := now.UTC().Format("20060102")
	if day != c.Day {
		c.Day = day
		c.Seq = 0
	}
	c.Seq++
	return fmt.Sprintf("RCP-%s-%04d", day, c.Seq)
}
