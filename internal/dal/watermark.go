package dal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Watermark marks the newest channel post the update monitor has seen.
type Watermark struct {
	LastID      *string    `json:"last_id"`
	LastDate    *time.Time `json:"last_date"`
	ProcessedAt *time.Time `json:"processed_at"`
}

// IsNewer reports whether a post has not been seen yet. When either side has no
// date the numeric post ids are compared; a post whose id cannot be compared is
// treated as newer.
func (w Watermark) IsNewer(id string, date time.Time) bool {
	if w.LastID != nil && *w.LastID == id {
		return false
	}
	if w.LastDate != nil && !date.IsZero() {
		return date.After(*w.LastDate)
	}
	if w.LastID == nil {
		return true
	}
	last, ok := postNumber(*w.LastID)
	if !ok {
		return true
	}
	current, ok := postNumber(id)
	if !ok {
		return true
	}
	return current > last
}

// postNumber extracts the sequence number from "4101" or "cek_info/4101".
func postNumber(id string) (int64, bool) {
	if i := strings.LastIndexByte(id, '/'); i >= 0 {
		id = id[i+1:]
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Equal compares the seen-post fields, ignoring ProcessedAt.
func (w Watermark) Equal(other Watermark) bool {
	if (w.LastID == nil) != (other.LastID == nil) || (w.LastID != nil && *w.LastID != *other.LastID) {
		return false
	}
	if (w.LastDate == nil) != (other.LastDate == nil) || (w.LastDate != nil && !w.LastDate.Equal(*other.LastDate)) {
		return false
	}
	return true
}

type WatermarkFile struct {
	path string
}

func NewWatermarkFile(path string) *WatermarkFile {
	return &WatermarkFile{path: path}
}

// GetWatermark returns an empty watermark when the file does not exist yet.
func (f *WatermarkFile) GetWatermark() (Watermark, error) {
	var res Watermark
	if _, err := readJSON(f.path, &res); err != nil {
		return Watermark{}, fmt.Errorf("read watermark: %w", err)
	}
	return res, nil
}

func (f *WatermarkFile) PutWatermark(w Watermark) error {
	if err := writeJSON(f.path, w); err != nil {
		return fmt.Errorf("write watermark: %w", err)
	}
	return nil
}
