package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func (d *dateField) setTime(t time.Time) {
	d.year = t.Year()
	d.month = int(t.Month())
	d.day = t.Day()
	d.segment = dateSegmentDay
	d.buffer = ""
}

func (d dateField) time() time.Time {
	if d.year == 0 || d.month == 0 || d.day == 0 {
		return time.Time{}
	}
	// UTC midnight, matching how loaded records and filter bounds are built
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, time.UTC)
}

func (d dateField) display(focused bool) string {
	parts := []string{
		fmt.Sprintf("%04d", d.year),
		fmt.Sprintf("%02d", d.month),
		fmt.Sprintf("%02d", d.day),
	}
	if focused {
		parts[d.segment] = "[" + parts[d.segment] + "]"
	}
	return strings.Join(parts, "-")
}

func (d *dateField) segmentLeft() {
	d.buffer = ""
	if d.segment > dateSegmentYear {
		d.segment--
	}
}

func (d *dateField) segmentRight() {
	d.buffer = ""
	if d.segment < dateSegmentDay {
		d.segment++
	}
}

func (d *dateField) increment(delta int) {
	switch d.segment {
	case dateSegmentYear:
		d.year += delta
	case dateSegmentMonth:
		d.month += delta
		if d.month < 1 {
			d.month = 12
			d.year--
		} else if d.month > 12 {
			d.month = 1
			d.year++
		}
	case dateSegmentDay:
		t := d.time()
		if t.IsZero() {
			t = time.Now()
		}
		t = t.AddDate(0, 0, delta)
		d.year = t.Year()
		d.month = int(t.Month())
		d.day = t.Day()
	}
	d.ensureDayInMonth()
}

func (d *dateField) handleDigit(r rune) {
	if r < '0' || r > '9' {
		return
	}
	d.buffer += string(r)
	switch d.segment {
	case dateSegmentYear:
		if len(d.buffer) > 4 {
			d.buffer = d.buffer[len(d.buffer)-4:]
		}
		if val, err := strconv.Atoi(d.buffer); err == nil {
			d.year = val
		}
	case dateSegmentMonth:
		if len(d.buffer) > 2 {
			d.buffer = d.buffer[len(d.buffer)-2:]
		}
		if val, err := strconv.Atoi(d.buffer); err == nil {
			d.month = min(max(val, 1), 12)
		}
		if len(d.buffer) >= 2 {
			d.segmentRight()
		}
	case dateSegmentDay:
		if len(d.buffer) > 2 {
			d.buffer = d.buffer[len(d.buffer)-2:]
		}
		if val, err := strconv.Atoi(d.buffer); err == nil {
			d.day = min(max(val, 1), daysInMonth(d.year, d.month))
		}
	}
	d.ensureDayInMonth()
}

func (d *dateField) ensureDayInMonth() {
	maxDay := daysInMonth(d.year, d.month)
	if d.day > maxDay {
		d.day = maxDay
	}
	if d.day < 1 {
		d.day = 1
	}
}

func daysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 31
	}
	t := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return t.AddDate(0, 1, -1).Day()
}

// handleDateKey routes keys to the date field while it has focus. Returns
// true when the key was consumed.
func (d *dateField) handleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "left":
		d.segmentLeft()
		return true
	case "right":
		d.segmentRight()
		return true
	case "up":
		d.increment(1)
		return true
	case "down":
		d.increment(-1)
		return true
	}
	if len(msg.Runes) == 1 {
		r := msg.Runes[0]
		if r >= '0' && r <= '9' {
			d.handleDigit(r)
			return true
		}
	}
	return false
}
