package usecase

import (
	"sort"
	"time"

	"proconnect/internal/domain"
)

// previewLimit is how many events a month grid cell shows before "+N more".
const previewLimit = 2

// CalendarSelection is the calendar screen state: the displayed month and
// an optional selected date. Month navigation never touches the selection.
type CalendarSelection struct {
	events   []domain.CalendarEvent
	month    time.Time
	selected *time.Time
}

// NewCalendarSelection displays the month containing now with no date
// selected.
func NewCalendarSelection(store EntityStore, now time.Time) *CalendarSelection {
	return &CalendarSelection{events: store.Events(), month: firstOfMonth(now)}
}

// Month is the first day of the displayed month, UTC.
func (c *CalendarSelection) Month() time.Time { return c.month }

func (c *CalendarSelection) Next() { c.month = c.month.AddDate(0, 1, 0) }

func (c *CalendarSelection) Prev() { c.month = c.month.AddDate(0, -1, 0) }

// ShowMonth jumps to the month containing t.
func (c *CalendarSelection) ShowMonth(t time.Time) { c.month = firstOfMonth(t) }

// Select marks date as selected and returns its events.
func (c *CalendarSelection) Select(date time.Time) []domain.CalendarEvent {
	d := civilDate(date)
	c.selected = &d
	return c.EventsOn(d)
}

func (c *CalendarSelection) Selected() (time.Time, bool) {
	if c.selected == nil {
		return time.Time{}, false
	}
	return *c.selected, true
}

// SelectedEvents returns the selected date's events, empty when no date is
// selected.
func (c *CalendarSelection) SelectedEvents() []domain.CalendarEvent {
	if c.selected == nil {
		return []domain.CalendarEvent{}
	}
	return c.EventsOn(*c.selected)
}

// EventsOn returns the events on date's year/month/day, ignoring time of day
// and location, in store order.
func (c *CalendarSelection) EventsOn(date time.Time) []domain.CalendarEvent {
	return Filter(c.events, "", nil, func(e domain.CalendarEvent) bool {
		return sameDay(e.Date, date)
	})
}

// Upcoming returns up to limit events on or after from, earliest first.
// limit <= 0 means no limit.
func (c *CalendarSelection) Upcoming(from time.Time, limit int) []domain.CalendarEvent {
	start := civilDate(from)
	out := Filter(c.events, "", nil, func(e domain.CalendarEvent) bool {
		return !civilDate(e.Date).Before(start)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

type DayCell struct {
	Date     string                 `json:"date"`
	Events   []domain.CalendarEvent `json:"events"`
	More     int                    `json:"more"`
	Selected bool                   `json:"selected"`
}

// Grid lists every day of the displayed month with up to two event previews.
func (c *CalendarSelection) Grid() []DayCell {
	end := c.month.AddDate(0, 1, 0)
	cells := make([]DayCell, 0, 31)
	for d := c.month; d.Before(end); d = d.AddDate(0, 0, 1) {
		evs := c.EventsOn(d)
		cell := DayCell{Date: d.Format("2006-01-02"), Events: evs}
		if len(evs) > previewLimit {
			cell.Events = evs[:previewLimit]
			cell.More = len(evs) - previewLimit
		}
		if c.selected != nil && sameDay(*c.selected, d) {
			cell.Selected = true
		}
		cells = append(cells, cell)
	}
	return cells
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
