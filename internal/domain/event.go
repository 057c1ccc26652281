package domain

import "time"

type EventType string

const (
	EventInterview EventType = "interview"
	EventDeadline  EventType = "deadline"
	EventGeneric   EventType = "event"
	EventMeeting   EventType = "meeting"
)

// CalendarEvent is pinned to a civil date; Time is a display label.
type CalendarEvent struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Date     time.Time `json:"date"`
	Time     string    `json:"time"`
	Type     EventType `json:"type"`
	Company  string    `json:"company"`
	Location string    `json:"location"`
	IsPublic bool      `json:"is_public,omitempty"`
}
