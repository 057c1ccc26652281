package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// JSON document models matching schema/snapshot.schema.json. References
// between records are by id and are resolved by Check.

type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
	Current     bool   `json:"current"`
}

type Education struct {
	ID          string `json:"id"`
	School      string `json:"school"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

type User struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Headline          string       `json:"headline"`
	Company           string       `json:"company"`
	Location          string       `json:"location"`
	Avatar            string       `json:"avatar,omitempty"`
	Connections       int          `json:"connections"`
	Bio               string       `json:"bio,omitempty"`
	Experience        []Experience `json:"experience,omitempty"`
	Education         []Education  `json:"education,omitempty"`
	Skills            []string     `json:"skills,omitempty"`
	IsConnected       bool         `json:"isConnected"`
	MutualConnections int          `json:"mutualConnections"`
}

type Company struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Industry    string   `json:"industry,omitempty"`
	Size        string   `json:"size,omitempty"`
	Location    string   `json:"location,omitempty"`
	Description string   `json:"description,omitempty"`
	EmployeeIDs []string `json:"employeeIds,omitempty"`
}

type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Likes     int       `json:"likes"`
	Comments  int       `json:"comments"`
	Shares    int       `json:"shares"`
	Type      string    `json:"type"`
}

type Job struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Type         string   `json:"type"`
	Salary       string   `json:"salary,omitempty"`
	PostedTime   string   `json:"postedTime,omitempty"`
	Description  string   `json:"description,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
	IsBookmarked bool     `json:"isBookmarked"`
	Applicants   int      `json:"applicants"`
}

type Message struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"senderId"`
	RecipientID string    `json:"recipientId"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
	Read        bool      `json:"read"`
}

type Conversation struct {
	ID            string `json:"id"`
	ParticipantID string `json:"participantId"`
	LastMessageID string `json:"lastMessageId,omitempty"`
	UnreadCount   int    `json:"unreadCount"`
}

type Location struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Name string  `json:"name"`
}

type Pod struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Members      int      `json:"members"`
	Location     Location `json:"location"`
	Category     string   `json:"category"`
	IsActive     bool     `json:"isActive"`
	LastActivity string   `json:"lastActivity,omitempty"`
	Avatar       string   `json:"avatar,omitempty"`
}

type Event struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Time     string `json:"time,omitempty"`
	Type     string `json:"type"`
	Company  string `json:"company,omitempty"`
	Location string `json:"location,omitempty"`
	IsPublic bool   `json:"isPublic,omitempty"`
}

type Snapshot struct {
	CurrentUserID string         `json:"currentUserId"`
	Users         []User         `json:"users"`
	Companies     []Company      `json:"companies,omitempty"`
	Posts         []Post         `json:"posts"`
	Jobs          []Job          `json:"jobs"`
	Messages      []Message      `json:"messages"`
	Conversations []Conversation `json:"conversations"`
	Pods          []Pod          `json:"pods"`
	Events        []Event        `json:"events"`
}

// DateLayout is the civil date format used by calendar events.
const DateLayout = "2006-01-02"

// LoadSnapshot validates raw against the snapshot schema, decodes it and
// checks that every reference resolves.
func LoadSnapshot(raw []byte) (*Snapshot, error) {
	if err := ValidateWithSchema("snapshot.schema.json", raw); err != nil {
		return nil, err
	}
	var s Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if res := s.Check(); !res.Valid {
		return nil, fmt.Errorf("snapshot references unresolved: %v", res.Missing)
	}
	return &s, nil
}

// DefaultSnapshot returns the embedded sample snapshot.
func DefaultSnapshot() (*Snapshot, error) {
	raw, err := files.ReadFile("seed/snapshot.json")
	if err != nil {
		return nil, err
	}
	return LoadSnapshot(raw)
}

// CheckResult lists every dangling reference found by Check.
type CheckResult struct {
	Valid   bool
	Missing []string
}

// Check verifies referential integrity of the snapshot.
func (s *Snapshot) Check() *CheckResult {
	res := &CheckResult{Valid: true, Missing: []string{}}
	miss := func(format string, args ...any) {
		res.Valid = false
		res.Missing = append(res.Missing, fmt.Sprintf(format, args...))
	}

	users := make(map[string]struct{}, len(s.Users))
	for _, u := range s.Users {
		users[u.ID] = struct{}{}
	}
	messages := make(map[string]struct{}, len(s.Messages))
	for _, m := range s.Messages {
		messages[m.ID] = struct{}{}
	}

	if _, ok := users[s.CurrentUserID]; !ok {
		miss("currentUserId %q", s.CurrentUserID)
	}
	for _, p := range s.Posts {
		if _, ok := users[p.AuthorID]; !ok {
			miss("posts[%s].authorId %q", p.ID, p.AuthorID)
		}
	}
	for _, m := range s.Messages {
		if _, ok := users[m.SenderID]; !ok {
			miss("messages[%s].senderId %q", m.ID, m.SenderID)
		}
		if _, ok := users[m.RecipientID]; !ok {
			miss("messages[%s].recipientId %q", m.ID, m.RecipientID)
		}
	}
	for _, c := range s.Conversations {
		if _, ok := users[c.ParticipantID]; !ok {
			miss("conversations[%s].participantId %q", c.ID, c.ParticipantID)
		}
		if c.ParticipantID == s.CurrentUserID {
			miss("conversations[%s].participantId is the current user", c.ID)
		}
		if c.LastMessageID != "" {
			if _, ok := messages[c.LastMessageID]; !ok {
				miss("conversations[%s].lastMessageId %q", c.ID, c.LastMessageID)
			}
		}
	}
	for _, c := range s.Companies {
		for _, id := range c.EmployeeIDs {
			if _, ok := users[id]; !ok {
				miss("companies[%s].employeeIds %q", c.ID, id)
			}
		}
	}
	for _, e := range s.Events {
		if _, err := time.Parse(DateLayout, e.Date); err != nil {
			miss("events[%s].date %q", e.ID, e.Date)
		}
	}
	return res
}
