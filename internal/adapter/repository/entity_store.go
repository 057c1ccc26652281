package repository

import (
	"sort"

	"proconnect/internal/domain"
	"proconnect/internal/model"
)

// EntityStore holds the fixed collections of one snapshot. It is built once
// and never mutated, so concurrent readers need no locking. Every accessor
// returns a copy of the underlying slice.
type EntityStore struct {
	currentUserID string

	users         []domain.User
	companies     []domain.Company
	posts         []domain.Post
	jobs          []domain.Job
	messages      []domain.Message
	conversations []domain.Conversation
	pods          []domain.Pod
	events        []domain.CalendarEvent

	userIdx map[string]int
}

// NewEntityStore converts a checked snapshot into domain collections.
func NewEntityStore(s *model.Snapshot) *EntityStore {
	st := &EntityStore{
		currentUserID: s.CurrentUserID,
		userIdx:       make(map[string]int, len(s.Users)),
	}
	for i, u := range s.Users {
		st.users = append(st.users, u.ToDomain())
		st.userIdx[u.ID] = i
	}
	for _, c := range s.Companies {
		st.companies = append(st.companies, c.ToDomain())
	}
	for _, p := range s.Posts {
		st.posts = append(st.posts, p.ToDomain())
	}
	for _, j := range s.Jobs {
		st.jobs = append(st.jobs, j.ToDomain())
	}
	for _, m := range s.Messages {
		st.messages = append(st.messages, m.ToDomain())
	}
	for _, c := range s.Conversations {
		st.conversations = append(st.conversations, c.ToDomain())
	}
	for _, p := range s.Pods {
		st.pods = append(st.pods, p.ToDomain())
	}
	for _, e := range s.Events {
		st.events = append(st.events, e.ToDomain())
	}
	return st
}

// NewDefaultEntityStore loads the embedded sample snapshot.
func NewDefaultEntityStore() (*EntityStore, error) {
	s, err := model.DefaultSnapshot()
	if err != nil {
		return nil, err
	}
	return NewEntityStore(s), nil
}

func (s *EntityStore) CurrentUser() domain.User {
	return s.users[s.userIdx[s.currentUserID]]
}

func (s *EntityStore) CurrentUserID() string { return s.currentUserID }

// Users returns every member except the current user, in store order.
func (s *EntityStore) Users() []domain.User {
	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		if u.ID != s.currentUserID {
			out = append(out, u)
		}
	}
	return out
}

func (s *EntityStore) User(id string) (domain.User, bool) {
	i, ok := s.userIdx[id]
	if !ok {
		return domain.User{}, false
	}
	return s.users[i], true
}

func (s *EntityStore) Companies() []domain.Company { return clone(s.companies) }
func (s *EntityStore) Posts() []domain.Post { return clone(s.posts) }
func (s *EntityStore) Jobs() []domain.Job { return clone(s.jobs) }
func (s *EntityStore) Messages() []domain.Message { return clone(s.messages) }
func (s *EntityStore) Pods() []domain.Pod { return clone(s.pods) }
func (s *EntityStore) Events() []domain.CalendarEvent { return clone(s.events) }
func (s *EntityStore) Conversations() []domain.Conversation { return clone(s.conversations) }

func (s *EntityStore) Company(id string) (domain.Company, bool) {
	return find(s.companies, func(c domain.Company) bool { return c.ID == id })
}

func (s *EntityStore) Post(id string) (domain.Post, bool) {
	return find(s.posts, func(p domain.Post) bool { return p.ID == id })
}

func (s *EntityStore) Job(id string) (domain.Job, bool) {
	return find(s.jobs, func(j domain.Job) bool { return j.ID == id })
}

func (s *EntityStore) Message(id string) (domain.Message, bool) {
	return find(s.messages, func(m domain.Message) bool { return m.ID == id })
}

func (s *EntityStore) Conversation(id string) (domain.Conversation, bool) {
	return find(s.conversations, func(c domain.Conversation) bool { return c.ID == id })
}

func (s *EntityStore) Pod(id string) (domain.Pod, bool) {
	return find(s.pods, func(p domain.Pod) bool { return p.ID == id })
}

func (s *EntityStore) Event(id string) (domain.CalendarEvent, bool) {
	return find(s.events, func(e domain.CalendarEvent) bool { return e.ID == id })
}

// Employees resolves a company's employee ids, skipping unknown ids.
func (s *EntityStore) Employees(c domain.Company) []domain.User {
	out := []domain.User{}
	for _, id := range c.EmployeeIDs {
		if u, ok := s.User(id); ok {
			out = append(out, u)
		}
	}
	return out
}

// MessagesForConversation returns the messages exchanged between the current
// user and the conversation's participant, oldest first. Messages with equal
// timestamps keep store order.
func (s *EntityStore) MessagesForConversation(c domain.Conversation) []domain.Message {
	me := s.currentUserID
	out := []domain.Message{}
	for _, m := range s.messages {
		if (m.SenderID == c.ParticipantID && m.RecipientID == me) ||
			(m.SenderID == me && m.RecipientID == c.ParticipantID) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// MessagesForConversationID is MessagesForConversation by id; an unknown id
// yields an empty list.
func (s *EntityStore) MessagesForConversationID(id string) []domain.Message {
	c, ok := s.Conversation(id)
	if !ok {
		return []domain.Message{}
	}
	return s.MessagesForConversation(c)
}

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func find[T any](in []T, match func(T) bool) (T, bool) {
	for _, v := range in {
		if match(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}
