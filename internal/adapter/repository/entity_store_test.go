package repository

import (
	"testing"
	"time"

	"proconnect/internal/model"
)

func newTestStore(t *testing.T) *EntityStore {
	t.Helper()
	st, err := NewDefaultEntityStore()
	if err != nil {
		t.Fatalf("NewDefaultEntityStore: %v", err)
	}
	return st
}

func TestMessagesForConversation_SarahReturnsBothInOrder(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	conv, ok := st.Conversation("1")
	if !ok {
		t.Fatalf("expected conversation 1")
	}
	msgs := st.MessagesForConversation(conv)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].ID != "1" || msgs[1].ID != "2" {
		t.Fatalf("expected messages [1 2], got [%s %s]", msgs[0].ID, msgs[1].ID)
	}
}

func TestMessagesForConversation_EmilyReturnsHerMessage(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	msgs := st.MessagesForConversationID("2")
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].SenderID != "3" {
		t.Fatalf("expected message authored by Emily (3), got sender %s", msgs[0].SenderID)
	}
}

func TestMessagesForConversation_UnknownIDIsEmpty(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	msgs := st.MessagesForConversationID("nope")
	if msgs == nil || len(msgs) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", msgs)
	}
}

func TestMessagesForConversation_SortsByTimestamp(t *testing.T) {
	t.Parallel()

	later := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	earlier := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := &model.Snapshot{
		CurrentUserID: "me",
		Users: []model.User{
			{ID: "me", Name: "Me"},
			{ID: "them", Name: "Them"},
		},
		Messages: []model.Message{
			{ID: "b", SenderID: "me", RecipientID: "them", Timestamp: later},
			{ID: "a", SenderID: "them", RecipientID: "me", Timestamp: earlier},
			{ID: "c", SenderID: "them", RecipientID: "me", Timestamp: later},
		},
		Conversations: []model.Conversation{{ID: "c1", ParticipantID: "them"}},
	}
	st := NewEntityStore(s)

	msgs := st.MessagesForConversationID("c1")
	got := []string{}
	for _, m := range msgs {
		got = append(got, m.ID)
	}
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("expected [a b c], got %v", got)
	}
}

func TestUsers_ExcludesCurrentUser(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	for _, u := range st.Users() {
		if u.ID == st.CurrentUserID() {
			t.Fatalf("Users() must not include the current user")
		}
	}
	if got := st.CurrentUser().Name; got != "Alex Thompson" {
		t.Fatalf("expected current user Alex Thompson, got %q", got)
	}
}

func TestAccessors_ReturnCopies(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	jobs := st.Jobs()
	jobs[0].Title = "changed"
	if j, _ := st.Job(jobs[0].ID); j.Title == "changed" {
		t.Fatalf("mutating a returned slice must not change the store")
	}
}

func TestLookups_UnknownIDs(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	if _, ok := st.User("missing"); ok {
		t.Fatalf("expected unknown user lookup to report false")
	}
	if _, ok := st.Pod("missing"); ok {
		t.Fatalf("expected unknown pod lookup to report false")
	}
	c, ok := st.Company("1")
	if !ok {
		t.Fatalf("expected company 1")
	}
	emps := st.Employees(c)
	if len(emps) != 1 || emps[0].Name != "Sarah Johnson" {
		t.Fatalf("expected TechCorp employee Sarah Johnson, got %+v", emps)
	}
}

func TestLookups_MessagesEventsCompanies(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	if m, ok := st.Message("2"); !ok || m.SenderID != "current" {
		t.Fatalf("expected message 2 from the current user, got %+v ok=%v", m, ok)
	}
	if _, ok := st.Message("99"); ok {
		t.Fatalf("expected unknown message lookup to report false")
	}
	if e, ok := st.Event("1"); !ok || e.Title != "Product Manager Interview" {
		t.Fatalf("expected event 1, got %+v ok=%v", e, ok)
	}
	if _, ok := st.Event("99"); ok {
		t.Fatalf("expected unknown event lookup to report false")
	}
	companies := st.Companies()
	if len(companies) != 2 {
		t.Fatalf("expected 2 companies, got %d", len(companies))
	}
	companies[0].Name = "changed"
	if c, _ := st.Company(companies[0].ID); c.Name == "changed" {
		t.Fatalf("mutating returned companies must not change the store")
	}
	if got := len(st.Messages()); got != 3 {
		t.Fatalf("expected 3 messages, got %d", got)
	}
}
