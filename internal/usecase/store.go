package usecase

import "proconnect/internal/domain"

// EntityStore is the read-only collection source used by views, selections
// and the command dispatcher.
type EntityStore interface {
	CurrentUser() domain.User
	CurrentUserID() string
	Users() []domain.User
	User(id string) (domain.User, bool)
	Posts() []domain.Post
	Post(id string) (domain.Post, bool)
	Jobs() []domain.Job
	Job(id string) (domain.Job, bool)
	Pods() []domain.Pod
	Pod(id string) (domain.Pod, bool)
	Conversations() []domain.Conversation
	Conversation(id string) (domain.Conversation, bool)
	Message(id string) (domain.Message, bool)
	MessagesForConversation(c domain.Conversation) []domain.Message
	MessagesForConversationID(id string) []domain.Message
	Events() []domain.CalendarEvent
}
