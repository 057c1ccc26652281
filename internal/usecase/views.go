package usecase

import "proconnect/internal/domain"

// Views derives the read models of each screen from an EntityStore. It holds
// no view state; callers pass the current query and filters on every call.
type Views struct {
	store EntityStore
}

func NewViews(store EntityStore) *Views {
	return &Views{store: store}
}

type NetworkStats struct {
	Connections int `json:"connections"`
	Suggestions int `json:"suggestions"`
}

type ConnectionsPage struct {
	Query       string        `json:"query"`
	Connections []domain.User `json:"connections"`
	Suggestions []domain.User `json:"suggestions"`
	Stats       NetworkStats  `json:"stats"`
}

// Connections splits members on IsConnected and filters both halves by the
// same query. Stats count the unfiltered halves.
func (v *Views) Connections(query string) ConnectionsPage {
	users := v.store.Users()
	connected := Filter(users, "", UserFields, IsConnected)
	suggested := Filter(users, "", UserFields, NotConnected)
	return ConnectionsPage{
		Query:       query,
		Connections: Filter(connected, query, UserFields),
		Suggestions: Filter(suggested, query, UserFields),
		Stats:       NetworkStats{Connections: len(connected), Suggestions: len(suggested)},
	}
}

type FeedItem struct {
	Post       domain.Post `json:"post"`
	Author     domain.User `json:"author"`
	Annotation string      `json:"annotation,omitempty"`
}

type HomePage struct {
	CurrentUser domain.User   `json:"current_user"`
	Feed        []FeedItem    `json:"feed"`
	Suggestions []domain.User `json:"suggestions"`
}

const homeSuggestionLimit = 3

func (v *Views) Home() HomePage {
	posts := v.store.Posts()
	feed := make([]FeedItem, 0, len(posts))
	for _, p := range posts {
		author, _ := v.store.User(p.AuthorID)
		feed = append(feed, FeedItem{Post: p, Author: author, Annotation: p.Type.Annotation()})
	}
	suggested := Filter(v.store.Users(), "", UserFields, NotConnected)
	if len(suggested) > homeSuggestionLimit {
		suggested = suggested[:homeSuggestionLimit]
	}
	return HomePage{CurrentUser: v.store.CurrentUser(), Feed: feed, Suggestions: suggested}
}

type ProfilePage struct {
	User   domain.User `json:"user"`
	IsSelf bool        `json:"is_self"`
}

// Profile shows the member with id, or the current user when id is empty.
func (v *Views) Profile(id string) (ProfilePage, bool) {
	if id == "" || id == v.store.CurrentUserID() {
		return ProfilePage{User: v.store.CurrentUser(), IsSelf: true}, true
	}
	u, ok := v.store.User(id)
	if !ok {
		return ProfilePage{}, false
	}
	return ProfilePage{User: u}, true
}

type JobsTab string

const (
	TabAll     JobsTab = "all"
	TabSaved   JobsTab = "saved"
	TabApplied JobsTab = "applied"
)

type JobsQuery struct {
	Query    string
	Location string
	Tab      JobsTab
}

type JobsCounts struct {
	All     int `json:"all"`
	Saved   int `json:"saved"`
	Applied int `json:"applied"`
}

type JobsPage struct {
	Tab    JobsTab      `json:"tab"`
	Jobs   []domain.Job `json:"jobs"`
	Counts JobsCounts   `json:"counts"`
}

// Jobs filters by title/company and location for the "all" tab. The saved
// tab lists every bookmarked job regardless of the search; nothing is ever
// applied to, so the applied tab is always empty.
func (v *Views) Jobs(q JobsQuery) JobsPage {
	jobs := v.store.Jobs()
	all := Filter(jobs, q.Query, JobFields, JobLocation(q.Location))
	saved := Filter(jobs, "", JobFields, Bookmarked)
	applied := []domain.Job{}

	page := JobsPage{
		Tab:    q.Tab,
		Counts: JobsCounts{All: len(all), Saved: len(saved), Applied: len(applied)},
	}
	switch q.Tab {
	case TabSaved:
		page.Jobs = saved
	case TabApplied:
		page.Jobs = applied
	default:
		page.Tab = TabAll
		page.Jobs = all
	}
	return page
}

// Pods filters pods by title/description and category.
func (v *Views) Pods(query, category string) []domain.Pod {
	return Filter(v.store.Pods(), query, PodFields, PodCategory(category))
}

type ConversationSummary struct {
	Conversation domain.Conversation `json:"conversation"`
	Participant  domain.User         `json:"participant"`
	LastMessage  *domain.Message     `json:"last_message,omitempty"`
}

// Conversations filters conversations by participant name.
func (v *Views) Conversations(query string) []ConversationSummary {
	all := make([]ConversationSummary, 0)
	for _, c := range v.store.Conversations() {
		p, _ := v.store.User(c.ParticipantID)
		sum := ConversationSummary{Conversation: c, Participant: p}
		if m, ok := v.store.Message(c.LastMessageID); ok {
			sum.LastMessage = &m
		}
		all = append(all, sum)
	}
	return Filter(all, query, func(s ConversationSummary) []string {
		return []string{s.Participant.Name}
	})
}
