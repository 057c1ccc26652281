package usecase

import "proconnect/internal/domain"

// ConversationSelection is the messages screen state: the conversation list
// query and the active conversation.
type ConversationSelection struct {
	views    *Views
	store    EntityStore
	query    string
	activeID string
}

// NewConversationSelection selects the first conversation of the store, or
// nothing when there are none.
func NewConversationSelection(store EntityStore) *ConversationSelection {
	s := &ConversationSelection{views: NewViews(store), store: store}
	if convs := store.Conversations(); len(convs) > 0 {
		s.activeID = convs[0].ID
	}
	return s
}

func (s *ConversationSelection) SetQuery(q string) { s.query = q }

func (s *ConversationSelection) Query() string { return s.query }

// List returns the conversations matching the current query. The active
// conversation stays selected even when the query hides it.
func (s *ConversationSelection) List() []ConversationSummary {
	return s.views.Conversations(s.query)
}

// Select makes id the active conversation. Unknown ids leave the state
// unchanged and report false.
func (s *ConversationSelection) Select(id string) bool {
	if _, ok := s.store.Conversation(id); !ok {
		return false
	}
	s.activeID = id
	return true
}

func (s *ConversationSelection) Active() (domain.Conversation, bool) {
	if s.activeID == "" {
		return domain.Conversation{}, false
	}
	return s.store.Conversation(s.activeID)
}

// Messages returns the active conversation's messages, empty when nothing is
// selected.
func (s *ConversationSelection) Messages() []domain.Message {
	c, ok := s.Active()
	if !ok {
		return []domain.Message{}
	}
	return s.store.MessagesForConversation(c)
}

// PodSelection is the pods screen state. The active pod is always a member
// of the filtered set or nil.
type PodSelection struct {
	views    *Views
	store    EntityStore
	proj     Projection
	query    string
	category string
	activeID string
}

func NewPodSelection(store EntityStore) *PodSelection {
	pods := store.Pods()
	points := make([]domain.GeoPoint, 0, len(pods))
	for _, p := range pods {
		points = append(points, p.Location)
	}
	return &PodSelection{
		views:    NewViews(store),
		store:    store,
		proj:     NewProjection(points),
		category: AllCategories,
	}
}

func (s *PodSelection) Query() string { return s.query }

func (s *PodSelection) Category() string { return s.category }

func (s *PodSelection) SetQuery(q string) {
	s.query = q
	s.reconcile()
}

// SetCategory switches the category filter; blank means "All".
func (s *PodSelection) SetCategory(c string) {
	if c == "" {
		c = AllCategories
	}
	s.category = c
	s.reconcile()
}

func (s *PodSelection) Filtered() []domain.Pod {
	return s.views.Pods(s.query, s.category)
}

// Select activates pod id if it is in the filtered set.
func (s *PodSelection) Select(id string) bool {
	for _, p := range s.Filtered() {
		if p.ID == id {
			s.activeID = id
			return true
		}
	}
	return false
}

func (s *PodSelection) Clear() { s.activeID = "" }

func (s *PodSelection) Active() (domain.Pod, bool) {
	if s.activeID == "" {
		return domain.Pod{}, false
	}
	return s.store.Pod(s.activeID)
}

// Markers places the filtered pods on the map canvas.
func (s *PodSelection) Markers() []Marker {
	pods := s.Filtered()
	out := make([]Marker, 0, len(pods))
	for _, p := range pods {
		x, y := s.proj.Point(p.Location)
		out = append(out, Marker{PodID: p.ID, X: x, Y: y, Members: p.Members, IsActive: p.IsActive})
	}
	return out
}

func (s *PodSelection) reconcile() {
	if s.activeID == "" {
		return
	}
	for _, p := range s.Filtered() {
		if p.ID == s.activeID {
			return
		}
	}
	s.activeID = ""
}
