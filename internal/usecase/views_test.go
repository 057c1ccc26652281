package usecase

import (
	"testing"

	"proconnect/internal/domain"
)

func TestConnections_SplitsSampleData(t *testing.T) {
	t.Parallel()

	page := NewViews(newStore(t)).Connections("")
	if len(page.Connections) != 2 {
		t.Fatalf("expected 2 connections, got %d", len(page.Connections))
	}
	if len(page.Suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(page.Suggestions))
	}
	seen := map[string]bool{}
	for _, u := range append(page.Connections, page.Suggestions...) {
		if seen[u.ID] {
			t.Fatalf("user %s appears in both views", u.ID)
		}
		seen[u.ID] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected union of 3 users, got %d", len(seen))
	}
	if page.Stats.Connections != 2 || page.Stats.Suggestions != 1 {
		t.Fatalf("unexpected stats %+v", page.Stats)
	}
}

func TestConnections_QueryAppliesToBothHalves(t *testing.T) {
	t.Parallel()

	page := NewViews(newStore(t)).Connections("google")
	if len(page.Connections) != 0 || len(page.Suggestions) != 1 {
		t.Fatalf("expected only Michael Chen in suggestions, got %+v", page)
	}
	if page.Stats.Connections != 2 {
		t.Fatalf("stats must count unfiltered connections, got %d", page.Stats.Connections)
	}
}

func TestHome_FeedAndSuggestions(t *testing.T) {
	t.Parallel()

	home := NewViews(newStore(t)).Home()
	if len(home.Feed) != 3 {
		t.Fatalf("expected 3 feed items, got %d", len(home.Feed))
	}
	if home.Feed[0].Author.Name != "Sarah Johnson" || home.Feed[0].Annotation != "shared an achievement" {
		t.Fatalf("unexpected first feed item %+v", home.Feed[0])
	}
	if home.Feed[1].Annotation != "" {
		t.Fatalf("update posts carry no annotation, got %q", home.Feed[1].Annotation)
	}
	if len(home.Suggestions) != 1 || home.Suggestions[0].Name != "Michael Chen" {
		t.Fatalf("unexpected suggestions %+v", home.Suggestions)
	}
	if home.CurrentUser.ID != "current" {
		t.Fatalf("expected current user, got %s", home.CurrentUser.ID)
	}
}

func TestProfile(t *testing.T) {
	t.Parallel()

	v := NewViews(newStore(t))
	self, ok := v.Profile("")
	if !ok || !self.IsSelf || self.User.Name != "Alex Thompson" {
		t.Fatalf("expected own profile, got %+v", self)
	}
	other, ok := v.Profile("2")
	if !ok || other.IsSelf || other.User.Name != "Michael Chen" {
		t.Fatalf("expected Michael Chen, got %+v", other)
	}
	if _, ok := v.Profile("404"); ok {
		t.Fatalf("expected unknown profile to report false")
	}
}

func jobID(j domain.Job) string { return j.ID }

func TestJobs_QueryAndLocation(t *testing.T) {
	t.Parallel()

	v := NewViews(newStore(t))

	all := v.Jobs(JobsQuery{})
	if all.Tab != TabAll || len(all.Jobs) != 4 {
		t.Fatalf("expected all 4 jobs, got %v", ids(all.Jobs, jobID))
	}

	product := v.Jobs(JobsQuery{Query: "product"})
	if got := ids(product.Jobs, jobID); len(got) != 2 || got[0] != "1" || got[1] != "3" {
		t.Fatalf("expected jobs [1 3], got %v", got)
	}

	// location is ANDed with the text query
	sf := v.Jobs(JobsQuery{Query: "product", Location: "san francisco"})
	if got := ids(sf.Jobs, jobID); len(got) != 1 || got[0] != "1" {
		t.Fatalf("expected job [1], got %v", got)
	}

	// company matches too
	adobe := v.Jobs(JobsQuery{Query: "ADOBE"})
	if got := ids(adobe.Jobs, jobID); len(got) != 1 || got[0] != "4" {
		t.Fatalf("expected job [4], got %v", got)
	}
}

func TestJobs_Tabs(t *testing.T) {
	t.Parallel()

	v := NewViews(newStore(t))

	saved := v.Jobs(JobsQuery{Query: "nothing matches", Tab: TabSaved})
	if got := ids(saved.Jobs, jobID); len(got) != 2 || got[0] != "2" || got[1] != "4" {
		t.Fatalf("expected saved jobs [2 4], got %v", got)
	}
	if saved.Counts.All != 0 || saved.Counts.Saved != 2 {
		t.Fatalf("unexpected counts %+v", saved.Counts)
	}

	applied := v.Jobs(JobsQuery{Tab: TabApplied})
	if applied.Jobs == nil || len(applied.Jobs) != 0 {
		t.Fatalf("expected empty applied tab, got %#v", applied.Jobs)
	}

	unknown := v.Jobs(JobsQuery{Tab: "bogus"})
	if unknown.Tab != TabAll {
		t.Fatalf("unknown tab should fall back to all, got %q", unknown.Tab)
	}
}

func podID(p domain.Pod) string { return p.ID }

func TestPods_CategoryFilter(t *testing.T) {
	t.Parallel()

	v := NewViews(newStore(t))

	for _, q := range []string{"", "design", "SYSTEMS"} {
		got := v.Pods(q, "Design")
		if len(got) != 1 || got[0].Title != "Design Systems" {
			t.Fatalf("query %q: expected only Design Systems, got %v", q, ids(got, podID))
		}
	}

	if got := v.Pods("", AllCategories); len(got) != 4 {
		t.Fatalf("expected all 4 pods for All, got %d", len(got))
	}

	text := v.Pods("tech", AllCategories)
	if got := ids(text, podID); len(got) != 1 || got[0] != "1" {
		t.Fatalf("expected All to return the text-filtered set [1], got %v", got)
	}

	if got := v.Pods("tech", "Design"); len(got) != 0 {
		t.Fatalf("category and text are ANDed, got %v", ids(got, podID))
	}
}

func TestConversations_FilterByParticipant(t *testing.T) {
	t.Parallel()

	v := NewViews(newStore(t))
	if got := v.Conversations(""); len(got) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(got))
	}
	got := v.Conversations("emily")
	if len(got) != 1 || got[0].Participant.Name != "Emily Rodriguez" {
		t.Fatalf("expected Emily's conversation, got %+v", got)
	}
	if last := got[0].LastMessage; last == nil || last.ID != "3" || last.SenderID != "3" {
		t.Fatalf("expected Emily's message as the preview, got %+v", last)
	}
}
