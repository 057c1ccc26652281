package http

import (
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"time"

	"proconnect/internal/domain"
	"proconnect/internal/model"
	"proconnect/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	store      usecase.EntityStore
	views      *usecase.Views
	dispatcher *usecase.Dispatcher
	commands   usecase.CommandLog
	exporter   *usecase.ProfileExporter
	sessions   *Sessions
}

func NewHandler(store usecase.EntityStore, d *usecase.Dispatcher, cl usecase.CommandLog, e *usecase.ProfileExporter, s *Sessions) *Handler {
	return &Handler{store: store, views: usecase.NewViews(store), dispatcher: d, commands: cl, exporter: e, sessions: s}
}

// Register mounts every route on app. Unmatched paths get the not-found view.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/health", h.Health)

	api := app.Group("/api")
	v := api.Group("/views")
	v.Get("/home", h.Home)
	v.Get("/profile", h.Profile)
	v.Get("/connections", h.Connections)
	v.Get("/messages", h.Messages)
	v.Post("/messages/select/:id", h.SelectConversation)
	v.Get("/jobs", h.Jobs)
	v.Get("/calendar", h.Calendar)
	v.Post("/calendar/next", h.CalendarNext)
	v.Post("/calendar/prev", h.CalendarPrev)
	v.Get("/pods", h.Pods)
	v.Post("/pods/select/:id", h.SelectPod)
	v.Post("/pods/clear", h.ClearPod)

	api.Get("/conversations/:id/messages", h.ConversationMessages)
	api.Post("/commands", h.Command)
	api.Get("/commands", h.RecentCommands)
	api.Get("/profile/:id/export.pdf", h.ExportProfile)

	app.Use(h.NotFound)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"view": "not_found", "path": c.Path()})
}

func (h *Handler) Home(c *fiber.Ctx) error {
	return c.JSON(h.views.Home())
}

func (h *Handler) Profile(c *fiber.Ctx) error {
	page, ok := h.views.Profile(c.Query("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
	}
	return c.JSON(page)
}

func (h *Handler) Connections(c *fiber.Ctx) error {
	return c.JSON(h.views.Connections(c.Query("q")))
}

func (h *Handler) Jobs(c *fiber.Ctx) error {
	return c.JSON(h.views.Jobs(usecase.JobsQuery{
		Query:    c.Query("q"),
		Location: c.Query("location"),
		Tab:      usecase.JobsTab(c.Query("tab")),
	}))
}

// ConversationMessages looks up a conversation's messages without touching
// session state; unknown ids yield an empty list.
func (h *Handler) ConversationMessages(c *fiber.Ctx) error {
	id := c.Params("id")
	return c.JSON(fiber.Map{"conversation_id": id, "messages": h.store.MessagesForConversationID(id)})
}

// Command validates the body against the command schema and dispatches it.
func (h *Handler) Command(c *fiber.Ctx) error {
	body := c.Body()
	if err := model.ValidateCommand(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	var req usecase.CommandRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	res, err := h.dispatcher.Dispatch(c.UserContext(), req)
	if err != nil {
		log.Printf("warning: command %s failed: %v", res.CommandID, err)
	}
	switch res.Status {
	case domain.StatusAccepted:
		return c.Status(fiber.StatusAccepted).JSON(res)
	case domain.StatusRejected:
		return c.Status(fiber.StatusUnprocessableEntity).JSON(res)
	default:
		return c.Status(fiber.StatusBadGateway).JSON(res)
	}
}

const (
	defaultCommandLimit = 20
	maxCommandLimit     = 200
)

// RecentCommands lists recorded commands, newest first.
func (h *Handler) RecentCommands(c *fiber.Ctx) error {
	limit := defaultCommandLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxCommandLimit {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "limit must be between 1 and 200"})
		}
		limit = n
	}
	cmds, err := h.commands.Recent(c.UserContext(), limit)
	if err != nil {
		log.Printf("warning: read command log: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "command log unavailable"})
	}
	return c.JSON(fiber.Map{"commands": cmds})
}

func (h *Handler) ExportProfile(c *fiber.Ctx) error {
	pdf, err := h.exporter.ExportPDF(c.UserContext(), c.Params("id"))
	switch {
	case errors.Is(err, usecase.ErrNoRenderer):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, usecase.ErrUnknownUser):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		log.Printf("profile export failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "export failed"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="profile.pdf"`)
	return c.Send(pdf)
}

// withSession runs fn under the lock of the caller's session and echoes
// the session id back.
func (h *Handler) withSession(c *fiber.Ctx, fn func(*session) error) error {
	id, sess := h.sessions.Get(c.Get(sessionHeader))
	c.Set(sessionHeader, id.String())
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return fn(sess)
}

type messagesView struct {
	Query         string                        `json:"query"`
	Conversations []usecase.ConversationSummary `json:"conversations"`
	Active        *domain.Conversation          `json:"active"`
	Participant   *domain.User                  `json:"participant"`
	Messages      []domain.Message              `json:"messages"`
}

func (h *Handler) messagesView(s *session) messagesView {
	v := messagesView{
		Query:         s.convs.Query(),
		Conversations: s.convs.List(),
		Messages:      s.convs.Messages(),
	}
	if conv, ok := s.convs.Active(); ok {
		v.Active = &conv
		if u, ok := h.store.User(conv.ParticipantID); ok {
			v.Participant = &u
		}
	}
	return v
}

func (h *Handler) Messages(c *fiber.Ctx) error {
	return h.withSession(c, func(s *session) error {
		s.convs.SetQuery(c.Query("q"))
		return c.JSON(h.messagesView(s))
	})
}

func (h *Handler) SelectConversation(c *fiber.Ctx) error {
	return h.withSession(c, func(s *session) error {
		if !s.convs.Select(c.Params("id")) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "conversation not found"})
		}
		return c.JSON(h.messagesView(s))
	})
}

type calendarView struct {
	Month          string                 `json:"month"`
	Grid           []usecase.DayCell      `json:"grid"`
	SelectedDate   string                 `json:"selected_date,omitempty"`
	SelectedEvents []domain.CalendarEvent `json:"selected_events"`
	Upcoming       []domain.CalendarEvent `json:"upcoming"`
}

const upcomingLimit = 5

func calendarViewOf(cal *usecase.CalendarSelection) calendarView {
	v := calendarView{
		Month:          cal.Month().Format("2006-01"),
		Grid:           cal.Grid(),
		SelectedEvents: cal.SelectedEvents(),
		Upcoming:       cal.Upcoming(cal.Month(), upcomingLimit),
	}
	if d, ok := cal.Selected(); ok {
		v.SelectedDate = d.Format(model.DateLayout)
	}
	return v
}

// Calendar shows the session's month. ?date= selects that day and jumps to
// its month.
func (h *Handler) Calendar(c *fiber.Ctx) error {
	return h.withSession(c, func(s *session) error {
		if raw := c.Query("date"); raw != "" {
			d, err := time.Parse(model.DateLayout, raw)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date, want YYYY-MM-DD"})
			}
			s.calendar.ShowMonth(d)
			s.calendar.Select(d)
		}
		return c.JSON(calendarViewOf(s.calendar))
	})
}

func (h *Handler) CalendarNext(c *fiber.Ctx) error {
	return h.withSession(c, func(s *session) error {
		s.calendar.Next()
		return c.JSON(calendarViewOf(s.calendar))
	})
}

func (h *Handler) CalendarPrev(c *fiber.Ctx) error {
	return h.withSession(c, func(s *session) error {
		s.calendar.Prev()
		return c.JSON(calendarViewOf(s.calendar))
	})
}

type podsView struct {
	Query      string           `json:"query"`
	Category   string           `json:"category"`
	Categories []string         `json:"categories"`
	Pods       []domain.Pod     `json:"pods"`
	Markers    []usecase.Marker `json:"markers"`
	Active     *domain.Pod      `json:"active"`
}

func podsViewOf(sel *usecase.PodSelection) podsView {
	v := podsView{
		Query:      sel.Query(),
		Category:   sel.Category(),
		Categories: usecase.PodCategories,
		Pods:       sel.Filtered(),
		Markers:    sel.Markers(),
	}
	if p, ok := sel.Active(); ok {
		v.Active = &p
	}
	return v
}

func (h *Handler) Pods(c *fiber.Ctx) error {
	return h.withSession(c, func(s *session) error {
		s.pods.SetQuery(c.Query("q"))
		s.pods.SetCategory(c.Query("category"))
		return c.JSON(podsViewOf(s.pods))
	})
}

func (h *Handler) SelectPod(c *fiber.Ctx) error {
	return h.withSession(c, func(s *session) error {
		if !s.pods.Select(c.Params("id")) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "pod not in the current results"})
		}
		return c.JSON(podsViewOf(s.pods))
	})
}

// ClearPod closes the active pod's details.
func (h *Handler) ClearPod(c *fiber.Ctx) error {
	return h.withSession(c, func(s *session) error {
		s.pods.Clear()
		return c.JSON(podsViewOf(s.pods))
	})
}
