package cli

import (
	"fmt"
	"strings"
	"time"

	"proconnect/internal/domain"
	"proconnect/internal/model"
	"proconnect/internal/usecase"

	"github.com/spf13/cobra"
)

func newConnectionsCmd(app *App) *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "connections",
		Short: "List connections and suggestions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadStore(app)
			if err != nil {
				return err
			}
			page := usecase.NewViews(st).Connections(query)
			if app.JSON {
				return writeJSON(cmd, app, page)
			}

			s := newStyles(cmd.OutOrStdout())
			var b strings.Builder
			fmt.Fprintf(&b, "%s\n", s.title.Render(fmt.Sprintf("Connections (%d)", len(page.Connections))))
			writeUsers(&b, s, page.Connections)
			fmt.Fprintf(&b, "%s\n", s.title.Render(fmt.Sprintf("People you may know (%d)", len(page.Suggestions))))
			writeUsers(&b, s, page.Suggestions)
			fmt.Fprintf(&b, "%s\n", s.muted.Render(fmt.Sprintf("network: %d connections, %d suggestions", page.Stats.Connections, page.Stats.Suggestions)))
			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "Search name, headline or company")
	return cmd
}

func writeUsers(b *strings.Builder, s styles, users []domain.User) {
	if len(users) == 0 {
		fmt.Fprintf(b, "  %s\n", s.muted.Render("(none)"))
		return
	}
	for _, u := range users {
		fmt.Fprintf(b, "  %s  %s\n", s.name.Render(u.Name), s.muted.Render(u.Headline))
	}
}

func newJobsCmd(app *App) *cobra.Command {
	var q usecase.JobsQuery
	var tab string
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Search job postings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadStore(app)
			if err != nil {
				return err
			}
			q.Tab = usecase.JobsTab(tab)
			page := usecase.NewViews(st).Jobs(q)
			if app.JSON {
				return writeJSON(cmd, app, page)
			}

			s := newStyles(cmd.OutOrStdout())
			var b strings.Builder
			fmt.Fprintf(&b, "%s %s\n", s.title.Render("Jobs"),
				s.muted.Render(fmt.Sprintf("all %d · saved %d · applied %d", page.Counts.All, page.Counts.Saved, page.Counts.Applied)))
			if len(page.Jobs) == 0 {
				fmt.Fprintf(&b, "  %s\n", s.muted.Render("(no jobs)"))
			}
			for _, j := range page.Jobs {
				mark := " "
				if j.Bookmarked {
					mark = s.accent.Render("*")
				}
				fmt.Fprintf(&b, "%s %s  %s\n", mark, s.name.Render(j.Title), j.Company)
				fmt.Fprintf(&b, "    %s\n", s.muted.Render(strings.Join([]string{j.Location, j.Type, j.Salary, j.PostedTime}, " · ")))
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}
	cmd.Flags().StringVarP(&q.Query, "query", "q", "", "Search title or company")
	cmd.Flags().StringVarP(&q.Location, "location", "l", "", "Location substring")
	cmd.Flags().StringVar(&tab, "tab", string(usecase.TabAll), "Tab (all|saved|applied)")
	return cmd
}

func newPodsCmd(app *App) *cobra.Command {
	var query, category, selectID string
	cmd := &cobra.Command{
		Use:   "pods",
		Short: "List discussion pods and their map positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadStore(app)
			if err != nil {
				return err
			}
			sel := usecase.NewPodSelection(st)
			sel.SetQuery(query)
			sel.SetCategory(category)
			if selectID != "" && !sel.Select(selectID) {
				return fmt.Errorf("pod %s is not in the current results", selectID)
			}
			markers := sel.Markers()
			active, hasActive := sel.Active()
			if app.JSON {
				out := map[string]any{
					"category": sel.Category(),
					"pods":     sel.Filtered(),
					"markers":  markers,
					"active":   nil,
				}
				if hasActive {
					out["active"] = active
				}
				return writeJSON(cmd, app, out)
			}

			s := newStyles(cmd.OutOrStdout())
			var b strings.Builder
			fmt.Fprintf(&b, "%s %s\n", s.title.Render("Discussion pods"), s.muted.Render("category: "+sel.Category()))
			for i, p := range sel.Filtered() {
				m := markers[i]
				line := fmt.Sprintf("%s  %s  %d members  (%.2f%%, %.2f%%)",
					s.name.Render(p.Title), p.Location.Name, p.Members, m.X, m.Y)
				if p.IsActive {
					line += " " + s.accent.Render("live")
				}
				fmt.Fprintf(&b, "  %s\n", line)
			}
			if hasActive {
				fmt.Fprintf(&b, "%s\n", s.box.Render(active.Title+"\n"+active.Description))
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "Search title or description")
	cmd.Flags().StringVarP(&category, "category", "c", usecase.AllCategories, "Category ("+strings.Join(usecase.PodCategories, "|")+")")
	cmd.Flags().StringVar(&selectID, "select", "", "Show details of this pod")
	return cmd
}

func newCalendarCmd(app *App) *cobra.Command {
	var date, month string
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month of events or the events of one day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadStore(app)
			if err != nil {
				return err
			}
			cal := usecase.NewCalendarSelection(st, time.Now())
			if month != "" {
				m, err := time.Parse("2006-01", month)
				if err != nil {
					return fmt.Errorf("invalid --month %q, want YYYY-MM", month)
				}
				cal.ShowMonth(m)
			}
			if date != "" {
				d, err := time.Parse(model.DateLayout, date)
				if err != nil {
					return fmt.Errorf("invalid --date %q, want YYYY-MM-DD", date)
				}
				if month == "" {
					cal.ShowMonth(d)
				}
				cal.Select(d)
			}
			if app.JSON {
				return writeJSON(cmd, app, map[string]any{
					"month":           cal.Month().Format("2006-01"),
					"grid":            cal.Grid(),
					"selected_events": cal.SelectedEvents(),
				})
			}

			s := newStyles(cmd.OutOrStdout())
			var b strings.Builder
			fmt.Fprintf(&b, "%s\n", s.title.Render(cal.Month().Format("January 2006")))
			busy := 0
			for _, cell := range cal.Grid() {
				if len(cell.Events) == 0 {
					continue
				}
				busy++
				titles := make([]string, 0, len(cell.Events))
				for _, e := range cell.Events {
					titles = append(titles, e.Title)
				}
				if cell.More > 0 {
					titles = append(titles, fmt.Sprintf("+%d more", cell.More))
				}
				fmt.Fprintf(&b, "  %s  %s\n", s.name.Render(cell.Date), strings.Join(titles, ", "))
			}
			if busy == 0 {
				fmt.Fprintf(&b, "  %s\n", s.muted.Render("(no events this month)"))
			}
			if d, ok := cal.Selected(); ok {
				fmt.Fprintf(&b, "%s\n", s.title.Render("Events on "+d.Format("Monday, January 2, 2006")))
				evs := cal.SelectedEvents()
				if len(evs) == 0 {
					fmt.Fprintf(&b, "  %s\n", s.muted.Render("(no events)"))
				}
				for _, e := range evs {
					fmt.Fprintf(&b, "  %s %s  %s\n", s.accent.Render(e.Time), s.name.Render(e.Title),
						s.muted.Render(e.Company+" · "+e.Location))
				}
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Select a day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&month, "month", "", "Month to display (YYYY-MM)")
	return cmd
}

func newMessagesCmd(app *App) *cobra.Command {
	var query, conversation string
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "List conversations and read one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadStore(app)
			if err != nil {
				return err
			}
			sel := usecase.NewConversationSelection(st)
			sel.SetQuery(query)
			if conversation != "" && !sel.Select(conversation) {
				return fmt.Errorf("conversation not found: %s", conversation)
			}
			if app.JSON {
				active, _ := sel.Active()
				return writeJSON(cmd, app, map[string]any{
					"conversations": sel.List(),
					"active":        active.ID,
					"messages":      sel.Messages(),
				})
			}

			s := newStyles(cmd.OutOrStdout())
			var b strings.Builder
			fmt.Fprintf(&b, "%s\n", s.title.Render("Conversations"))
			for _, c := range sel.List() {
				unread := ""
				if c.Conversation.UnreadCount > 0 {
					unread = s.accent.Render(fmt.Sprintf(" (%d unread)", c.Conversation.UnreadCount))
				}
				fmt.Fprintf(&b, "  [%s] %s%s\n", c.Conversation.ID, s.name.Render(c.Participant.Name), unread)
			}
			if active, ok := sel.Active(); ok {
				fmt.Fprintf(&b, "%s\n", s.title.Render("Conversation "+active.ID))
				for _, m := range sel.Messages() {
					who := "You"
					if m.SenderID != st.CurrentUserID() {
						if u, ok := st.User(m.SenderID); ok {
							who = u.Name
						}
					}
					fmt.Fprintf(&b, "  %s %s\n    %s\n", s.name.Render(who),
						s.muted.Render(m.Timestamp.Format("Jan 2 15:04")), m.Content)
				}
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter conversations by participant name")
	cmd.Flags().StringVar(&conversation, "conversation", "", "Conversation to open (default: first)")
	return cmd
}
