package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"proconnect/internal/adapter/repository"
	"proconnect/internal/model"

	"github.com/spf13/cobra"
)

type App struct {
	Snapshot   string
	JSON       bool
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "netctl",
		Short:        "Query the professional network snapshot from the terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # People you know and people you may know
  netctl connections --query sarah

  # Open roles in San Francisco
  netctl jobs --query product --location "san francisco"

  # A day on the calendar
  netctl calendar --date 2024-01-18
`),
	}

	cmd.PersistentFlags().StringVar(&app.Snapshot, "snapshot", envOr("NETCTL_SNAPSHOT", ""), "Path to a snapshot JSON file (default: built-in sample)")
	cmd.PersistentFlags().BoolVar(&app.JSON, "json", false, "Print JSON instead of text")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newConnectionsCmd(app))
	cmd.AddCommand(newJobsCmd(app))
	cmd.AddCommand(newPodsCmd(app))
	cmd.AddCommand(newCalendarCmd(app))
	cmd.AddCommand(newMessagesCmd(app))

	return cmd
}

func loadStore(app *App) (*repository.EntityStore, error) {
	if app.Snapshot == "" {
		return repository.NewDefaultEntityStore()
	}
	raw, err := os.ReadFile(app.Snapshot)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	snap, err := model.LoadSnapshot(raw)
	if err != nil {
		return nil, err
	}
	return repository.NewEntityStore(snap), nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeJSON(cmd *cobra.Command, app *App, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if app.PrettyJSON {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
