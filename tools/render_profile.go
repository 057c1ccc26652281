package main

import (
	"fmt"
	"os"
	"path/filepath"

	"proconnect/internal/adapter/repository"
	"proconnect/internal/usecase"
)

// Writes a member's profile as standalone HTML. Usage:
//
//	go run ./tools [user-id] [out.html]
//
// The current user is rendered when no id is given.
func main() {
	userID := ""
	out := filepath.Join("out", "profile.html")
	if len(os.Args) > 1 {
		userID = os.Args[1]
	}
	if len(os.Args) > 2 {
		out = os.Args[2]
	}

	store, err := repository.NewDefaultEntityStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load snapshot: %v\n", err)
		os.Exit(2)
	}
	exp, err := usecase.NewProfileExporter(store, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "exporter: %v\n", err)
		os.Exit(2)
	}
	html, err := exp.ExportHTML(userID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create dir: %v\n", err)
		os.Exit(2)
	}
	if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", out)
}
