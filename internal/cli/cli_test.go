package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

func TestConnections_Text(t *testing.T) {
	t.Parallel()

	out, _, err := runCLI(t, []string{"connections", "--query", "sarah"})
	if err != nil {
		t.Fatalf("connections: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "Connections (1)") || !strings.Contains(s, "Sarah Johnson") {
		t.Fatalf("expected Sarah under connections, got:\n%s", s)
	}
	if !strings.Contains(s, "People you may know (0)") {
		t.Fatalf("expected no suggestions, got:\n%s", s)
	}
}

func TestJobs_JSON(t *testing.T) {
	t.Parallel()

	out, _, err := runCLI(t, []string{"jobs", "--json", "-q", "product", "-l", "san francisco"})
	if err != nil {
		t.Fatalf("jobs: %v", err)
	}
	var page struct {
		Jobs []struct {
			ID string `json:"id"`
		} `json:"jobs"`
	}
	if err := json.Unmarshal(out, &page); err != nil {
		t.Fatalf("decode %s: %v", out, err)
	}
	if len(page.Jobs) != 1 || page.Jobs[0].ID != "1" {
		t.Fatalf("expected job 1 only, got %+v", page.Jobs)
	}
}

func TestPods_SelectOutsideFilter(t *testing.T) {
	t.Parallel()

	if _, _, err := runCLI(t, []string{"pods", "-c", "Design", "--select", "1"}); err == nil {
		t.Fatalf("expected error selecting a filtered-out pod")
	}
	out, _, err := runCLI(t, []string{"pods", "-c", "Design", "--select", "4"})
	if err != nil {
		t.Fatalf("pods: %v", err)
	}
	if !strings.Contains(string(out), "UI/UX design patterns") {
		t.Fatalf("expected pod details, got:\n%s", out)
	}
}

func TestPods_JSONIncludesActive(t *testing.T) {
	t.Parallel()

	out, _, err := runCLI(t, []string{"pods", "--json", "-c", "Design", "--select", "4"})
	if err != nil {
		t.Fatalf("pods: %v", err)
	}
	var v struct {
		Active *struct {
			ID string `json:"id"`
		} `json:"active"`
		Pods []json.RawMessage `json:"pods"`
	}
	if err := json.Unmarshal(out, &v); err != nil {
		t.Fatalf("decode %s: %v", out, err)
	}
	if v.Active == nil || v.Active.ID != "4" || len(v.Pods) != 1 {
		t.Fatalf("expected pod 4 active in JSON output, got %s", out)
	}

	out, _, err = runCLI(t, []string{"pods", "--json"})
	if err != nil {
		t.Fatalf("pods: %v", err)
	}
	if !strings.Contains(string(out), `"active":null`) {
		t.Fatalf("expected null active pod without --select, got %s", out)
	}
}

func TestCalendar_Date(t *testing.T) {
	t.Parallel()

	out, _, err := runCLI(t, []string{"calendar", "--date", "2024-01-18"})
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "January 2024") || !strings.Contains(s, "Events on Thursday, January 18, 2024") {
		t.Fatalf("unexpected calendar output:\n%s", s)
	}
	if strings.Count(s, "Product Manager Interview") != 2 {
		t.Fatalf("expected the interview in the grid and the day list, got:\n%s", s)
	}

	if _, _, err := runCLI(t, []string{"calendar", "--date", "18.01.2024"}); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}

func TestMessages_Conversation(t *testing.T) {
	t.Parallel()

	out, _, err := runCLI(t, []string{"messages", "--conversation", "2"})
	if err != nil {
		t.Fatalf("messages: %v", err)
	}
	if !strings.Contains(string(out), "Emily Rodriguez") {
		t.Fatalf("expected Emily's conversation, got:\n%s", out)
	}
	if _, _, err := runCLI(t, []string{"messages", "--conversation", "42"}); err == nil {
		t.Fatalf("expected error for unknown conversation")
	}
}

func TestSnapshotFlag_RejectsDanglingReferences(t *testing.T) {
	t.Parallel()

	seed, err := os.ReadFile(filepath.Join("..", "model", "seed", "snapshot.json"))
	if err != nil {
		t.Fatalf("read seed: %v", err)
	}
	broken := strings.Replace(string(seed), `"authorId": "1"`, `"authorId": "ghost"`, 1)
	path := filepath.Join(t.TempDir(), "snap.json")
	if err := os.WriteFile(path, []byte(broken), 0o600); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}
	_, _, err = runCLI(t, []string{"connections", "--snapshot", path})
	if err == nil || !strings.Contains(err.Error(), "ghost") {
		t.Fatalf("expected dangling author error, got %v", err)
	}
}
