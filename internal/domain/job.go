package domain

// Job is a listing on the jobs board. Bookmarked is a client-local flag
// carried by the snapshot; nothing writes it back.
type Job struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Type         string   `json:"type"`
	Salary       string   `json:"salary,omitempty"`
	PostedTime   string   `json:"posted_time"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Bookmarked   bool     `json:"bookmarked"`
	Applicants   int      `json:"applicants"`
}
