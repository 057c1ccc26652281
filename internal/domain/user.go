package domain

// User is a member profile. IsConnected is the only connection state; there
// is no pending or invited state.
type User struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Headline          string       `json:"headline"`
	Company           string       `json:"company"`
	Location          string       `json:"location"`
	Avatar            string       `json:"avatar,omitempty"`
	Bio               string       `json:"bio"`
	Skills            []string     `json:"skills"`
	Connections       int          `json:"connections"`
	IsConnected       bool         `json:"is_connected"`
	MutualConnections int          `json:"mutual_connections"`
	Experience        []Experience `json:"experience"`
	Education         []Education  `json:"education"`
}

// Experience is a role held by one user. Dates are year-month strings
// ("2021-03"); EndDate is empty while Current is set.
type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description"`
	Current     bool   `json:"current"`
}

type Education struct {
	ID          string `json:"id"`
	School      string `json:"school"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

type Company struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Industry    string   `json:"industry"`
	Size        string   `json:"size"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	EmployeeIDs []string `json:"employee_ids"`
}
