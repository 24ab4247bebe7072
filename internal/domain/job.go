package domain

type StartJobRequest struct {
	Shop      string `json:"shop"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type StartDirectJobRequest struct {
	Marketplace string `json:"marketplace"`
	ClientID    string `json:"client_id"`
	ClientKey   string `json:"client_key"`
	PerfKey     string `json:"perf_key"`
	PerfSecret  string `json:"perf_secret"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type StartJobResponse struct {
	OK       bool   `json:"ok"`
	SheetURL string `json:"sheet_url,omitempty"`
	JobID    string `json:"job_id,omitempty"`
	Error    string `json:"error,omitempty"`
}
