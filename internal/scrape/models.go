package scrape

import (
	"github.com/Ziink4/Jerk/models"
)

type Job struct {
	URL string
}

// Result holds the outcome of a processed page. Exactly one of Record
// and Error is set: a page either produced a record or failed at the
// fetch/parse boundary.
type Result struct {
	URL       string
	PageName  string
	Record    *models.Record
	Error     error
	ErrorType string
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalURLs        int
	Successful       int
	Failed           int
	TotalTimeSeconds float64
}
