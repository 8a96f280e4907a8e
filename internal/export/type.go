package export

import "time"

type Filter struct {
	Channel   string
	Status    string
	LeadID    string
	StartDate *time.Time
	EndDate   *time.Time
}

type ExportInput struct {
	Filter Filter
}

type ExportOutput struct {
	ObjectName  string
	DownloadURL string
	RowCount    int
}
