package dashboard

import (
	"go-smbops/internal/contact"
	"go-smbops/internal/quote"
	"go-smbops/internal/task"
)

type Counts struct {
	Clients      int64 `json:"clients"`
	Quotes       int64 `json:"quotes"`
	TasksPending int64 `json:"tasks_pending"`
}

type SummaryResponse struct {
	RecentContacts []contact.ContactResponse `json:"recent_contacts"`
	RecentQuotes   []quote.QuoteResponse     `json:"recent_quotes"`
	RecentTasks    []task.TaskResponse       `json:"recent_tasks"`
	Counts         Counts                    `json:"counts"`
}
