package smodel

import "time"

// Deliverable is one submitted artifact on a project phase. Submissions are
// append-only, resubmitting a phase adds another row.
type Deliverable struct {
	ID          int       `json:"id"`
	PhaseID     int       `json:"phase_id"`
	Title       string    `json:"title"`
	Attachment  string    `json:"attachment"`
	TextContent string    `json:"text_content"`
	SubmittedAt time.Time `json:"submitted_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (d *Deliverable) IsEmpty() bool {
	return d.Title == "" && d.Attachment == "" && d.TextContent == ""
}
