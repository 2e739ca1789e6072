package smodel

import "time"

const (
	ReportTypeClient     = "client"
	ReportTypeFreelancer = "freelancer"
	ReportTypePost       = "post"
	ReportTypeComment    = "comment"
	ReportTypeRequest    = "request"
)

const (
	ReportStatusPending  = "pending"
	ReportStatusResolved = "resolved"
)

type Report struct {
	ID         int       `json:"id"`
	ReporterID int       `json:"reporter_id"`
	Reporter   *User     `json:"reporter,omitempty" gorm:"foreignKey:ReporterID;references:ID"`
	Type       string    `json:"type"`
	TargetID   int       `json:"target_id"`
	Text       string    `json:"text"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
