package smodel

import "time"

const (
	NegotiationOriginDirectHire = "direct_hire"
	NegotiationOriginRequest    = "request"
	NegotiationOriginJobOffer   = "job_offer"
)

const (
	NegotiationStatusInProgress = "in_progress"
	NegotiationStatusAgreed     = "agreed"
	NegotiationStatusCompleted  = "completed"
	NegotiationStatusDeclined   = "declined"
)

// Negotiation is a proposed engagement between one client and one freelancer.
// The status moves to agreed only once both agreement flags are set, and
// declined is terminal.
type Negotiation struct {
	ID                int         `json:"id"`
	UUID              string      `json:"uuid"`
	OriginType        string      `json:"origin_type"`
	RequestID         *int        `json:"request_id"`
	Request           *Request    `json:"request,omitempty" gorm:"foreignKey:RequestID;references:ID"`
	ClientID          int         `json:"client_id"`
	Client            *Client     `json:"client" gorm:"foreignKey:ClientID;references:ID"`
	FreelancerID      int         `json:"freelancer_id"`
	Freelancer        *Freelancer `json:"freelancer" gorm:"foreignKey:FreelancerID;references:ID"`
	ClientDescription string      `json:"client_description"`
	ClientAgreed      bool        `json:"client_agreed"`
	FreelancerAgreed  bool        `json:"freelancer_agreed"`
	DeclinedByID      *int        `json:"declined_by_id"`
	DeclinedBy        *User       `json:"declined_by,omitempty" gorm:"foreignKey:DeclinedByID;references:ID"`
	DeclineReason     string      `json:"decline_reason"`
	Status            string      `json:"status"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

func (n *Negotiation) IsAgreed() bool {
	return n.ClientAgreed && n.FreelancerAgreed
}

func (n *Negotiation) IsDeclined() bool {
	return n.Status == NegotiationStatusDeclined
}
