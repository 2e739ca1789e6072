package smodel

import "time"

const (
	MediaEntityFreelancerCV          = "freelancer_cv"
	MediaEntityCompanyDocument       = "company_document"
	MediaEntityJobAttachment         = "job_attachment"
	MediaEntityRequestAttachment     = "request_attachment"
	MediaEntityNegotiationAttachment = "negotiation_attachment"
	MediaEntityPhaseDeliverable      = "phase_deliverable"
)

// MediaFileTypeDeleted tombstones a media row; the file URL is cleared but
// the row stays in storage.
const MediaFileTypeDeleted = "deleted"

type MediaFile struct {
	ID         int       `json:"id"`
	OwnerID    int       `json:"owner_id"`
	Owner      *User     `json:"owner,omitempty" gorm:"foreignKey:OwnerID;references:ID"`
	EntityType string    `json:"entity_type" gorm:"index:idx_media_entity"`
	EntityID   int       `json:"entity_id" gorm:"index:idx_media_entity"`
	FileURL    string    `json:"file_url"`
	FileType   string    `json:"file_type"`
	CreatedAt  time.Time `json:"created_at"`
}
