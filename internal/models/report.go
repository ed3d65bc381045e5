package models

import "time"

// ReportReason is the category a reporter assigns to a report.
type ReportReason string

const (
	ReportReasonSpam          ReportReason = "SPAM"
	ReportReasonHarassment    ReportReason = "HARASSMENT"
	ReportReasonInappropriate ReportReason = "INAPPROPRIATE"
	ReportReasonOther         ReportReason = "OTHER"
)

// Report represents a complaint filed by a user against exactly one target:
// either a blog or another user, never both and never neither.
type Report struct {
	ID             uint         `json:"id" gorm:"primaryKey"`
	BlogID         *uint        `json:"blog_id,omitempty" gorm:"index"`
	ReporterID     uint         `json:"reporter_id" gorm:"index;not null"`
	ReportedUserID *uint        `json:"reported_user_id,omitempty" gorm:"index"`
	Reason         ReportReason `json:"reason" gorm:"size:30;not null"`
	Details        string       `json:"details,omitempty" gorm:"size:500"`
	CreatedAt      time.Time    `json:"created_at"`
}

// CreateReportRequest defines the request body for filing a report
type CreateReportRequest struct {
	BlogID         *uint  `json:"blog_id"`
	ReportedUserID *uint  `json:"reported_user_id"`
	Reason         string `json:"reason" validate:"required,oneof=SPAM HARASSMENT INAPPROPRIATE OTHER"`
	Details        string `json:"details" validate:"omitempty,max=500"`
}
