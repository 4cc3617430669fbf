package kafka

import "time"

// InquiryEvent describes a lifecycle change of a stored inquiry
type InquiryEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	InquiryID     uint      `json:"inquiry_id"`
	Status        string    `json:"status,omitempty"`
	CustomerRefID int64     `json:"customer_ref_id,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeInquiryCreated = "inquiry.created"
	EventTypeInquiryUpdated = "inquiry.updated"
	EventTypeInquiryDeleted = "inquiry.deleted"
)

// Kafka topics
const (
	TopicInquiryLifecycle = "inquiry-lifecycle"
)
