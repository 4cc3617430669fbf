package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrInquiryNotFound is returned when the requested inquiry does not exist
var ErrInquiryNotFound = errors.New("inquiry not found")

// ErrInvalidStatus is returned when a status value is outside the enumerated set
var ErrInvalidStatus = errors.New("invalid inquiry status")

// InquiryStatus is the workflow state of an inquiry
type InquiryStatus string

const (
	StatusNew        InquiryStatus = "NEW"
	StatusInProgress InquiryStatus = "IN_PROGRESS"
	StatusClosed     InquiryStatus = "CLOSED"
)

// ParseInquiryStatus converts a raw string into an InquiryStatus
func ParseInquiryStatus(s string) (InquiryStatus, error) {
	status := InquiryStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}

// Valid reports whether the status is one of the enumerated values
func (s InquiryStatus) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// UnmarshalJSON rejects status values outside the enumerated set
func (s *InquiryStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	status, err := ParseInquiryStatus(raw)
	if err != nil {
		return err
	}

	*s = status
	return nil
}

// Inquiry represents a customer purchase request being tracked by the service
type Inquiry struct {
	ID            uint          `gorm:"primaryKey"`
	Status        InquiryStatus `gorm:"type:varchar(32);not null"`
	Comment       string
	Note          string
	CustomerRefID int64     `gorm:"column:customer_ref_id"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name
func (Inquiry) TableName() string {
	return "inquiries"
}

// InquiryFilter narrows list queries; zero-valued fields impose no restriction.
// Status matches exactly, comment and note by case-insensitive substring.
type InquiryFilter struct {
	Status  *InquiryStatus
	Comment string
	Note    string
}

// InquiryRepository defines the contract for inquiry data access
type InquiryRepository interface {
	FindByID(ctx context.Context, id uint) (*Inquiry, error)
	FindAll(ctx context.Context, pageNo, pageSize int, sortBy, sortDirection string, filter InquiryFilter) ([]Inquiry, error)
	Save(ctx context.Context, inquiry *Inquiry) error
	DeleteByID(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
