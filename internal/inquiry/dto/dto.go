package dto

import (
	"github.com/iprody08/inquiry-service/internal/inquiry/domain"
)

// Inquiry is the wire representation of a stored inquiry
type Inquiry struct {
	ID            uint                 `json:"id"`
	Status        domain.InquiryStatus `json:"status"`
	Comment       string               `json:"comment"`
	Note          string               `json:"note"`
	CustomerRefID int64                `json:"customerRefId"`
}

// EntityToDto converts a persisted inquiry into its wire shape
func EntityToDto(inquiry *domain.Inquiry) *Inquiry {
	return &Inquiry{
		ID:            inquiry.ID,
		Status:        inquiry.Status,
		Comment:       inquiry.Comment,
		Note:          inquiry.Note,
		CustomerRefID: inquiry.CustomerRefID,
	}
}

// DtoToEntity converts a wire inquiry into its persisted shape
func DtoToEntity(inquiry *Inquiry) *domain.Inquiry {
	return &domain.Inquiry{
		ID:            inquiry.ID,
		Status:        inquiry.Status,
		Comment:       inquiry.Comment,
		Note:          inquiry.Note,
		CustomerRefID: inquiry.CustomerRefID,
	}
}

// EntitiesToDtos maps a result page into wire shapes
func EntitiesToDtos(inquiries []domain.Inquiry) []Inquiry {
	dtos := make([]Inquiry, 0, len(inquiries))
	for i := range inquiries {
		dtos = append(dtos, *EntityToDto(&inquiries[i]))
	}
	return dtos
}
