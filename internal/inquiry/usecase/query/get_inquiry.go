package query

import (
	"context"
	"errors"

	"github.com/iprody08/inquiry-service/internal/inquiry/domain"
	"github.com/iprody08/inquiry-service/internal/inquiry/dto"
)

// GetInquiryQuery represents the query to get an inquiry by ID
type GetInquiryQuery struct {
	ID uint
}

// GetInquiryHandler handles get inquiry query
type GetInquiryHandler struct {
	repo domain.InquiryRepository
}

// NewGetInquiryHandler creates a new get inquiry handler
func NewGetInquiryHandler(repo domain.InquiryRepository) *GetInquiryHandler {
	return &GetInquiryHandler{repo: repo}
}

// Handle executes the get inquiry query and fails with
// domain.ErrInquiryNotFound when the id has no record. Zero is a
// well-formed id that is simply never stored.
func (h *GetInquiryHandler) Handle(ctx context.Context, query GetInquiryQuery) (*dto.Inquiry, error) {
	inquiry, err := h.repo.FindByID(ctx, query.ID)
	if err != nil {
		return nil, err
	}

	return dto.EntityToDto(inquiry), nil
}

// HandleOptional is the non-failing variant: an absent id yields (nil, nil)
// so call sites can decide how to treat the gap.
func (h *GetInquiryHandler) HandleOptional(ctx context.Context, query GetInquiryQuery) (*dto.Inquiry, error) {
	inquiry, err := h.Handle(ctx, query)
	if errors.Is(err, domain.ErrInquiryNotFound) {
		return nil, nil
	}
	return inquiry, err
}
