package command

import (
	"context"
	"fmt"

	"github.com/iprody08/inquiry-service/internal/inquiry/domain"
	"github.com/iprody08/inquiry-service/internal/inquiry/dto"
)

// UpdateInquiryCommand represents the command to replace a stored inquiry.
// The path id wins over whatever id the body carries.
type UpdateInquiryCommand struct {
	ID      uint
	Inquiry dto.Inquiry
}

// UpdateInquiryHandler handles inquiry update command
type UpdateInquiryHandler struct {
	repo domain.InquiryRepository
}

// NewUpdateInquiryHandler creates a new update inquiry handler
func NewUpdateInquiryHandler(repo domain.InquiryRepository) *UpdateInquiryHandler {
	return &UpdateInquiryHandler{repo: repo}
}

// Handle executes the update inquiry command. A missing target yields
// domain.ErrInquiryNotFound and leaves the store unchanged.
func (h *UpdateInquiryHandler) Handle(ctx context.Context, cmd UpdateInquiryCommand) (*dto.Inquiry, error) {
	if !cmd.Inquiry.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, cmd.Inquiry.Status)
	}

	existing, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	inquiry := dto.DtoToEntity(&cmd.Inquiry)
	inquiry.ID = existing.ID
	inquiry.CreatedAt = existing.CreatedAt

	if err := h.repo.Save(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("failed to update inquiry: %w", err)
	}

	return dto.EntityToDto(inquiry), nil
}
