package command

import (
	"context"
	"fmt"

	"github.com/iprody08/inquiry-service/internal/inquiry/domain"
	"github.com/iprody08/inquiry-service/internal/inquiry/dto"
)

// CreateInquiryCommand represents the command to create a new inquiry
type CreateInquiryCommand struct {
	Inquiry dto.Inquiry
}

// CreateInquiryHandler handles inquiry creation command
type CreateInquiryHandler struct {
	repo domain.InquiryRepository
}

// NewCreateInquiryHandler creates a new create inquiry handler
func NewCreateInquiryHandler(repo domain.InquiryRepository) *CreateInquiryHandler {
	return &CreateInquiryHandler{repo: repo}
}

// Handle executes the create inquiry command. The store assigns the id when
// the incoming record carries none.
func (h *CreateInquiryHandler) Handle(ctx context.Context, cmd CreateInquiryCommand) (*dto.Inquiry, error) {
	if !cmd.Inquiry.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, cmd.Inquiry.Status)
	}

	inquiry := dto.DtoToEntity(&cmd.Inquiry)
	if err := h.repo.Save(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}

	return dto.EntityToDto(inquiry), nil
}
