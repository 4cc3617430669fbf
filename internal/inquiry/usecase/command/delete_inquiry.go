package command

import (
	"context"
	"fmt"

	"github.com/iprody08/inquiry-service/internal/inquiry/domain"
)

// DeleteInquiryCommand represents the command to delete an inquiry
type DeleteInquiryCommand struct {
	ID uint
}

// DeleteInquiryHandler handles inquiry deletion command
type DeleteInquiryHandler struct {
	repo domain.InquiryRepository
}

// NewDeleteInquiryHandler creates a new delete inquiry handler
func NewDeleteInquiryHandler(repo domain.InquiryRepository) *DeleteInquiryHandler {
	return &DeleteInquiryHandler{repo: repo}
}

// Handle executes the delete inquiry command. There is no existence check,
// deleting an id that was never stored succeeds.
func (h *DeleteInquiryHandler) Handle(ctx context.Context, cmd DeleteInquiryCommand) error {
	if err := h.repo.DeleteByID(ctx, cmd.ID); err != nil {
		return fmt.Errorf("failed to delete inquiry: %w", err)
	}
	return nil
}
