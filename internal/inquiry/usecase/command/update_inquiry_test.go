package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iprody08/inquiry-service/internal/inquiry/domain"
	"github.com/iprody08/inquiry-service/internal/inquiry/domain/mocks"
	"github.com/iprody08/inquiry-service/internal/inquiry/dto"
)

func TestUpdateInquiryReplacesRecord(t *testing.T) {
	repo := mocks.NewInquiryRepository(t)
	handler := NewUpdateInquiryHandler(repo)
	ctx := context.Background()

	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	repo.On("FindByID", ctx, uint(5)).
		Return(&domain.Inquiry{ID: 5, Status: domain.StatusNew, CreatedAt: createdAt}, nil).
		Once()
	repo.On("Save", ctx, mock.AnythingOfType("*domain.Inquiry")).
		Run(func(args mock.Arguments) {
			saved := args.Get(1).(*domain.Inquiry)
			assert.Equal(t, uint(5), saved.ID)
			assert.Equal(t, createdAt, saved.CreatedAt)
		}).
		Return(nil).
		Once()

	updated, err := handler.Handle(ctx, UpdateInquiryCommand{
		ID: 5,
		Inquiry: dto.Inquiry{
			ID:            999, // the path id wins
			Status:        domain.StatusClosed,
			Comment:       "resolved",
			CustomerRefID: 42,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, uint(5), updated.ID)
	assert.Equal(t, domain.StatusClosed, updated.Status)
}

func TestUpdateInquiryNotFoundLeavesStoreUnchanged(t *testing.T) {
	repo := mocks.NewInquiryRepository(t)
	handler := NewUpdateInquiryHandler(repo)
	ctx := context.Background()

	repo.On("FindByID", ctx, uint(123)).
		Return(nil, domain.ErrInquiryNotFound).
		Once()

	_, err := handler.Handle(ctx, UpdateInquiryCommand{
		ID:      123,
		Inquiry: dto.Inquiry{Status: domain.StatusClosed},
	})

	assert.True(t, errors.Is(err, domain.ErrInquiryNotFound))
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdateInquiryRejectsInvalidStatus(t *testing.T) {
	repo := mocks.NewInquiryRepository(t)
	handler := NewUpdateInquiryHandler(repo)

	for _, status := range []domain.InquiryStatus{"DONE", ""} {
		_, err := handler.Handle(context.Background(), UpdateInquiryCommand{
			ID:      5,
			Inquiry: dto.Inquiry{Status: status},
		})

		assert.True(t, errors.Is(err, domain.ErrInvalidStatus), "status %q", status)
	}
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
