package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iprody08/inquiry-service/internal/inquiry/domain"
	"github.com/iprody08/inquiry-service/internal/inquiry/domain/mocks"
	"github.com/iprody08/inquiry-service/internal/inquiry/dto"
)

func TestCreateInquiryAssignsID(t *testing.T) {
	repo := mocks.NewInquiryRepository(t)
	handler := NewCreateInquiryHandler(repo)
	ctx := context.Background()

	repo.On("Save", ctx, mock.AnythingOfType("*domain.Inquiry")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Inquiry).ID = 17
		}).
		Return(nil).
		Once()

	created, err := handler.Handle(ctx, CreateInquiryCommand{
		Inquiry: dto.Inquiry{
			Status:        domain.StatusNew,
			Comment:       "c1",
			Note:          "n1",
			CustomerRefID: 42,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, uint(17), created.ID)
	assert.Equal(t, domain.StatusNew, created.Status)
	assert.Equal(t, "c1", created.Comment)
	assert.Equal(t, "n1", created.Note)
	assert.Equal(t, int64(42), created.CustomerRefID)
}

func TestCreateInquiryRejectsInvalidStatus(t *testing.T) {
	repo := mocks.NewInquiryRepository(t)
	handler := NewCreateInquiryHandler(repo)

	for _, status := range []domain.InquiryStatus{"PENDING", ""} {
		_, err := handler.Handle(context.Background(), CreateInquiryCommand{
			Inquiry: dto.Inquiry{Status: status},
		})

		assert.True(t, errors.Is(err, domain.ErrInvalidStatus), "status %q", status)
	}
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateInquiryRepositoryFailure(t *testing.T) {
	repo := mocks.NewInquiryRepository(t)
	handler := NewCreateInquiryHandler(repo)
	ctx := context.Background()

	repo.On("Save", ctx, mock.AnythingOfType("*domain.Inquiry")).
		Return(errors.New("connection reset")).
		Once()

	_, err := handler.Handle(ctx, CreateInquiryCommand{
		Inquiry: dto.Inquiry{Status: domain.StatusNew},
	})

	assert.Error(t, err)
}
