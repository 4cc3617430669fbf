package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/iprody08/inquiry-service/internal/inquiry/domain/mocks"
)

func TestDeleteInquirySkipsExistenceCheck(t *testing.T) {
	repo := mocks.NewInquiryRepository(t)
	handler := NewDeleteInquiryHandler(repo)
	ctx := context.Background()

	repo.On("DeleteByID", ctx, uint(404)).Return(nil).Once()

	err := handler.Handle(ctx, DeleteInquiryCommand{ID: 404})

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestDeleteInquiryRepositoryFailure(t *testing.T) {
	repo := mocks.NewInquiryRepository(t)
	handler := NewDeleteInquiryHandler(repo)
	ctx := context.Background()

	repo.On("DeleteByID", ctx, uint(1)).Return(errors.New("connection reset")).Once()

	err := handler.Handle(ctx, DeleteInquiryCommand{ID: 1})

	assert.Error(t, err)
}
