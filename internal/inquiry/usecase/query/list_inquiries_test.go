package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iprody08/inquiry-service/internal/inquiry/domain"
	"github.com/iprody08/inquiry-service/internal/inquiry/domain/mocks"
)

func TestListInquiriesAppliesDefaults(t *testing.T) {
	repo := mocks.NewInquiryRepository(t)
	handler := NewListInquiriesHandler(repo)
	ctx := context.Background()

	repo.On("FindAll", ctx, 0, DefaultPageSize, DefaultSortBy, DefaultSortDirection, domain.InquiryFilter{}).
		Return([]domain.Inquiry{{ID: 1, Status: domain.StatusNew}}, nil).
		Once()

	inquiries, err := handler.Handle(ctx, ListInquiriesQuery{PageNo: -1})

	require.NoError(t, err)
	assert.Len(t, inquiries, 1)
	assert.Equal(t, uint(1), inquiries[0].ID)
}

func TestListInquiriesPassesPagingAndFilter(t *testing.T) {
	repo := mocks.NewInquiryRepository(t)
	handler := NewListInquiriesHandler(repo)
	ctx := context.Background()

	status := domain.StatusClosed
	filter := domain.InquiryFilter{Status: &status, Comment: "refund"}
	repo.On("FindAll", ctx, 2, 10, "status", "desc", filter).
		Return([]domain.Inquiry{}, nil).
		Once()

	inquiries, err := handler.Handle(ctx, ListInquiriesQuery{
		PageNo:        2,
		PageSize:      10,
		SortBy:        "status",
		SortDirection: "desc",
		Filter:        filter,
	})

	require.NoError(t, err)
	assert.NotNil(t, inquiries)
	assert.Empty(t, inquiries)
}

func TestListInquiriesRepositoryFailure(t *testing.T) {
	repo := mocks.NewInquiryRepository(t)
	handler := NewListInquiriesHandler(repo)
	ctx := context.Background()

	repo.On("FindAll", ctx, 0, DefaultPageSize, DefaultSortBy, DefaultSortDirection, domain.InquiryFilter{}).
		Return(nil, errors.New("connection reset")).
		Once()

	_, err := handler.Handle(ctx, ListInquiriesQuery{})

	assert.Error(t, err)
}
