package query

import (
	"context"
	"fmt"

	"github.com/iprody08/inquiry-service/internal/inquiry/domain"
	"github.com/iprody08/inquiry-service/internal/inquiry/dto"
)

// List defaults match the REST surface: first page of 25, sorted by id ascending.
const (
	DefaultPageSize      = 25
	DefaultSortBy        = "id"
	DefaultSortDirection = "asc"
)

// ListInquiriesQuery represents the query to list inquiries page by page
type ListInquiriesQuery struct {
	PageNo        int
	PageSize      int
	SortBy        string
	SortDirection string
	Filter        domain.InquiryFilter
}

// ListInquiriesHandler handles list inquiries query
type ListInquiriesHandler struct {
	repo domain.InquiryRepository
}

// NewListInquiriesHandler creates a new list inquiries handler
func NewListInquiriesHandler(repo domain.InquiryRepository) *ListInquiriesHandler {
	return &ListInquiriesHandler{repo: repo}
}

// Handle executes the list inquiries query. An empty store yields an empty slice.
func (h *ListInquiriesHandler) Handle(ctx context.Context, query ListInquiriesQuery) ([]dto.Inquiry, error) {
	if query.PageNo < 0 {
		query.PageNo = 0
	}
	if query.PageSize <= 0 {
		query.PageSize = DefaultPageSize
	}
	if query.SortBy == "" {
		query.SortBy = DefaultSortBy
	}
	if query.SortDirection == "" {
		query.SortDirection = DefaultSortDirection
	}

	inquiries, err := h.repo.FindAll(ctx, query.PageNo, query.PageSize, query.SortBy, query.SortDirection, query.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}

	return dto.EntitiesToDtos(inquiries), nil
}
