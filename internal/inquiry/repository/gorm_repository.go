package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/iprody08/inquiry-service/internal/inquiry/domain"
)

// sortableColumns maps accepted sortBy values to entity columns. Anything
// else sorts by id to keep user input out of the ORDER BY clause.
var sortableColumns = map[string]string{
	"id":            "id",
	"status":        "status",
	"comment":       "comment",
	"note":          "note",
	"customerRefId": "customer_ref_id",
}

func orderClause(sortBy, sortDirection string) string {
	column, ok := sortableColumns[sortBy]
	if !ok {
		column = "id"
	}

	direction := "ASC"
	if strings.EqualFold(sortDirection, "desc") {
		direction = "DESC"
	}

	return column + " " + direction
}

// GormInquiryRepository implements InquiryRepository using GORM
type GormInquiryRepository struct {
	db *gorm.DB
}

// NewGormInquiryRepository creates a new GORM inquiry repository
func NewGormInquiryRepository(db *gorm.DB) *GormInquiryRepository {
	return &GormInquiryRepository{db: db}
}

// FindByID retrieves an inquiry by ID
func (r *GormInquiryRepository) FindByID(ctx context.Context, id uint) (*domain.Inquiry, error) {
	var inquiry domain.Inquiry
	if err := r.db.WithContext(ctx).First(&inquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("failed to find inquiry: %w", err)
	}
	return &inquiry, nil
}

// FindAll retrieves one page of inquiries matching the filter.
// Status filters by exact match, comment and note by case-insensitive substring.
func (r *GormInquiryRepository) FindAll(ctx context.Context, pageNo, pageSize int, sortBy, sortDirection string, filter domain.InquiryFilter) ([]domain.Inquiry, error) {
	if pageNo < 0 {
		pageNo = 0
	}

	query := r.db.WithContext(ctx).Order(orderClause(sortBy, sortDirection))

	if pageSize > 0 {
		query = query.Limit(pageSize).Offset(pageNo * pageSize)
	}

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Comment != "" {
		query = query.Where("comment ILIKE ?", "%"+filter.Comment+"%")
	}
	if filter.Note != "" {
		query = query.Where("note ILIKE ?", "%"+filter.Note+"%")
	}

	var inquiries []domain.Inquiry
	if err := query.Find(&inquiries).Error; err != nil {
		return nil, fmt.Errorf("failed to find inquiries: %w", err)
	}
	return inquiries, nil
}

// Save inserts the inquiry when it has no id yet, otherwise replaces the
// stored record field for field. The id itself is never rewritten.
func (r *GormInquiryRepository) Save(ctx context.Context, inquiry *domain.Inquiry) error {
	var err error
	if inquiry.ID == 0 {
		err = r.db.WithContext(ctx).Create(inquiry).Error
	} else {
		err = r.db.WithContext(ctx).Save(inquiry).Error
	}
	if err != nil {
		return fmt.Errorf("failed to save inquiry: %w", err)
	}
	return nil
}

// DeleteByID removes an inquiry. Deleting an absent id is a no-op.
func (r *GormInquiryRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Inquiry{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete inquiry: %w", err)
	}
	return nil
}

// Count returns the total number of inquiries
func (r *GormInquiryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Inquiry{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count inquiries: %w", err)
	}
	return count, nil
}

// AutoMigrate runs database migrations
func (r *GormInquiryRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Inquiry{})
}
