package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/iprody08/inquiry-service/internal/inquiry/domain"
)

var tracer = otel.Tracer("inquiry-repository")

// TracingInquiryRepository decorates another repository with otel spans
type TracingInquiryRepository struct {
	next domain.InquiryRepository
}

// NewTracingInquiryRepository wraps a repository with tracing
func NewTracingInquiryRepository(next domain.InquiryRepository) *TracingInquiryRepository {
	return &TracingInquiryRepository{next: next}
}

func (r *TracingInquiryRepository) FindByID(ctx context.Context, id uint) (*domain.Inquiry, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("inquiry.id", int(id))),
	)
	defer span.End()

	inquiry, err := r.next.FindByID(ctx, id)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.String("inquiry.status", string(inquiry.Status)))
	return inquiry, nil
}

func (r *TracingInquiryRepository) FindAll(ctx context.Context, pageNo, pageSize int, sortBy, sortDirection string, filter domain.InquiryFilter) ([]domain.Inquiry, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll",
		trace.WithAttributes(
			attribute.Int("query.page_no", pageNo),
			attribute.Int("query.page_size", pageSize),
			attribute.String("query.sort_by", sortBy),
			attribute.String("query.sort_direction", sortDirection),
		),
	)
	defer span.End()

	inquiries, err := r.next.FindAll(ctx, pageNo, pageSize, sortBy, sortDirection, filter)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(inquiries)))
	return inquiries, nil
}

func (r *TracingInquiryRepository) Save(ctx context.Context, inquiry *domain.Inquiry) error {
	ctx, span := tracer.Start(ctx, "repository.Save",
		trace.WithAttributes(attribute.Int("inquiry.id", int(inquiry.ID))),
	)
	defer span.End()

	if err := r.next.Save(ctx, inquiry); err != nil {
		recordSpanError(span, err)
		return err
	}

	span.SetAttributes(attribute.Int("inquiry.id", int(inquiry.ID)))
	return nil
}

func (r *TracingInquiryRepository) DeleteByID(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "repository.DeleteByID",
		trace.WithAttributes(attribute.Int("inquiry.id", int(id))),
	)
	defer span.End()

	if err := r.next.DeleteByID(ctx, id); err != nil {
		recordSpanError(span, err)
		return err
	}
	return nil
}

func (r *TracingInquiryRepository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.Count")
	defer span.End()

	count, err := r.next.Count(ctx)
	if err != nil {
		recordSpanError(span, err)
		return 0, err
	}

	span.SetAttributes(attribute.Int64("result.count", count))
	return count, nil
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
