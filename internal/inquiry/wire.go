//go:build wireinject
// +build wireinject

package inquiry

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/iprody08/inquiry-service/internal/inquiry/delivery/http"
	"github.com/iprody08/inquiry-service/kafka"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideInquiryRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideCreateInquiryHandler,
	ProvideUpdateInquiryHandler,
	ProvideDeleteInquiryHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetInquiryHandler,
	ProvideListInquiriesHandler,
)

var ClientSet = wire.NewSet(
	ProvideInfoClients,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
	ClientSet,
)

// InitializeHandler initializes the inquiry handler with all dependencies
func InitializeHandler(db *gorm.DB, urls ServiceURLs, publisher *kafka.Publisher) (*http.InquiryHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewInquiryHandlerWithDI,
	)
	return nil, nil
}
