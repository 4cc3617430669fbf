package inquiry

import (
	"gorm.io/gorm"

	"github.com/iprody08/inquiry-service/internal/inquiry/client"
	"github.com/iprody08/inquiry-service/internal/inquiry/domain"
	"github.com/iprody08/inquiry-service/internal/inquiry/repository"
	"github.com/iprody08/inquiry-service/internal/inquiry/usecase/command"
	"github.com/iprody08/inquiry-service/internal/inquiry/usecase/query"
)

// ServiceURLs holds the downstream base URLs. Each value is expected to end
// with its separator so that appending a reference id forms a valid URL.
type ServiceURLs struct {
	CustomerServiceURL string
	ProductServiceURL  string
}

// ProvideInquiryRepository provides the inquiry repository wrapped with tracing
func ProvideInquiryRepository(db *gorm.DB) domain.InquiryRepository {
	return repository.NewTracingInquiryRepository(repository.NewGormInquiryRepository(db))
}

// ProvideInfoClients provides the downstream customer and product clients
func ProvideInfoClients(urls ServiceURLs) client.InfoClients {
	return client.InfoClients{
		Customer: client.NewInfoClient(urls.CustomerServiceURL),
		Product:  client.NewInfoClient(urls.ProductServiceURL),
	}
}

// Command Handlers Providers
func ProvideCreateInquiryHandler(repo domain.InquiryRepository) *command.CreateInquiryHandler {
	return command.NewCreateInquiryHandler(repo)
}

func ProvideUpdateInquiryHandler(repo domain.InquiryRepository) *command.UpdateInquiryHandler {
	return command.NewUpdateInquiryHandler(repo)
}

func ProvideDeleteInquiryHandler(repo domain.InquiryRepository) *command.DeleteInquiryHandler {
	return command.NewDeleteInquiryHandler(repo)
}

// Query Handlers Providers
func ProvideGetInquiryHandler(repo domain.InquiryRepository) *query.GetInquiryHandler {
	return query.NewGetInquiryHandler(repo)
}

func ProvideListInquiriesHandler(repo domain.InquiryRepository) *query.ListInquiriesHandler {
	return query.NewListInquiriesHandler(repo)
}
