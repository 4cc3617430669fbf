package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/iprody08/inquiry-service/internal/inquiry/client"
	"github.com/iprody08/inquiry-service/internal/inquiry/domain"
	"github.com/iprody08/inquiry-service/internal/inquiry/dto"
	"github.com/iprody08/inquiry-service/internal/inquiry/usecase/command"
	"github.com/iprody08/inquiry-service/internal/inquiry/usecase/query"
	"github.com/iprody08/inquiry-service/kafka"
	"github.com/iprody08/inquiry-service/pkg/logger"
)

// InquiryHandler handles HTTP requests for inquiries using CQRS pattern
type InquiryHandler struct {
	// Command handlers
	createHandler *command.CreateInquiryHandler
	updateHandler *command.UpdateInquiryHandler
	deleteHandler *command.DeleteInquiryHandler

	// Query handlers
	getHandler  *query.GetInquiryHandler
	listHandler *query.ListInquiriesHandler

	repo           domain.InquiryRepository
	customerClient *client.InfoClient
	productClient  *client.InfoClient
	kafkaPublisher *kafka.Publisher

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	totalInquiries prometheus.Gauge
}

// NewInquiryHandler creates a new inquiry handler (manual DI)
func NewInquiryHandler(repo domain.InquiryRepository, clients client.InfoClients) *InquiryHandler {
	return NewInquiryHandlerWithDI(
		command.NewCreateInquiryHandler(repo),
		command.NewUpdateInquiryHandler(repo),
		command.NewDeleteInquiryHandler(repo),
		query.NewGetInquiryHandler(repo),
		query.NewListInquiriesHandler(repo),
		repo,
		clients,
		nil,
	)
}

// NewInquiryHandlerWithDI creates a new inquiry handler using dependency injection
func NewInquiryHandlerWithDI(
	createHandler *command.CreateInquiryHandler,
	updateHandler *command.UpdateInquiryHandler,
	deleteHandler *command.DeleteInquiryHandler,
	getHandler *query.GetInquiryHandler,
	listHandler *query.ListInquiriesHandler,
	repo domain.InquiryRepository,
	clients client.InfoClients,
	kafkaPublisher *kafka.Publisher,
) *InquiryHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inquiry_service_requests_total",
			Help: "Total number of requests to inquiry service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inquiry_service_request_duration_seconds",
			Help:    "Duration of inquiry service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Summary metric for percentile calculation (p50, p90, p95, p99)
	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "inquiry_service_request_duration_summary",
			Help: "Summary of request durations with percentiles (client-side quantiles)",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	totalInquiries := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "inquiry_service_total_inquiries",
			Help: "Total number of inquiries in the system",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)
	prometheus.MustRegister(totalInquiries)

	return &InquiryHandler{
		createHandler:  createHandler,
		updateHandler:  updateHandler,
		deleteHandler:  deleteHandler,
		getHandler:     getHandler,
		listHandler:    listHandler,
		repo:           repo,
		customerClient: clients.Customer,
		productClient:  clients.Product,
		kafkaPublisher: kafkaPublisher,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		requestSummary: requestSummary,
		totalInquiries: totalInquiries,
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *InquiryHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers all inquiry routes
func (h *InquiryHandler) RegisterRoutes(router *mux.Router) {
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/inquiries", h.metricsMiddleware("/inquiries", h.ListInquiries)).Methods("GET")
	api.HandleFunc("/inquiries", h.metricsMiddleware("/inquiries", h.CreateInquiry)).Methods("POST")
	api.HandleFunc("/inquiries/id/{id}", h.metricsMiddleware("/inquiries/id/{id}", h.GetInquiry)).Methods("GET")
	api.HandleFunc("/inquiries/id/{id}", h.metricsMiddleware("/inquiries/id/{id}", h.UpdateInquiry)).Methods("PUT")
	api.HandleFunc("/inquiries/id/{id}", h.metricsMiddleware("/inquiries/id/{id}", h.DeleteInquiry)).Methods("DELETE")
	api.HandleFunc("/inquiries/id/{id}/customer-info", h.metricsMiddleware("/inquiries/id/{id}/customer-info", h.GetCustomerInfo)).Methods("GET")
	api.HandleFunc("/inquiries/id/{id}/product-info", h.metricsMiddleware("/inquiries/id/{id}/product-info", h.GetProductInfo)).Methods("GET")
}

// GetInquiry handles GET /api/v1/inquiries/id/{id}
func (h *InquiryHandler) GetInquiry(w http.ResponseWriter, r *http.Request) {
	id, ok := h.inquiryID(w, r)
	if !ok {
		return
	}

	inquiry, err := h.getHandler.Handle(r.Context(), query.GetInquiryQuery{ID: id})
	if err != nil {
		h.respondLookupError(w, r, id, err)
		return
	}

	respondJSON(w, http.StatusOK, inquiry)
}

// ListInquiries handles GET /api/v1/inquiries
func (h *InquiryHandler) ListInquiries(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	pageNo, ok := intParam(w, params.Get("pageNo"), "pageNo", 0)
	if !ok {
		return
	}
	pageSize, ok := intParam(w, params.Get("pageSize"), "pageSize", query.DefaultPageSize)
	if !ok {
		return
	}

	sortBy := params.Get("sortBy")
	sortDirection := params.Get("sortDirection")

	filter := domain.InquiryFilter{
		Comment: params.Get("comment"),
		Note:    params.Get("note"),
	}
	if raw := params.Get("status"); raw != "" {
		status, err := domain.ParseInquiryStatus(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		filter.Status = &status
	}

	q := query.ListInquiriesQuery{
		PageNo:        pageNo,
		PageSize:      pageSize,
		SortBy:        sortBy,
		SortDirection: sortDirection,
		Filter:        filter,
	}

	inquiries, err := h.listHandler.Handle(r.Context(), q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list inquiries")
		respondError(w, http.StatusInternalServerError, "Failed to list inquiries")
		return
	}

	respondJSON(w, http.StatusOK, inquiries)
}

// CreateInquiry handles POST /api/v1/inquiries
func (h *InquiryHandler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	var req dto.Inquiry
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inquiry, err := h.createHandler.Handle(r.Context(), command.CreateInquiryCommand{Inquiry: req})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			respondError(w, http.StatusBadRequest, "Invalid inquiry status")
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Failed to create inquiry")
		respondError(w, http.StatusInternalServerError, "Failed to create inquiry")
		return
	}

	h.publishEvent(r, kafka.EventTypeInquiryCreated, inquiry)
	h.updateInquiriesMetric(r)

	respondJSON(w, http.StatusCreated, inquiry)
}

// UpdateInquiry handles PUT /api/v1/inquiries/id/{id}
func (h *InquiryHandler) UpdateInquiry(w http.ResponseWriter, r *http.Request) {
	id, ok := h.inquiryID(w, r)
	if !ok {
		return
	}

	var req dto.Inquiry
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inquiry, err := h.updateHandler.Handle(r.Context(), command.UpdateInquiryCommand{ID: id, Inquiry: req})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			respondError(w, http.StatusBadRequest, "Invalid inquiry status")
		case errors.Is(err, domain.ErrInquiryNotFound):
			respondError(w, http.StatusNotFound, fmt.Sprintf("There is no inquiry with id %d", id))
		default:
			logger.Error(r.Context()).Err(err).Uint("inquiry_id", id).Msg("Failed to update inquiry")
			respondError(w, http.StatusInternalServerError, "Failed to update inquiry")
		}
		return
	}

	h.publishEvent(r, kafka.EventTypeInquiryUpdated, inquiry)

	respondJSON(w, http.StatusOK, inquiry)
}

// DeleteInquiry handles DELETE /api/v1/inquiries/id/{id}.
// Succeeds whether or not the id was ever stored.
func (h *InquiryHandler) DeleteInquiry(w http.ResponseWriter, r *http.Request) {
	id, ok := h.inquiryID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteInquiryCommand{ID: id}); err != nil {
		logger.Error(r.Context()).Err(err).Uint("inquiry_id", id).Msg("Failed to delete inquiry")
		respondError(w, http.StatusInternalServerError, "Failed to delete inquiry")
		return
	}

	h.publishEvent(r, kafka.EventTypeInquiryDeleted, &dto.Inquiry{ID: id})
	h.updateInquiriesMetric(r)

	respondJSON(w, http.StatusOK, map[string]string{"message": "Inquiry deleted successfully"})
}

// GetCustomerInfo handles GET /api/v1/inquiries/id/{id}/customer-info
func (h *InquiryHandler) GetCustomerInfo(w http.ResponseWriter, r *http.Request) {
	h.relayInfo(w, r, h.customerClient, "customer")
}

// GetProductInfo handles GET /api/v1/inquiries/id/{id}/product-info
func (h *InquiryHandler) GetProductInfo(w http.ResponseWriter, r *http.Request) {
	// TODO: the product lookup is keyed by the customer reference id; confirm
	// with the product service owners whether a product ref should exist here.
	h.relayInfo(w, r, h.productClient, "product")
}

// relayInfo resolves the inquiry's reference id and relays the downstream body verbatim
func (h *InquiryHandler) relayInfo(w http.ResponseWriter, r *http.Request, infoClient *client.InfoClient, origin string) {
	id, ok := h.inquiryID(w, r)
	if !ok {
		return
	}

	inquiry, err := h.getHandler.Handle(r.Context(), query.GetInquiryQuery{ID: id})
	if err != nil {
		h.respondLookupError(w, r, id, err)
		return
	}

	body, err := infoClient.Fetch(r.Context(), inquiry.CustomerRefID)
	if err != nil {
		logger.Error(r.Context()).
			Err(err).
			Uint("inquiry_id", id).
			Str("origin", origin).
			Msg("Downstream call failed")
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to fetch %s info", origin))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

// RegisterHealthCheck registers the health endpoint backed by a db ping
func (h *InquiryHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondError(w, http.StatusServiceUnavailable, "Database unavailable")
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}).Methods("GET")
}

// inquiryID extracts the path id, responding 400 on garbage
func (h *InquiryHandler) inquiryID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid inquiry id")
		return 0, false
	}
	return uint(id), true
}

// respondLookupError maps a lookup failure to 404 or 500
func (h *InquiryHandler) respondLookupError(w http.ResponseWriter, r *http.Request, id uint, err error) {
	if errors.Is(err, domain.ErrInquiryNotFound) {
		respondError(w, http.StatusNotFound, fmt.Sprintf("There is no inquiry with id %d", id))
		return
	}

	logger.Error(r.Context()).Err(err).Uint("inquiry_id", id).Msg("Inquiry lookup failed")
	respondError(w, http.StatusInternalServerError, "Failed to read inquiry")
}

// publishEvent emits a lifecycle event; failures are logged, never surfaced
func (h *InquiryHandler) publishEvent(r *http.Request, eventType string, inquiry *dto.Inquiry) {
	if h.kafkaPublisher == nil {
		return
	}

	event := kafka.InquiryEvent{
		EventType:     eventType,
		InquiryID:     inquiry.ID,
		Status:        string(inquiry.Status),
		CustomerRefID: inquiry.CustomerRefID,
	}

	if err := h.kafkaPublisher.PublishInquiryEvent(r.Context(), event); err != nil {
		logger.Error(r.Context()).
			Err(err).
			Str("event_type", eventType).
			Uint("inquiry_id", inquiry.ID).
			Msg("Failed to publish inquiry event")
	}
}

// updateInquiriesMetric updates the total inquiries gauge
func (h *InquiryHandler) updateInquiriesMetric(r *http.Request) {
	count, err := h.repo.Count(r.Context())
	if err == nil {
		h.totalInquiries.Set(float64(count))
	}
}

// intParam parses an optional numeric query parameter
func intParam(w http.ResponseWriter, raw, name string, fallback int) (int, bool) {
	if raw == "" {
		return fallback, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid %s parameter", name))
		return 0, false
	}
	return value, true
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
