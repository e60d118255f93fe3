// Package rest provides the HTTP handlers for the product catalog API.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	cerrors "github.com/uibrahim/product-api/internal/catalog/errors"
	"github.com/uibrahim/product-api/internal/catalog/service"
	"github.com/uibrahim/product-api/pkg/web"
)

// Fixed response messages; clients match on these strings.
const (
	MsgWelcome       = "Welcome to the Product API! Go to /api/products to see all products."
	MsgNotFound      = "Product not found"
	MsgMissingFields = "Missing required fields"
)

type Handler struct {
	service  service.CatalogService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new catalog REST handler with the provided service.
func NewHandler(service service.CatalogService, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the catalog API.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Welcome)
	r.Get("/healthz", h.HealthCheck)

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.FindByID)
			r.Put("/", h.Update)
			r.Delete("/", h.DeleteByID)
		})
	})
}

// Welcome answers the unauthenticated root route with a plain-text greeting.
func (h *Handler) Welcome(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(MsgWelcome))
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// List retrieves products filtered by category and search term, paginated.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	query := service.ListQuery{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
		Page:     web.ParseIntDefault(r, "page", service.DefaultPage),
		Limit:    web.ParseIntDefault(r, "limit", service.DefaultLimit),
	}
	mLogger.DebugContext(r.Context(), "Received request to list products",
		"category", query.Category, "search", query.Search, "page", query.Page, "limit", query.Limit)

	page, err := h.service.List(r.Context(), query)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving product list", "error", err)
		web.RespondServerError(w, mLogger, err.Error())
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved product list", "total", page.Total, "count", len(page.Data))
	web.RespondJSON(w, mLogger, http.StatusOK, page)
}

// FindByID retrieves a product by its ID.
func (h *Handler) FindByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id := chi.URLParam(r, "id")

	mLogger.DebugContext(r.Context(), "Received request to find product by ID", "ID", id)
	found, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, cerrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, MsgNotFound)
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving product", "ID", id, "error", err)
		web.RespondServerError(w, mLogger, err.Error())
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved product", "ID", found.ID, "Name", found.Name)
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// Create handles the creation of a new product.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	input, ok := h.decodeValidate(w, r, mLogger)
	if !ok {
		return
	}

	created, err := h.service.Create(r.Context(), *input)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error creating product", "error", err)
		web.RespondServerError(w, mLogger, err.Error())
		return
	}
	mLogger.InfoContext(r.Context(), "Product created successfully", "ID", created.ID, "Name", created.Name)
	web.RespondJSON(w, mLogger, http.StatusCreated, created)
}

// Update replaces every field of an existing product. The existence check
// runs before body validation: updating a missing ID answers 404 even when
// the body is incomplete.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id := chi.URLParam(r, "id")

	mLogger.DebugContext(r.Context(), "Received request to update product", "ID", id)
	if _, err := h.service.FindByID(r.Context(), id); err != nil {
		if errors.Is(err, cerrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found for update", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, MsgNotFound)
			return
		}
		mLogger.ErrorContext(r.Context(), "Error checking product existence", "ID", id, "error", err)
		web.RespondServerError(w, mLogger, err.Error())
		return
	}

	input, ok := h.decodeValidate(w, r, mLogger)
	if !ok {
		return
	}

	updated, err := h.service.Replace(r.Context(), id, *input)
	if err != nil {
		if errors.Is(err, cerrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found for update", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, MsgNotFound)
			return
		}
		mLogger.ErrorContext(r.Context(), "Error updating product", "ID", id, "error", err)
		web.RespondServerError(w, mLogger, err.Error())
		return
	}
	mLogger.InfoContext(r.Context(), "Product updated successfully", "ID", updated.ID, "Name", updated.Name)
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
}

// DeleteByID deletes a product by its ID. Deleting an already deleted ID
// answers 404, never a silent success.
func (h *Handler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id := chi.URLParam(r, "id")

	mLogger.DebugContext(r.Context(), "Received request to delete product", "ID", id)
	if err := h.service.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, cerrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found for deletion", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, MsgNotFound)
			return
		}
		mLogger.ErrorContext(r.Context(), "Error deleting product", "ID", id, "error", err)
		web.RespondServerError(w, mLogger, err.Error())
		return
	}
	mLogger.InfoContext(r.Context(), "Product deleted successfully", "ID", id)
	w.WriteHeader(http.StatusNoContent)
}

// decodeValidate decodes the request body into a ProductInputDto and runs the
// presence checks. Malformed JSON is an unexpected failure and takes the
// uniform 500 path; a missing field is an expected 400 with the fixed message.
func (h *Handler) decodeValidate(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger) (*service.ProductInputDto, bool) {
	var input service.ProductInputDto
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondServerError(w, mLogger, err.Error())
		return nil, false
	}

	if err := h.validate.Struct(input); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			// Log which fields failed; the client only gets the fixed message.
			errorDetail := make(map[string]string)
			for _, fieldErr := range validationErrors {
				errorDetail[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
			}
			mLogger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorDetail)
			web.RespondError(w, mLogger, http.StatusBadRequest, MsgMissingFields)
			return nil, false
		}
		mLogger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		web.RespondServerError(w, mLogger, err.Error())
		return nil, false
	}
	return &input, true
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}
