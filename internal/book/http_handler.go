package book

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bookcatalog/internal/httpx"
)

// HTTPHandler exposes the book service over REST. It owns request decoding,
// response shaping and the error-kind to status-code mapping; all business
// rules live in the service.
type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type bookRequest struct {
	Title           string           `json:"title"`
	Author          string           `json:"author"`
	ISBN            string           `json:"isbn"`
	Price           *decimal.Decimal `json:"price"`
	PublicationYear *int             `json:"publication_year"`
}

func (req bookRequest) candidate() Candidate {
	return Candidate{
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            req.ISBN,
		Price:           req.Price,
		PublicationYear: req.PublicationYear,
	}
}

type bookResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	ISBN            string    `json:"isbn"`
	Price           string    `json:"price"`
	PublicationYear int       `json:"publication_year"`
	CreatedAt       time.Time `json:"created_at"`
}

func toResponse(b Book) bookResponse {
	return bookResponse{
		ID:              b.PublicID,
		Title:           b.Title,
		Author:          b.Author,
		ISBN:            b.ISBN,
		Price:           b.Price.StringFixed(2),
		PublicationYear: b.PublicationYear,
		CreatedAt:       b.CreatedAt,
	}
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.GetAllBooks(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]bookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toResponse(b))
	}
	httpx.JSONSuccess(w, out, map[string]any{"total": len(out)})
}

// GetByID handles GET /books/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	publicID, ok := pathID(w, r)
	if !ok {
		return
	}

	b, err := h.service.GetBookByID(r.Context(), publicID)
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.JSONSuccess(w, toResponse(b), nil)
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Malformed request body", nil)
		return
	}

	b, err := h.service.SaveBook(r.Context(), req.candidate())
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.JSONSuccessCreated(w, toResponse(b))
}

// Update handles PUT /books/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	publicID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Malformed request body", nil)
		return
	}

	b, err := h.service.UpdateBook(r.Context(), publicID, req.candidate())
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.JSONSuccess(w, toResponse(b), nil)
}

// Delete handles DELETE /books/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	publicID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteBookByID(r.Context(), publicID); err != nil {
		writeError(w, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// pathID parses the {id} path value. A value that is not a UUID cannot
// address any book, so it is reported as not found rather than bad input.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	publicID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		return uuid.UUID{}, false
	}
	return publicID, true
}

func writeError(w http.ResponseWriter, err error) {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		details := make([]httpx.ErrorDetail, 0, len(vErr.Messages))
		for _, msg := range vErr.Messages {
			details = append(details, httpx.ErrorDetail{Message: msg})
		}
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_FAILED", "Book data validation failed", details)
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
	case errors.Is(err, ErrAlreadyExists):
		httpx.JSONError(w, http.StatusConflict, "ALREADY_EXISTS", "Book with this ISBN already exists", nil)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
