package book

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"libraryapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type createBookReq struct {
	Title           string `json:"title" validate:"required"`
	Author          string `json:"author" validate:"required"`
	Description     string `json:"description" validate:"max=1000"`
	PublicationYear *int   `json:"publicationYear" validate:"required,gte=1000"`
	ISBN            string `json:"isbn" validate:"required"`
}

type updateBookReq struct {
	Title           string `json:"title" validate:"required"`
	Author          string `json:"author" validate:"required"`
	Description     string `json:"description" validate:"max=1000"`
	PublicationYear *int   `json:"publicationYear" validate:"required,gte=1000"`
	ISBN            string `json:"isbn" validate:"required"`
	Status          string `json:"status" validate:"omitempty,oneof=AVAILABLE BORROWED RESERVED LOST DAMAGED"`
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func notFoundMsg(id int64) string {
	return fmt.Sprintf("book not found with id: %d", id)
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if books == nil {
		books = []Book{}
	}
	httpx.JSON(w, http.StatusOK, books)
}

// GetByID handles GET /books/{id}
// @Summary Get a book by id
// @Tags books
// @Produce json
// @Param id path int true "Book id"
// @Success 200 {object} Book
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id} [get]
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid book id")
		return
	}

	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, notFoundMsg(id))
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// Create handles POST /books
// @Summary Add a book to the catalog
// @Tags books
// @Accept json
// @Produce json
// @Param request body createBookReq true "New book"
// @Success 201 {object} Book
// @Failure 400 {object} httpx.ErrorResponse
// @Router /books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Author = strings.TrimSpace(req.Author)
	req.ISBN = strings.TrimSpace(req.ISBN)

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONValidationError(w, validationErrors)
		return
	}

	b := Book{
		Title:           req.Title,
		Author:          req.Author,
		Description:     req.Description,
		PublicationYear: *req.PublicationYear,
		ISBN:            req.ISBN,
	}

	created, err := h.service.Create(r.Context(), b)
	if err != nil {
		if errors.Is(err, ErrDuplicateISBN) {
			httpx.JSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

// Update handles PUT /books/{id}
// @Summary Replace a book's details
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "Book id"
// @Param request body updateBookReq true "New details"
// @Success 200 {object} Book
// @Failure 400 {object} httpx.ErrorResponse
// @Router /books/{id} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid book id")
		return
	}

	var req updateBookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Author = strings.TrimSpace(req.Author)
	req.ISBN = strings.TrimSpace(req.ISBN)

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONValidationError(w, validationErrors)
		return
	}

	// An omitted status resets the book to AVAILABLE.
	status := StatusAvailable
	if req.Status != "" {
		status = Status(req.Status)
	}

	b := Book{
		Title:           req.Title,
		Author:          req.Author,
		Description:     req.Description,
		PublicationYear: *req.PublicationYear,
		ISBN:            req.ISBN,
		Status:          status,
	}

	updated, err := h.service.Update(r.Context(), id, b)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, http.StatusBadRequest, notFoundMsg(id))
		case errors.Is(err, ErrDuplicateISBN):
			httpx.JSONError(w, http.StatusBadRequest, err.Error())
		default:
			httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /books/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid book id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusBadRequest, notFoundMsg(id))
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Search handles GET /books/search?keyword=
// @Summary Search books by title, author or ISBN
// @Tags books
// @Produce json
// @Param keyword query string true "Search keyword"
// @Success 200 {array} Book
// @Failure 400 {object} httpx.ErrorResponse
// @Router /books/search [get]
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	if !r.URL.Query().Has("keyword") {
		httpx.JSONError(w, http.StatusBadRequest, "missing required parameter: keyword")
		return
	}
	keyword := r.URL.Query().Get("keyword")

	books, err := h.service.Search(r.Context(), keyword)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if books == nil {
		books = []Book{}
	}
	httpx.JSON(w, http.StatusOK, books)
}

// ListByStatus handles GET /books/status/{status}
func (h *HTTPHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	status, err := ParseStatus(r.PathValue("status"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	books, err := h.service.ListByStatus(r.Context(), status)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if books == nil {
		books = []Book{}
	}
	httpx.JSON(w, http.StatusOK, books)
}

// Borrow handles POST /books/{id}/borrow
// @Summary Borrow an available book
// @Tags books
// @Produce json
// @Param id path int true "Book id"
// @Success 200 {object} Book
// @Failure 400 {object} httpx.ErrorResponse
// @Router /books/{id}/borrow [post]
func (h *HTTPHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid book id")
		return
	}

	b, err := h.service.Borrow(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, http.StatusBadRequest, notFoundMsg(id))
		case errors.Is(err, ErrNotAvailable):
			httpx.JSONError(w, http.StatusBadRequest, err.Error())
		default:
			httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// Return handles POST /books/{id}/return
func (h *HTTPHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid book id")
		return
	}

	b, err := h.service.Return(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, http.StatusBadRequest, notFoundMsg(id))
		case errors.Is(err, ErrNotBorrowed):
			httpx.JSONError(w, http.StatusBadRequest, err.Error())
		default:
			httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// GetStats handles GET /books/stats
// @Summary Count available and borrowed books
// @Tags books
// @Produce json
// @Success 200 {object} Stats
// @Router /books/stats [get]
func (h *HTTPHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	httpx.JSON(w, http.StatusOK, stats)
}
