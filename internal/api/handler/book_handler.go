package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookstack/catalog-api/internal/api/metrics"
	"github.com/bookstack/catalog-api/internal/core/domain"
	"github.com/bookstack/catalog-api/internal/core/ports"
)

// BookHandler handles HTTP requests for catalog operations.
type BookHandler struct {
	service ports.BookService
}

func NewBookHandler(service ports.BookService) *BookHandler {
	return &BookHandler{service: service}
}

// List handles GET /api/books.
//
// @Summary      List all books, newest first
// @Tags         books
// @Produce      json
// @Success      200  {array}   bookResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/books [get]
func (h *BookHandler) List(c echo.Context) error {
	books, err := h.service.ListBooks(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, toBookListResponse(books))
}

// Get handles GET /api/books/:id.
//
// @Summary      Get a book by id
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "Book id"
// @Success      200  {object}  bookResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/books/{id} [get]
func (h *BookHandler) Get(c echo.Context) error {
	book, err := h.service.GetBook(c.Request().Context(), c.Param("id"))
	if err != nil {
		return bookError(c, err)
	}
	return c.JSON(http.StatusOK, toBookResponse(book))
}

// Create handles POST /api/books.
//
// @Summary      Add a book to the catalog
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bookRequest  true  "Book fields"
// @Success      201   {object}  bookResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/books [post]
func (h *BookHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	book, err := h.service.CreateBook(c.Request().Context(), toCreateInput(req, userID))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	metrics.BooksCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, toBookResponse(book))
}

// Update handles PUT /api/books/:id.
//
// @Summary      Replace a book's fields
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Book id"
// @Param        body  body      bookRequest  true  "Replacement fields"
// @Success      200   {object}  bookResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/books/{id} [put]
func (h *BookHandler) Update(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	// Unlike Create, the payload is not checked for required fields: an
	// update is a wholesale replace driven by whatever payload arrives,
	// absent fields overwrite with their zero values.
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	book, err := h.service.UpdateBook(c.Request().Context(), toUpdateInput(req, c.Param("id")))
	if err != nil {
		return bookError(c, err)
	}

	metrics.BooksUpdatedTotal.Inc()

	return c.JSON(http.StatusOK, toBookResponse(book))
}

// Delete handles DELETE /api/books/:id.
//
// @Summary      Remove a book from the catalog
// @Tags         books
// @Security     BearerAuth
// @Param        id  path  string  true  "Book id"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/books/{id} [delete]
func (h *BookHandler) Delete(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	if err := h.service.DeleteBook(c.Request().Context(), c.Param("id")); err != nil {
		return bookError(c, err)
	}

	metrics.BooksDeletedTotal.Inc()

	return c.NoContent(http.StatusNoContent)
}

// bookError maps catalog service errors onto HTTP responses.
func bookError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidBookID):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid book id"})
	case errors.Is(err, domain.ErrBookNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "book not found"})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
