package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/readware/librarian/internal/errs"
	"github.com/readware/librarian/internal/model"
	md "github.com/readware/librarian/pkg/middleware"
)

type Handler struct {
	svc LibrarianService
	log *zap.Logger
}

func New(svc LibrarianService, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPost},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/books", h.ListBooks)
	api.POST("/books", h.CreateBook)
	api.GET("/books/:id", h.GetBook)
	api.PUT("/books/:id", h.UpdateBook)

	api.GET("/patrons", h.ListPatrons)
	api.POST("/patrons", h.CreatePatron)
	api.GET("/patrons/:id", h.GetPatron)
	api.PUT("/patrons/:id", h.UpdatePatron)

	api.GET("/loans", h.ListLoans)
	api.POST("/loans", h.CreateLoan)
	api.GET("/loans/:id", h.GetLoan)
	api.PUT("/loans/:id", h.UpdateLoan)
	api.PUT("/loans/:id/return", h.ReturnLoan)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// listParams pulls search and page out of the query string. Page
// defaults to 1 and is passed through as given, including zero and
// negative values, which simply select an empty window.
func listParams(c echo.Context) (search string, page int, err error) {
	search = c.QueryParam("search")
	page = 1
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if page, err = strconv.Atoi(pageParam); err != nil {
			return "", 0, echo.NewHTTPError(http.StatusBadRequest, errors.New("page is invalid"))
		}
	}
	return search, page, nil
}

// idParam resolves the :id path segment. Anything that is not an
// integer cannot name an existing record, so it maps to 404, not 400.
func idParam(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound, errs.ErrNotFound.Error())
	}
	return id, nil
}

// writeError maps a failed write onto the boundary contract: field
// errors re-present the attempted input with a 422, a missing record is
// a 404, anything else a 500.
func (h *Handler) writeError(c echo.Context, err error, fields any) error {
	var vErr *errs.ValidationError
	if errors.As(err, &vErr) {
		return c.JSON(http.StatusUnprocessableEntity, model.ValidationResponse{
			Fields: fields,
			Errors: vErr.Messages,
		})
	}
	if errors.Is(err, errs.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (h *Handler) readError(err error) error {
	if errors.Is(err, errs.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (h *Handler) ListBooks(c echo.Context) error {
	search, page, err := listParams(c)
	if err != nil {
		return err
	}
	books, err := h.svc.ListBooks(c.Request().Context(), search, page)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	book, err := h.svc.GetBook(c.Request().Context(), id)
	if err != nil {
		return h.readError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) CreateBook(c echo.Context) error {
	var in model.BookInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.svc.CreateBook(c.Request().Context(), in)
	if err != nil {
		return h.writeError(c, err, in)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var in model.BookInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.svc.UpdateBook(c.Request().Context(), id, in)
	if err != nil {
		return h.writeError(c, err, in)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) ListPatrons(c echo.Context) error {
	search, page, err := listParams(c)
	if err != nil {
		return err
	}
	patrons, err := h.svc.ListPatrons(c.Request().Context(), search, page)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, patrons)
}

func (h *Handler) GetPatron(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	patron, err := h.svc.GetPatron(c.Request().Context(), id)
	if err != nil {
		return h.readError(err)
	}
	return c.JSON(http.StatusOK, patron)
}

func (h *Handler) CreatePatron(c echo.Context) error {
	var in model.PatronInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	patron, err := h.svc.CreatePatron(c.Request().Context(), in)
	if err != nil {
		return h.writeError(c, err, in)
	}
	return c.JSON(http.StatusCreated, patron)
}

func (h *Handler) UpdatePatron(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var in model.PatronInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	patron, err := h.svc.UpdatePatron(c.Request().Context(), id, in)
	if err != nil {
		return h.writeError(c, err, in)
	}
	return c.JSON(http.StatusOK, patron)
}

func (h *Handler) ListLoans(c echo.Context) error {
	search, page, err := listParams(c)
	if err != nil {
		return err
	}
	filter := model.ParseListFilter(c.QueryParam("filter"))
	loans, err := h.svc.ListLoans(c.Request().Context(), search, filter, page)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) GetLoan(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	loan, err := h.svc.GetLoan(c.Request().Context(), id)
	if err != nil {
		return h.readError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) CreateLoan(c echo.Context) error {
	var in model.LoanInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	loan, err := h.svc.CreateLoan(c.Request().Context(), in)
	if err != nil {
		return h.writeError(c, err, in)
	}
	return c.JSON(http.StatusCreated, loan)
}

func (h *Handler) UpdateLoan(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var in model.LoanInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	loan, err := h.svc.UpdateLoan(c.Request().Context(), id, in)
	if err != nil {
		return h.writeError(c, err, in)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) ReturnLoan(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var in model.ReturnInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	loan, err := h.svc.ReturnLoan(c.Request().Context(), id, in)
	if err != nil {
		return h.writeError(c, err, in)
	}
	return c.JSON(http.StatusOK, loan)
}
