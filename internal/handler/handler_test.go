package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/readware/librarian/internal/errs"
	"github.com/readware/librarian/internal/handler"
	service_mocks "github.com/readware/librarian/internal/handler/mocks"
	"github.com/readware/librarian/internal/model"
)

func newEcho(t *testing.T) (*echo.Echo, *service_mocks.MockLibrarianService) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	svc := service_mocks.NewMockLibrarianService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	e := echo.New()
	e.GET("/books", h.ListBooks)
	e.POST("/books", h.CreateBook)
	e.GET("/books/:id", h.GetBook)
	e.PUT("/books/:id", h.UpdateBook)
	e.GET("/loans", h.ListLoans)
	e.POST("/loans", h.CreateLoan)
	e.PUT("/loans/:id/return", h.ReturnLoan)
	e.GET("/patrons/:id", h.GetPatron)
	e.POST("/patrons", h.CreatePatron)
	return e, svc
}

func TestHandler_ListBooks(t *testing.T) {
	t.Parallel()

	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibrarianService)

	var tests = []struct {
		name         string
		target       string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:   "ok",
			target: "/books?search=go&page=1",
			mockBehavior: func(r *service_mocks.MockLibrarianService) {
				r.EXPECT().
					ListBooks(context.Background(), "go", 1).
					Return(model.ListBooks{
						Paging: model.Paging{
							Page:          1,
							PageSize:      10,
							TotalElements: 1,
							TotalPages:    1,
							Search:        "go",
						},
						Items: []model.Book{
							{
								ID:     1,
								Title:  "The Go Programming Language",
								Author: "Donovan",
								Genre:  "Tech",
							},
						},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"page":1,"pageSize":10,"totalElements":1,"totalPages":1,"search":"go","items":[{"id":1,"title":"The Go Programming Language","author":"Donovan","genre":"Tech","firstPublished":null,"createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}]}`,
			},
		},
		{
			name:         "err. page is invalid",
			target:       "/books?page=abc",
			mockBehavior: func(r *service_mocks.MockLibrarianService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"page is invalid"}`,
			},
		},
		{
			name:   "err. internal",
			target: "/books",
			mockBehavior: func(r *service_mocks.MockLibrarianService) {
				r.EXPECT().
					ListBooks(context.Background(), "", 1).
					Return(model.ListBooks{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc := newEcho(t)
			tt.mockBehavior(svc)

			r := httptest.NewRequest(http.MethodGet, tt.target, http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetBook(t *testing.T) {
	t.Parallel()

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		e, svc := newEcho(t)
		svc.EXPECT().
			GetBook(context.Background(), 777).
			Return(model.Book{}, errs.ErrNotFound)

		r := httptest.NewRequest(http.MethodGet, "/books/777", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id is not found, not bad request", func(t *testing.T) {
		t.Parallel()
		e, _ := newEcho(t)

		r := httptest.NewRequest(http.MethodGet, "/books/abc", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_CreateBook(t *testing.T) {
	t.Parallel()

	t.Run("created", func(t *testing.T) {
		t.Parallel()
		e, svc := newEcho(t)
		svc.EXPECT().
			CreateBook(context.Background(), model.BookInput{
				Title: "Dune", Author: "Herbert", Genre: "SF", FirstPublished: "1965",
			}).
			Return(model.Book{ID: 3, Title: "Dune", Author: "Herbert", Genre: "SF"}, nil)

		body := `{"title":"Dune","author":"Herbert","genre":"SF","firstPublished":"1965"}`
		r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(body))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("validation failure re-presents input", func(t *testing.T) {
		t.Parallel()
		e, svc := newEcho(t)
		svc.EXPECT().
			CreateBook(context.Background(), model.BookInput{Genre: "SF"}).
			Return(model.Book{}, errs.NewValidation("Title is required", "Author is required"))

		r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(`{"genre":"SF"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.JSONEq(t,
			`{"fields":{"title":"","author":"","genre":"SF","firstPublished":""},"errors":["Title is required","Author is required"]}`,
			w.Body.String())
	})
}

func TestHandler_CreatePatron(t *testing.T) {
	t.Parallel()

	t.Run("created", func(t *testing.T) {
		t.Parallel()
		e, svc := newEcho(t)
		svc.EXPECT().
			CreatePatron(context.Background(), model.PatronInput{
				FirstName: "Ada", LastName: "Lovelace", Address: "12 Analytical Ln",
				Email: "ada@example.com", ZipCode: "12345",
			}).
			Return(model.Patron{ID: 1, LibraryID: 10}, nil)

		body := `{"firstName":"Ada","lastName":"Lovelace","address":"12 Analytical Ln","email":"ada@example.com","zipCode":"12345"}`
		r := httptest.NewRequest(http.MethodPost, "/patrons", strings.NewReader(body))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("validation failure re-presents input", func(t *testing.T) {
		t.Parallel()
		e, svc := newEcho(t)
		svc.EXPECT().
			CreatePatron(context.Background(), model.PatronInput{Email: "nope", ZipCode: "12345"}).
			Return(model.Patron{}, errs.NewValidation(
				"First name is required",
				"Last name is required",
				"Address is required",
				"Please provide a valid email address",
			))

		r := httptest.NewRequest(http.MethodPost, "/patrons", strings.NewReader(`{"email":"nope","zipCode":"12345"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.JSONEq(t,
			`{"fields":{"firstName":"","lastName":"","address":"","email":"nope","libraryID":"","zipCode":"12345"},"errors":["First name is required","Last name is required","Address is required","Please provide a valid email address"]}`,
			w.Body.String())
	})
}

func TestHandler_CreateLoan(t *testing.T) {
	t.Parallel()

	t.Run("validation failure re-presents input", func(t *testing.T) {
		t.Parallel()
		e, svc := newEcho(t)
		svc.EXPECT().
			CreateLoan(context.Background(), model.LoanInput{BookID: "1"}).
			Return(model.Loan{}, errs.NewValidation(
				"Patron is required",
				"Loaned on date is required",
				"Return by date is required",
			))

		r := httptest.NewRequest(http.MethodPost, "/loans", strings.NewReader(`{"bookID":"1"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.JSONEq(t,
			`{"fields":{"bookID":"1","patronID":"","loanedOn":"","returnBy":"","returnedOn":""},"errors":["Patron is required","Loaned on date is required","Return by date is required"]}`,
			w.Body.String())
	})
}

func TestHandler_ListLoansFilter(t *testing.T) {
	t.Parallel()

	e, svc := newEcho(t)
	svc.EXPECT().
		ListLoans(context.Background(), "", model.FilterOverdue, 1).
		Return(model.ListLoans{
			Paging: model.Paging{Page: 1, PageSize: 10, TotalPages: 1},
			Filter: model.FilterOverdue,
			Items:  []model.LoanDetail{},
		}, nil)

	r := httptest.NewRequest(http.MethodGet, "/loans?filter=overdue", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"filter":"overdue"`)
}

func TestHandler_ReturnLoan(t *testing.T) {
	t.Parallel()

	e, svc := newEcho(t)
	returned, err := model.ParseDate("2024-03-10")
	require.NoError(t, err)
	svc.EXPECT().
		ReturnLoan(context.Background(), 5, model.ReturnInput{ReturnedOn: "2024-03-10"}).
		Return(model.Loan{ID: 5, ReturnedOn: &returned}, nil)

	r := httptest.NewRequest(http.MethodPut, "/loans/5/return", strings.NewReader(`{"returnedOn":"2024-03-10"}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"returnedOn":"2024-03-10"`)
}

func TestHandler_GetPatron(t *testing.T) {
	t.Parallel()

	e, svc := newEcho(t)
	svc.EXPECT().
		GetPatron(context.Background(), 2).
		Return(model.Patron{ID: 2, FirstName: "Ada", LastName: "Lovelace", LibraryID: 7, ZipCode: 12345, Address: "12 Analytical Ln", Email: "ada@example.com"}, nil)

	r := httptest.NewRequest(http.MethodGet, "/patrons/2", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t,
		`{"id":2,"firstName":"Ada","lastName":"Lovelace","address":"12 Analytical Ln","email":"ada@example.com","libraryID":7,"zipCode":12345}`,
		w.Body.String())
}
