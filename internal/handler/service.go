package handler

import (
	"context"

	"github.com/readware/librarian/internal/model"
	"github.com/readware/librarian/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LibrarianService interface {
	ListBooks(ctx context.Context, search string, page int) (model.ListBooks, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	CreateBook(ctx context.Context, in model.BookInput) (model.Book, error)
	UpdateBook(ctx context.Context, id int, in model.BookInput) (model.Book, error)

	ListPatrons(ctx context.Context, search string, page int) (model.ListPatrons, error)
	GetPatron(ctx context.Context, id int) (model.Patron, error)
	CreatePatron(ctx context.Context, in model.PatronInput) (model.Patron, error)
	UpdatePatron(ctx context.Context, id int, in model.PatronInput) (model.Patron, error)

	ListLoans(ctx context.Context, search string, filter model.ListFilter, page int) (model.ListLoans, error)
	GetLoan(ctx context.Context, id int) (model.LoanDetail, error)
	CreateLoan(ctx context.Context, in model.LoanInput) (model.Loan, error)
	UpdateLoan(ctx context.Context, id int, in model.LoanInput) (model.Loan, error)
	ReturnLoan(ctx context.Context, id int, in model.ReturnInput) (model.Loan, error)
}

var _ LibrarianService = (*service.Service)(nil)
