package repository

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/readware/librarian/internal/errs"
	"github.com/readware/librarian/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	ListBooks(ctx context.Context, search string, page int) ([]model.Book, int, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	UpdateBook(ctx context.Context, book model.Book) (model.Book, error)

	ListPatrons(ctx context.Context, search string, page int) ([]model.Patron, int, error)
	GetPatron(ctx context.Context, id int) (model.Patron, error)
	CreatePatron(ctx context.Context, patron model.Patron) (model.Patron, error)
	UpdatePatron(ctx context.Context, patron model.Patron) (model.Patron, error)
	MaxLibraryID(ctx context.Context) (int, error)

	ListLoans(ctx context.Context, search string, filter model.ListFilter, page int) ([]model.LoanDetail, int, error)
	GetLoan(ctx context.Context, id int) (model.LoanDetail, error)
	CreateLoan(ctx context.Context, loan model.Loan) (model.Loan, error)
	UpdateLoan(ctx context.Context, loan model.Loan) (model.Loan, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName   = `books`
	patronsTableName = `patrons`
	loansTableName   = `loans`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var loanColumns = []string{
	"l.id", "l.book_id", "l.patron_id", "l.loaned_on", "l.return_by", "l.returned_on",
	"b.title as book_title",
	"p.first_name as patron_first_name",
	"p.last_name as patron_last_name",
	"p.email as patron_email",
	"p.library_id as patron_library_id",
}

// windowOffset gives the OFFSET for a 1-based page and whether a fetch
// should run at all. A page at or below zero produces a negative
// offset; that window is "no rows", not an error.
func windowOffset(page int) (offset int, fetch bool) {
	offset = (page - 1) * model.PageSize
	return offset, offset >= 0
}

// listWindow runs count and fetch for one page concurrently. When the
// window selects no rows the fetch is skipped while the count still
// runs.
func (r *repository) listWindow(ctx context.Context, countQ, listQ sq.SelectBuilder, page int, dest any) (int, error) {
	offset, fetch := windowOffset(page)

	var total int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		query, args, err := countQ.ToSql()
		if err != nil {
			return err
		}
		return r.db.GetContext(gctx, &total, query, args...)
	})
	g.Go(func() error {
		if !fetch {
			return nil
		}
		query, args, err := listQ.Limit(model.PageSize).Offset(uint64(offset)).ToSql()
		if err != nil {
			return err
		}
		r.log.Debug("list", zap.String("query", query), zap.Any("args", args))
		return r.db.SelectContext(gctx, dest, query, args...)
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *repository) ListBooks(ctx context.Context, search string, page int) ([]model.Book, int, error) {
	countQ := qb.Select("count(*)").From(booksTableName)
	listQ := qb.Select("id", "title", "author", "genre", "first_published", "created_at", "updated_at").
		From(booksTableName).
		OrderBy("title asc")
	if pred := searchPredicate(bookSearch, search); pred != nil {
		countQ = countQ.Where(pred)
		listQ = listQ.Where(pred)
	}

	books := make([]model.Book, 0, model.PageSize)
	total, err := r.listWindow(ctx, countQ, listQ, page, &books)
	if err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func (r *repository) GetBook(ctx context.Context, id int) (model.Book, error) {
	query, args, err := qb.Select("id", "title", "author", "genre", "first_published", "created_at", "updated_at").
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("title", "author", "genre", "first_published").
		Values(book.Title, book.Author, book.Genre, book.FirstPublished).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var created model.Book
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args))
		return model.Book{}, err
	}
	return created, nil
}

func (r *repository) UpdateBook(ctx context.Context, book model.Book) (model.Book, error) {
	query, args, err := qb.Update(booksTableName).
		Set("title", book.Title).
		Set("author", book.Author).
		Set("genre", book.Genre).
		Set("first_published", book.FirstPublished).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": book.ID}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var updated model.Book
	if err := r.db.GetContext(ctx, &updated, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return updated, nil
}

func (r *repository) ListPatrons(ctx context.Context, search string, page int) ([]model.Patron, int, error) {
	countQ := qb.Select("count(*)").From(patronsTableName)
	listQ := qb.Select("id", "first_name", "last_name", "address", "email", "library_id", "zip_code").
		From(patronsTableName).
		OrderBy("last_name asc", "first_name asc")
	if pred := searchPredicate(patronSearch, search); pred != nil {
		countQ = countQ.Where(pred)
		listQ = listQ.Where(pred)
	}

	patrons := make([]model.Patron, 0, model.PageSize)
	total, err := r.listWindow(ctx, countQ, listQ, page, &patrons)
	if err != nil {
		return nil, 0, err
	}
	return patrons, total, nil
}

func (r *repository) GetPatron(ctx context.Context, id int) (model.Patron, error) {
	query, args, err := qb.Select("id", "first_name", "last_name", "address", "email", "library_id", "zip_code").
		From(patronsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Patron{}, err
	}
	var patron model.Patron
	if err := r.db.GetContext(ctx, &patron, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Patron{}, errs.ErrNotFound
		}
		return model.Patron{}, err
	}
	return patron, nil
}

func (r *repository) CreatePatron(ctx context.Context, patron model.Patron) (model.Patron, error) {
	query, args, err := qb.Insert(patronsTableName).
		Columns("first_name", "last_name", "address", "email", "library_id", "zip_code").
		Values(patron.FirstName, patron.LastName, patron.Address, patron.Email, patron.LibraryID, patron.ZipCode).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Patron{}, err
	}
	var created model.Patron
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		return model.Patron{}, classifyIntegrityError(err)
	}
	return created, nil
}

func (r *repository) UpdatePatron(ctx context.Context, patron model.Patron) (model.Patron, error) {
	query, args, err := qb.Update(patronsTableName).
		Set("first_name", patron.FirstName).
		Set("last_name", patron.LastName).
		Set("address", patron.Address).
		Set("email", patron.Email).
		Set("library_id", patron.LibraryID).
		Set("zip_code", patron.ZipCode).
		Where(sq.Eq{"id": patron.ID}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Patron{}, err
	}
	var updated model.Patron
	if err := r.db.GetContext(ctx, &updated, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Patron{}, errs.ErrNotFound
		}
		return model.Patron{}, classifyIntegrityError(err)
	}
	return updated, nil
}

func (r *repository) MaxLibraryID(ctx context.Context) (int, error) {
	q := `select coalesce(max(library_id), 0) from patrons`
	var max int
	if err := r.db.GetContext(ctx, &max, q); err != nil {
		return 0, err
	}
	return max, nil
}

func (r *repository) loansBase(columns ...string) sq.SelectBuilder {
	// FK columns are not null, so the left joins select exactly the
	// loan rows an inner join would; no loan is dropped or duplicated
	// when no cross-entity search is active.
	return qb.Select(columns...).
		From(loansTableName + " l").
		LeftJoin(booksTableName + " b on b.id = l.book_id").
		LeftJoin(patronsTableName + " p on p.id = l.patron_id")
}

func (r *repository) ListLoans(ctx context.Context, search string, filter model.ListFilter, page int) ([]model.LoanDetail, int, error) {
	// distinct on the base key keeps the count in loan rows even with
	// the joins in place.
	countQ := r.loansBase("count(distinct l.id)")
	listQ := r.loansBase(loanColumns...).OrderBy("l.loaned_on desc")

	if pred := statusPredicate(filter); pred != nil {
		countQ = countQ.Where(pred)
		listQ = listQ.Where(pred)
	}
	if pred := searchPredicate(loanSearch, search); pred != nil {
		countQ = countQ.Where(pred)
		listQ = listQ.Where(pred)
	}

	loans := make([]model.LoanDetail, 0, model.PageSize)
	total, err := r.listWindow(ctx, countQ, listQ, page, &loans)
	if err != nil {
		return nil, 0, err
	}
	return loans, total, nil
}

func (r *repository) GetLoan(ctx context.Context, id int) (model.LoanDetail, error) {
	query, args, err := r.loansBase(loanColumns...).
		Where(sq.Eq{"l.id": id}).
		ToSql()
	if err != nil {
		return model.LoanDetail{}, err
	}
	var loan model.LoanDetail
	if err := r.db.GetContext(ctx, &loan, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.LoanDetail{}, errs.ErrNotFound
		}
		return model.LoanDetail{}, err
	}
	return loan, nil
}

func (r *repository) CreateLoan(ctx context.Context, loan model.Loan) (model.Loan, error) {
	query, args, err := qb.Insert(loansTableName).
		Columns("book_id", "patron_id", "loaned_on", "return_by", "returned_on").
		Values(loan.BookID, loan.PatronID, loan.LoanedOn, loan.ReturnBy, loan.ReturnedOn).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	var created model.Loan
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		r.log.Error("CreateLoan", zap.String("q", query), zap.Any("args", args))
		return model.Loan{}, classifyIntegrityError(err)
	}
	return created, nil
}

func (r *repository) UpdateLoan(ctx context.Context, loan model.Loan) (model.Loan, error) {
	query, args, err := qb.Update(loansTableName).
		Set("book_id", loan.BookID).
		Set("patron_id", loan.PatronID).
		Set("loaned_on", loan.LoanedOn).
		Set("return_by", loan.ReturnBy).
		Set("returned_on", loan.ReturnedOn).
		Where(sq.Eq{"id": loan.ID}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	var updated model.Loan
	if err := r.db.GetContext(ctx, &updated, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrNotFound
		}
		return model.Loan{}, classifyIntegrityError(err)
	}
	return updated, nil
}

// classifyIntegrityError folds store-level constraint violations into
// the validation taxonomy: a duplicate library id or a loan pointing at
// a missing book/patron is a recoverable field error, not a fault.
func classifyIntegrityError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return errs.NewValidation("Library ID is already in use")
	case pgerrcode.ForeignKeyViolation:
		if strings.Contains(pgErr.ConstraintName, "book") {
			return errs.NewValidation("Book does not exist")
		}
		return errs.NewValidation("Patron does not exist")
	}
	return err
}
