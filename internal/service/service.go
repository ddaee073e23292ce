package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/readware/librarian/internal/errs"
	"github.com/readware/librarian/internal/model"
	"github.com/readware/librarian/internal/repository"
	"github.com/readware/librarian/pkg/kafka"
	"github.com/readware/librarian/pkg/validate"
)

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	queue    kafka.Enqueuer
	validate *validate.Validator
}

func NewService(repo repository.Repository, queue kafka.Enqueuer, log *zap.Logger) *Service {
	return &Service{
		log:      log.Named("svc"),
		repo:     repo,
		queue:    queue,
		validate: validate.New(),
	}
}

func (s *Service) paging(page, total int, search string) model.Paging {
	pages := (total + model.PageSize - 1) / model.PageSize
	if pages == 0 {
		pages = 1
	}
	return model.Paging{
		Page:          page,
		PageSize:      model.PageSize,
		TotalElements: total,
		TotalPages:    pages,
		Search:        search,
	}
}

func (s *Service) ListBooks(ctx context.Context, search string, page int) (model.ListBooks, error) {
	items, total, err := s.repo.ListBooks(ctx, search, page)
	if err != nil {
		return model.ListBooks{}, err
	}
	return model.ListBooks{
		Paging: s.paging(page, total, search),
		Items:  items,
	}, nil
}

func (s *Service) GetBook(ctx context.Context, id int) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) CreateBook(ctx context.Context, in model.BookInput) (model.Book, error) {
	book, msgs := s.bookFromInput(in)
	if len(msgs) > 0 {
		return model.Book{}, errs.NewValidation(msgs...)
	}
	return s.repo.CreateBook(ctx, book)
}

// UpdateBook overwrites every book field with the supplied values; a
// blank first_published clears the year.
func (s *Service) UpdateBook(ctx context.Context, id int, in model.BookInput) (model.Book, error) {
	if _, err := s.repo.GetBook(ctx, id); err != nil {
		return model.Book{}, err
	}
	book, msgs := s.bookFromInput(in)
	if len(msgs) > 0 {
		return model.Book{}, errs.NewValidation(msgs...)
	}
	book.ID = id
	return s.repo.UpdateBook(ctx, book)
}

func (s *Service) ListPatrons(ctx context.Context, search string, page int) (model.ListPatrons, error) {
	items, total, err := s.repo.ListPatrons(ctx, search, page)
	if err != nil {
		return model.ListPatrons{}, err
	}
	return model.ListPatrons{
		Paging: s.paging(page, total, search),
		Items:  items,
	}, nil
}

func (s *Service) GetPatron(ctx context.Context, id int) (model.Patron, error) {
	return s.repo.GetPatron(ctx, id)
}

// CreatePatron assigns library_id as max(existing)+1 when the caller
// leaves it blank or non-numeric. The read-then-write races with
// concurrent creations; the unique index is the backstop and a
// violation comes back as a validation failure.
func (s *Service) CreatePatron(ctx context.Context, in model.PatronInput) (model.Patron, error) {
	patron, needAuto, msgs := s.patronFromInput(in, nil)
	if len(msgs) > 0 {
		return model.Patron{}, errs.NewValidation(msgs...)
	}
	if needAuto {
		maxID, err := s.repo.MaxLibraryID(ctx)
		if err != nil {
			return model.Patron{}, err
		}
		patron.LibraryID = maxID + 1
	}
	return s.repo.CreatePatron(ctx, patron)
}

func (s *Service) UpdatePatron(ctx context.Context, id int, in model.PatronInput) (model.Patron, error) {
	current, err := s.repo.GetPatron(ctx, id)
	if err != nil {
		return model.Patron{}, err
	}
	patron, _, msgs := s.patronFromInput(in, &current)
	if len(msgs) > 0 {
		return model.Patron{}, errs.NewValidation(msgs...)
	}
	patron.ID = id
	return s.repo.UpdatePatron(ctx, patron)
}

func (s *Service) ListLoans(ctx context.Context, search string, filter model.ListFilter, page int) (model.ListLoans, error) {
	items, total, err := s.repo.ListLoans(ctx, search, filter, page)
	if err != nil {
		return model.ListLoans{}, err
	}
	now := time.Now()
	for i := range items {
		items[i].Status = items[i].StatusAt(now)
	}
	return model.ListLoans{
		Paging: s.paging(page, total, search),
		Filter: filter,
		Items:  items,
	}, nil
}

func (s *Service) GetLoan(ctx context.Context, id int) (model.LoanDetail, error) {
	loan, err := s.repo.GetLoan(ctx, id)
	if err != nil {
		return model.LoanDetail{}, err
	}
	loan.Status = loan.StatusAt(time.Now())
	return loan, nil
}

func (s *Service) CreateLoan(ctx context.Context, in model.LoanInput) (model.Loan, error) {
	loan, msgs := s.loanFromInput(in, nil)
	if len(msgs) > 0 {
		return model.Loan{}, errs.NewValidation(msgs...)
	}
	created, err := s.repo.CreateLoan(ctx, loan)
	if err != nil {
		return model.Loan{}, err
	}
	s.enqueueLoanEvent(kafka.LoanCreated, created)
	return created, nil
}

// UpdateLoan falls back to the stored value for every field left
// blank, except returned_on, which a blank clears.
func (s *Service) UpdateLoan(ctx context.Context, id int, in model.LoanInput) (model.Loan, error) {
	current, err := s.repo.GetLoan(ctx, id)
	if err != nil {
		return model.Loan{}, err
	}
	loan, msgs := s.loanFromInput(in, &current.Loan)
	if len(msgs) > 0 {
		return model.Loan{}, errs.NewValidation(msgs...)
	}
	loan.ID = id
	updated, err := s.repo.UpdateLoan(ctx, loan)
	if err != nil {
		return model.Loan{}, err
	}
	s.enqueueLoanEvent(kafka.LoanUpdated, updated)
	return updated, nil
}

// ReturnLoan stamps returned_on, defaulting to today when the caller
// leaves the date blank.
func (s *Service) ReturnLoan(ctx context.Context, id int, in model.ReturnInput) (model.Loan, error) {
	current, err := s.repo.GetLoan(ctx, id)
	if err != nil {
		return model.Loan{}, err
	}
	returnedOn := model.NewDate(time.Now())
	if raw := strings.TrimSpace(in.ReturnedOn); raw != "" {
		returnedOn, err = model.ParseDate(raw)
		if err != nil {
			return model.Loan{}, errs.NewValidation("Returned on must be a valid date")
		}
	}
	loan := current.Loan
	loan.ReturnedOn = &returnedOn
	updated, err := s.repo.UpdateLoan(ctx, loan)
	if err != nil {
		return model.Loan{}, err
	}
	s.enqueueLoanEvent(kafka.LoanReturned, updated)
	return updated, nil
}

func (s *Service) enqueueLoanEvent(kind string, loan model.Loan) {
	event := kafka.LoanEvent{
		EventID:  uuid.NewString(),
		Kind:     kind,
		LoanID:   loan.ID,
		BookID:   loan.BookID,
		PatronID: loan.PatronID,
		At:       time.Now().UTC(),
	}
	if err := s.queue.Enqueue(kafka.LoanTopic, event); err != nil {
		s.log.Warn("enqueue loan event", zap.String("kind", kind), zap.Int("loanID", loan.ID), zap.Error(err))
	}
}
