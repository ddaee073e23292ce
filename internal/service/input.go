package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/readware/librarian/internal/model"
)

// Raw form values become typed records here. Every failing field
// contributes a message; the caller gets the full list at once.

func (s *Service) bookFromInput(in model.BookInput) (model.Book, []string) {
	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	in.Genre = strings.TrimSpace(in.Genre)

	msgs := s.validate.Messages(in)
	book := model.Book{
		Title:  in.Title,
		Author: in.Author,
		Genre:  in.Genre,
	}
	if raw := strings.TrimSpace(in.FirstPublished); raw != "" {
		year, err := strconv.Atoi(raw)
		currentYear := time.Now().Year()
		switch {
		case err != nil:
			msgs = append(msgs, "First published must be a whole year")
		case year < 0:
			msgs = append(msgs, "First published year must be greater than or equal to 0")
		case year > currentYear:
			msgs = append(msgs, fmt.Sprintf("First published year cannot be greater than %d", currentYear))
		default:
			book.FirstPublished = &year
		}
	}
	return book, msgs
}

// patronFromInput returns needAuto=true when no usable library_id was
// supplied and no stored value exists to fall back on, i.e. on create.
func (s *Service) patronFromInput(in model.PatronInput, current *model.Patron) (model.Patron, bool, []string) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Address = strings.TrimSpace(in.Address)
	in.Email = strings.TrimSpace(in.Email)

	msgs := s.validate.Messages(in)
	patron := model.Patron{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Address:   in.Address,
		Email:     in.Email,
	}

	needAuto := false
	if id, err := strconv.Atoi(strings.TrimSpace(in.LibraryID)); err == nil {
		patron.LibraryID = id
	} else if current != nil {
		patron.LibraryID = current.LibraryID
	} else {
		needAuto = true
	}

	if raw := strings.TrimSpace(in.ZipCode); raw == "" {
		msgs = append(msgs, "Zip code is required")
	} else if zip, err := strconv.Atoi(raw); err != nil {
		msgs = append(msgs, "Zip code must be an integer")
	} else {
		patron.ZipCode = zip
	}
	return patron, needAuto, msgs
}

// loanFromInput merges raw values over the stored loan when one is
// given: blank dates and ids keep the stored value, a blank
// returned_on clears it. On create (current == nil) blanks are
// missing required fields.
func (s *Service) loanFromInput(in model.LoanInput, current *model.Loan) (model.Loan, []string) {
	var loan model.Loan
	if current != nil {
		loan = *current
		loan.ReturnedOn = nil
	}

	var msgs []string
	if raw := strings.TrimSpace(in.BookID); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil {
			loan.BookID = id
		} else {
			msgs = append(msgs, "Book is required")
		}
	} else if current == nil {
		msgs = append(msgs, "Book is required")
	}

	if raw := strings.TrimSpace(in.PatronID); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil {
			loan.PatronID = id
		} else {
			msgs = append(msgs, "Patron is required")
		}
	} else if current == nil {
		msgs = append(msgs, "Patron is required")
	}

	if raw := strings.TrimSpace(in.LoanedOn); raw != "" {
		if d, err := model.ParseDate(raw); err == nil {
			loan.LoanedOn = d
		} else {
			msgs = append(msgs, "Loaned on must be a valid date")
		}
	} else if current == nil {
		msgs = append(msgs, "Loaned on date is required")
	}

	if raw := strings.TrimSpace(in.ReturnBy); raw != "" {
		if d, err := model.ParseDate(raw); err == nil {
			loan.ReturnBy = d
		} else {
			msgs = append(msgs, "Return by must be a valid date")
		}
	} else if current == nil {
		msgs = append(msgs, "Return by date is required")
	}

	if raw := strings.TrimSpace(in.ReturnedOn); raw != "" {
		if d, err := model.ParseDate(raw); err == nil {
			loan.ReturnedOn = &d
		} else {
			msgs = append(msgs, "Returned on must be a valid date")
		}
	}
	return loan, msgs
}
