package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// PageSize is the fixed window for every list endpoint.
const PageSize = 10

type Book struct {
	ID             int       `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Author         string    `json:"author" db:"author"`
	Genre          string    `json:"genre" db:"genre"`
	FirstPublished *int      `json:"firstPublished" db:"first_published"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

type Patron struct {
	ID        int    `json:"id" db:"id"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Address   string `json:"address" db:"address"`
	Email     string `json:"email" db:"email"`
	LibraryID int    `json:"libraryID" db:"library_id"`
	ZipCode   int    `json:"zipCode" db:"zip_code"`
}

type Loan struct {
	ID         int   `json:"id" db:"id"`
	BookID     int   `json:"bookID" db:"book_id"`
	PatronID   int   `json:"patronID" db:"patron_id"`
	LoanedOn   Date  `json:"loanedOn" db:"loaned_on"`
	ReturnBy   Date  `json:"returnBy" db:"return_by"`
	ReturnedOn *Date `json:"returnedOn" db:"returned_on"`
}

// LoanDetail is a Loan together with the associated book and patron
// columns joined in for list and show views, and the derived status.
type LoanDetail struct {
	Loan
	BookTitle       string     `json:"bookTitle" db:"book_title"`
	PatronFirstName string     `json:"patronFirstName" db:"patron_first_name"`
	PatronLastName  string     `json:"patronLastName" db:"patron_last_name"`
	PatronEmail     string     `json:"patronEmail" db:"patron_email"`
	PatronLibraryID int        `json:"patronLibraryID" db:"patron_library_id"`
	Status          LoanStatus `json:"status" db:"-"`
}

// Date is a DATEONLY value: midnight UTC, marshalled as 2006-01-02.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	date, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = date
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(src any) error {
	t, ok := src.(time.Time)
	if !ok {
		return fmt.Errorf("scan Date: unexpected type %T", src)
	}
	*d = NewDate(t)
	return nil
}

type Paging struct {
	Page          int    `json:"page"`
	PageSize      int    `json:"pageSize"`
	TotalElements int    `json:"totalElements"`
	TotalPages    int    `json:"totalPages"`
	Search        string `json:"search"`
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []Book `json:"items"`
}

type ListPatrons struct {
	Paging `json:",inline"`
	Items  []Patron `json:"items"`
}

type ListLoans struct {
	Paging `json:",inline"`
	Filter ListFilter   `json:"filter"`
	Items  []LoanDetail `json:"items"`
}

// BookInput carries the raw form values for a book write. Parsing and
// validation happen in the service so every failure is collected.
type BookInput struct {
	Title          string `json:"title" form:"title" label:"Title" validate:"required,max=150"`
	Author         string `json:"author" form:"author" label:"Author" validate:"required,max=150"`
	Genre          string `json:"genre" form:"genre" label:"Genre" validate:"required,max=100"`
	FirstPublished string `json:"firstPublished" form:"first_published" validate:"-"`
}

type PatronInput struct {
	FirstName string `json:"firstName" form:"first_name" label:"First name" validate:"required,max=150"`
	LastName  string `json:"lastName" form:"last_name" label:"Last name" validate:"required,max=150"`
	Address   string `json:"address" form:"address" label:"Address" validate:"required,max=255"`
	Email     string `json:"email" form:"email" label:"Email" validate:"required,email"`
	LibraryID string `json:"libraryID" form:"library_id" validate:"-"`
	ZipCode   string `json:"zipCode" form:"zip_code" validate:"-"`
}

type LoanInput struct {
	BookID     string `json:"bookID" form:"book_id"`
	PatronID   string `json:"patronID" form:"patron_id"`
	LoanedOn   string `json:"loanedOn" form:"loaned_on"`
	ReturnBy   string `json:"returnBy" form:"return_by"`
	ReturnedOn string `json:"returnedOn" form:"returned_on"`
}

type ReturnInput struct {
	ReturnedOn string `json:"returnedOn" form:"returned_on"`
}

// ValidationResponse re-presents the attempted input next to the
// collected messages, the shape the boundary renders with a 422.
type ValidationResponse struct {
	Fields any      `json:"fields"`
	Errors []string `json:"errors"`
}
