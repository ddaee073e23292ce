package repository

import (
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/readware/librarian/internal/model"
)

// Users type search terms as text while several searchable columns are
// integers or dates, so those columns are canonicalized in-query with a
// ::text cast before the contains match. The cast runs in the database
// so LIMIT/OFFSET and COUNT stay correct under search.
type fieldKind int

const (
	fieldText fieldKind = iota
	fieldCast
)

type searchField struct {
	column string
	kind   fieldKind
}

type searchSchema struct {
	fields []searchField
	// exactInts are columns that additionally get an equality
	// alternative when the term is a clean integer (its own decimal
	// string form, no sign or leading zeros).
	exactInts []string
}

var bookSearch = searchSchema{
	fields: []searchField{
		{"title", fieldText},
		{"author", fieldText},
		{"genre", fieldText},
		{"first_published", fieldCast},
	},
	exactInts: []string{"first_published"},
}

var patronSearch = searchSchema{
	fields: []searchField{
		{"first_name", fieldText},
		{"last_name", fieldText},
		{"email", fieldText},
		{"address", fieldText},
		{"library_id", fieldCast},
		{"zip_code", fieldCast},
	},
}

var loanSearch = searchSchema{
	fields: []searchField{
		{"l.loaned_on", fieldCast},
		{"l.return_by", fieldCast},
		{"l.returned_on", fieldCast},
		{"b.title", fieldText},
		{"p.first_name", fieldText},
		{"p.last_name", fieldText},
		{"p.email", fieldText},
		{"p.address", fieldText},
		{"p.library_id", fieldCast},
	},
	exactInts: []string{"l.book_id", "l.patron_id"},
}

// searchPredicate builds the OR-of-field-matches filter for a raw
// search term. An empty or whitespace-only term yields nil, meaning no
// predicate at all.
func searchPredicate(schema searchSchema, term string) sq.Sqlizer {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	pattern := "%" + term + "%"

	or := sq.Or{}
	for _, f := range schema.fields {
		switch f.kind {
		case fieldText:
			or = append(or, sq.ILike{f.column: pattern})
		case fieldCast:
			or = append(or, sq.Expr(f.column+"::text ILIKE ?", pattern))
		}
	}
	if n, err := strconv.Atoi(term); err == nil && strconv.Itoa(n) == term {
		for _, column := range schema.exactInts {
			or = append(or, sq.Eq{column: n})
		}
	}
	return or
}

// statusPredicate maps the loan list filter onto returned_on/return_by
// conditions. "active" is broader than the point-in-time ACTIVE status:
// it only requires the loan to be unreturned.
func statusPredicate(filter model.ListFilter) sq.Sqlizer {
	switch filter {
	case model.FilterActive:
		return sq.Eq{"l.returned_on": nil}
	case model.FilterOverdue:
		return sq.And{
			sq.Eq{"l.returned_on": nil},
			sq.Expr("l.return_by < current_date"),
		}
	default:
		return nil
	}
}
