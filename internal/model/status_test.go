package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/readware/librarian/internal/model"
)

func date(s string) model.Date {
	d, err := model.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestLoanStatusAt(t *testing.T) {
	t.Parallel()

	asOf := time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC)
	returned := date("2024-01-02")

	tests := []struct {
		name string
		loan model.Loan
		want model.LoanStatus
	}{
		{
			name: "returned wins over overdue dates",
			loan: model.Loan{ReturnBy: date("2024-01-01"), ReturnedOn: &returned},
			want: model.StatusReturned,
		},
		{
			name: "returned wins even when due in the future",
			loan: model.Loan{ReturnBy: date("2024-12-01"), ReturnedOn: &returned},
			want: model.StatusReturned,
		},
		{
			name: "outstanding past due is overdue",
			loan: model.Loan{ReturnBy: date("2024-03-14")},
			want: model.StatusOverdue,
		},
		{
			name: "due today is still active",
			loan: model.Loan{ReturnBy: date("2024-03-15")},
			want: model.StatusActive,
		},
		{
			name: "due in the future is active",
			loan: model.Loan{ReturnBy: date("2024-04-01")},
			want: model.StatusActive,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.loan.StatusAt(asOf))
		})
	}
}

func TestParseListFilter(t *testing.T) {
	t.Parallel()

	require.Equal(t, model.FilterActive, model.ParseListFilter("active"))
	require.Equal(t, model.FilterOverdue, model.ParseListFilter("overdue"))
	require.Equal(t, model.FilterAll, model.ParseListFilter("all"))
	require.Equal(t, model.FilterAll, model.ParseListFilter(""))
	require.Equal(t, model.FilterAll, model.ParseListFilter("bogus"))
}
