package validate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/readware/librarian/pkg/validate"
)

func TestMessages(t *testing.T) {
	t.Parallel()

	type form struct {
		Name  string `label:"First name" validate:"required,max=5"`
		Email string `label:"Email" validate:"required,email"`
	}

	v := validate.New()

	require.Empty(t, v.Messages(form{Name: "Ada", Email: "ada@example.com"}))

	msgs := v.Messages(form{})
	require.Equal(t, []string{"First name is required", "Email is required"}, msgs)

	msgs = v.Messages(form{Name: "Adalovelace", Email: "not-an-email"})
	require.Equal(t, []string{
		"First name must be at most 5 characters",
		"Please provide a valid email address",
	}, msgs)
}
