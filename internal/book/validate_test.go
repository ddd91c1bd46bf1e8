package book

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCandidate() Candidate {
	price := decimal.RequireFromString("100.00")
	year := 1869
	return Candidate{
		Title:           "Война и мир",
		Author:          "Tolstoy",
		ISBN:            "978-3-16-148410-0",
		Price:           &price,
		PublicationYear: &year,
	}
}

func validationMessages(t *testing.T, c Candidate) []string {
	t.Helper()
	err := Validate(c)
	require.Error(t, err)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	return vErr.Messages
}

func TestValidate_ValidCandidate(t *testing.T) {
	assert.NoError(t, Validate(validCandidate()))
}

func TestValidate_Title(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		c := validCandidate()
		c.Title = ""
		assert.Contains(t, validationMessages(t, c), "Title must not be empty")
	})

	t.Run("blank", func(t *testing.T) {
		c := validCandidate()
		c.Title = "   "
		assert.Contains(t, validationMessages(t, c), "Title must not be empty")
	})

	t.Run("too long", func(t *testing.T) {
		c := validCandidate()
		c.Title = strings.Repeat("a", 256)
		assert.Contains(t, validationMessages(t, c), "Title must not exceed 255 characters")
	})

	t.Run("boundary length passes", func(t *testing.T) {
		c := validCandidate()
		c.Title = strings.Repeat("a", 255)
		assert.NoError(t, Validate(c))
	})

	t.Run("length checked against raw value", func(t *testing.T) {
		// 250 letters padded with blanks past the limit: not blank, but the
		// unstripped length exceeds 255.
		c := validCandidate()
		c.Title = strings.Repeat("a", 250) + strings.Repeat(" ", 10)
		assert.Contains(t, validationMessages(t, c), "Title must not exceed 255 characters")
	})
}

func TestValidate_Author(t *testing.T) {
	t.Run("blank", func(t *testing.T) {
		c := validCandidate()
		c.Author = " "
		assert.Contains(t, validationMessages(t, c), "Author must not be empty")
	})

	t.Run("too long", func(t *testing.T) {
		c := validCandidate()
		c.Author = strings.Repeat("b", 256)
		assert.Contains(t, validationMessages(t, c), "Author must not exceed 255 characters")
	})
}

func TestValidate_ISBN(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		c := validCandidate()
		c.ISBN = ""
		assert.Contains(t, validationMessages(t, c), "ISBN must not be empty")
	})

	t.Run("too long after normalization", func(t *testing.T) {
		c := validCandidate()
		c.ISBN = strings.Repeat("1", 21)
		msgs := validationMessages(t, c)
		assert.Contains(t, msgs, "ISBN must not exceed 20 characters")
		// Length failure short-circuits the format check.
		assert.NotContains(t, msgs, "Invalid ISBN format. Examples: '1234567890' or '9781234567890'")
	})

	t.Run("bad format", func(t *testing.T) {
		c := validCandidate()
		c.ISBN = "12345"
		assert.Contains(t, validationMessages(t, c), "Invalid ISBN format. Examples: '1234567890' or '9781234567890'")
	})

	t.Run("hyphenated isbn10 with x check digit passes", func(t *testing.T) {
		c := validCandidate()
		c.ISBN = "1-234-56789-x"
		assert.NoError(t, Validate(c))
	})
}

func TestValidate_Price(t *testing.T) {
	setPrice := func(v string) Candidate {
		c := validCandidate()
		p := decimal.RequireFromString(v)
		c.Price = &p
		return c
	}

	t.Run("nil yields exactly one price error", func(t *testing.T) {
		c := validCandidate()
		c.Price = nil
		msgs := validationMessages(t, c)
		assert.Contains(t, msgs, "Price must not be null")
		assert.Len(t, msgs, 1)
	})

	t.Run("zero", func(t *testing.T) {
		assert.Contains(t, validationMessages(t, setPrice("0")), "Price must be greater than 0")
	})

	t.Run("negative", func(t *testing.T) {
		assert.Contains(t, validationMessages(t, setPrice("-5.99")), "Price must be greater than 0")
	})

	t.Run("too many decimal places", func(t *testing.T) {
		assert.Contains(t, validationMessages(t, setPrice("10.123")), "Price must have at most 2 decimal places")
	})

	t.Run("two decimal places passes", func(t *testing.T) {
		assert.NoError(t, Validate(setPrice("0.01")))
		assert.NoError(t, Validate(setPrice("99.99")))
	})
}

func TestValidate_PublicationYear(t *testing.T) {
	setYear := func(y int) Candidate {
		c := validCandidate()
		c.PublicationYear = &y
		return c
	}
	currentYear := time.Now().Year()

	t.Run("nil", func(t *testing.T) {
		c := validCandidate()
		c.PublicationYear = nil
		assert.Contains(t, validationMessages(t, c), "Publication year must not be null")
	})

	t.Run("before 1500", func(t *testing.T) {
		assert.Contains(t, validationMessages(t, setYear(1499)), "Publication year must be at least 1500")
	})

	t.Run("in the future", func(t *testing.T) {
		assert.Contains(t, validationMessages(t, setYear(currentYear+1)),
			fmt.Sprintf("Publication year must not exceed current year %d", currentYear))
	})

	t.Run("boundaries pass", func(t *testing.T) {
		assert.NoError(t, Validate(setYear(1500)))
		assert.NoError(t, Validate(setYear(currentYear)))
	})
}

func TestValidate_AggregatesInDeclarationOrder(t *testing.T) {
	c := Candidate{} // everything absent
	msgs := validationMessages(t, c)

	assert.Equal(t, []string{
		"Title must not be empty",
		"Author must not be empty",
		"ISBN must not be empty",
		"Price must not be null",
		"Publication year must not be null",
	}, msgs)
}
