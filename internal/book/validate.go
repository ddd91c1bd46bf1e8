package book

import (
	"fmt"
	"strings"
	"time"

	"bookcatalog/internal/isbn"
)

const (
	maxTitleLen        = 255
	maxAuthorLen       = 255
	maxISBNLen         = 20
	maxPriceScale      = 2
	minPublicationYear = 1500
)

// A checkFunc inspects one concern of a candidate and returns zero or more
// error messages. Checks are independent of each other and must not touch
// any state outside the candidate.
type checkFunc func(Candidate) []string

// checks lists every validator in declaration order. The aggregate message
// order follows this slice, so tests can assert on it deterministically.
var checks = []checkFunc{
	checkTitle,
	checkAuthor,
	checkISBN,
	checkPrice,
	checkPublicationYear,
}

// Validate runs every check against the candidate and returns a
// *ValidationError with the flattened message list if any check failed.
func Validate(c Candidate) error {
	var messages []string
	for _, check := range checks {
		messages = append(messages, check(c)...)
	}
	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}
	return nil
}

func checkTitle(c Candidate) []string {
	if strings.TrimSpace(c.Title) == "" {
		return []string{"Title must not be empty"}
	}
	// Length is checked against the raw value, not the trimmed one.
	if len(c.Title) > maxTitleLen {
		return []string{fmt.Sprintf("Title must not exceed %d characters", maxTitleLen)}
	}
	return nil
}

func checkAuthor(c Candidate) []string {
	if strings.TrimSpace(c.Author) == "" {
		return []string{"Author must not be empty"}
	}
	if len(c.Author) > maxAuthorLen {
		return []string{fmt.Sprintf("Author must not exceed %d characters", maxAuthorLen)}
	}
	return nil
}

func checkISBN(c Candidate) []string {
	if strings.TrimSpace(c.ISBN) == "" {
		return []string{"ISBN must not be empty"}
	}
	normalized := isbn.Normalize(c.ISBN)
	if len(normalized) > maxISBNLen {
		return []string{fmt.Sprintf("ISBN must not exceed %d characters", maxISBNLen)}
	}
	if !isbn.IsValidFormat(normalized) {
		return []string{"Invalid ISBN format. Examples: '1234567890' or '9781234567890'"}
	}
	return nil
}

func checkPrice(c Candidate) []string {
	if c.Price == nil {
		return []string{"Price must not be null"}
	}
	if c.Price.Sign() <= 0 {
		return []string{"Price must be greater than 0"}
	}
	if c.Price.Exponent() < -maxPriceScale {
		return []string{fmt.Sprintf("Price must have at most %d decimal places", maxPriceScale)}
	}
	return nil
}

func checkPublicationYear(c Candidate) []string {
	currentYear := time.Now().Year()
	if c.PublicationYear == nil {
		return []string{"Publication year must not be null"}
	}
	if *c.PublicationYear < minPublicationYear {
		return []string{fmt.Sprintf("Publication year must be at least %d", minPublicationYear)}
	}
	if *c.PublicationYear > currentYear {
		return []string{fmt.Sprintf("Publication year must not exceed current year %d", currentYear)}
	}
	return nil
}
