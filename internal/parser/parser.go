package parser

import (
	"fmt"
	"strings"

	"github.com/baltfin/csv2ofx/internal/models"
)

// Parser defines the interface for bank statement parsers.
type Parser interface {
	// Parse takes raw CSV text and returns the normalized statement.
	Parse(content string) (*models.Statement, error)
	// BankName returns the human-readable bank name.
	BankName() string
}

// New returns the appropriate parser for the given bank format.
func New(format models.BankFormat) (Parser, error) {
	switch format {
	case models.FormatSwedbank:
		return &SwedbankParser{}, nil
	case models.FormatRevolut:
		return &RevolutParser{}, nil
	case models.FormatN26:
		return &N26Parser{}, nil
	case models.FormatCitadele:
		return &CitadeleParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported bank format: %q", format)
	}
}

// Parse detects nothing and converts content with the named format's parser.
func Parse(format models.BankFormat, content string) (*models.Statement, error) {
	p, err := New(format)
	if err != nil {
		return nil, err
	}
	return p.Parse(content)
}

// DetectFormat identifies the bank dialect from the first line of the
// file. It returns "" when no rule matches; an unrecognized file is a
// first-class outcome, not an error.
func DetectFormat(content string) models.BankFormat {
	firstLine, _, _ := strings.Cut(content, "\n")
	firstLine = strings.TrimSpace(firstLine)

	switch {
	// Swedbank exports quote every field, starting with the account header
	// or the account number itself.
	case strings.HasPrefix(firstLine, `"Sąskaitos`) || strings.HasPrefix(firstLine, `"LT`):
		return models.FormatSwedbank
	case strings.HasPrefix(firstLine, "Type,Product,Started Date"):
		return models.FormatRevolut
	case strings.Contains(firstLine, `"Date"`) && strings.Contains(firstLine, `"Payee"`):
		return models.FormatN26
	case strings.HasPrefix(firstLine, "Citadele"):
		return models.FormatCitadele
	default:
		return ""
	}
}
