package models

// TransactionType classifies the sign of a transaction amount.
type TransactionType string

const (
	Debit  TransactionType = "debit"
	Credit TransactionType = "credit"
)

// Transaction represents a single normalized statement entry.
type Transaction struct {
	Type   TransactionType `json:"type"`
	Date   string          `json:"date"`   // effective date, YYYY-MM-DD
	ID     string          `json:"id"`     // statement-unique, never empty
	Amount string          `json:"amount"` // decimal string, sign matches Type
	Payee  string          `json:"payee"`
	Memo   string          `json:"memo"`
	Orig   string          `json:"orig"` // untouched source memo, for traceability
}

// Statement holds the full parsed result of one exported file.
// Trx preserves source row order after filtering; From and To are the
// dates of the first and last included transaction, not a sorted range.
type Statement struct {
	From string        `json:"from"`
	To   string        `json:"to"`
	Trx  []Transaction `json:"trx"`
}

// BankFormat identifies a supported bank CSV dialect.
type BankFormat string

const (
	FormatSwedbank BankFormat = "swedbank"
	FormatRevolut  BankFormat = "revolut"
	FormatN26      BankFormat = "n26"
	FormatCitadele BankFormat = "citadele"
)

// FormatLabel maps a format tag to its human-readable name.
var FormatLabel = map[BankFormat]string{
	FormatSwedbank: "Swedbank LT",
	FormatRevolut:  "Revolut",
	FormatN26:      "N26",
	FormatCitadele: "Citadele",
}

// SupportedFormats lists the format tags in detection priority order.
var SupportedFormats = []BankFormat{
	FormatSwedbank,
	FormatRevolut,
	FormatN26,
	FormatCitadele,
}
