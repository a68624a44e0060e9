package parser

import (
	"regexp"
	"strings"

	"github.com/baltfin/csv2ofx/internal/models"
)

// CitadeleParser handles Citadele CSV exports.
//
// Row layout (no type column, sign is carried by the amount):
//
//	date, transactionId, paymentReference, amount
//
// The first row is a bank name banner ("Citadele,,,,,"), not a header.
type CitadeleParser struct{}

const (
	citadeleColDate = iota
	citadeleColID
	citadeleColRef
	citadeleColAmount
	citadeleMinCols = 4
)

func (p *CitadeleParser) BankName() string {
	return "Citadele"
}

func (p *CitadeleParser) Parse(content string) (*models.Statement, error) {
	rows, err := readRows(content, ',')
	if err != nil {
		return nil, err
	}

	// Skip the banner row.
	if len(rows) > 0 {
		rows = rows[1:]
	}

	trx := make([]models.Transaction, 0, len(rows))
	for i, row := range rows {
		if len(row) < citadeleMinCols {
			return nil, shortRow("citadele", i+2, len(row), citadeleMinCols)
		}
		trx = append(trx, citadeleTransaction(row))
	}

	from, to := dateRange(rows, func(row []string) string { return row[citadeleColDate] })
	return &models.Statement{From: from, To: to, Trx: trx}, nil
}

func citadeleTransaction(row []string) models.Transaction {
	amount := row[citadeleColAmount]
	ref := row[citadeleColRef]

	t := models.Credit
	if strings.HasPrefix(amount, "-") {
		t = models.Debit
	}

	return models.Transaction{
		Type:   t,
		Date:   row[citadeleColDate],
		ID:     row[citadeleColID],
		Amount: amount,
		Payee:  citadelePayee(ref),
		Memo:   ref,
		Orig:   ref,
	}
}

var citadeleSplitPattern = regexp.MustCompile(`[\s.]+`)

// citadelePayee derives a short counterparty label from the payment
// reference by dropping the trailing location/reference tokens, e.g.
// "Taste map Vilnius LT SZA58234" -> "Taste map". References with fewer
// than four tokens yield an empty payee.
func citadelePayee(ref string) string {
	parts := citadeleSplitPattern.Split(ref, -1)
	n := len(parts) - 3
	if n < 0 {
		n = 0
	}
	return strings.Join(parts[:n], " ")
}
