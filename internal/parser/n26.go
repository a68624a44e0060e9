package parser

import (
	"strings"

	"github.com/baltfin/csv2ofx/internal/models"
)

// N26Parser handles N26 CSV exports.
//
// Row layout (trailing foreign-currency columns are ignored):
//
//	date, payee, accountNumber, transactionType, paymentReference,
//	category, amount, ...
//
// N26 rows carry no transaction id, so one is derived from
// date+payee+amount. Two identical transactions on the same day
// therefore collide; that is a documented property of the derivation.
type N26Parser struct{}

const (
	n26ColDate   = 0
	n26ColPayee  = 1
	n26ColRef    = 4
	n26ColAmount = 6
	n26MinCols   = 7
)

func (p *N26Parser) BankName() string {
	return "N26"
}

func (p *N26Parser) Parse(content string) (*models.Statement, error) {
	rows, err := readRows(content, ',')
	if err != nil {
		return nil, err
	}

	// Skip the header row.
	if len(rows) > 0 {
		rows = rows[1:]
	}

	trx := make([]models.Transaction, 0, len(rows))
	for i, row := range rows {
		if len(row) < n26MinCols {
			return nil, shortRow("n26", i+2, len(row), n26MinCols)
		}
		trx = append(trx, n26Transaction(row))
	}

	from, to := dateRange(rows, func(row []string) string { return row[n26ColDate] })
	return &models.Statement{From: from, To: to, Trx: trx}, nil
}

var n26IDStrip = strings.NewReplacer(",", "", ".", "", "-", "", " ", "")

func n26Transaction(row []string) models.Transaction {
	date := row[n26ColDate]
	payee := row[n26ColPayee]
	ref := row[n26ColRef]
	amount := row[n26ColAmount]

	t := models.Credit
	if strings.HasPrefix(amount, "-") {
		t = models.Debit
	}

	return models.Transaction{
		Type:   t,
		Date:   date,
		ID:     n26IDStrip.Replace(date + payee + amount),
		Amount: amount,
		Payee:  payee,
		Memo:   ref,
		Orig:   ref,
	}
}
