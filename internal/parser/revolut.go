package parser

import (
	"strings"

	"github.com/baltfin/csv2ofx/internal/models"
)

// RevolutParser handles Revolut CSV exports.
//
// Row layout:
//
//	type, product, startedDate, completedDate, description, amount,
//	fee, currency, state, balance
//
// Only rows in state COMPLETED are real transactions; pending and
// reversed rows are dropped entirely, including from the statement
// date range. The transaction date is read from column 2 (the started
// date), matching the behavior the fixtures encode.
type RevolutParser struct{}

const (
	revolutColDate    = 2
	revolutColMemo    = 4
	revolutColAmount  = 5
	revolutColState   = 8
	revolutColBalance = 9
)

func (p *RevolutParser) BankName() string {
	return "Revolut"
}

func (p *RevolutParser) Parse(content string) (*models.Statement, error) {
	rows, err := readRows(content, ',')
	if err != nil {
		return nil, err
	}

	// Skip the header row, keep only completed transactions.
	if len(rows) > 0 {
		rows = rows[1:]
	}
	var kept [][]string
	for _, row := range rows {
		if revolutCompleted(row) {
			kept = append(kept, row)
		}
	}

	trx := make([]models.Transaction, 0, len(kept))
	for _, row := range kept {
		trx = append(trx, revolutTransaction(row))
	}

	from, to := dateRange(kept, func(row []string) string { return revolutDate(row[revolutColDate]) })
	return &models.Statement{From: from, To: to, Trx: trx}, nil
}

func revolutCompleted(row []string) bool {
	return len(row) > revolutColState && row[revolutColState] == "COMPLETED"
}

// revolutDate extracts YYYY-MM-DD from "YYYY-MM-DD HH:MM:SS".
func revolutDate(d string) string {
	d = strings.TrimSpace(d)
	if len(d) > 10 {
		d = d[:10]
	}
	return d
}

// Only commas and periods are stripped from the amount/balance part;
// a debit amount's leading minus survives into the id.
var revolutIDStrip = strings.NewReplacer(",", "", ".", "")

func revolutTransaction(row []string) models.Transaction {
	memo := row[revolutColMemo]
	amount := row[revolutColAmount]
	date := revolutDate(row[revolutColDate])

	// Balance is empty on some row variants; the id still includes it.
	balance := ""
	if len(row) > revolutColBalance {
		balance = row[revolutColBalance]
	}

	t := models.Credit
	if strings.HasPrefix(amount, "-") {
		t = models.Debit
	}

	return models.Transaction{
		Type:   t,
		Date:   date,
		ID:     strings.ReplaceAll(date, "-", "") + revolutIDStrip.Replace(amount+balance),
		Amount: amount,
		Payee:  memo,
		Memo:   memo,
		Orig:   memo,
	}
}
