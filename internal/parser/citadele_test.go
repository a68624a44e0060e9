package parser

import (
	"testing"

	"github.com/baltfin/csv2ofx/internal/models"
)

const citadeleCSV = `Citadele,,,,,
2023-07-01,ET23182H54T58Q,"Taste map Vilnius LT SZA58234",-7.5
2023-07-01,ET23182YXKHKQ8,"Wolt Lithuania LT R0066053",-28.09
2023-07-01,ET2318247N2CLF,"EXPRESS MARKET PC24 VILNIUS LT 36847007",-9.12`

func TestCitadeleParser_Parse(t *testing.T) {
	p := &CitadeleParser{}

	stmt, err := p.Parse(citadeleCSV)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The banner row is dropped.
	if len(stmt.Trx) != 3 {
		t.Fatalf("transactions: got %d, want 3", len(stmt.Trx))
	}

	first := stmt.Trx[0]
	if first.ID != "ET23182H54T58Q" {
		t.Errorf("id: got %q, want %q", first.ID, "ET23182H54T58Q")
	}
	if first.Date != "2023-07-01" {
		t.Errorf("date: got %q, want %q", first.Date, "2023-07-01")
	}
	if first.Amount != "-7.5" {
		t.Errorf("amount: got %q, want %q", first.Amount, "-7.5")
	}
	if first.Type != models.Debit {
		t.Errorf("type: got %q, want debit", first.Type)
	}
	if first.Memo != "Taste map Vilnius LT SZA58234" {
		t.Errorf("memo: got %q, want payment reference verbatim", first.Memo)
	}
	if first.Orig != first.Memo {
		t.Errorf("orig: got %q, want %q", first.Orig, first.Memo)
	}
}

func TestCitadeleParser_Payee(t *testing.T) {
	p := &CitadeleParser{}

	stmt, err := p.Parse(citadeleCSV)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Payee drops the trailing location and reference tokens.
	if got := stmt.Trx[0].Payee; got != "Taste map" {
		t.Errorf("payee: got %q, want %q", got, "Taste map")
	}
	if got := stmt.Trx[1].Payee; got != "Wolt" {
		t.Errorf("payee: got %q, want %q", got, "Wolt")
	}
}

func TestCitadeleParser_DateRange(t *testing.T) {
	p := &CitadeleParser{}

	stmt, err := p.Parse(citadeleCSV)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stmt.From != "2023-07-01" || stmt.To != "2023-07-01" {
		t.Errorf("range: got %q..%q, want 2023-07-01..2023-07-01", stmt.From, stmt.To)
	}
}

func TestCitadelePayee_ShortReference(t *testing.T) {
	// Fewer than four tokens leaves nothing after dropping the last three.
	if got := citadelePayee("LT R0066053"); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestCitadeleParser_ShortRow(t *testing.T) {
	p := &CitadeleParser{}

	_, err := p.Parse("Citadele,,,,,\n2023-07-01,ET23182H54T58Q")
	if err == nil {
		t.Fatal("expected error for row with missing columns")
	}
}

func TestCitadeleParser_Empty(t *testing.T) {
	p := &CitadeleParser{}

	stmt, err := p.Parse("Citadele,,,,,")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stmt.Trx) != 0 {
		t.Errorf("transactions: got %d, want 0", len(stmt.Trx))
	}
	if stmt.From != "" || stmt.To != "" {
		t.Errorf("range: got %q..%q, want empty", stmt.From, stmt.To)
	}
}
