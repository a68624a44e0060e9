package parser

import (
	"testing"

	"github.com/baltfin/csv2ofx/internal/models"
)

const n26CSV = `"Date","Payee","Account number","Transaction type","Payment reference","Category","Amount (EUR)","Amount (Foreign Currency)","Type Foreign Currency","Exchange Rate"
"2017-03-03","MAXIMA LT, X-860","","MasterCard Payment","","Shopping","-5.97","-5.97","EUR","1.0"
"2017-03-04","PONAS DVIRATIS","","MasterCard Payment","","Leisure & Entertainment","-36.0","-36.0","EUR","1.0"
"2017-03-05","MANO KEPYKLELE","","MasterCard Payment","","Food & Groceries","-2.0","-2.0","EUR","1.0"
"2017-03-06","MAXIMA LT, X-477","","MasterCard Payment","","Shopping","-17.63","-17.63","EUR","1.0"
"2017-03-06","UAB CESTA","","MasterCard Payment","","Food & Groceries","-0.95","-0.95","EUR","1.0"
"2017-03-06","CRUSTUM MANO KEPYKLELE","","MasterCard Payment","","Food & Groceries","-2.7","-2.7","EUR","1.0"`

func TestN26Parser_Parse(t *testing.T) {
	p := &N26Parser{}

	stmt, err := p.Parse(n26CSV)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stmt.Trx) != 6 {
		t.Fatalf("transactions: got %d, want 6", len(stmt.Trx))
	}

	first := stmt.Trx[0]
	if first.Date != "2017-03-03" {
		t.Errorf("date: got %q, want %q", first.Date, "2017-03-03")
	}
	if first.Payee != "MAXIMA LT, X-860" {
		t.Errorf("payee: got %q, want %q", first.Payee, "MAXIMA LT, X-860")
	}
	if first.Amount != "-5.97" {
		t.Errorf("amount: got %q, want %q", first.Amount, "-5.97")
	}
	if first.Type != models.Debit {
		t.Errorf("type: got %q, want debit", first.Type)
	}
}

func TestN26Parser_DerivedID(t *testing.T) {
	p := &N26Parser{}

	stmt, err := p.Parse(n26CSV)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// date+payee+amount with commas, periods, hyphens and spaces removed.
	if got := stmt.Trx[0].ID; got != "20170303MAXIMALTX860597" {
		t.Errorf("id: got %q, want %q", got, "20170303MAXIMALTX860597")
	}
}

func TestN26Parser_DateRange(t *testing.T) {
	p := &N26Parser{}

	stmt, err := p.Parse(n26CSV)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stmt.From != "2017-03-03" {
		t.Errorf("from: got %q, want %q", stmt.From, "2017-03-03")
	}
	if stmt.To != "2017-03-06" {
		t.Errorf("to: got %q, want %q", stmt.To, "2017-03-06")
	}
}

func TestN26Parser_AllDebits(t *testing.T) {
	p := &N26Parser{}

	stmt, err := p.Parse(n26CSV)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, trn := range stmt.Trx {
		if trn.Type != models.Debit {
			t.Errorf("trx[%d] type: got %q, want debit", i, trn.Type)
		}
	}
}

func TestN26Parser_ShortRow(t *testing.T) {
	p := &N26Parser{}

	_, err := p.Parse("\"Date\",\"Payee\"\n\"2017-03-03\",\"MAXIMA\"")
	if err == nil {
		t.Fatal("expected error for row with missing columns")
	}
}
