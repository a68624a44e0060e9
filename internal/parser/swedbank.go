package parser

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/baltfin/csv2ofx/internal/models"
)

// SwedbankParser handles Swedbank LT CSV exports.
//
// Row layout (comma-delimited, every field double-quoted):
//
//	accountNo, seqCode, date, payee, memo, amount, currency,
//	debitCreditFlag, recordId, ...
//
// Real transactions carry a record id and a D/K flag; balance and
// turnover rows ("Likutis pradžiai" etc.) carry neither and are
// dropped, including from the statement date range. Amounts are
// unsigned magnitudes, the sign lives in the flag.
//
// The memo field embeds several transaction subtypes in free text
// (card purchases, cash withdrawals, loan interest, fund purchases,
// stock trades, bank fees); parseMemo re-derives structured fields
// from it.
type SwedbankParser struct{}

const (
	swedColDate   = 2
	swedColPayee  = 3
	swedColMemo   = 4
	swedColAmount = 5
	swedColFlag   = 7
	swedColID     = 8
)

func (p *SwedbankParser) BankName() string {
	return "Swedbank LT"
}

func (p *SwedbankParser) Parse(content string) (*models.Statement, error) {
	rows, err := readRows(content, ',')
	if err != nil {
		return nil, err
	}

	var kept [][]string
	for _, row := range rows {
		if swedbankIsTransaction(row) {
			kept = append(kept, row)
		}
	}

	trx := make([]models.Transaction, 0, len(kept))
	for _, row := range kept {
		t, err := swedbankTransaction(row)
		if err != nil {
			return nil, err
		}
		trx = append(trx, t)
	}

	// The range uses the posting date from the row itself, even when a
	// card memo overrides the per-transaction date.
	from, to := dateRange(kept, func(row []string) string { return row[swedColDate] })
	return &models.Statement{From: from, To: to, Trx: trx}, nil
}

func swedbankIsTransaction(row []string) bool {
	if len(row) <= swedColID {
		return false
	}
	flag := row[swedColFlag]
	return row[swedColID] != "" && (flag == "K" || flag == "D")
}

func swedbankTransaction(row []string) (models.Transaction, error) {
	memo := row[swedColMemo]
	amount := row[swedColAmount]
	flag := row[swedColFlag]

	t := models.Credit
	if flag == "D" {
		t = models.Debit
		amount = "-" + amount
	}

	parsed, err := parseMemo(memo)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("swedbank: record %s: %w", row[swedColID], err)
	}

	date := row[swedColDate]
	if parsed.hasDate {
		date = parsed.date
	}
	payee := row[swedColPayee]
	if parsed.hasPayee {
		payee = parsed.payee
	}

	return models.Transaction{
		Type:   t,
		Date:   date,
		ID:     row[swedColID],
		Amount: amount,
		Payee:  payee,
		Memo:   parsed.memo,
		Orig:   memo,
	}, nil
}

// memoFields is the structured override a memo classification yields.
// memo is always set; payee and date only when the subtype derives them.
type memoFields struct {
	payee    string
	memo     string
	date     string
	hasPayee bool
	hasDate  bool
}

// stockTickerPattern matches trade memos like
// "IGN1L -3000@20.65/SE:250709656 VSE".
var stockTickerPattern = regexp.MustCompile(`^[A-Z0-9]{3,6}\s+-?\d+@`)

// parseMemo classifies a free-text memo by its leading token and
// derives payee/memo/date overrides for the recognized subtypes.
// Unrecognized memos pass through untouched.
func parseMemo(memo string) (memoFields, error) {
	first := memo
	if i := strings.IndexFunc(memo, unicode.IsSpace); i >= 0 {
		first = memo[:i]
	}

	switch first {
	case "MP", "TMP", "Kortelės", "Saugumo":
		return memoFields{payee: "Bank", memo: memo, hasPayee: true}, nil
	case "Bazinio":
		return memoFields{payee: "Swedbank", memo: memo, hasPayee: true}, nil
	case "Paskolos", "Sukauptos":
		return memoFields{payee: "Paskola", memo: memo, hasPayee: true}, nil
	case "VP":
		return memoFields{payee: "Stocks", memo: memo, hasPayee: true}, nil
	case "Fondų":
		return memoFields{payee: fundPayee(memo), memo: memo, hasPayee: true}, nil
	case "PIRKINYS", "GRĄŽINIMAS":
		return cardFields(memo)
	case "GRYNIEJI":
		// Cash withdrawals keep the posting date but name the subtype.
		return memoFields{payee: "GRYNIEJI", memo: cardMemo(memo), hasPayee: true}, nil
	default:
		if stockTickerPattern.MatchString(memo) {
			return memoFields{payee: first, memo: memo, hasPayee: true}, nil
		}
		return memoFields{memo: memo}, nil
	}
}

// cardFields derives fields from a card transaction memo shaped like
//
//	PIRKINYS <cardRef> <yyyy.mm.dd> <amount> <currency> (<auth>) <merchant...>
//
// The merchant description starts at token 6; the embedded date is the
// authorization date, which differs from the posting date in the row.
func cardFields(memo string) (memoFields, error) {
	parts := strings.Fields(memo)
	if len(parts) < 3 {
		return memoFields{}, fmt.Errorf("card memo missing transaction date: %q", memo)
	}
	cleaned := cardMemo(memo)
	return memoFields{
		payee:    cleaned,
		memo:     cleaned,
		date:     strings.ReplaceAll(parts[2], ".", "-"),
		hasPayee: true,
		hasDate:  true,
	}, nil
}

// cardMemo strips the fixed "PIRKINYS <cardRef> <date> <amount> <currency>
// (<auth>)" boilerplate, keeping the merchant description.
func cardMemo(memo string) string {
	parts := strings.Fields(memo)
	if len(parts) <= 6 {
		return ""
	}
	return strings.Join(parts[6:], " ")
}

// fundPayee extracts the human-readable fund name from a memo like
// "Fondų pirkimas 10611163 SWRAGLC SWEDBANK ROBUR ACCESS EDGE GLOBAL C",
// skipping the order id and ticker. When the name segment is missing it
// falls back to everything after the order id.
func fundPayee(memo string) string {
	parts := strings.Fields(memo)
	switch {
	case len(parts) > 4:
		return strings.Join(parts[4:], " ")
	case len(parts) > 3:
		return strings.Join(parts[3:], " ")
	default:
		return ""
	}
}
