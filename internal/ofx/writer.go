// Package ofx renders a parsed statement as OFX/QFX text, the SGML
// flavor consumed by personal-finance applications.
package ofx

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/baltfin/csv2ofx/internal/models"
)

// Writer renders statements using a fixed OFX 1.02 template.
type Writer struct {
	// Now supplies the DTSERVER timestamp; defaults to time.Now.
	Now func() time.Time
}

// WriteToFile renders the statement to an OFX file at the given path.
func (w *Writer) WriteToFile(path string, stmt *models.Statement) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, stmt)
}

// Write renders the statement as OFX text to the given writer.
func (w *Writer) Write(out io.Writer, stmt *models.Statement) error {
	var b strings.Builder

	b.WriteString(header)
	b.WriteString("<DTSERVER>" + w.now().Format("20060102") + "\n")
	b.WriteString(signonTail)

	b.WriteString("<DTSTART>" + ofxDate(stmt.From) + "\n")
	b.WriteString("<DTEND>" + ofxDate(stmt.To) + "\n")
	for _, trn := range stmt.Trx {
		writeTransaction(&b, trn)
	}

	b.WriteString(footer)

	_, err := io.WriteString(out, b.String())
	return err
}

// Render returns the OFX text as a string.
func (w *Writer) Render(stmt *models.Statement) string {
	var b strings.Builder
	// strings.Builder writes cannot fail.
	_ = w.Write(&b, stmt)
	return b.String()
}

func (w *Writer) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}

func writeTransaction(b *strings.Builder, trn models.Transaction) {
	b.WriteString("<STMTTRN>\n")
	b.WriteString("<TRNTYPE>" + strings.ToUpper(string(trn.Type)) + "\n")
	b.WriteString("<DTPOSTED>" + ofxDate(trn.Date) + "\n")
	b.WriteString("<FITID>" + trn.ID + "\n")
	b.WriteString("<TRNAMT>" + trn.Amount + "\n")
	b.WriteString("<NAME>" + trn.Payee + "\n")
	b.WriteString("<MEMO>" + trn.Memo + "\n")
	b.WriteString("</STMTTRN>\n")
}

// ofxDate strips the hyphens from an ISO date: 2016-08-17 -> 20160817.
func ofxDate(date string) string {
	return strings.ReplaceAll(date, "-", "")
}

const header = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:UTF-8
CHARSET:CSUNICODE
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
<MESSAGE>OK
</STATUS>
`

const signonTail = `<LANGUAGE>ENG
<INTU.BID>3000
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>0
<STATUS>
<CODE>0
<SEVERITY>INFO
<MESSAGE>OK
</STATUS>
<STMTRS>
<CURDEF>EUR
<BANKACCTFROM>
<BANKID>1
<ACCTID>10000001
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
`

const footer = `</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>0.00
<DTASOF>20160902
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>
`
