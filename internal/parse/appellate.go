package parse

import (
	"golang.org/x/net/html"

	"esaj-lookup/internal/htmlq"
	"esaj-lookup/internal/record"
)

// Appellate extracts a record from a 2º grau (cposg) case page. The
// case-number field is the only required one; without it there is no record
// on this tier and the caller falls through to the trial tier.
func Appellate(doc *html.Node) *record.CaseRecord {
	number := htmlq.ByID(doc, "numeroProcesso")
	if number == nil {
		return nil
	}
	return &record.CaseRecord{
		Number:   htmlq.Text(number),
		Court:    htmlq.TextByID(doc, "orgaoJulgadorProcesso", record.Unavailable),
		Judge:    htmlq.TextByID(doc, "relatorProcesso", record.Unavailable),
		Class:    htmlq.TextByID(doc, "classeProcesso", record.Unavailable),
		Subject:  htmlq.TextByID(doc, "assuntoProcesso", record.Unavailable),
		Status:   htmlq.TextByID(doc, "situacaoProcesso", record.Unavailable),
		Parties:  parties(doc),
		Value:    htmlq.TextByID(doc, "valorAcaoProcesso", record.Unavailable),
		Movement: movement(doc, "movimentacaoProcesso"),
	}
}
