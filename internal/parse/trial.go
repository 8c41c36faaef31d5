package parse

import (
	"golang.org/x/net/html"

	"esaj-lookup/internal/htmlq"
	"esaj-lookup/internal/record"
)

// Trial extracts a record from the standard 1º grau (cpopg) case page.
func Trial(doc *html.Node) *record.CaseRecord {
	number := htmlq.ByID(doc, "numeroProcesso")
	if number == nil {
		return nil
	}
	return &record.CaseRecord{
		Number:   htmlq.Text(number),
		Court:    courtAndSection(doc),
		Judge:    htmlq.TextByID(doc, "juizProcesso", record.Unavailable),
		Class:    htmlq.TextByID(doc, "classeProcesso", record.Unavailable),
		Subject:  htmlq.TextByID(doc, "assuntoProcesso", record.Unavailable),
		Status:   htmlq.TextByID(doc, "labelSituacaoProcesso", record.Unavailable),
		Parties:  parties(doc),
		Value:    htmlq.TextByID(doc, "valorAcaoProcesso", record.Unavailable),
		Movement: movement(doc, "containerMovimentacao"),
	}
}
