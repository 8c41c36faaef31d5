package parse

import (
	"strings"

	"golang.org/x/net/html"

	"esaj-lookup/internal/htmlq"
)

const (
	passwordMarker = "Senha do processo"
	cnjMarker      = "Atendendo a resolução 121 do CNJ"
)

// Sealed reports whether the trial document describes a case under judicial
// secrecy: a password prompt or the CNJ resolution disclaimer is present,
// and the parties and movements tables are both missing. Pages that carry
// the disclaimer alongside real data are still public.
func Sealed(doc *html.Node) bool {
	password := htmlq.First(doc, func(n *html.Node) bool {
		return n.Data == "td" && htmlq.HasClass(n, "modalTitulo") && htmlq.Text(n) == passwordMarker
	})
	cnj := htmlq.First(doc, func(n *html.Node) bool {
		return n.Data == "td" && strings.Contains(htmlq.RawText(n), cnjMarker)
	})
	if password == nil && cnj == nil {
		return false
	}

	parties := htmlq.ByID(doc, "tablePartesPrincipais")
	movements := htmlq.ByID(doc, "tabelaUltimasMovimentacoes")
	return parties == nil || movements == nil
}

// Pagination returns the pagination summary text of an ambiguous
// multiple-match result page, or "" when there is none.
func Pagination(doc *html.Node) string {
	return htmlq.TextByClass(doc, "resultadoPaginacao", "")
}

// ServerMessage returns the text of the site's explicit message banner
// ("Não existem informações disponíveis..." and friends), or "".
func ServerMessage(doc *html.Node) string {
	return htmlq.TextByID(doc, "mensagemRetorno", "")
}
