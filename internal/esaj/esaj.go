// Package esaj fetches case documents from the TJSP e-SAJ portal. The 1º
// grau search (cpopg) answers plain GETs; the 2º grau search (cposg) renders
// through JavaScript and sometimes demands an incident-selection modal, so it
// runs inside a persistent headless-browser session.
package esaj

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"esaj-lookup/internal/caseid"
	"esaj-lookup/internal/htmlq"
)

// DefaultBaseURL is the production portal. Tests point it at httptest servers.
const DefaultBaseURL = "https://esaj.tjsp.jus.br"

func trialSearchURL(base, number string) string {
	digitYear, forum := caseid.Split(number)
	q := url.Values{}
	q.Set("conversationId", "")
	q.Set("cbPesquisa", "NUMPROC")
	q.Set("numeroDigitoAnoUnificado", digitYear)
	q.Set("foroNumeroUnificado", forum)
	q.Set("dadosConsulta.valorConsultaNuUnificado", number)
	q.Set("dadosConsulta.valorConsulta", "")
	q.Set("dadosConsulta.tipoNuProcesso", "UNIFICADO")
	return base + "/cpopg/search.do?" + q.Encode()
}

func appellateSearchURL(base, number string) string {
	digitYear, forum := caseid.Split(number)
	q := url.Values{}
	q.Set("conversationId", "")
	q.Set("paginaConsulta", "0")
	q.Set("cbPesquisa", "NUMPROC")
	q.Set("numeroDigitoAnoUnificado", digitYear)
	q.Set("foroNumeroUnificado", forum)
	q.Set("dePesquisaNuUnificado", number)
	q.Set("dePesquisa", "")
	q.Set("tipoNuProcesso", "UNIFICADO")
	return base + "/cposg/search.do?" + q.Encode()
}

// matchingLink implements the shared disambiguation rule: when the search
// answers with a candidate listing instead of a case page, follow the one
// link whose visible text contains the queried number verbatim. Returns ""
// when the page is not a listing or no candidate matches.
func matchingLink(doc *html.Node, number string) string {
	listing := htmlq.ByID(doc, "listagemDeProcessos")
	if listing == nil {
		return ""
	}
	for _, link := range htmlq.All(listing, func(n *html.Node) bool {
		return n.Data == "a" && htmlq.HasClass(n, "linkProcesso")
	}) {
		if !strings.Contains(htmlq.Text(link), number) {
			continue
		}
		if href, ok := htmlq.Attr(link, "href"); ok {
			return href
		}
	}
	return ""
}
