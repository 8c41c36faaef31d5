package parse

import (
	"strings"

	"golang.org/x/net/html"

	"esaj-lookup/internal/htmlq"
	"esaj-lookup/internal/record"
)

// Incident extracts a record from the 1º grau incident layout, the page
// cpopg serves for dependent proceedings. This layout has no own number or
// value fields: the number comes from the query and the value stays
// unavailable. The class is the header text before its parenthesised
// qualifier, the status is the first line of the newest movement description.
func Incident(doc *html.Node, number string) *record.CaseRecord {
	header := htmlq.First(doc, func(n *html.Node) bool {
		return n.Data == "span" && htmlq.HasClass(n, "unj-larger")
	})
	if header == nil {
		return nil
	}

	class := record.Unavailable
	if text := htmlq.Text(header); strings.Contains(text, "(") {
		class = strings.TrimSpace(strings.SplitN(text, "(", 2)[0])
	}

	status := record.Unavailable
	if mov := htmlq.ByClass(doc, "descricaoMovimentacao"); mov != nil {
		if line := firstLine(mov); line != "" {
			status = line
		}
	}

	return &record.CaseRecord{
		Number:   number,
		Court:    courtAndSection(doc),
		Judge:    record.Unavailable,
		Class:    class,
		Subject:  htmlq.TextByID(doc, "assuntoProcesso", record.Unavailable),
		Status:   status,
		Parties:  parties(doc),
		Value:    record.Unavailable,
		Movement: movement(doc, "containerMovimentacao"),
	}
}

// firstLine returns the first non-empty source line of n's text content,
// whitespace-collapsed. Movement descriptions put the movement title on the
// first line and free-form annotations below it.
func firstLine(n *html.Node) string {
	for _, line := range strings.Split(htmlq.RawText(n), "\n") {
		if collapsed := strings.Join(strings.Fields(line), " "); collapsed != "" {
			return collapsed
		}
	}
	return ""
}
