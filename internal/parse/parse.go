// Package parse maps fetched e-SAJ documents to case records. Each parser
// returns nil when the page does not carry its layout; the classifier treats
// that as "try the next stage". Missing individual fields never fail a parse,
// they fall back to the Unavailable sentinel.
package parse

import (
	"golang.org/x/net/html"

	"esaj-lookup/internal/htmlq"
	"esaj-lookup/internal/record"
)

// movement collects the cell texts of the first movement container with the
// given class. The most recent movement is the container's first row: date,
// filler cell, description.
func movement(doc *html.Node, containerClass string) record.Movement {
	container := htmlq.ByClass(doc, containerClass)
	if container == nil {
		return nil
	}
	cells := htmlq.ByTag(container, "td")
	movs := make(record.Movement, 0, len(cells))
	for _, td := range cells {
		movs = append(movs, htmlq.Text(td))
	}
	return movs
}

func parties(doc *html.Node) string {
	return htmlq.TextByClass(doc, "nomeParteEAdvogado", record.Unavailable)
}

// courtAndSection folds the two-part forum/section label of the trial layout
// into the single display field.
func courtAndSection(doc *html.Node) string {
	foro := htmlq.TextByID(doc, "foroProcesso", record.Unavailable)
	vara := htmlq.TextByID(doc, "varaProcesso", record.Unavailable)
	return foro + " - " + vara
}
