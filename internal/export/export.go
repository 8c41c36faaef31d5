// Package export renders a completed batch into the downloadable report
// formats. The column titles, sheet names and labels are the contract with
// the report's existing readers; keep the exact strings.
package export

import (
	"time"

	"esaj-lookup/internal/record"
)

var (
	// ResultColumns are the spreadsheet/status columns of one case record,
	// with the movement pair already split into its two output columns.
	ResultColumns = []string{
		"Número do Processo",
		"Foro e Vara / Órgão Julgador",
		"Juiz / Relator",
		"Classe",
		"Assunto",
		"Situação",
		"Partes e Advogados",
		"Valor",
		"Data",
		"Movimento",
	}
	ErrorColumns        = []string{"Número do processo", "Informação"}
	InconclusiveColumns = []string{"Número do processo", "Observações"}
)

// TimestampFormat renders report timestamps the way the front-end and the
// download filenames expect: 31-12-2024_17h05min.
const TimestampFormat = "02-01-2006_15h04min"

// Filename builds the download name for a report generated at the given
// time; ext is passed with the dot ("xlsx", "txt" without one are fine too).
func Filename(ext string, at time.Time) string {
	if ext != "" && ext[0] != '.' {
		ext = "." + ext
	}
	return "Resultados_" + at.Format(TimestampFormat) + ext
}

func resultValues(r record.CaseRecord) []string {
	return []string{
		r.Number,
		r.Court,
		r.Judge,
		r.Class,
		r.Subject,
		r.Status,
		r.Parties,
		r.Value,
		r.Movement.Date(),
		r.Movement.Description(),
	}
}

// ResultRows maps the batch results to column-keyed rows for the status API.
func ResultRows(b record.Batch) []map[string]string {
	rows := make([]map[string]string, 0, len(b.Results))
	for _, r := range b.Results {
		row := make(map[string]string, len(ResultColumns))
		for i, v := range resultValues(r) {
			row[ResultColumns[i]] = v
		}
		rows = append(rows, row)
	}
	return rows
}

// ErrorRows maps the batch errors to column-keyed rows.
func ErrorRows(b record.Batch) []map[string]string {
	rows := make([]map[string]string, 0, len(b.Errors))
	for _, e := range b.Errors {
		rows = append(rows, map[string]string{
			ErrorColumns[0]: e.Number,
			ErrorColumns[1]: e.Reason,
		})
	}
	return rows
}

// InconclusiveRows maps the ambiguous matches to column-keyed rows.
func InconclusiveRows(b record.Batch) []map[string]string {
	rows := make([]map[string]string, 0, len(b.Inconclusive))
	for _, e := range b.Inconclusive {
		rows = append(rows, map[string]string{
			InconclusiveColumns[0]: e.Number,
			InconclusiveColumns[1]: e.Note,
		})
	}
	return rows
}
