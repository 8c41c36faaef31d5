package record

// Unavailable is the sentinel the e-SAJ pages imply when a field is absent.
// It is display text everywhere except the case-number field, where the
// classifier treats it as "this tier has no record".
const Unavailable = "Não disponível"

// CaseRecord is one successfully extracted case. Every field is always
// populated; missing source fields carry the Unavailable sentinel.
type CaseRecord struct {
	Number   string
	Court    string // foro e vara (1º grau) or órgão julgador (2º grau)
	Judge    string // juiz (1º grau) or relator (2º grau)
	Class    string
	Subject  string
	Status   string
	Parties  string
	Value    string
	Movement Movement
}

// Movement holds the cell texts of the most recent movement row as they
// appear on the page: date, a filler cell, then the description.
type Movement []string

func (m Movement) Date() string {
	if len(m) < 1 || m[0] == "" {
		return Unavailable
	}
	return m[0]
}

func (m Movement) Description() string {
	if len(m) < 3 || m[2] == "" {
		return Unavailable
	}
	return m[2]
}

// ErrorEntry records a case that definitely has no usable public record.
type ErrorEntry struct {
	Number string
	Reason string
}

// InconclusiveEntry records a case whose search returned multiple candidate
// matches that could not be resolved to a single record.
type InconclusiveEntry struct {
	Number string
	Note   string
}

// Batch groups the three outcome sequences of one processed batch. Each
// sequence preserves the input order of its case numbers.
type Batch struct {
	Results      []CaseRecord
	Errors       []ErrorEntry
	Inconclusive []InconclusiveEntry
}
