package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"esaj-lookup/internal/record"
)

// Text renders the batch results as the labeled plain-text report: a header
// line, one block per case separated by an asterisk rule, and a footer with
// the generation timestamp.
func Text(b record.Batch, generatedAt time.Time) []byte {
	var out bytes.Buffer
	out.WriteString("Resultado dos processos recebidos:\n\n")

	for _, r := range b.Results {
		fmt.Fprintf(&out, "\nNúmero do processo: %s\n", r.Number)
		fmt.Fprintf(&out, "Foro e Vara / Órgão Julgador: %s\n", r.Court)
		fmt.Fprintf(&out, "Juiz / Relator: %s\n", r.Judge)
		fmt.Fprintf(&out, "Classe: %s\n", r.Class)
		fmt.Fprintf(&out, "Assunto: %s\n", r.Subject)
		fmt.Fprintf(&out, "Situação: %s\n", r.Status)
		fmt.Fprintf(&out, "Partes e Advogados: %s\n", r.Parties)
		fmt.Fprintf(&out, "Valor: %s\n", r.Value)
		fmt.Fprintf(&out, "Data: %s\n", r.Movement.Date())
		fmt.Fprintf(&out, "Movimentação: %s\n\n", r.Movement.Description())
		out.WriteString(strings.Repeat("*", 40) + "\n")
	}

	out.WriteString("\n\nRelatório emitido em: " + generatedAt.Format(TimestampFormat))
	return out.Bytes()
}
