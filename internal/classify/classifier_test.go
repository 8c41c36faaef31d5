package classify

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"esaj-lookup/internal/htmlq"
	"esaj-lookup/internal/record"
)

const caseNumber = "0001234-56.2020.8.26.0100"

const appellateHit = `<body>
	<span id="numeroProcesso">0001234-56.2020.8.26.0100</span>
	<span id="orgaoJulgadorProcesso">4ª Câmara de Direito Privado</span>
</body>`

const trialHit = `<body>
	<span id="numeroProcesso">0001234-56.2020.8.26.0100</span>
	<span id="juizProcesso">João da Silva</span>
</body>`

const incidentHit = `<body>
	<span class="unj-larger">Cumprimento de sentença (apenso)</span>
</body>`

const sealedDoc = `<body><table>
	<tr><td class="modalTitulo">Senha do processo</td></tr>
</table></body>`

const paginatedDoc = `<body>
	<span class="resultadoPaginacao">Resultados 1 a 25 de 53</span>
</body>`

const messageDoc = `<body><table>
	<tr><td id="mensagemRetorno">Não existem informações disponíveis.</td></tr>
</table></body>`

const emptyDoc = `<body></body>`

type fakeFetcher struct {
	page  string
	err   error
	calls int
}

func (f *fakeFetcher) Fetch(ctx context.Context, number string) (*html.Node, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return mustDoc(f.page)
}

func mustDoc(page string) (*html.Node, error) {
	doc, err := htmlq.ParseString(page)
	if err != nil {
		panic(err)
	}
	return doc, nil
}

func newTestClassifier(appellate, trial *fakeFetcher) *Classifier {
	return NewClassifier(appellate, trial, 0, zap.NewNop())
}

func TestClassify_AppellateHitSuppressesTrial(t *testing.T) {
	appellate := &fakeFetcher{page: appellateHit}
	trial := &fakeFetcher{page: trialHit}

	out := newTestClassifier(appellate, trial).Classify(context.Background(), caseNumber)

	require.Equal(t, KindResult, out.Kind)
	assert.Equal(t, "4ª Câmara de Direito Privado", out.Record.Court)
	assert.Equal(t, 0, trial.calls, "trial tier must not be queried after an appellate hit")
}

func TestClassify_FallsThroughToTrial(t *testing.T) {
	appellate := &fakeFetcher{page: emptyDoc}
	trial := &fakeFetcher{page: trialHit}

	out := newTestClassifier(appellate, trial).Classify(context.Background(), caseNumber)

	require.Equal(t, KindResult, out.Kind)
	assert.Equal(t, "João da Silva", out.Record.Judge)
	assert.Equal(t, 1, appellate.calls)
	assert.Equal(t, 1, trial.calls)
}

func TestClassify_AppellateNumberSentinelIsNotAHit(t *testing.T) {
	// An appellate page whose number field renders as the sentinel must not
	// short-circuit the fallback.
	page := fmt.Sprintf(`<body><span id="numeroProcesso">%s</span></body>`, record.Unavailable)
	appellate := &fakeFetcher{page: page}
	trial := &fakeFetcher{page: trialHit}

	out := newTestClassifier(appellate, trial).Classify(context.Background(), caseNumber)

	require.Equal(t, KindResult, out.Kind)
	assert.Equal(t, 1, trial.calls)
}

func TestClassify_Sealed(t *testing.T) {
	out := newTestClassifier(
		&fakeFetcher{page: emptyDoc},
		&fakeFetcher{page: sealedDoc},
	).Classify(context.Background(), caseNumber)

	require.Equal(t, KindError, out.Kind)
	assert.Equal(t, ReasonSealed, out.Reason)
}

func TestClassify_IncidentLayout(t *testing.T) {
	out := newTestClassifier(
		&fakeFetcher{page: emptyDoc},
		&fakeFetcher{page: incidentHit},
	).Classify(context.Background(), caseNumber)

	require.Equal(t, KindResult, out.Kind)
	assert.Equal(t, caseNumber, out.Record.Number)
	assert.Equal(t, "Cumprimento de sentença", out.Record.Class)
}

func TestClassify_Ambiguous(t *testing.T) {
	out := newTestClassifier(
		&fakeFetcher{page: emptyDoc},
		&fakeFetcher{page: paginatedDoc},
	).Classify(context.Background(), caseNumber)

	require.Equal(t, KindInconclusive, out.Kind)
	assert.Equal(t, "Resultados 1 a 25 de 53", out.Note)
}

func TestClassify_ExplicitServerMessage(t *testing.T) {
	out := newTestClassifier(
		&fakeFetcher{page: emptyDoc},
		&fakeFetcher{page: messageDoc},
	).Classify(context.Background(), caseNumber)

	require.Equal(t, KindError, out.Kind)
	assert.Equal(t, "Não existem informações disponíveis.", out.Reason)
}

func TestClassify_DefaultUnknownFailure(t *testing.T) {
	out := newTestClassifier(
		&fakeFetcher{page: emptyDoc},
		&fakeFetcher{page: emptyDoc},
	).Classify(context.Background(), caseNumber)

	require.Equal(t, KindError, out.Kind)
	assert.Equal(t, ReasonNoData, out.Reason)
}

func TestClassify_AppellateTransportFailure(t *testing.T) {
	out := newTestClassifier(
		&fakeFetcher{err: errors.New("net down")},
		&fakeFetcher{page: trialHit},
	).Classify(context.Background(), caseNumber)

	require.Equal(t, KindError, out.Kind)
	assert.Equal(t, ReasonUnexpected, out.Reason)
}

func TestClassify_TrialTransportFailure(t *testing.T) {
	out := newTestClassifier(
		&fakeFetcher{page: emptyDoc},
		&fakeFetcher{err: errors.New("net down")},
	).Classify(context.Background(), caseNumber)

	require.Equal(t, KindError, out.Kind)
	assert.Equal(t, ReasonUnexpected, out.Reason)
}

type panicFetcher struct{}

func (panicFetcher) Fetch(context.Context, string) (*html.Node, error) {
	panic("boom")
}

func TestClassify_RecoversFromPanic(t *testing.T) {
	c := NewClassifier(panicFetcher{}, &fakeFetcher{page: trialHit}, 0, zap.NewNop())

	out := c.Classify(context.Background(), caseNumber)

	require.Equal(t, KindError, out.Kind)
	assert.Equal(t, caseNumber, out.Number)
	assert.Equal(t, ReasonUnexpected, out.Reason)
}
