// Package classify drives the per-case fallback pipeline: appellate tier
// first, then the trial tier layouts, then the ambiguity and error signals.
// The stages are evaluated in a fixed order and the first satisfied one is
// terminal for that case number.
package classify

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"esaj-lookup/internal/parse"
	"esaj-lookup/internal/record"
)

// Classification reasons and the system row key are part of the report
// contract with the existing front-end; keep the exact strings.
const (
	ReasonSealed     = "Processo em segredo de justiça."
	ReasonNoData     = "Não foi possível extrair os dados."
	ReasonUnexpected = "Erro inesperado durante o processamento."

	SystemRow           = "Sistema"
	reasonBrowserPrefix = "Falha ao iniciar o navegador: "
)

// AppellateFetcher retrieves the 2º grau document for a case number.
type AppellateFetcher interface {
	Fetch(ctx context.Context, number string) (*html.Node, error)
}

// TrialFetcher retrieves the 1º grau document for a case number.
type TrialFetcher interface {
	Fetch(ctx context.Context, number string) (*html.Node, error)
}

type Kind int

const (
	KindResult Kind = iota
	KindError
	KindInconclusive
)

// Outcome is the terminal classification of one case number. Exactly one of
// Record, Reason or Note is meaningful, selected by Kind.
type Outcome struct {
	Kind   Kind
	Number string
	Record *record.CaseRecord
	Reason string
	Note   string
}

type Classifier struct {
	appellate AppellateFetcher
	trial     TrialFetcher
	pause     time.Duration
	log       *zap.Logger
}

// NewClassifier builds a classifier over the two tiers. pause is the
// courtesy delay inserted after each tier lookup.
func NewClassifier(appellate AppellateFetcher, trial TrialFetcher, pause time.Duration, log *zap.Logger) *Classifier {
	return &Classifier{appellate: appellate, trial: trial, pause: pause, log: log}
}

// Classify runs the fallback sequence for one case number. It never returns
// an error: transport failures and panics inside a stage degrade to an error
// outcome so one bad case cannot abort the batch.
func (c *Classifier) Classify(ctx context.Context, number string) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("classification panic", zap.String("case", number), zap.Any("panic", r))
			out = errorOutcome(number, ReasonUnexpected)
		}
	}()

	appellateDoc, err := c.appellate.Fetch(ctx, number)
	c.wait()
	if err != nil {
		c.log.Warn("appellate fetch failed", zap.String("case", number), zap.Error(err))
		return errorOutcome(number, ReasonUnexpected)
	}
	if rec := parse.Appellate(appellateDoc); rec != nil && rec.Number != record.Unavailable {
		return Outcome{Kind: KindResult, Number: number, Record: rec}
	}

	trialDoc, err := c.trial.Fetch(ctx, number)
	c.wait()
	if err != nil {
		c.log.Warn("trial fetch failed", zap.String("case", number), zap.Error(err))
		return errorOutcome(number, ReasonUnexpected)
	}

	if parse.Sealed(trialDoc) {
		return errorOutcome(number, ReasonSealed)
	}
	if rec := parse.Trial(trialDoc); rec != nil {
		return Outcome{Kind: KindResult, Number: number, Record: rec}
	}
	if rec := parse.Incident(trialDoc, number); rec != nil {
		return Outcome{Kind: KindResult, Number: number, Record: rec}
	}
	if note := parse.Pagination(trialDoc); note != "" {
		return Outcome{Kind: KindInconclusive, Number: number, Note: note}
	}
	if msg := parse.ServerMessage(trialDoc); msg != "" {
		return errorOutcome(number, msg)
	}
	return errorOutcome(number, ReasonNoData)
}

func (c *Classifier) wait() {
	if c.pause > 0 {
		time.Sleep(c.pause)
	}
}

func errorOutcome(number, reason string) Outcome {
	return Outcome{Kind: KindError, Number: number, Reason: reason}
}
