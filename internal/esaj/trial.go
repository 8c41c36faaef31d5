package esaj

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"esaj-lookup/internal/htmlq"
)

// TrialClient queries the 1º grau search over plain HTTP. It is stateless:
// every lookup is a fresh GET, no session or cookies involved.
type TrialClient struct {
	hc   *http.Client
	base string
	log  *zap.Logger
}

func NewTrialClient(hc *http.Client, baseURL string, log *zap.Logger) *TrialClient {
	if hc == nil {
		hc = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &TrialClient{hc: hc, base: baseURL, log: log}
}

// Fetch retrieves and parses the trial-tier document for a case number.
// When the search answers with a candidate listing, the link matching the
// number verbatim is followed; with no exact match the raw listing itself is
// returned and left for the classifier to judge.
func (c *TrialClient) Fetch(ctx context.Context, number string) (*html.Node, error) {
	doc, err := c.get(ctx, trialSearchURL(c.base, number))
	if err != nil {
		return nil, err
	}

	href := matchingLink(doc, number)
	if href == "" {
		return doc, nil
	}

	c.log.Debug("following disambiguation link", zap.String("case", number), zap.String("href", href))
	return c.get(ctx, c.base+href)
}

func (c *TrialClient) get(ctx context.Context, url string) (*html.Node, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("consulta cpopg: %w", err)
	}
	defer resp.Body.Close()

	doc, err := htmlq.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse cpopg response: %w", err)
	}
	return doc, nil
}
