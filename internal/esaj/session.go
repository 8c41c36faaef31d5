package esaj

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"esaj-lookup/internal/htmlq"
)

// SessionConfig tunes the appellate browser session. The delays are design
// constants of the scraping protocol, not per-call knobs: e-SAJ throttles
// clients that navigate too fast.
type SessionConfig struct {
	BaseURL     string
	Headless    bool
	SettleShort time.Duration // after the initial search navigation
	SettleLong  time.Duration // after following a link or confirming the modal
	ModalWait   time.Duration // bounded wait for the incident-selection modal
}

func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		BaseURL:     DefaultBaseURL,
		Headless:    true,
		SettleShort: 1 * time.Second,
		SettleLong:  2 * time.Second,
		ModalWait:   5 * time.Second,
	}
}

// Session is a stateful browser session against the 2º grau search. Cookies
// and rendered state persist across Fetch calls for the session's lifetime.
// A Session belongs to a single batch worker and is not safe for concurrent
// use.
type Session struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page
	cfg      SessionConfig
	log      *zap.Logger
}

// NewSession launches a Chrome instance and opens the working page. The
// launcher is kept so Close can kill the Chrome process, not only detach.
func NewSession(cfg SessionConfig, log *zap.Logger) (*Session, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	l := launcher.New().
		Headless(cfg.Headless).
		NoSandbox(true).
		Set("disable-dev-shm-usage")

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		l.Cleanup()
		return nil, fmt.Errorf("connect browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		_ = browser.Close()
		l.Kill()
		l.Cleanup()
		return nil, fmt.Errorf("open page: %w", err)
	}

	return &Session{browser: browser, launcher: l, page: page, cfg: cfg, log: log}, nil
}

// Fetch runs the appellate lookup protocol for one case number:
// navigate → listing? follow matching link : wait for the incident modal,
// confirm it if it shows up → read whatever page state exists. A modal
// timeout is an expected branch, not an error.
func (s *Session) Fetch(ctx context.Context, number string) (*html.Node, error) {
	if err := s.navigate(appellateSearchURL(s.cfg.BaseURL, number), s.cfg.SettleShort); err != nil {
		return nil, err
	}

	doc, err := s.document()
	if err != nil {
		return nil, err
	}

	if href := matchingLink(doc, number); href != "" {
		s.log.Debug("following disambiguation link", zap.String("case", number), zap.String("href", href))
		if err := s.navigate(s.cfg.BaseURL+href, s.cfg.SettleLong); err != nil {
			return nil, err
		}
		return s.document()
	}
	if htmlq.ByID(doc, "listagemDeProcessos") != nil {
		// A listing with no verbatim match: hand it back as-is.
		return doc, nil
	}

	s.confirmIncidentModal(number)
	return s.document()
}

// confirmIncidentModal drives the incident-selection handshake. Every step
// is bounded by ModalWait and allowed to fail: if the modal never shows up,
// the current page state is the answer.
func (s *Session) confirmIncidentModal(number string) {
	if _, err := s.page.Timeout(s.cfg.ModalWait).Element(".modal-body"); err != nil {
		return
	}

	selected, err := s.page.Timeout(s.cfg.ModalWait).Element(`[name="processoSelecionado"]`)
	if err != nil {
		return
	}
	if err := selected.Click(proto.InputMouseButtonLeft, 1); err != nil {
		s.log.Debug("modal selection click failed", zap.String("case", number), zap.Error(err))
		return
	}

	confirm, err := s.page.Timeout(s.cfg.ModalWait).Element("#botaoEnviarIncidente")
	if err != nil {
		return
	}
	if err := confirm.Click(proto.InputMouseButtonLeft, 1); err != nil {
		s.log.Debug("modal confirm click failed", zap.String("case", number), zap.Error(err))
		return
	}

	time.Sleep(s.cfg.SettleLong)
}

func (s *Session) navigate(url string, settle time.Duration) error {
	if err := s.page.Navigate(url); err != nil {
		return fmt.Errorf("navigate: %w", err)
	}
	if err := s.page.WaitLoad(); err != nil {
		return fmt.Errorf("wait load: %w", err)
	}
	time.Sleep(settle)
	return nil
}

func (s *Session) document() (*html.Node, error) {
	raw, err := s.page.HTML()
	if err != nil {
		return nil, fmt.Errorf("read page: %w", err)
	}
	doc, err := htmlq.ParseString(raw)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	return doc, nil
}

// Close shuts the browser down and kills the Chrome process.
func (s *Session) Close() {
	if s.browser != nil {
		_ = s.browser.Close()
	}
	if s.launcher != nil {
		s.launcher.Kill()
		s.launcher.Cleanup()
	}
}
