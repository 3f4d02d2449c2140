package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ledgerlens/ledgerlens/internal/classify"
	"github.com/ledgerlens/ledgerlens/internal/config"
	"github.com/ledgerlens/ledgerlens/internal/importer"
	"github.com/ledgerlens/ledgerlens/internal/ledger"
	"github.com/ledgerlens/ledgerlens/internal/model"
	"github.com/ledgerlens/ledgerlens/internal/render"
)

// rulesFile is the categorization rule table inside a workspace.
var rulesFile = filepath.Join("rules", "categorization-rules.yaml")

// workspace is an opened ledgerlens directory.
type workspace struct {
	root   string
	cfg    *config.Config
	logger *slog.Logger
	store  *ledger.Store
}

func (o *rootOptions) open() (*workspace, error) {
	root, err := filepath.Abs(o.repo)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	cfg, err := config.LoadWorkspace(root)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}
	return &workspace{
		root:   root,
		cfg:    cfg,
		logger: logger,
		store:  ledger.NewStore(root),
	}, nil
}

// classifier loads the workspace rule table, or the built-in one when the
// workspace has none.
func (w *workspace) classifier() (*classify.Classifier, error) {
	rules, err := classify.LoadRules(filepath.Join(w.root, rulesFile))
	if errors.Is(err, fs.ErrNotExist) {
		return classify.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return classify.New(rules), nil
}

// parser returns the configured statement parser, or the one named by format
// when it is not empty.
func (w *workspace) parser(format string) (importer.Parser, error) {
	c, err := w.classifier()
	if err != nil {
		return nil, err
	}
	if format == "" {
		format = w.cfg.Statement.Format
	}

	reg := importer.DefaultRegistry(c)
	p := reg.Get(format)
	if p == nil {
		return nil, fmt.Errorf("unknown statement format %q (available: %s)", format, strings.Join(reg.Formats(), ", "))
	}
	if kp, ok := p.(*importer.KaspiParser); ok {
		w.cfg.ConfigureKaspi(kp)
		kp.Logger = w.logger
	}
	return p, nil
}

// transactions loads the flat transaction set every report is derived from.
func (w *workspace) transactions() ([]model.Transaction, error) {
	ledgers, err := w.store.Load()
	if err != nil {
		return nil, err
	}
	return ledger.Flatten(ledgers), nil
}

func (w *workspace) renderer() *render.Renderer {
	return render.New(w.cfg.Display.Currency)
}
