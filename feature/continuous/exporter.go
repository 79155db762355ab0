package continuous

import (
	"fmt"

	"trimble-export/core/export"

	"go.uber.org/zap"
)

// Operation selects which statement kind an export run produces.
type Operation string

const (
	// RetrievalUpdate renders UPDATE statements for instrument retrievals.
	RetrievalUpdate Operation = "retrieval-update"
	// DeploymentInsert renders INSERT statements for instrument deployments.
	DeploymentInsert Operation = "deployment-insert"
)

// Valid reports whether the operation is recognized.
func (op Operation) Valid() bool {
	switch op {
	case RetrievalUpdate, DeploymentInsert:
		return true
	default:
		return false
	}
}

// Exporter runs the continuous-logger export pipeline for one configured
// run: it binds the schema profile and selection to a renderer, hands the
// records to the join engine, and logs the outcome.
type Exporter struct {
	cfg     export.Config
	profile SchemaProfile
	log     *zap.Logger
}

// NewExporter validates the run configuration and creates an exporter.
func NewExporter(cfg export.Config, log *zap.Logger) (*Exporter, error) {
	if !cfg.IsValidMode() {
		return nil, fmt.Errorf("unknown export mode %q", cfg.Mode)
	}

	return &Exporter{
		cfg:     cfg,
		profile: GetProfileByName(cfg.Profile),
		log:     log,
	}, nil
}

// Run processes the full record sequence and returns the plan.
// Per-record problems are inside the plan; the returned error is fatal
// (empty source, bad window configuration).
func (e *Exporter) Run(records []export.FieldRecord, op Operation) (*export.Plan, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("unknown operation %q", op)
	}

	opts, err := e.cfg.Options()
	if err != nil {
		return nil, err
	}

	plan, err := export.BuildPlan(records, e.renderer(op), opts)
	if err != nil {
		return nil, err
	}

	e.log.Info("Export run complete",
		zap.String("operation", string(op)),
		zap.String("profile", e.cfg.Profile),
		zap.Int("total_records", plan.Summary.TotalRecords),
		zap.Int("rendered", plan.Summary.Rendered),
		zap.Int("skipped", len(plan.Skips)),
	)

	return plan, nil
}

// renderer binds the operation to its statement renderer.
func (e *Exporter) renderer(op Operation) export.Renderer {
	if op == DeploymentInsert {
		return InsertRenderer{Profile: e.profile, KeepComments: e.cfg.KeepComments}
	}
	return UpdateRenderer{
		Profile:      e.profile,
		Selection:    e.cfg.Selection(),
		KeepComments: e.cfg.KeepComments,
	}
}
