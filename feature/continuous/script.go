package continuous

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"time"

	"trimble-export/core/export"

	"github.com/google/uuid"
)

// ScriptHeader carries the provenance block written at the top of each
// generated script, so a reviewer opening the file months later can tell
// where it came from.
type ScriptHeader struct {
	// SourceFile names the field export the statements were generated from.
	SourceFile string

	// Operation is the run's statement kind.
	Operation Operation

	// GeneratedBy is the operating system user who ran the export.
	GeneratedBy string

	// GeneratedAt is the generation timestamp.
	GeneratedAt time.Time

	// RunID uniquely identifies this export run.
	RunID uuid.UUID
}

// NewScriptHeader builds a header for the current user and time.
func NewScriptHeader(sourceFile string, op Operation) ScriptHeader {
	h := ScriptHeader{
		SourceFile:  sourceFile,
		Operation:   op,
		GeneratedAt: time.Now(),
		RunID:       uuid.New(),
	}

	if u, err := user.Current(); err == nil {
		h.GeneratedBy = u.Username
	} else {
		h.GeneratedBy = os.Getenv("USER")
	}

	return h
}

// WriteScript writes the reviewed SQL script: provenance header, the
// statements in input order, and a comment appendix naming every skipped
// row and its reason.
//
// No transaction wrapper is emitted; each statement is independently
// executable and the reviewer decides what to run.
func WriteScript(w io.Writer, h ScriptHeader, plan *export.Plan) error {
	if _, err := fmt.Fprintf(w, `/*
Continuous data logger %s statements generated by trimble-export.
Source file: %s
Generated by: %s
Generated at: %s
Run ID: %s

READ AND UNDERSTAND THIS SCRIPT BEFORE RUNNING.
Running it may change records in the master monitoring database.
Compare each statement against the live data before applying.
*/

`, h.Operation, h.SourceFile, h.GeneratedBy, h.GeneratedAt.Format(time.RFC3339), h.RunID); err != nil {
		return err
	}

	for _, st := range plan.Statements {
		if _, err := fmt.Fprintf(w, "%s\n", st.SQL); err != nil {
			return err
		}
	}

	if len(plan.Skips) > 0 {
		if _, err := fmt.Fprintf(w, "\n-- Skipped rows (no statement generated):\n"); err != nil {
			return err
		}
		for _, sk := range plan.Skips {
			if _, err := fmt.Fprintf(w, "-- row %d site %q: %v\n", sk.Row, sk.SiteName, sk.Reason); err != nil {
				return err
			}
		}
	}

	return nil
}

// WriteScriptFile writes the script to path, replacing any previous file,
// the way the original tool replaced a stale script of the same name.
func WriteScriptFile(path string, h ScriptHeader, plan *export.Plan) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create script file: %w", err)
	}

	if err := WriteScript(f, h, plan); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
