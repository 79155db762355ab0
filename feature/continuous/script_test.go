package continuous

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"trimble-export/core/export"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteScript(t *testing.T) {
	plan := &export.Plan{
		Statements: []export.Statement{
			{Row: 1, SiteName: "LAKE-01", SQL: "UPDATE tblContinuousData SET RETRIEVALDATE = '2021-07-14' WHERE PONDNAME = 'LAKE-01' AND SAMPLEDATE = '2021-07-14';"},
			{Row: 3, SiteName: "LAKE-03", SQL: "UPDATE tblContinuousData SET RETRIEVALDATE = '2021-07-16' WHERE PONDNAME = 'LAKE-03' AND SAMPLEDATE = '2021-07-16';"},
		},
		Skips: []export.Skip{
			{Row: 2, SiteName: "LAKE-02", Reason: export.ErrMalformedDate},
		},
	}
	plan.Summary.TotalRecords = 3
	plan.Summary.Rendered = 2

	h := ScriptHeader{
		SourceFile:  "field_2021.csv",
		Operation:   RetrievalUpdate,
		GeneratedBy: "smiller",
		GeneratedAt: time.Date(2024, 8, 29, 10, 0, 0, 0, time.UTC),
		RunID:       uuid.MustParse("8a6e0804-2bd0-4672-b79d-d97027f9071a"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteScript(&buf, h, plan))
	out := buf.String()

	// Provenance header
	assert.Contains(t, out, "Source file: field_2021.csv")
	assert.Contains(t, out, "Generated by: smiller")
	assert.Contains(t, out, "Run ID: 8a6e0804-2bd0-4672-b79d-d97027f9071a")
	assert.Contains(t, out, "READ AND UNDERSTAND THIS SCRIPT BEFORE RUNNING.")

	// Statements in input order
	first := strings.Index(out, "LAKE-01")
	second := strings.Index(out, "LAKE-03")
	assert.Greater(t, second, first)

	// Skipped rows visible for review
	assert.Contains(t, out, "-- Skipped rows")
	assert.Contains(t, out, `row 2 site "LAKE-02"`)

	// Statements are independently executable: no transaction wrapper
	assert.NotContains(t, out, "BEGIN TRANSACTION")
	assert.NotContains(t, out, "COMMIT")
}

func TestWriteScript_NoSkipsNoAppendix(t *testing.T) {
	plan := &export.Plan{
		Statements: []export.Statement{{Row: 1, SiteName: "LAKE-01", SQL: "UPDATE x;"}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteScript(&buf, NewScriptHeader("f.csv", RetrievalUpdate), plan))
	assert.NotContains(t, buf.String(), "Skipped rows")
}

func TestNewScriptHeader(t *testing.T) {
	h := NewScriptHeader("field_2021.csv", DeploymentInsert)

	assert.Equal(t, "field_2021.csv", h.SourceFile)
	assert.Equal(t, DeploymentInsert, h.Operation)
	assert.NotEqual(t, uuid.Nil, h.RunID)
	assert.False(t, h.GeneratedAt.IsZero())
}
