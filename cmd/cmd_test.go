package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matrix/isotopes/internal/quiz"
)

func TestWriteDataTable(t *testing.T) {
	var buf bytes.Buffer
	writeDataTable(&buf, 0)
	out := buf.String()

	assert.Contains(t, out, "Canada")
	assert.Contains(t, out, "850,000 t")
	assert.Contains(t, out, "India")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "106%")
}

func TestWriteDataTable_Top(t *testing.T) {
	var buf bytes.Buffer
	writeDataTable(&buf, 3)
	out := buf.String()

	assert.Contains(t, out, "USA")
	assert.NotContains(t, out, "Netherlands")
	assert.NotContains(t, out, "TOTAL")
}

func TestWriteDataJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeDataJSON(&buf, 0))

	var report dataReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Len(t, report.Countries, 8)
	assert.InDelta(t, 106, report.Totals.ProductionShare, 1e-9)
	assert.InDelta(t, 0.078, report.CAGR, 0.001)
}

func TestWriteQuiz(t *testing.T) {
	qs := quiz.Questions()

	var buf bytes.Buffer
	writeQuiz(&buf, qs, false)
	assert.NotContains(t, buf.String(), "*")
	assert.Contains(t, buf.String(), "1/3")
	assert.Contains(t, buf.String(), "d) 75%")

	buf.Reset()
	writeQuiz(&buf, qs, true)
	assert.Equal(t, len(qs), strings.Count(buf.String(), "*"))
	assert.Contains(t, buf.String(), "* b) 40%")
}

func newFlagCmd() *cobra.Command {
	c := &cobra.Command{Use: "test"}
	c.Flags().String("log-file", "", "")
	c.Flags().String("log-level", "", "")
	c.Flags().String("assets-dir", "", "")
	c.Flags().Duration("feedback-delay", 0, "")
	return c
}

func TestResolveConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("ISOTOPES_ASSETS_DIR", "/from/env")
	t.Setenv("ISOTOPES_LOG_LEVEL", "warn")

	c := newFlagCmd()
	require.NoError(t, c.Flags().Set("assets-dir", "/from/flag"))
	require.NoError(t, c.Flags().Set("feedback-delay", "0s"))

	cfg, err := resolveConfig(c)
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", cfg.AssetsDir)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, time.Duration(0), cfg.FeedbackDelay)
}

func TestResolveConfig_RejectsNegativeDelay(t *testing.T) {
	c := newFlagCmd()
	require.NoError(t, c.Flags().Set("feedback-delay", "-1s"))

	_, err := resolveConfig(c)
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "isotopes "+version+"\n", buf.String())
}
