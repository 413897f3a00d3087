package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iulianbarbu/transaction-processor/internal/engine"
	"github.com/iulianbarbu/transaction-processor/internal/input"
	"github.com/iulianbarbu/transaction-processor/internal/ledger"
	"github.com/iulianbarbu/transaction-processor/internal/report"
)

func TestWrite(t *testing.T) {
	t.Parallel()

	results := []engine.Result{
		{Reason: engine.ReasonClosed, Snapshot: ledger.Snapshot{ID: 1, Available: 0.5, Held: 0, Total: 0.5}},
		{Reason: engine.ReasonLocked, Snapshot: ledger.Snapshot{ID: 2, Available: 0, Held: 0, Total: 0, Locked: true}},
	}

	var buf strings.Builder
	require.NoError(t, report.Write(&buf, results))

	assert.Equal(t,
		"client,available,held,total,locked\n"+
			"1,0.5000,0.0000,0.5000,false\n"+
			"2,0.0000,0.0000,0.0000,true\n",
		buf.String())
}

func TestWrite_RoundsToFourDecimals(t *testing.T) {
	t.Parallel()

	results := []engine.Result{
		{Snapshot: ledger.Snapshot{ID: 1, Available: 1.23456, Held: 0.00009, Total: 1.23465}},
	}

	var buf strings.Builder
	require.NoError(t, report.Write(&buf, results))

	assert.Equal(t,
		"client,available,held,total,locked\n"+
			"1,1.2346,0.0001,1.2347,false\n",
		buf.String())
}

func TestWrite_EmptyRun(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	require.NoError(t, report.Write(&buf, nil))

	assert.Equal(t, "client,available,held,total,locked\n", buf.String())
}

// End-to-end: raw input through the source, the engine, and the report.
func TestPipeline(t *testing.T) {
	t.Parallel()

	raw := "type,client,tx,amount\n" +
		"deposit,1,1,1.0\n" +
		"withdrawal,1,2,0.5\n" +
		"deposit,2,3,1.0\n" +
		"dispute,2,3\n" +
		"chargeback,2,3\n" +
		"deposit,2,4,5.0\n"

	src, err := input.NewSource(strings.NewReader(raw))
	require.NoError(t, err)

	results := engine.NewRouter(engine.Config{}).Process(src)

	var buf strings.Builder
	require.NoError(t, report.Write(&buf, results))

	assert.Equal(t,
		"client,available,held,total,locked\n"+
			"1,0.5000,0.0000,0.5000,false\n"+
			"2,0.0000,0.0000,0.0000,true\n",
		buf.String())
}

// A malformed line mid-stream ends ingestion but the report still covers
// everything processed up to that point.
func TestPipeline_TruncatedByParseFailure(t *testing.T) {
	t.Parallel()

	raw := "type,client,tx,amount\n" +
		"deposit,1,1,1.0\n" +
		"garbage\n" +
		"deposit,1,2,9.0\n"

	src, err := input.NewSource(strings.NewReader(raw))
	require.NoError(t, err)

	results := engine.NewRouter(engine.Config{}).Process(src)

	var buf strings.Builder
	require.NoError(t, report.Write(&buf, results))

	assert.Equal(t,
		"client,available,held,total,locked\n"+
			"1,1.0000,0.0000,1.0000,false\n",
		buf.String())
}
