package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeInput drops content into a temp file and returns its path.
func writeInput(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "transactions.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRun_WrongArgCount(t *testing.T) {
	var out strings.Builder

	assert.Equal(t, 1, run(nil, &out))
	assert.Equal(t, 1, run([]string{"a", "b"}, &out))
	assert.Empty(t, out.String(), "no report on a usage error")
}

func TestRun_MissingFile(t *testing.T) {
	var out strings.Builder

	assert.Equal(t, 1, run([]string{filepath.Join(t.TempDir(), "nope.csv")}, &out))
	assert.Empty(t, out.String())
}

func TestRun_BadHeader(t *testing.T) {
	var out strings.Builder
	path := writeInput(t, "1,2,3,4\ndeposit,1,1,1.0\n")

	assert.Equal(t, 1, run([]string{path}, &out))
	assert.Empty(t, out.String(), "no record may be processed after a bad header")
}

func TestRun_Report(t *testing.T) {
	var out strings.Builder
	path := writeInput(t, "type,client,tx,amount\n"+
		"deposit,1,1,1.0\n"+
		"withdrawal,1,2,0.5\n"+
		"deposit,2,3,1.0\n"+
		"dispute,2,3\n"+
		"resolve,2,3\n")

	require.Equal(t, 0, run([]string{path}, &out))

	assert.Equal(t,
		"client,available,held,total,locked\n"+
			"1,0.5000,0.0000,0.5000,false\n"+
			"2,1.0000,0.0000,1.0000,false\n",
		out.String())
}
