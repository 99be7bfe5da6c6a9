package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/nsutil/internal/config"
	"github.com/aretw0/nsutil/pkg/adapters/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dcURI = "http://purl.org/dc/elements/1.1/"

func testConfig(registry string) *config.Config {
	return &config.Config{Registry: registry, Format: "auto", Plain: true}
}

func TestExecute_ImportAndRenamePersist(t *testing.T) {
	dir := t.TempDir()
	nsPath := filepath.Join(dir, "ns.yaml")
	src := filepath.Join(dir, "import.txt")
	require.NoError(t, os.WriteFile(src, []byte("dc:"+dcURI+"\n"), 0o644))

	out := &bytes.Buffer{}
	err := Execute(context.Background(), RunOptions{
		Config: testConfig("file:" + nsPath),
		Source: src,
		Stdin:  strings.NewReader("\ndc\ndcelem\n"),
		Stdout: out,
	})
	require.NoError(t, err)

	table, err := file.NewStore(nsPath).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dcURI, table["dc"])
	assert.Equal(t, dcURI, table["dcelem"])
	assert.Contains(t, out.String(), "Import of "+src+" finished")
}

func TestExecute_WritesMetrics(t *testing.T) {
	metricsPath := filepath.Join(t.TempDir(), "nsutil.prom")
	cfg := testConfig("memory:")
	cfg.MetricsFile = metricsPath

	err := Execute(context.Background(), RunOptions{
		Config: cfg,
		Stdin:  strings.NewReader(""),
		Stdout: &bytes.Buffer{},
	})
	require.NoError(t, err)

	_, err = os.Stat(metricsPath)
	assert.NoError(t, err)
}

func TestExecute_BadRegistry(t *testing.T) {
	err := Execute(context.Background(), RunOptions{
		Config: testConfig("ftp:nowhere"),
		Stdin:  strings.NewReader(""),
		Stdout: &bytes.Buffer{},
	})
	assert.ErrorContains(t, err, "failed to open registry")
}

func TestExecute_MissingConfig(t *testing.T) {
	assert.Error(t, Execute(context.Background(), RunOptions{}))
}

func TestList(t *testing.T) {
	nsPath := filepath.Join(t.TempDir(), "ns.yaml")
	require.NoError(t, file.NewStore(nsPath).Put(context.Background(), "dc", dcURI))

	out := &bytes.Buffer{}
	err := List(context.Background(), RunOptions{Config: testConfig("file:" + nsPath), Stdout: out})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Prefix dc: "+dcURI)
}

func TestExecute_DryRunLeavesStoreUntouched(t *testing.T) {
	nsPath := filepath.Join(t.TempDir(), "ns.yaml")
	require.NoError(t, file.NewStore(nsPath).Put(context.Background(), "dc", dcURI))
	cfg := testConfig("file:" + nsPath)
	cfg.DryRun = true

	out := &bytes.Buffer{}
	err := Execute(context.Background(), RunOptions{
		Config: cfg,
		Stdin:  strings.NewReader("dc\ndcterms\n"),
		Stdout: out,
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Prefix dcterms: "+dcURI, "the run sees its own writes")
	assert.Contains(t, out.String(), "Dry run: 1 binding(s) not written")

	table, err := file.NewStore(nsPath).Load(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, table, "dcterms")
}
