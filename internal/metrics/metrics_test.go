package metrics

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/nsutil/pkg/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Observe(t *testing.T) {
	r := New()
	ctx := context.Background()

	r.Observe(ctx, domain.Outcome{Mode: domain.ModeImport, Class: domain.ClassNew, Result: domain.ResultRegistered})
	r.Observe(ctx, domain.Outcome{Mode: domain.ModeImport, Class: domain.ClassNew, Result: domain.ResultRegistered})
	r.Observe(ctx, domain.Outcome{Mode: domain.ModeImport, Class: domain.ClassIdentical, Result: domain.ResultUnchanged})
	r.Observe(ctx, domain.Outcome{
		Mode:   domain.ModeRename,
		Class:  domain.ClassNew,
		Result: domain.ResultRejected,
		Err:    &domain.RegistryError{Prefix: "xmlx", Err: domain.ErrReservedPrefix},
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(r.outcomes.WithLabelValues("import", "new", "registered")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.outcomes.WithLabelValues("import", "identical", "unchanged")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.rejects.WithLabelValues("reserved_prefix")))
	assert.Equal(t, 3, testutil.CollectAndCount(r.outcomes))
}

func TestRejectReason(t *testing.T) {
	assert.Equal(t, "malformed_prefix", rejectReason(domain.ErrMalformedPrefix))
	assert.Equal(t, "malformed_uri", rejectReason(domain.ErrMalformedURI))
	assert.Equal(t, "binding_forbidden", rejectReason(domain.ErrBindingForbidden))
	assert.Equal(t, "store", rejectReason(errors.New("disk full")))
}

func TestRecorder_WriteFile(t *testing.T) {
	r := New()
	r.Observe(context.Background(), domain.Outcome{Mode: domain.ModeRename, Class: domain.ClassNew, Result: domain.ResultRegistered})

	path := filepath.Join(t.TempDir(), "nsutil.prom")
	require.NoError(t, r.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `nsutil_reconcile_outcomes_total{class="new",mode="rename",result="registered"} 1`)
}

func TestRecorder_WriteFileBadPath(t *testing.T) {
	r := New()
	err := r.WriteFile(filepath.Join(t.TempDir(), "missing", "dir", "nsutil.prom"))
	assert.Error(t, err)
}
