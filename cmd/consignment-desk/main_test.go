package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backendStub(t *testing.T, handler http.HandlerFunc) *atomic.Int32 {
	t.Helper()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	t.Setenv("CONFIG_PATH", "")
	t.Setenv("BACKEND_BASE_URL", srv.URL)
	t.Setenv("BACKEND_RETRY_ATTEMPTS", "1")
	return &hits
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestTrackCommand(t *testing.T) {
	backendStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/shipments/track/TRK123", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"tracking_number": "TRK123",
			"status": "in_transit",
			"origin": {"city": "Delhi"},
			"destination": {"city": "Mumbai"},
			"tracking_history": [
				{"status": "picked_up", "location": "Delhi hub", "timestamp": "2024-03-01T10:00:00Z"},
				{"status": "in_transit", "location": "Jaipur", "timestamp": "2024-03-02T08:30:00Z"}
			]
		}`))
	})

	out, err := execute(t, "track", "TRK123")

	require.NoError(t, err)
	require.Contains(t, out, "TRK123")
	require.Contains(t, out, "in transit")
	require.Contains(t, out, "Delhi -> Mumbai")
	require.Less(t, bytes.Index([]byte(out), []byte("Jaipur")), bytes.Index([]byte(out), []byte("Delhi hub")))
}

func TestTrackCommand_NotFound(t *testing.T) {
	backendStub(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Shipment not found"}`))
	})

	_, err := execute(t, "track", "NOPE")

	require.Error(t, err)
	require.Contains(t, err.Error(), "Please check the tracking number")
}

func TestQuoteCommand(t *testing.T) {
	backendStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/pricing/calculate", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"zone":"METRO","base_amount":100,"weight_charges":20,"fuel_surcharge":12,` +
			`"gst_amount":23.76,"total_amount":155.76,"estimated_days":3}`))
	})

	out, err := execute(t, "quote", "--origin", "110001", "--destination", "400001", "--weight", "2.5")

	require.NoError(t, err)
	require.Contains(t, out, "METRO")
	require.Contains(t, out, "GST (18%)")
	require.Contains(t, out, "155.76")
}

func TestQuoteCommand_InvalidWeight(t *testing.T) {
	hits := backendStub(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	testCases := []struct {
		desc   string
		weight string
	}{
		{desc: "not a number", weight: "heavy"},
		{desc: "zero", weight: "0"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			_, err := execute(t, "quote", "--origin", "110001", "--destination", "400001", "--weight", tc.weight)

			require.Error(t, err)
			require.Contains(t, err.Error(), "Please enter a valid weight")
		})
	}
	require.Zero(t, hits.Load())
}

func TestExportCommand(t *testing.T) {
	content := []byte("PK\x03\x04sheet")
	backendStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/consignments/export/excel", r.URL.Path)
		assert.Equal(t, "2024-03-01", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2024-03-31", r.URL.Query().Get("end_date"))
		_, _ = w.Write(content)
	})
	dir := t.TempDir()

	out, err := execute(t, "export", "--mode", "dateRange", "--from", "2024-03-01", "--to", "2024-03-31", "--dir", dir)
	require.NoError(t, err)

	files, err := filepath.Glob(filepath.Join(dir, "consignments_*.xlsx"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Contains(t, out, files[0])

	written, err := os.ReadFile(files[0])
	require.NoError(t, err)
	require.Equal(t, content, written)
}

func TestExportCommand_Rejects(t *testing.T) {
	testCases := []struct {
		desc    string
		args    []string
		message string
	}{
		{
			desc:    "selected without ids",
			args:    []string{"--mode", "selected"},
			message: "Select at least one consignment to export",
		},
		{
			desc:    "reversed range",
			args:    []string{"--mode", "dateRange", "--from", "2024-03-31", "--to", "2024-03-01"},
			message: "End date must not be before start date",
		},
		{
			desc:    "malformed day",
			args:    []string{"--mode", "dateRange", "--from", "01/03/2024", "--to", "2024-03-31"},
			message: "invalid --from",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			hits := backendStub(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			_, err := execute(t, append([]string{"export", "--dir", t.TempDir()}, tc.args...)...)

			require.Error(t, err)
			require.Contains(t, err.Error(), tc.message)
			require.Zero(t, hits.Load())
		})
	}
}
