package server_test

// End to end tests running a relay server and interacting with it via
// its REST API.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/zkmesh/relay/server"
)

const randomHost = "localhost:0"

// spawnMockGateway runs a fake verification network gateway speaking the
// wire format the relay's gateway client expects.
func spawnMockGateway(t *testing.T) (target string) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/accounts", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"accounts": ["0xaa"]}`)
	})
	mux.HandleFunc("GET /v1/accounts/{account}/balance", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"balance": 1.0}`)
	})
	mux.HandleFunc("POST /v1/proofs", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"job_id": "job-e2e"}`)
	})
	mux.HandleFunc("GET /v1/jobs/{jobID}", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"status": "COMPLETED", "request_id": "req-%s"}`, r.PathValue("jobID"))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv.URL
}

func spawnRelay(ctx context.Context, t *testing.T, cfg server.Config) *server.Server {
	t.Helper()
	req := require.New(t)

	_, err := server.SetupConfig(&cfg)
	req.NoError(err)

	srv, err := server.New(ctx, cfg)
	req.NoError(err)

	var eg errgroup.Group
	ctx, stop := context.WithCancel(ctx)
	eg.Go(func() error {
		return srv.Start(ctx)
	})
	t.Cleanup(func() {
		stop()
		assert.NoError(t, eg.Wait())
		assert.NoError(t, srv.Close())
	})

	return srv
}

func TestSubmitAndQueryStatus(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	cfg := *server.DefaultConfig()
	cfg.RelayDir = t.TempDir()
	cfg.RawRESTListener = randomHost
	cfg.Gateways = []string{spawnMockGateway(t)}

	srv := spawnRelay(ctx, t, cfg)
	base := fmt.Sprintf("http://%s", srv.RestAddr())

	body, err := json.Marshal(map[string]any{"proof": []byte("0xdead")})
	require.NoError(t, err)
	res, err := http.Post(base+"/v1/proofs", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusCreated, res.StatusCode)

	submitted := struct {
		JobID string `json:"job_id"`
	}{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&submitted))
	require.Equal(t, "job-e2e", submitted.JobID)

	res, err = http.Get(base + "/v1/jobs/" + submitted.JobID)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	status := struct {
		Status    string `json:"status"`
		RequestID string `json:"request_id"`
	}{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&status))
	require.Equal(t, "COMPLETED", status.Status)
	require.Equal(t, "req-job-e2e", status.RequestID)
}

func TestJournaledSubmissionsAreServed(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	cfg := *server.DefaultConfig()
	cfg.RelayDir = t.TempDir()
	cfg.RawRESTListener = randomHost
	cfg.Gateways = []string{spawnMockGateway(t)}

	srv := spawnRelay(ctx, t, cfg)
	base := fmt.Sprintf("http://%s", srv.RestAddr())

	body, err := json.Marshal(map[string]any{"proof": []byte("0xdead")})
	require.NoError(t, err)
	res, err := http.Post(base+"/v1/proofs", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	res.Body.Close()
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, err = http.Get(base + "/v1/submissions")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var records []struct {
		JobID string `json:"JobID"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&records))
	require.Len(t, records, 1)
	require.Equal(t, "job-e2e", records[0].JobID)
}

func TestServerRequiresGateway(t *testing.T) {
	cfg := *server.DefaultConfig()
	cfg.RelayDir = t.TempDir()
	cfg.RawRESTListener = randomHost

	_, err := server.SetupConfig(&cfg)
	require.NoError(t, err)
	_, err = server.New(context.Background(), cfg)
	require.Error(t, err)
}
