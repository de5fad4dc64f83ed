package nessus_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/C-S-I-FIIT/egis/pkg/infra/nessus"
	"github.com/m-mizutani/gt"
)

func newClient(t *testing.T, handler http.HandlerFunc, options ...nessus.Option) *nessus.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return gt.R1(nessus.New(srv.URL, "access", "secret", options...)).NoError(t)
}

func TestNew(t *testing.T) {
	t.Run("keys are required", func(t *testing.T) {
		_, err := nessus.New("https://nessus.local:8834", "", "secret")
		gt.Error(t, err)
	})

	t.Run("URL must be absolute", func(t *testing.T) {
		_, err := nessus.New("nessus.local", "access", "secret")
		gt.Error(t, err)
	})
}

func TestCreateJob(t *testing.T) {
	t.Run("creates one-time scan with API keys", func(t *testing.T) {
		var received map[string]any
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.Method).Equal(http.MethodPost)
			gt.V(t, r.URL.Path).Equal("/scans")
			gt.V(t, r.Header.Get("X-ApiKeys")).Equal("accessKey=access; secretKey=secret")

			body := gt.R1(io.ReadAll(r.Body)).NoError(t)
			gt.NoError(t, json.Unmarshal(body, &received))
			_, _ = w.Write([]byte(`{"scan":{"id":42,"name":"acme"}}`))
		})

		id := gt.R1(client.CreateJob(context.Background(), "acme", []string{"10.0.0.1", "10.0.0.2"})).NoError(t)
		gt.V(t, id).Equal("42")

		gt.V(t, received["uuid"]).Equal(nessus.DefaultTemplateUUID)
		settings := received["settings"].(map[string]any)
		gt.V(t, settings["name"]).Equal("acme")
		gt.V(t, settings["text_targets"]).Equal("10.0.0.1,10.0.0.2")
		gt.V(t, settings["launch"]).Equal("ONETIME")
	})

	t.Run("4xx is a rejection", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"Invalid targets"}`))
		})

		_, err := client.CreateJob(context.Background(), "acme", []string{"999.1.1.1"})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrRemoteRejected))
	})

	t.Run("5xx is not a rejection", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := client.CreateJob(context.Background(), "acme", []string{"10.0.0.1"})
		gt.Error(t, err)
		gt.False(t, errors.Is(err, types.ErrRemoteRejected))
	})

	t.Run("missing scan ID", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		})

		_, err := client.CreateJob(context.Background(), "acme", []string{"10.0.0.1"})
		gt.Error(t, err)
	})
}

func TestAPIToken(t *testing.T) {
	const script = `var a=1;{key:"getApiToken",value:function(){return"8B2A-TOKEN"}},{key:"other"}`

	t.Run("static token is sent", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.URL.Path).Equal("/scans/42")
			gt.V(t, r.Header.Get("X-Api-Token")).Equal("static-token")
			_, _ = w.Write([]byte(`{"info":{"status":"running"}}`))
		}, nessus.WithAPIToken("static-token"), nessus.WithAPITokenDiscovery())

		gt.V(t, gt.R1(client.GetStatus(context.Background(), "42")).NoError(t)).Equal(types.RemoteStatusRunning)
	})

	t.Run("token is read once from nessus6.js", func(t *testing.T) {
		var scriptCalls int
		var tokens []string
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/nessus6.js" {
				scriptCalls++
				_, _ = w.Write([]byte(script))
				return
			}
			tokens = append(tokens, r.Header.Get("X-Api-Token"))
			_, _ = w.Write([]byte(`{"info":{"status":"running"}}`))
		}, nessus.WithAPITokenDiscovery())

		for range 2 {
			gt.R1(client.GetStatus(context.Background(), "42")).NoError(t)
		}
		gt.V(t, scriptCalls).Equal(1)
		gt.V(t, tokens).Equal([]string{"8B2A-TOKEN", "8B2A-TOKEN"})
	})

	t.Run("missing script leaves the header unset", func(t *testing.T) {
		var scriptCalls int
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/nessus6.js" {
				scriptCalls++
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, ok := r.Header["X-Api-Token"]
			gt.False(t, ok)
			_, _ = w.Write([]byte(`{"info":{"status":"completed"}}`))
		}, nessus.WithAPITokenDiscovery())

		gt.V(t, gt.R1(client.GetStatus(context.Background(), "42")).NoError(t)).Equal(types.RemoteStatusCompleted)
		gt.R1(client.GetStatus(context.Background(), "42")).NoError(t)
		gt.V(t, scriptCalls).Equal(1)
	})

	t.Run("discovery is off by default", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.URL.Path).Equal("/scans/42")
			_, _ = w.Write([]byte(`{"info":{"status":"running"}}`))
		})

		gt.R1(client.GetStatus(context.Background(), "42")).NoError(t)
	})
}

func TestGetScanName(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.Method).Equal(http.MethodGet)
		switch r.URL.Path {
		case "/scans/42":
			_, _ = w.Write([]byte(`{"info":{"name":"Acme weekly","status":"completed"}}`))
		case "/scans/43":
			_, _ = w.Write([]byte(`{"info":{"status":"completed"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	gt.V(t, gt.R1(client.GetScanName(context.Background(), "42")).NoError(t)).Equal("Acme weekly")
	gt.V(t, gt.R1(client.GetScanName(context.Background(), "43")).NoError(t)).Equal("")

	_, err := client.GetScanName(context.Background(), "44")
	gt.Error(t, err)
}

func TestLifecycle(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/scans/42/launch", func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.Method).Equal(http.MethodPost)
		_, _ = w.Write([]byte(`{"scan_uuid":"abc"}`))
	})
	mux.HandleFunc("/scans/42", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"info":{"status":"Completed","name":"acme"}}`))
	})
	mux.HandleFunc("/scans/42/export", func(w http.ResponseWriter, r *http.Request) {
		body := gt.R1(io.ReadAll(r.Body)).NoError(t)
		gt.V(t, string(body)).Equal(`{"format":"csv"}`)
		_, _ = w.Write([]byte(`{"file":1234,"token":"t"}`))
	})
	mux.HandleFunc("/scans/42/export/1234/status", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ready"}`))
	})
	mux.HandleFunc("/scans/42/export/1234/download", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Plugin ID,Host\n1,10.0.0.1\n"))
	})
	mux.HandleFunc("/scans/43/launch", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})
	mux.HandleFunc("/server/status", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ready","code":200}`))
	})

	client := newClient(t, mux.ServeHTTP)
	ctx := context.Background()

	gt.NoError(t, client.Launch(ctx, "42"))
	gt.Error(t, client.Launch(ctx, "43"))

	status := gt.R1(client.GetStatus(ctx, "42")).NoError(t)
	gt.V(t, status).Equal(types.RemoteStatusCompleted)

	fileID := gt.R1(client.RequestExport(ctx, "42", types.ExportFormatCSV)).NoError(t)
	gt.V(t, fileID).Equal("1234")

	exportStatus := gt.R1(client.GetExportStatus(ctx, "42", fileID)).NoError(t)
	gt.V(t, exportStatus).Equal(types.RemoteStatusReady)

	data := gt.R1(client.DownloadExport(ctx, "42", fileID)).NoError(t)
	gt.V(t, string(data)).Equal("Plugin ID,Host\n1,10.0.0.1\n")

	gt.NoError(t, client.Ping(ctx))
}

func TestRequestIsCancellable(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetStatus(ctx, "42")
	gt.Error(t, err)
}
