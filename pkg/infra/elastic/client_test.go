package elastic_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/C-S-I-FIIT/egis/pkg/domain/model"
	"github.com/C-S-I-FIIT/egis/pkg/infra/elastic"
	"github.com/m-mizutani/gt"
)

func newServer(t *testing.T, handler http.HandlerFunc) *elastic.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return gt.R1(elastic.New([]string{srv.URL}, elastic.WithAPIKey("key"))).NoError(t)
}

func readLines(t *testing.T, r io.Reader) []map[string]any {
	t.Helper()
	var lines []map[string]any
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		if len(bytes.TrimSpace(scanner.Bytes())) == 0 {
			continue
		}
		var v map[string]any
		gt.NoError(t, json.Unmarshal(scanner.Bytes(), &v))
		lines = append(lines, v)
	}
	gt.NoError(t, scanner.Err())
	return lines
}

func TestNew(t *testing.T) {
	_, err := elastic.New(nil)
	gt.Error(t, err)
}

func TestBulkUpsert(t *testing.T) {
	docs := []*model.FindingDocument{
		{ID: "a", Host: model.DocumentHost{IP: "10.0.0.1"}},
		{ID: "b", Host: model.DocumentHost{IP: "10.0.0.2"}},
		{ID: "c", Host: model.DocumentHost{IP: "10.0.0.3"}},
	}

	t.Run("index actions with explicit IDs", func(t *testing.T) {
		var lines []map[string]any
		client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.Method).Equal(http.MethodPost)
			gt.V(t, r.URL.Path).Equal("/egis-vulnerabilities-2024.05/_bulk")
			lines = readLines(t, r.Body)
			_, _ = w.Write([]byte(`{"took":3,"errors":false,"items":[
				{"index":{"_id":"a","status":201}},
				{"index":{"_id":"b","status":200}},
				{"index":{"_id":"c","status":201}}
			]}`))
		})

		result := gt.R1(client.BulkUpsert(context.Background(), "egis-vulnerabilities-2024.05", docs)).NoError(t)
		gt.V(t, result.Succeeded).Equal([]string{"a", "b", "c"})
		gt.V(t, len(result.Failed)).Equal(0)
		gt.NoError(t, result.Err())

		gt.V(t, len(lines)).Equal(6)
		action := lines[0]["index"].(map[string]any)
		gt.V(t, action["_id"]).Equal("a")
		gt.V(t, action["_index"]).Equal("egis-vulnerabilities-2024.05")
		host := lines[1]["host"].(map[string]any)
		gt.V(t, host["ip"]).Equal("10.0.0.1")
	})

	t.Run("partial failure keeps successes", func(t *testing.T) {
		client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"took":3,"errors":true,"items":[
				{"index":{"_id":"a","status":201}},
				{"index":{"_id":"b","status":400,"error":{"type":"mapper_parsing_exception","reason":"failed to parse"}}},
				{"index":{"_id":"c","status":201}}
			]}`))
		})

		result := gt.R1(client.BulkUpsert(context.Background(), "idx", docs)).NoError(t)
		gt.V(t, result.Succeeded).Equal([]string{"a", "c"})
		gt.V(t, len(result.Failed)).Equal(1)
		gt.V(t, result.Failed[0].ID).Equal("b")
		gt.S(t, result.Failed[0].Error).Contains("failed to parse")
		gt.Error(t, result.Err())
	})

	t.Run("rejected request is an error", func(t *testing.T) {
		client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
		})

		_, err := client.BulkUpsert(context.Background(), "idx", docs)
		gt.Error(t, err)
	})

	t.Run("no documents sends nothing", func(t *testing.T) {
		called := false
		client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		result := gt.R1(client.BulkUpsert(context.Background(), "idx", nil)).NoError(t)
		gt.V(t, len(result.Succeeded)).Equal(0)
		gt.False(t, called)
	})
}

func TestPing(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.URL.Path).Equal("/")
		_, _ = w.Write([]byte(`{"name":"node-1","cluster_name":"egis","version":{"number":"8.17.0"},"tagline":"You Know, for Search"}`))
	})
	gt.NoError(t, client.Ping(context.Background()))
}
