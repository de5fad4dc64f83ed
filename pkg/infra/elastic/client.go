package elastic

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"

	"github.com/C-S-I-FIIT/egis/pkg/domain/interfaces"
	"github.com/C-S-I-FIIT/egis/pkg/domain/model"
	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/C-S-I-FIIT/egis/pkg/utils/logging"
	"github.com/C-S-I-FIIT/egis/pkg/utils/safe"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tidwall/gjson"
)

// Client writes finding documents into Elasticsearch
type Client struct {
	es *elasticsearch.Client
}

var _ interfaces.DocumentStore = (*Client)(nil)

type config struct {
	username  string
	password  string
	apiKey    types.ElasticAPIKey
	transport http.RoundTripper
}

type Option func(*config)

func WithBasicAuth(username, password string) Option {
	return func(x *config) {
		x.username = username
		x.password = password
	}
}

func WithAPIKey(key types.ElasticAPIKey) Option {
	return func(x *config) {
		x.apiKey = key
	}
}

func WithTransport(transport http.RoundTripper) Option {
	return func(x *config) {
		x.transport = transport
	}
}

func WithInsecureTLS() Option {
	return func(x *config) {
		x.transport = &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			// #nosec G402
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
}

func New(addresses []string, options ...Option) (*Client, error) {
	if len(addresses) == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "elasticsearch address is required")
	}

	var cfg config
	for _, opt := range options {
		opt(&cfg)
	}

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: addresses,
		Username:  cfg.username,
		Password:  cfg.password,
		APIKey:    string(cfg.apiKey),
		Transport: cfg.transport,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create elasticsearch client", goerr.V("addresses", addresses))
	}

	return &Client{es: es}, nil
}

type bulkAction struct {
	Index bulkMeta `json:"index"`
}

type bulkMeta struct {
	Index string `json:"_index"`
	ID    string `json:"_id"`
}

func encodeBulk(index string, docs []*model.FindingDocument) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, doc := range docs {
		if err := enc.Encode(bulkAction{Index: bulkMeta{Index: index, ID: doc.ID}}); err != nil {
			return nil, goerr.Wrap(err, "failed to encode bulk action", goerr.V("id", doc.ID))
		}
		if err := enc.Encode(doc); err != nil {
			return nil, goerr.Wrap(err, "failed to encode finding document", goerr.V("id", doc.ID))
		}
	}
	return buf.Bytes(), nil
}

// BulkUpsert indexes all documents in a single bulk request. An existing document with the same ID is replaced. Per-item failures are returned in BulkResult, not as an error.
func (x *Client) BulkUpsert(ctx context.Context, index string, docs []*model.FindingDocument) (*model.BulkResult, error) {
	result := &model.BulkResult{}
	if len(docs) == 0 {
		return result, nil
	}

	body, err := encodeBulk(index, docs)
	if err != nil {
		return nil, err
	}

	resp, err := x.es.Bulk(bytes.NewReader(body),
		x.es.Bulk.WithContext(ctx),
		x.es.Bulk.WithIndex(index),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to send bulk request", goerr.V("index", index), goerr.V("count", len(docs)))
	}
	defer safe.Close(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read bulk response", goerr.V("index", index))
	}
	if resp.IsError() {
		return nil, goerr.New("bulk request rejected",
			goerr.V("index", index),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(raw)),
		)
	}

	parsed := gjson.ParseBytes(raw)
	for _, item := range parsed.Get("items").Array() {
		action := item.Get("index")
		id := action.Get("_id").String()

		if e := action.Get("error"); e.Exists() {
			reason := e.Get("reason").String()
			if reason == "" {
				reason = e.Raw
			}
			result.Failed = append(result.Failed, model.BulkFailure{
				ID:    id,
				Error: e.Get("type").String() + ": " + reason,
			})
			continue
		}
		result.Succeeded = append(result.Succeeded, id)
	}

	logging.From(ctx).Debug("bulk indexed findings",
		"index", index,
		"succeeded", len(result.Succeeded),
		"failed", len(result.Failed),
		"took", parsed.Get("took").Int(),
	)

	return result, nil
}

// Ping checks the cluster answers the info endpoint
func (x *Client) Ping(ctx context.Context) error {
	resp, err := x.es.Info(x.es.Info.WithContext(ctx))
	if err != nil {
		return goerr.Wrap(err, "elasticsearch is not reachable")
	}
	defer safe.Close(resp.Body)

	if resp.IsError() {
		return goerr.New("elasticsearch info request failed", goerr.V("status", resp.StatusCode))
	}
	return nil
}
