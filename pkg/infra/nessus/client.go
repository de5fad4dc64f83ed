package nessus

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/C-S-I-FIIT/egis/pkg/domain/interfaces"
	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/C-S-I-FIIT/egis/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tidwall/gjson"
)

// DefaultTemplateUUID is the "Basic Network Scan" policy template
const DefaultTemplateUUID = "731a8e52-3ea6-a291-ec0a-d2ff0619c19d7bd788d6be818b65"

// maxErrorBody bounds the response body kept in error values
const maxErrorBody = 512

// apiTokenPattern finds the X-Api-Token that the Nessus web UI embeds in /nessus6.js
var apiTokenPattern = regexp.MustCompile(`getApiToken".*?return"(.*?)"\}\}`)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the Nessus REST API. It is safe for concurrent use.
type Client struct {
	baseURL      *url.URL
	accessKey    types.NessusAccessKey
	secretKey    types.NessusSecretKey
	templateUUID string
	httpClient   HTTPClient

	// Nessus Professional also requires the web UI token on scan management calls
	apiToken      string
	discoverToken bool
	tokenMu       sync.Mutex
	tokenResolved bool
}

var _ interfaces.ScannerAPI = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func WithTemplateUUID(uuid string) Option {
	return func(x *Client) {
		x.templateUUID = uuid
	}
}

// WithAPIToken sets the X-Api-Token header sent with every request
func WithAPIToken(token string) Option {
	return func(x *Client) {
		x.apiToken = token
	}
}

// WithAPITokenDiscovery reads the X-Api-Token from /nessus6.js on first use when no token is set.
// Scanners that do not serve the script are called without the header.
func WithAPITokenDiscovery() Option {
	return func(x *Client) {
		x.discoverToken = true
	}
}

// WithInsecureTLS disables certificate verification for appliances with self-signed certificates
func WithInsecureTLS() Option {
	return func(x *Client) {
		x.httpClient = &http.Client{
			Timeout: 5 * time.Minute,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				// #nosec G402
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		}
	}
}

func New(baseURL string, accessKey types.NessusAccessKey, secretKey types.NessusSecretKey, options ...Option) (*Client, error) {
	if accessKey == "" || secretKey == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "nessus access key and secret key are required")
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid nessus URL", goerr.V("url", baseURL))
	}

	client := &Client{
		baseURL:      u,
		accessKey:    accessKey,
		secretKey:    secretKey,
		templateUUID: DefaultTemplateUUID,
		httpClient:   &http.Client{Timeout: 5 * time.Minute},
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

// token returns the X-Api-Token, discovering it once when enabled. A transport failure is returned and
// retried on the next call; a missing script or pattern is remembered as "no token".
func (x *Client) token(ctx context.Context) (string, error) {
	x.tokenMu.Lock()
	defer x.tokenMu.Unlock()

	if x.apiToken != "" || !x.discoverToken || x.tokenResolved {
		return x.apiToken, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, x.baseURL.String()+"/nessus6.js", nil)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create API token request")
	}
	resp, err := x.httpClient.Do(req)
	if err != nil {
		return "", goerr.Wrap(err, "failed to fetch nessus6.js")
	}
	defer safe.CloseBody(resp)

	script, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read nessus6.js")
	}

	x.tokenResolved = true
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if m := apiTokenPattern.FindSubmatch(script); m != nil {
			x.apiToken = string(m[1])
		}
	}
	return x.apiToken, nil
}

type apiError struct {
	status int
	body   string
}

func (x *Client) do(ctx context.Context, method, path string, payload any) ([]byte, *apiError, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to marshal request", goerr.V("path", path))
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, x.baseURL.String()+path, body)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to create request", goerr.V("path", path))
	}
	token, err := x.token(ctx)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("X-ApiKeys", "accessKey="+string(x.accessKey)+"; secretKey="+string(x.secretKey))
	if token != "" {
		req.Header.Set("X-Api-Token", token)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to send request to nessus",
			goerr.V("method", method),
			goerr.V("path", path),
		)
	}
	defer safe.CloseBody(resp)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to read nessus response", goerr.V("path", path))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := string(respBody)
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}
		return nil, &apiError{status: resp.StatusCode, body: msg}, nil
	}

	return respBody, nil, nil
}

func (x *apiError) wrap(base error, msg string, values ...goerr.Option) error {
	values = append(values, goerr.V("status", x.status), goerr.V("body", x.body))
	return goerr.Wrap(base, msg, values...)
}

var errUnexpectedResponse = goerr.New("unexpected nessus response")

// CreateJob creates a one-time scan. A 4xx answer means the scanner rejected the input and maps to ErrRemoteRejected.
func (x *Client) CreateJob(ctx context.Context, name string, targets []string) (string, error) {
	payload := map[string]any{
		"uuid": x.templateUUID,
		"settings": map[string]any{
			"name":         name,
			"text_targets": strings.Join(targets, ","),
			"launch":       "ONETIME",
			"enabled":      false,
		},
	}

	body, apiErr, err := x.do(ctx, http.MethodPost, "/scans", payload)
	if err != nil {
		return "", err
	}
	if apiErr != nil {
		base := errUnexpectedResponse
		if apiErr.status >= 400 && apiErr.status < 500 {
			base = types.ErrRemoteRejected
		}
		return "", apiErr.wrap(base, "failed to create scan", goerr.V("name", name))
	}

	id := gjson.GetBytes(body, "scan.id")
	if !id.Exists() {
		return "", goerr.Wrap(errUnexpectedResponse, "scan ID is missing", goerr.V("body", string(body)))
	}
	return id.String(), nil
}

func (x *Client) Launch(ctx context.Context, remoteID string) error {
	_, apiErr, err := x.do(ctx, http.MethodPost, "/scans/"+url.PathEscape(remoteID)+"/launch", nil)
	if err != nil {
		return err
	}
	if apiErr != nil {
		return apiErr.wrap(errUnexpectedResponse, "failed to launch scan", goerr.V("remote_id", remoteID))
	}
	return nil
}

func (x *Client) GetStatus(ctx context.Context, remoteID string) (types.RemoteStatus, error) {
	body, apiErr, err := x.do(ctx, http.MethodGet, "/scans/"+url.PathEscape(remoteID), nil)
	if err != nil {
		return "", err
	}
	if apiErr != nil {
		return "", apiErr.wrap(errUnexpectedResponse, "failed to get scan status", goerr.V("remote_id", remoteID))
	}

	status := gjson.GetBytes(body, "info.status")
	if !status.Exists() {
		return "", goerr.Wrap(errUnexpectedResponse, "scan status is missing", goerr.V("remote_id", remoteID))
	}
	return types.NewRemoteStatus(status.String()), nil
}

// GetScanName returns the job name the scanner shows for remoteID, or "" when it has none
func (x *Client) GetScanName(ctx context.Context, remoteID string) (string, error) {
	body, apiErr, err := x.do(ctx, http.MethodGet, "/scans/"+url.PathEscape(remoteID), nil)
	if err != nil {
		return "", err
	}
	if apiErr != nil {
		return "", apiErr.wrap(errUnexpectedResponse, "failed to get scan details", goerr.V("remote_id", remoteID))
	}
	return strings.TrimSpace(gjson.GetBytes(body, "info.name").String()), nil
}

func (x *Client) RequestExport(ctx context.Context, remoteID string, format types.ExportFormat) (string, error) {
	body, apiErr, err := x.do(ctx, http.MethodPost, "/scans/"+url.PathEscape(remoteID)+"/export", map[string]any{
		"format": string(format),
	})
	if err != nil {
		return "", err
	}
	if apiErr != nil {
		return "", apiErr.wrap(errUnexpectedResponse, "failed to request export",
			goerr.V("remote_id", remoteID),
			goerr.V("format", format),
		)
	}

	file := gjson.GetBytes(body, "file")
	if !file.Exists() {
		return "", goerr.Wrap(errUnexpectedResponse, "export file ID is missing", goerr.V("remote_id", remoteID))
	}
	return file.String(), nil
}

func (x *Client) exportPath(remoteID, fileID string) string {
	return "/scans/" + url.PathEscape(remoteID) + "/export/" + url.PathEscape(fileID)
}

func (x *Client) GetExportStatus(ctx context.Context, remoteID, fileID string) (types.RemoteStatus, error) {
	body, apiErr, err := x.do(ctx, http.MethodGet, x.exportPath(remoteID, fileID)+"/status", nil)
	if err != nil {
		return "", err
	}
	if apiErr != nil {
		return "", apiErr.wrap(errUnexpectedResponse, "failed to get export status",
			goerr.V("remote_id", remoteID),
			goerr.V("file_id", fileID),
		)
	}
	return types.NewRemoteStatus(gjson.GetBytes(body, "status").String()), nil
}

func (x *Client) DownloadExport(ctx context.Context, remoteID, fileID string) ([]byte, error) {
	body, apiErr, err := x.do(ctx, http.MethodGet, x.exportPath(remoteID, fileID)+"/download", nil)
	if err != nil {
		return nil, err
	}
	if apiErr != nil {
		return nil, apiErr.wrap(errUnexpectedResponse, "failed to download export",
			goerr.V("remote_id", remoteID),
			goerr.V("file_id", fileID),
		)
	}
	return body, nil
}

// Ping checks that the scanner is reachable and ready
func (x *Client) Ping(ctx context.Context) error {
	body, apiErr, err := x.do(ctx, http.MethodGet, "/server/status", nil)
	if err != nil {
		return err
	}
	if apiErr != nil {
		return apiErr.wrap(errUnexpectedResponse, "failed to get server status")
	}
	if status := gjson.GetBytes(body, "status").String(); status != "ready" {
		return goerr.Wrap(errUnexpectedResponse, "nessus is not ready", goerr.V("status", status))
	}
	return nil
}

func (x *Client) URL() string {
	return x.baseURL.String()
}
