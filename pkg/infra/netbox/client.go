package netbox

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/C-S-I-FIIT/egis/pkg/domain/interfaces"
	"github.com/C-S-I-FIIT/egis/pkg/domain/model"
	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/C-S-I-FIIT/egis/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tidwall/gjson"
)

const (
	DefaultTargetTag = "vuln-scan"
	pageSize         = 200
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client resolves organizations (tenants) and scan targets from NetBox
type Client struct {
	baseURL    *url.URL
	token      types.NetboxToken
	targetTag  string
	httpClient HTTPClient
}

var _ interfaces.TargetProvider = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

// WithTargetTag selects IP addresses carrying the tag. Default is "vuln-scan".
func WithTargetTag(tag string) Option {
	return func(x *Client) {
		x.targetTag = tag
	}
}

func WithInsecureTLS() Option {
	return func(x *Client) {
		x.httpClient = &http.Client{
			Timeout: time.Minute,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				// #nosec G402
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		}
	}
}

func New(baseURL string, token types.NetboxToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "netbox token is required")
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid netbox URL", goerr.V("url", baseURL))
	}

	client := &Client{
		baseURL:    u,
		token:      token,
		targetTag:  DefaultTargetTag,
		httpClient: &http.Client{Timeout: time.Minute},
	}
	for _, opt := range options {
		opt(client)
	}
	return client, nil
}

func (x *Client) get(ctx context.Context, rawURL string) (gjson.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return gjson.Result{}, goerr.Wrap(err, "failed to create netbox request", goerr.V("url", rawURL))
	}
	req.Header.Set("Authorization", "Token "+string(x.token))
	req.Header.Set("Accept", "application/json")

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return gjson.Result{}, goerr.Wrap(err, "failed to send netbox request", goerr.V("url", rawURL))
	}
	defer safe.CloseBody(resp)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, goerr.Wrap(err, "failed to read netbox response", goerr.V("url", rawURL))
	}
	if resp.StatusCode != http.StatusOK {
		return gjson.Result{}, goerr.New("unexpected netbox response",
			goerr.V("url", rawURL),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
		)
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, goerr.New("netbox returned invalid JSON", goerr.V("url", rawURL))
	}

	return gjson.ParseBytes(body), nil
}

func (x *Client) endpoint(path string, query url.Values) string {
	u := *x.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	u.RawQuery = query.Encode()
	return u.String()
}

// list follows the "next" links of a paginated endpoint
func (x *Client) list(ctx context.Context, path string, query url.Values, fn func(item gjson.Result)) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("limit", strconv.Itoa(pageSize))

	next := x.endpoint(path, query)
	for next != "" {
		page, err := x.get(ctx, next)
		if err != nil {
			return err
		}
		for _, item := range page.Get("results").Array() {
			fn(item)
		}
		next = page.Get("next").String()
	}
	return nil
}

func toOrganization(item gjson.Result) *model.Organization {
	return &model.Organization{
		ID:          types.OrganizationID(item.Get("id").Int()),
		Name:        item.Get("name").String(),
		Slug:        item.Get("slug").String(),
		Description: item.Get("description").String(),
	}
}

func (x *Client) ListOrganizations(ctx context.Context) ([]*model.Organization, error) {
	var orgs []*model.Organization
	if err := x.list(ctx, "/api/tenancy/tenants/", nil, func(item gjson.Result) {
		orgs = append(orgs, toOrganization(item))
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to list organizations")
	}
	return orgs, nil
}

// GetOrganization returns the tenant with its primary contact
func (x *Client) GetOrganization(ctx context.Context, orgID types.OrganizationID) (*model.Organization, error) {
	item, err := x.get(ctx, x.endpoint("/api/tenancy/tenants/"+orgID.String()+"/", nil))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get organization", goerr.V("org_id", orgID))
	}
	org := toOrganization(item)

	contacts, err := x.listContacts(ctx, orgID)
	if err != nil {
		return nil, err
	}
	org.Contact = PrimaryContact(contacts)

	return org, nil
}

func (x *Client) listContacts(ctx context.Context, orgID types.OrganizationID) ([]*model.Contact, error) {
	query := url.Values{}
	query.Set("object_type", "tenancy.tenant")
	query.Set("object_id", orgID.String())

	var assignments []gjson.Result
	if err := x.list(ctx, "/api/tenancy/contact-assignments/", query, func(item gjson.Result) {
		assignments = append(assignments, item)
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to list contact assignments", goerr.V("org_id", orgID))
	}

	var contacts []*model.Contact
	for _, a := range assignments {
		contactID := a.Get("contact.id")
		if !contactID.Exists() {
			continue
		}

		detail, err := x.get(ctx, x.endpoint("/api/tenancy/contacts/"+contactID.String()+"/", nil))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to get contact", goerr.V("org_id", orgID), goerr.V("contact_id", contactID.String()))
		}

		contacts = append(contacts, &model.Contact{
			Name:     detail.Get("name").String(),
			Email:    detail.Get("email").String(),
			Phone:    detail.Get("phone").String(),
			Role:     a.Get("role.name").String(),
			Priority: a.Get("priority.value").String(),
		})
	}
	return contacts, nil
}

// PrimaryContact picks the contact with priority "primary", then one whose role is "primary", then the first one.
func PrimaryContact(contacts []*model.Contact) *model.Contact {
	if len(contacts) == 0 {
		return nil
	}
	for _, c := range contacts {
		if c.Priority == "primary" {
			return c
		}
	}
	for _, c := range contacts {
		if strings.EqualFold(c.Role, "primary") {
			return c
		}
	}
	return contacts[0]
}

// ResolveTargets returns the tagged IP addresses of the organization with device enrichment
func (x *Client) ResolveTargets(ctx context.Context, orgID types.OrganizationID) ([]model.Target, error) {
	query := url.Values{}
	query.Set("tag", x.targetTag)
	query.Set("tenant_id", orgID.String())

	var items []gjson.Result
	if err := x.list(ctx, "/api/ipam/ip-addresses/", query, func(item gjson.Result) {
		items = append(items, item)
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to list IP addresses", goerr.V("org_id", orgID))
	}

	cache := map[string]map[string]string{}
	targets := make([]model.Target, 0, len(items))
	for _, item := range items {
		address := item.Get("address").String()
		ip, _, _ := strings.Cut(address, "/")
		if ip == "" {
			continue
		}

		metadata, err := x.deviceMetadata(ctx, cache, item.Get("assigned_object"))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to resolve device", goerr.V("org_id", orgID), goerr.V("ip", ip))
		}

		targets = append(targets, model.Target{
			IP:             ip,
			DNSName:        item.Get("dns_name").String(),
			Description:    item.Get("description").String(),
			OrganizationID: orgID,
			DeviceMetadata: metadata,
		})
	}

	return targets, nil
}

func (x *Client) deviceMetadata(ctx context.Context, cache map[string]map[string]string, assigned gjson.Result) (map[string]string, error) {
	var path, kind string
	switch {
	case assigned.Get("virtual_machine.id").Exists():
		path = "/api/virtualization/virtual-machines/" + assigned.Get("virtual_machine.id").String() + "/"
		kind = "vm"
	case assigned.Get("device.id").Exists():
		path = "/api/dcim/devices/" + assigned.Get("device.id").String() + "/"
		kind = "device"
	default:
		return nil, nil
	}

	if cached, ok := cache[path]; ok {
		return cached, nil
	}

	detail, err := x.get(ctx, x.endpoint(path, nil))
	if err != nil {
		return nil, err
	}

	md := map[string]string{
		"device_name": detail.Get("name").String(),
		"site_name":   detail.Get("site.name").String(),
	}
	if kind == "vm" {
		md["device_role"] = "Virtual Machine"
	} else {
		role := detail.Get("role.name")
		if !role.Exists() {
			role = detail.Get("device_role.name")
		}
		md["device_role"] = role.String()
		md["rack"] = detail.Get("rack.name").String()
	}
	for k, v := range md {
		if v == "" {
			delete(md, k)
		}
	}

	cache[path] = md
	return md, nil
}

// Ping checks that the API answers with the configured token
func (x *Client) Ping(ctx context.Context) error {
	if _, err := x.get(ctx, x.endpoint("/api/status/", nil)); err != nil {
		return goerr.Wrap(err, "netbox is not reachable")
	}
	return nil
}
