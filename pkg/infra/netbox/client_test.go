package netbox_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/C-S-I-FIIT/egis/pkg/domain/model"
	"github.com/C-S-I-FIIT/egis/pkg/infra/netbox"
	"github.com/m-mizutani/gt"
)

func newClient(t *testing.T, mux *http.ServeMux) *netbox.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.Header.Get("Authorization")).Equal("Token secret-token")
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return gt.R1(netbox.New(srv.URL, "secret-token")).NoError(t)
}

func TestNew(t *testing.T) {
	_, err := netbox.New("https://netbox.local", "")
	gt.Error(t, err)

	_, err = netbox.New("netbox.local", "token")
	gt.Error(t, err)
}

func TestListOrganizations(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/tenancy/tenants/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("offset") == "" {
			_, _ = w.Write([]byte(`{"count":2,"next":"http://` + r.Host + `/api/tenancy/tenants/?limit=1&offset=1","results":[{"id":1,"name":"Acme","slug":"acme"}]}`))
			return
		}
		_, _ = w.Write([]byte(`{"count":2,"next":null,"results":[{"id":2,"name":"Globex","slug":"globex","description":"second"}]}`))
	})
	client := newClient(t, mux)

	orgs := gt.R1(client.ListOrganizations(context.Background())).NoError(t)
	gt.V(t, len(orgs)).Equal(2)
	gt.V(t, orgs[0].Name).Equal("Acme")
	gt.V(t, orgs[1].ID.String()).Equal("2")
	gt.V(t, orgs[1].Description).Equal("second")
}

func TestGetOrganization(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/tenancy/tenants/7/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":7,"name":"Acme","slug":"acme"}`))
	})
	mux.HandleFunc("GET /api/tenancy/contact-assignments/", func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.URL.Query().Get("object_type")).Equal("tenancy.tenant")
		gt.V(t, r.URL.Query().Get("object_id")).Equal("7")
		_, _ = w.Write([]byte(`{"next":null,"results":[
			{"contact":{"id":10},"role":{"name":"Technical"},"priority":{"value":"secondary"}},
			{"contact":{"id":11},"role":{"name":"Security"},"priority":{"value":"primary"}}
		]}`))
	})
	mux.HandleFunc("GET /api/tenancy/contacts/10/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":10,"name":"Bob","email":"bob@acme.test"}`))
	})
	mux.HandleFunc("GET /api/tenancy/contacts/11/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":11,"name":"Alice","email":"alice@acme.test","phone":"+100"}`))
	})
	client := newClient(t, mux)

	org := gt.R1(client.GetOrganization(context.Background(), 7)).NoError(t)
	gt.V(t, org.Name).Equal("Acme")
	gt.True(t, org.Contact != nil)
	gt.V(t, org.Contact.Name).Equal("Alice")
	gt.V(t, org.Contact.Role).Equal("Security")
	gt.V(t, org.Contact.Phone).Equal("+100")
}

func TestPrimaryContact(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		gt.True(t, netbox.PrimaryContact(nil) == nil)
	})

	t.Run("role fallback", func(t *testing.T) {
		c := netbox.PrimaryContact([]*model.Contact{
			{Name: "a", Role: "Technical"},
			{Name: "b", Role: "Primary"},
		})
		gt.V(t, c.Name).Equal("b")
	})

	t.Run("first contact fallback", func(t *testing.T) {
		c := netbox.PrimaryContact([]*model.Contact{
			{Name: "a", Role: "Technical"},
			{Name: "b", Role: "Billing"},
		})
		gt.V(t, c.Name).Equal("a")
	})
}

func TestResolveTargets(t *testing.T) {
	deviceCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/ipam/ip-addresses/", func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.URL.Query().Get("tag")).Equal("vuln-scan")
		gt.V(t, r.URL.Query().Get("tenant_id")).Equal("3")
		_, _ = w.Write([]byte(`{"next":null,"results":[
			{"address":"10.0.0.5/24","dns_name":"web.acme.test","description":"web","assigned_object":{"device":{"id":1,"name":"web01"}}},
			{"address":"10.0.0.6/24","assigned_object":{"device":{"id":1,"name":"web01"}}},
			{"address":"10.0.0.7/32","assigned_object":{"virtual_machine":{"id":9,"name":"vm09"}}},
			{"address":"2001:db8::1/64"}
		]}`))
	})
	mux.HandleFunc("GET /api/dcim/devices/1/", func(w http.ResponseWriter, r *http.Request) {
		deviceCalls++
		_, _ = w.Write([]byte(`{"id":1,"name":"web01","role":{"name":"Server"},"site":{"name":"DC1"},"rack":{"name":"R1"}}`))
	})
	mux.HandleFunc("GET /api/virtualization/virtual-machines/9/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":9,"name":"vm09","site":{"name":"DC2"}}`))
	})
	client := newClient(t, mux)

	targets := gt.R1(client.ResolveTargets(context.Background(), 3)).NoError(t)
	gt.V(t, len(targets)).Equal(4)

	gt.V(t, targets[0].IP).Equal("10.0.0.5")
	gt.V(t, targets[0].DNSName).Equal("web.acme.test")
	gt.V(t, targets[0].OrganizationID.String()).Equal("3")
	gt.V(t, targets[0].DeviceMetadata["device_name"]).Equal("web01")
	gt.V(t, targets[0].DeviceMetadata["device_role"]).Equal("Server")
	gt.V(t, targets[0].DeviceMetadata["rack"]).Equal("R1")

	gt.V(t, targets[2].DeviceMetadata["device_role"]).Equal("Virtual Machine")
	gt.V(t, targets[2].DeviceMetadata["site_name"]).Equal("DC2")

	gt.V(t, targets[3].IP).Equal("2001:db8::1")
	gt.True(t, targets[3].DeviceMetadata == nil)

	gt.V(t, deviceCalls).Equal(1)
}

func TestPing(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/status/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"netbox-version":"4.1.0"}`))
	})
	client := newClient(t, mux)
	gt.NoError(t, client.Ping(context.Background()))
}
