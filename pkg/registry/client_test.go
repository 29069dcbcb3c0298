package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avdata/registry-enrich/pkg/config"
)

func newTestClient(serverURL string) *Client {
	return NewClient(&config.RegistryConfig{
		URL:       serverURL,
		UserAgent: "registry-enrich-test/1.0",
		Timeout:   2 * time.Second,
	}, zap.NewNop())
}

func TestLookupPostsFormAndParsesPage(t *testing.T) {
	var gotRequests []*http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		gotRequests = append(gotRequests, r)
		w.Write([]byte(resultPage)) //nolint:errcheck
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	fields, err := client.Lookup(context.Background(), "N172SP")
	require.NoError(t, err)
	assert.Equal(t, "Valid", fields[FieldStatus])
	assert.Equal(t, "CESSNA", fields["MANUFACTURER NAME"])

	require.Len(t, gotRequests, 1)
	r := gotRequests[0]
	assert.Equal(t, http.MethodPost, r.Method)
	assert.Equal(t, "N172SP", r.PostFormValue("NNumbertxt"))
	assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
	assert.Equal(t, "registry-enrich-test/1.0", r.Header.Get("User-Agent"))
	assert.Equal(t, server.URL, r.Header.Get("Origin"))
}

func TestLookupIssuesOneRequestPerCall(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(resultPage)) //nolint:errcheck
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Lookup(context.Background(), "N172SP")
	require.NoError(t, err)
	_, err = client.Lookup(context.Background(), "N172SP")
	require.NoError(t, err)

	assert.Equal(t, 2, requests)
}

func TestLookupServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	fields, err := client.Lookup(context.Background(), "N172SP")
	assert.Nil(t, fields)

	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "N172SP", lookupErr.NNumber)
	assert.Equal(t, ReasonRequestFailed, lookupErr.Reason)
}

func TestLookupUnreachableServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)

	_, err := client.Lookup(context.Background(), "N172SP")

	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, ReasonRequestFailed, lookupErr.Reason)
}

func TestLookupNoRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>No aircraft was found.</p></body></html>`)) //nolint:errcheck
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Lookup(context.Background(), "N00000")

	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, ReasonNoRecord, lookupErr.Reason)
	assert.ErrorIs(t, err, ErrNoRecord)
}

func TestLookupUnparseablePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := `<html><body><table class="devkit-table">
<tr><td>Reservation Date</td><td>01/01/2024</td></tr>
</table></body></html>`
		w.Write([]byte(page)) //nolint:errcheck
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Lookup(context.Background(), "N172SP")

	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, ReasonParseFailed, lookupErr.Reason)
	assert.ErrorIs(t, err, ErrNoFields)
}

func TestLookupCanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(resultPage)) //nolint:errcheck
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Lookup(ctx, "N172SP")

	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, ReasonRequestFailed, lookupErr.Reason)
	assert.ErrorIs(t, err, context.Canceled)
}
