package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/courtside/euroleague-go/pkg/apierr"
)

// fakeTimeoutError satisfies net.Error with Timeout() == true.
type fakeTimeoutError struct{}

func (fakeTimeoutError) Error() string   { return "dial tcp: i/o timeout" }
func (fakeTimeoutError) Timeout() bool   { return true }
func (fakeTimeoutError) Temporary() bool { return true }

// scriptedTransport plays back a fixed sequence of responses/errors and
// records every request it saw.
type scriptedTransport struct {
	steps    []scriptedStep
	requests []*http.Request
}

type scriptedStep struct {
	status int
	body   string
	header http.Header
	err    error
}

func (s *scriptedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	s.requests = append(s.requests, req)
	if len(s.steps) == 0 {
		return nil, errors.New("scripted transport exhausted")
	}
	step := s.steps[0]
	s.steps = s.steps[1:]

	if step.err != nil {
		return nil, step.err
	}
	header := step.header
	if header == nil {
		header = http.Header{}
	}
	return &http.Response{
		StatusCode: step.status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(step.body)),
		Request:    req,
	}, nil
}

// newScriptedClient wires a Client around a scripted transport and replaces
// the sleep with a counter.
func newScriptedClient(t *testing.T, rt *scriptedTransport, opts ...Option) (*Client, *[]time.Duration) {
	t.Helper()

	opts = append(opts, WithHTTPClient(&http.Client{Transport: rt}))
	client, err := New("https://api.example.com", opts...)
	require.NoError(t, err)

	var sleeps []time.Duration
	client.sleep = func(_ context.Context, d time.Duration) error {
		sleeps = append(sleeps, d)
		return nil
	}
	return client, &sleeps
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("rejects http scheme", func(t *testing.T) {
		t.Parallel()

		_, err := New("http://api-live.euroleague.net")
		require.ErrorContains(t, err, "must use https")
	})

	t.Run("rejects URL without host", func(t *testing.T) {
		t.Parallel()

		_, err := New("https://")
		require.ErrorContains(t, err, "no host")
	})

	t.Run("strips trailing slash", func(t *testing.T) {
		t.Parallel()

		client, err := New("https://api-live.euroleague.net/")
		require.NoError(t, err)
		require.Equal(t, "https://api-live.euroleague.net", client.baseURL)
	})
}

func TestBackoff(t *testing.T) {
	t.Parallel()

	client, err := New("https://api.example.com")
	require.NoError(t, err)

	cases := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 500 * time.Millisecond},
		{1, 1 * time.Second},
		{2, 2 * time.Second},
		{3, 4 * time.Second},
		{6, 30 * time.Second},
		{20, 30 * time.Second},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, client.backoff(tc.attempt), "attempt %d", tc.attempt)
	}
}

func TestGetRetriesTransientFailures(t *testing.T) {
	t.Parallel()

	rt := &scriptedTransport{steps: []scriptedStep{
		{err: fakeTimeoutError{}},
		{err: fakeTimeoutError{}},
		{status: http.StatusOK, body: `{"ok":true}`},
	}}
	client, sleeps := newScriptedClient(t, rt)

	raw, err := client.Get(context.Background(), "v2/clubs", nil)
	require.NoError(t, err)
	require.JSONEq(t, `{"ok":true}`, string(raw))

	require.Len(t, rt.requests, 3)
	require.Equal(t, []time.Duration{500 * time.Millisecond, 1 * time.Second}, *sleeps)
}

func TestGetExhaustsRetries(t *testing.T) {
	t.Parallel()

	t.Run("timeout errors become TimeoutError", func(t *testing.T) {
		t.Parallel()

		rt := &scriptedTransport{steps: []scriptedStep{
			{err: fakeTimeoutError{}},
			{err: fakeTimeoutError{}},
			{err: fakeTimeoutError{}},
		}}
		client, sleeps := newScriptedClient(t, rt)

		_, err := client.Get(context.Background(), "v2/clubs", nil)
		require.True(t, apierr.IsTimeout(err), "want TimeoutError, got %T: %v", err, err)
		require.True(t, apierr.IsNetwork(err))
		require.Len(t, rt.requests, 3)
		require.Len(t, *sleeps, 2)
	})

	t.Run("connection errors become NetworkError", func(t *testing.T) {
		t.Parallel()

		refused := errors.New("dial tcp: connection refused")
		rt := &scriptedTransport{steps: []scriptedStep{
			{err: refused}, {err: refused}, {err: refused},
		}}
		client, _ := newScriptedClient(t, rt)

		_, err := client.Get(context.Background(), "v2/clubs", nil)
		require.True(t, apierr.IsNetwork(err))
		require.False(t, apierr.IsTimeout(err))

		var netErr *apierr.NetworkError
		require.ErrorAs(t, err, &netErr)
		require.Contains(t, netErr.Message, "after 3 retries")
	})
}

func TestGetDoesNotRetryHTTPErrors(t *testing.T) {
	t.Parallel()

	rt := &scriptedTransport{steps: []scriptedStep{
		{status: http.StatusNotFound, body: `{"message":"Game not found","resource":"Game","identifier":"E2023_1"}`},
	}}
	client, sleeps := newScriptedClient(t, rt)

	_, err := client.Get(context.Background(), "v2/games/1", nil)
	require.True(t, apierr.IsNotFound(err))
	require.Len(t, rt.requests, 1, "HTTP errors must not be retried")
	require.Empty(t, *sleeps)
}

func TestGetRateLimited(t *testing.T) {
	t.Parallel()

	header := http.Header{}
	header.Set("Retry-After", "17")
	rt := &scriptedTransport{steps: []scriptedStep{
		{status: http.StatusTooManyRequests, body: `{"message":"slow down"}`, header: header},
	}}
	client, sleeps := newScriptedClient(t, rt)

	_, err := client.Get(context.Background(), "v2/clubs", nil)
	require.True(t, apierr.IsRateLimited(err))
	require.Empty(t, *sleeps)

	var rateErr *apierr.RateLimitError
	require.ErrorAs(t, err, &rateErr)
	require.Equal(t, 17, rateErr.RetryAfter)
}

func TestGetCredentialsFailureSkipsNetwork(t *testing.T) {
	t.Parallel()

	rt := &scriptedTransport{}
	client, _ := newScriptedClient(t, rt, WithCredentials(credsFunc(func() (string, error) {
		return "", &apierr.AuthenticationError{Message: "Token has expired. Please refresh or re-authenticate."}
	})))

	_, err := client.Get(context.Background(), "v2/clubs", nil)
	require.True(t, apierr.IsAuthentication(err))
	require.Empty(t, rt.requests, "credentials failure must surface before any network call")
}

type credsFunc func() (string, error)

func (f credsFunc) AuthHeader() (string, error) { return f() }

func TestGetRequestHeaders(t *testing.T) {
	t.Parallel()

	rt := &scriptedTransport{steps: []scriptedStep{
		{status: http.StatusOK, body: `{}`},
	}}
	client, _ := newScriptedClient(t, rt, WithCredentials(credsFunc(func() (string, error) {
		return "Bearer token-abc", nil
	})))

	_, err := client.Get(context.Background(), "v2/clubs", nil)
	require.NoError(t, err)

	req := rt.requests[0]
	require.Equal(t, "application/json", req.Header.Get("Accept"))
	require.Equal(t, "euroleague-go/"+Version, req.Header.Get("User-Agent"))
	require.Equal(t, "Bearer token-abc", req.Header.Get("Authorization"))
	require.Len(t, req.Header.Get("X-Request-Id"), 26, "request id should be a ULID")
}

func TestGetBodyHandling(t *testing.T) {
	t.Parallel()

	t.Run("empty body decodes as empty object", func(t *testing.T) {
		t.Parallel()

		rt := &scriptedTransport{steps: []scriptedStep{{status: http.StatusOK, body: ""}}}
		client, _ := newScriptedClient(t, rt)

		raw, err := client.Get(context.Background(), "v2/clubs", nil)
		require.NoError(t, err)
		require.JSONEq(t, `{}`, string(raw))
	})

	t.Run("malformed JSON surfaces a truncated snippet", func(t *testing.T) {
		t.Parallel()

		rt := &scriptedTransport{steps: []scriptedStep{
			{status: http.StatusOK, body: "<html>" + strings.Repeat("x", 400)},
		}}
		client, _ := newScriptedClient(t, rt)

		_, err := client.Get(context.Background(), "v2/clubs", nil)
		var apiErr *apierr.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusOK, apiErr.StatusCode)
		require.Contains(t, apiErr.Message, "Invalid JSON response: <html>")
		require.LessOrEqual(t, len(apiErr.Message), len("Invalid JSON response: ")+bodySnippetLen)
	})
}

func TestGetQueryAssembly(t *testing.T) {
	t.Parallel()

	var gotURL string
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := New(server.URL, WithHTTPClient(server.Client()))
	require.NoError(t, err)
	defer client.Close()

	var limit *int
	_, err = client.Get(context.Background(), "/v2/clubs", Params{
		"seasonCode": "E2023",
		"gameNumber": 5,
		"hasVideo":   true,
		"limit":      limit, // typed nil pointer, dropped
		"offset":     nil,
	})
	require.NoError(t, err)
	require.Equal(t, "/v2/clubs?gameNumber=5&hasVideo=true&seasonCode=E2023", gotURL)
}

func TestGetJSON(t *testing.T) {
	t.Parallel()

	rt := &scriptedTransport{steps: []scriptedStep{
		{status: http.StatusOK, body: `{"total":2,"data":[{"code":"BAR"},{"code":"MAD"}]}`},
	}}
	client, _ := newScriptedClient(t, rt)

	var page struct {
		Total int `json:"total"`
		Data  []struct {
			Code string `json:"code"`
		} `json:"data"`
	}
	require.NoError(t, client.GetJSON(context.Background(), "v2/clubs", nil, &page))
	require.Equal(t, 2, page.Total)
	require.Equal(t, "BAR", page.Data[0].Code)
}

func TestGetContextCancellation(t *testing.T) {
	t.Parallel()

	rt := &scriptedTransport{steps: []scriptedStep{
		{err: fakeTimeoutError{}},
	}}
	client, _ := newScriptedClient(t, rt)

	ctx, cancel := context.WithCancel(context.Background())
	client.sleep = func(ctx context.Context, _ time.Duration) error {
		cancel()
		return ctx.Err()
	}

	_, err := client.Get(ctx, "v2/clubs", nil)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, rt.requests, 1)
}

func TestEncodeParams(t *testing.T) {
	t.Parallel()

	t.Run("empty map", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "", encodeParams(nil))
		require.Equal(t, "", encodeParams(Params{}))
	})

	t.Run("pointer values dereference", func(t *testing.T) {
		t.Parallel()
		limit := 10
		require.Equal(t, "limit=10", encodeParams(Params{"limit": &limit}))
	})

	t.Run("values escape", func(t *testing.T) {
		t.Parallel()
		got := encodeParams(Params{"playerCode": "P 007"})
		require.Equal(t, "playerCode=P+007", got)
	})
}

func TestRawMessageRoundTrip(t *testing.T) {
	t.Parallel()

	rt := &scriptedTransport{steps: []scriptedStep{
		{status: http.StatusOK, body: `[{"a":1}]`},
	}}
	client, _ := newScriptedClient(t, rt)

	raw, err := client.Get(context.Background(), "v1/results", nil)
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(raw, &rows))
	require.Len(t, rows, 1)
}
