package rclone

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/atomicstack/lazyfile/internal/logging/events"
)

const (
	DefaultHost = "localhost"
	DefaultPort = 5572
)

// Client talks to a running rclone remote-control daemon. Every method
// performs exactly one request; nothing is retried or cached.
type Client struct {
	baseURL  string
	http     *http.Client
	user     string
	password string
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithBasicAuth sets credentials for daemons started with --rc-user/--rc-pass.
func WithBasicAuth(user, password string) Option {
	return func(c *Client) {
		c.user = user
		c.password = password
	}
}

// BaseURL builds the daemon address from host and port.
func BaseURL(host string, port int) string {
	return fmt.Sprintf("http://%s:%d", host, port)
}

// New returns a client for the daemon listening at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the daemon address the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

// ListRemotes returns the configured remote names in daemon order.
func (c *Client) ListRemotes(ctx context.Context) ([]string, error) {
	const op = "list remotes"
	body, err := c.post(ctx, op, EndpointListRemotes, nil)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, &APIError{Op: op, Message: "unexpected response format from rclone", Err: err}
	}
	raw, ok := fields["remotes"]
	if !ok {
		return nil, &APIError{Op: op, Message: "unexpected response format from rclone"}
	}
	var remotes []string
	if err := json.Unmarshal(raw, &remotes); err != nil {
		return nil, &APIError{Op: op, Message: "unexpected response format from rclone", Err: err}
	}
	if remotes == nil {
		remotes = []string{}
	}
	return remotes, nil
}

// ListFiles lists the entries at path inside remote. An empty path lists the
// remote's root. A response without a list is an empty directory.
func (c *Client) ListFiles(ctx context.Context, remote, path string) ([]FileItem, error) {
	const op = "list files"
	req := listFilesRequest{Fs: FsPath(remote, path), Remote: ""}
	body, err := c.post(ctx, op, EndpointList, req)
	if err != nil {
		return nil, err
	}
	var resp listFilesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &APIError{Op: op, Message: "unexpected response format from rclone", Err: err}
	}
	if resp.List == nil {
		return []FileItem{}, nil
	}
	return resp.List, nil
}

// CreateRemote creates a remote of the given backend type. The daemon requires
// a parameters object, so nil is sent as {}.
func (c *Client) CreateRemote(ctx context.Context, name, remoteType string, parameters map[string]string) error {
	req := createRequest{Name: name, Type: remoteType, Parameters: orEmpty(parameters)}
	_, err := c.post(ctx, "create remote", EndpointCreateRemote, req)
	return err
}

// UpdateRemote updates parameters of an existing remote.
func (c *Client) UpdateRemote(ctx context.Context, name string, parameters map[string]string) error {
	req := updateRequest{Name: name, Parameters: orEmpty(parameters)}
	_, err := c.post(ctx, "update remote", EndpointUpdateRemote, req)
	return err
}

// DeleteRemote removes a remote configuration.
func (c *Client) DeleteRemote(ctx context.Context, name string) error {
	_, err := c.post(ctx, "delete remote", EndpointDeleteRemote, deleteRequest{Name: name})
	return err
}

func orEmpty(parameters map[string]string) map[string]string {
	if parameters == nil {
		return map[string]string{}
	}
	return parameters
}

func (c *Client) post(ctx context.Context, op, endpoint string, payload interface{}) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, &APIError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, reader)
	if err != nil {
		return nil, &APIError{Op: op, Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.user != "" || c.password != "" {
		req.SetBasicAuth(c.user, c.password)
	}

	events.Daemon.Request(endpoint, payload)
	resp, err := c.http.Do(req)
	if err != nil {
		apiErr := &APIError{Op: op, Err: err, transport: true}
		events.Daemon.Failure(endpoint, apiErr)
		return nil, apiErr
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		apiErr := &APIError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("read response: %w", err), transport: true}
		events.Daemon.Failure(endpoint, apiErr)
		return nil, apiErr
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Op: op, Status: resp.StatusCode, Body: string(body)}
		events.Daemon.Failure(endpoint, apiErr)
		return nil, apiErr
	}
	events.Daemon.Response(endpoint, resp.StatusCode, len(body))
	return body, nil
}
