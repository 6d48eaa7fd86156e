package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"travelnest/internal/domain"
)

// Error is a failure reported by the server. Validation failures carry the
// offending field; not-found and internal errors carry only a message.
type Error struct {
	Status  int
	Message string
	Field   string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("api: %d %s (field %s)", e.Status, e.Message, e.Field)
	}
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Client is the catalog's data access layer. All URLs are built from the
// shared operation table above, never hand-assembled.
type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client (e.g. for tests or
// custom timeouts).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// NewClient builds a Client for the API at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL must not be empty")
	}
	baseURL = strings.TrimRight(baseURL, "/")

	cl := &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, o := range opts {
		o(cl)
	}
	return cl, nil
}

// ListPackages fetches the catalog, optionally filtered to one category.
// An empty category means no filter.
func (c *Client) ListPackages(ctx context.Context, category string) ([]domain.Package, error) {
	path := Packages.List.Path
	if category != "" {
		q := url.Values{}
		q.Set("category", category)
		path += "?" + q.Encode()
	}
	var out []domain.Package
	if err := c.do(ctx, Packages.List.Method, path, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPackage fetches one package by id. A missing package is a normal state,
// not an error: it returns (nil, nil).
func (c *Client) GetPackage(ctx context.Context, id int) (*domain.Package, error) {
	path := BuildPath(Packages.Get.Path, map[string]string{"id": strconv.Itoa(id)})
	var out domain.Package
	err := c.do(ctx, Packages.Get.Method, path, nil, http.StatusOK, &out)
	if err != nil {
		if apiErr, ok := err.(*Error); ok && apiErr.Status == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

// CreatePackage inserts a new package and returns the persisted record with
// its assigned id.
func (c *Client) CreatePackage(ctx context.Context, in domain.PackageInput) (domain.Package, error) {
	var out domain.Package
	err := c.do(ctx, Packages.Create.Method, Packages.Create.Path, in, http.StatusCreated, &out)
	return out, err
}

// CreateInquiry submits a follow-up request tied to a package id and returns
// the persisted record.
func (c *Client) CreateInquiry(ctx context.Context, in domain.InquiryInput) (domain.Inquiry, error) {
	var out domain.Inquiry
	err := c.do(ctx, Inquiries.Create.Method, Inquiries.Create.Path, in, http.StatusCreated, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, body any, wantStatus int, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return readError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// readError decodes the server's {message, field?} payload into an *Error.
func readError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
		Field   string `json:"field"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	if body.Message == "" {
		body.Message = fmt.Sprintf("unexpected status %d", resp.StatusCode)
	}
	return &Error{Status: resp.StatusCode, Message: body.Message, Field: body.Field}
}
