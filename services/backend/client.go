// Package backend wraps the managed auth+row-storage service behind the small
// capability surface the portal needs. The client carries an explicit mode:
// it starts Live when configured and flips permanently to Fallback on the
// first unreachable call. The flip is logged; there is no automatic re-probe.
package backend

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/go-resty/resty/v2"
)

type Mode int32

const (
	ModeLive Mode = iota
	ModeFallback
)

func (m Mode) String() string {
	if m == ModeLive {
		return "Live"
	}
	return "Fallback"
}

// ErrUnavailable marks a network-level failure; callers degrade to the local store.
var ErrUnavailable = errors.New("backend unavailable")

type Session struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
}

type Client struct {
	http    *resty.Client
	baseURL string
	anonKey string
	mode    atomic.Int32
}

// NewClient builds a client for the managed backend. A placeholder or empty
// URL means the service was never configured, so the client starts in
// Fallback mode outright.
func NewClient(baseURL, anonKey string) *Client {
	c := &Client{
		http:    resty.New(),
		baseURL: baseURL,
		anonKey: anonKey,
	}
	if !configured(baseURL) {
		log.Println("[BACKEND] no backend configured, starting in Fallback mode")
		c.mode.Store(int32(ModeFallback))
	}
	return c
}

func configured(baseURL string) bool {
	return baseURL != "" && !containsPlaceholder(baseURL)
}

func containsPlaceholder(url string) bool {
	for i := 0; i+16 <= len(url); i++ {
		if url[i:i+16] == "your-project-url" {
			return true
		}
	}
	return false
}

// Mode returns the current operating mode.
func (c *Client) Mode() Mode {
	return Mode(c.mode.Load())
}

// markUnreachable is the only place the Live→Fallback transition happens.
func (c *Client) markUnreachable(err error) {
	if c.mode.CompareAndSwap(int32(ModeLive), int32(ModeFallback)) {
		log.Printf("[BACKEND] switching to Fallback mode permanently: %v", err)
	}
}

func (c *Client) headers() map[string]string {
	return map[string]string{
		"apikey":        c.anonKey,
		"Authorization": "Bearer " + c.anonKey,
		"Content-Type":  "application/json",
	}
}

// SignInWithPassword authenticates against the backend's password grant.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (Session, error) {
	if c.Mode() == ModeFallback {
		return Session{}, ErrUnavailable
	}

	var session Session
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeaders(c.headers()).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&session).
		Post(c.baseURL + "/auth/v1/token?grant_type=password")
	if err != nil {
		c.markUnreachable(err)
		return Session{}, ErrUnavailable
	}
	if resp.IsError() {
		return Session{}, fmt.Errorf("sign-in rejected: %s", resp.Status())
	}
	return session, nil
}

// SignUp registers a new account with profile attributes attached.
func (c *Client) SignUp(ctx context.Context, email, password string, attributes map[string]interface{}) error {
	if c.Mode() == ModeFallback {
		return ErrUnavailable
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeaders(c.headers()).
		SetBody(map[string]interface{}{"email": email, "password": password, "data": attributes}).
		Post(c.baseURL + "/auth/v1/signup")
	if err != nil {
		c.markUnreachable(err)
		return ErrUnavailable
	}
	if resp.IsError() {
		return fmt.Errorf("sign-up rejected: %s", resp.Status())
	}
	return nil
}

// QueryRecords selects rows from a table with equality filters.
func (c *Client) QueryRecords(ctx context.Context, table string, filters map[string]string) ([]map[string]interface{}, error) {
	if c.Mode() == ModeFallback {
		return nil, ErrUnavailable
	}

	req := c.http.R().SetContext(ctx).SetHeaders(c.headers())
	for col, val := range filters {
		req.SetQueryParam(col, "eq."+val)
	}

	var rows []map[string]interface{}
	resp, err := req.SetResult(&rows).Get(c.baseURL + "/rest/v1/" + table)
	if err != nil {
		c.markUnreachable(err)
		return nil, ErrUnavailable
	}
	if resp.IsError() {
		return nil, fmt.Errorf("query %s failed: %s", table, resp.Status())
	}
	return rows, nil
}

// InsertRecord inserts a single row.
func (c *Client) InsertRecord(ctx context.Context, table string, fields map[string]interface{}) error {
	if c.Mode() == ModeFallback {
		return ErrUnavailable
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeaders(c.headers()).
		SetBody(fields).
		Post(c.baseURL + "/rest/v1/" + table)
	if err != nil {
		c.markUnreachable(err)
		return ErrUnavailable
	}
	if resp.IsError() {
		return fmt.Errorf("insert into %s failed: %s", table, resp.Status())
	}
	return nil
}

// UpdateRecord patches the row with the given id.
func (c *Client) UpdateRecord(ctx context.Context, table, id string, fields map[string]interface{}) error {
	if c.Mode() == ModeFallback {
		return ErrUnavailable
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeaders(c.headers()).
		SetQueryParam("id", "eq."+id).
		SetBody(fields).
		Patch(c.baseURL + "/rest/v1/" + table)
	if err != nil {
		c.markUnreachable(err)
		return ErrUnavailable
	}
	if resp.IsError() {
		return fmt.Errorf("update %s/%s failed: %s", table, id, resp.Status())
	}
	return nil
}
