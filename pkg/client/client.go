// Package client talks to the cutover backend: the blob-store task and
// activity-log endpoints and the AI standup summary endpoint. The backend
// treats the task list as an opaque JSON array, so the client just moves
// the normalized task shape over the wire.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tableflip.dev/cutover/pkg/task"
)

// Client is a thin JSON client for the cutover API.
type Client struct {
	base  string
	token string
	hc    *http.Client
}

// New builds a client for the given API base URL. The token is the shared
// admin secret; it is only attached, never validated client-side.
func New(base, token string) (*Client, error) {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		return nil, errors.New("client: api base url not configured, set `api` in .cutover.yaml")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("client: bad api url: %w", err)
	}
	return &Client{
		base:  base,
		token: token,
		hc:    &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// LogEntry is one activity log line. The backend prepends entries and keeps
// the last 500.
type LogEntry struct {
	Msg  string `json:"msg"`
	User string `json:"user,omitempty"`
	TS   string `json:"ts,omitempty"`
}

// SummaryContext travels with the summary request so the model knows which
// slice of the plan it is looking at.
type SummaryContext struct {
	FocusDate   string `json:"focusDate,omitempty"`
	FocusMode   string `json:"focusMode,omitempty"`
	PhaseFilter string `json:"phaseFilter,omitempty"`
	GeneratedBy string `json:"generatedBy,omitempty"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: encode request: %w", err)
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("client: %s %s: admin token required", method, path)
	}
	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		data, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("client: %s %s: %s", method, path, apiErr.Error)
		}
		return fmt.Errorf("client: %s %s: http %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}
	return nil
}

// GetTasks fetches the current task list.
func (c *Client) GetTasks(ctx context.Context) ([]task.Task, error) {
	var out struct {
		Tasks     []task.Task `json:"tasks"`
		Timestamp string      `json:"timestamp"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &out); err != nil {
		return nil, err
	}
	return out.Tasks, nil
}

// PutTasks replaces the entire remote task list. Admin only.
func (c *Client) PutTasks(ctx context.Context, tasks []task.Task) error {
	body := map[string]interface{}{"tasks": tasks}
	return c.do(ctx, http.MethodPut, "/api/tasks", body, nil)
}

// PatchTask updates a single task's fields remotely.
func (c *Client) PatchTask(ctx context.Context, id string, fields map[string]interface{}) error {
	return c.do(ctx, http.MethodPatch, "/api/tasks/"+url.PathEscape(id), fields, nil)
}

// DeleteTask removes a task remotely. Admin only.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks/"+url.PathEscape(id), nil, nil)
}

// GetLog fetches the activity log, newest first.
func (c *Client) GetLog(ctx context.Context) ([]LogEntry, error) {
	var out struct {
		Log []LogEntry `json:"log"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/log", nil, &out); err != nil {
		return nil, err
	}
	return out.Log, nil
}

// AddLog appends an activity log entry.
func (c *Client) AddLog(ctx context.Context, e LogEntry) error {
	if strings.TrimSpace(e.Msg) == "" {
		return errors.New("client: log message required")
	}
	if e.TS == "" {
		e.TS = time.Now().UTC().Format(time.RFC3339)
	}
	return c.do(ctx, http.MethodPost, "/api/log", e, nil)
}

// Summary submits a task subset for an AI-written standup summary.
func (c *Client) Summary(ctx context.Context, tasks []task.Task, sctx SummaryContext) (string, error) {
	body := map[string]interface{}{"tasks": tasks, "context": sctx}
	var out struct {
		OK      bool   `json:"ok"`
		Summary string `json:"summary"`
		Error   string `json:"error"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/summary", body, &out); err != nil {
		return "", err
	}
	if !out.OK {
		if out.Error != "" {
			return "", fmt.Errorf("client: summary: %s", out.Error)
		}
		return "", errors.New("client: summary failed")
	}
	return out.Summary, nil
}
