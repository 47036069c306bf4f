// Package fetch loads section data and feature configuration documents as
// JSON over HTTP. Failures never reach the caller as errors: they are logged
// and reported through the "no data" sentinel (ok == false), which callers
// treat as "skip this section".
package fetch

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/pkg/errors"
)

// DefaultTimeout bounds a single document fetch.
const DefaultTimeout = 15 * time.Second

// Loader fetches JSON documents relative to a base URL.
type Loader struct {
	BaseURL *url.URL
	Client  *http.Client
	Logger  *slog.Logger
}

// New returns a Loader for the given base URL (http, https or file).
func New(base string, client *http.Client, logger *slog.Logger) (*Loader, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base url %q", base)
	}
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{BaseURL: u, Client: client, Logger: logger}, nil
}

// NewDir returns a Loader that serves documents from a local site directory
// through http.NewFileTransport, so missing files surface as HTTP 404 just as
// they would from a web server.
func NewDir(dir string, logger *slog.Logger) *Loader {
	t := &http.Transport{}
	t.RegisterProtocol("file", http.NewFileTransport(http.Dir(dir)))
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		BaseURL: &url.URL{Scheme: "file", Path: "/"},
		Client:  &http.Client{Transport: t, Timeout: DefaultTimeout},
		Logger:  logger,
	}
}

// SectionPath is the resource path of a section's data document.
func SectionPath(name string) string {
	return "data/" + name + "-data.json"
}

// ConfigPath is the resource path of a feature's configuration document.
func ConfigPath(name string) string {
	return "config/" + name + "-config.json"
}

// Section fetches data/<name>-data.json into a fresh T. It returns nil and
// false when the document is unavailable or malformed.
func Section[T any](ctx context.Context, l *Loader, name string) (*T, bool) {
	var doc T
	if err := l.getJSON(ctx, SectionPath(name), &doc); err != nil {
		l.Logger.Error("loading section data", "section", name, "error", err)
		return nil, false
	}
	return &doc, true
}

// Config fetches config/<name>-config.json decoded over a copy of base, so
// fields absent from the document keep their base values. On failure it
// returns base unchanged and false.
func Config[T any](ctx context.Context, l *Loader, name string, base T) (T, bool) {
	cfg := base
	if err := l.getJSON(ctx, ConfigPath(name), &cfg); err != nil {
		l.Logger.Warn("loading config, using defaults", "config", name, "error", err)
		return base, false
	}
	return cfg, true
}

// Raw fetches a resource path and returns the body bytes.
func (l *Loader) Raw(ctx context.Context, rel string) ([]byte, error) {
	target := l.resolve(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create HTTP request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", target)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("GET %s: status %d", target, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", target)
	}
	return body, nil
}

func (l *Loader) getJSON(ctx context.Context, rel string, into any) error {
	body, err := l.Raw(ctx, rel)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, into); err != nil {
		return errors.Wrapf(err, "decoding %s", rel)
	}
	return nil
}

func (l *Loader) resolve(rel string) string {
	u := *l.BaseURL
	u.Path = path.Join("/", u.Path, rel)
	return u.String()
}
