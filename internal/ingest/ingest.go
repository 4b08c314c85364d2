// Package ingest turns job postings and CVs from files, URLs or stdin into
// plain text.
package ingest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// Stdin is the source name read from standard input.
	Stdin = "-"

	defaultUserAgent = "cv-tailor (+https://github.com/spigell/cv-tailor)"
	defaultMaxBytes  = 10 << 20
	defaultTimeout   = 15 * time.Second
)

// Document is loaded source text.
type Document struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Text   string `json:"-"`
}

// Options tune how documents are loaded. The zero value is usable.
type Options struct {
	UserAgent  string
	MaxBytes   int64
	HTTPClient *http.Client
	Logger     *zap.Logger
	Stdin      io.Reader
}

func (o Options) withDefaults() Options {
	if o.UserAgent == "" {
		o.UserAgent = defaultUserAgent
	}
	if o.MaxBytes <= 0 {
		o.MaxBytes = defaultMaxBytes
	}
	if o.HTTPClient == nil {
		o.HTTPClient = &http.Client{Timeout: defaultTimeout}
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	return o
}

// Load reads src, which is "-" for stdin, an http(s) URL or a file path. The
// file extension picks the decoder.
func Load(ctx context.Context, src string, opts Options) (*Document, error) {
	opts = opts.withDefaults()
	src = strings.TrimSpace(src)

	switch {
	case src == "":
		return nil, fmt.Errorf("empty source")
	case src == Stdin:
		data, err := readAll(opts.Stdin, opts.MaxBytes)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return &Document{Name: "stdin", Source: Stdin, Text: normalizeText(string(data))}, nil
	case isURL(src):
		return fetch(ctx, src, opts)
	}

	kind, err := kindByExtension(src)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", src, err)
	}
	defer file.Close()

	data, err := readAll(file, opts.MaxBytes)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", src, err)
	}

	text, err := extract(kind, data)
	if err != nil {
		return nil, fmt.Errorf("extracting text from %s: %w", src, err)
	}

	opts.Logger.Debug("document loaded",
		zap.String("source", src),
		zap.String("kind", string(kind)),
		zap.Int("bytes", len(data)),
	)

	return &Document{Name: filepath.Base(src), Source: src, Text: text}, nil
}

func isURL(src string) bool {
	lower := strings.ToLower(src)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func readAll(r io.Reader, limit int64) ([]byte, error) {
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if n > limit {
		return nil, fmt.Errorf("input exceeds %d bytes", limit)
	}
	return buf.Bytes(), nil
}
