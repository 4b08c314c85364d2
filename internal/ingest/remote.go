package ingest

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	"go.uber.org/zap"
)

const acceptEncoding = "gzip"

// fetch downloads a remote posting and decodes it by its content type.
func fetch(ctx context.Context, rawURL string, opts Options) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", opts.UserAgent)
	req.Header.Set("Accept-Encoding", acceptEncoding)
	req.Header.Set("Accept", "text/html, text/plain;q=0.9, */*;q=0.5")

	opts.Logger.Debug("make request", zap.String("url", req.URL.String()))
	resp, err := opts.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: bad status: %s", rawURL, resp.Status)
	}

	var body io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gzipReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("decoding gzip body: %w", err)
		}
		defer gzipReader.Close()
		body = gzipReader
	}

	data, err := readAll(body, opts.MaxBytes)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", rawURL, err)
	}

	k, err := kindByMime(resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	text, err := extract(k, data)
	if err != nil {
		return nil, fmt.Errorf("extracting text from %s: %w", rawURL, err)
	}

	opts.Logger.Debug("got response",
		zap.String("url", rawURL),
		zap.String("kind", string(k)),
		zap.Int("bytes", len(data)),
	)

	return &Document{Name: remoteName(rawURL), Source: rawURL, Text: text}, nil
}

func remoteName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	if base := path.Base(u.Path); base != "." && base != "/" {
		return u.Host + "/" + base
	}
	return u.Host
}
