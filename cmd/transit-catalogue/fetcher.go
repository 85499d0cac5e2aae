package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/theoremus-urban-solutions/transit-catalogue/loader"
)

// fetcher reads a network document from a URL, a local file or stdin.
// This is CLI-specific logic and is not part of the core library.
type fetcher struct {
	httpClient *http.Client
	stdin      io.Reader
}

func newFetcher() *fetcher {
	return &fetcher{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		stdin:      os.Stdin,
	}
}

// fetch returns the raw document bytes. "-" reads stdin.
func (f *fetcher) fetch(urlOrPath string) ([]byte, error) {
	if urlOrPath == "" {
		return nil, fmt.Errorf("no input document given")
	}
	if urlOrPath == "-" {
		return io.ReadAll(f.stdin)
	}

	if !strings.HasPrefix(urlOrPath, "http://") && !strings.HasPrefix(urlOrPath, "https://") {
		return os.ReadFile(urlOrPath)
	}

	resp, err := f.httpClient.Get(urlOrPath)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", urlOrPath, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, urlOrPath)
	}

	return io.ReadAll(resp.Body)
}

// fetchDocument fetches and decodes a document. Stdin and URLs are read as
// JSON unless the name ends in .yml/.yaml.
func (f *fetcher) fetchDocument(urlOrPath string) (*loader.Document, error) {
	data, err := f.fetch(urlOrPath)
	if err != nil {
		return nil, err
	}
	return loader.Decode(bytes.NewReader(data), loader.FormatForPath(urlOrPath))
}
