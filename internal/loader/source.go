package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// maxDocumentBytes caps the survey document size read from a source.
const maxDocumentBytes = 64 << 20

// HTTPSource fetches the document with a single GET.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s HTTPSource) Name() string { return "http" }

// Fetch issues the request and returns the body of a 2xx response.
func (s HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/geo+json, application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request survey document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read survey document: %w", err)
	}
	if len(data) > maxDocumentBytes {
		return nil, fmt.Errorf("survey document exceeds %d bytes", maxDocumentBytes)
	}
	return data, nil
}

// FileSource reads the document from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return "file" }

func (s FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read survey file: %w", err)
	}
	return data, nil
}
