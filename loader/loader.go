package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/specdiff"
)

// defaultMaxFileSize is the maximum document size accepted from a URL (10MB).
const defaultMaxFileSize = 10 * 1024 * 1024

// Document is an acquired and deserialized API description document.
// The Root map is the generic deserialized form consumed by the normalizer;
// the remaining fields carry acquisition metadata.
type Document struct {
	// SourcePath is the file path or URL the document was read from
	SourcePath string
	// SourceFormat is the detected serialization format (JSON or YAML)
	SourceFormat SourceFormat
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
	// Root is the deserialized document
	Root map[string]any
}

// Loader acquires documents from files and URLs.
type Loader struct {
	// UserAgent is the User-Agent string used when fetching URLs.
	// Defaults to "specdiff/<version>" if not set.
	UserAgent string
	// HTTPClient is the HTTP client used for fetching URLs.
	// If nil, a default client with a 30-second timeout is created.
	HTTPClient *http.Client
	// MaxFileSize is the maximum document size in bytes for URL fetches.
	// Default: 10MB. 0 means use the default.
	MaxFileSize int64
}

// New creates a new Loader instance with default settings
func New() *Loader {
	return &Loader{}
}

// Load acquires a document from a file path or URL using a default Loader.
func Load(pathOrURL string) (*Document, error) {
	return New().Load(pathOrURL)
}

// Load acquires a document from a file path or URL.
// For URLs (http:// or https://), the content is fetched; for anything else,
// the path is read as a local file.
func (l *Loader) Load(pathOrURL string) (*Document, error) {
	var (
		data        []byte
		contentType string
		err         error
		format      SourceFormat
	)

	loadStart := time.Now()
	if isURL(pathOrURL) {
		data, contentType, err = l.fetchURL(pathOrURL)
		if err != nil {
			return nil, err
		}
		format = detectFormatFromURL(pathOrURL, contentType)
	} else {
		data, err = os.ReadFile(pathOrURL)
		if err != nil {
			return nil, fmt.Errorf("loader: failed to read file: %w", err)
		}
		format = detectFormatFromPath(pathOrURL)
	}
	loadTime := time.Since(loadStart)

	doc, err := l.LoadBytes(data)
	if err != nil {
		return nil, err
	}

	doc.SourcePath = pathOrURL
	doc.LoadTime = loadTime
	if format != SourceFormatUnknown {
		doc.SourceFormat = format
	}
	return doc, nil
}

// LoadReader acquires a document from an io.Reader.
// The returned Document.SourcePath is set to "LoadReader".
func (l *Loader) LoadReader(r io.Reader) (*Document, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("loader: failed to read data: %w", err)
	}
	doc, err := l.LoadBytes(data)
	if err != nil {
		return nil, err
	}
	doc.SourcePath = "LoadReader"
	doc.LoadTime = loadTime
	return doc, nil
}

// LoadBytes deserializes an in-memory document.
// The format is detected from the content: JSON documents are decoded with
// encoding/json, everything else with YAML.
func (l *Loader) LoadBytes(data []byte) (*Document, error) {
	format := detectFormatFromContent(data)

	root := make(map[string]any)
	switch format {
	case SourceFormatJSON:
		if err := json.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("loader: failed to decode JSON document: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("loader: failed to decode YAML document: %w", err)
		}
		format = SourceFormatYAML
	}

	return &Document{
		SourcePath:   "LoadBytes",
		SourceFormat: format,
		SourceSize:   int64(len(data)),
		Root:         root,
	}, nil
}

// fetchURL fetches content from a URL and returns the bytes and Content-Type header
func (l *Loader) fetchURL(urlStr string) ([]byte, string, error) {
	client := l.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequest(http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, "", fmt.Errorf("loader: failed to create request: %w", err)
	}

	userAgent := l.UserAgent
	if userAgent == "" {
		userAgent = specdiff.UserAgent()
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("loader: failed to fetch URL: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("loader: HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	maxSize := l.MaxFileSize
	if maxSize <= 0 {
		maxSize = defaultMaxFileSize
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("loader: failed to read response body: %w", err)
	}
	if int64(len(data)) > maxSize {
		return nil, "", fmt.Errorf("loader: document exceeds maximum size of %d bytes", maxSize)
	}

	return data, resp.Header.Get("Content-Type"), nil
}
