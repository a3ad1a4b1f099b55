// Package res loads images referenced by invoice layouts: RFC 2397 data URLs
// from the JSON input and, for loaders made with NewFileLoader, local files
// named on the command line.
package res

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	// ErrInvalidDataURL is returned for malformed data URLs
	ErrInvalidDataURL = errors.New("invalid data URL")
	// ErrLocalFilesDisabled is returned when a data-only loader is given a path
	ErrLocalFilesDisabled = errors.New("local files are disabled")
)

// ResourceType represents the type of resource. The zero value is neither
// an image nor a font.
type ResourceType int

const (
	// ResourceTypeImage is an image resource
	ResourceTypeImage ResourceType = iota + 1
	// ResourceTypeFont is a font resource
	ResourceTypeFont
)

// Resource represents a loaded resource
type Resource struct {
	URL      string
	Type     ResourceType
	Data     []byte
	MimeType string
}

// Loader handles loading resources
type Loader struct {
	// Resource cache
	cache     map[string]*Resource
	images    map[string]*Image
	cacheLock sync.RWMutex

	// files enables reading local paths and the search paths
	files       bool
	searchPaths []string
}

// NewLoader creates a loader that only accepts data URLs
func NewLoader() *Loader {
	return &Loader{
		cache:  make(map[string]*Resource),
		images: make(map[string]*Image),
	}
}

// NewFileLoader creates a loader that also reads local files. Only trusted
// callers such as the command line should use it.
func NewFileLoader() *Loader {
	l := NewLoader()
	l.files = true
	return l
}

// AddSearchPath adds a directory to search for local resources
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// Load loads a resource from a data URL or file path
func (l *Loader) Load(src string) (*Resource, error) {
	l.cacheLock.RLock()
	if res, ok := l.cache[src]; ok {
		l.cacheLock.RUnlock()
		return res, nil
	}
	l.cacheLock.RUnlock()

	var (
		res *Resource
		err error
	)
	switch {
	case strings.HasPrefix(src, "data:"):
		res, err = ParseDataURL(src)
	case l.files:
		res, err = l.loadLocal(src)
	default:
		return nil, fmt.Errorf("%w: %s", ErrLocalFilesDisabled, src)
	}
	if err != nil {
		return nil, err
	}

	l.cacheLock.Lock()
	l.cache[src] = res
	l.cacheLock.Unlock()
	return res, nil
}

// ParseDataURL parses a data URL (RFC 2397) and returns a Resource.
// Examples:
//
//	data:image/png;base64,<base64>
//	data:image/svg+xml,%3Csvg...
func ParseDataURL(u string) (*Resource, error) {
	if !strings.HasPrefix(u, "data:") {
		return nil, fmt.Errorf("%w: missing data: prefix", ErrInvalidDataURL)
	}
	meta, payload, ok := strings.Cut(strings.TrimPrefix(u, "data:"), ",")
	if !ok {
		return nil, fmt.Errorf("%w: missing comma", ErrInvalidDataURL)
	}

	mime := "text/plain"
	isBase64 := false
	comps := strings.Split(meta, ";")
	if comps[0] != "" {
		mime = strings.ToLower(strings.TrimSpace(comps[0]))
	}
	for _, c := range comps[1:] {
		if strings.EqualFold(strings.TrimSpace(c), "base64") {
			isBase64 = true
		}
	}

	var data []byte
	if isBase64 {
		// some encoders emit unpadded or URL-safe base64
		clean := strings.Map(func(r rune) rune {
			switch r {
			case ' ', '\n', '\r', '\t':
				return -1
			}
			return r
		}, payload)
		var err error
		data, err = base64.StdEncoding.DecodeString(clean)
		if err != nil {
			data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(clean, "="))
		}
		if err != nil {
			data, err = base64.RawURLEncoding.DecodeString(strings.TrimRight(clean, "="))
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
		}
	} else {
		d, err := url.PathUnescape(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
		}
		data = []byte(d)
	}

	return &Resource{
		URL:      u,
		Data:     data,
		MimeType: mime,
		Type:     determineResourceType(mime, ""),
	}, nil
}

// DataURL encodes data as a base64 data URL
func DataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// loadLocal loads a resource from a local file
func (l *Loader) loadLocal(path string) (*Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return l.loadFromSearchPaths(path)
		}
		return nil, err
	}
	return newFileResource(path, data), nil
}

// loadFromSearchPaths tries to load a resource from the search paths
func (l *Loader) loadFromSearchPaths(filename string) (*Resource, error) {
	base := filepath.Base(filename)
	for _, dir := range l.searchPaths {
		path := filepath.Join(dir, base)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return newFileResource(path, data), nil
	}
	return nil, fmt.Errorf("resource not found: %s", filename)
}

func newFileResource(path string, data []byte) *Resource {
	mime := determineMimeType(path)
	return &Resource{
		URL:      path,
		Data:     data,
		MimeType: mime,
		Type:     determineResourceType(mime, path),
	}
}

// determineMimeType determines the MIME type of a file
func determineMimeType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".tiff", ".tif":
		return "image/tiff"
	case ".bmp":
		return "image/bmp"
	case ".svg":
		return "image/svg+xml"
	case ".ttf":
		return "font/ttf"
	case ".json":
		return "application/json"
	default:
		return "application/octet-stream"
	}
}

// determineResourceType determines the type of a resource
func determineResourceType(mimeType, path string) ResourceType {
	if strings.HasPrefix(mimeType, "image/") {
		return ResourceTypeImage
	}
	if strings.HasPrefix(mimeType, "font/") {
		return ResourceTypeFont
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".svg", ".webp", ".tiff", ".tif", ".bmp":
		return ResourceTypeImage
	case ".ttf":
		return ResourceTypeFont
	}
	return 0
}

// LoadFont loads a font resource
func (l *Loader) LoadFont(src string) (*Resource, error) {
	res, err := l.Load(src)
	if err != nil {
		return nil, err
	}
	if res.Type != ResourceTypeFont {
		return nil, fmt.Errorf("resource is not a font: %s", src)
	}
	return res, nil
}
