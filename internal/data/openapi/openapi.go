// Package openapi loads an OpenAPI document and reduces it to the
// identifier sets catalog validation matches dependsOn entries against.
package openapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"

	"screenmap/internal/shared/util"
)

const maxSpecSizeBytes = 8 << 20 // 8 MiB

// Spec is the read-only identifier view of an OpenAPI document.
type Spec struct {
	OperationIDs  map[string]bool
	HTTPEndpoints map[string]bool // "GET /invoices/{id}"
	// NormalizedToOriginal maps the lowercased, separator-free form of
	// every identifier back to its spelled form, so near-miss dependsOn
	// entries can suggest the exact spelling.
	NormalizedToOriginal map[string]string
}

// Load reads and validates an OpenAPI document from a file path or an
// http(s) URL and reduces it to identifier sets.
func Load(source string) (*Spec, error) {
	doc, err := loadDocument(source)
	if err != nil {
		return nil, err
	}
	return FromDocument(doc), nil
}

// FromDocument builds the identifier sets from an already-loaded
// document. Operations without an operationId still contribute their
// method+path endpoint.
func FromDocument(doc *openapi3.T) *Spec {
	spec := &Spec{
		OperationIDs:         make(map[string]bool),
		HTTPEndpoints:        make(map[string]bool),
		NormalizedToOriginal: make(map[string]string),
	}
	if doc == nil || doc.Paths == nil {
		return spec
	}

	for path, pathItem := range doc.Paths.Map() {
		if pathItem == nil {
			continue
		}
		for method, operation := range pathItem.Operations() {
			if operation == nil {
				continue
			}
			endpoint := strings.ToUpper(method) + " " + path
			spec.HTTPEndpoints[endpoint] = true
			spec.NormalizedToOriginal[normalizeIdentifier(endpoint)] = endpoint

			id := strings.TrimSpace(operation.OperationID)
			if id == "" {
				continue
			}
			spec.OperationIDs[id] = true
			spec.NormalizedToOriginal[normalizeIdentifier(id)] = id
		}
	}
	return spec
}

// Original returns the spelled form of a ref that matches only after
// normalization, and whether one exists.
func (s *Spec) Original(ref string) (string, bool) {
	if s == nil {
		return "", false
	}
	original, ok := s.NormalizedToOriginal[normalizeIdentifier(ref)]
	return original, ok
}

// Candidates returns every known identifier, sorted, for fuzzy
// suggestions.
func (s *Spec) Candidates() []string {
	if s == nil {
		return nil
	}
	candidates := util.SortedStringKeys(s.OperationIDs)
	return append(candidates, util.SortedStringKeys(s.HTTPEndpoints)...)
}

func normalizeIdentifier(ref string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(ref)) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func loadDocument(source string) (*openapi3.T, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, fmt.Errorf("openapi source is required")
	}

	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true

	var (
		doc *openapi3.T
		err error
	)
	if isHTTPSource(source) {
		doc, err = loadFromURL(loader, source)
	} else {
		if _, statErr := os.Stat(source); statErr != nil {
			return nil, fmt.Errorf("openapi spec path %q: %w", source, statErr)
		}
		doc, err = loader.LoadFromFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("load openapi spec from %q: %w", source, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("openapi spec %q resolved to nil document", source)
	}

	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validate openapi spec %q: %w", source, err)
	}
	return doc, nil
}

func isHTTPSource(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func loadFromURL(loader *openapi3.Loader, source string) (*openapi3.T, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(source)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSpecSizeBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxSpecSizeBytes {
		return nil, fmt.Errorf("spec exceeds %d bytes", maxSpecSizeBytes)
	}
	return loader.LoadFromData(data)
}
