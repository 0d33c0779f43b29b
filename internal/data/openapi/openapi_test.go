package openapi

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
)

const sampleSpec = `
openapi: 3.0.3
info:
  title: Billing
  version: "1.0"
paths:
  /invoices:
    get:
      operationId: listInvoices
      responses:
        "200":
          description: ok
    post:
      responses:
        "201":
          description: created
  /invoices/{id}:
    get:
      operationId: getInvoice
      parameters:
        - name: id
          in: path
          required: true
          schema:
            type: string
      responses:
        "200":
          description: ok
`

func loadSample(t *testing.T) *Spec {
	t.Helper()
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData([]byte(sampleSpec))
	if err != nil {
		t.Fatalf("load sample spec: %v", err)
	}
	return FromDocument(doc)
}

func TestFromDocument(t *testing.T) {
	spec := loadSample(t)

	if !spec.OperationIDs["listInvoices"] || !spec.OperationIDs["getInvoice"] {
		t.Errorf("missing operation ids: %v", spec.OperationIDs)
	}
	if !spec.HTTPEndpoints["GET /invoices"] {
		t.Errorf("missing endpoint: %v", spec.HTTPEndpoints)
	}
	// The POST has no operationId but still contributes its endpoint.
	if !spec.HTTPEndpoints["POST /invoices"] {
		t.Errorf("expected POST /invoices endpoint, got %v", spec.HTTPEndpoints)
	}
	if len(spec.OperationIDs) != 2 {
		t.Errorf("expected 2 operation ids, got %d", len(spec.OperationIDs))
	}
}

func TestOriginal(t *testing.T) {
	spec := loadSample(t)

	cases := []struct {
		ref      string
		expected string
	}{
		{"list_invoices", "listInvoices"},
		{"list-invoices", "listInvoices"}, // separator-insensitive
		{"LISTINVOICES", "listInvoices"},
		{"get /invoices/{id}", "GET /invoices/{id}"},
	}
	for _, tc := range cases {
		original, ok := spec.Original(tc.ref)
		if !ok || original != tc.expected {
			t.Errorf("Original(%q) = %q (%v), want %q", tc.ref, original, ok, tc.expected)
		}
	}

	if _, ok := spec.Original("deleteInvoice"); ok {
		t.Error("expected no original for an unknown ref")
	}
}

func TestCandidatesSorted(t *testing.T) {
	spec := loadSample(t)

	candidates := spec.Candidates()
	if len(candidates) != 5 {
		t.Fatalf("expected 5 candidates, got %v", candidates)
	}
	if candidates[0] != "getInvoice" || candidates[1] != "listInvoices" {
		t.Errorf("operation ids must come first, sorted: %v", candidates)
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := Load("testdata/does-not-exist.yaml"); err == nil {
		t.Error("expected an error for a missing spec file")
	}
}

func TestNilSpecIsEmpty(t *testing.T) {
	var spec *Spec
	if _, ok := spec.Original("anything"); ok {
		t.Error("nil spec must resolve nothing")
	}
	if len(spec.Candidates()) != 0 {
		t.Error("nil spec must have no candidates")
	}
}
