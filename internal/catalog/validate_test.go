package catalog

import (
	"testing"

	"screenmap/internal/data/openapi"
)

func validationScreens() []Screen {
	return []Screen{
		{ID: "home", Next: []string{"invoices", "setings"}},
		{ID: "invoices", Next: []string{"invoices.detail"}},
		{ID: "invoices.detail", EntryPoints: []string{"homer"}, DependsOn: []string{"getInvoice", "list_invoices", "chargeCard"}},
		{ID: "settings"},
	}
}

func validationAPI() *openapi.Spec {
	return &openapi.Spec{
		OperationIDs:  map[string]bool{"getInvoice": true, "listInvoices": true},
		HTTPEndpoints: map[string]bool{"GET /invoices": true},
		NormalizedToOriginal: map[string]string{
			"getinvoice":   "getInvoice",
			"listinvoices": "listInvoices",
			"getinvoices":  "GET /invoices",
		},
	}
}

func TestValidate_DanglingScreenRefs(t *testing.T) {
	issues := Validate(validationScreens(), nil)

	if len(issues) != 2 {
		t.Fatalf("expected 2 issues without an API spec, got %+v", issues)
	}

	next := issues[0]
	if next.ScreenID != "home" || next.Field != "next" || next.Ref != "setings" {
		t.Errorf("unexpected issue %+v", next)
	}
	if len(next.Suggestions) == 0 || next.Suggestions[0] != "settings" {
		t.Errorf("expected settings suggested, got %v", next.Suggestions)
	}

	entry := issues[1]
	if entry.Field != "entryPoints" || entry.Ref != "homer" {
		t.Errorf("unexpected issue %+v", entry)
	}
	if len(entry.Suggestions) == 0 || entry.Suggestions[0] != "home" {
		t.Errorf("expected home suggested, got %v", entry.Suggestions)
	}
}

func TestValidate_DependsOnAgainstAPI(t *testing.T) {
	issues := Validate(validationScreens(), validationAPI())

	var apiIssues []Issue
	for _, issue := range issues {
		if issue.Field == "dependsOn" {
			apiIssues = append(apiIssues, issue)
		}
	}
	if len(apiIssues) != 2 {
		t.Fatalf("expected 2 dependsOn issues, got %+v", apiIssues)
	}

	// list_invoices differs only in spelling; the exact form is suggested.
	misspelled := apiIssues[0]
	if misspelled.Ref != "list_invoices" {
		t.Fatalf("unexpected issue order %+v", apiIssues)
	}
	if len(misspelled.Suggestions) != 1 || misspelled.Suggestions[0] != "listInvoices" {
		t.Errorf("expected the spelled form suggested, got %v", misspelled.Suggestions)
	}

	if apiIssues[1].Ref != "chargeCard" {
		t.Errorf("unexpected issue %+v", apiIssues[1])
	}
}

func TestValidate_CleanCatalog(t *testing.T) {
	screens := []Screen{
		{ID: "a", Next: []string{"b"}},
		{ID: "b", DependsOn: []string{"getInvoice"}},
	}

	issues := Validate(screens, validationAPI())
	if len(issues) != 0 {
		t.Errorf("expected no issues, got %+v", issues)
	}
}
