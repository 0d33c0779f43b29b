package catalog

import (
	"reflect"
	"testing"

	"screenmap/internal/engine/extract"
	"screenmap/internal/engine/screenid"
)

func TestBuilder_MergesRoutesAndMetadata(t *testing.T) {
	flat := []extract.FlatRoute{
		{FullPath: "/", ScreenID: "home", ScreenTitle: "Home"},
		{FullPath: "/invoices", ScreenID: "invoices", ScreenTitle: "Invoices"},
		{FullPath: "/invoices/:id", ScreenID: "invoices.detail", ScreenTitle: "Invoices"},
	}
	meta := Metadata{Screens: map[string]ScreenMeta{
		"invoices": {
			Title:     "Invoice List",
			Next:      []string{"invoices.detail"},
			DependsOn: []string{"listInvoices"},
		},
		"payment.modal": {
			Title:       "Payment",
			EntryPoints: []string{"invoices.detail"},
			AllowCycles: true,
		},
	}}

	b := &Builder{Naming: screenid.Options{SmartParameterNaming: true}}
	screens := b.Build(flat, nil, meta)

	if len(screens) != 4 {
		t.Fatalf("expected 4 screens, got %d", len(screens))
	}
	if screens[0].ID != "home" || screens[0].Route != "/" {
		t.Errorf("unexpected first screen %+v", screens[0])
	}

	invoices := screens[1]
	if invoices.Title != "Invoice List" {
		t.Errorf("metadata title must win, got %q", invoices.Title)
	}
	if !reflect.DeepEqual(invoices.Next, []string{"invoices.detail"}) {
		t.Errorf("unexpected next %v", invoices.Next)
	}
	if !reflect.DeepEqual(invoices.DependsOn, []string{"listInvoices"}) {
		t.Errorf("unexpected dependsOn %v", invoices.DependsOn)
	}

	modal := screens[3]
	if modal.ID != "payment.modal" || modal.Route != "" {
		t.Errorf("metadata-only screen must come last without a route, got %+v", modal)
	}
	if !modal.AllowCycles {
		t.Error("expected AllowCycles from metadata")
	}
}

func TestBuilder_ResolvesLinkEdges(t *testing.T) {
	flat := []extract.FlatRoute{
		{FullPath: "/", ScreenID: "home", ScreenTitle: "Home"},
		{FullPath: "/about", ScreenID: "about", ScreenTitle: "About"},
	}
	links := []LinkEdge{
		{From: "home", TargetPath: "/about"},          // exact route match
		{From: "home", TargetPath: "/settings/profile"}, // no route; normalized id
		{From: "home", TargetPath: "/"},               // self edge dropped
		{From: "about", TargetPath: "/about"},         // self edge dropped
	}

	b := &Builder{}
	screens := b.Build(flat, links, Metadata{})

	home := screens[0]
	expected := []string{"about", "settings.profile"}
	if !reflect.DeepEqual(home.Next, expected) {
		t.Errorf("expected next %v, got %v", expected, home.Next)
	}
	if len(screens[1].Next) != 0 {
		t.Errorf("expected no edges on about, got %v", screens[1].Next)
	}
}

func TestBuilder_DeduplicatesEdges(t *testing.T) {
	flat := []extract.FlatRoute{
		{FullPath: "/a", ScreenID: "a"},
		{FullPath: "/b", ScreenID: "b"},
	}
	links := []LinkEdge{
		{From: "a", TargetPath: "/b"},
		{From: "a", TargetPath: "/b"},
	}
	meta := Metadata{Screens: map[string]ScreenMeta{
		"a": {Next: []string{"b"}},
	}}

	b := &Builder{}
	screens := b.Build(flat, links, meta)
	if !reflect.DeepEqual(screens[0].Next, []string{"b"}) {
		t.Errorf("expected a single b edge, got %v", screens[0].Next)
	}
}

func TestBuilder_PreservesDuplicateIDs(t *testing.T) {
	flat := []extract.FlatRoute{
		{FullPath: "/users", ScreenID: "users"},
		{FullPath: "/people", ScreenID: "users"},
	}

	b := &Builder{}
	screens := b.Build(flat, nil, Metadata{})
	if len(screens) != 2 {
		t.Fatalf("duplicate ids must be preserved for the analyzer, got %d screens", len(screens))
	}
}
