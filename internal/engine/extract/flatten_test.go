package extract

import (
	"testing"

	"screenmap/internal/engine/screenid"
)

func TestFlatten_PathComposition(t *testing.T) {
	routes := []ParsedRoute{
		{Path: "/users", Component: "UserLayout", Children: []ParsedRoute{
			{Path: "", Component: "UserList"},
			{Path: ":id", Component: "UserDetail"},
			{Path: "/admin", Component: "AdminPanel"}, // absolute child replaces parent
		}},
	}

	flat := Flatten(routes, screenid.Options{})
	if len(flat) != 4 {
		t.Fatalf("expected 4 flat routes, got %+v", flat)
	}

	expected := []string{"/users", "/users", "/users/:id", "/admin"}
	for i, fr := range flat {
		if fr.FullPath != expected[i] {
			t.Errorf("route %d: expected %q, got %q", i, expected[i], fr.FullPath)
		}
	}
	if flat[0].Depth != 0 || flat[1].Depth != 1 {
		t.Errorf("unexpected depths %d, %d", flat[0].Depth, flat[1].Depth)
	}
}

func TestFlatten_LayoutNodesAreTraversedNotEmitted(t *testing.T) {
	routes := []ParsedRoute{
		{Path: "", Children: []ParsedRoute{
			{Path: "/a", Component: "A"},
			{Path: "/b", Component: "B"},
		}},
	}

	flat := Flatten(routes, screenid.Options{})
	if len(flat) != 2 {
		t.Fatalf("expected 2 flat routes, got %+v", flat)
	}
}

func TestFlatten_RedirectSubtreeSkipped(t *testing.T) {
	routes := []ParsedRoute{
		{Path: "/old", Redirect: "/new", HasRedirect: true, Children: []ParsedRoute{
			{Path: "child", Component: "Never"},
		}},
		{Path: "/new", Component: "New"},
	}

	flat := Flatten(routes, screenid.Options{})
	if len(flat) != 1 || flat[0].FullPath != "/new" {
		t.Fatalf("expected only /new, got %+v", flat)
	}
}

func TestFlatten_EmptyRedirectTargetSkipped(t *testing.T) {
	routes := []ParsedRoute{
		{Path: "**", Redirect: "", HasRedirect: true},
		{Path: "/", Component: "Home"},
	}

	flat := Flatten(routes, screenid.Options{})
	if len(flat) != 1 || flat[0].FullPath != "/" {
		t.Fatalf("a redirect to the root must not become a screen; got %+v", flat)
	}
}

func TestFlatten_ScreenIDsAndTitles(t *testing.T) {
	routes := []ParsedRoute{
		{Path: "/", Component: "Home"},
		{Path: "/users/:userId", Component: "UserDetail"},
	}

	flat := Flatten(routes, screenid.Options{SmartParameterNaming: true})
	if flat[0].ScreenID != "home" || flat[0].ScreenTitle != "Home" {
		t.Errorf("unexpected root screen %+v", flat[0])
	}
	if flat[1].ScreenID != "users.user" {
		t.Errorf("expected users.user, got %q", flat[1].ScreenID)
	}
	if flat[1].ScreenTitle != "Users" {
		t.Errorf("expected title Users, got %q", flat[1].ScreenTitle)
	}
}

func TestFlatten_Idempotent(t *testing.T) {
	routes := []ParsedRoute{
		{Path: "/invoices", Component: "InvoiceList", Children: []ParsedRoute{
			{Path: ":invoiceId", Component: "InvoiceDetail"},
		}},
	}

	once := Flatten(routes, screenid.Options{SmartParameterNaming: true})

	rewrapped := make([]ParsedRoute, 0, len(once))
	for _, fr := range once {
		rewrapped = append(rewrapped, ParsedRoute{Path: fr.FullPath, Name: fr.Name, Component: fr.ComponentPath})
	}
	twice := Flatten(rewrapped, screenid.Options{SmartParameterNaming: true})

	if len(once) != len(twice) {
		t.Fatalf("expected stable output, got %d then %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].FullPath != twice[i].FullPath || once[i].ScreenID != twice[i].ScreenID {
			t.Errorf("route %d changed: %+v vs %+v", i, once[i], twice[i])
		}
	}
}

func TestComposePath(t *testing.T) {
	cases := []struct{ parent, child, expected string }{
		{"", "", "/"},
		{"", "users", "/users"},
		{"/users", ":id", "/users/:id"},
		{"/users", "/admin", "/admin"},
		{"/users/", "list/", "/users/list"},
		{"/", "", "/"},
		{"/a//b", "c", "/a/b/c"},
	}
	for _, tc := range cases {
		if got := ComposePath(tc.parent, tc.child); got != tc.expected {
			t.Errorf("ComposePath(%q, %q) = %q, want %q", tc.parent, tc.child, got, tc.expected)
		}
	}
}
