package extract

import "testing"

func TestExtractReact_RegistrationCall(t *testing.T) {
	source := `import { createBrowserRouter } from "react-router-dom";
import Dashboard from "./pages/Dashboard";
import { UserList } from "./pages/users";
import UserDetail from "./pages/UserDetail";

export const router = createBrowserRouter([
  { path: "/", element: <Dashboard /> },
  {
    path: "/users",
    element: <UserList />,
    children: [
      { index: true, element: <UserList /> },
      { path: ":userId", element: <UserDetail /> },
    ],
  },
]);`

	result := mustExtract(t, source, "router.tsx")
	if result.Router != RouterReact {
		t.Fatalf("expected RouterReact, got %q", result.Router)
	}
	if len(result.Routes) != 2 {
		t.Fatalf("expected 2 top-level routes, got %d", len(result.Routes))
	}

	home := result.Routes[0]
	if home.Path != "/" || home.Component != "./pages/Dashboard" {
		t.Errorf("unexpected home route %+v", home)
	}

	users := result.Routes[1]
	if users.Component != "./pages/users#UserList" {
		t.Errorf("named import must resolve with export suffix, got %q", users.Component)
	}
	if len(users.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(users.Children))
	}
	if users.Children[0].Path != "" {
		t.Errorf("index route must keep an empty path, got %q", users.Children[0].Path)
	}
	if users.Children[1].Path != ":userId" {
		t.Errorf("unexpected child path %q", users.Children[1].Path)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", result.Warnings)
	}
}

func TestExtractReact_SpreadWarning(t *testing.T) {
	source := `import { createBrowserRouter } from "react-router-dom";
import { adminRoutes } from "./admin";
import Login from "./Login";

const router = createBrowserRouter([
  ...adminRoutes,
  { path: "/login", element: <Login /> },
]);`

	result := mustExtract(t, source, "router.tsx")
	if len(result.Routes) != 1 {
		t.Fatalf("expected 1 route, got %d", len(result.Routes))
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", result.Warnings)
	}
	warning := result.Warnings[0]
	if warning.Kind != WarnSpread {
		t.Errorf("expected a spread warning, got %q", warning.Kind)
	}
	if warning.VariableName != "adminRoutes" {
		t.Errorf("expected VariableName adminRoutes, got %q", warning.VariableName)
	}
	if warning.Line != 6 {
		t.Errorf("expected line 6, got %d", warning.Line)
	}
}

func TestExtractReact_DynamicPathSkipsRoute(t *testing.T) {
	source := `import { createBrowserRouter } from "react-router-dom";
import Home from "./Home";

const base = "/app";
const router = createBrowserRouter([
  { path: base, element: <Home /> },
  { path: "/static", element: <Home /> },
]);`

	result := mustExtract(t, source, "router.tsx")
	if len(result.Routes) != 1 || result.Routes[0].Path != "/static" {
		t.Fatalf("expected only the static route, got %+v", result.Routes)
	}
	found := false
	for _, w := range result.Warnings {
		if w.Message == "Dynamic path value" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a dynamic-path warning, got %v", result.Warnings)
	}
}

func TestExtractReact_DeclaredTableWithSatisfies(t *testing.T) {
	source := `import type { RouteObject } from "react-router-dom";
import Settings from "./Settings";

export const routes = [
  { path: "/settings", element: <Settings /> },
] satisfies RouteObject[];`

	result := mustExtract(t, source, "routes.tsx")
	if result.Router != RouterReact {
		t.Fatalf("expected RouterReact, got %q", result.Router)
	}
	if len(result.Routes) != 1 || result.Routes[0].Path != "/settings" {
		t.Fatalf("expected the settings route, got %+v", result.Routes)
	}
}

func TestExtractReact_DefaultExportTable(t *testing.T) {
	source := `import About from "./About";

export default [
  { path: "/about", Component: About },
] as RouteObject[];`

	result := mustExtract(t, source, "routes.ts")
	if len(result.Routes) != 1 {
		t.Fatalf("expected 1 route, got %+v", result.Routes)
	}
	if result.Routes[0].Component != "./About" {
		t.Errorf("unexpected component %q", result.Routes[0].Component)
	}
}

func TestExtractReact_LazyComponent(t *testing.T) {
	source := `import { createBrowserRouter } from "react-router-dom";
import { lazy } from "react";

const Reports = lazy(() => import("./pages/Reports"));

const router = createBrowserRouter([
  { path: "/reports", element: <Reports /> },
  { path: "/billing", element: lazy(() => import("./pages/Billing")) },
]);`

	result := mustExtract(t, source, "router.tsx")
	if len(result.Routes) != 2 {
		t.Fatalf("expected 2 routes, got %+v", result.Routes)
	}
	if result.Routes[1].Component != "./pages/Billing" {
		t.Errorf("inline lazy must resolve the import path, got %q", result.Routes[1].Component)
	}
}
