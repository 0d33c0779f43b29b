package extract

import "testing"

func TestExtractVue_CreateRouterCall(t *testing.T) {
	source := `import { createRouter, createWebHistory } from "vue-router";

const router = createRouter({
  history: createWebHistory(),
  routes: [
    { path: "/", name: "home", component: () => import("./views/Home.vue") },
    { path: "/about", component: () => import("./views/About.vue").then(m => m.About) },
    { path: "/old", redirect: "/" },
  ],
});

export default router;`

	result := mustExtract(t, source, "router.ts")
	if result.Router != RouterVue {
		t.Fatalf("expected RouterVue, got %q", result.Router)
	}
	if len(result.Routes) != 2 {
		t.Fatalf("redirect-only route must be pruned; got %d routes", len(result.Routes))
	}

	home := result.Routes[0]
	if home.Path != "/" || home.Name != "home" || home.Component != "./views/Home.vue" {
		t.Errorf("unexpected home route %+v", home)
	}
	if result.Routes[1].Component != "./views/About.vue#About" {
		t.Errorf("then-chained loader must carry the export name, got %q", result.Routes[1].Component)
	}
}

func TestExtractVue_RoutesVariableIndirection(t *testing.T) {
	source := `import { createRouter, createWebHistory } from "vue-router";
import Settings from "./views/Settings.vue";

const routes = [
  { path: "/settings", component: Settings },
];

const router = createRouter({ history: createWebHistory(), routes: routes });`

	result := mustExtract(t, source, "router.ts")
	if len(result.Routes) != 1 {
		t.Fatalf("expected 1 route, got %+v", result.Routes)
	}
	if result.Routes[0].Component != "./views/Settings.vue" {
		t.Errorf("unexpected component %q", result.Routes[0].Component)
	}
}

func TestExtractVue_NestedChildren(t *testing.T) {
	source := `import { createRouter } from "vue-router";

const router = createRouter({
  routes: [
    {
      path: "/users",
      component: () => import("./UserLayout.vue"),
      children: [
        { path: "", component: () => import("./UserList.vue") },
        { path: ":id", component: () => import("./UserDetail.vue") },
      ],
    },
  ],
});`

	result := mustExtract(t, source, "router.js")
	if len(result.Routes) != 1 {
		t.Fatalf("expected 1 root, got %d", len(result.Routes))
	}
	children := result.Routes[0].Children
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
	if children[1].Path != ":id" {
		t.Errorf("unexpected child path %q", children[1].Path)
	}
}

func TestExtractVue_DeclaredRouteRecordTable(t *testing.T) {
	source := `import type { RouteRecordRaw } from "vue-router";

export const routes: RouteRecordRaw[] = [
  { path: "/reports", component: () => import("./Reports.vue") },
];`

	result := mustExtract(t, source, "routes.ts")
	if result.Router != RouterVue {
		t.Fatalf("expected RouterVue, got %q", result.Router)
	}
	if len(result.Routes) != 1 || result.Routes[0].Path != "/reports" {
		t.Fatalf("expected the reports route, got %+v", result.Routes)
	}
}

func TestExtractVue_BlockBodiedLoaderWarns(t *testing.T) {
	source := `import { createRouter } from "vue-router";

const router = createRouter({
  routes: [
    { path: "/audit", component: () => { return import("./Audit.vue"); } },
  ],
});`

	result := mustExtract(t, source, "router.ts")
	if len(result.Routes) != 1 {
		t.Fatalf("expected the route to survive with an empty component, got %+v", result.Routes)
	}
	if result.Routes[0].Component != "" {
		t.Errorf("expected empty component, got %q", result.Routes[0].Component)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a loader warning")
	}
}
