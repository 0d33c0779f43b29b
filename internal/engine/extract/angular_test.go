package extract

import "testing"

func TestExtractAngular_ForRoot(t *testing.T) {
	source := `import { NgModule } from "@angular/core";
import { RouterModule, Routes } from "@angular/router";
import { HomeComponent } from "./home.component";
import { UserComponent } from "./user.component";

const routes: Routes = [
  { path: "", component: HomeComponent },
  { path: "users/:id", component: UserComponent, title: "User" },
  { path: "**", redirectTo: "" },
];

@NgModule({
  imports: [RouterModule.forRoot(routes)],
  exports: [RouterModule],
})
export class AppRoutingModule {}`

	result := mustExtract(t, source, "app-routing.module.ts")
	if result.Router != RouterAngular {
		t.Fatalf("expected RouterAngular, got %q", result.Router)
	}
	if len(result.Routes) != 2 {
		t.Fatalf("wildcard redirect must be pruned; got %d routes", len(result.Routes))
	}
	if result.Routes[0].Component != "./home.component#HomeComponent" {
		t.Errorf("unexpected component %q", result.Routes[0].Component)
	}
	if result.Routes[1].Path != "users/:id" || result.Routes[1].Name != "User" {
		t.Errorf("unexpected route %+v", result.Routes[1])
	}
}

func TestExtractAngular_ProvideRouter(t *testing.T) {
	source := `import { provideRouter } from "@angular/router";

export const appConfig = {
  providers: [
    provideRouter([
      { path: "dashboard", loadComponent: () => import("./dashboard/dashboard.component").then(m => m.DashboardComponent) },
    ]),
  ],
};`

	result := mustExtract(t, source, "app.config.ts")
	if len(result.Routes) != 1 {
		t.Fatalf("expected 1 route, got %+v", result.Routes)
	}
	route := result.Routes[0]
	if route.Path != "dashboard" {
		t.Errorf("unexpected path %q", route.Path)
	}
	if route.Component != "./dashboard/dashboard.component#DashboardComponent" {
		t.Errorf("unexpected component %q", route.Component)
	}
}

func TestExtractAngular_LazyChildren(t *testing.T) {
	source := `import { RouterModule } from "@angular/router";
import { ShellComponent } from "./shell.component";

const routes = [
  {
    path: "admin",
    component: ShellComponent,
    children: [
      { path: "audit", loadChildren: () => import("./audit/routes") },
    ],
  },
];

export const AppRoutes = RouterModule.forChild(routes);`

	result := mustExtract(t, source, "admin.routes.ts")
	if len(result.Routes) != 1 {
		t.Fatalf("expected 1 route, got %+v", result.Routes)
	}
	children := result.Routes[0].Children
	if len(children) != 1 || children[0].Component != "./audit/routes" {
		t.Errorf("unexpected children %+v", children)
	}
}
