// Package catalog defines the persisted screen catalog: uniquely
// identified units of UI navigation merged from extracted routes and
// user-authored metadata.
package catalog

// Screen is one documented page. It is read-only input to the graph
// analyzer; the builder is the only writer.
type Screen struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Route       string   `json:"route"`
	Next        []string `json:"next,omitempty"`
	EntryPoints []string `json:"entryPoints,omitempty"`
	DependsOn   []string `json:"dependsOn,omitempty"`
	AllowCycles bool     `json:"allowCycles,omitempty"`
}

// Metadata is the user-authored overlay merged onto extracted routes.
// Keys are screen ids.
type Metadata struct {
	Screens map[string]ScreenMeta `json:"screens"`
}

type ScreenMeta struct {
	Title       string   `json:"title,omitempty"`
	Next        []string `json:"next,omitempty"`
	EntryPoints []string `json:"entryPoints,omitempty"`
	DependsOn   []string `json:"dependsOn,omitempty"`
	AllowCycles bool     `json:"allowCycles,omitempty"`
}
