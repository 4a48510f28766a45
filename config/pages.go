package config

// PageID identifies a routed page
type PageID int

const (
	PageHome PageID = iota
	PageAbout
	PageProjects
	PageGallery
)

// Route maps a page to its navigation label and layout file
type Route struct {
	ID     PageID
	Path   string
	Label  string
	Layout string
}

// PagesConfig contains the navigation routes
type PagesConfig struct {
	Routes      []Route
	DefaultPage PageID
}

// Pages is the global routing configuration
var Pages PagesConfig

// RouteByPath returns the route registered under path.
func (p PagesConfig) RouteByPath(path string) (Route, bool) {
	for _, r := range p.Routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// Route returns the route for id, falling back to the default page.
func (p PagesConfig) Route(id PageID) Route {
	for _, r := range p.Routes {
		if r.ID == id {
			return r
		}
	}
	return p.Routes[p.DefaultPage]
}

func init() {
	Pages = PagesConfig{
		Routes: []Route{
			{ID: PageHome, Path: "/", Label: "Home", Layout: "pages/home.tmx"},
			{ID: PageAbout, Path: "/about", Label: "About", Layout: "pages/about.tmx"},
			{ID: PageProjects, Path: "/projects", Label: "Projects", Layout: "pages/projects.tmx"},
			{ID: PageGallery, Path: "/gallery", Label: "Gallery", Layout: "pages/gallery.tmx"},
		},
		DefaultPage: PageHome,
	}
}
