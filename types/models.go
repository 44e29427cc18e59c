package types

// PageData is a struct to hold web page data
type PageData struct {
	Active        string
	Meta          *Meta
	Data          interface{}
	Version       string
	BuildTime     string
	Year          int
	SiteLogo      string
	SiteName      string
	FooterCreator string
	Lang          string
	Debug         bool
	MenuItems     []NavigationLink
}

type NavigationLink struct {
	Label    string
	Path     string
	IsActive bool
}

// Meta is a struct to hold metadata about the page
type Meta struct {
	Title       string
	Description string
	Domain      string
	Path        string
	Templates   string
}

type Empty struct{}
