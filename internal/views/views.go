package views

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gofiber/template/html/v2"
)

const (
	Extension = ".html"
	Index     = "escort/index"
	Profile   = "escort/profile"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// New returns the template engine. With an empty dir the embedded templates
// are used; otherwise templates are read from dir on disk.
func New(dir string) *html.Engine {
	var engine *html.Engine
	if dir == "" {
		engine = html.NewFileSystem(http.FS(mustSub(templateFS, "templates")), Extension)
	} else {
		engine = html.New(dir, Extension)
	}
	return withFuncs(engine)
}

// NewFromFS builds an engine over an arbitrary filesystem rooted at the
// template directory.
func NewFromFS(fsys fs.FS) *html.Engine {
	return withFuncs(html.NewFileSystem(http.FS(fsys), Extension))
}

func Static() http.FileSystem {
	return http.FS(mustSub(staticFS, "static"))
}

func withFuncs(engine *html.Engine) *html.Engine {
	engine.AddFunc("join", strings.Join)
	return engine
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
