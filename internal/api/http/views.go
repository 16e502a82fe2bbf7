package httpapi

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed views/*.html
var viewsFS embed.FS

// NewViewEngine returns the fiber view engine serving the embedded templates.
func NewViewEngine() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}
