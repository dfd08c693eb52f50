package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/collection"
)

//go:embed templates/*.html
var templatesFS embed.FS

// NewRouter builds the gin engine serving the form UI.
func NewRouter(svc *collection.Service) *gin.Engine {
	engine := gin.New()
	engine.Use(RequestID(), AccessLog(), gin.Recovery())
	tmpl := template.Must(template.New("").
		Funcs(template.FuncMap{"add1": func(i int) int { return i + 1 }}).
		ParseFS(templatesFS, "templates/*.html"))
	engine.SetHTMLTemplate(tmpl)

	h := NewHandler(svc)

	engine.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	engine.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/books")
	})

	books := engine.Group("/books")
	{
		books.GET("", h.List)
		books.GET("/new", h.NewForm)
		books.POST("", h.Create)
		books.GET("/edit", h.EditForm)
		books.POST("/update", h.Update)
		books.POST("/delete", h.Delete)
	}
	engine.GET("/search", h.Search)
	engine.GET("/progress", h.ProgressPage)

	return engine
}
