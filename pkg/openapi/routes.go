package openapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	JSONPath = "/openapi.json"
	YAMLPath = "/openapi.yaml"
)

// Routes serves the document as JSON and YAML and the Swagger UI under
// /docs/. The UI loads the JSON route, so mount the router at the root.
func (d *Document) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get(JSONPath, func(w http.ResponseWriter, r *http.Request) {
		d.write(w, "application/json", d.JSON)
	})
	r.Get(YAMLPath, func(w http.ResponseWriter, r *http.Request) {
		d.write(w, "application/yaml", d.YAML)
	})
	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/index.html", http.StatusMovedPermanently)
	})
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL(JSONPath),
	))

	return r
}

func (d *Document) write(w http.ResponseWriter, contentType string, render func() ([]byte, error)) {
	data, err := render()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	_, _ = w.Write(data)
}
