// Package docs serves the API documentation: a static OpenAPI 3 document and
// a Swagger UI page that renders it.
package docs

import (
	"embed"
	"net/http"
)

//go:embed openapi.json swagger.html
var files embed.FS

func UI(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "swagger.html", "text/html; charset=utf-8")
}

func Spec(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "openapi.json", "application/json")
}

func serveFile(w http.ResponseWriter, name, contentType string) {
	data, err := files.ReadFile(name)
	if err != nil {
		http.Error(w, "documento não encontrado", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Write(data)
}
