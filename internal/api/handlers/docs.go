package handlers

import (
	_ "embed"
	"net/http"
)

var (
	//go:embed docs/openapi.json
	openAPISpec []byte

	//go:embed docs/docs.html
	docsPage []byte
)

// docsContentSecurityPolicy lets the viewer load Swagger UI from jsDelivr.
const docsContentSecurityPolicy = "default-src 'none'; " +
	"script-src 'self' 'unsafe-inline' https://cdn.jsdelivr.net; " +
	"style-src 'self' 'unsafe-inline' https://cdn.jsdelivr.net; " +
	"img-src 'self' data: https://cdn.jsdelivr.net; " +
	"connect-src 'self'; frame-ancestors 'none'"

// OpenAPI serves the embedded OpenAPI document.
func OpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openAPISpec)
}

// Docs serves the HTML viewer for the OpenAPI document.
func Docs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Security-Policy", docsContentSecurityPolicy)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(docsPage)
}
