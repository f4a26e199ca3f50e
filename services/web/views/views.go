package views

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var files embed.FS

// Page template names
const (
	LoginPage   = "login.tmpl"
	ListingPage = "plates.tmpl"
	BidPage     = "bid.tmpl"
)

// Templates parses the embedded page templates
func Templates() *template.Template {
	return template.Must(template.New("pages").ParseFS(files, "templates/*.tmpl"))
}
