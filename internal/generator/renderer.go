package generator

import "github.com/merveatik/dietbot/internal/domain"

// Document is everything a renderer needs to produce one output file.
type Document struct {
	PatientName   string
	TemplateName  string
	Combination   string
	ExcludedFoods string
	FooterText    string
	Program       domain.Program
}

// Renderer writes one document to disk in a single format.
type Renderer interface {
	// Ext returns the file extension including the dot, e.g. ".pdf".
	Ext() string
	Render(doc Document, path string) error
}
