// Package assets holds the stylesheets embedded into the HTML preview.
//
// Styles live under styles/{name}.css and are compiled into the binary:
//
//	styles/
//	├── preview.css   # screen layout of the preview
//	└── print.css     # page rules added when printing to PDF
//
// Names are validated before lookup so a caller-supplied name can never
// reach outside the styles directory.
package assets
