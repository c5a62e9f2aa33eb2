package docxdocs

import (
	"encoding/json"
	"fmt"
	"io"
)

// DocsTag is a named annotation attached to a component or prop, such as
// @undocumented or @uiName.
type DocsTag struct {
	Name string `json:"name"`
	Text string `json:"text,omitempty"`
}

// PropDoc describes one component property.
type PropDoc struct {
	Name     string    `json:"name"`
	Attr     string    `json:"attr,omitempty"`
	Type     string    `json:"type"`
	Docs     string    `json:"docs"`
	DocsTags []DocsTag `json:"docsTags"`

	// Carried through from the extractor, not rendered.
	Mutable       bool   `json:"mutable,omitempty"`
	ReflectToAttr bool   `json:"reflectToAttr,omitempty"`
	Default       string `json:"default,omitempty"`
	Optional      bool   `json:"optional,omitempty"`
	Required      bool   `json:"required,omitempty"`
}

// SlotDoc describes one named content slot.
type SlotDoc struct {
	Name string `json:"name"`
	Docs string `json:"docs"`
}

// ComponentDoc is the documentation record of one component.
type ComponentDoc struct {
	Tag      string    `json:"tag"`
	Docs     string    `json:"docs"`
	DocsTags []DocsTag `json:"docsTags"`
	Props    []PropDoc `json:"props"`
	Slots    []SlotDoc `json:"slots"`

	// Carried through from the extractor, not rendered.
	FilePath      string          `json:"filePath,omitempty"`
	Encapsulation string          `json:"encapsulation,omitempty"`
	Readme        string          `json:"readme,omitempty"`
	Usage         json.RawMessage `json:"usage,omitempty"`
	Events        json.RawMessage `json:"events,omitempty"`
	Methods       json.RawMessage `json:"methods,omitempty"`
	Styles        json.RawMessage `json:"styles,omitempty"`
	Parts         json.RawMessage `json:"parts,omitempty"`
}

// DocsSet is the full docs-json payload.
type DocsSet struct {
	Timestamp  string         `json:"timestamp,omitempty"`
	Compiler   *Compiler      `json:"compiler,omitempty"`
	Components []ComponentDoc `json:"components"`
}

// Compiler identifies the tool that produced the payload.
type Compiler struct {
	Name       string `json:"name,omitempty"`
	Version    string `json:"version,omitempty"`
	TypeScript string `json:"typescriptVersion,omitempty"`
}

// DecodeDocsSet reads a docs-json payload. Unknown fields are ignored and
// missing ones decode to zero values.
func DecodeDocsSet(r io.Reader) (DocsSet, error) {
	var ds DocsSet
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return DocsSet{}, fmt.Errorf("%w: %v", ErrDecodeInput, err)
	}
	return ds, nil
}
