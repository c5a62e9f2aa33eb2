package docx

import (
	"encoding/xml"
	"time"
)

// Part names inside the package.
const (
	partContentTypes = "[Content_Types].xml"
	partRootRels     = "_rels/.rels"
	partCore         = "docProps/core.xml"
	partApp          = "docProps/app.xml"
	partDocument     = "word/document.xml"
	partStyles       = "word/styles.xml"
	partSettings     = "word/settings.xml"
	partDocumentRels = "word/_rels/document.xml.rels"
)

// Relationship types.
const (
	relOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relExtendedProps  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relSettings       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/settings"
	relFooter         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer"
)

// Content types.
const (
	ctRels     = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML      = "application/xml"
	ctDocument = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ctStyles   = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	ctSettings = "application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"
	ctFooter   = "application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"
	ctCore     = "application/vnd.openxmlformats-package.core-properties+xml"
	ctApp      = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

// Application is recorded in docProps/app.xml.
const Application = "docxdocs"

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// ---------------------------------------------------------------------------
// Content types
// ---------------------------------------------------------------------------

type contentTypes struct {
	XMLName   xml.Name          `xml:"Types"`
	NS        string            `xml:"xmlns,attr"`
	Defaults  []contentDefault  `xml:"Default"`
	Overrides []contentOverride `xml:"Override"`
}

type contentDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type contentOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

func newContentTypes(footers []string) contentTypes {
	ct := contentTypes{
		NS: nsCT,
		Defaults: []contentDefault{
			{Extension: "rels", ContentType: ctRels},
			{Extension: "xml", ContentType: ctXML},
		},
		Overrides: []contentOverride{
			{PartName: "/" + partDocument, ContentType: ctDocument},
			{PartName: "/" + partStyles, ContentType: ctStyles},
			{PartName: "/" + partSettings, ContentType: ctSettings},
			{PartName: "/" + partCore, ContentType: ctCore},
			{PartName: "/" + partApp, ContentType: ctApp},
		},
	}
	for _, name := range footers {
		ct.Overrides = append(ct.Overrides, contentOverride{PartName: "/word/" + name, ContentType: ctFooter})
	}
	return ct
}

// ---------------------------------------------------------------------------
// Relationships
// ---------------------------------------------------------------------------

type relationships struct {
	XMLName xml.Name       `xml:"Relationships"`
	NS      string         `xml:"xmlns,attr"`
	Items   []relationship `xml:"Relationship"`
}

type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

func rootRelationships() relationships {
	return relationships{
		NS: nsPR,
		Items: []relationship{
			{ID: "rId1", Type: relOfficeDocument, Target: partDocument},
			{ID: "rId2", Type: relCoreProps, Target: partCore},
			{ID: "rId3", Type: relExtendedProps, Target: partApp},
		},
	}
}

// ---------------------------------------------------------------------------
// Document properties
// ---------------------------------------------------------------------------

type coreProps struct {
	XMLName        xml.Name `xml:"cp:coreProperties"`
	CP             string   `xml:"xmlns:cp,attr"`
	DC             string   `xml:"xmlns:dc,attr"`
	DCTerms        string   `xml:"xmlns:dcterms,attr"`
	DCMIType       string   `xml:"xmlns:dcmitype,attr"`
	XSI            string   `xml:"xmlns:xsi,attr"`
	Title          string   `xml:"dc:title,omitempty"`
	Creator        string   `xml:"dc:creator,omitempty"`
	LastModifiedBy string   `xml:"cp:lastModifiedBy,omitempty"`
	Created        *w3cdtf  `xml:"dcterms:created,omitempty"`
	Modified       *w3cdtf  `xml:"dcterms:modified,omitempty"`
}

type w3cdtf struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

func newCoreProps(title, creator string, created time.Time) coreProps {
	cp := coreProps{
		CP:             "http://schemas.openxmlformats.org/package/2006/metadata/core-properties",
		DC:             "http://purl.org/dc/elements/1.1/",
		DCTerms:        "http://purl.org/dc/terms/",
		DCMIType:       "http://purl.org/dc/dcmitype/",
		XSI:            "http://www.w3.org/2001/XMLSchema-instance",
		Title:          title,
		Creator:        creator,
		LastModifiedBy: creator,
	}
	if !created.IsZero() {
		stamp := created.UTC().Format(time.RFC3339)
		cp.Created = &w3cdtf{Type: "dcterms:W3CDTF", Value: stamp}
		cp.Modified = &w3cdtf{Type: "dcterms:W3CDTF", Value: stamp}
	}
	return cp
}

type appProps struct {
	XMLName     xml.Name `xml:"Properties"`
	NS          string   `xml:"xmlns,attr"`
	Application string   `xml:"Application"`
}

func newAppProps() appProps {
	return appProps{
		NS:          "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties",
		Application: Application,
	}
}

// ---------------------------------------------------------------------------
// Settings
// ---------------------------------------------------------------------------

// settingsPart asks the word processor to refresh fields on open so the table
// of contents and page numbers are populated.
type settingsPart struct {
	XMLName        xml.Name `xml:"w:settings"`
	W              string   `xml:"xmlns:w,attr"`
	DefaultTabStop val      `xml:"w:defaultTabStop"`
	UpdateFields   *val     `xml:"w:updateFields,omitempty"`
	Compat         compat   `xml:"w:compat"`
}

type compat struct {
	Settings []compatSetting `xml:"w:compatSetting"`
}

type compatSetting struct {
	Name string `xml:"w:name,attr"`
	URI  string `xml:"w:uri,attr"`
	Val  string `xml:"w:val,attr"`
}

func newSettings(updateFields bool) settingsPart {
	s := settingsPart{
		W:              nsW,
		DefaultTabStop: val{Val: "708"},
		Compat: compat{Settings: []compatSetting{
			{Name: "compatibilityMode", URI: "http://schemas.microsoft.com/office/word", Val: "15"},
		}},
	}
	if updateFields {
		s.UpdateFields = &val{Val: "true"}
	}
	return s
}
