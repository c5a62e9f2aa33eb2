// Package docx serializes a docmodel.Document into an Office Open XML
// WordprocessingML package (.docx).
//
// A .docx file is a ZIP archive of XML parts. This package writes the minimum
// set Word and LibreOffice need to open the document, plus the parts the
// model uses:
//
//	[Content_Types].xml
//	_rels/.rels
//	docProps/core.xml, docProps/app.xml
//	word/document.xml
//	word/styles.xml
//	word/settings.xml
//	word/footerN.xml (one per section with a footer)
//	word/_rels/document.xml.rels
//
// Element names are emitted with the conventional "w:" and "r:" prefixes and
// the namespaces are declared once on each part's root element.
//
// Multi-section layout follows the WordprocessingML convention: every section
// except the last closes with a paragraph whose properties carry the section
// properties; the last section's properties are the final child of the body.
package docx
