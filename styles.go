package docxdocs

// Paragraph style IDs.
const (
	StyleNormal            = "Normal"
	StyleHeading1          = "Heading1"
	StyleHeading2          = "Heading2"
	StyleTitle             = "Title"
	StyleSubtitle          = "Subtitle"
	StyleHeading1NoOutline = "Heading1NoOutline"
)

// Styles returns the named paragraph styles, every one set in font. Sizes are
// half-points and spacing is in twentieths of a point.
func Styles(font string) []Style {
	return []Style{
		{ID: StyleNormal, Name: "Normal", QuickFormat: true, Font: font, Size: 24},
		{
			ID: StyleHeading1, Name: "Heading 1", QuickFormat: true, Font: font,
			Size: 32, Bold: true, SpacingBefore: 240, SpacingAfter: 120, OutlineLevel: 1,
		},
		{
			ID: StyleHeading2, Name: "Heading 2", QuickFormat: true, Font: font,
			Size: 28, Bold: true, SpacingBefore: 240, SpacingAfter: 120, OutlineLevel: 2,
		},
		{
			ID: StyleTitle, Name: "Title", QuickFormat: true, Font: font,
			Size: 64, Bold: true, SpacingBefore: 480, SpacingAfter: 240,
		},
		{
			ID: StyleSubtitle, Name: "Subtitle", QuickFormat: true, Font: font,
			Size: 36, Bold: true, SpacingBefore: 360, SpacingAfter: 180,
		},
		// Same look as Heading 1 but kept out of the table of contents.
		{
			ID: StyleHeading1NoOutline, Name: "Heading 1 No Outline", Font: font,
			Size: 32, Bold: true, SpacingBefore: 240, SpacingAfter: 120,
		},
	}
}
