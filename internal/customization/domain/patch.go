package domain

// Patch is a partial profile update. Nil fields keep their current
// value; the nested Colors, FontSize and Sections groups merge at their
// own level, so patching one color never erases the others.
type Patch struct {
	Colors *ColorPatch `json:"colors,omitempty"`

	LogoPlacement *LogoPlacement `json:"logoPlacement,omitempty"`
	LogoSize      *float64       `json:"logoSize,omitempty"`

	ShowWatermark    *bool    `json:"showWatermark,omitempty"`
	WatermarkSize    *float64 `json:"watermarkSize,omitempty"`
	WatermarkOpacity *float64 `json:"watermarkOpacity,omitempty"`

	LayoutStyle  *LayoutStyle `json:"layoutStyle,omitempty"`
	HeaderStyle  *HeaderStyle `json:"headerStyle,omitempty"`
	ShowBorder   *bool        `json:"showBorder,omitempty"`
	BorderRadius *float64     `json:"borderRadius,omitempty"`

	FontFamily *FontFamily    `json:"fontFamily,omitempty"`
	FontSize   *FontSizePatch `json:"fontSize,omitempty"`

	TableStyle       *TableStyle `json:"tableStyle,omitempty"`
	ShowTableBorders *bool       `json:"showTableBorders,omitempty"`
	ShowTaxColumn    *bool       `json:"showTaxColumn,omitempty"`

	Sections *SectionPatch `json:"sections,omitempty"`

	Padding        *float64 `json:"padding,omitempty"`
	SectionSpacing *float64 `json:"sectionSpacing,omitempty"`
}

// ColorPatch updates individual palette entries.
type ColorPatch struct {
	Primary         *string `json:"primary,omitempty"`
	Secondary       *string `json:"secondary,omitempty"`
	Accent          *string `json:"accent,omitempty"`
	Text            *string `json:"text,omitempty"`
	TextSecondary   *string `json:"textSecondary,omitempty"`
	Background      *string `json:"background,omitempty"`
	Border          *string `json:"border,omitempty"`
	TableBg         *string `json:"tableBg,omitempty"`
	TableHeaderBg   *string `json:"tableHeaderBg,omitempty"`
	TableHeaderText *string `json:"tableHeaderText,omitempty"`
}

// FontSizePatch updates individual typographic tiers.
type FontSizePatch struct {
	Heading    *float64 `json:"heading,omitempty"`
	Subheading *float64 `json:"subheading,omitempty"`
	Body       *float64 `json:"body,omitempty"`
	Small      *float64 `json:"small,omitempty"`
}

// SectionPatch updates individual visibility toggles.
type SectionPatch struct {
	ShowCompanyDetails *bool `json:"showCompanyDetails,omitempty"`
	ShowClientDetails  *bool `json:"showClientDetails,omitempty"`
	ShowInvoiceNumber  *bool `json:"showInvoiceNumber,omitempty"`
	ShowDates          *bool `json:"showDates,omitempty"`
	ShowNotes          *bool `json:"showNotes,omitempty"`
	ShowTerms          *bool `json:"showTerms,omitempty"`
}

// Apply merges the patch into c and returns the result.
func (p Patch) Apply(c Customization) Customization {
	if p.Colors != nil {
		c.Colors = p.Colors.apply(c.Colors)
	}
	if p.LogoPlacement != nil {
		c.LogoPlacement = *p.LogoPlacement
	}
	if p.LogoSize != nil {
		c.LogoSize = *p.LogoSize
	}
	if p.ShowWatermark != nil {
		c.ShowWatermark = *p.ShowWatermark
	}
	if p.WatermarkSize != nil {
		c.WatermarkSize = *p.WatermarkSize
	}
	if p.WatermarkOpacity != nil {
		c.WatermarkOpacity = *p.WatermarkOpacity
	}
	if p.LayoutStyle != nil {
		c.LayoutStyle = *p.LayoutStyle
	}
	if p.HeaderStyle != nil {
		c.HeaderStyle = *p.HeaderStyle
	}
	if p.ShowBorder != nil {
		c.ShowBorder = *p.ShowBorder
	}
	if p.BorderRadius != nil {
		c.BorderRadius = *p.BorderRadius
	}
	if p.FontFamily != nil {
		c.FontFamily = *p.FontFamily
	}
	if p.FontSize != nil {
		c.FontSize = p.FontSize.apply(c.FontSize)
	}
	if p.TableStyle != nil {
		c.TableStyle = *p.TableStyle
	}
	if p.ShowTableBorders != nil {
		c.ShowTableBorders = *p.ShowTableBorders
	}
	if p.ShowTaxColumn != nil {
		c.ShowTaxColumn = *p.ShowTaxColumn
	}
	if p.Sections != nil {
		c.Sections = p.Sections.apply(c.Sections)
	}
	if p.Padding != nil {
		c.Padding = *p.Padding
	}
	if p.SectionSpacing != nil {
		c.SectionSpacing = *p.SectionSpacing
	}
	return c
}

func (p ColorPatch) apply(c ColorScheme) ColorScheme {
	if p.Primary != nil {
		c.Primary = *p.Primary
	}
	if p.Secondary != nil {
		c.Secondary = *p.Secondary
	}
	if p.Accent != nil {
		c.Accent = *p.Accent
	}
	if p.Text != nil {
		c.Text = *p.Text
	}
	if p.TextSecondary != nil {
		c.TextSecondary = *p.TextSecondary
	}
	if p.Background != nil {
		c.Background = *p.Background
	}
	if p.Border != nil {
		c.Border = *p.Border
	}
	if p.TableBg != nil {
		c.TableBg = *p.TableBg
	}
	if p.TableHeaderBg != nil {
		c.TableHeaderBg = *p.TableHeaderBg
	}
	if p.TableHeaderText != nil {
		c.TableHeaderText = *p.TableHeaderText
	}
	return c
}

func (p FontSizePatch) apply(f FontSizes) FontSizes {
	if p.Heading != nil {
		f.Heading = *p.Heading
	}
	if p.Subheading != nil {
		f.Subheading = *p.Subheading
	}
	if p.Body != nil {
		f.Body = *p.Body
	}
	if p.Small != nil {
		f.Small = *p.Small
	}
	return f
}

func (p SectionPatch) apply(s Sections) Sections {
	if p.ShowCompanyDetails != nil {
		s.ShowCompanyDetails = *p.ShowCompanyDetails
	}
	if p.ShowClientDetails != nil {
		s.ShowClientDetails = *p.ShowClientDetails
	}
	if p.ShowInvoiceNumber != nil {
		s.ShowInvoiceNumber = *p.ShowInvoiceNumber
	}
	if p.ShowDates != nil {
		s.ShowDates = *p.ShowDates
	}
	if p.ShowNotes != nil {
		s.ShowNotes = *p.ShowNotes
	}
	if p.ShowTerms != nil {
		s.ShowTerms = *p.ShowTerms
	}
	return s
}
