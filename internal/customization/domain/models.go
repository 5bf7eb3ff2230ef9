package domain

// LogoPlacement positions the company logo on the document.
type LogoPlacement string

const (
	LogoTopLeft   LogoPlacement = "top-left"
	LogoTopCenter LogoPlacement = "top-center"
	LogoTopRight  LogoPlacement = "top-right"
	LogoWatermark LogoPlacement = "watermark"
	LogoNone      LogoPlacement = "none"
)

// LayoutStyle arranges the header/address blocks.
type LayoutStyle string

const (
	LayoutSingleColumn LayoutStyle = "single-column"
	LayoutTwoColumn    LayoutStyle = "two-column"
	LayoutModernGrid   LayoutStyle = "modern-grid"
)

// HeaderStyle selects the header treatment.
type HeaderStyle string

const (
	HeaderClassic  HeaderStyle = "classic"
	HeaderMinimal  HeaderStyle = "minimal"
	HeaderBold     HeaderStyle = "bold"
	HeaderGradient HeaderStyle = "gradient"
)

// TableStyle selects the line-item table treatment.
type TableStyle string

const (
	TableStriped  TableStyle = "striped"
	TableBordered TableStyle = "bordered"
	TableMinimal  TableStyle = "minimal"
	TableModern   TableStyle = "modern"
)

// FontFamily names one of the five supported families.
type FontFamily string

const (
	FontInter      FontFamily = "inter"
	FontRoboto     FontFamily = "roboto"
	FontPoppins    FontFamily = "poppins"
	FontMontserrat FontFamily = "montserrat"
	FontOpenSans   FontFamily = "open-sans"
)

// ColorScheme is the complete palette applied to a rendered document.
type ColorScheme struct {
	Primary         string `json:"primary"`
	Secondary       string `json:"secondary"`
	Accent          string `json:"accent"`
	Text            string `json:"text"`
	TextSecondary   string `json:"textSecondary"`
	Background      string `json:"background"`
	Border          string `json:"border"`
	TableBg         string `json:"tableBg"`
	TableHeaderBg   string `json:"tableHeaderBg"`
	TableHeaderText string `json:"tableHeaderText"`
}

// FontSizes holds the four typographic tiers in points.
type FontSizes struct {
	Heading    float64 `json:"heading"`
	Subheading float64 `json:"subheading"`
	Body       float64 `json:"body"`
	Small      float64 `json:"small"`
}

// Sections toggles visibility of each document section.
type Sections struct {
	ShowCompanyDetails bool `json:"showCompanyDetails"`
	ShowClientDetails  bool `json:"showClientDetails"`
	ShowInvoiceNumber  bool `json:"showInvoiceNumber"`
	ShowDates          bool `json:"showDates"`
	ShowNotes          bool `json:"showNotes"`
	ShowTerms          bool `json:"showTerms"`
}

// Customization is the complete visual/layout profile, independent of
// invoice content. Every field has a default; a profile is never
// partially invalid.
type Customization struct {
	Colors ColorScheme `json:"colors"`

	LogoPlacement LogoPlacement `json:"logoPlacement"`
	LogoSize      float64       `json:"logoSize"` // percent of base size, 50-200

	ShowWatermark    bool    `json:"showWatermark"`
	WatermarkSize    float64 `json:"watermarkSize"`    // percent, 40-120
	WatermarkOpacity float64 `json:"watermarkOpacity"` // percent, 5-50

	LayoutStyle  LayoutStyle `json:"layoutStyle"`
	HeaderStyle  HeaderStyle `json:"headerStyle"`
	ShowBorder   bool        `json:"showBorder"`
	BorderRadius float64     `json:"borderRadius"`

	FontFamily FontFamily `json:"fontFamily"`
	FontSize   FontSizes  `json:"fontSize"`

	TableStyle       TableStyle `json:"tableStyle"`
	ShowTableBorders bool       `json:"showTableBorders"`
	ShowTaxColumn    bool       `json:"showTaxColumn"`

	Sections Sections `json:"sections"`

	Padding        float64 `json:"padding"`
	SectionSpacing float64 `json:"sectionSpacing"`
}

// Default returns the baseline profile.
func Default() Customization {
	return Customization{
		Colors:           Presets[PresetIndigo],
		LogoPlacement:    LogoTopLeft,
		LogoSize:         100,
		ShowWatermark:    false,
		WatermarkSize:    100,
		WatermarkOpacity: 10,
		LayoutStyle:      LayoutTwoColumn,
		HeaderStyle:      HeaderClassic,
		ShowBorder:       true,
		BorderRadius:     8,
		FontFamily:       FontInter,
		FontSize: FontSizes{
			Heading:    24,
			Subheading: 18,
			Body:       14,
			Small:      12,
		},
		TableStyle:       TableStriped,
		ShowTableBorders: true,
		ShowTaxColumn:    true,
		Sections: Sections{
			ShowCompanyDetails: true,
			ShowClientDetails:  true,
			ShowInvoiceNumber:  true,
			ShowDates:          true,
			ShowNotes:          true,
			ShowTerms:          true,
		},
		Padding:        32,
		SectionSpacing: 24,
	}
}
