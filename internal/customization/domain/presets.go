package domain

import "errors"

// Preset names the closed set of shipped color schemes.
const (
	PresetIndigo  = "indigo"
	PresetBlue    = "blue"
	PresetEmerald = "emerald"
	PresetRose    = "rose"
	PresetAmber   = "amber"
	PresetSlate   = "slate"
)

var ErrUnknownPreset = errors.New("unknown_preset")

// Presets is the closed preset table. ApplyPreset replaces only the
// color sub-object of a profile.
var Presets = map[string]ColorScheme{
	PresetIndigo: {
		Primary:         "#6366f1",
		Secondary:       "#8b5cf6",
		Accent:          "#ec4899",
		Text:            "#1f2937",
		TextSecondary:   "#6b7280",
		Background:      "#ffffff",
		Border:          "#e5e7eb",
		TableBg:         "#f9fafb",
		TableHeaderBg:   "#6366f1",
		TableHeaderText: "#ffffff",
	},
	PresetBlue: {
		Primary:         "#3b82f6",
		Secondary:       "#0ea5e9",
		Accent:          "#06b6d4",
		Text:            "#1e293b",
		TextSecondary:   "#64748b",
		Background:      "#ffffff",
		Border:          "#e2e8f0",
		TableBg:         "#f8fafc",
		TableHeaderBg:   "#3b82f6",
		TableHeaderText: "#ffffff",
	},
	PresetEmerald: {
		Primary:         "#10b981",
		Secondary:       "#059669",
		Accent:          "#14b8a6",
		Text:            "#064e3b",
		TextSecondary:   "#6b7280",
		Background:      "#ffffff",
		Border:          "#d1fae5",
		TableBg:         "#f0fdf4",
		TableHeaderBg:   "#10b981",
		TableHeaderText: "#ffffff",
	},
	PresetRose: {
		Primary:         "#f43f5e",
		Secondary:       "#ec4899",
		Accent:          "#f97316",
		Text:            "#881337",
		TextSecondary:   "#9f1239",
		Background:      "#ffffff",
		Border:          "#fecdd3",
		TableBg:         "#fff1f2",
		TableHeaderBg:   "#f43f5e",
		TableHeaderText: "#ffffff",
	},
	PresetAmber: {
		Primary:         "#f59e0b",
		Secondary:       "#d97706",
		Accent:          "#ea580c",
		Text:            "#78350f",
		TextSecondary:   "#92400e",
		Background:      "#ffffff",
		Border:          "#fde68a",
		TableBg:         "#fffbeb",
		TableHeaderBg:   "#f59e0b",
		TableHeaderText: "#ffffff",
	},
	PresetSlate: {
		Primary:         "#475569",
		Secondary:       "#64748b",
		Accent:          "#94a3b8",
		Text:            "#0f172a",
		TextSecondary:   "#475569",
		Background:      "#ffffff",
		Border:          "#cbd5e1",
		TableBg:         "#f8fafc",
		TableHeaderBg:   "#475569",
		TableHeaderText: "#ffffff",
	},
}

// ApplyPreset returns a copy of c with the named preset's colors and
// everything else untouched.
func ApplyPreset(c Customization, name string) (Customization, error) {
	scheme, ok := Presets[name]
	if !ok {
		return c, ErrUnknownPreset
	}
	c.Colors = scheme
	return c, nil
}
