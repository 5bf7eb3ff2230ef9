package logger

import "strings"

const maxInlineDataURI = 48

// MaskShareToken masks a share-link token, preserving only the last 4
// characters. Tokens carry the full invoice payload and must never land
// in logs verbatim.
func MaskShareToken(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return maskLast4(value)
}

// TruncateDataURI shortens embedded logo images for logging. Data URIs
// routinely run to hundreds of kilobytes.
func TruncateDataURI(value string) string {
	if !strings.HasPrefix(value, "data:") {
		return value
	}
	if len(value) <= maxInlineDataURI {
		return value
	}
	return value[:maxInlineDataURI] + "…(truncated)"
}

func maskLast4(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if len(value) <= 4 {
		return "****" + value
	}
	return "****" + value[len(value)-4:]
}
