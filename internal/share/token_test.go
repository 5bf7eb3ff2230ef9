package share

import (
	"errors"
	"reflect"
	"testing"

	custdomain "github.com/smallbiznis/facture/internal/customization/domain"
	invdomain "github.com/smallbiznis/facture/internal/invoice/domain"
)

func samplePayload() Payload {
	custom := custdomain.Default()
	custom.Colors.Primary = "#123456"
	custom.FontSize.Body = 15
	custom.ShowWatermark = true

	return Payload{
		Invoice: invdomain.Invoice{
			InvoiceNumber: "INV-2026-0042",
			Company: invdomain.CompanyDetails{
				Name:    "Acme Corp",
				Email:   "billing@acme.test",
				GST:     "29ABCDE1234F1Z5",
				LogoURL: "data:image/png;base64,iVBORw0KGgo=",
			},
			Client:      invdomain.ClientDetails{Name: "Globex", Address: "1 Main St"},
			InvoiceDate: "2026-03-14",
			DueDate:     "2026-04-14",
			Items: []invdomain.Item{
				{ID: "itm-1", Name: "Consulting", Quantity: 2, Price: 50, TaxRate: 10, Amount: 110},
			},
			Subtotal:       100,
			TaxAmount:      10,
			DiscountAmount: 5,
			TotalAmount:    105,
			Template:       invdomain.TemplateModern,
			Notes:          "Thanks!",
			Terms:          "Net 30",
			Currency:       "USD",
			Status:         invdomain.StatusDraft,
		},
		Customization: custom,
	}
}

func TestRoundTrip(t *testing.T) {
	payload := samplePayload()
	token, err := Encode(payload)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := Decode(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(decoded, payload) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", decoded, payload)
	}
}

func TestTokenIsURLSafe(t *testing.T) {
	token, err := Encode(samplePayload())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for _, r := range token {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			t.Fatalf("token contains non-URL-safe rune %q", r)
		}
	}
}

func TestDecodeInvalidBase64(t *testing.T) {
	_, err := Decode("!!not base64!!")
	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if derr.Stage != "base64" {
		t.Fatalf("expected base64 stage, got %q", derr.Stage)
	}
}

func TestDecodeInvalidJSON(t *testing.T) {
	// Valid base64, garbage JSON underneath.
	_, err := Decode("bm90LWpzb24")
	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if derr.Stage != "json" {
		t.Fatalf("expected json stage, got %q", derr.Stage)
	}
}
