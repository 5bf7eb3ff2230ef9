package share

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	custdomain "github.com/smallbiznis/facture/internal/customization/domain"
	invdomain "github.com/smallbiznis/facture/internal/invoice/domain"
)

// Payload is the full editor state carried by a share link: the invoice
// document plus the customization profile. Encoding is URL-safe and
// round-trip exact for every nested field.
type Payload struct {
	Invoice       invdomain.Invoice        `json:"invoice"`
	Customization custdomain.Customization `json:"customization"`
}

// DecodeError marks a malformed token. It is recoverable: callers
// surface a notice and leave the current editor state untouched.
type DecodeError struct {
	Stage string // base64 | json
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("share token decode failed at %s: %v", e.Stage, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Encode serializes the payload into an opaque URL-safe token.
func Encode(p Payload) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Decode reverses Encode. Standard base64 with padding is also accepted
// so tokens survive re-encoding by intermediaries.
func Decode(token string) (Payload, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		if padded, perr := base64.URLEncoding.DecodeString(token); perr == nil {
			raw = padded
		} else {
			return Payload{}, &DecodeError{Stage: "base64", Err: err}
		}
	}

	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Payload{}, &DecodeError{Stage: "json", Err: err}
	}
	return p, nil
}
