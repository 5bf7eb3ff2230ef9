package domain

// Status tracks the document lifecycle. Purely informational in the
// editor; no transition rules are enforced.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

// Template names the interchangeable layout variants. The set is closed;
// bold and letterhead are reserved legacy names that dispatch to the
// customizable variant.
type Template string

const (
	TemplateMinimal      Template = "minimal"
	TemplateProfessional Template = "professional"
	TemplateModern       Template = "modern"
	TemplateBold         Template = "bold"
	TemplateLetterhead   Template = "letterhead"
	TemplateCustom       Template = "custom"
)

// KnownTemplate reports whether name is part of the closed enumeration.
func KnownTemplate(name Template) bool {
	switch name {
	case TemplateMinimal, TemplateProfessional, TemplateModern,
		TemplateBold, TemplateLetterhead, TemplateCustom:
		return true
	}
	return false
}

// Item is one billable line. Amount is derived and never stored stale:
// every mutation of Quantity, Price or TaxRate recomputes it.
type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	TaxRate     float64 `json:"taxRate"`
	Amount      float64 `json:"amount"`
}

// ItemPatch carries a partial item update. Nil fields keep their
// current value.
type ItemPatch struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Quantity    *float64 `json:"quantity,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	TaxRate     *float64 `json:"taxRate,omitempty"`
}

// CompanyDetails is the issuing party. LogoURL holds an embedded image
// as a data URI, owned exclusively by the invoice.
type CompanyDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	GST     string `json:"gst,omitempty"`
	LogoURL string `json:"logoUrl,omitempty"`
}

// ClientDetails is the billed party.
type ClientDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Invoice is the aggregate root of the editor. Subtotal, TaxAmount and
// TotalAmount are derived from Items and DiscountAmount; the store keeps
// them consistent on every mutation.
type Invoice struct {
	InvoiceNumber  string         `json:"invoiceNumber"`
	Company        CompanyDetails `json:"company"`
	Client         ClientDetails  `json:"client"`
	InvoiceDate    string         `json:"invoiceDate"`
	DueDate        string         `json:"dueDate,omitempty"`
	Items          []Item         `json:"items"`
	Subtotal       float64        `json:"subtotal"`
	TaxAmount      float64        `json:"taxAmount"`
	DiscountAmount float64        `json:"discountAmount"`
	TotalAmount    float64        `json:"totalAmount"`
	Template       Template       `json:"template"`
	Notes          string         `json:"notes,omitempty"`
	Terms          string         `json:"terms,omitempty"`
	Currency       string         `json:"currency,omitempty"`
	Status         Status         `json:"status,omitempty"`
}

// Clone returns a deep copy so renderers and callers never alias the
// store's live items slice.
func (inv Invoice) Clone() Invoice {
	out := inv
	out.Items = make([]Item, len(inv.Items))
	copy(out.Items, inv.Items)
	return out
}
