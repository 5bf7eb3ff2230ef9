package events

// Editor event types emitted by the invoice store.
const (
	EventInvoiceUpdated       = "invoice.updated"
	EventInvoiceReset         = "invoice.reset"
	EventInvoiceImported      = "invoice.imported"
	EventCustomizationUpdated = "customization.updated"
)

// InvoiceUpdated is published after every store mutation, once derived
// totals are consistent again. Revision increases monotonically so
// downstream consumers (render cache, persistence) can order events.
type InvoiceUpdated struct {
	Type     string
	Revision uint64
	Document []byte
}
