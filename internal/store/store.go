package store

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/facture/internal/clock"
	custdomain "github.com/smallbiznis/facture/internal/customization/domain"
	"github.com/smallbiznis/facture/internal/events"
	invdomain "github.com/smallbiznis/facture/internal/invoice/domain"
	"github.com/smallbiznis/facture/internal/observability/metrics"
	"github.com/smallbiznis/facture/internal/share"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	// ErrItemIndexOutOfRange marks an item mutation aimed past the list.
	// The store treats it as a no-op; totals stay consistent.
	ErrItemIndexOutOfRange = errors.New("item_index_out_of_range")

	// ErrUnknownTemplate rejects a template name outside the closed set.
	ErrUnknownTemplate = errors.New("unknown_template")
)

// Store is the single source of truth for the current invoice document
// and its customization profile. Every mutator recomputes derived totals
// before releasing the lock, so no reader ever observes a state where
// totalAmount disagrees with subtotal + taxAmount - discountAmount.
//
// Instances are explicit and injectable; tests create isolated stores.
type Store struct {
	mu            sync.Mutex
	invoice       invdomain.Invoice
	customization custdomain.Customization
	revision      uint64

	genID *snowflake.Node
	clk   clock.Clock
	bus   *events.Bus
	log   *zap.Logger
}

type Params struct {
	fx.In

	GenID *snowflake.Node
	Clock clock.Clock
	Bus   *events.Bus
	Log   *zap.Logger
}

func New(p Params) *Store {
	s := &Store{
		genID: p.GenID,
		clk:   p.Clock,
		bus:   p.Bus,
		log:   p.Log.Named("store"),
	}
	s.invoice = s.freshInvoice()
	s.customization = custdomain.Default()
	return s
}

// freshInvoice is the document a new session starts from: one zeroed
// item, a generated invoice number, today's date.
func (s *Store) freshInvoice() invdomain.Invoice {
	now := s.clk.Now()
	return invdomain.Invoice{
		InvoiceNumber: invdomain.GenerateInvoiceNumber(now),
		InvoiceDate:   now.Format("2006-01-02"),
		Items:         []invdomain.Item{s.newItem()},
		Template:      invdomain.TemplateCustom,
		Status:        invdomain.StatusDraft,
	}
}

func (s *Store) newItem() invdomain.Item {
	return invdomain.Item{ID: s.genID.Generate().String()}
}

// Snapshot returns deep copies of the live document and profile.
func (s *Store) Snapshot() (invdomain.Invoice, custdomain.Customization) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.invoice.Clone(), s.customization
}

// SnapshotWithRevision returns deep copies of the live state together
// with the revision they belong to, read under a single lock
// acquisition so a concurrent mutation can never pair an older
// document with a newer revision.
func (s *Store) SnapshotWithRevision() (invdomain.Invoice, custdomain.Customization, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.invoice.Clone(), s.customization, s.revision
}

// Revision returns the current mutation counter.
func (s *Store) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// SetCompany replaces the company sub-record wholesale.
func (s *Store) SetCompany(details invdomain.CompanyDetails) {
	s.mutate("set_company", events.EventInvoiceUpdated, func() error {
		s.invoice.Company = details
		return nil
	})
}

// SetClient replaces the client sub-record wholesale.
func (s *Store) SetClient(details invdomain.ClientDetails) {
	s.mutate("set_client", events.EventInvoiceUpdated, func() error {
		s.invoice.Client = details
		return nil
	})
}

// AddItem appends a new item with a fresh id and zeroed numeric fields.
func (s *Store) AddItem() invdomain.Item {
	var added invdomain.Item
	s.mutate("add_item", events.EventInvoiceUpdated, func() error {
		added = s.newItem()
		s.invoice.Items = append(s.invoice.Items, added)
		return nil
	})
	return added
}

// UpdateItem merges the patch into the item at index and recomputes its
// amount plus the aggregate totals. Out-of-range indexes are no-ops.
func (s *Store) UpdateItem(index int, patch invdomain.ItemPatch) error {
	return s.mutate("update_item", events.EventInvoiceUpdated, func() error {
		if index < 0 || index >= len(s.invoice.Items) {
			return ErrItemIndexOutOfRange
		}
		item := &s.invoice.Items[index]
		if patch.Name != nil {
			item.Name = *patch.Name
		}
		if patch.Description != nil {
			item.Description = *patch.Description
		}
		if patch.Quantity != nil {
			item.Quantity = *patch.Quantity
		}
		if patch.Price != nil {
			item.Price = *patch.Price
		}
		if patch.TaxRate != nil {
			item.TaxRate = *patch.TaxRate
		}
		return nil
	})
}

// RemoveItem deletes the item at index. The list may be emptied;
// validation flags that separately, mutation does not forbid it.
func (s *Store) RemoveItem(index int) error {
	return s.mutate("remove_item", events.EventInvoiceUpdated, func() error {
		if index < 0 || index >= len(s.invoice.Items) {
			return ErrItemIndexOutOfRange
		}
		s.invoice.Items = append(s.invoice.Items[:index], s.invoice.Items[index+1:]...)
		return nil
	})
}

// SetDiscount stores the raw discount. No clamping: a discount larger
// than the total produces a negative total, rendered as-is.
func (s *Store) SetDiscount(amount float64) {
	s.mutate("set_discount", events.EventInvoiceUpdated, func() error {
		s.invoice.DiscountAmount = amount
		return nil
	})
}

func (s *Store) SetInvoiceDate(date string) {
	s.mutate("set_invoice_date", events.EventInvoiceUpdated, func() error {
		s.invoice.InvoiceDate = date
		return nil
	})
}

func (s *Store) SetDueDate(date string) {
	s.mutate("set_due_date", events.EventInvoiceUpdated, func() error {
		s.invoice.DueDate = date
		return nil
	})
}

func (s *Store) SetNotes(notes string) {
	s.mutate("set_notes", events.EventInvoiceUpdated, func() error {
		s.invoice.Notes = notes
		return nil
	})
}

func (s *Store) SetTerms(terms string) {
	s.mutate("set_terms", events.EventInvoiceUpdated, func() error {
		s.invoice.Terms = terms
		return nil
	})
}

func (s *Store) SetCurrency(cur string) {
	s.mutate("set_currency", events.EventInvoiceUpdated, func() error {
		s.invoice.Currency = cur
		return nil
	})
}

func (s *Store) SetStatus(status invdomain.Status) {
	s.mutate("set_status", events.EventInvoiceUpdated, func() error {
		s.invoice.Status = status
		return nil
	})
}

// SetTemplate switches the active rendering variant. The enumeration is
// closed; unknown names are rejected here while rendering separately
// falls back to the customizable variant for legacy documents.
func (s *Store) SetTemplate(name invdomain.Template) error {
	return s.mutate("set_template", events.EventInvoiceUpdated, func() error {
		if !invdomain.KnownTemplate(name) {
			return ErrUnknownTemplate
		}
		s.invoice.Template = name
		return nil
	})
}

// SetCustomization deep-merges the patch into the live profile.
func (s *Store) SetCustomization(patch custdomain.Patch) {
	s.mutate("set_customization", events.EventCustomizationUpdated, func() error {
		s.customization = patch.Apply(s.customization)
		return nil
	})
}

// ApplyPreset swaps the color scheme for a named preset, leaving every
// other profile field untouched.
func (s *Store) ApplyPreset(name string) error {
	return s.mutate("apply_preset", events.EventCustomizationUpdated, func() error {
		next, err := custdomain.ApplyPreset(s.customization, name)
		if err != nil {
			return err
		}
		s.customization = next
		return nil
	})
}

// Serialize produces an opaque URL-safe token carrying the full editor
// state, reconstructible with Deserialize.
func (s *Store) Serialize() (string, error) {
	invoice, customization := s.Snapshot()
	return share.Encode(share.Payload{Invoice: invoice, Customization: customization})
}

// Deserialize replaces the live state with a decoded share token. On a
// malformed token the existing state is left untouched and the decode
// error is returned for the caller to surface.
func (s *Store) Deserialize(token string) error {
	payload, err := share.Decode(token)
	if err != nil {
		metrics.Editor().IncDecodeFailure()
		return err
	}
	s.mutate("deserialize", events.EventInvoiceImported, func() error {
		s.invoice = payload.Invoice.Clone()
		s.customization = payload.Customization
		return nil
	})
	return nil
}

// Load replaces the invoice document wholesale, e.g. from the durable
// session cache. Totals are recomputed in case the cached copy is stale.
func (s *Store) Load(invoice invdomain.Invoice) {
	s.mutate("load", events.EventInvoiceImported, func() error {
		s.invoice = invoice.Clone()
		return nil
	})
}

// Reset discards all edits and starts a fresh document with a newly
// generated invoice number. The customization profile is intentionally
// kept; resetting the document does not reset its look.
func (s *Store) Reset() {
	s.mutate("reset", events.EventInvoiceReset, func() error {
		s.invoice = s.freshInvoice()
		return nil
	})
}

// Validate runs business-rule validation on the current document.
func (s *Store) Validate() invdomain.ValidationResult {
	invoice, _ := s.Snapshot()
	return invdomain.Validate(invoice)
}

// mutate runs fn under the lock, recomputes every derived value and
// publishes the event. Failed mutations change nothing and publish
// nothing.
func (s *Store) mutate(op, eventType string, fn func() error) error {
	s.mu.Lock()
	if err := fn(); err != nil {
		s.mu.Unlock()
		if errors.Is(err, ErrItemIndexOutOfRange) {
			s.log.Warn("item mutation out of range", zap.String("op", op))
		}
		return err
	}

	s.recalculateLocked()
	s.revision++
	evt := events.InvoiceUpdated{
		Type:     eventType,
		Revision: s.revision,
		Document: s.marshalLocked(),
	}
	s.mu.Unlock()

	metrics.Editor().IncMutation(op)
	s.bus.Publish(evt)
	return nil
}

// recalculateLocked re-derives item amounts and aggregate totals.
// Caller holds the lock.
func (s *Store) recalculateLocked() {
	for i := range s.invoice.Items {
		s.invoice.Items[i].Amount = invdomain.ItemAmount(s.invoice.Items[i])
	}
	s.invoice.Subtotal = invdomain.Subtotal(s.invoice.Items)
	s.invoice.TaxAmount = invdomain.TotalTax(s.invoice.Items)
	s.invoice.TotalAmount = invdomain.Total(s.invoice.Items, s.invoice.DiscountAmount)
}

func (s *Store) marshalLocked() []byte {
	raw, err := json.Marshal(s.invoice)
	if err != nil {
		s.log.Warn("marshal invoice document", zap.Error(err))
		return nil
	}
	return raw
}
