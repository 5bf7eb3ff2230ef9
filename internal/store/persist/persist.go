package persist

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/smallbiznis/facture/internal/events"
	invdomain "github.com/smallbiznis/facture/internal/invoice/domain"
	"github.com/smallbiznis/facture/internal/store"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StoreDocument is the one durable record: the last-edited invoice
// document, keyed by the fixed store name. The customization profile is
// deliberately not persisted.
type StoreDocument struct {
	Name      string         `gorm:"primaryKey;type:text"`
	Document  datatypes.JSON `gorm:"type:jsonb"`
	UpdatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (StoreDocument) TableName() string { return "store_documents" }

// Repository reads and writes the durable invoice cache.
type Repository struct {
	db   *gorm.DB
	name string
	log  *zap.Logger
}

func NewRepository(db *gorm.DB, name string, log *zap.Logger) (*Repository, error) {
	if err := db.AutoMigrate(&StoreDocument{}); err != nil {
		return nil, err
	}
	return &Repository{db: db, name: name, log: log.Named("persist")}, nil
}

// Save upserts the current document.
func (r *Repository) Save(ctx context.Context, document []byte) error {
	record := StoreDocument{
		Name:      r.name,
		Document:  datatypes.JSON(document),
		UpdatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
		}).
		Create(&record).Error
}

// Load returns the cached invoice, or nil when no session was saved.
// A corrupt record is treated as absent with a logged warning so a bad
// cache never blocks startup.
func (r *Repository) Load(ctx context.Context) (*invdomain.Invoice, error) {
	var record StoreDocument
	err := r.db.WithContext(ctx).
		Where("name = ?", r.name).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var invoice invdomain.Invoice
	if err := json.Unmarshal(record.Document, &invoice); err != nil {
		r.log.Warn("discarding corrupt cached invoice", zap.Error(err))
		return nil, nil
	}
	return &invoice, nil
}

// Attach restores the cached session into the store and then keeps the
// cache current by saving after every invoice mutation. Customization
// events carry the document too, so a save on them is harmless and
// keeps the code uniform.
func Attach(repo *Repository, s *store.Store, bus *events.Bus, log *zap.Logger) error {
	log = log.Named("persist")

	cached, err := repo.Load(context.Background())
	if err != nil {
		return err
	}
	if cached != nil {
		s.Load(*cached)
		log.Info("restored cached invoice", zap.String("invoice_number", cached.InvoiceNumber))
	}

	bus.Subscribe(func(evt events.InvoiceUpdated) {
		if len(evt.Document) == 0 {
			return
		}
		if err := repo.Save(context.Background(), evt.Document); err != nil {
			log.Warn("save invoice cache",
				zap.Uint64("revision", evt.Revision),
				zap.Error(err),
			)
		}
	})
	return nil
}
