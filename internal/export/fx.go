package export

import (
	"github.com/smallbiznis/facture/internal/invoice/render"
	"github.com/smallbiznis/facture/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params lets the app run without a rasterizer; PDF/PNG exports then
// return ErrNoRasterizer while print export keeps working.
type Params struct {
	fx.In

	Store      *store.Store
	Engine     *render.Engine
	Rasterizer Rasterizer `optional:"true"`
	Logger     *zap.Logger
}

var Module = fx.Module("export.service",
	fx.Provide(func(p Params) *Service {
		return NewService(p.Store, p.Engine, p.Rasterizer, p.Logger)
	}),
)
