package invoice

import (
	"github.com/smallbiznis/facture/internal/invoice/render"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.render",
	fx.Provide(render.NewEngine),
)
