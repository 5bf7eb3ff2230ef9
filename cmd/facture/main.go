package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/facture/internal/clock"
	"github.com/smallbiznis/facture/internal/config"
	"github.com/smallbiznis/facture/internal/events"
	"github.com/smallbiznis/facture/internal/export"
	"github.com/smallbiznis/facture/internal/invoice"
	"github.com/smallbiznis/facture/internal/observability/logger"
	"github.com/smallbiznis/facture/internal/observability/tracing"
	"github.com/smallbiznis/facture/internal/server"
	"github.com/smallbiznis/facture/internal/store"
	"github.com/smallbiznis/facture/internal/store/persist"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		tracing.Module,
		fx.Provide(RegisterSnowflake),
		clock.Module,
		events.Module,
		store.Module,
		persist.Module,
		invoice.Module,
		export.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
