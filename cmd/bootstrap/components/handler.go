package components

import (
	"travelmate/internal/handler"
	"travelmate/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUserHandler,
		api.NewCatalogHandler,
		api.NewTripHandler,
		api.NewSavedTripHandler,
	),
	fx.Invoke(handler.NewRouter),
)
