package components

import (
	"shiftcore/internal/handler"
	"shiftcore/internal/handler/api"
	"shiftcore/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSignupHandler,
		api.NewSlotHandler,
		api.NewCreditHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
