package controllers_fx

import (
	"go.uber.org/fx"

	"gabojago/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewScheduleController),
	fx.Provide(controllers.NewExpenseController),
	fx.Provide(controllers.NewLocationController),
	fx.Provide(controllers.NewItineraryController))
