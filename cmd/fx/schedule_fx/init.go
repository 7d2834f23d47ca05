package schedule_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gabojago/internal/repositories"
	"gabojago/internal/services"
)

var Module = fx.Provide(
	provideScheduleRepo,
	provideScheduleLocationRepo,
	provideExpenseRepo,
	provideScheduleService,
	provideExpenseService)

func provideScheduleRepo(db *gorm.DB) repositories.ScheduleRepository {
	return repositories.NewScheduleRepository(db)
}

func provideScheduleLocationRepo(db *gorm.DB) repositories.ScheduleLocationRepository {
	return repositories.NewScheduleLocationRepository(db)
}

func provideExpenseRepo(db *gorm.DB) repositories.ExpenseRepository {
	return repositories.NewExpenseRepository(db)
}

func provideScheduleService(
	scheduleRepo repositories.ScheduleRepository,
	entryRepo repositories.ScheduleLocationRepository,
) services.ScheduleServiceInterface {
	return services.NewScheduleService(scheduleRepo, entryRepo)
}

func provideExpenseService(
	expenseRepo repositories.ExpenseRepository,
	scheduleRepo repositories.ScheduleRepository,
) services.ExpenseServiceInterface {
	return services.NewExpenseService(expenseRepo, scheduleRepo)
}
