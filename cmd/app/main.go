package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gabojago/cmd/fx/account_fx"
	"gabojago/cmd/fx/controllers_fx"
	"gabojago/cmd/fx/db_fx"
	"gabojago/cmd/fx/itinerary_fx"
	"gabojago/cmd/fx/location_fx"
	"gabojago/cmd/fx/schedule_fx"
	"gabojago/internal/api/controllers"
	"gabojago/internal/infra"
	"gabojago/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		schedule_fx.Module,
		location_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	scheduleController *controllers.ScheduleController,
	expenseController *controllers.ExpenseController,
	locationController *controllers.LocationController,
	itineraryController *controllers.ItineraryController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		scheduleController,
		expenseController,
		locationController,
		itineraryController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	scheduleController *controllers.ScheduleController,
	expenseController *controllers.ExpenseController,
	locationController *controllers.LocationController,
	itineraryController *controllers.ItineraryController) {

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", accountController.Register)
	accountGroup.POST("/login", accountController.Login)

	scheduleGroup := r.Group("/schedule")
	scheduleGroup.Use(middleware.JWTAuthMiddleware())
	scheduleGroup.POST("/append", scheduleController.AppendSchedule)
	scheduleGroup.POST("/modify", scheduleController.ModifySchedule)
	scheduleGroup.DELETE("/remove/:id", scheduleController.RemoveSchedule)
	scheduleGroup.GET("/list", scheduleController.ListSchedules)

	scheduleGroup.GET("/location/list/:scheduleId", scheduleController.ListScheduleLocations)
	scheduleGroup.POST("/location/append", scheduleController.AppendScheduleLocation)
	scheduleGroup.POST("/location/modify", scheduleController.ModifyScheduleLocation)
	scheduleGroup.DELETE("/location/remove/:id", scheduleController.RemoveScheduleLocation)

	scheduleGroup.POST("/expense/append", expenseController.AppendExpense)
	scheduleGroup.POST("/expense/modify", expenseController.ModifyExpense)
	scheduleGroup.DELETE("/expense/remove/:id", expenseController.RemoveExpense)
	scheduleGroup.GET("/expense/list/:scheduleId", expenseController.ListExpenses)

	scheduleGroup.GET("/user/list/:scheduleId", scheduleController.ListScheduleUsers)

	scheduleGroup.POST("/generate", itineraryController.GenerateSchedule)

	locationGroup := r.Group("/location")
	locationGroup.Use(middleware.JWTAuthMiddleware())
	locationGroup.POST("/request", locationController.RequestLocations)
}
