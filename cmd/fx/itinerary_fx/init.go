package itinerary_fx

import (
	"os"

	"go.uber.org/fx"

	"gabojago/internal/repositories"
	"gabojago/internal/services"
	"gabojago/pkg/utils"
)

var Module = fx.Provide(
	provideScheduleGenerator,
	provideReconcileService,
	provideItineraryService)

// provideScheduleGenerator picks the AI backend from the environment:
// GOOGLE_API_KEY selects Gemini, otherwise OPENAI_API_KEY selects OpenAI.
// SCHEDULE_MODEL overrides the default model name of either backend.
func provideScheduleGenerator() (utils.ScheduleGeneratorInterface, error) {
	model := os.Getenv("SCHEDULE_MODEL")

	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		return utils.NewGeminiScheduleClient(key, model)
	}
	return utils.NewOpenAIScheduleClient(os.Getenv("OPENAI_API_KEY"), model), nil
}

func provideReconcileService() services.ReconcileServiceInterface {
	return services.NewReconcileService()
}

func provideItineraryService(
	generator utils.ScheduleGeneratorInterface,
	locations services.LocationServiceInterface,
	reconciler services.ReconcileServiceInterface,
	locationRepo repositories.ScheduleLocationRepository,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(generator, locations, reconciler, locationRepo)
}
