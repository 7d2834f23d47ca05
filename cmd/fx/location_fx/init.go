package location_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gabojago/internal/repositories"
	"gabojago/internal/services"
)

var Module = fx.Provide(
	provideSearchCache,
	provideKakaoClient,
	provideLocationRepo,
	provideLocationService)

func provideSearchCache() services.PlaceSearchCache {
	return services.NewInMemorySearchCache()
}

func provideKakaoClient(cache services.PlaceSearchCache) services.PlaceSearchInterface {
	return services.NewKakaoLocalClient(cache)
}

func provideLocationRepo(db *gorm.DB) repositories.LocationRepository {
	return repositories.NewLocationRepository(db)
}

func provideLocationService(
	search services.PlaceSearchInterface,
	locationRepo repositories.LocationRepository,
) services.LocationServiceInterface {
	return services.NewLocationService(search, locationRepo)
}
