package memcache_fx

import (
	"go.uber.org/fx"

	"astrasafe/internal/models/response_models"
	mem "astrasafe/pkg/memcache"
)

var Module = fx.Provide(providePlaceCache)

func providePlaceCache() mem.Store[[]response_models.Place] {
	return mem.NewTTLStore[[]response_models.Place]()
}
