package usecase

import (
	"sort"

	"github.com/piresc/passeio/internal/pkg/models"
	"github.com/piresc/passeio/internal/pkg/observability"
	"github.com/piresc/passeio/internal/utils"
)

// RankWalkers annotates walkers with their distance from ref and sorts them
// nearest first. Walkers without a fetched detail record or a usable
// coordinate keep an unknown distance and go last, in their original order.
func RankWalkers(ref models.Coordinate, walkers []models.Walker) []models.Walker {
	origin := utils.GeoPointFromCoordinate(ref)
	ranked := make([]models.Walker, len(walkers))
	known := 0

	for i, w := range walkers {
		w.DistanceKm = nil
		w.Distance = models.UnknownDistance
		w.Geohash = ""

		if w.DetailStatus == models.DetailStatusFetched {
			if point, ok := utils.ParseGeoPoint(w.Latitude, w.Longitude); ok {
				km := utils.CalculateDistance(origin, point)
				w.DistanceKm = &km
				w.Distance = utils.FormatDistance(km)
				w.Geohash = utils.EncodeGeohash(point, utils.WalkerGeohashPrecision)
				known++
			}
		}
		ranked[i] = w
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		wi, wj := ranked[i], ranked[j]
		if !wi.HasDistance() || !wj.HasDistance() {
			return wi.HasDistance() && !wj.HasDistance()
		}
		return *wi.DistanceKm < *wj.DistanceKm
	})

	observability.ObserveRankedWalkers(known, len(ranked)-known)
	return ranked
}
