package usecase

import (
	"testing"

	"github.com/piresc/passeio/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fetchedWalker(id, lat, lng string) models.Walker {
	return models.Walker{ID: id, Latitude: lat, Longitude: lng, DetailStatus: models.DetailStatusFetched}
}

func TestRankWalkers_OrdersByDistanceUnknownLast(t *testing.T) {
	origin := models.Coordinate{Latitude: -23.5505, Longitude: -46.6333}
	walkers := []models.Walker{
		fetchedWalker("far", "-22.9068", "-43.1729"),
		{ID: "fallback", Latitude: "-23.5506", Longitude: "-46.6334", DetailStatus: models.DetailStatusFallback},
		fetchedWalker("near", "-23.5510", "-46.6340"),
		fetchedWalker("garbage", "abc", "-46.6"),
		fetchedWalker("mid", "-23.6000", "-46.7000"),
		fetchedWalker("empty", "", ""),
	}

	ranked := RankWalkers(origin, walkers)
	require.Len(t, ranked, 6)

	ids := make([]string, len(ranked))
	for i, w := range ranked {
		ids[i] = w.ID
	}
	assert.Equal(t, []string{"near", "mid", "far", "fallback", "garbage", "empty"}, ids)

	for i := 1; i < 3; i++ {
		assert.LessOrEqual(t, *ranked[i-1].DistanceKm, *ranked[i].DistanceKm)
	}
	for _, w := range ranked[3:] {
		assert.Nil(t, w.DistanceKm)
		assert.Equal(t, models.UnknownDistance, w.Distance)
		assert.Empty(t, w.Geohash)
	}
	assert.Equal(t, "0.1 km", ranked[0].Distance)
	assert.Len(t, ranked[0].Geohash, 7)
}

func TestRankWalkers_StableForEqualDistances(t *testing.T) {
	origin := models.Coordinate{Latitude: 0, Longitude: 0}
	walkers := []models.Walker{
		fetchedWalker("a", "0", "1"),
		fetchedWalker("b", "0", "1"),
		fetchedWalker("c", "0", "1"),
	}

	ranked := RankWalkers(origin, walkers)

	assert.Equal(t, "a", ranked[0].ID)
	assert.Equal(t, "b", ranked[1].ID)
	assert.Equal(t, "c", ranked[2].ID)
	assert.InDelta(t, 111.19, *ranked[0].DistanceKm, 1)
	assert.Equal(t, "111.2 km", ranked[0].Distance)
}

func TestRankWalkers_SamePointIsZero(t *testing.T) {
	origin := models.Coordinate{Latitude: -23.5505, Longitude: -46.6333}

	ranked := RankWalkers(origin, []models.Walker{fetchedWalker("here", "-23.5505", "-46.6333")})

	require.NotNil(t, ranked[0].DistanceKm)
	assert.Equal(t, 0.0, *ranked[0].DistanceKm)
	assert.Equal(t, "0.0 km", ranked[0].Distance)
}

func TestRankWalkers_DoesNotMutateInput(t *testing.T) {
	walkers := []models.Walker{fetchedWalker("b", "0", "2"), fetchedWalker("a", "0", "1")}

	RankWalkers(models.Coordinate{}, walkers)

	assert.Equal(t, "b", walkers[0].ID)
	assert.Nil(t, walkers[0].DistanceKm)
}

func TestRankWalkers_Empty(t *testing.T) {
	assert.Empty(t, RankWalkers(models.Coordinate{}, nil))
}
