package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/passeio/internal/pkg/errs"
	"github.com/piresc/passeio/internal/pkg/logger"
	"github.com/piresc/passeio/internal/pkg/models"
	"github.com/piresc/passeio/internal/pkg/observability"
	"golang.org/x/sync/errgroup"
)

// ListNearbyWalkers returns every walker of the directory, enriched with
// their detail record and ordered by distance from origin
func (uc *TutorUC) ListNearbyWalkers(ctx context.Context, session models.Session, origin models.Coordinate) ([]models.Walker, error) {
	summaries, err := uc.gw.ListWalkers(ctx, session.Token)
	if err != nil {
		if ctxErr := errs.FromContext(ctx, "list walkers"); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}

	walkers, err := uc.fetchWalkerDetails(ctx, session.Token, summaries)
	if err != nil {
		return nil, err
	}

	return RankWalkers(origin, walkers), nil
}

// fetchWalkerDetails loads all detail records concurrently. A failed lookup
// degrades its walker to a fallback entry instead of failing the list.
func (uc *TutorUC) fetchWalkerDetails(ctx context.Context, token string, summaries []models.WalkerSummary) ([]models.Walker, error) {
	walkers := make([]models.Walker, len(summaries))

	g, gctx := errgroup.WithContext(ctx)
	if limit := uc.cfg.Backend.DetailConcurrency; limit > 0 {
		g.SetLimit(limit)
	}

	for i := range summaries {
		i := i
		g.Go(func() error {
			summary := summaries[i]
			detail, err := uc.gw.GetWalker(gctx, token, summary.ID.String())
			if err != nil {
				if gctx.Err() == nil {
					logger.WarnCtx(ctx, "Walker detail unavailable, using fallback",
						logger.WalkerID(summary.ID.String()),
						logger.Err(err))
				}
				observability.ObserveWalkerDetail(string(models.DetailStatusFallback))
				walkers[i] = fallbackWalker(summary)
				return nil
			}
			observability.ObserveWalkerDetail(string(models.DetailStatusFetched))
			walkers[i] = mergeWalker(summary, detail)
			return nil
		})
	}
	_ = g.Wait()

	if err := errs.FromContext(ctx, "fetch walker details"); err != nil {
		return nil, err
	}
	return walkers, nil
}

// GetWalker returns one walker with its detail record. When origin is set
// the distance to it is filled in.
func (uc *TutorUC) GetWalker(ctx context.Context, session models.Session, walkerID string, origin *models.Coordinate) (*models.Walker, error) {
	detail, err := uc.gw.GetWalker(ctx, session.Token, walkerID)
	if err != nil {
		return nil, fmt.Errorf("get walker %s: %w", walkerID, err)
	}

	walker := mergeWalker(models.WalkerSummary{ID: models.ID(walkerID)}, detail)
	if origin != nil {
		ranked := RankWalkers(*origin, []models.Walker{walker})
		walker = ranked[0]
	} else {
		walker.Distance = models.UnknownDistance
	}
	return &walker, nil
}

func mergeWalker(summary models.WalkerSummary, detail *models.WalkerDetail) models.Walker {
	w := models.Walker{
		ID:           summary.ID.String(),
		Name:         summary.Name,
		Latitude:     summary.Latitude,
		Longitude:    summary.Longitude,
		Photo:        detail.Photo,
		DetailStatus: models.DetailStatusFetched,
		Distance:     models.UnknownDistance,
	}
	if w.ID == "" {
		w.ID = detail.ID.String()
	}
	if w.Name == "" {
		w.Name = detail.Name
	}
	if w.Latitude == "" && w.Longitude == "" {
		w.Latitude, w.Longitude = detail.Latitude, detail.Longitude
	}

	if detail.Rating != nil && *detail.Rating > 0 {
		rating := *detail.Rating
		w.Rating = &rating
		w.RatingStatus = models.RatingStatusKnown
	} else {
		w.RatingStatus = models.RatingStatusMissing
	}
	return w
}

func fallbackWalker(summary models.WalkerSummary) models.Walker {
	return models.Walker{
		ID:           summary.ID.String(),
		Name:         summary.Name,
		Latitude:     summary.Latitude,
		Longitude:    summary.Longitude,
		RatingStatus: models.RatingStatusMissing,
		DetailStatus: models.DetailStatusFallback,
		Distance:     models.UnknownDistance,
	}
}
