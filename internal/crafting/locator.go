package crafting

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
	"github.com/osse101/FarmPlanner_Go/internal/logger"
	"github.com/osse101/FarmPlanner_Go/internal/metrics"
)

// LocateSources joins ingredient -> drops -> monster -> sub-areas and collapses the
// rows into one entry per monster with a set of sub-areas. Results are cached and
// concurrent lookups of the same ingredient share one query.
func (s *service) LocateSources(ctx context.Context, itemID domain.ItemID) ([]domain.MonsterSources, error) {
	log := logger.FromContext(ctx)

	if cached, ok := s.sources.Get(itemID); ok {
		metrics.SourceCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
		log.Debug(LogMsgSourceCacheHit, "item_id", itemID)
		return cached, nil
	}
	metrics.SourceCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()

	// The shared query outlives any one caller; each caller still stops waiting on its own ctx
	shared := context.WithoutCancel(ctx)
	ch := s.inflight.DoChan(strconv.Itoa(int(itemID)), func() (interface{}, error) {
		rows, err := s.source.GetDropSources(shared, itemID)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgFailedToGetDropSources+": %w", itemID, err)
		}
		sources := groupByMonster(rows)
		s.sources.Set(itemID, sources)
		return sources, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}

	sources := cloneSources(res.Val.([]domain.MonsterSources))
	log.Debug(LogMsgSourcesLocated, "item_id", itemID, "monsters", len(sources))
	return sources, nil
}

// cloneSources copies the monster list and every sub-area slice so callers never
// share backing arrays with the cache
func cloneSources(sources []domain.MonsterSources) []domain.MonsterSources {
	if sources == nil {
		return nil
	}
	out := make([]domain.MonsterSources, len(sources))
	for i, ms := range sources {
		out[i] = domain.MonsterSources{Monster: ms.Monster, SubAreas: append([]domain.SubArea(nil), ms.SubAreas...)}
	}
	return out
}

// groupByMonster deduplicates join rows: a monster reached through several drop
// rows or sharing a sub-area twice appears once with each sub-area once.
func groupByMonster(rows []domain.DropSource) []domain.MonsterSources {
	monsters := make(map[domain.MonsterID]domain.Monster)
	areas := make(map[domain.MonsterID]domain.SubAreaSet)
	for _, row := range rows {
		if _, ok := monsters[row.Monster.ID]; !ok {
			monsters[row.Monster.ID] = row.Monster
			areas[row.Monster.ID] = domain.SubAreaSet{}
		}
		areas[row.Monster.ID].Add(row.SubArea)
	}

	out := make([]domain.MonsterSources, 0, len(monsters))
	for id, m := range monsters {
		out = append(out, domain.MonsterSources{Monster: m, SubAreas: areas[id].Sorted()})
	}
	sort.Slice(out, func(i, j int) bool {
		ni, nj := strings.ToLower(out[i].Monster.Name), strings.ToLower(out[j].Monster.Name)
		if ni != nj {
			return ni < nj
		}
		return out[i].Monster.ID < out[j].Monster.ID
	})
	return out
}
