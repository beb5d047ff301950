// Package stats implements the analytics engine behind the dashboard
// chapters. A Session owns the active filter selection and memoizes chapter
// payloads until the selection changes.
package stats

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/gcouto/combustiveis-bh/internal/domain"
	"github.com/gcouto/combustiveis-bh/internal/domain/dto"
	"github.com/gcouto/combustiveis-bh/internal/pkg/constants"
	"github.com/gcouto/combustiveis-bh/internal/pkg/logger"
	"github.com/gcouto/combustiveis-bh/internal/pkg/store"
)

// Session is the per-deployment analytics state. Changing the selection bumps
// the generation tag and drops every cached chapter at once, so a client can
// detect stale payloads by comparing generations.
type Session struct {
	mu sync.Mutex

	store     store.Store
	selection domain.FilterSelection
	subset    []*domain.FuelRecord

	generation string
	cache      map[domain.Chapter]*dto.ChapterView
	misses     int
}

func NewSession(st store.Store) *Session {
	s := &Session{store: st}
	s.applySelection(domain.DefaultSelection())
	return s
}

func (s *Session) Selection() domain.FilterSelection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// SetSelection swaps the working subset and invalidates the cache. It returns
// the subset size and the new generation tag.
func (s *Session) SetSelection(ctx context.Context, sel domain.FilterSelection) (int, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applySelection(sel)
	logger.Infof(ctx, "selection updated: semester=%s region=%s records=%d generation=%s",
		sel.Semester, sel.Region, len(s.subset), s.generation)
	return len(s.subset), s.generation
}

func (s *Session) applySelection(sel domain.FilterSelection) {
	s.selection = sel
	s.subset = s.store.Filter(sel)
	s.generation = uuid.NewString()
	s.cache = make(map[domain.Chapter]*dto.ChapterView)
}

func (s *Session) Options() store.FilterOptions {
	return s.store.Options()
}

// Chapter returns the payload for one chapter, computing it at most once per
// generation.
func (s *Session) Chapter(ctx context.Context, id domain.Chapter) (*dto.ChapterView, error) {
	if !domain.ValidChapter(id) {
		return nil, constants.ErrUnknownChapter
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if view, ok := s.cache[id]; ok {
		return view, nil
	}

	s.misses++
	logger.Debugf(ctx, "computing chapter %s (generation %s)", id, s.generation)
	view := s.computeLocked(id)
	s.cache[id] = view
	return view, nil
}

// computeLocked builds one chapter view. Overview and insights always read
// the full dataset; every other chapter reads the working subset.
func (s *Session) computeLocked(id domain.Chapter) *dto.ChapterView {
	view := &dto.ChapterView{Chapter: id, Generation: s.generation}

	switch id {
	case domain.ChapterOverview:
		view.Data = Overview(s.store.All())
		return view
	case domain.ChapterInsights:
		view.Data = Insights(s.store.All())
		return view
	}

	if len(s.subset) == 0 {
		view.Empty = true
		return view
	}
	switch id {
	case domain.ChapterDistribution:
		view.Data = Distribution(s.subset)
	case domain.ChapterTemporal:
		view.Data = Temporal(s.subset)
	case domain.ChapterRegional:
		view.Data = Regional(s.subset)
	case domain.ChapterBandeiras:
		view.Data = Brand(s.subset)
	case domain.ChapterCorrelation:
		view.Data = Correlation(s.subset)
	}
	return view
}
