package biz

import (
	"context"

	"go.uber.org/zap"

	"github.com/jakestbu/nilch/internal/pkg/logger"
	"github.com/jakestbu/nilch/internal/search/engine"
	"github.com/jakestbu/nilch/internal/search/types"
)

// Searcher performs one classified backend round trip.
type Searcher interface {
	Search(ctx context.Context, state types.PageState) (*types.Outcome, error)
}

// BangResolver short-circuits bang queries to external redirect targets.
type BangResolver interface {
	Resolve(raw string) (target string, ok bool)
}

// SearchUseCase orchestrates one page load: bang short-circuit, backend
// dispatch, failure-handler transition.
type SearchUseCase struct {
	resolver BangResolver
	searcher Searcher
	engines  *engine.Registry
	logger   *logger.Logger
}

// NewSearchUseCase creates a search use case.
func NewSearchUseCase(resolver BangResolver, searcher Searcher, engines *engine.Registry, log *logger.Logger) *SearchUseCase {
	return &SearchUseCase{
		resolver: resolver,
		searcher: searcher,
		engines:  engines,
		logger:   log,
	}
}

// PageLoad is the complete decision for one request: the action to take,
// the classified outcome behind it, and the alternate engine offered by
// fallback messages.
type PageLoad struct {
	Action    Action
	Outcome   *types.Outcome
	Alternate engine.Engine
}

// ResolveBang returns the redirect target for a bang query. Only the web
// search box honors bangs; images and videos dispatch the raw query.
func (uc *SearchUseCase) ResolveBang(raw string) (string, bool) {
	return uc.resolver.Resolve(raw)
}

// Engines exposes the engine registry for selector rendering.
func (uc *SearchUseCase) Engines() *engine.Registry {
	return uc.engines
}

// Load dispatches one backend call for the state and runs the transition.
// Transport errors surface inside the returned action, never as a handler
// error; every page load terminates in a render or a navigation.
func (uc *SearchUseCase) Load(ctx context.Context, state types.PageState) PageLoad {
	outcome, err := uc.searcher.Search(ctx, state)

	alt := uc.engines.Alternate(state.Engine)
	action := Transition(state, outcome, err, alt.OutboundURL(state.Query))

	log := uc.logger.WithContext(ctx)
	if err != nil {
		log.Error("search dispatch failed",
			zap.String("modality", string(state.Modality)),
			zap.String("engine", state.Engine),
			zap.Error(err),
		)
	} else {
		log.Debug("page load decided",
			zap.String("modality", string(state.Modality)),
			zap.String("status", outcome.Status.String()),
			zap.String("action", action.Kind.String()),
			zap.Bool("failed_once", state.FailedOnce),
		)
	}

	return PageLoad{Action: action, Outcome: outcome, Alternate: alt}
}
