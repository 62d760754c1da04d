package biz

import (
	"github.com/jakestbu/nilch/internal/search/types"
)

// ActionKind discriminates what a page load does after classification.
type ActionKind int

const (
	RenderResults ActionKind = iota
	Renavigate
	RenderEmpty
	RenderInputError
	RenderRateLimited
	RenderError
)

func (k ActionKind) String() string {
	switch k {
	case RenderResults:
		return "render_results"
	case Renavigate:
		return "renavigate"
	case RenderEmpty:
		return "render_empty"
	case RenderInputError:
		return "render_input_error"
	case RenderRateLimited:
		return "render_rate_limited"
	case RenderError:
		return "render_error"
	default:
		return "unknown"
	}
}

// Action is the single decision for one page load. Target carries the
// same-site navigation URL for Renavigate and the outbound alternate-engine
// URL for RenderRateLimited and RenderEmpty; Detail carries the error text
// for RenderError.
type Action struct {
	Kind   ActionKind
	Target string
	Detail string
}

// Transition maps a page state and its classified outcome onto exactly one
// action. It is pure: no I/O, no clock, no mutation of its inputs; ordering
// between the two retry attempts is enforced by the failed marker riding in
// the navigation URL, not by in-process memory.
func Transition(state types.PageState, outcome *types.Outcome, err error, alternateURL string) Action {
	if err != nil {
		return Action{Kind: RenderError, Detail: err.Error()}
	}

	switch outcome.Status {
	case types.StatusNoQuery:
		return Action{Kind: RenderInputError}
	case types.StatusNoResults:
		return noResults(state, alternateURL)
	}

	if outcome.Empty() {
		return Action{Kind: RenderEmpty, Target: alternateURL}
	}
	return Action{Kind: RenderResults}
}

// noResults implements the one-shot retry tier. A bare noresults from the
// backend almost always means the upstream engine rate-limited us; one full
// re-navigation usually clears it, a second one never does.
func noResults(state types.PageState, alternateURL string) Action {
	// Images never had the retry tier: noresults is an empty state.
	if state.Modality == types.ModalityImage {
		return Action{Kind: RenderEmpty, Target: alternateURL}
	}

	// Video deliberately follows the web policy. The legacy video page
	// reloaded unconditionally on every noresults and could loop forever.
	// TODO: decide whether video should get its own retry budget instead
	// of the web one-shot marker.
	if state.FailedOnce {
		return Action{Kind: RenderRateLimited, Target: alternateURL}
	}
	return Action{Kind: Renavigate, Target: state.WithFailed().URL()}
}
