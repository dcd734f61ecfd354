package orchestrator

import (
	"context"
	"fmt"

	"data-analysis-agents/internal/model"
)

// Analyze resolves one query: cached answer if available, otherwise the
// routed (or overridden) category agent, with a single fallback to the
// data analysis agent when a specialized agent fails.
//
// An override category bypasses the cache so a forced agent always runs.
// Results are recorded only after the agent fully completes.
func (o *Orchestrator) Analyze(ctx context.Context, query string, override model.Category) (Result, error) {
	var category model.Category

	if override != "" {
		category = override
		o.l.Infof(ctx, LogMsgOverride, LogPrefixAnalyze, category)
	} else {
		if entry, ok := o.store.GetCached(query); ok {
			o.l.Infof(ctx, LogMsgCacheHit, LogPrefixAnalyze, entry.Category)
			return Result{
				Response: entry.Response,
				Category: entry.Category,
				Source:   SourceCache,
			}, nil
		}

		decision := o.router.Route(query)
		category = decision.Category
		o.l.Infof(ctx, LogMsgRouted, LogPrefixAnalyze, category, decision.Confidence)
	}

	runner, err := o.runner(ctx, category)
	if err != nil {
		return Result{}, err
	}

	response, err := runner.Run(ctx, query)
	if err == nil {
		o.record(ctx, query, response, category, SourcePrimary)
		return Result{Response: response, Category: category, Source: SourcePrimary}, nil
	}

	if category == model.CategoryDataAnalysis {
		return Result{}, fmt.Errorf("%s agent: %w", category, err)
	}

	// One retry against the general data analysis agent, recorded under
	// a distinct tag so cached entries reveal their origin.
	o.l.Warnf(ctx, LogMsgPrimaryFailed, LogPrefixAnalyze, category, model.CategoryDataAnalysis, err)

	fallback, ferr := o.runner(ctx, model.CategoryDataAnalysis)
	if ferr != nil {
		return Result{}, ferr
	}

	response, ferr = fallback.Run(ctx, query)
	if ferr != nil {
		return Result{}, fmt.Errorf("%s agent failed (%v); fallback agent: %w", category, err, ferr)
	}

	o.record(ctx, query, response, model.CategoryFallback, SourceFallback)
	return Result{Response: response, Category: model.CategoryFallback, Source: SourceFallback}, nil
}

// runner returns the cached agent for a category, creating it on first
// use.
func (o *Orchestrator) runner(ctx context.Context, category model.Category) (Runner, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if r, ok := o.runners[category]; ok {
		return r, nil
	}

	r, err := o.factory(category)
	if err != nil {
		return nil, fmt.Errorf("create %s agent: %w", category, err)
	}

	o.runners[category] = r
	o.l.Infof(ctx, LogMsgRunnerCreated, LogPrefixAnalyze, category)
	return r, nil
}

func (o *Orchestrator) record(ctx context.Context, query, response string, category model.Category, source Source) {
	o.store.Record(query, response, category)
	o.l.Debugf(ctx, LogMsgResultRecorded, LogPrefixAnalyze, category, source)
}
