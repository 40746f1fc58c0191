package resolver

import (
	"context"
	"errors"
	"log"
	"sync"

	"nuamx/internal/domain"
	"nuamx/internal/port"
)

// Cascade resolves display names by consulting an ordered list of sources,
// short-circuiting on the first non-empty result. Individual source
// failures are swallowed and recorded; they never abort a batch.
type Cascade struct {
	sources     []port.NameSource
	concurrency int
}

// NewCascade creates a Cascade over sources in priority order.
func NewCascade(sources []port.NameSource, concurrency int) *Cascade {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Cascade{sources: sources, concurrency: concurrency}
}

// Sources reports how many sources the cascade consults.
func (c *Cascade) Sources() int { return len(c.sources) }

// Resolve runs the cascade for one RUT. Once a source answers, the
// remaining sources are not queried.
func (c *Cascade) Resolve(ctx context.Context, rut string) domain.ResolutionResult {
	var lastErr string
	for _, src := range c.sources {
		name, err := src.Lookup(ctx, rut)
		if err == nil && name != "" {
			return domain.ResolutionResult{RUT: rut, ResolvedName: name, SourceTag: src.Tag()}
		}
		if err != nil && !errors.Is(err, port.ErrNoMatch) {
			log.Printf("resolver.Cascade: source %s failed for rut %s: %v", src.Tag(), rut, err)
			lastErr = err.Error()
		}
	}
	return domain.ResolutionResult{RUT: rut, SourceTag: "not-found", Error: lastErr}
}

// ResolveAll runs the cascade for each distinct RUT, bounded by the
// configured concurrency. Cancelling ctx stops new lookups from being
// issued; results already computed remain usable.
func (c *Cascade) ResolveAll(ctx context.Context, ruts []string) map[string]domain.ResolutionResult {
	results := make(map[string]domain.ResolutionResult, len(ruts))
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, c.concurrency)

	for _, rut := range ruts {
		if ctx.Err() != nil {
			break
		}
		sem <- struct{}{} // acquire
		wg.Add(1)
		go func(rut string) {
			defer wg.Done()
			defer func() { <-sem }() // release

			res := c.Resolve(ctx, rut)
			mu.Lock()
			results[rut] = res
			mu.Unlock()
		}(rut)
	}

	wg.Wait()
	return results
}
