package service

import (
	"context"
	"log"

	"nuamx/internal/domain"
	"nuamx/internal/port"
	"nuamx/internal/resolver"
)

const maxResolveSamples = 20

// ResolveInput is the DTO for one resolution run. Zero values mean dry-run,
// the configured default limit, and no overwriting.
type ResolveInput struct {
	DryRun    bool
	Overwrite bool
	Limit     int
	Filters   domain.RatingFilters
}

// ResolveResult summarizes a resolution run. Samples and Errors are capped
// so the response stays bounded on large batches.
type ResolveResult struct {
	DistinctRUTs int                       `json:"distinct_ruts"`
	Processed    int                       `json:"processed"`
	Updated      int                       `json:"updated"`
	DryRun       bool                      `json:"dry_run"`
	Samples      []domain.ResolutionResult `json:"samples"`
	Errors       []string                  `json:"errors"`
}

// ResolveService applies cascade-resolved display names to ratings:
// blank names by default, existing names too on overwrite runs.
type ResolveService interface {
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveResult, error)
}

type resolveService struct {
	ratings      port.RatingRepository
	cascade      *resolver.Cascade
	publisher    port.EventPublisher
	defaultLimit int
}

// NewResolveService creates a new ResolveService.
func NewResolveService(ratings port.RatingRepository, cascade *resolver.Cascade, publisher port.EventPublisher, defaultLimit int) ResolveService {
	if defaultLimit < 1 {
		defaultLimit = 500
	}
	return &resolveService{ratings: ratings, cascade: cascade, publisher: publisher, defaultLimit: defaultLimit}
}

func (s *resolveService) Resolve(ctx context.Context, input *ResolveInput) (*ResolveResult, error) {
	if s.cascade.Sources() == 0 {
		return nil, domain.ErrResolverUnavailable
	}

	limit := input.Limit
	if limit < 1 {
		limit = s.defaultLimit
	}

	// Overwrite runs consider named rows too; default runs only blanks.
	rows, err := s.ratings.ListForNameResolution(ctx, input.Filters, input.Overwrite, limit)
	if err != nil {
		return nil, err
	}

	// One cascade run per distinct RUT, not per row.
	byRUT := make(map[string][]domain.Rating, len(rows))
	ruts := make([]string, 0, len(rows))
	for _, r := range rows {
		if _, seen := byRUT[r.RUT]; !seen {
			ruts = append(ruts, r.RUT)
		}
		byRUT[r.RUT] = append(byRUT[r.RUT], r)
	}

	resolutions := s.cascade.ResolveAll(ctx, ruts)

	result := &ResolveResult{
		DistinctRUTs: len(ruts),
		Processed:    len(rows),
		DryRun:       input.DryRun,
		Samples:      []domain.ResolutionResult{},
		Errors:       []string{},
	}

	for _, rut := range ruts {
		res, ok := resolutions[rut]
		if !ok {
			// Batch was cancelled before this RUT's lookup was issued.
			continue
		}
		if len(result.Samples) < maxResolveSamples {
			result.Samples = append(result.Samples, res)
		}
		if res.Error != "" && len(result.Errors) < maxResolveSamples {
			result.Errors = append(result.Errors, rut+": "+res.Error)
		}
		if res.ResolvedName == "" {
			continue
		}

		for _, rating := range byRUT[rut] {
			if rating.DisplayName == res.ResolvedName {
				continue
			}
			if rating.DisplayName != "" && !input.Overwrite {
				continue
			}
			if input.DryRun {
				result.Updated++
				continue
			}
			if err := s.ratings.UpdateDisplayName(ctx, rating.ID, res.ResolvedName); err != nil {
				log.Printf("resolveService.Resolve: updating rating %s: %v", rating.ID, err)
				if len(result.Errors) < maxResolveSamples {
					result.Errors = append(result.Errors, rut+": "+err.Error())
				}
				continue
			}
			result.Updated++

			// Best-effort, same contract as commit. A failed publish never
			// undoes the name change.
			rating.DisplayName = res.ResolvedName
			event := domain.EventFromRating(domain.EventActionUpdate, &rating)
			if err := s.publisher.Publish(ctx, event); err != nil {
				log.Printf("resolveService.Resolve: publishing event for rating %s: %v", rating.ID, err)
			}
		}
	}
	return result, nil
}
