package usecases

import (
	"context"
	"slices"
	"time"

	"github.com/reqtrack/reqtrack/internal/application/request/dto"
	"github.com/reqtrack/reqtrack/internal/domain/request"
	"github.com/reqtrack/reqtrack/internal/shared/biztime"
	"github.com/reqtrack/reqtrack/internal/shared/constants"
	"github.com/reqtrack/reqtrack/internal/shared/i18n"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

type RequestStatsUseCase struct {
	stats  request.StatsReader
	now    func() time.Time
	logger logger.Interface
}

func NewRequestStatsUseCase(stats request.StatsReader, logger logger.Interface) *RequestStatsUseCase {
	return &RequestStatsUseCase{stats: stats, now: biztime.NowUTC, logger: logger}
}

// Execute fails as a whole if any of the underlying counts fails.
func (uc *RequestStatsUseCase) Execute(ctx context.Context, lang i18n.Lang) (*dto.StatsDTO, error) {
	now := uc.now()
	result, err := uc.collect(ctx, now, lang)
	if err != nil {
		uc.logger.Errorw("failed to compute request stats", "error", err)
		return nil, err
	}
	return result, nil
}

func (uc *RequestStatsUseCase) collect(ctx context.Context, now time.Time, lang i18n.Lang) (*dto.StatsDTO, error) {
	result := &dto.StatsDTO{
		ByStatus:     []dto.StatusStatDTO{},
		ByPriority:   []dto.PriorityStatDTO{},
		TopTags:      []dto.TagStatDTO{},
		Monthly:      []dto.MonthlyStatDTO{},
		TopCustomers: []dto.CustomerStatDTO{},
	}

	byStatus, err := uc.stats.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range byStatus {
		result.ByStatus = append(result.ByStatus, dto.StatusStatDTO{
			Status: s.Status.String(),
			Label:  statusLabel(lang, s.Status),
			Count:  s.Count,
		})
	}

	byPriority, err := uc.stats.CountByPriority(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(byPriority, func(a, b request.PriorityCount) int {
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() - b.Priority.Rank()
		}
		switch {
		case a.Count > b.Count:
			return -1
		case a.Count < b.Count:
			return 1
		}
		return 0
	})
	for _, p := range byPriority {
		result.ByPriority = append(result.ByPriority, dto.PriorityStatDTO{
			Priority: p.Priority.String(),
			Label:    priorityLabel(lang, p.Priority),
			Count:    p.Count,
		})
	}

	tags, err := uc.stats.TopTags(ctx, constants.StatsTopN)
	if err != nil {
		return nil, err
	}
	for _, t := range tags {
		result.TopTags = append(result.TopTags, dto.TagStatDTO{
			TagID: t.TagID, Name: t.Name, Color: t.Color, Category: t.Category, Count: t.Count,
		})
	}

	created, err := uc.stats.CreatedSince(ctx, now.AddDate(0, -constants.StatsMonths, 0))
	if err != nil {
		return nil, err
	}
	result.Monthly = monthlyBuckets(created)

	customers, err := uc.stats.TopCustomers(ctx, constants.StatsTopN)
	if err != nil {
		return nil, err
	}
	for _, c := range customers {
		result.TopCustomers = append(result.TopCustomers, dto.CustomerStatDTO{
			CustomerID: c.CustomerID, Name: c.Name, Company: c.Company, Count: c.Count,
		})
	}

	if result.Total, err = uc.stats.Count(ctx); err != nil {
		return nil, err
	}
	if result.ThisMonth, err = uc.stats.CountSince(ctx, biztime.StartOfMonthUTC(now)); err != nil {
		return nil, err
	}
	return result, nil
}

// monthlyBuckets groups creation times by business-timezone month, oldest
// first. Months without requests are not emitted.
func monthlyBuckets(times []time.Time) []dto.MonthlyStatDTO {
	type key struct {
		year  int
		month time.Month
	}
	counts := make(map[key]int64)
	for _, t := range times {
		y, m := biztime.MonthOf(t)
		counts[key{y, m}]++
	}

	out := make([]dto.MonthlyStatDTO, 0, len(counts))
	for k, n := range counts {
		out = append(out, dto.MonthlyStatDTO{Year: k.year, Month: int(k.month), Count: n})
	}
	slices.SortFunc(out, func(a, b dto.MonthlyStatDTO) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		return a.Month - b.Month
	})
	return out
}
