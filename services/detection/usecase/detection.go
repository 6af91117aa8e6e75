package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kerbshare/trustengine/internal/pkg/logger"
	"github.com/kerbshare/trustengine/internal/pkg/models"
	nrpkg "github.com/kerbshare/trustengine/internal/pkg/newrelic"
	"github.com/kerbshare/trustengine/services/detection"
)

// DetectionUsecase runs the six pattern detectors over a bounded event
// window and merges their output into one ranked result. Each invocation
// recomputes from scratch; the engine holds no mutable state between runs.
type DetectionUsecase struct {
	cfg         *models.Config
	bookingRepo detection.BookingRepo
	detectionGW detection.DetectionGW
	detectors   []namedDetector
}

// NewDetectionUsecase creates a new detection usecase
func NewDetectionUsecase(
	cfg *models.Config,
	bookingRepo detection.BookingRepo,
	detectionGW detection.DetectionGW,
) *DetectionUsecase {
	travelGap := time.Duration(cfg.Detection.TravelGapHours) * time.Hour

	return &DetectionUsecase{
		cfg:         cfg,
		bookingRepo: bookingRepo,
		detectionGW: detectionGW,
		detectors: []namedDetector{
			{name: string(models.PatternVelocity), fn: detectVelocity},
			{name: string(models.PatternDeviceCluster), fn: detectDeviceCluster},
			{name: string(models.PatternEmailPattern), fn: detectEmailPattern},
			{name: string(models.PatternGeographicAnomaly), fn: detectGeographic(travelGap, cfg.Detection.RiskScoreFloor)},
			{name: string(models.PatternPaymentFraud), fn: detectPaymentFraud},
			{name: string(models.PatternIdentityFarming), fn: detectIdentityFarming},
		},
	}
}

// DetectPatterns fetches the event window and fans out to all detectors.
// Only an event store failure is returned as an error; a panicking
// detector contributes zero patterns and the run continues.
func (uc *DetectionUsecase) DetectPatterns(ctx context.Context, window models.DetectionWindow) (*models.DetectionResult, error) {
	return nrpkg.WithSegmentAndReturn(ctx, "detection.DetectPatterns", func() (*models.DetectionResult, error) {
		resolveWindow(&window)

		events, err := uc.bookingRepo.GetEventsInWindow(ctx, window.Start, window.End)
		if err != nil {
			logger.ErrorCtx(ctx, "Failed to fetch booking events",
				logger.String("timeframe", window.Timeframe),
				logger.Err(err))
			return nil, err
		}

		patterns := uc.runDetectors(ctx, events)
		patterns = filterPatterns(patterns, window.MinSeverity, window.Type)
		rankPatterns(patterns)

		result := &models.DetectionResult{
			Patterns: patterns,
			Stats:    summarize(patterns, window.Timeframe),
		}

		uc.publishPatterns(ctx, patterns)

		logger.InfoCtx(ctx, "Detection run completed",
			logger.String("timeframe", window.Timeframe),
			logger.Int("events", len(events)),
			logger.Int("patterns", len(patterns)))

		return result, nil
	})
}

// runDetectors executes every detector in its own goroutine. Detectors
// share no mutable state, so a plain fan-out/fan-in join is enough.
func (uc *DetectionUsecase) runDetectors(ctx context.Context, events []models.BookingEvent) []models.SuspiciousPattern {
	results := make([][]models.SuspiciousPattern, len(uc.detectors))

	var wg sync.WaitGroup
	for i := range uc.detectors {
		wg.Add(1)
		go func(idx int, d namedDetector) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					logger.ErrorCtx(ctx, "Detector panicked, contributing zero patterns",
						logger.String("detector", d.name),
						logger.Any("panic", r))
				}
			}()
			results[idx] = d.fn(events)
		}(i, uc.detectors[i])
	}
	wg.Wait()

	merged := make([]models.SuspiciousPattern, 0)
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged
}

// publishPatterns pushes filtered patterns to downstream consumers on a
// best-effort basis. Publish failures never fail the detection request.
func (uc *DetectionUsecase) publishPatterns(ctx context.Context, patterns []models.SuspiciousPattern) {
	for i := range patterns {
		if err := uc.detectionGW.PublishPatternDetected(ctx, &patterns[i]); err != nil {
			logger.WarnCtx(ctx, "Failed to publish detected pattern",
				logger.String("pattern_id", patterns[i].ID),
				logger.Err(err))
		}
	}
}

// resolveWindow normalizes the timeframe keyword and derives the absolute
// time range when the caller did not supply one.
func resolveWindow(window *models.DetectionWindow) {
	switch window.Timeframe {
	case "1d", "7d", "30d":
	default:
		window.Timeframe = "7d"
	}

	if window.End.IsZero() {
		window.End = time.Now()
	}
	if window.Start.IsZero() {
		var span time.Duration
		switch window.Timeframe {
		case "1d":
			span = 24 * time.Hour
		case "30d":
			span = 30 * 24 * time.Hour
		default:
			span = 7 * 24 * time.Hour
		}
		window.Start = window.End.Add(-span)
	}
}

// filterPatterns applies the minimum severity and pattern type filters.
// Filtering happens before ranking and before stats.
func filterPatterns(patterns []models.SuspiciousPattern, minSeverity models.Severity, patternType models.PatternType) []models.SuspiciousPattern {
	filtered := make([]models.SuspiciousPattern, 0, len(patterns))
	minRank := minSeverity.Rank()
	for _, p := range patterns {
		if minRank > 0 && p.Severity.Rank() < minRank {
			continue
		}
		if patternType != "" && p.Type != patternType {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// rankPatterns orders by severity descending, ties broken by confidence
// descending, then by ID for a stable order across runs.
func rankPatterns(patterns []models.SuspiciousPattern) {
	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].Severity.Rank() != patterns[j].Severity.Rank() {
			return patterns[i].Severity.Rank() > patterns[j].Severity.Rank()
		}
		if patterns[i].Confidence != patterns[j].Confidence {
			return patterns[i].Confidence > patterns[j].Confidence
		}
		return patterns[i].ID < patterns[j].ID
	})
}

// summarize computes run statistics over the filtered pattern set
func summarize(patterns []models.SuspiciousPattern, timeframe string) models.DetectionStats {
	affected := make(map[string]struct{})
	stats := models.DetectionStats{
		TotalPatterns: len(patterns),
		Timeframe:     timeframe,
		GeneratedAt:   time.Now(),
	}

	for _, p := range patterns {
		switch p.Severity {
		case models.SeverityCritical:
			stats.CriticalPatterns++
		case models.SeverityHigh:
			stats.HighPatterns++
		}
		for _, id := range p.BookingIDs {
			affected[id] = struct{}{}
		}
	}
	stats.AffectedBookings = len(affected)

	return stats
}
