package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ladle-app/backend/internal/domain"
)

// Unit modes accepted by ScaleRecipe.
const (
	UnitModeOriginal = "original"
	UnitModeWeight   = "weight"
	UnitModeVolume   = "volume"
)

// ScalingServiceConfig holds configuration for the scaling service
type ScalingServiceConfig struct {
	CacheTTL           time.Duration
	MaxMultiplier      float64
	EnableDebugLogging bool
}

// ScalingService is the boundary the delivery tiers call. It validates
// requests, caches rendered scale results, and delegates all the real
// work to the pure engine functions in this package.
type ScalingService struct {
	cache              domain.ScaleCache
	cacheTTL           time.Duration
	maxMultiplier      float64
	enableDebugLogging bool
}

// NewScalingService creates a new scaling service with dependencies
func NewScalingService(cache domain.ScaleCache, config ScalingServiceConfig) *ScalingService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}

	maxMultiplier := config.MaxMultiplier
	if maxMultiplier <= 0 {
		maxMultiplier = 100
	}

	return &ScalingService{
		cache:              cache,
		cacheTTL:           cacheTTL,
		maxMultiplier:      maxMultiplier,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// ParseLines decomposes each ingredient line into structured form.
func (s *ScalingService) ParseLines(ctx context.Context, lines []string) ([]domain.ParsedIngredient, error) {
	if len(lines) == 0 {
		return nil, domain.ErrInvalidRequest
	}

	parsed := make([]domain.ParsedIngredient, len(lines))
	for i, line := range lines {
		parsed[i] = ParseIngredientLine(line)
	}
	return parsed, nil
}

// ScaleRecipe scales a whole ingredient list by a multiplier,
// optionally re-expressing lines in a preferred measurement system.
// Flow: validate -> check cache -> scale -> cache -> return.
func (s *ScalingService) ScaleRecipe(ctx context.Context, lines []string, multiplier float64, unitMode string) ([]string, error) {
	if len(lines) == 0 {
		return nil, domain.ErrInvalidRequest
	}
	if multiplier <= 0 || multiplier > s.maxMultiplier {
		return nil, fmt.Errorf("%w: multiplier must be in (0, %g]", domain.ErrInvalidRequest, s.maxMultiplier)
	}

	if unitMode == "" {
		unitMode = UnitModeOriginal
	}
	switch unitMode {
	case UnitModeOriginal, UnitModeWeight, UnitModeVolume:
	default:
		return nil, fmt.Errorf("%w: unit mode must be original, weight or volume", domain.ErrInvalidRequest)
	}

	cacheKey := scaleCacheKey(lines, multiplier, unitMode)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		if s.enableDebugLogging {
			log.Printf("[SCALE] Cache hit for %d lines (x%g, %s)", len(lines), multiplier, unitMode)
		}
		return cached, nil
	}

	scaled := ScaleAllIngredients(lines, multiplier, unitMode)

	if err := s.cache.Set(ctx, cacheKey, scaled, s.cacheTTL); err != nil && s.enableDebugLogging {
		log.Printf("[SCALE] Cache write failed: %v", err)
	}

	return scaled, nil
}

// Convert re-expresses one ingredient line in the target system.
func (s *ScalingService) Convert(ctx context.Context, line string, target domain.System) (*domain.ConvertedIngredient, error) {
	if strings.TrimSpace(line) == "" {
		return nil, domain.ErrInvalidRequest
	}
	if target != domain.SystemWeight && target != domain.SystemVolume {
		return nil, fmt.Errorf("%w: target must be weight or volume", domain.ErrInvalidRequest)
	}

	parsed := ParseIngredientLine(line)
	if parsed.Quantity == nil {
		return nil, domain.ErrNoQuantity
	}

	converted := ConvertIngredient(parsed, target)
	if converted == nil {
		if s.enableDebugLogging {
			log.Printf("[CONVERT] No conversion path for %q -> %s", line, target)
		}
		return nil, domain.ErrUnsupportedConversion
	}

	return converted, nil
}

// Suggest recommends a measurement system for one ingredient line,
// for per-line UI hints.
func (s *ScalingService) Suggest(ctx context.Context, line string) domain.Preference {
	parsed := ParseIngredientLine(line)

	quantity := 0.0
	if parsed.Quantity != nil {
		quantity = *parsed.Quantity
	}

	return DefaultUnitPreference(parsed.Name, parsed.Unit, quantity)
}

// scaleCacheKey builds a cache key from the full request. Lines are
// joined with a separator that cannot occur inside a single line.
func scaleCacheKey(lines []string, multiplier float64, unitMode string) string {
	return fmt.Sprintf("scale:%g:%s:%s", multiplier, unitMode, strings.Join(lines, "\n"))
}
