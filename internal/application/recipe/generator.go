package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"recipe-ai-api/internal/domain/entity"
	"recipe-ai-api/internal/domain/repository"
	"recipe-ai-api/internal/infrastructure/llm"
	"recipe-ai-api/pkg/logger"
	"recipe-ai-api/pkg/metrics"
)

// generationModel is the logical model used for recipe generation.
const generationModel = "gpt-4"

// recentTitleWindow bounds how far back recently generated titles are pulled
// into the exclusion list.
const recentTitleWindow = 24 * time.Hour

// recentTitlesTTL is the cache lifetime for a user's recent-title list.
// Staleness is acceptable: the freshly generated title is written into the
// persisted exclusion list regardless.
const recentTitlesTTL = 5 * time.Minute

// DuplicateTitleError reports that the generated title collides with a
// recipe the user already has. It carries the existing record so the caller
// can return it alongside the conflict.
type DuplicateTitleError struct {
	Title    string
	Existing *entity.RecipeRecord
}

func (e DuplicateTitleError) Error() string {
	return fmt.Sprintf("recipe with title %q already exists", e.Title)
}

// ModelInvoker is the slice of the invocation layer the generator needs.
type ModelInvoker interface {
	Invoke(ctx context.Context, logicalModel, prompt string, ov llm.Overrides) (*llm.Result, llm.CostBreakdown, error)
}

// TitlesCache is the read-through cache in front of recent-title queries.
type TitlesCache interface {
	GetOrLoadSafe(ctx context.Context, key string, ttl time.Duration, loader func() (interface{}, error)) ([]byte, error)
	Del(ctx context.Context, keys ...string) error
}

// GenerateResult is the outcome of one successful generation.
type GenerateResult struct {
	RecipeID     string
	Recipe       *entity.Recipe
	InputTokens  int
	OutputTokens int
	Cost         llm.CostBreakdown
}

// Generator orchestrates the recipe generation flow: exclusion assembly,
// prompt building, model invocation, parsing, duplicate detection and
// persistence.
type Generator struct {
	recipes  repository.RecipeRepository
	settings repository.SettingsRepository
	logs     repository.InvocationLogRepository
	invoker  ModelInvoker
	cache    TitlesCache
	now      func() time.Time
}

func NewGenerator(
	recipes repository.RecipeRepository,
	settings repository.SettingsRepository,
	logs repository.InvocationLogRepository,
	invoker ModelInvoker,
	cache TitlesCache,
) *Generator {
	return &Generator{
		recipes:  recipes,
		settings: settings,
		logs:     logs,
		invoker:  invoker,
		cache:    cache,
		now:      time.Now,
	}
}

// Generate runs the full generation flow for one user request. A duplicate
// title surfaces as DuplicateTitleError carrying the existing record; the
// generated-but-rejected recipe is not persisted in that case.
func (g *Generator) Generate(ctx context.Context, userID string, params Parameters, ov llm.Overrides) (*GenerateResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	start := g.now()
	res, err := g.generate(ctx, userID, params, ov)

	metrics.RecipeGenerationDuration.WithLabelValues(generationModel).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RecipeGenerationTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.RecipeGenerationTotal.WithLabelValues("success").Inc()
	return res, nil
}

func (g *Generator) generate(ctx context.Context, userID string, params Parameters, ov llm.Overrides) (*GenerateResult, error) {
	var (
		persisted []string
		version   int64
		recent    []string
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		persisted, version, err = g.settings.GetExcludedTitles(egCtx, userID)
		return err
	})
	eg.Go(func() error {
		var err error
		recent, err = g.recentTitles(egCtx, userID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	excludes := MergeExcludes(persisted, recent)
	metrics.ExcludedTitlesCount.Observe(float64(len(excludes)))

	prompt := BuildPrompt(params, excludes)
	result, cost, err := g.invoker.Invoke(ctx, generationModel, prompt, ov)
	if err != nil {
		return nil, err
	}

	parsed, err := ParseCompletion(ProcessCompletion(result.Text))
	if err != nil {
		return nil, err
	}

	existing, err := g.recipes.FindByTitle(ctx, userID, parsed.Title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, DuplicateTitleError{Title: parsed.Title, Existing: existing}
	}

	record := &entity.RecipeRecord{
		ID:           uuid.NewString(),
		UserID:       userID,
		Recipe:       *parsed,
		InputTokens:  result.InputTokens,
		OutputTokens: result.OutputTokens,
		TotalCost:    cost.TotalCost,
	}
	if err := g.recipes.Save(ctx, record); err != nil {
		return nil, err
	}

	g.appendLog(ctx, result, cost, prompt)
	g.appendExcludedTitle(ctx, userID, excludes, version, parsed.Title)

	return &GenerateResult{
		RecipeID:     record.ID,
		Recipe:       parsed,
		InputTokens:  result.InputTokens,
		OutputTokens: result.OutputTokens,
		Cost:         cost,
	}, nil
}

// recentTitles loads the titles generated inside the recency window, through
// the cache when one is configured. Cache failures degrade to a direct read.
func (g *Generator) recentTitles(ctx context.Context, userID string) ([]string, error) {
	since := g.now().Add(-recentTitleWindow)
	if g.cache == nil {
		return g.recipes.RecentTitles(ctx, userID, since)
	}

	raw, err := g.cache.GetOrLoadSafe(ctx, recentTitlesKey(userID), recentTitlesTTL, func() (interface{}, error) {
		return g.recipes.RecentTitles(ctx, userID, since)
	})
	if err != nil {
		logger.Warn(ctx, "recent titles cache unavailable, reading directly", "user_id", userID, "error", err)
		return g.recipes.RecentTitles(ctx, userID, since)
	}

	var titles []string
	if err := json.Unmarshal(raw, &titles); err != nil {
		return nil, err
	}
	return titles, nil
}

// appendLog records the invocation for auditing. Failures are logged and
// swallowed: the recipe is already saved and must still reach the caller.
func (g *Generator) appendLog(ctx context.Context, result *llm.Result, cost llm.CostBreakdown, prompt string) {
	entry := &entity.InvocationLog{
		ID:            uuid.NewString(),
		ProviderModel: result.ProviderModel,
		Prompt:        prompt,
		Response:      result.Text,
		InputTokens:   result.InputTokens,
		OutputTokens:  result.OutputTokens,
		TotalTokens:   result.TotalTokens,
		InputCost:     cost.InputCost,
		OutputCost:    cost.OutputCost,
		TotalCost:     cost.TotalCost,
		ExecutionMs:   result.ExecutionMs,
	}
	if err := g.logs.Append(ctx, entry); err != nil {
		logger.Warn(ctx, "failed to append invocation log", "error", err)
	}
}

// appendExcludedTitle writes the new title into the persisted exclusion
// list under the version observed at load time, re-reading and retrying once
// on a concurrent update. The write is best-effort: the recent-title window
// covers a lost update until the next generation.
func (g *Generator) appendExcludedTitle(ctx context.Context, userID string, excludes []string, version int64, title string) {
	titles := MergeExcludes(excludes, []string{title})
	err := g.settings.SetExcludedTitles(ctx, userID, titles, version)
	if errors.As(err, &repository.ErrVersionConflict{}) {
		latest, latestVersion, readErr := g.settings.GetExcludedTitles(ctx, userID)
		if readErr != nil {
			logger.Warn(ctx, "failed to re-read excluded titles after conflict", "user_id", userID, "error", readErr)
			return
		}
		err = g.settings.SetExcludedTitles(ctx, userID, MergeExcludes(latest, []string{title}), latestVersion)
	}
	if err != nil {
		logger.Warn(ctx, "failed to persist excluded titles", "user_id", userID, "error", err)
		return
	}

	if g.cache != nil {
		if err := g.cache.Del(ctx, recentTitlesKey(userID)); err != nil {
			logger.Warn(ctx, "failed to invalidate recent titles cache", "user_id", userID, "error", err)
		}
	}
}

func recentTitlesKey(userID string) string {
	return "recipe:recent_titles:" + userID
}
