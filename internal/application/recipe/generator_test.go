package recipe

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-ai-api/internal/domain/entity"
	"recipe-ai-api/internal/domain/repository"
	"recipe-ai-api/internal/infrastructure/llm"
	apperrors "recipe-ai-api/pkg/errors"
)

type fakeRecipeRepo struct {
	saved        []*entity.RecipeRecord
	byTitle      map[string]*entity.RecipeRecord
	recentTitles []string
}

func (f *fakeRecipeRepo) Save(_ context.Context, record *entity.RecipeRecord) error {
	f.saved = append(f.saved, record)
	return nil
}

func (f *fakeRecipeRepo) FindByTitle(_ context.Context, _, title string) (*entity.RecipeRecord, error) {
	return f.byTitle[title], nil
}

func (f *fakeRecipeRepo) RecentTitles(_ context.Context, _ string, _ time.Time) ([]string, error) {
	return f.recentTitles, nil
}

type fakeSettingsRepo struct {
	titles  []string
	version int64

	written        [][]string
	conflictOnce   bool
	conflictsFired int
}

func (f *fakeSettingsRepo) GetExcludedTitles(context.Context, string) ([]string, int64, error) {
	return f.titles, f.version, nil
}

func (f *fakeSettingsRepo) SetExcludedTitles(_ context.Context, _ string, titles []string, expectedVersion int64) error {
	if f.conflictOnce && f.conflictsFired == 0 {
		f.conflictsFired++
		f.version++
		return repository.ErrVersionConflict{}
	}
	if expectedVersion != f.version {
		return repository.ErrVersionConflict{}
	}
	f.titles = titles
	f.version++
	f.written = append(f.written, titles)
	return nil
}

type fakeLogRepo struct {
	entries []*entity.InvocationLog
}

func (f *fakeLogRepo) Append(_ context.Context, log *entity.InvocationLog) error {
	f.entries = append(f.entries, log)
	return nil
}

func (f *fakeLogRepo) List(context.Context, int, int) ([]*entity.InvocationLog, error) {
	return f.entries, nil
}

type fakeInvoker struct {
	result     *llm.Result
	cost       llm.CostBreakdown
	err        error
	lastPrompt string
	lastModel  string
}

func (f *fakeInvoker) Invoke(_ context.Context, model, prompt string, _ llm.Overrides) (*llm.Result, llm.CostBreakdown, error) {
	f.lastModel = model
	f.lastPrompt = prompt
	if f.err != nil {
		return nil, llm.CostBreakdown{}, f.err
	}
	return f.result, f.cost, nil
}

func newTestGenerator(recipes *fakeRecipeRepo, settings *fakeSettingsRepo, logs *fakeLogRepo, invoker *fakeInvoker) *Generator {
	return NewGenerator(recipes, settings, logs, invoker, nil)
}

func successfulInvoker() *fakeInvoker {
	return &fakeInvoker{
		result: &llm.Result{
			Text:          "```json\n" + sampleRecipeJSON + "\n```",
			ProviderModel: "gpt-4o-2024-08-06",
			InputTokens:   100,
			OutputTokens:  50,
			TotalTokens:   150,
			ExecutionMs:   42,
		},
		cost: llm.CostBreakdown{InputCost: 0.00025, OutputCost: 0.0005, TotalCost: 0.00075},
	}
}

func TestGenerateHappyPath(t *testing.T) {
	recipes := &fakeRecipeRepo{byTitle: map[string]*entity.RecipeRecord{}}
	settings := &fakeSettingsRepo{titles: []string{"Old Favorite"}}
	logs := &fakeLogRepo{}
	invoker := successfulInvoker()
	gen := newTestGenerator(recipes, settings, logs, invoker)

	res, err := gen.Generate(context.Background(), "user-1", sampleParameters(), llm.Overrides{})
	require.NoError(t, err)
	assert.NotEmpty(t, res.RecipeID)
	assert.Equal(t, "Lentil Stew", res.Recipe.Title)
	assert.Equal(t, 100, res.InputTokens)
	assert.Equal(t, 50, res.OutputTokens)
	assert.Equal(t, 0.00075, res.Cost.TotalCost)

	assert.Equal(t, "gpt-4", invoker.lastModel)
	assert.Contains(t, invoker.lastPrompt, `["Old Favorite"]`)

	require.Len(t, recipes.saved, 1)
	assert.Equal(t, "user-1", recipes.saved[0].UserID)
	assert.Equal(t, 0.00075, recipes.saved[0].TotalCost)

	require.Len(t, logs.entries, 1)
	assert.Equal(t, "gpt-4o-2024-08-06", logs.entries[0].ProviderModel)
	assert.Equal(t, int64(42), logs.entries[0].ExecutionMs)

	// new title appended to the persisted exclusion list
	require.Len(t, settings.written, 1)
	assert.Equal(t, []string{"Old Favorite", "Lentil Stew"}, settings.written[0])
}

func TestGenerateMergesRecentTitlesIntoPrompt(t *testing.T) {
	recipes := &fakeRecipeRepo{
		byTitle:      map[string]*entity.RecipeRecord{},
		recentTitles: []string{"Yesterday Soup"},
	}
	settings := &fakeSettingsRepo{titles: []string{"Old Favorite", "Yesterday Soup"}}
	invoker := successfulInvoker()
	gen := newTestGenerator(recipes, settings, &fakeLogRepo{}, invoker)

	_, err := gen.Generate(context.Background(), "user-1", sampleParameters(), llm.Overrides{})
	require.NoError(t, err)
	assert.Contains(t, invoker.lastPrompt, `["Old Favorite","Yesterday Soup"]`)
}

func TestGenerateDuplicateTitle(t *testing.T) {
	existing := &entity.RecipeRecord{ID: "existing-id", UserID: "user-1"}
	recipes := &fakeRecipeRepo{byTitle: map[string]*entity.RecipeRecord{"Lentil Stew": existing}}
	settings := &fakeSettingsRepo{}
	gen := newTestGenerator(recipes, settings, &fakeLogRepo{}, successfulInvoker())

	_, err := gen.Generate(context.Background(), "user-1", sampleParameters(), llm.Overrides{})
	require.Error(t, err)

	var dup DuplicateTitleError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Lentil Stew", dup.Title)
	assert.Same(t, existing, dup.Existing)

	// rejected recipe is not persisted and the exclusion list is untouched
	assert.Empty(t, recipes.saved)
	assert.Empty(t, settings.written)
}

func TestGenerateTruncatedCompletion(t *testing.T) {
	invoker := &fakeInvoker{result: &llm.Result{Text: `{"title": "Lentil`}}
	gen := newTestGenerator(&fakeRecipeRepo{}, &fakeSettingsRepo{}, &fakeLogRepo{}, invoker)

	_, err := gen.Generate(context.Background(), "user-1", sampleParameters(), llm.Overrides{})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeIncompleteResponse))
}

func TestGenerateInvalidParameters(t *testing.T) {
	gen := newTestGenerator(&fakeRecipeRepo{}, &fakeSettingsRepo{}, &fakeLogRepo{}, successfulInvoker())

	_, err := gen.Generate(context.Background(), "user-1", Parameters{}, llm.Overrides{})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidParam))
}

func TestGenerateRetriesExclusionWriteOnConflict(t *testing.T) {
	recipes := &fakeRecipeRepo{byTitle: map[string]*entity.RecipeRecord{}}
	settings := &fakeSettingsRepo{titles: []string{"Old Favorite"}, conflictOnce: true}
	gen := newTestGenerator(recipes, settings, &fakeLogRepo{}, successfulInvoker())

	_, err := gen.Generate(context.Background(), "user-1", sampleParameters(), llm.Overrides{})
	require.NoError(t, err)

	assert.Equal(t, 1, settings.conflictsFired)
	require.Len(t, settings.written, 1)
	assert.Contains(t, settings.written[0], "Lentil Stew")
}
