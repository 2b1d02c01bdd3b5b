//go:build wireinject
// +build wireinject

// Package wire 提供依赖注入配置
package wire

import (
	"context"

	"github.com/google/wire"

	"recipe-ai-api/internal/application/recipe"
	"recipe-ai-api/internal/application/sandbox"
	"recipe-ai-api/internal/config"
	"recipe-ai-api/internal/domain/repository"
	"recipe-ai-api/internal/infrastructure/llm"
	"recipe-ai-api/internal/infrastructure/persistence/postgres"
	"recipe-ai-api/internal/infrastructure/persistence/redis"
	"recipe-ai-api/internal/interfaces/http/handler"
	"recipe-ai-api/internal/interfaces/http/middleware"
	"recipe-ai-api/internal/interfaces/http/router"
)

// InitializeApp 初始化整个应用（带路由器）
func InitializeApp(ctx context.Context, cfg *config.Config) (*router.Router, func(), error) {
	wire.Build(
		RepoSet,
		RedisSet,
		LLMSet,
		RouterSet,
	)
	return nil, nil, nil
}

// PostgresSet PostgreSQL 提供者集合
var PostgresSet = wire.NewSet(
	ProvidePostgresClient,
	postgres.NewRecipeRepository,
	postgres.NewSettingsRepository,
	postgres.NewInvocationLogRepository,
)

// RepoSet 整合了具体实现与接口绑定的集合
var RepoSet = wire.NewSet(
	PostgresSet,
	// 接口绑定
	wire.Bind(new(repository.RecipeRepository), new(*postgres.RecipeRepository)),
	wire.Bind(new(repository.SettingsRepository), new(*postgres.SettingsRepository)),
	wire.Bind(new(repository.InvocationLogRepository), new(*postgres.InvocationLogRepository)),
)

// RedisSet Redis 提供者集合
var RedisSet = wire.NewSet(
	ProvideRedisClient,
	redis.NewCache,
	redis.NewRateLimiter,
	wire.Bind(new(recipe.TitlesCache), new(*redis.Cache)),
	wire.Bind(new(middleware.RateLimiter), new(*redis.RateLimiter)),
)

// LLMSet 模型调用层提供者集合
var LLMSet = wire.NewSet(
	ProvideOpenAIClient,
	ProvideBedrockClient,
	ProvideRegistry,
	ProvideInvoker,
	wire.Bind(new(recipe.ModelInvoker), new(*llm.Invoker)),
	wire.Bind(new(sandbox.ModelInvoker), new(*llm.Invoker)),
)

// RouterSet 路由器提供者集合
var RouterSet = wire.NewSet(
	recipe.NewGenerator,
	sandbox.NewService,
	handler.NewRecipeHandler,
	handler.NewSandboxHandler,
	handler.NewTokenHandler,
	handler.NewDataHandler,
	handler.NewHealthHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)
