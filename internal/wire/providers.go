// Package wire 提供依赖注入配置
package wire

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	openai "github.com/sashabaranov/go-openai"

	"recipe-ai-api/internal/config"
	"recipe-ai-api/internal/infrastructure/llm"
	"recipe-ai-api/internal/infrastructure/persistence/postgres"
	"recipe-ai-api/internal/infrastructure/persistence/redis"
)

// ProvidePostgresClient 提供 PostgreSQL 客户端并执行迁移
func ProvidePostgresClient(cfg *config.Config) (*postgres.Client, func(), error) {
	client, err := postgres.NewClient(&cfg.Database.Postgres)
	if err != nil {
		return nil, nil, err
	}
	if err := client.AutoMigrate(); err != nil {
		client.Close()
		return nil, nil, err
	}
	cleanup := func() {
		client.Close()
	}
	return client, cleanup, nil
}

// ProvideRedisClient 提供 Redis 客户端
func ProvideRedisClient(cfg *config.Config) (*redis.Client, func(), error) {
	client, err := redis.NewClient(&cfg.Cache.Redis)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		client.Close()
	}
	return client, cleanup, nil
}

// ProvideOpenAIClient 提供 OpenAI 客户端
func ProvideOpenAIClient(cfg *config.Config) *openai.Client {
	return llm.NewOpenAIClient(&cfg.LLM.OpenAI)
}

// ProvideBedrockClient 提供 AWS Bedrock 运行时客户端
func ProvideBedrockClient(ctx context.Context, cfg *config.Config) (*bedrockruntime.Client, error) {
	return llm.NewBedrockClient(ctx, &cfg.LLM.Bedrock)
}

// ProvideRegistry 提供模型注册表
func ProvideRegistry(cfg *config.Config) *llm.Registry {
	return llm.NewRegistry(cfg.LLM.Assistant.AssistantID)
}

// ProvideInvoker 提供模型调用编排器
// OpenAI 客户端同时充当 Chat 与 Assistant 两个角色
func ProvideInvoker(cfg *config.Config, registry *llm.Registry, chat *openai.Client, bedrock *bedrockruntime.Client) *llm.Invoker {
	return llm.NewInvoker(registry, chat, bedrock, chat, &cfg.LLM.Assistant)
}
