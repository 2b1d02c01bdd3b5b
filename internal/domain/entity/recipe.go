// Package entity 定义领域实体
package entity

import "time"

// Recipe 模型生成的食谱（与提示词约定的 JSON 结构一一对应）
type Recipe struct {
	Title        string       `json:"title"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions Instructions `json:"instructions"`
	Cuisine      string       `json:"cuisine"`
	Servings     int          `json:"servings"`
	PrepTime     int          `json:"prep_time"`
	CookTime     int          `json:"cook_time"`
	Macros       Macros       `json:"macronutrients_per_serving"`
}

// Ingredient 食材条目
type Ingredient struct {
	IngredientName string `json:"ingredient_name"`
	Quantity       string `json:"quantity"`
	Unit           string `json:"unit"`
}

// Instructions 分阶段的烹饪步骤
type Instructions struct {
	Prep    []string `json:"prep"`
	Cook    []string `json:"cook"`
	Serving []string `json:"serving"`
}

// Macros 每份宏量营养素
type Macros struct {
	Calories int   `json:"calories"`
	Protein  int   `json:"protein"`
	Fat      int   `json:"fat"`
	Carbs    Carbs `json:"carbs"`
}

// Carbs 碳水细分
type Carbs struct {
	Total        int    `json:"total"`
	DietaryFiber int    `json:"dietary fiber"`
	TotalSugars  Sugars `json:"total sugars"`
}

// Sugars 糖分细分
type Sugars struct {
	Total               int `json:"total"`
	IncludesAddedSugars int `json:"includes added sugars"`
}

// RecipeRecord 已持久化的用户食谱
type RecipeRecord struct {
	ID           string    `json:"recipe_id" gorm:"type:uuid;primaryKey"`
	UserID       string    `json:"user_id" gorm:"type:varchar(64);index;not null"`
	Recipe       Recipe    `json:"recipe" gorm:"serializer:json;type:jsonb;not null"`
	InputTokens  int       `json:"input_tokens" gorm:"not null;default:0"`
	OutputTokens int       `json:"output_tokens" gorm:"not null;default:0"`
	TotalCost    float64   `json:"total_cost" gorm:"type:numeric(12,6);not null;default:0"`
	IsLiked      bool      `json:"is_liked" gorm:"not null;default:false"`
	IsSaved      bool      `json:"is_saved" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}

func (RecipeRecord) TableName() string {
	return "user_recipes"
}
