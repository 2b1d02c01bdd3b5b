package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DataHandler 静态参考数据处理器（菜系、饮食、过敏原、食材）
type DataHandler struct{}

// NewDataHandler 创建参考数据处理器
func NewDataHandler() *DataHandler {
	return &DataHandler{}
}

// CuisineOption 菜系选项
type CuisineOption struct {
	Label string `json:"label"`
	Flag  string `json:"flag"`
}

var cuisines = []CuisineOption{
	{Label: "Surprise me", Flag: "🎲"},
	{Label: "American", Flag: "🇺🇸"},
	{Label: "Argentine", Flag: "🇦🇷"},
	{Label: "Brazilian", Flag: "🇧🇷"},
	{Label: "British", Flag: "🇬🇧"},
	{Label: "Caribbean", Flag: "🏝"},
	{Label: "Chinese", Flag: "🇨🇳"},
	{Label: "Dutch", Flag: "🇳🇱"},
	{Label: "Ethiopian", Flag: "🇪🇹"},
	{Label: "Filipino", Flag: "🇵🇭"},
	{Label: "French", Flag: "🇫🇷"},
	{Label: "German", Flag: "🇩🇪"},
	{Label: "Greek", Flag: "🇬🇷"},
	{Label: "Indian", Flag: "🇮🇳"},
	{Label: "Indonesian", Flag: "🇮🇩"},
	{Label: "Italian", Flag: "🇮🇹"},
	{Label: "Japanese", Flag: "🇯🇵"},
	{Label: "Korean", Flag: "🇰🇷"},
	{Label: "Lebanese", Flag: "🇱🇧"},
	{Label: "Mediterranean", Flag: "🥗"},
	{Label: "Mexican", Flag: "🇲🇽"},
	{Label: "Middle Eastern", Flag: "🌍"},
	{Label: "Moroccan", Flag: "🇲🇦"},
	{Label: "Peruvian", Flag: "🇵🇪"},
	{Label: "Russian", Flag: "🇷🇺"},
	{Label: "Spanish", Flag: "🇪🇸"},
	{Label: "Thai", Flag: "🇹🇭"},
	{Label: "Turkish", Flag: "🇹🇷"},
	{Label: "Uzbek", Flag: "🇺🇿"},
	{Label: "Vietnamese", Flag: "🇻🇳"},
}

var diets = []string{
	"No Specific Diet",
	"Keto",
	"Low-Carb",
	"Mediterranean",
	"Paleo",
	"Pescatarian",
	"Vegan",
	"Vegetarian",
}

var allergies = map[string][]string{
	"dairy":     {"milk", "cheese", "butter", "cream", "yogurt", "ice cream", "whey", "casein"},
	"eggs":      {"whole eggs", "egg whites", "egg yolks", "dried eggs", "egg powder"},
	"nuts":      {"peanuts", "peanut butter", "peanut oil", "peanut flour", "almonds", "walnuts", "pecans", "cashews", "pistachios", "macadamia nuts", "brazil nuts", "hazelnuts", "pine nuts"},
	"shellfish": {"shrimp", "crab", "lobster", "crayfish", "prawns"},
	"fish":      {"salmon", "tuna", "cod", "haddock", "tilapia", "trout", "halibut", "mahi-mahi", "anchovies", "sardines"},
	"soy":       {"soybeans", "tofu", "soy milk", "soy sauce", "tempeh", "edamame", "soy lecithin"},
	"wheat":     {"wheat flour", "bread", "pasta", "cereal", "baked goods", "crackers", "breadcrumbs", "wheat starch"},
	"sesame":    {"sesame seeds", "tahini", "sesame oil"},
	"sulfites":  {"dried fruit", "wine", "beer", "grape juice", "pickled foods", "shrimp", "corn syrup", "certain processed foods"},
	"mustard":   {"mustard seeds", "mustard powder", "mustard oil", "prepared mustard"},
	"lupin":     {"lupin flour", "lupin beans"},
	"gluten":    {"wheat", "barley", "rye", "spelt", "kamut", "triticale", "malt", "brewer's yeast"},
}

// groceryList 按货架分组的食材清单，响应时按组顺序扁平化
var groceryList = [][]string{
	{ // produce
		"acorn squash", "apples", "arugula", "artichokes", "asparagus", "avocado",
		"bananas", "basil", "beets", "bell peppers", "blackberries", "blueberries",
		"broccoli", "brussels sprouts", "butternut squash", "cabbage", "carrots",
		"cauliflower", "celery", "cherry tomatoes", "cherries", "cilantro",
		"cucumber", "corn", "dill", "eggplant", "fennel", "garlic", "ginger",
		"grape tomatoes", "grapes", "green beans", "green onions", "jalapeno peppers",
		"kale", "kiwi", "lemongrass", "lemons", "lettuce", "limes", "mango",
		"mint", "mushrooms", "nectarines", "onions", "papaya", "parsley",
		"parsnips", "peaches", "peas", "pineapple", "plums", "potatoes", "pumpkin",
		"radishes", "raspberries", "red onions", "rosemary", "sage", "shallots",
		"spinach", "spaghetti squash", "strawberries", "sweet potatoes", "thyme",
		"tomatoes", "turmeric", "turnips", "yellow squash", "zucchini",
	},
	{ // meat
		"bacon", "beef brisket", "beef ribs", "beef roast", "beef steak", "burger patties",
		"chicken breast", "chicken drumsticks", "chicken tenders", "chicken thighs",
		"chicken wings", "duck breast", "goat meat", "ground beef", "ground chicken",
		"ground lamb", "ground pork", "ground turkey", "ham", "lamb chops",
		"lamb roast", "lamb shanks", "pork chops", "pork ribs", "pork tenderloin",
		"prosciutto", "quail", "rabbit", "sausage", "turkey breast", "turkey thighs",
		"venison", "whole chicken", "whole duck", "whole turkey",
	},
	{ // seafood
		"anchovies", "clams", "cod", "crab", "halibut", "haddock", "lobster", "mahi-mahi",
		"mussels", "octopus", "oysters", "prawns", "salmon", "sardines", "scallops",
		"shrimp", "squid", "tilapia", "trout", "tuna",
	},
	{ // dairy and eggs
		"almond milk", "buttermilk", "butter", "coconut milk", "condensed milk",
		"cream", "eggs", "Greek yogurt", "half-and-half", "heavy cream", "kefir",
		"milk", "oat milk", "sour cream", "soy milk", "whipping cream", "yogurt",
	},
	{ // cheese
		"brie", "burrata", "camembert", "cheddar cheese", "cottage cheese",
		"cream cheese", "feta cheese", "gorgonzola", "goat cheese", "gouda",
		"havarti", "monterey jack", "mozzarella cheese", "paneer", "Parmesan cheese",
		"pecorino romano", "queso fresco", "ricotta cheese", "Swiss cheese",
	},
	{ // bakery
		"bagels", "baguette", "brownies", "cakes", "cookies", "croissants", "donuts",
		"focaccia", "flatbread", "hamburger buns", "muffins", "naan bread", "pastries",
		"pie crusts", "pita bread", "pizza dough", "rolls", "rye bread",
		"sourdough bread", "tortillas", "white bread", "whole wheat bread",
	},
	{ // pantry
		"allspice", "allulose", "almonds", "almond flour", "apple cider vinegar", "baking powder",
		"baking soda", "balsamic vinegar", "brazil nuts", "breadcrumbs", "brown rice",
		"brown sugar", "buckwheat flour", "canned beans", "canned salmon", "canned sardines",
		"canned soup", "canned tomatoes", "canned tuna", "cashews", "cayenne pepper",
		"cavatappi", "chia seeds", "chickpeas", "chili powder", "cinnamon powder",
		"cloves", "coconut flour", "coconut oil", "coconut sugar", "conchiglie", "corn flour",
		"corn meal", "corn starch", "corn syrup", "couscous", "crushed red pepper",
		"cumin", "dried basil", "dried fruit", "dried oregano", "dried rosemary",
		"dried sage", "dried thyme", "farfalle", "fettuccine", "flax seeds", "flour",
		"fusilli", "garlic powder", "ginger powder", "granola", "hazelnuts", "honey",
		"hot sauce", "jam", "jasmine rice", "ketchup", "kidney beans", "lentils",
		"linguine", "macadamia nuts", "macaroni", "maple syrup", "mayonnaise",
		"mustard", "noodles", "nutmeg", "oat flour", "oats", "olive oil", "onion powder",
		"orzo", "pasta", "pasta sauce", "peanut butter", "peanuts", "pecans", "penne",
		"pinto beans", "pistachios", "popcorn", "powdered sugar", "pumpkin seeds",
		"quinoa", "ramen", "red wine vinegar", "rice", "rice flour", "rice noodles", "rigatoni",
		"rye flour", "salt", "seeds", "soba noodles", "soy sauce", "spaghetti", "spices",
		"stock", "sugar", "sunflower seeds", "tapioca flour", "tomato paste", "tortellini",
		"turmeric powder", "udon noodles", "vegetable oil", "vinegar", "walnuts", "white rice",
		"white wine vinegar", "wild rice", "whole wheat flour", "Worcestershire sauce", "ziti",
	},
	{ // frozen
		"frozen blackberries", "frozen blueberries", "frozen bread", "frozen broccoli",
		"frozen carrots", "frozen cherries", "frozen corn", "frozen desserts",
		"frozen fish fillets", "frozen french fries", "frozen fruit", "frozen green beans",
		"frozen hash browns", "frozen mango", "frozen mixed vegetables",
		"frozen pancakes", "frozen pastries", "frozen peaches", "frozen peas",
		"frozen pizza", "frozen potatoes", "frozen raspberries", "frozen seafood",
		"frozen spinach", "frozen strawberries", "frozen waffles", "frozen yogurt",
		"ice cream", "sorbet",
	},
	{ // international
		"black bean paste", "bonito flakes", "cardamom", "caraway seeds", "cinnamon",
		"curry leaves", "curry paste", "curry powder", "dashi powder", "dashi stock",
		"dried mushrooms", "dumpling wrappers", "fenugreek", "fish sauce",
		"fennel seeds", "garam masala", "gochujang", "ghee", "harissa",
		"hoisin sauce", "kefir", "kimchi", "kombu", "lime leaves",
		"matcha powder", "mirin", "miso paste", "mochi", "monk fruit extract", "nori",
		"ponzu sauce", "pocky sticks", "ramune soda", "sesame oil", "sesame seeds",
		"spring roll wrappers", "sriracha", "star anise", "sumac",
		"tabbouleh", "tamarind paste", "tandoori masala", "tom yum paste",
		"wasabi", "za'atar",
	},
}

var ingredients = flattenGroceryList()

func flattenGroceryList() []string {
	var out []string
	for _, group := range groceryList {
		for _, item := range group {
			out = append(out, strings.ToUpper(item[:1])+item[1:])
		}
	}
	return out
}

// Cuisines 返回菜系列表
func (h *DataHandler) Cuisines(c *gin.Context) {
	c.JSON(http.StatusOK, cuisines)
}

// Diets 返回饮食方式列表
func (h *DataHandler) Diets(c *gin.Context) {
	c.JSON(http.StatusOK, diets)
}

// Allergies 返回过敏原分组
func (h *DataHandler) Allergies(c *gin.Context) {
	c.JSON(http.StatusOK, allergies)
}

// Ingredients 返回食材清单
func (h *DataHandler) Ingredients(c *gin.Context) {
	c.JSON(http.StatusOK, ingredients)
}
