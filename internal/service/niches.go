package service

// Classification and monetization tables. These are construction-time
// configuration for the classifier and score services; nothing mutates them
// at runtime.

type subNiche struct {
	name     string
	keywords []string
}

type nicheDef struct {
	name     string
	keywords []string
	subs     []subNiche
}

// nicheTable drives the rule-based classifier. Order matters: when two
// niches score equally, the earlier entry wins.
var nicheTable = []nicheDef{
	{
		name: "finance",
		keywords: []string{
			"finance", "financial", "personal finance", "money", "invest",
			"investing", "stock", "stocks", "trading", "crypto",
			"bitcoin", "ethereum", "budget", "saving", "savings", "passive income",
			"dividend", "portfolio", "retirement", "wealth", "financial freedom",
			"credit card", "debt", "loan", "mortgage", "bank", "salary", "tax",
		},
		subs: []subNiche{
			{name: "cryptocurrency", keywords: []string{"crypto", "bitcoin", "ethereum", "altcoin", "blockchain", "defi", "nft", "solana"}},
			{name: "investing", keywords: []string{"invest", "stock", "stocks", "dividend", "portfolio", "etf", "index fund", "trading"}},
			{name: "personal finance", keywords: []string{"personal finance", "budget", "saving", "savings", "debt", "credit card", "money management", "frugal"}},
			{name: "real estate", keywords: []string{"real estate", "property", "rental", "mortgage", "house flipping", "landlord"}},
		},
	},
	{
		name: "technology",
		keywords: []string{
			"tech", "software", "coding", "programming", "developer", "computer",
			"laptop", "smartphone", "gadget", "review", "ai", "artificial intelligence",
			"machine learning", "app", "linux", "windows", "python", "javascript",
			"web development", "cybersecurity", "cloud", "database",
		},
		subs: []subNiche{
			{name: "programming", keywords: []string{"coding", "programming", "developer", "python", "javascript", "web development", "software engineer", "leetcode"}},
			{name: "artificial intelligence", keywords: []string{"ai", "artificial intelligence", "machine learning", "chatgpt", "neural network", "llm", "deep learning"}},
			{name: "gadgets", keywords: []string{"smartphone", "laptop", "gadget", "unboxing review", "iphone", "android", "headphones"}},
		},
	},
	{
		name: "business",
		keywords: []string{
			"business", "entrepreneur", "startup", "marketing", "ecommerce",
			"dropshipping", "side hustle", "freelance", "agency", "sales",
			"branding", "small business", "ceo", "productivity",
		},
		subs: []subNiche{
			{name: "digital marketing", keywords: []string{"marketing", "seo", "social media marketing", "ads", "copywriting", "email marketing"}},
			{name: "entrepreneurship", keywords: []string{"entrepreneur", "startup", "side hustle", "business idea", "founder"}},
			{name: "ecommerce", keywords: []string{"ecommerce", "dropshipping", "shopify", "amazon fba", "online store"}},
		},
	},
	{
		name: "education",
		keywords: []string{
			"education", "learn", "learning", "tutorial", "course", "study", "lesson", "explain",
			"explained", "how to", "guide", "tips", "school", "university", "exam",
			"math", "science", "history", "language",
		},
		subs: []subNiche{
			{name: "study skills", keywords: []string{"study", "exam", "notes", "student", "productivity study"}},
			{name: "language learning", keywords: []string{"language", "english", "spanish", "vocabulary", "grammar", "fluent"}},
		},
	},
	{
		name: "gaming",
		keywords: []string{
			"game", "gaming", "gameplay", "gamer", "playthrough", "walkthrough",
			"minecraft", "fortnite", "roblox", "esports", "speedrun", "console",
			"pc gaming", "twitch", "stream",
		},
		subs: []subNiche{
			{name: "minecraft", keywords: []string{"minecraft", "survival", "redstone", "smp"}},
			{name: "esports", keywords: []string{"esports", "tournament", "ranked", "competitive", "pro player"}},
		},
	},
	{
		name: "fitness",
		keywords: []string{
			"fitness", "workout", "gym", "exercise", "muscle", "weight loss",
			"cardio", "yoga", "diet", "protein", "bodybuilding", "calisthenics",
			"running", "health",
		},
		subs: []subNiche{
			{name: "weight loss", keywords: []string{"weight loss", "lose weight", "fat loss", "calorie deficit", "diet"}},
			{name: "bodybuilding", keywords: []string{"muscle", "bodybuilding", "hypertrophy", "bulking", "protein"}},
			{name: "yoga", keywords: []string{"yoga", "stretching", "flexibility", "meditation"}},
		},
	},
	{
		name: "cooking",
		keywords: []string{
			"recipe", "cooking", "cook", "baking", "bake", "food", "kitchen",
			"meal", "dinner", "breakfast", "dessert", "chef", "easy recipe",
			"air fryer", "vegan",
		},
		subs: []subNiche{
			{name: "baking", keywords: []string{"baking", "bake", "bread", "cake", "pastry", "sourdough"}},
			{name: "meal prep", keywords: []string{"meal prep", "healthy meal", "lunch ideas", "budget meals"}},
		},
	},
	{
		name: "sports",
		keywords: []string{
			"sports", "football", "soccer", "basketball", "cricket", "tennis",
			"highlights", "match", "league", "championship", "training", "skills",
			"nba", "nfl", "ipl", "world cup",
		},
		subs: []subNiche{
			{name: "cricket", keywords: []string{"cricket", "ipl", "odi", "t20", "wicket", "batting"}},
			{name: "football", keywords: []string{"football", "soccer", "premier league", "goal", "world cup", "champions league"}},
			{name: "basketball", keywords: []string{"basketball", "nba", "dunk", "three pointer"}},
		},
	},
	{
		name: "travel",
		keywords: []string{
			"travel", "trip", "vacation", "destination", "flight", "hotel",
			"backpacking", "itinerary", "visa", "tourist", "explore", "city guide",
			"van life", "digital nomad",
		},
		subs: []subNiche{
			{name: "budget travel", keywords: []string{"budget travel", "cheap flight", "backpacking", "hostel"}},
			{name: "van life", keywords: []string{"van life", "rv", "camper", "road trip"}},
		},
	},
	{
		name: "entertainment",
		keywords: []string{
			"entertainment", "funny", "comedy", "prank", "reaction", "celebrity", "movie", "series",
			"drama", "vlog", "challenge", "story time", "podcast", "interview",
		},
		subs: []subNiche{
			{name: "reactions", keywords: []string{"reaction", "reacts", "first time watching"}},
			{name: "commentary", keywords: []string{"commentary", "video essay", "drama", "explained channel"}},
		},
	},
	{
		name: "lifestyle",
		keywords: []string{
			"lifestyle", "routine", "morning routine", "minimalism", "self improvement",
			"motivation", "habits", "organization", "fashion", "beauty", "skincare",
			"home decor", "relationship",
		},
		subs: []subNiche{
			{name: "self improvement", keywords: []string{"self improvement", "motivation", "habits", "discipline", "dopamine"}},
			{name: "beauty", keywords: []string{"beauty", "skincare", "makeup", "haircare"}},
		},
	},
}

// lowConfidenceThreshold: below this cumulative score the classifier falls
// back to contextual heuristics instead of trusting keyword matches.
const lowConfidenceThreshold = 3

// subNicheRPM holds per-sub-niche RPM overrides (USD per 1000 views).
var subNicheRPM = map[string]float64{
	"cryptocurrency":          5.2,
	"investing":               4.9,
	"real estate":             4.8,
	"personal finance":        4.6,
	"digital marketing":       4.0,
	"artificial intelligence": 3.8,
	"programming":             3.4,
	"ecommerce":               4.1,
	"entrepreneurship":        3.9,
	"cricket":                 2.8,
	"weight loss":             2.4,
	"bodybuilding":            2.2,
	"yoga":                    2.1,
	"baking":                  1.9,
	"gadgets":                 3.0,
}

// mainNicheRPM holds baseline RPM per main niche.
var mainNicheRPM = map[string]float64{
	"finance":       4.5,
	"business":      4.2,
	"technology":    3.5,
	"education":     3.0,
	"lifestyle":     2.5,
	"travel":        2.2,
	"fitness":       2.0,
	"cooking":       1.8,
	"sports":        1.8,
	"gaming":        1.6,
	"entertainment": 1.5,
}

// Heuristic RPM estimation for niches absent from both tables: membership of
// the niche string in these term sets picks the estimate band.
var (
	highValueTerms = []string{"finance", "invest", "money", "insurance", "law", "legal", "software", "saas", "marketing", "business", "credit"}
	midValueTerms  = []string{"tech", "education", "career", "health", "course", "review", "tutorial", "productivity"}
	lowValueTerms  = []string{"gaming", "prank", "funny", "vlog", "reaction", "music", "kids", "meme"}
)

// nicheQueries is the static per-niche query fallback used when a hierarchy
// arrives without usable search keywords.
var nicheQueries = map[string][]string{
	"finance":       {"personal finance tips", "how to invest money", "passive income ideas"},
	"technology":    {"tech review", "programming tutorial", "best gadgets"},
	"business":      {"how to start a business", "online business ideas", "marketing strategy"},
	"education":     {"study tips", "learn online course", "explained simply"},
	"gaming":        {"gameplay walkthrough", "gaming tips", "best games"},
	"fitness":       {"home workout", "fitness tips", "how to lose weight"},
	"cooking":       {"easy recipes", "cooking tutorial", "meal ideas"},
	"sports":        {"sports highlights", "training drills", "match analysis"},
	"travel":        {"travel guide", "travel vlog", "trip itinerary"},
	"entertainment": {"funny moments", "reaction video", "podcast highlights"},
	"lifestyle":     {"daily routine", "self improvement tips", "minimalist lifestyle"},
}

// stopwords are ignored when computing the relevance ratio.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "how": {}, "what": {},
	"why": {}, "you": {}, "your": {}, "best": {}, "top": {}, "new": {},
	"this": {}, "that": {}, "from": {}, "are": {}, "can": {}, "get": {},
	"make": {}, "video": {}, "videos": {}, "guide": {}, "tips": {},
}

// offTopicTerms flag content categories that pollute keyword searches:
// music videos, trailers, unboxing hauls, kids' content and similar.
var offTopicTerms = []string{
	"official music video", "official video", "lyrics", "lyric video",
	"official trailer", "movie trailer", "teaser trailer", "full movie",
	"unboxing haul", "shopping haul",
	"nursery rhyme", "kids songs", "cartoon for kids", "cocomelon",
	"asmr", "satisfying video", "live stream replay",
}
