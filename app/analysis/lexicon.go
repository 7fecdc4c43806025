package analysis

// Valence lexicon for the sentiment scorer. Ratings follow the usual
// lexicon convention of roughly -4 (extremely negative) to +4 (extremely
// positive). Loaded once, never mutated at runtime.

var valenceLexicon = map[string]float64{
	// positive
	"amazing": 2.8, "awesome": 3.1, "beautiful": 2.9, "best": 3.2,
	"better": 1.9, "breakthrough": 2.6, "brilliant": 2.8, "celebrate": 2.7,
	"clean": 1.7, "clever": 2.0, "convenient": 1.6, "cool": 1.3,
	"correct": 1.8, "delight": 2.9, "delighted": 3.1, "easy": 1.9,
	"effective": 2.1, "efficient": 2.2, "elegant": 2.1, "enjoy": 2.2,
	"enjoyed": 2.3, "excellent": 2.7, "excited": 2.4, "exciting": 2.2,
	"fantastic": 2.6, "fast": 1.3, "favorite": 2.0, "fix": 1.1,
	"fixed": 1.4, "free": 1.8, "fun": 2.3, "glad": 2.0,
	"good": 1.9, "great": 3.1, "happy": 2.7, "helpful": 1.9,
	"impressive": 2.3, "improve": 1.9, "improved": 2.1, "improvement": 1.6,
	"incredible": 2.4, "innovative": 1.9, "interesting": 1.7, "intuitive": 1.8,
	"like": 1.5, "love": 3.2, "loved": 2.9, "nice": 1.8,
	"optimistic": 1.6, "perfect": 2.7, "pleased": 2.1, "powerful": 1.7,
	"promising": 1.6, "recommend": 1.6, "reliable": 1.9, "rich": 2.0,
	"robust": 1.7, "secure": 1.5, "simple": 1.3, "smart": 1.8,
	"smooth": 1.5, "solid": 1.5, "stable": 1.3, "strong": 2.3,
	"succeed": 2.3, "success": 2.7, "successful": 2.6, "super": 2.9,
	"superior": 2.2, "thanks": 1.9, "thrilled": 3.0, "useful": 1.9,
	"valuable": 2.1, "win": 2.8, "winner": 2.8, "wonderful": 2.7,
	"works": 1.2, "wow": 2.8, "yes": 1.7,

	// negative
	"abandon": -1.9, "abandoned": -2.1, "angry": -2.3, "annoying": -1.9,
	"awful": -2.0, "bad": -2.5, "breach": -2.0, "broke": -1.6,
	"broken": -2.0, "bug": -1.6, "buggy": -2.1, "catastrophe": -3.1,
	"complain": -1.6, "complaint": -1.6, "confusing": -1.5, "crash": -1.9,
	"crashed": -2.0, "critical": -1.3, "danger": -2.4, "dangerous": -2.4,
	"dead": -2.9, "deprecated": -1.2, "disappointed": -2.2, "disappointing": -2.2,
	"disaster": -3.1, "dislike": -1.6, "down": -1.1, "error": -1.7,
	"exploit": -1.7, "fail": -2.5, "failed": -2.3, "failure": -2.6,
	"fake": -2.1, "fear": -2.2, "flaw": -1.8, "flawed": -2.0,
	"fraud": -2.8, "frustrated": -2.1, "frustrating": -2.1, "hack": -1.3,
	"hacked": -2.2, "hate": -2.7, "hated": -2.6, "horrible": -2.5,
	"hurt": -2.4, "insecure": -1.7, "lag": -1.3, "layoff": -2.0,
	"layoffs": -2.0, "lose": -2.1, "loss": -1.9, "lost": -1.4,
	"malware": -2.5, "mediocre": -1.3, "mess": -1.8, "miss": -1.1,
	"mistake": -1.9, "obsolete": -1.3, "outage": -2.1,
	"outdated": -1.2, "pain": -2.3, "painful": -2.3, "poor": -2.1,
	"problem": -1.7, "regression": -1.4, "reject": -1.7, "rejected": -1.9,
	"risk": -1.5, "sad": -2.1, "scam": -2.6, "scared": -2.2,
	"slow": -1.4, "sorry": -1.1, "struggle": -1.9, "struggling": -2.0,
	"stupid": -2.4, "terrible": -2.1, "threat": -1.9, "trouble": -1.8,
	"ugly": -2.2, "unreliable": -2.0, "unstable": -1.7, "unusable": -2.4,
	"useless": -1.9, "vulnerability": -1.8, "vulnerable": -1.6, "waste": -1.9,
	"weak": -1.9, "worse": -2.1, "worst": -3.1, "wrong": -2.1,
}

// Degree modifiers scale the valence of the word that follows. Context
// scanning works token by token, so every key must be a single word.
var boosterIncrements = map[string]float64{
	"absolutely": 0.293, "completely": 0.293, "extremely": 0.293,
	"hugely": 0.293, "incredibly": 0.293, "really": 0.293,
	"remarkably": 0.293, "so": 0.293, "totally": 0.293,
	"very": 0.293, "highly": 0.293, "particularly": 0.293,

	"almost": -0.293, "barely": -0.293, "hardly": -0.293,
	"kinda": -0.293, "marginally": -0.293, "occasionally": -0.293,
	"partly": -0.293, "slightly": -0.293, "somewhat": -0.293,
	"sorta": -0.293,
}

var negationWords = map[string]bool{
	"not": true, "no": true, "never": true, "neither": true, "nor": true,
	"nothing": true, "nowhere": true, "none": true, "cannot": true,
	"cant": true, "can't": true, "dont": true, "don't": true,
	"doesnt": true, "doesn't": true, "didnt": true, "didn't": true,
	"isnt": true, "isn't": true, "wasnt": true, "wasn't": true,
	"wont": true, "won't": true, "wouldnt": true, "wouldn't": true,
	"shouldnt": true, "shouldn't": true, "couldnt": true, "couldn't": true,
	"aint": true, "ain't": true, "without": true, "rarely": true,
	"seldom": true, "despite": true,
}
