package catalog

// Built-in catalog, used when no catalog file is configured.

func defaultCatalog() *Catalog {
	return &Catalog{
		Categories: map[string][]string{
			"ai_ml": {
				"artificial intelligence", "machine learning", "deep learning", "neural network",
				"tensorflow", "pytorch", "keras", "scikit-learn", "opencv", "nlp", "computer vision",
				"transformer", "bert", "gpt", "llm", "chatgpt", "openai", "anthropic", "claude",
				"reinforcement learning", "supervised learning", "unsupervised learning",
				"regression", "classification", "clustering", "pandas", "numpy", "jupyter",
			},
			"frameworks": {
				"react", "vue", "angular", "svelte", "next.js", "nuxt", "django", "flask", "fastapi",
				"express", "spring", "laravel", "rails", "asp.net", "blazor", "flutter", "swiftui",
				"jetpack compose", "tailwind", "bootstrap", "material ui", "ant design",
			},
			"languages": {
				"python", "javascript", "typescript", "rust", "golang", "java", "c++", "c#", "php",
				"ruby", "swift", "kotlin", "scala", "haskell", "elixir", "dart", "matlab",
				"sql", "html", "css", "sass", "webpack", "vite", "babel",
			},
			"tools": {
				"docker", "kubernetes", "k8s", "terraform", "ansible", "jenkins", "gitlab", "github",
				"bitbucket", "aws", "azure", "gcp", "google cloud", "vercel", "netlify", "heroku",
				"digitalocean", "linode", "nginx", "apache", "redis", "postgresql", "mysql",
				"mongodb", "elasticsearch", "kafka", "rabbitmq", "graphql", "rest api",
			},
			"concepts": {
				"microservices", "serverless", "devops", "ci/cd", "cicd", "agile", "scrum",
				"tdd", "unit testing", "integration testing", "code review",
				"refactoring", "technical debt", "scalability", "performance", "optimization",
				"security", "authentication", "authorization", "oauth", "jwt", "encryption",
				"blockchain", "web3", "cryptocurrency", "smart contracts",
			},
			"platforms": {
				"firebase", "supabase", "airtable", "notion", "slack", "discord", "telegram",
				"webhook", "saas", "paas", "iaas",
			},
		},
		Sources: map[string]Source{
			"reddit": {
				Related: map[string][]string{
					"ai":              {"artificial", "machinelearning", "singularity", "deeplearning"},
					"python":          {"learnpython", "pythontips", "django", "flask"},
					"javascript":      {"learnjavascript", "node", "reactjs", "vuejs", "angular"},
					"webdev":          {"web_design", "webdevelopment", "frontend", "backend"},
					"machinelearning": {"learnmachinelearning", "deeplearning", "computervision"},
					"datascience":     {"learndatascience", "datasets", "dataisbeautiful"},
					"cybersecurity":   {"netsec", "hacking", "privacy"},
					"blockchain":      {"cryptocurrency", "bitcoin", "ethereum", "cryptotechnology"},
					"cloud":           {"aws", "azure", "googlecloud", "devops", "sysadmin"},
					"mobile":          {"androiddev", "iosdev", "reactnative", "flutterdev"},
					"gamedev":         {"unity3d", "unrealengine", "gamedevelopment"},
					"database":        {"sql", "nosql", "mongodb", "postgresql"},
					"devops":          {"docker", "kubernetes", "aws", "azure"},
				},
				Fallbacks: []string{"technology", "programming"},
			},
		},
	}
}
