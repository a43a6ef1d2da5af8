// folio - personal portfolio AI assistant backend
// License: MIT

package portfolio

var defaultProjects = []Project{
	{
		ID:          "neural-chat",
		Name:        "Neural Chat Platform",
		Description: "Conversational AI platform with streaming responses, tool calling and generative UI cards.",
		Category:    CategoryAI,
		Tags:        []string{"llm", "streaming", "generative-ui"},
		GithubURL:   "https://github.com/simonedm/neural-chat",
		DemoURL:     "https://chat.simonedm.dev",
		Image:       "/images/projects/neural-chat.webp",
		Status:      StatusCompleted,
		Year:        2025,
		Technologies: []string{
			"Go", "OpenAI API", "Server-Sent Events", "WebSocket",
		},
		Features: []string{
			"Token-level streaming with inline tool invocations",
			"Voice mode with realtime transcription",
		},
		Outcomes: []string{"Sub-second first token latency in production"},
		TeamSize: 1,
	},
	{
		ID:          "vision-tagger",
		Name:        "Vision Tagger",
		Description: "Batch image classification and tagging pipeline for photo archives.",
		Category:    CategoryAI,
		Tags:        []string{"computer-vision", "pipeline"},
		GithubURL:   "https://github.com/simonedm/vision-tagger",
		Image:       "/images/projects/vision-tagger.webp",
		Status:      StatusCompleted,
		Year:        2024,
		Technologies: []string{
			"Go", "CLIP embeddings", "PostgreSQL",
		},
		TeamSize: 2,
	},
	{
		ID:          "chainledger",
		Name:        "ChainLedger",
		Description: "On-chain event indexer with a queryable REST facade for NFT marketplaces.",
		Category:    CategoryWeb3,
		Tags:        []string{"ethereum", "indexer", "rest"},
		GithubURL:   "https://github.com/simonedm/chainledger",
		Image:       "/images/projects/chainledger.webp",
		Status:      StatusCompleted,
		Year:        2023,
		Technologies: []string{"Go", "go-ethereum", "Redis"},
		Challenges:   []string{"Reorg-safe indexing without full archive nodes"},
		TeamSize:     3,
	},
	{
		ID:          "wallet-lens",
		Name:        "Wallet Lens",
		Description: "Portfolio analytics dashboard for multi-chain wallets.",
		Category:    CategoryWeb3,
		Tags:        []string{"defi", "analytics"},
		DemoURL:     "https://walletlens.simonedm.dev",
		Image:       "/images/projects/wallet-lens.webp",
		Status:      StatusInProgress,
		Year:        2025,
		TeamSize:    1,
	},
	{
		ID:          "bookwise",
		Name:        "Bookwise",
		Description: "Full-stack reading tracker with social shelves and review feeds.",
		Category:    CategoryFullstack,
		Tags:        []string{"saas", "social"},
		GithubURL:   "https://github.com/simonedm/bookwise",
		DemoURL:     "https://bookwise.simonedm.dev",
		Image:       "/images/projects/bookwise.webp",
		Status:      StatusCompleted,
		Year:        2024,
		Technologies: []string{"Next.js", "Go", "PostgreSQL"},
		TeamSize:     2,
	},
	{
		ID:          "formforge",
		Name:        "FormForge",
		Description: "Schema-driven form builder with validation and export pipelines.",
		Category:    CategoryFullstack,
		Tags:        []string{"forms", "json-schema"},
		GithubURL:   "https://github.com/simonedm/formforge",
		Image:       "/images/projects/formforge.webp",
		Status:      StatusCompleted,
		Year:        2023,
		TeamSize:    1,
	},
	{
		ID:          "gotrace",
		Name:        "gotrace",
		Description: "CLI flame-graph profiler wrapper with diffable snapshots for CI.",
		Category:    CategoryTools,
		Tags:        []string{"cli", "profiling", "ci"},
		GithubURL:   "https://github.com/simonedm/gotrace",
		Image:       "/images/projects/gotrace.webp",
		Status:      StatusCompleted,
		Year:        2024,
		TeamSize:    1,
	},
	{
		ID:          "envdiff",
		Name:        "envdiff",
		Description: "Detects configuration drift between deployment environments.",
		Category:    CategoryTools,
		Tags:        []string{"cli", "devops"},
		GithubURL:   "https://github.com/simonedm/envdiff",
		Image:       "/images/projects/envdiff.webp",
		Status:      StatusPlanned,
		Year:        2026,
		TeamSize:    1,
	},
}

var defaultSkills = []Skill{
	{Name: "Go", Level: 95, Category: "backend"},
	{Name: "PostgreSQL", Level: 85, Category: "backend"},
	{Name: "Redis", Level: 80, Category: "backend"},
	{Name: "gRPC", Level: 75, Category: "backend"},
	{Name: "TypeScript", Level: 90, Category: "frontend"},
	{Name: "React", Level: 88, Category: "frontend"},
	{Name: "Next.js", Level: 85, Category: "frontend"},
	{Name: "Tailwind CSS", Level: 80, Category: "frontend"},
	{Name: "LLM Integration", Level: 90, Category: "ai"},
	{Name: "Prompt Engineering", Level: 85, Category: "ai"},
	{Name: "Vector Search", Level: 75, Category: "ai"},
	{Name: "Solidity", Level: 70, Category: "web3"},
	{Name: "Ethers.js", Level: 72, Category: "web3"},
	{Name: "Docker", Level: 85, Category: "devops"},
	{Name: "Kubernetes", Level: 70, Category: "devops"},
	{Name: "GitHub Actions", Level: 82, Category: "devops"},
}

var defaultContact = Contact{
	Email: "simone@example.com",
	Social: map[string]string{
		"github":   "https://github.com/simonedm",
		"linkedin": "https://linkedin.com/in/simonedm",
		"twitter":  "https://twitter.com/simonedm",
	},
	Availability: "Open to freelance and full-time opportunities from March 2026.",
}
