package parser

import (
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Vocabulary is the closed set of recognized technology tokens. Matching is
// plain substring containment, so short tokens like "C", "Go" or "REST"
// overmatch inside ordinary words. Known limitation of the heuristic, kept
// as-is for parity with the ingested data.
var Vocabulary = []string{
	"Python", "JavaScript", "TypeScript", "Java", "C++", "C", "Go", "Rust",
	"Django", "Flask", "FastAPI", "React", "Angular", "Vue", "Svelte", "Next.js", "Express",
	"Tailwind", "Bootstrap", "jQuery",
	"MongoDB", "PostgreSQL", "MySQL", "SQLite", "Redis", "Elasticsearch",
	"Docker", "Kubernetes", "Terraform", "Ansible", "GitHub Actions", "GitLab CI", "Jenkins",
	"Nginx", "Apache", "Heroku",
	"AWS", "GCP", "Azure", "Supabase", "Firebase", "Netlify", "Vercel", "Railway",
	"REST", "GraphQL", "gRPC", "WebSocket",
	"Power BI", "Tableau", "Pandas", "NumPy", "Scikit-learn", "TensorFlow", "PyTorch",
	"Matplotlib", "Excel", "Jupyter",
	"Git", "Bitbucket", "Figma", "CI/CD", "TDD", "OAuth", "JWT", "Postman", "Linux", "Shell", "WSL",
	"DSA", "Full-Stack", "Frontend", "Backend", "Microservices", "Agile", "Scrum", "NoSQL", "SQL",
	"Responsive Design", "SEO",
	"GATE", "LeetCode", "Codeforces", "HackerRank",
}

// DetectSkills returns every vocabulary token contained (case-insensitive)
// anywhere in text, deduplicated and sorted ascending.
func DetectSkills(text string) []string {
	lower := strings.ToLower(text)

	found := mapset.NewThreadUnsafeSet[string]()
	for _, tech := range Vocabulary {
		if strings.Contains(lower, strings.ToLower(tech)) {
			found.Add(tech)
		}
	}

	skills := found.ToSlice()
	sort.Strings(skills)
	return skills
}
