package model

// seedRecords is the compiled-in post set shown when the store yields
// nothing. It is kept in the legacy field shape it was authored in and
// normalized once at startup.
var seedRecords = []Record{
	{
		ID:                1,
		Title:             "Getting Started with Ethical Hacking: A Student's Journey",
		Excerpt:           "My experience starting the cybersecurity program at Softwarica College and what I've learned so far about ethical hacking fundamentals.",
		Content:           "This is the full content of the first blog post...",
		LegacyAuthor:      "Prashant Khatri",
		LegacyPublishDate: "2024-01-15",
		LegacyReadTime:    "5 min read",
		Category:          "Education",
		Tags:              []string{"cybersecurity", "education", "beginner"},
		LegacyImage:       "https://images.unsplash.com/photo-1518770660439-4636190af475",
	},
	{
		ID:                2,
		Title:             "Understanding Network Security Basics",
		Excerpt:           "A comprehensive guide to network security fundamentals including firewalls, intrusion detection systems, and network monitoring.",
		Content:           "This is the full content of the second blog post...",
		LegacyAuthor:      "Prashant Khatri",
		LegacyPublishDate: "2024-01-20",
		LegacyReadTime:    "8 min read",
		Category:          "Technical",
		Tags:              []string{"networking", "security", "firewall"},
		LegacyImage:       "https://images.unsplash.com/photo-1461749280684-dccba630e2f6",
	},
	{
		ID:                3,
		Title:             "My First Python Security Tool",
		Excerpt:           "Building a simple password strength analyzer in Python - lessons learned and code snippets from my first security programming project.",
		Content:           "This is the full content of the third blog post...",
		LegacyAuthor:      "Prashant Khatri",
		LegacyPublishDate: "2024-02-01",
		LegacyReadTime:    "6 min read",
		Category:          "Projects",
		Tags:              []string{"python", "programming", "tools"},
		LegacyImage:       "https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5",
	},
	{
		ID:                4,
		Title:             "Cybersecurity Career Paths for Students",
		Excerpt:           "Exploring different career paths in cybersecurity and what skills are most important for students entering the field.",
		Content:           "This is the full content of the fourth blog post...",
		LegacyAuthor:      "Prashant Khatri",
		LegacyPublishDate: "2024-02-10",
		LegacyReadTime:    "7 min read",
		Category:          "Career",
		Tags:              []string{"career", "advice", "cybersecurity"},
		LegacyImage:       "https://images.unsplash.com/photo-1487058792275-0ad4aaf24ca7",
	},
}

var seedPosts []BlogPost

func init() {
	seedPosts = make([]BlogPost, len(seedRecords))
	for i, r := range seedRecords {
		seedPosts[i] = r.Normalize()
	}
}

// Seed returns a copy of the normalized fallback post list.
func Seed() []BlogPost {
	out := make([]BlogPost, len(seedPosts))
	copy(out, seedPosts)
	return out
}

// SeedByID returns the fallback post with the given id, if any.
func SeedByID(id int64) (*BlogPost, bool) {
	for _, p := range seedPosts {
		if p.ID == id {
			post := p
			return &post, true
		}
	}
	return nil, false
}
