package model

import "time"

func strPtr(s string) *string { return &s }

// parseSeedTime accepts the date-only format the seed set was authored with,
// falling back to RFC3339 for store records serialized through Record.
func parseSeedTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

// seedRecords is the compiled-in project set shown when the store yields
// nothing. It is kept in the legacy field shape it was authored in and
// normalized once at startup.
var seedRecords = []Record{
	{
		ID:              "1",
		Title:           "Advanced SQL Injection Scanner",
		Description:     "Automated tool for detecting SQL injection vulnerabilities with advanced payload generation.",
		Category:        CategoryTools,
		LegacyTechStack: []string{"Python", "SQLAlchemy", "Requests"},
		LegacyGithubURL: strPtr("#"),
		Level:           "advanced",
		Impact:          "500+ vulnerabilities detected",
		LegacyImage:     "https://images.unsplash.com/photo-1518770660439-4636190af475",
		CreatedAt:       "2024-01-10",
	},
	{
		ID:              "2",
		Title:           "CTF Platform Development",
		Description:     "Custom CTF platform with dynamic flag generation and real-time scoreboard.",
		Category:        CategoryCTF,
		LegacyTechStack: []string{"Node.js", "React", "Docker", "PostgreSQL"},
		LegacyGithubURL: strPtr("#"),
		LegacyLiveURL:   strPtr("#"),
		Level:           "intermediate",
		Impact:          "1000+ participants",
		LegacyImage:     "https://images.unsplash.com/photo-1461749280684-dccba630e2f6",
		CreatedAt:       "2024-01-25",
	},
	{
		ID:              "3",
		Title:           "Zero-Day Research: CVE-2023-XXXX",
		Description:     "Discovery and responsible disclosure of a critical vulnerability in popular web framework.",
		Category:        CategoryResearch,
		LegacyTechStack: []string{"Reverse Engineering", "Assembly", "C++"},
		LegacyGithubURL: strPtr("#"),
		Level:           "advanced",
		Impact:          "CVE assigned",
		LegacyImage:     "https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5",
		CreatedAt:       "2024-02-05",
	},
	{
		ID:              "4",
		Title:           "Network Traffic Analyzer",
		Description:     "Real-time network monitoring tool with anomaly detection and threat classification.",
		Category:        CategoryTools,
		LegacyTechStack: []string{"Python", "Scapy", "TensorFlow", "Wireshark"},
		LegacyGithubURL: strPtr("#"),
		Level:           "intermediate",
		Impact:          "95% accuracy rate",
		LegacyImage:     "https://images.unsplash.com/photo-1487058792275-0ad4aaf24ca7",
		CreatedAt:       "2024-02-18",
	},
	{
		ID:              "5",
		Title:           "Red Team Exercise Platform",
		Description:     "Comprehensive simulation environment for red team training and assessment.",
		Category:        CategoryCTF,
		LegacyTechStack: []string{"Kubernetes", "Terraform", "Ansible"},
		LegacyGithubURL: strPtr("#"),
		LegacyLiveURL:   strPtr("#"),
		Level:           "advanced",
		Impact:          "50+ organizations trained",
		LegacyImage:     "https://images.unsplash.com/photo-1488590528505-98d2b5aba04b",
		CreatedAt:       "2024-03-02",
	},
	{
		ID:              "6",
		Title:           "Mobile App Security Framework",
		Description:     "Automated security testing framework for Android and iOS applications.",
		Category:        CategoryTools,
		LegacyTechStack: []string{"Java", "Swift", "Frida", "Burp Suite"},
		LegacyGithubURL: strPtr("#"),
		Level:           "intermediate",
		Impact:          "200+ apps tested",
		LegacyImage:     "https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d",
		CreatedAt:       "2024-03-15",
	},
}

var seedProjects []Project

func init() {
	seedProjects = make([]Project, len(seedRecords))
	for i, r := range seedRecords {
		seedProjects[i] = r.Normalize()
	}
}

// Seed returns a copy of the normalized fallback project list.
func Seed() []Project {
	out := make([]Project, len(seedProjects))
	copy(out, seedProjects)
	return out
}
