package main

// Link is a labelled anchor.
type Link struct {
	Label string
	Href  string
}

// SkillGroup is one card in the skills grid.
type SkillGroup struct {
	Category string
	Items    []string
}

// Project is one project card.
type Project struct {
	Title  string
	Stack  []string
	Points []string
	Links  []Link
}

// Entry is an experience or education card.
type Entry struct {
	Title   string
	Meta    string
	Bullets []string
}

// Profile is everything the page shows besides the contact form.
type Profile struct {
	Name       string
	Headline   string
	Tagline    string
	Location   string
	About      string
	ResumeFile string
	Nav        []Link
	Social     []Link
	Skills     []SkillGroup
	Projects   []Project
	Experience []Entry
	Education  []Entry
	Certs      []string
}

var (
	AboutMe = `Hands-on full-stack developer with expertise in the MERN stack. Strong in DSA, OOP, system design basics, AI integration, and problem-solving.
	Experienced in building scalable web applications and delivering user-focused products. Strong communicator with proven teamwork, analytical
	thinking, and adaptability in dynamic environments.`

	profile = Profile{
		Name:       "Aditya Ishan",
		Headline:   "Full-Stack Developer (MERN)",
		Tagline:    "Building scalable web applications, integrating AI, and solving problems with clean code.",
		Location:   "Bangalore, Karnataka · +91 7061177513",
		About:      AboutMe,
		ResumeFile: "Aditya_Ishan_Resume.pdf",
		Nav: []Link{
			{Label: "About", Href: "#about"},
			{Label: "Skills", Href: "#skills"},
			{Label: "Projects", Href: "#projects"},
			{Label: "Experience", Href: "#experience"},
			{Label: "Education", Href: "#education"},
			{Label: "Certifications", Href: "#certs"},
			{Label: "Contact", Href: "#contact"},
		},
		Social: []Link{
			{Label: "Email", Href: "mailto:adityaishan18@gmail.com"},
			{Label: "LinkedIn", Href: "https://www.linkedin.com/in/aditya-ishan-321bb6253"},
			{Label: "GitHub", Href: "https://github.com/aditya2671"},
		},
		Skills: []SkillGroup{
			{Category: "Programming & Scripting", Items: []string{"C++", "Java", "JavaScript", "SQL", "NoSQL", "HTML", "CSS"}},
			{Category: "Frameworks & Libraries", Items: []string{"React.js", "Node.js", "Express.js", "Tailwind CSS", "Recharts"}},
			{Category: "Core Competencies", Items: []string{"DSA", "System Design", "API Development", "AI & ML Basics"}},
			{Category: "Tools & Platforms", Items: []string{"Git", "GitHub", "Linux", "MongoDB", "PostgreSQL"}},
			{Category: "Soft Skills", Items: []string{"Communication", "Analytical Thinking", "Teamwork", "Multitasking"}},
		},
		Projects: []Project{
			{
				Title: "Finance Management System",
				Stack: []string{"React", "Node.js", "PostgreSQL", "TailwindCSS", "Recharts"},
				Points: []string{
					"Architected and developed a full-stack finance application serving 10+ users.",
					"Designed optimized database schema, improving query response time by ~25%.",
					"Integrated AI-powered chatbot for financial queries and interactive data visualization.",
				},
				Links: []Link{{Label: "Repo", Href: "https://github.com/aditya2671"}},
			},
			{
				Title: "Dummy Data Generator",
				Stack: []string{"JavaScript"},
				Points: []string{
					"Engineered a customizable data generation tool supporting multiple formats with instant download functionality.",
				},
				Links: []Link{{Label: "Demo", Href: "https://github.com/aditya2671"}},
			},
			{
				Title: "AI Meeting Scheduler (Ongoing)",
				Stack: []string{"NLP", "Chatbot UI", "AI Integration"},
				Points: []string{
					"Designed an AI/NLP-based scheduler automating multi-timezone meeting planning.",
					"Implemented intent detection and chatbot UI for seamless scheduling.",
				},
			},
		},
		Experience: []Entry{
			{
				Title: "Jain University — In-house Intern",
				Meta:  "Jun 2024 – Present · Bangalore, India",
				Bullets: []string{
					"Developed a password-strength checker and manager used by 20+ students, reducing weak password usage by ~40%.",
					"Led a group project on finance management with an AI-based chatbot, improving query resolution by ~30%.",
					"Applied system design principles to create scalable, secure project architectures.",
				},
			},
		},
		Education: []Entry{
			{Title: "Jain University", Meta: "B.Tech in Computer Science · 2022 – 2026 (Expected) · Bangalore, India"},
			{Title: "Neelmani Kedarnath Higher Secondary School", Meta: "XII (Bihar Board) · 2022 · Bihar, India"},
		},
		Certs: []string{
			"IBM Artificial Intelligence Fundamentals — AI and ML Concepts",
			"IBM Machine Learning Basics — Supervised and Unsupervised Learning",
			"IBM IT Fundamentals — Networking, Databases, Cybersecurity",
			"Coursera Linux Fundamentals — CLI, Shell Scripting, System Administration",
			"Cisco Networking Academy: Introduction to Modern AI (Sep 2025)",
		},
	}
)
