package fallback

import "pathpilot/internal/domain"

// The catalog mirrors what the model returns for each request kind. Callers
// must treat these slices as read-only; the selector copies before handing
// them out.

var trendingCareers = []domain.Career{
	{
		ID:                "career-1",
		Title:             "AI/ML Engineer",
		Description:       "Design, train and deploy machine learning models that power intelligent products.",
		Category:          "Technology",
		RequiredSkills:    []string{"Python", "Machine Learning", "Deep Learning", "Statistics"},
		RecommendedSkills: []string{"MLOps", "PyTorch", "Cloud Platforms"},
		AverageSalary:     145000,
		GrowthPotential:   domain.GrowthVeryHigh,
		Companies:         []string{"Google", "OpenAI", "Microsoft", "NVIDIA"},
		Courses:           []string{"Machine Learning Specialization", "Deep Learning Specialization"},
		ImageURL:          "https://images.unsplash.com/photo-1677442136019-21780ecad995",
	},
	{
		ID:                "career-2",
		Title:             "Data Scientist",
		Description:       "Turn raw data into insights and predictive models that guide business decisions.",
		Category:          "Technology",
		RequiredSkills:    []string{"Python", "SQL", "Statistics", "Data Visualization"},
		RecommendedSkills: []string{"Spark", "Experiment Design", "Storytelling"},
		AverageSalary:     130000,
		GrowthPotential:   domain.GrowthHigh,
		Companies:         []string{"Meta", "Netflix", "Airbnb", "Spotify"},
		Courses:           []string{"IBM Data Science Professional Certificate", "Applied Data Science with Python"},
		ImageURL:          "https://images.unsplash.com/photo-1551288049-bebda4e38f71",
	},
	{
		ID:                "career-3",
		Title:             "Cloud Solutions Architect",
		Description:       "Plan and oversee cloud infrastructure that is secure, scalable and cost efficient.",
		Category:          "Technology",
		RequiredSkills:    []string{"AWS", "Networking", "Infrastructure as Code", "Security"},
		RecommendedSkills: []string{"Kubernetes", "Azure", "Cost Optimization"},
		AverageSalary:     155000,
		GrowthPotential:   domain.GrowthHigh,
		Companies:         []string{"Amazon", "Microsoft", "Accenture", "Deloitte"},
		Courses:           []string{"AWS Solutions Architect Associate", "Google Cloud Architect"},
		ImageURL:          "https://images.unsplash.com/photo-1451187580459-43490279c0fa",
	},
	{
		ID:                "career-4",
		Title:             "Cybersecurity Analyst",
		Description:       "Protect systems and networks by monitoring threats and responding to incidents.",
		Category:          "Technology",
		RequiredSkills:    []string{"Network Security", "SIEM", "Incident Response", "Linux"},
		RecommendedSkills: []string{"Penetration Testing", "Cloud Security", "Threat Intelligence"},
		AverageSalary:     112000,
		GrowthPotential:   domain.GrowthVeryHigh,
		Companies:         []string{"CrowdStrike", "Palo Alto Networks", "IBM", "Cisco"},
		Courses:           []string{"CompTIA Security+", "Google Cybersecurity Certificate"},
		ImageURL:          "https://images.unsplash.com/photo-1550751827-4bd374c3f58b",
	},
	{
		ID:                "career-5",
		Title:             "Full Stack Developer",
		Description:       "Build complete web applications across front-end interfaces and back-end services.",
		Category:          "Technology",
		RequiredSkills:    []string{"JavaScript", "React", "Node.js", "Databases"},
		RecommendedSkills: []string{"TypeScript", "Go", "CI/CD"},
		AverageSalary:     118000,
		GrowthPotential:   domain.GrowthHigh,
		Companies:         []string{"Shopify", "Stripe", "Atlassian", "GitHub"},
		Courses:           []string{"The Odin Project", "Full Stack Open"},
		ImageURL:          "https://images.unsplash.com/photo-1498050108023-c5249f4df085",
	},
	{
		ID:                "career-6",
		Title:             "Product Manager",
		Description:       "Define product vision and coordinate teams to ship features customers value.",
		Category:          "Business",
		RequiredSkills:    []string{"Roadmapping", "User Research", "Communication", "Prioritization"},
		RecommendedSkills: []string{"SQL", "A/B Testing", "Technical Literacy"},
		AverageSalary:     135000,
		GrowthPotential:   domain.GrowthHigh,
		Companies:         []string{"Google", "Salesforce", "Uber", "Atlassian"},
		Courses:           []string{"Digital Product Management", "Product Management Fundamentals"},
		ImageURL:          "https://images.unsplash.com/photo-1552664730-d307ca884978",
	},
	{
		ID:                "career-7",
		Title:             "UX/UI Designer",
		Description:       "Craft intuitive, accessible interfaces grounded in research about how people work.",
		Category:          "Design",
		RequiredSkills:    []string{"Figma", "User Research", "Prototyping", "Visual Design"},
		RecommendedSkills: []string{"Accessibility", "Design Systems", "Motion Design"},
		AverageSalary:     98000,
		GrowthPotential:   domain.GrowthMedium,
		Companies:         []string{"Apple", "Adobe", "Figma", "IDEO"},
		Courses:           []string{"Google UX Design Certificate", "Interaction Design Foundation"},
		ImageURL:          "https://images.unsplash.com/photo-1561070791-2526d30994b5",
	},
	{
		ID:                "career-8",
		Title:             "Digital Marketing Specialist",
		Description:       "Grow audiences through search, social and content campaigns measured with data.",
		Category:          "Marketing",
		RequiredSkills:    []string{"SEO", "Content Strategy", "Analytics", "Social Media"},
		RecommendedSkills: []string{"Marketing Automation", "Copywriting", "Paid Ads"},
		AverageSalary:     72000,
		GrowthPotential:   domain.GrowthMedium,
		Companies:         []string{"HubSpot", "Ogilvy", "Meta", "Semrush"},
		Courses:           []string{"Google Digital Marketing Certificate", "HubSpot Content Marketing"},
		ImageURL:          "https://images.unsplash.com/photo-1460925895917-afdab827c52f",
	},
	{
		ID:                "career-9",
		Title:             "Renewable Energy Engineer",
		Description:       "Design and optimize solar, wind and storage systems for a low-carbon grid.",
		Category:          "Engineering",
		RequiredSkills:    []string{"Electrical Engineering", "Energy Modeling", "CAD", "Project Management"},
		RecommendedSkills: []string{"Battery Storage", "Grid Integration", "Policy Knowledge"},
		AverageSalary:     96000,
		GrowthPotential:   domain.GrowthVeryHigh,
		Companies:         []string{"Tesla", "NextEra Energy", "Siemens Gamesa", "First Solar"},
		Courses:           []string{"Renewable Energy Specialization", "Solar Energy Basics"},
		ImageURL:          "https://images.unsplash.com/photo-1509391366360-2e959784a276",
	},
	{
		ID:                "career-10",
		Title:             "Healthcare Data Analyst",
		Description:       "Analyze clinical and operational data to improve patient outcomes and efficiency.",
		Category:          "Healthcare",
		RequiredSkills:    []string{"SQL", "Excel", "Healthcare Systems", "Statistics"},
		RecommendedSkills: []string{"Tableau", "HIPAA Compliance", "Python"},
		AverageSalary:     85000,
		GrowthPotential:   domain.GrowthHigh,
		Companies:         []string{"UnitedHealth Group", "Kaiser Permanente", "Epic Systems", "CVS Health"},
		Courses:           []string{"Health Informatics Specialization", "Google Data Analytics Certificate"},
		ImageURL:          "https://images.unsplash.com/photo-1576091160399-112ba8d25d1d",
	},
	{
		ID:                "career-11",
		Title:             "DevOps Engineer",
		Description:       "Automate delivery pipelines and keep production systems reliable and observable.",
		Category:          "Technology",
		RequiredSkills:    []string{"Linux", "Docker", "Kubernetes", "CI/CD"},
		RecommendedSkills: []string{"Terraform", "Observability", "Go"},
		AverageSalary:     125000,
		GrowthPotential:   domain.GrowthHigh,
		Companies:         []string{"GitLab", "HashiCorp", "Datadog", "Red Hat"},
		Courses:           []string{"Certified Kubernetes Administrator", "DevOps Engineering on AWS"},
		ImageURL:          "https://images.unsplash.com/photo-1518432031352-d6fc5c10da5a",
	},
	{
		ID:                "career-12",
		Title:             "Financial Analyst",
		Description:       "Build financial models and forecasts that inform investment and budgeting decisions.",
		Category:          "Finance",
		RequiredSkills:    []string{"Financial Modeling", "Excel", "Accounting", "Valuation"},
		RecommendedSkills: []string{"Python", "Power BI", "CFA Coursework"},
		AverageSalary:     88000,
		GrowthPotential:   domain.GrowthMedium,
		Companies:         []string{"Goldman Sachs", "JPMorgan Chase", "BlackRock", "Morgan Stanley"},
		Courses:           []string{"Financial Modeling & Valuation Analyst", "Corporate Finance Essentials"},
		ImageURL:          "https://images.unsplash.com/photo-1554224155-6726b3ff858f",
	},
}

func options(texts ...string) []domain.QuizOption {
	opts := make([]domain.QuizOption, len(texts))
	for i, text := range texts {
		opts[i] = domain.QuizOption{ID: string(rune('a' + i)), Text: text}
	}
	return opts
}

var quizQuestions = []domain.QuizQuestion{
	{
		ID:              "q1",
		Question:        "Which work environment energizes you the most?",
		Options:         options("A fast-paced startup", "A structured corporate team", "Independent freelance work", "A research lab or academic setting"),
		CorrectAnswerID: "a",
		Explanation:     "Preferred environments hint at the pace and autonomy you will enjoy; there is no wrong choice.",
		Points:          10,
	},
	{
		ID:              "q2",
		Question:        "What does SQL primarily help you do?",
		Options:         options("Style web pages", "Query and manage relational data", "Compile programs", "Design logos"),
		CorrectAnswerID: "b",
		Explanation:     "SQL (Structured Query Language) is used to read and modify data held in relational databases.",
		Points:          10,
	},
	{
		ID:              "q3",
		Question:        "Which skill is most central to a UX designer's daily work?",
		Options:         options("User research", "Tax accounting", "Network cabling", "Welding"),
		CorrectAnswerID: "a",
		Explanation:     "UX design starts from understanding users, so research informs every design decision.",
		Points:          10,
	},
	{
		ID:              "q4",
		Question:        "What is the main goal of version control systems such as Git?",
		Options:         options("Speed up the CPU", "Track and coordinate changes to files", "Encrypt emails", "Host video calls"),
		CorrectAnswerID: "b",
		Explanation:     "Version control records history and lets many people change the same codebase safely.",
		Points:          10,
	},
	{
		ID:              "q5",
		Question:        "Which metric best measures how many visitors complete a desired action on a website?",
		Options:         options("Bounce rate", "Page load time", "Conversion rate", "Domain authority"),
		CorrectAnswerID: "c",
		Explanation:     "Conversion rate is the share of visitors who complete a goal such as signing up or buying.",
		Points:          10,
	},
	{
		ID:              "q6",
		Question:        "In cloud computing, what does IaaS stand for?",
		Options:         options("Internet as a Service", "Infrastructure as a Service", "Integration as a Standard", "Information and Security"),
		CorrectAnswerID: "b",
		Explanation:     "IaaS provides virtualized compute, storage and networking on demand.",
		Points:          10,
	},
	{
		ID:              "q7",
		Question:        "Which soft skill do employers most often rank as essential across careers?",
		Options:         options("Communication", "Speed reading", "Memorization", "Calligraphy"),
		CorrectAnswerID: "a",
		Explanation:     "Clear communication is consistently among the top skills employers look for.",
		Points:          10,
	},
	{
		ID:              "q8",
		Question:        "What is a common first step when analyzing a new dataset?",
		Options:         options("Deploy it to production", "Delete outliers immediately", "Explore and clean the data", "Train a deep neural network"),
		CorrectAnswerID: "c",
		Explanation:     "Exploratory analysis and cleaning reveal quality issues before any modeling begins.",
		Points:          10,
	},
	{
		ID:              "q9",
		Question:        "Which practice helps protect accounts against stolen passwords?",
		Options:         options("Reusing one strong password", "Multi-factor authentication", "Writing passwords on sticky notes", "Disabling updates"),
		CorrectAnswerID: "b",
		Explanation:     "Multi-factor authentication requires a second proof of identity beyond the password.",
		Points:          10,
	},
	{
		ID:              "q10",
		Question:        "What does a product roadmap communicate?",
		Options:         options("Office floor plans", "Planned direction and priorities of a product over time", "Employee salaries", "Server IP addresses"),
		CorrectAnswerID: "b",
		Explanation:     "A roadmap aligns teams on what will be built and why, across upcoming periods.",
		Points:          10,
	},
}

var recommendations = []domain.Recommendation{
	{
		Career:      "Data Scientist",
		Explanation: "Your interest in problem solving and working with numbers fits a role built around data-driven insight.",
	},
	{
		Career:      "UX/UI Designer",
		Explanation: "A blend of creativity and empathy for users suits a career shaping digital experiences.",
	},
	{
		Career:      "Product Manager",
		Explanation: "Enjoying collaboration and big-picture thinking aligns with guiding products from idea to launch.",
	},
	{
		Career:      "Cloud Solutions Architect",
		Explanation: "An affinity for systems thinking and technology maps well to designing scalable infrastructure.",
	},
	{
		Career:      "Digital Marketing Specialist",
		Explanation: "Interest in communication and measurable results fits growing audiences through campaigns.",
	},
}
