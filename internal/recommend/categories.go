package recommend

// DefaultCategories returns the career domains the service ships with. Each
// call returns a fresh slice.
func DefaultCategories() []Category {
	return []Category{
		{
			ID:         "ai",
			Name:       "AI & Machine Learning",
			Keywords:   "machine learning artificial intelligence deep learning neural networks nlp computer vision pytorch tensorflow keras data science algorithms",
			CoreSkills: []string{"Python", "Mathematics", "Deep Learning", "Statistics"},
			Projects:   []string{"Image Classification", "Natural Language Processing", "Predictive Models"},
		},
		{
			ID:         "web",
			Name:       "Web Development",
			Keywords:   "web development frontend backend fullstack javascript react angular vue nodejs express django html css apis rest graphql",
			CoreSkills: []string{"JavaScript", "HTML/CSS", "React", "Node.js"},
			Projects:   []string{"Web Applications", "RESTful APIs", "E-commerce Sites"},
		},
		{
			ID:         "data",
			Name:       "Data Science",
			Keywords:   "data science analytics visualization statistics sql database hadoop spark big data etl pandas numpy matplotlib",
			CoreSkills: []string{"Python", "SQL", "Statistics", "Data Visualization"},
			Projects:   []string{"Data Analysis", "Business Intelligence", "Statistical Modeling"},
		},
		{
			ID:         "cloud",
			Name:       "Cloud Computing",
			Keywords:   "cloud computing aws azure gcp kubernetes docker devops ci cd serverless microservices iaas paas",
			CoreSkills: []string{"AWS/Azure/GCP", "Docker", "Kubernetes", "Linux"},
			Projects:   []string{"Cloud Migration", "Infrastructure Automation", "Container Orchestration"},
		},
		{
			ID:         "systems",
			Name:       "Systems Design",
			Keywords:   "systems design architecture distributed systems scalability performance optimization networking security protocols",
			CoreSkills: []string{"System Architecture", "Distributed Systems", "Performance Optimization"},
			Projects:   []string{"High-Scale Systems", "Distributed Applications", "System Integration"},
		},
	}
}
