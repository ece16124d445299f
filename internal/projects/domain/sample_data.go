package domain

// SampleProjects is the fixed dataset the public listing falls back to when
// the remote read fails or the collection is still empty.
func SampleProjects() []Project {
	return []Project{
		{
			ID:          "1",
			Title:       "Face Recognition Attendance System",
			Description: "An AI-powered attendance system using facial recognition technology to automate attendance tracking.",
			FullDescription: "This system uses advanced facial recognition algorithms to identify students and mark their " +
				"attendance automatically. It integrates with existing student databases and provides real-time reporting.",
			Category:     CategoryAI,
			Technologies: []string{"Python", "OpenCV", "TensorFlow", "Flask", "MySQL"},
			Features: []string{
				"Facial recognition-based check-in/out",
				"Integration with student databases",
				"Real-time reporting and analytics",
			},
			GithubURL: "https://github.com/yourusername/face-recognition-attendance",
			LiveURL:   "https://demo-face-recognition.example.com",
		},
		{
			ID:          "2",
			Title:       "College ERP System",
			Description: "A centralized system for managing student records, attendance, academic details, and faculty data.",
			FullDescription: "This comprehensive ERP system streamlines college administration by providing a unified platform " +
				"for managing all aspects of student and faculty data, academic records, and administrative processes.",
			Category:     CategoryWeb,
			Technologies: []string{"Java", "Spring Boot", "PostgreSQL", "React.js"},
			Features: []string{
				"Student and faculty dashboard",
				"Attendance and exam record management",
				"Secure access control",
			},
			GithubURL: "https://github.com/yourusername/college-erp",
			LiveURL:   "https://college-erp-demo.example.com",
		},
		{
			ID:          "3",
			Title:       "Game Contest Website",
			Description: "An online platform where users can participate in gaming competitions, track scores, and rank on leaderboards.",
			FullDescription: "This platform allows gamers to join tournaments, compete with others, and track their performance " +
				"on global leaderboards. It features real-time score updates and social sharing capabilities.",
			Category:     CategoryWeb,
			Technologies: []string{"HTML", "CSS", "JavaScript", "Node.js", "MongoDB"},
			Features: []string{
				"User registration and profile management",
				"Tournament hosting and leaderboard system",
				"Real-time score updates",
			},
			GithubURL: "https://github.com/yourusername/game-contest",
			LiveURL:   "https://game-contest.example.com",
		},
		{
			ID:          "4",
			Title:       "Smart City Solution",
			Description: "A secure citizen complaint & feedback platform for better urban governance.",
			FullDescription: "This platform enables citizens to submit complaints and feedback about city services and " +
				"infrastructure issues. Government officials can track, manage, and resolve these issues efficiently.",
			Category:     CategoryWeb,
			Technologies: []string{"Python", "Django", "PostgreSQL", "React.js"},
			Features: []string{
				"Secure complaint submission system",
				"Real-time issue tracking",
				"Data analytics for governance improvement",
			},
			GithubURL: "https://github.com/yourusername/smart-city",
			LiveURL:   "https://smart-city-demo.example.com",
		},
		{
			ID:          "5",
			Title:       "Fintech Tax Management Platform",
			Description: "A centralized system for tax filing, processing, and compliance tracking.",
			FullDescription: "This platform simplifies tax management for individuals and businesses by automating tax " +
				"calculations, facilitating secure filing, and ensuring compliance with tax regulations.",
			Category:     CategoryWeb,
			Technologies: []string{"Java", "Spring Boot", "MySQL", "React.js"},
			Features: []string{
				"Secure tax filing",
				"Automated compliance checks",
				"Dashboard for tracking tax status",
			},
			GithubURL: "https://github.com/yourusername/tax-management",
			LiveURL:   "https://tax-platform.example.com",
		},
		{
			ID:          "6",
			Title:       "GIS & Machine Learning Project",
			Description: "A system integrating geospatial data with ML algorithms for predictive analysis.",
			FullDescription: "This innovative system combines geographic information systems (GIS) with machine learning to " +
				"analyze spatial data and make predictions for urban planning, environmental monitoring, and resource management.",
			Category:     CategoryAI,
			Technologies: []string{"Python", "TensorFlow", "QGIS", "Flask"},
			Features: []string{
				"Geospatial data processing",
				"Machine learning-based pattern detection",
				"Interactive data visualization",
			},
			GithubURL: "https://github.com/yourusername/gis-ml-project",
			LiveURL:   "https://gis-ml-demo.example.com",
		},
	}
}
