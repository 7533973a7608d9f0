package database

import (
	"gorm.io/datatypes"

	"github.com/kichu12348/kichu-space-backend/models"
)

func collaborators(c []models.Collaborator) *datatypes.JSONSlice[models.Collaborator] {
	s := datatypes.NewJSONSlice(c)
	return &s
}

// initialProjects is the portfolio content shipped with a fresh deployment.
var initialProjects = []models.Project{
	{
		Title: "Vibelink – Where Vibes Connect",
		Description: "A playful social media app designed to connect users through photos, " +
			"thoughts, DMs, and private journaling. With a strong focus on personal expression " +
			"and real-time interaction, it blends lighthearted features with powerful tech like " +
			"encryption and real-time updates.",
		Tech: datatypes.NewJSONSlice([]string{"React Native", "Expo", "Socket.io", "Express.js"}),
		Features: datatypes.NewJSONSlice([]string{
			"Photo & thought sharing with humor-forward UX",
			"Real-time DMs via Socket.io",
			"Private encrypted journaling for self-reflection",
			"Custom themes (Cyberpunk, Midnight Blue, Obsidian Black... and more)",
		}),
		Links: datatypes.NewJSONSlice([]models.Link{
			{URL: "https://github.com/kichu12348/vibelink", Icon: "Github", Text: "GitHub"},
			{URL: "https://vibelink.kichu.space", Icon: "Info", Text: "Learn More"},
		}),
	},
	{
		Title: "SnapBook – Collaborative Digital Scrapbooking",
		Description: "A real-time collaborative scrapbook app that turns memory-making into a " +
			"digital art form. Users can create dreamy digital memory boards with drag, pinch, " +
			"rotate, and animate capabilities—all while collaborating live with friends.",
		Tech: datatypes.NewJSONSlice([]string{"React Native", "Expo", "Reanimated", "Socket.io", "Express.js"}),
		Features: datatypes.NewJSONSlice([]string{
			"Create scrapbooks with themed covers and custom quotes",
			"Freeform layout with animated, resizable elements",
			"Real-time collab with live editing via Socket.io",
			"Dreamy dark mode aesthetic with soft overlays",
		}),
		Links: datatypes.NewJSONSlice([]models.Link{
			{URL: "https://github.com/kichu12348/snapbook", Icon: "Github", Text: "GitHub"},
			{URL: "https://snapbook.kichu.space", Icon: "Info", Text: "Learn More"},
		}),
	},
	{
		Title: "Neru – A Simple Neural Network Implementation",
		Description: "An educational TypeScript library for implementing feed-forward neural " +
			"networks with backpropagation learning. Designed for simplicity and clarity, it " +
			"provides a hands-on way to understand neural networks.",
		Tech: datatypes.NewJSONSlice([]string{"TypeScript"}),
		Features: datatypes.NewJSONSlice([]string{
			"Feed-forward propagation",
			"Simplified backpropagation learning",
			"Configurable network architecture",
			"Sigmoid activation function",
		}),
		Links: datatypes.NewJSONSlice([]models.Link{
			{URL: "https://github.com/kichu12348/neru", Icon: "Github", Text: "GitHub"},
		}),
	},
	{
		Title: "Pineabble 🎯",
		Description: "A collection of quirky and pointless web experiences designed to cure " +
			"boredom and provide endless, useless entertainment. It includes features that range " +
			"from infinite scrolling and cat philosophy to progress bars that never quite make " +
			"it to 100%.",
		Tech: datatypes.NewJSONSlice([]string{"React", "JavaScript", "HTML", "CSS Modules", "Vite"}),
		Features: datatypes.NewJSONSlice([]string{
			"Infinite scrolling content with whimsical quotes",
			"Philosophical Cat page with AI-generated insights",
			"Pointless Progress Bars with zero closure",
			"History of Invisible Things and Fortune Teller Potato",
		}),
		Links: datatypes.NewJSONSlice([]models.Link{
			{URL: "https://github.com/username/bananas", Icon: "Github", Text: "GitHub"},
			{URL: "https://baananaa.vercel.app", Icon: "Globe", Text: "Live Demo"},
		}),
		Collaborators: collaborators([]models.Collaborator{
			{
				Name: "Neil Oommen Renni",
				URI: []models.CollaboratorLink{
					{Type: "LinkedIn", URI: "https://www.linkedin.com/in/neil-oommen-renni-aa1694291", Icon: "Linkedin"},
					{Type: "GitHub", URI: "https://github.com/neilor-21", Icon: "Github"},
				},
			},
			{
				Name: "Malavika G K",
				URI: []models.CollaboratorLink{
					{Type: "LinkedIn", URI: "https://www.linkedin.com/in/malavika-g-k-405089351", Icon: "Linkedin"},
					{Type: "GitHub", URI: "https://github.com/MalavikaGK", Icon: "Github"},
				},
			},
		}),
	},
}

// Seed inserts the initial projects when the table is empty. It never
// touches a table that already has rows, so redeploys keep user edits.
func (d *gormDatabase) Seed() (bool, error) {
	var count int64
	if err := d.db.Model(&models.Project{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	projects := make([]models.Project, len(initialProjects))
	copy(projects, initialProjects)
	if err := d.db.Create(&projects).Error; err != nil {
		return false, err
	}
	return true, nil
}
