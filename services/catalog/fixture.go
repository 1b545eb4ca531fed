package catalog

import "haviaa/models"

var maids = []models.Maid{
	{
		ID:           "1",
		Name:         "Priya Sharma",
		Email:        "priya@haviaa.com",
		Photo:        "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=400",
		Experience:   5,
		MonthlyPrice: 12000,
		Skillset:     []string{"Deep Cleaning", "Cooking", "Laundry", "Dishwashing"},
		Locality:     "Koramangala",
		Languages:    []string{"Hindi", "English", "Kannada"},
		Rating:       4.8,
	},
	{
		ID:           "2",
		Name:         "Anita Verma",
		Email:        "anita@haviaa.com",
		Photo:        "https://images.pexels.com/photos/1559486/pexels-photo-1559486.jpeg?auto=compress&cs=tinysrgb&w=400",
		Experience:   8,
		MonthlyPrice: 15000,
		Skillset:     []string{"Premium Cleaning", "Cooking", "Pet Care", "Organization"},
		Locality:     "Indiranagar",
		Languages:    []string{"Hindi", "English"},
		Rating:       4.9,
	},
	{
		ID:           "3",
		Name:         "Sunita Devi",
		Email:        "sunita@haviaa.com",
		Photo:        "https://images.pexels.com/photos/1065084/pexels-photo-1065084.jpeg?auto=compress&cs=tinysrgb&w=400",
		Experience:   3,
		MonthlyPrice: 10000,
		Skillset:     []string{"Basic Cleaning", "Dishwashing", "Laundry"},
		Locality:     "Whitefield",
		Languages:    []string{"Hindi", "Tamil"},
		Rating:       4.5,
	},
	{
		ID:           "4",
		Name:         "Rekha Singh",
		Email:        "rekha@haviaa.com",
		Photo:        "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=400",
		Experience:   6,
		MonthlyPrice: 13000,
		Skillset:     []string{"Deep Cleaning", "Cooking", "Baby Care", "Ironing"},
		Locality:     "HSR Layout",
		Languages:    []string{"Hindi", "English", "Punjabi"},
		Rating:       4.7,
	},
	{
		ID:           "5",
		Name:         "Meera Patel",
		Email:        "meera@haviaa.com",
		Photo:        "https://images.pexels.com/photos/1181519/pexels-photo-1181519.jpeg?auto=compress&cs=tinysrgb&w=400",
		Experience:   4,
		MonthlyPrice: 11000,
		Skillset:     []string{"Cleaning", "Cooking", "Gardening", "Pet Care"},
		Locality:     "Jayanagar",
		Languages:    []string{"Hindi", "Gujarati", "English"},
		Rating:       4.6,
	},
}

var localities = []string{"Koramangala", "Indiranagar", "Whitefield", "HSR Layout", "Jayanagar"}

var languageOptions = []string{"Hindi", "English", "Kannada", "Tamil", "Gujarati", "Punjabi"}
