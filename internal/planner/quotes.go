package planner

import "math/rand"

// Quote is a motivational quote shown on the dashboard.
type Quote struct {
	Text   string
	Author string
}

var quotes = []Quote{
	{"Success is the sum of small efforts repeated day in and day out.", "Robert Collier"},
	{"The expert in anything was once a beginner.", "Helen Hayes"},
	{"Education is the most powerful weapon which you can use to change the world.", "Nelson Mandela"},
	{"The beautiful thing about learning is that no one can take it away from you.", "B.B. King"},
	{"Study while others are sleeping; work while others are loafing.", "William A. Ward"},
	{"Learning never exhausts the mind.", "Leonardo da Vinci"},
	{"The more that you read, the more things you will know.", "Dr. Seuss"},
	{"An investment in knowledge pays the best interest.", "Benjamin Franklin"},
}

// RandomQuote picks a quote at random.
func RandomQuote() Quote {
	return quotes[rand.Intn(len(quotes))]
}
