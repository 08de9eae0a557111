package quiz

import (
	"food-journal-backend/domain"
	"strings"
)

// Answer option tokens for the likelihood questions.
const (
	AnswerVeryLikely       = "veryLikely"
	AnswerSomewhatLikely   = "somewhatLikely"
	AnswerNeutral          = "neutral"
	AnswerSomewhatUnlikely = "somewhatUnlikely"
	AnswerNotLikely        = "notLikely"
)

// QuizQuestions are presented in order; answers are submitted by index.
var QuizQuestions = []string{
	"How likely are you to eat and try new foods?",
	"How likely are you to restrict food?",
	"How likely are you to negatively associate food with body image?",
	"How likely are you to only eat certain safety foods?",
	"How likely are you to spend a lot of time working towards a set goal?",
	"How likely are you to reach out to others for support even if it may be uncomfortable?",
	"How many times do you plan to log a food each week?",
	"How long do you plan on spending to recover your food relationships?",
}

func isLikely(answer string) bool {
	return answer == AnswerVeryLikely || answer == AnswerSomewhatLikely
}

func isUnlikely(answer string) bool {
	return answer == AnswerNotLikely || answer == AnswerSomewhatUnlikely
}

// GeneratePlan turns the eight quiz answers into a personalized plan: a
// recovery duration (answer 8, e.g. "6months"), a weekly logging frequency
// (answer 7, e.g. "7times"), and one canned recommendation per triggered
// answer rule.
func GeneratePlan(answers []string) (domain.QuizPlan, error) {
	if len(answers) != len(QuizQuestions) {
		return domain.QuizPlan{}, domain.ErrInvalidQuizAnswers
	}

	loggingFrequency := strings.Replace(answers[6], "times", "", 1)
	duration := strings.Replace(answers[7], "months", "", 1)

	var recommendations []string

	// Food adventurousness
	if isLikely(answers[0]) {
		recommendations = append(recommendations, "Your openness to trying new foods is a great strength! We'll help you explore diverse, nutritious options.")
	} else {
		recommendations = append(recommendations, "We'll start slowly with familiar foods and gradually introduce new options at your comfort level.")
	}

	// Food restriction
	if isLikely(answers[1]) {
		recommendations = append(recommendations, "We'll work on developing a more flexible relationship with food, focusing on nourishment rather than restriction.")
	}

	// Body image
	if isLikely(answers[2]) {
		recommendations = append(recommendations, "We'll focus on building a positive relationship between food and body image, emphasizing health and well-being.")
	}

	// Safety foods
	if isLikely(answers[3]) {
		recommendations = append(recommendations, "We'll start with your comfort foods and gradually expand your food variety in a safe, supportive way.")
	}

	// Goal orientation
	if isLikely(answers[4]) {
		recommendations = append(recommendations, "Your dedication to goals will be a valuable asset in your journey to better food relationships.")
	}

	// Support seeking
	if isUnlikely(answers[5]) {
		recommendations = append(recommendations, "We'll help you build confidence in reaching out for support when needed.")
	}

	return domain.QuizPlan{
		Duration:        duration + " months",
		Frequency:       loggingFrequency + " times per week",
		Recommendations: recommendations,
	}, nil
}
