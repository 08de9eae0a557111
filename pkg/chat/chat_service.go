package chat

import (
	"strings"
)

// WelcomeMessage opens every conversation.
const WelcomeMessage = "Hello! I'm here to support you on your journey. " +
	"I can help you navigate the app, discuss any concerns about eating or mental health, " +
	"or just chat if you need someone to talk to. Please remember that while I'm here to " +
	"listen and support you, I'm not a replacement for professional help. How can I assist you today?"

const defaultReply = "I'm here to listen and support you. Would you like to tell me more about " +
	"what's on your mind? We can talk about anything that would help you feel more comfortable and supported."

type (
	ChatService interface {
		Welcome() string
		Reply(message string) string
	}

	chatService struct{}
)

func NewChatService() ChatService {
	return &chatService{}
}

func (s *chatService) Welcome() string {
	return WelcomeMessage
}

func containsAny(input string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(input, keyword) {
			return true
		}
	}
	return false
}

// Reply matches keywords against the lowercased message: navigation
// questions first, then support topics, then a default supportive reply.
func (s *chatService) Reply(message string) string {
	input := strings.ToLower(message)

	if containsAny(input, "how do i", "where", "what can") {
		if containsAny(input, "log", "food", "entry") {
			return "To log a new food entry, you can click the 'Add New Entry' button on the main page. " +
				"You'll be able to rate your experience and add notes about how you felt. " +
				"Remember, there's no 'right' or 'wrong' way to eat - we're here to support your journey."
		}
		if containsAny(input, "goal", "settings") {
			return "You can access your goal settings by clicking the 'Goal Settings' button. " +
				"Take your time setting goals that feel right for you - it's okay to start small and adjust as you go."
		}
		if containsAny(input, "see", "view", "history") {
			return "You can view your previous entries by clicking 'View Logged Entries'. " +
				"This can help you notice patterns, but please be gentle with yourself as you review your journey."
		}
	}

	if containsAny(input, "anxious", "worried", "scared") {
		return "I hear that you're feeling anxious, and that's completely valid. " +
			"Would you like to talk more about what's worrying you? Remember, it's okay to take things " +
			"one small step at a time, and there's no shame in reaching out for help."
	}

	if containsAny(input, "fail", "bad", "mess up") {
		return "Please be kind to yourself - you haven't failed. Every moment is a new opportunity, " +
			"and recovery isn't a straight line. Would you like to talk about what's troubling you? " +
			"We can work together to find a supportive way forward."
	}

	if containsAny(input, "help", "support") {
		return "I'm here to support you. Would you like to talk about what's on your mind? " +
			"Remember, there are also professional resources available - would you like information " +
			"about eating disorder helplines or mental health support services?"
	}

	return defaultReply
}
