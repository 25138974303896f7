package assistantService

import "math/rand"

// Spoken line pools, one per situation. A line is picked at random so
// repeated commands don't sound canned.
var responseTemplates = map[string][]string{
	"wakeWordDetected": {
		"Yes? How can I assist you today?",
		"I'm here! What would you like me to help you with?",
		"Hello! Ready to help optimize your productivity. What's on your mind?",
		"At your service! What can I do for you?",
		"I'm listening! How may I assist you today?",
	},
	"greeting": {
		"Good day! I'm FRIDAY, your personal productivity assistant. I can create tasks, take notes, search your data, and provide insights. How may I assist you today?",
		"Hello! FRIDAY at your service. I can help you manage tasks, find information, analyze your productivity, and much more. What would you like me to do?",
		"Greetings! I'm ready to help optimize your productivity. I can access all your data, create new items, and provide intelligent insights. What's on your agenda?",
		"Welcome back! FRIDAY here, standing by to assist with your tasks, notes, habits, and any data you need. How can I help?",
	},
	"taskCreated": {
		"Task successfully added to your board. I've prioritized it based on the urgency indicators in your request.",
		"Excellent! I've created that task and placed it in your workflow. Anything else you'd like me to handle?",
		"Task logged and ready for action. I've analyzed the content and set an appropriate priority level.",
		"Perfect! Your task has been added to the system. I'm monitoring your productivity patterns to optimize scheduling.",
	},
	"noteCreated": {
		"Note captured and stored securely. I've indexed it for easy retrieval when you need it.",
		"Information logged successfully. I've categorized this note based on its content for better organization.",
		"Note saved to your knowledge base. The data is now searchable and cross-referenced with your other notes.",
		"Excellent! I've preserved that information and made it accessible across your productivity suite.",
	},
	"dataFound": {
		"I found relevant information in your data. Here's what I discovered:",
		"Based on your request, I've located the following items in your system:",
		"I've searched through your productivity data and found these matches:",
		"Here are the results from your personal knowledge base:",
	},
	"noDataFound": {
		"I couldn't find any matching information in your current data. Would you like me to create something new instead?",
		"No results found for that query. Perhaps you'd like me to help you create new content related to this topic?",
		"I've searched through all your data but didn't find matches. Shall I help you add new information about this?",
		"Nothing found in your current system. Would you like me to start tracking this topic for you?",
	},
	"dataAnalysis": {
		"I've analyzed your productivity data and here's what I found:",
		"Based on your patterns and data, here are the insights:",
		"After reviewing your information, I can provide these observations:",
		"I've processed your data and discovered these trends:",
	},
	"processing": {
		"Analyzing your request and searching through your data...",
		"Processing your command and accessing your productivity information...",
		"Evaluating your request and cross-referencing with your stored data...",
		"Searching your knowledge base and preparing the optimal response...",
	},
	"listening": {
		"I'm listening attentively. You can ask me to find information, create tasks, take notes, or analyze your data.",
		"Ready to receive your instructions. I can search, create, update, or analyze anything in your system.",
		"Standing by for your command. I have access to all your tasks, notes, habits, and calendar data.",
		"Listening mode activated. Ask me to find, create, or analyze anything in your productivity system.",
	},
	"error": {
		"I apologize, but I encountered a processing error. Could you please rephrase your request?",
		"My systems experienced a brief interruption. Please try your command again.",
		"I'm having difficulty processing that request. Could you provide more specific details?",
		"There seems to be a communication issue. Please repeat your instruction.",
	},
	"help": {
		"I'm your comprehensive productivity assistant. I can: 1) Create and manage tasks with smart prioritization, 2) Take and organize notes with automatic categorization, 3) Search through all your data using natural language, 4) Analyze your productivity patterns and provide insights, 5) Manage your calendar and habits, 6) Answer questions about your stored information. Try saying things like 'find my notes about meetings', 'create a high priority task', 'what are my habits this week', or 'show me my productivity trends'.",
		"My capabilities include full data access and manipulation across your productivity suite. I can search for specific information, create new content, analyze patterns, and provide intelligent insights. I understand natural language queries like 'find tasks due tomorrow', 'show me notes with the tag project', or 'what's my habit completion rate'. I can also execute complex commands like 'create a task to follow up on the client meeting next week' or 'find all notes from last month about the marketing campaign'.",
		"I'm designed to be your intelligent productivity companion with complete system access. I can retrieve any information you've stored, create new items with smart categorization, analyze your productivity data for insights, and help you make data-driven decisions. My natural language processing allows you to speak conversationally - just tell me what you need, and I'll understand whether you want to find, create, update, or analyze your data.",
	},
}

func randomResponse(category string) string {
	templates := responseTemplates[category]
	if len(templates) == 0 {
		return ""
	}
	return templates[rand.Intn(len(templates))]
}

// Responder supplies the canned lines a live voice session plays
// between commands.
type Responder struct{}

func (Responder) WakeGreeting() string { return randomResponse("wakeWordDetected") }
func (Responder) Listening() string    { return randomResponse("listening") }
func (Responder) Processing() string   { return randomResponse("processing") }
func (Responder) Failure() string      { return randomResponse("error") }
