package config

import "time"

// Default values for configuration
const (
	// Log defaults
	DefaultLogLevel = "info"
	DefaultLogJSON  = true

	// Database defaults
	DefaultDBPath = "aurion.db"

	// OpenAI defaults
	DefaultOpenAIBaseURL     = "https://api.openai.com/v1"
	DefaultOpenAIModel       = "gpt-3.5-turbo"
	DefaultOpenAITemperature = 0.7
	DefaultOpenAIMaxTokens   = 256
	DefaultOpenAITimeout     = 2 * time.Minute
	DefaultOpenAIInstruction = "You are Aurion, the 3C assistant."
)

// Default scheduler tasks. The due_posts task delivers scheduled posts every
// minute; sql_maintenance vacuums the database nightly.
var DefaultSchedulerTasks = map[string]TaskConfig{
	"due_posts":       {Enabled: true, Schedule: "* * * * *"},
	"sql_maintenance": {Enabled: true, Schedule: "0 4 * * *"},
}

// Default user-facing messages.
var DefaultMessages = MessagesConfig{
	Welcome: "Hey Champ! I’m Aurion, your 3C assistant. " +
		"Type /ask followed by your question and I’ll help you out!",
	Help: "✨ Aurion Command List:\n" +
		"/ask <question> - Ask Aurion anything\n" +
		"/faq - Browse FAQ\n" +
		"/hashtags - Show hashtags\n" +
		"/topics - Show topic list\n" +
		"/rules - View community rules\n" +
		"/fact - Get a random fact\n" +
		"/id - Get the 3C Links web app\n" +
		"Ask me anything or use keywords for quick help! 💬",
	AskUsage:          "Champ, you gotta ask a question after /ask!",
	AskError:          "Oops! Something went wrong. Please try again later.",
	IDCard:            "Check out our digital 3C /id card: https://anica-blip.github.io/3c-links/",
	Rules:             "Community Rules: https://t.me/c/2377255109/6/400",
	FactHeader:        "💎 Aurion Fact:\n%s",
	NoFacts:           "No facts found in the database.",
	FAQPrompt:         "Select a FAQ:",
	NoFAQ:             "No FAQ available yet.",
	FAQNotFound:       "No answer found.",
	NotAuthorized:     "Only the owner can use this command.",
	ManualPostUsage:   "Usage: /manual_post <message>",
	SchedulePostUsage: "Usage: /schedule_post <minutes> <message>",
	PostScheduled:     "Scheduled. I’ll post it in %d minutes.",
	MemberWelcome:     "Welcome %s! I’m Aurion, your 3C assistant. Type /ask followed by your question!",
	MemberFarewell:    "Goodbye %s! We’ll miss you.",
	Hashtags: []string{
		"#Topics", "#Blog", "#Provisions", "#Training", "#Knowledge",
		"#Language", "#Audiobook", "#Healingmusic",
	},
	Topics: []string{
		"Aurion Gems", "ClubHouse Chatroom", "ClubHouse News & Releases",
		"ClubHouse Notices", "Weekly Challenges", "ClubHouse Mini-Challenges",
		"ClubHouse Learning", "3C LEVEL 1", "3C LEVEL 2",
	},
}
