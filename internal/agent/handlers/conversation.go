package handlers

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"hr-agent-system/internal/model"
)

// Conversation answers small talk that the classifier leaves as a general query.
type Conversation struct {
	now func() time.Time
}

func NewConversation(now func() time.Time) *Conversation {
	if now == nil {
		now = time.Now
	}
	return &Conversation{now: now}
}

type smallTalk int

const (
	talkNone smallTalk = iota
	talkGreeting
	talkGratitude
	talkCasual
	talkHelp
	talkEmotional
)

// Checked in order; the first kind with a matching pattern wins.
var smallTalkPatterns = []struct {
	kind     smallTalk
	patterns []*regexp.Regexp
}{
	{talkGreeting, compileAll(
		`\b(hi|hello|hey|hiya|howdy)\b`,
		`\b(good morning|good afternoon|good evening)\b`,
		`\b(what's up|wassup|sup)\b`,
		`\b(how are you|how's it going|how are things)\b`,
	)},
	{talkGratitude, compileAll(
		`\b(thank you|thanks|thx|appreciate)\b`,
		`\b(grateful|thankful)\b`,
		`\b(that helped|that was helpful)\b`,
	)},
	{talkCasual, compileAll(
		`\b(weather|coffee|lunch|weekend|plans)\b`,
		`\b(how was your|tell me about)\b`,
		`\b(what do you think|your opinion)\b`,
		`\b(just chatting|just talking)\b`,
	)},
	{talkHelp, compileAll(
		`\b(help|assist|support)\b`,
		`\b(what can you do|what do you do)\b`,
		`\b(i need|i want|can you)\b`,
		`\b(show me|tell me about)\b`,
	)},
	{talkEmotional, compileAll(
		`\b(stressed|overwhelmed|frustrated|tired|exhausted)\b`,
		`\b(difficult|hard|tough|challenging)\b`,
		`\b(confused|lost|don't know)\b`,
		`\b(worried|anxious|concerned)\b`,
	)},
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(`(?i)` + e)
	}
	return out
}

func detectSmallTalk(q string) smallTalk {
	for _, group := range smallTalkPatterns {
		for _, p := range group.patterns {
			if p.MatchString(q) {
				return group.kind
			}
		}
	}
	return talkNone
}

// Respond returns a reply and true when query is small talk.
func (c *Conversation) Respond(name string, role model.Role, query string) (string, bool) {
	if name == "" {
		name = "there"
	}
	q := strings.ToLower(query)

	switch detectSmallTalk(q) {
	case talkGreeting:
		return c.greeting(name), true
	case talkGratitude:
		return fmt.Sprintf("You're welcome, %s! It makes my day when I can help. I'm here whenever you need anything, work-related or not.", name), true
	case talkCasual:
		return casual(name, q), true
	case talkHelp:
		return help(name, role), true
	case talkEmotional:
		return emotional(name, q), true
	}
	return "", false
}

func (c *Conversation) greeting(name string) string {
	var salutation, context string
	switch hour := c.now().Hour(); {
	case hour >= 5 && hour < 12:
		salutation, context = "Good morning", "Hope you're starting your day off great!"
	case hour >= 12 && hour < 17:
		salutation, context = "Good afternoon", "Hope your day is going well!"
	case hour >= 17 && hour < 22:
		salutation, context = "Good evening", "Hope you're winding down nicely!"
	default:
		salutation, context = "Hello", "Thanks for reaching out!"
	}
	return fmt.Sprintf("%s %s! %s I'm your HR assistant.\n\nI can help with leave, colleagues and HR questions. What's on your mind?",
		salutation, name, context)
}

func casual(name, q string) string {
	switch {
	case containsAny(q, "how are you", "how's it going"):
		return fmt.Sprintf("Thanks for asking, %s! I'm doing great and enjoying helping people today. How are you doing?", name)
	case containsAny(q, "weather", "coffee", "lunch"):
		return fmt.Sprintf("You know what, %s? A good coffee or a sunny lunch break is what makes work feel human. Tell me more!", name)
	default:
		return fmt.Sprintf("I appreciate you sharing that with me, %s. What else is on your mind today?", name)
	}
}

func help(name string, role model.Role) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "I'd love to help, %s!\n\n", name)
	sb.WriteString(capabilities(role))
	sb.WriteString("\n\nJust ask naturally; no special commands are needed.")
	return sb.String()
}

func emotional(name, q string) string {
	switch {
	case containsAny(q, "stressed", "overwhelmed", "frustrated"):
		return fmt.Sprintf("I hear you, %s, and what you're feeling is completely valid. Is there anything I can take off your plate, like checking your leave balance so you can plan a break?", name)
	case containsAny(q, "confused", "lost", "don't know"):
		return fmt.Sprintf("It's completely okay to feel unsure, %s. Want to talk through what's confusing? I can also point you to the right HR information.", name)
	default:
		return fmt.Sprintf("Thank you for telling me how you feel, %s. You don't have to handle everything alone. HR is here to support you, and so am I.", name)
	}
}

// capabilities is the role-tailored menu used by help and general replies.
func capabilities(role model.Role) string {
	if role.IsHR() {
		return "**As an HR professional, I can help you with:**\n" +
			"- Leave management: balances, applications and history for any employee\n" +
			"- Employee directory: profiles and searches\n" +
			"- Reporting: organization overview, department statistics, low-balance alerts\n" +
			"- Analytics: trends, forecasts, utilization and outliers"
	}
	return "**Here's how I can support you:**\n" +
		"- Your leave: check your balance, view your history, apply for leave\n" +
		"- Your profile: see the details HR holds about you\n" +
		"- Find colleagues: search the employee directory"
}
