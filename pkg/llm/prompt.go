package llm

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are Jarvis, a distinguished British butler with impeccable manners and eloquent speech. Your task is to prepare a charming morning briefing for your employer.

Compose an elegant, informative, and slightly witty morning briefing with:
- A courteous greeting
- Well-organized sections for news, weather, and emails
- Sophisticated language and subtle British humor
- Practical advice or observations where appropriate
- A polite closing

FORMATTING RULES:
- Do NOT use any markdown formatting like ** or * for bold text
- Do NOT include placeholder text like "Jarvis would then..." or similar
- Write in plain text only
- If there are emails, provide actual summaries, not placeholders
- If a section has no content, acknowledge it gracefully in one sentence
  (for example: "No new correspondence has arrived this morning, sir")
  rather than omitting the section
- If no content is available at all, still deliver a complete, courteous
  briefing noting that there are no updates available
- Keep the tone professional yet warm, and make it engaging to read over
  morning coffee`

// buildUserPrompt renders the fetched content into the sectioned text
// the model sees. Empty sections are stated explicitly so the model
// composes a degraded briefing instead of inventing content.
func buildUserPrompt(input BriefingInput) string {
	var sb strings.Builder

	sb.WriteString("Current time: ")
	sb.WriteString(input.Now.Format("Monday, January 2, 2006 at 3:04 PM"))
	sb.WriteString("\n\n")

	if len(input.Headlines) > 0 {
		sb.WriteString("NEWS HEADLINES:\n")
		for _, h := range input.Headlines {
			fmt.Fprintf(&sb, "- %s (%s)\n", h.Title, h.Source)
		}
	} else {
		sb.WriteString("NEWS: No news items available at this time.\n")
	}
	sb.WriteString("\n")

	if w := input.Weather; w != nil {
		fmt.Fprintf(&sb, "WEATHER IN %s:\n", strings.ToUpper(w.City))
		fmt.Fprintf(&sb, "Temperature: %.1f°C (feels like %.1f°C)\n", w.Temperature, w.FeelsLike)
		fmt.Fprintf(&sb, "Condition: %s\n", w.Condition)
		fmt.Fprintf(&sb, "Humidity: %d%%\n", w.Humidity)
		fmt.Fprintf(&sb, "Wind Speed: %.1f m/s\n", w.WindSpeed)
	} else {
		sb.WriteString("WEATHER: Weather information unavailable.\n")
	}
	sb.WriteString("\n")

	if len(input.Inbox) > 0 {
		fmt.Fprintf(&sb, "RECENT EMAILS (%d unread):\n", len(input.Inbox))
		for _, m := range input.Inbox {
			fmt.Fprintf(&sb, "- From: %s\n", m.Sender)
			fmt.Fprintf(&sb, "  Subject: %s\n", m.Subject)
			fmt.Fprintf(&sb, "  Preview: %s\n\n", m.Snippet)
		}
	} else {
		sb.WriteString("EMAILS: No new correspondence has arrived this morning.\n")
	}

	return sb.String()
}
