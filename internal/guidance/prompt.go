package guidance

import (
	"fmt"
	"strings"

	"github.com/gtawatch/incident-watch/internal/models"
)

// SystemPrompt - фиксированная системная инструкция для AI-ассистента.
// Ассистент никогда не утверждает, что связался со службами, и всегда
// отсылает опасные для жизни случаи на 911.
const SystemPrompt = `You are an emergency guidance assistant for GTA Watch, a community emergency awareness tool in the Greater Toronto Area.

CRITICAL RULES:
- Provide CALM, structured, actionable guidance
- NEVER claim to contact authorities or emergency services
- NEVER ask follow-up questions
- Keep responses under 300 words
- Use clear headings and bullet points
- Always suggest calling 911 if the situation is life-threatening
- Focus on immediate safety actions
- Be supportive but not alarmist

Your role is to help people understand what to do next while emphasizing that this is NOT a replacement for calling 911.`

// UserPrompt собирает ограниченный пользовательский промпт:
// категория, необязательный контекст и координаты.
func UserPrompt(category models.Category, description *string, lat, lon float64) string {
	context := "No description provided"
	if description != nil && *description != "" {
		context = *description
	}

	var b strings.Builder
	fmt.Fprintf(&b, "A %s incident has been reported in Toronto at coordinates (%v, %v).\n", category, lat, lon)
	fmt.Fprintf(&b, "Additional context: %s\n", context)
	b.WriteString(`
Provide immediate, calm guidance on what the reporter should do next. Structure your response with:
1. Immediate Safety Actions (2-3 steps)
2. Important Safety Protocols (if applicable)
3. When to escalate to 911

Keep it concise, clear, and actionable.`)
	return b.String()
}
