// Package guidance содержит статические инструкции по безопасности,
// используемые когда внешний AI-сервис недоступен или не настроен.
package guidance

import "github.com/gtawatch/incident-watch/internal/models"

// fallbackTexts - готовый текст инструкции для каждой категории.
// Таблица тотальна над закрытым набором категорий.
var fallbackTexts = map[models.Category]string{
	models.CategoryShooting: `**Immediate Actions:**
- Get to a safe location immediately
- Stay low and avoid windows
- Call 911 if you have not already
- Do not investigate the source

**Safety Protocols:**
- Lock doors and turn off lights
- Silence your phone
- Wait for official all-clear from police

**When to Call 911:** If you hear gunshots or see someone injured, call immediately.`,

	models.CategoryMedical: `**Immediate Actions:**
- Call 911 if not already done
- Do not move the person unless in immediate danger
- Check if they are breathing and conscious
- If trained, provide first aid

**Safety Protocols:**
- Stay with the person until help arrives
- Keep them warm and comfortable
- Note any important medical information

**When to Call 911:** For any serious injury, chest pain, difficulty breathing, or unconsciousness.`,

	models.CategoryFire: `**Immediate Actions:**
- Call 911 immediately if not done
- Evacuate the building using stairs (not elevators)
- Stay low to avoid smoke
- Close doors behind you

**Safety Protocols:**
- Do not re-enter the building
- Move at least 100 feet away
- Account for all occupants
- Do not use elevators

**When to Call 911:** Immediately for any fire or smoke.`,

	models.CategoryAccident: `**Immediate Actions:**
- Call 911 if there are injuries
- Move to a safe location away from traffic
- Turn on hazard lights if in a vehicle
- Check for injuries to yourself and others

**Safety Protocols:**
- Do not move injured persons unless in danger
- Exchange information with other parties
- Document the scene if safe to do so

**When to Call 911:** For any injuries, blocked roadways, or vehicle damage.`,

	models.CategoryAssault: `**Immediate Actions:**
- Move to a safe, public location
- Call 911 immediately
- Do not confront the aggressor
- Seek help from nearby people or businesses

**Safety Protocols:**
- Preserve evidence if possible
- Note details about the incident
- Seek medical attention if injured

**When to Call 911:** Immediately if you or someone else is in danger.`,

	models.CategorySuspicious: `**Immediate Actions:**
- Maintain a safe distance
- Note details about the situation
- Call 911 if you believe there is immediate danger
- Do not confront suspicious persons

**Safety Protocols:**
- Trust your instincts
- Alert building security if applicable
- Note any vehicle descriptions or license plates

**When to Call 911:** If you believe a crime is in progress or someone is in danger.`,

	models.CategoryTheft: `**Immediate Actions:**
- Ensure your personal safety first
- Do not confront the suspect
- Call 911 if the crime is in progress
- Move to a safe location

**Safety Protocols:**
- Note suspect descriptions
- Preserve the scene if safe
- Contact police non-emergency line for reports

**When to Call 911:** If the suspect is still present or if violence occurred.`,

	models.CategoryOther: `**Immediate Actions:**
- Assess the situation for immediate danger
- Call 911 if anyone is at risk
- Move to a safe location
- Follow official instructions if provided

**Safety Protocols:**
- Do not put yourself at risk
- Alert authorities to the situation
- Stay informed through official channels

**When to Call 911:** If there is any immediate threat to life or property.`,
}

// Fallback возвращает статическую инструкцию для категории.
// Любая категория вне закрытого набора получает текст категории "other".
func Fallback(category models.Category) string {
	if text, ok := fallbackTexts[category]; ok {
		return text
	}
	return fallbackTexts[models.CategoryOther]
}
