package chatService

import (
	"fmt"
	"strings"
	"time"

	"EportsTech/internal/defaults"
	"EportsTech/internal/entity"
	"EportsTech/internal/localization"
)

var toneGuides = map[entity.BotTone]string{
	entity.ToneProfessional: "Keep a professional, courteous register.",
	entity.ToneFriendly:     "Be warm and approachable.",
	entity.ToneEnthusiastic: "Be energetic and positive about the offering.",
	entity.ToneTechnical:    "Favour precise technical vocabulary.",
}

var lengthGuides = map[entity.ResponseLength]string{
	entity.LengthConcise:  "Answer in at most three sentences.",
	entity.LengthBalanced: "Answer in one or two short paragraphs.",
	entity.LengthDetailed: "Give thorough answers with examples when useful.",
}

var languageNames = map[entity.Language]string{
	entity.LanguageES: "Spanish",
	entity.LanguageCA: "Catalan",
	entity.LanguageEN: "English",
	entity.LanguageFR: "French",
	entity.LanguageDE: "German",
	entity.LanguageIT: "Italian",
}

// buildInstruction assembles the system instruction from the persona, the
// visible services and whether now falls inside business hours.
func buildInstruction(bot entity.BotConfig, services []entity.Service, lang entity.Language, now time.Time) string {
	var b strings.Builder

	name := bot.Name
	if name == "" {
		name = "EportsTech assistant"
	}
	fmt.Fprintf(&b, "You are %s, the virtual assistant of EportsTech, a B2B technology services company.\n", name)

	if guide, ok := toneGuides[bot.Tone]; ok {
		b.WriteString(guide + "\n")
	}
	if guide, ok := lengthGuides[bot.ResponseLength]; ok {
		b.WriteString(guide + "\n")
	}
	if language, ok := languageNames[lang]; ok {
		fmt.Fprintf(&b, "Reply in %s unless the visitor writes in another language.\n", language)
	}

	if bot.IsOpenAt(now) {
		b.WriteString("The team is available right now; offer to put the visitor in touch.\n")
	} else {
		fmt.Fprintf(&b, "The office is closed. Business hours are %s to %s (%s); invite the visitor to leave their details.\n",
			bot.BusinessHoursStart, bot.BusinessHoursEnd, bot.Timezone)
	}

	if bot.HighlightedProduct != "" {
		fmt.Fprintf(&b, "When relevant, highlight: %s.\n", bot.HighlightedProduct)
	}

	writeList(&b, "Services offered:", serviceLines(services, lang))
	writeList(&b, "Known facts:", bot.KnowledgeBase)
	writeList(&b, "Ask these qualifying questions when appropriate:", bot.QualifyingQuestions)
	writeList(&b, "Never do the following:", bot.Limitations)

	if custom := strings.TrimSpace(bot.CustomInstructions); custom != "" {
		b.WriteString("\n" + custom + "\n")
	}

	return b.String()
}

func serviceLines(services []entity.Service, lang entity.Language) []string {
	bundled := make(map[string]entity.Service)
	for _, svc := range defaults.Services() {
		bundled[svc.ID] = svc
	}

	lines := make([]string, 0, len(services))
	for _, svc := range services {
		if !svc.Visible {
			continue
		}
		fallback := bundled[svc.ID]
		lines = append(lines, fmt.Sprintf("%s: %s",
			localization.Text(svc.Title, lang, fallback.Title),
			localization.Text(svc.Description, lang, fallback.Description),
		))
	}
	return lines
}

func writeList(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n" + heading + "\n")
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			b.WriteString("- " + item + "\n")
		}
	}
}
