package entity

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

type BotTone string

const (
	ToneProfessional BotTone = "professional"
	ToneFriendly     BotTone = "friendly"
	ToneEnthusiastic BotTone = "enthusiastic"
	ToneTechnical    BotTone = "technical"
)

type ResponseLength string

const (
	LengthConcise  ResponseLength = "concise"
	LengthBalanced ResponseLength = "balanced"
	LengthDetailed ResponseLength = "detailed"
)

const clockLayout = "15:04"

type BotConfig struct {
	Name                string         `json:"name"`
	Tone                BotTone        `json:"tone"`
	ResponseLength      ResponseLength `json:"responseLength"`
	HighlightedProduct  string         `json:"highlightedProduct"`
	BusinessHoursStart  string         `json:"businessHoursStart"`
	BusinessHoursEnd    string         `json:"businessHoursEnd"`
	Timezone            string         `json:"timezone"`
	Limitations         []string       `json:"limitations"`
	QualifyingQuestions []string       `json:"qualifyingQuestions"`
	CustomInstructions  string         `json:"customInstructions"`
	KnowledgeBase       []string       `json:"knowledgeBase"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}

func (b BotConfig) Normalize() BotConfig {
	if b.Limitations == nil {
		b.Limitations = []string{}
	}
	if b.QualifyingQuestions == nil {
		b.QualifyingQuestions = []string{}
	}
	if b.KnowledgeBase == nil {
		b.KnowledgeBase = []string{}
	}
	return b
}

// Validate only checks the fields the business-hours computation parses.
func (b BotConfig) Validate() error {
	switch b.Tone {
	case ToneProfessional, ToneFriendly, ToneEnthusiastic, ToneTechnical:
	default:
		return fmt.Errorf("invalid tone %q", b.Tone)
	}
	switch b.ResponseLength {
	case LengthConcise, LengthBalanced, LengthDetailed:
	default:
		return fmt.Errorf("invalid response length %q", b.ResponseLength)
	}
	if _, err := time.Parse(clockLayout, b.BusinessHoursStart); err != nil {
		return fmt.Errorf("invalid business hours start %q", b.BusinessHoursStart)
	}
	if _, err := time.Parse(clockLayout, b.BusinessHoursEnd); err != nil {
		return fmt.Errorf("invalid business hours end %q", b.BusinessHoursEnd)
	}
	if _, err := time.LoadLocation(b.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q", b.Timezone)
	}
	return nil
}

// IsOpenAt reports whether t falls inside the configured business hours,
// evaluated in the bot's timezone. Unparseable settings count as closed.
func (b BotConfig) IsOpenAt(t time.Time) bool {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return false
	}
	start, err := time.Parse(clockLayout, b.BusinessHoursStart)
	if err != nil {
		return false
	}
	end, err := time.Parse(clockLayout, b.BusinessHoursEnd)
	if err != nil {
		return false
	}

	local := t.In(loc)
	minutes := local.Hour()*60 + local.Minute()
	from := start.Hour()*60 + start.Minute()
	to := end.Hour()*60 + end.Minute()
	if from <= to {
		return minutes >= from && minutes < to
	}
	// window wraps past midnight
	return minutes >= from || minutes < to
}
