package defaults

import "EportsTech/internal/entity"

const (
	NavLogo        = "/logo-blue.png"
	FooterLogo     = "/logo-white.png"
	HeroImage      = "/hq-background.jpg"
	ContactEmail   = "contact@eportstech.com"
	ContactPhone   = "+34 900 123 456"
	OverlayOpacity = 0.6
	BotName        = "NEXI_tech"
)

// BrandConfig leaves every localized field empty so rendering falls through
// to the bundled copy in the localization package.
func BrandConfig() entity.BrandConfig {
	return entity.BrandConfig{
		NavLogo:      NavLogo,
		FooterLogo:   FooterLogo,
		ContactEmail: ContactEmail,
		ContactPhone: ContactPhone,
		Hero: entity.HeroConfig{
			Image:          HeroImage,
			ImagePosition:  entity.ImagePositionCenter,
			OverlayOpacity: OverlayOpacity,
		},
	}.Normalize()
}

func BotConfig() entity.BotConfig {
	return entity.BotConfig{
		Name:               BotName,
		Tone:               entity.ToneProfessional,
		ResponseLength:     entity.LengthBalanced,
		BusinessHoursStart: "09:00",
		BusinessHoursEnd:   "18:00",
		Timezone:           "Europe/Madrid",
		Limitations: []string{
			"Do not quote final prices; offer a personalised proposal instead.",
		},
		QualifyingQuestions: []string{
			"How many employees or sites does your company have?",
		},
	}.Normalize()
}

func NotificationSettings() entity.NotificationSettings {
	return entity.NotificationSettings{
		NotifyOnLead:         true,
		NotifyOnConfigurator: true,
	}.Normalize()
}
