package localization

import (
	"strconv"
	"strings"

	"EportsTech/internal/entity"
)

var lt = entity.NewLocalizedText

var (
	HeroTitle = lt(
		"Soluciones Inteligentes para un Entorno Empresarial Competitivo",
		"Solucions Intel·ligents per a un Entorn Empresarial Competitiu",
		"Intelligent Solutions for a Competitive Business Environment",
		"Des solutions intelligentes pour un environnement commercial compétitif",
		"Intelligente Lösungen für ein wettbewerbsfähiges Geschäftsumfeld",
		"Soluzioni intelligenti per un ambiente aziendale competitivo",
	)
	HeroSubtitle = lt(
		"Desarrollo e Integración de Soluciones Avanzadas en Energía, Sistemas y Telecomunicaciones",
		"Desenvolupament i Integració de Solucions Avançades en Energia, Sistemas i Telecomunicacions",
		"Development and Integration of Advanced Solutions in Energy, Systems, and Telecommunications",
		"Développement et intégration de solutions avancées en énergie, systèmes et télécommunications",
		"Entwicklung und Integration fortschrittlicher Lösungen in den Bereichen Energie, Systeme und Telekommunikation",
		"Sviluppo e integrazione di soluzioni avanzate in energia, sistemi e telecomunicazioni",
	)
	HeroCTA = lt(
		"Solicita una Consultoría Gratuita",
		"Sol·licita una Consultoria Gratuïta",
		"Request a Free Consultation",
		"Demander une consultation gratuite",
		"Kostenlose Beratung anfordern",
		"Richiedi una consulenza gratuita",
	)

	BenefitsTitle = lt(
		"¿Por qué elegir EportsTech?",
		"Per què triar EportsTech?",
		"Why Choose EportsTech?",
		"Pourquoi choisir EportsTech?",
		"Warum EportsTech wählen?",
		"Perché scegliere EportsTech?",
	)
	BenefitsSubtitle = lt(
		"Unificamos tecnología, estrategia y soporte para impulsar tu crecimiento.",
		"Unifiquem tecnologia, estratègia i suport per impulsar el teu creixement.",
		"We unify technology, strategy, and support to drive your growth.",
		"Nous unifions technologie, stratégie et support.",
		"Wir vereinen Technologie, Strategie und Support.",
		"Unifichiamo tecnologia, strategia e supporto.",
	)

	BenefitTitles = [entity.BenefitItemCount]entity.LocalizedText{
		lt("Visión Integral 360º", "Visió Integral 360º", "360º Integral Vision", "Vision Intégrale", "Integrale Vision", "Visione Integrale"),
		lt("Soporte Proactivo", "Suport Proactiu", "Proactive Support", "Support Proactif", "Proaktiver Support", "Supporto Proattivo"),
		lt("Innovación Real", "Innovació Real", "Real Innovation", "Innovation Réelle", "Echte Innovation", "Vera Innovazione"),
		lt("Escalabilidad", "Escalabilitat", "Scalability", "Évolutivité", "Skalierbarkeit", "Scalabilità"),
	}

	BenefitDescriptions = [entity.BenefitItemCount]entity.LocalizedText{
		lt(
			"Centralizamos todas sus necesidades tecnológicas (Energía, Telecomunicaciones, IT) en un único socio estratégico.",
			"Centralitzem totes les teves necessitats tecnològiques en un únic soci estratègic.",
			"We centralize all your tech needs (Energy, Telco, IT) in a single strategic partner.",
			"Nous centralisons tous vos besoins technologiques (Énergie, Télécoms, IT) en un seul partenaire stratégique.",
			"Wir zentralisieren alle Ihre technologischen Bedürfnisse (Energie, Telekommunikation, IT) bei einem einzigen strategischen Partner.",
			"Centralizziamo tutte le tue esigenze tecnologiche (Energia, Telecomunicazioni, IT) in un unico partner strategico.",
		),
		lt(
			"Monitorización constante para prevenir incidencias antes de que ocurran. Tu continuidad de negocio es nuestra prioridad.",
			"Monitoratge constant per prevenir incidències. La teva continuïtat és la nostra prioritat.",
			"Constant monitoring to prevent issues. Your business continuity is our priority.",
			"Surveillance constante pour prévenir les problèmes. Votre continuité d'activité est notre priorité.",
			"Ständige Überwachung zur Vermeidung von Problemen. Ihre Geschäftskontinuität ist unsere Priorität.",
			"Monitoraggio costante per prevenire i problemi. La continuità del tuo business è la nostra priorità.",
		),
		lt(
			"Implementamos las últimas tecnologías (IoT, AI, Cloud) adaptadas a la realidad y presupuesto de tu empresa.",
			"Implementem les últimes tecnologies adaptades a la realitat i pressupost de la teva empresa.",
			"We implement the latest technologies (IoT, AI, Cloud) adapted to your reality.",
			"Nous mettons en œuvre les dernières technologies (IoT, IA, Cloud) adaptées à votre réalité.",
			"Wir implementieren die neuesten Technologien (IoT, KI, Cloud), angepasst an Ihre Realität.",
			"Implementiamo le ultime tecnologie (IoT, AI, Cloud) adattate alla tua realtà.",
		),
		lt(
			"Soluciones que crecen contigo. Desde startups hasta grandes corporaciones, nos adaptamos a tu ritmo.",
			"Solucions que creixen amb tu. Des de startups fins a grans corporacions.",
			"Solutions that grow with you. From startups to large corporations.",
			"Des solutions qui grandissent avec vous. Des startups aux grandes entreprises.",
			"Lösungen, die mit Ihnen wachsen. Von Startups bis hin zu großen Unternehmen.",
			"Soluzioni che crescono con te. Dalle startup alle grandi aziende.",
		),
	}

	// Footer labels only ship in English; other languages fall through to it.
	FooterPrivacy = entity.LocalizedText{entity.LanguageEN: "Privacy Policy"}
	FooterLegal   = entity.LocalizedText{entity.LanguageEN: "Legal Notice"}
	FooterCookies = entity.LocalizedText{entity.LanguageEN: "Cookies"}
)

const copyrightTemplate = "EportsTech © {year}"

func FooterCopyright(year int) entity.LocalizedText {
	return entity.LocalizedText{
		entity.LanguageEN: strings.ReplaceAll(copyrightTemplate, "{year}", strconv.Itoa(year)),
	}
}
