package localization

import "EportsTech/internal/entity"

type Insight struct {
	Growth   string `json:"growth"`
	Security string `json:"security"`
}

type insightTexts struct {
	growth   entity.LocalizedText
	security entity.LocalizedText
}

const (
	insightCustom  = "custom"
	insightDefault = "default"
)

var insights = map[string]insightTexts{
	string(entity.CategoryConsulting): {
		growth: entity.LocalizedText{
			entity.LanguageES: "La digitalización de procesos reduce los costes operativos un 30% en el primer año.",
			entity.LanguageCA: "La digitalització de processos redueix els costos operatius un 30% el primer any.",
			entity.LanguageEN: "Process digitalization reduces operational costs by 30% in the first year.",
		},
		security: entity.LocalizedText{
			entity.LanguageES: "El 70% de los fallos de seguridad se deben a errores humanos y falta de protocolos.",
			entity.LanguageCA: "El 70% de les fallades de seguretat es deuen a errors humans i manca de protocols.",
			entity.LanguageEN: "70% of security breaches are due to human error and lack of protocols.",
		},
	},
	string(entity.CategoryConnectivity): {
		growth: entity.LocalizedText{
			entity.LanguageES: "Una conexión de fibra dedicada aumenta la productividad del equipo en un 15%.",
			entity.LanguageCA: "Una connexió de fibra dedicada augmenta la productivitat de l'equip en un 15%.",
			entity.LanguageEN: "A dedicated fiber connection increases team productivity by 15%.",
		},
		security: entity.LocalizedText{
			entity.LanguageES: "El 99.9% de disponibilidad garantiza la continuidad del negocio ante fallos de red.",
			entity.LanguageCA: "El 99.9% de disponibilitat garanteix la continuïtat del negoci davant fallades de xarxa.",
			entity.LanguageEN: "99.9% availability ensures business continuity in case of network failures.",
		},
	},
	string(entity.CategoryCybersecurity): {
		growth: entity.LocalizedText{
			entity.LanguageES: "Las empresas con certificación de seguridad cierran contratos un 40% más rápido.",
			entity.LanguageCA: "Les empreses amb certificació de seguretat tanquen contractes un 40% més ràpid.",
			entity.LanguageEN: "Companies with security certification close deals 40% faster.",
		},
		security: entity.LocalizedText{
			entity.LanguageES: "Un ataque de ransomware cuesta de media 150.000€ a una PYME. Protege tus activos.",
			entity.LanguageCA: "Un atac de ransomware costa de mitjana 150.000€ a una PIME. Protegeix els teus actius.",
			entity.LanguageEN: "A ransomware attack costs an average of €150k to an SMB. Protect your assets.",
		},
	},
	string(entity.CategoryTelephony): {
		growth: entity.LocalizedText{
			entity.LanguageES: "La telefonía VoIP reduce la factura de comunicaciones hasta un 50% mensual.",
			entity.LanguageCA: "La telefonia VoIP redueix la factura de comunicacions fins a un 50% mensual.",
			entity.LanguageEN: "VoIP telephony reduces the communications bill by up to 50% monthly.",
		},
		security: entity.LocalizedText{
			entity.LanguageES: "Las comunicaciones cifradas evitan el espionaje industrial y la fuga de datos.",
			entity.LanguageCA: "Les comunicacions xifrades eviten l'espionatge industrial i la fuga de dades.",
			entity.LanguageEN: "Encrypted communications prevent industrial espionage and data leakage.",
		},
	},
	insightCustom: {
		growth: lt(
			"Las soluciones a medida mejoran el ROI un 25% frente a paquetes estandarizados.",
			"Les solucions a mida milloren el ROI un 25% enfront de paquets estandarditzats.",
			"Tailored solutions improve ROI by 25% compared to standardized packages.",
			"Les solutions sur mesure améliorent le ROI de 25%.",
			"Maßgeschneiderte Lösungen verbessern den ROI um 25%.",
			"Le soluzioni su misura migliorano il ROI del 25%.",
		),
		security: lt(
			"Un enfoque integral elimina brechas de seguridad entre proveedores desconectados.",
			"Un enfocament integral elimina bretxes de seguretat entre proveïdors desconnectats.",
			"A comprehensive approach eliminates security gaps between disconnected providers.",
			"Une approche globale élimine les failles de sécurité.",
			"Ein umfassender Ansatz beseitigt Sicherheitslücken.",
			"Un approccio globale elimina le lacune di sicurezza.",
		),
	},
	insightDefault: {
		growth: lt(
			"Las empresas que invierten en tecnología escalan 3 veces más rápido que sus competidores.",
			"Les empreses que inverteixen en tecnologia escalen 3 vegades més ràpid que els competidors.",
			"Companies investing in technology scale 3x faster than competitors.",
			"Les entreprises technologiques évoluent 3 fois plus vite.",
			"Technologieunternehmen skalieren dreimal schneller.",
			"Le aziende tecnologiche scalano 3 volte più velocemente.",
		),
		security: lt(
			"La prevención tecnológica ahorra miles de euros en recuperaciones de desastres.",
			"La prevenció tecnològica estalvia milers d'euros en recuperacions de desastres.",
			"Tech prevention saves thousands in disaster recovery costs.",
			"La prévention technologique permet d'économiser des milliers d'euros.",
			"Technologieprävention spart Tausende Euro.",
			"La prevenzione tecnologica fa risparmiare migliaia di euro.",
		),
	},
}

// InsightsFor picks the market insights shown next to the contact form.
// category is empty when the service interest matches no known service.
func InsightsFor(serviceInterest string, category entity.ServiceCategory, lang entity.Language) Insight {
	key := string(category)
	if serviceInterest == entity.ServiceInterestCustomConfiguration {
		key = insightCustom
	}
	texts, ok := insights[key]
	if !ok {
		texts = insights[insightDefault]
	}
	return Insight{
		Growth:   pick(texts.growth, lang),
		Security: pick(texts.security, lang),
	}
}
