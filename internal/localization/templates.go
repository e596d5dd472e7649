package localization

import (
	"strings"

	"EportsTech/internal/entity"
)

var quoteIntro = lt(
	"Hola, estoy interesado en recibir información y presupuesto sobre la siguiente configuración personalizada para mi empresa:",
	"Hola, estic interessat en rebre informació i pressupost sobre la següent configuració personalitzada per a la meva empresa:",
	"Hello, I am interested in receiving information and a quote for the following custom configuration for my company:",
	"Bonjour, je souhaite recevoir des informations et un devis pour la configuration personnalisée suivante pour mon entreprise:",
	"Hallo, ich bin daran interessiert, Informationen und ein Angebot für die folgende kundenspezifische Konfiguration für mein Unternehmen zu erhalten:",
	"Salve, sono interessato a ricevere informazioni e un preventivo per la seguente configurazione personalizzata per la mia azienda:",
)

var serviceRequest = lt(
	"Hola, me gustaría solicitar más información y asesoramiento sobre vuestra solución de {title}.",
	"Hola, m'agradaria sol·licitar més informació i assessorament sobre la vostra solució de {title}.",
	"Hello, I would like to request more information about your {title} solution.",
	"Bonjour, je souhaite demander plus d'informations sur votre solution {title}.",
	"Hallo, ich möchte weitere Informationen zu Ihrer Lösung {title} anfordern.",
	"Salve, vorrei richiedere maggiori informazioni sulla vostra soluzione {title}.",
)

var consultation = lt(
	"Hola, estoy interesado en recibir una consultoría gratuita para analizar las necesidades tecnológicas de mi empresa.",
	"Hola, estic interessat en rebre una consultoria gratuïta per analitzar les necessitats tecnològiques de la meva empresa.",
	"Hello, I am interested in receiving a free consultation to analyze my company's technological needs.",
	"Bonjour, je suis intéressé par une consultation gratuite pour analyser les besoins technologiques de mon entreprise.",
	"Hallo, ich bin an einer kostenlosen Beratung interessiert, um die technologischen Bedürfnisse meines Unternehmens zu analysieren.",
	"Salve, sono interessato a ricevere una consulenza gratuita per analizzare le esigenze tecnologiche della mia azienda.",
)

var chatApology = lt(
	"Lo siento, ahora mismo no puedo responder. Por favor, inténtalo de nuevo en unos minutos o déjanos tus datos en el formulario de contacto.",
	"Ho sento, ara mateix no puc respondre. Si us plau, torna-ho a provar d'aquí a uns minuts o deixa'ns les teves dades al formulari de contacte.",
	"Sorry, I can't answer right now. Please try again in a few minutes or leave your details in the contact form.",
	"Désolé, je ne peux pas répondre pour le moment. Veuillez réessayer dans quelques minutes ou laissez vos coordonnées dans le formulaire de contact.",
	"Entschuldigung, ich kann gerade nicht antworten. Bitte versuchen Sie es in ein paar Minuten erneut oder hinterlassen Sie Ihre Daten im Kontaktformular.",
	"Mi dispiace, al momento non posso rispondere. Riprova tra qualche minuto oppure lasciaci i tuoi dati nel modulo di contatto.",
)

var chatGreeting = lt(
	"👋 ¡Hola! Soy {name}. ¿En qué puedo ayudarte con las soluciones de EportsTech hoy?",
	"👋 Hola! Soc {name}. En què et puc ajudar amb les solucions d'EportsTech avui?",
	"👋 Hi! I'm {name}. How can I help you with EportsTech solutions today?",
	"👋 Bonjour ! Je suis {name}. Comment puis-je vous aider avec les solutions EportsTech aujourd'hui ?",
	"👋 Hallo! Ich bin {name}. Wie kann ich Ihnen heute mit den Lösungen von EportsTech helfen?",
	"👋 Ciao! Sono {name}. Come posso aiutarti con le soluzioni EportsTech oggi?",
)

// template lookups only ever fall back to English
func pick(t entity.LocalizedText, lang entity.Language) string {
	return Resolve(t.Get(lang), t.Get(entity.LanguageEN))
}

func QuoteIntro(lang entity.Language) string {
	return pick(quoteIntro, lang)
}

func ServiceRequest(lang entity.Language, title string) string {
	return strings.ReplaceAll(pick(serviceRequest, lang), "{title}", title)
}

func Consultation(lang entity.Language) string {
	return pick(consultation, lang)
}

func ChatApology(lang entity.Language) string {
	return pick(chatApology, lang)
}

func ChatGreeting(lang entity.Language, botName string) string {
	return strings.ReplaceAll(pick(chatGreeting, lang), "{name}", botName)
}
