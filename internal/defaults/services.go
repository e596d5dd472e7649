// Package defaults holds the bundled catalog and configuration served when
// the store is empty or unreachable, and pushed by the seed command.
package defaults

import "EportsTech/internal/entity"

var lt = entity.NewLocalizedText

func list(es, ca, en, fr, de, it []string) entity.LocalizedList {
	return entity.LocalizedList{
		entity.LanguageES: es,
		entity.LanguageCA: ca,
		entity.LanguageEN: en,
		entity.LanguageFR: fr,
		entity.LanguageDE: de,
		entity.LanguageIT: it,
	}
}

func s(v ...string) []string { return v }

var rawServices = []entity.Service{
	{
		ID:       "1",
		Category: entity.CategoryConsulting,
		Icon:     "Briefcase",
		Title:    lt("Consultoría", "Consultoria", "Consulting", "Consultant", "Beratung", "Consulenza"),
		Description: lt("Transformación Digital, Procesos", "Transformació Digital, Processos", "Digital Transformation, Processes",
			"Transformation Numérique, Processus", "Digitale Transformation, Prozesse", "Trasformazione Digitale, Processi"),
		ExtendedDescription: lt(
			"Acompañamiento estratégico integral. Analizamos la madurez digital de su empresa y diseñamos hojas de ruta para la digitalización de procesos, mejorando la eficiencia operativa y la toma de decisiones.",
			"Acompanyament estratègic integral. Analitzem la maduresa digital de la seva empresa i dissenyem fulls de ruta per a la digitalització de processos.",
			"Comprehensive strategic support. We analyze your company's digital maturity and design roadmaps for process digitalization.",
			"Soutien stratégique complet.",
			"Umfassende strategische Unterstützung.",
			"Supporto strategico completo.",
		),
		Features: list(
			s("Transformación digital", "Digitalización de procesos"),
			s("Transformació digital", "Digitalització de processos"),
			s("Digital Transformation", "Process Digitalization"),
			s("Transformation numérique", "Numérisation des processus"),
			s("Digitale Transformation", "Prozessdigitalisierung"),
			s("Trasformazione digitale", "Digitalizzazione dei processi"),
		),
	},
	{
		ID:       "2",
		Category: entity.CategoryConnectivity,
		Icon:     "Wifi",
		Title:    lt("Conectividad", "Connectivitat", "Connectivity", "Connectivité", "Konnektivität", "Connettività"),
		Description: lt("Fibra, Radio, Satélite, 4G/5G", "Fibra, Ràdio, Satèl·lit, 4G/5G", "Fiber, Radio, Satellite, 4G/5G",
			"Fibre, Radio, Satellite, 4G/5G", "Glasfaser, Funk, Satellit, 4G/5G", "Fibra, Radio, Satellite, 4G/5G"),
		ExtendedDescription: lt(
			"Soluciones de acceso a Internet de alta disponibilidad. Integramos múltiples tecnologías para garantizar conexión en cualquier ubicación geográfica, con sistemas de respaldo automático.",
			"Solucions d'accés a Internet d'alta disponibilitat. Integrem múltiples tecnologies per garantir connexió en qualsevol ubicació geogràfica.",
			"High availability Internet access solutions. We integrate multiple technologies to ensure connection in any geographical location.",
			"Solutions d'accès Internet haute disponibilité.",
			"Hochverfügbare Internetzugangslösungen.",
			"Soluzioni di accesso a Internet ad alta disponibilità.",
		),
		Features: list(
			s("Fibra óptica", "Radiofrecuencia", "Satélite", "4G/5G"),
			s("Fibra òptica", "Radiofreqüència", "Satèl·lit", "4G/5G"),
			s("Fiber optic", "Radiofrequency", "Satellite", "4G/5G"),
			s("Fibre optique", "Radiofréquence", "Satellite", "4G/5G"),
			s("Glasfaser", "Hochfrequenz", "Satellit", "4G/5G"),
			s("Fibra ottica", "Radiofrequenza", "Satellite", "4G/5G"),
		),
	},
	{
		ID:       "3",
		Category: entity.CategoryNetworking,
		Icon:     "Network",
		Title:    lt("Networking", "Networking", "Networking", "Réseautage", "Vernetzung", "Networking"),
		Description: lt("Gestión IT, VPN, WIFI, SDWAN", "Gestió IT, VPN, WIFI, SDWAN", "IT Mgmt, VPN, WIFI, SDWAN",
			"Gestion IT, VPN, WIFI, SDWAN", "IT-Mgmt, VPN, WIFI, SDWAN", "Gestione IT, VPN, WIFI, SDWAN"),
		ExtendedDescription: lt(
			"Arquitectura de redes avanzada para conectar sedes y usuarios. Gestión integral de la infraestructura de red, redes WiFi gestionadas de alta densidad y tecnología SD-WAN para optimizar el tráfico.",
			"Arquitectura de xarxes avançada per connectar seus i usuaris. Gestió integral de la infraestructura de xarxa, xarxes WiFi gestionades i SD-WAN.",
			"Advanced network architecture to connect sites and users. Comprehensive network infrastructure management, managed WiFi, and SD-WAN.",
			"Architecture réseau avancée pour connecter sites et utilisateurs.",
			"Fortschrittliche Netzwerkarchitektur zur Verbindung von Standorten und Benutzern.",
			"Architettura di rete avanzata per connettere sedi e utenti.",
		),
		Features: list(
			s("Gestión integral IT", "VPN", "WIFI gestionada", "Redes multisede (SDWAN)"),
			s("Gestió integral IT", "VPN", "WIFI gestionada", "Xarxes multiseu (SDWAN)"),
			s("Integral IT Management", "VPN", "Managed WIFI", "Multi-site networks (SDWAN)"),
			s("Gestion IT intégrale", "VPN", "WIFI géré", "Réseaux multi-sites (SDWAN)"),
			s("Ganzheitliches IT-Management", "VPN", "Managed WIFI", "Standortübergreifende Netzwerke (SDWAN)"),
			s("Gestione IT integrale", "VPN", "WIFI gestito", "Reti multisede (SDWAN)"),
		),
	},
	{
		ID:       "4",
		Category: entity.CategoryCybersecurity,
		Icon:     "ShieldCheck",
		Title:    lt("Ciberseguridad", "Ciberseguretat", "Cybersecurity", "Cybersécurité", "Cybersicherheit", "Sicurezza informatica"),
		Description: lt("Auditoría, Firewall, EDR, Email", "Auditoria, Firewall, EDR, Email", "Audit, Firewall, EDR, Email",
			"Audit, Pare-feu, EDR, Email", "Audit, Firewall, EDR, E-Mail", "Audit, Firewall, EDR, Email"),
		ExtendedDescription: lt(
			"Protección 360º para su empresa. Desde auditorías para detectar vulnerabilidades hasta firewalls gestionados (FWaaS), protección avanzada de dispositivos (EDR/XDR) y seguridad del correo electrónico.",
			"Protecció 360º per a la seva empresa. Des d'auditories per detectar vulnerabilitats fins a firewalls gestionats (FWaaS), EDR/XDR i seguretat del correu.",
			"360º protection for your company. From audits to detect vulnerabilities to managed firewalls (FWaaS), EDR/XDR protection, and email security.",
			"Protection 360º pour votre entreprise.",
			"360º-Schutz für Ihr Unternehmen.",
			"Protezione a 360º per la tua azienda.",
		),
		Features: list(
			s("Auditoria de ciberseguridad", "Firewall (Fwaas)", "EDR/XDR (antivirus)", "Email security"),
			s("Auditoria de ciberseguretat", "Firewall (Fwaas)", "EDR/XDR (antivirus)", "Email security"),
			s("Cybersecurity Audit", "Firewall (FWaaS)", "EDR/XDR (Antivirus)", "Email Security"),
			s("Audit de cybersécurité", "Pare-feu (FWaaS)", "EDR/XDR (Antivirus)", "Sécurité des e-mails"),
			s("Cybersicherheitsaudit", "Firewall (FWaaS)", "EDR/XDR (Antivirus)", "E-Mail-Sicherheit"),
			s("Audit di sicurezza informatica", "Firewall (FWaaS)", "EDR/XDR (Antivirus)", "Sicurezza email"),
		),
	},
	{
		ID:       "5",
		Category: entity.CategoryITInfrastructure,
		Icon:     "Server",
		Title:    lt("Infraestructura IT", "Infraestructura IT", "IT Infrastructure", "Infrastructure IT", "IT-Infrastruktur", "Infrastruttura IT"),
		Description: lt("Identidad, Cloud, VPS, Backup", "Identitat, Cloud, VPS, Backup", "Identity, Cloud, VPS, Backup",
			"Identité, Cloud, VPS, Sauvegarde", "Identität, Cloud, VPS, Backup", "Identità, Cloud, VPS, Backup"),
		ExtendedDescription: lt(
			"Soluciones de infraestructura robustas y escalables. Gestión de identidad digital corporativa, servidores en la nube (Cloud/VPS) y sistemas de copia de seguridad automatizados para garantizar la continuidad.",
			"Solucions d'infraestructura robustes i escalables. Gestió d'identitat digital, servidors al núvol (Cloud/VPS) i sistemes de còpia de seguretat.",
			"Robust and scalable infrastructure solutions. Corporate digital identity management, cloud servers (Cloud/VPS), and automated backup systems.",
			"Solutions d'infrastructure robustes et évolutives.",
			"Robuste und skalierbare Infrastrukturlösungen.",
			"Soluzioni infrastrutturali robuste e scalabili.",
		),
		Features: list(
			s("Identidad digital", "Cloud", "VPS", "Backup de datos"),
			s("Identitat digital", "Cloud", "VPS", "Backup de dades"),
			s("Digital Identity", "Cloud", "VPS", "Data Backup"),
			s("Identité numérique", "Cloud", "VPS", "Sauvegarde de données"),
			s("Digitale Identität", "Cloud", "VPS", "Datensicherung"),
			s("Identità digitale", "Cloud", "VPS", "Backup di dati"),
		),
	},
	{
		ID:       "6",
		Category: entity.CategoryTelephony,
		Icon:     "Smartphone",
		Title:    lt("Telefonía", "Telefonia", "Telephony", "Téléphonie", "Telefonie", "Telefonia"),
		Description: lt("Centralita VoIP, Fija, Móvil", "Centraleta VoIP, Fixa, Mòbil", "VoIP PBX, Fixed, Mobile",
			"PBX VoIP, Fixe, Mobile", "VoIP-PBX, Festnetz, Mobil", "PBX VoIP, Fisso, Mobile"),
		ExtendedDescription: lt(
			"Comunicaciones unificadas para la empresa moderna. Centralitas virtuales VoIP avanzadas, líneas fijas SIP Trunking y flotas de telefonía móvil corporativa con datos ilimitados.",
			"Comunicacions unificades per a l'empresa moderna. Centraletes virtuals VoIP avançades, línies fixes i flotes de telefonia mòbil.",
			"Unified communications for the modern enterprise. Advanced virtual VoIP PBXs, fixed lines, and corporate mobile fleets.",
			"Communications unifiées pour l'entreprise moderne.",
			"Unified Communications für das moderne Unternehmen.",
			"Comunicazioni unificate per l'azienda moderna.",
		),
		Features: list(
			s("Centralita VoIP", "Telefonía fija", "Telefonía móvil"),
			s("Centraleta VoIP", "Telefonia fixa", "Telefonia mòbil"),
			s("VoIP PBX", "Fixed Telephony", "Mobile Telephony"),
			s("PBX VoIP", "Téléphonie fixe", "Téléphonie mobile"),
			s("VoIP-TK-Anlage", "Festnetztelefonie", "Mobilfunk"),
			s("Centralino VoIP", "Telefonia fissa", "Telefonia mobile"),
		),
	},
	{
		ID:       "7",
		Category: entity.CategoryIOT,
		Icon:     "Cpu",
		Title:    lt("Sistemas IoT", "Sistemes IoT", "IoT Systems", "Systèmes IoT", "IoT-Systeme", "Sistemi IoT"),
		Description: lt("Eficiencia Energética (MODI)", "Eficiència Energètica (MODI)", "Energy Efficiency (MODI)",
			"Efficacité Énergétique (MODI)", "Energieeffizienz (MODI)", "Efficienza Energetica (MODI)"),
		ExtendedDescription: lt(
			"Plataformas de Internet de las Cosas para la monitorización y control. Especializados en la plataforma MODI Efficiency para la gestión y ahorro energético en instalaciones industriales y oficinas.",
			"Plataformes d'Internet de les Coses per al monitoratge i control. Especialitzats en la plataforma MODI Efficiency per a l'estalvi energètic.",
			"IoT platforms for monitoring and control. Specialized in the MODI Efficiency platform for energy management and savings.",
			"Plateformes IoT pour la surveillance et le contrôle.",
			"IoT-Plattformen zur Überwachung und Steuerung.",
			"Piattaforme IoT per monitoraggio e controllo.",
		),
		Features: list(
			s("Plataforma de eficiencia energética MODI Efficiency"),
			s("Plataforma d'eficiència energètica MODI Efficiency"),
			s("MODI Efficiency Energy Platform"),
			s("Plateforme d'efficacité énergétique MODI"),
			s("MODI-Energieeffizienzplattform"),
			s("Piattaforma di efficienza energetica MODI"),
		),
	},
	{
		ID:       "8",
		Category: entity.CategorySecurity,
		Icon:     "Camera",
		Title:    lt("Seguridad", "Seguretat", "Security", "Sécurité", "Sicherheit", "Sicurezza"),
		Description: lt("Videovigilancia (CCTV)", "Videovigilància (CCTV)", "Video Surveillance (CCTV)",
			"Vidéosurveillance (CCTV)", "Videoüberwachung (CCTV)", "Videosorveglianza (CCTV)"),
		ExtendedDescription: lt(
			"Sistemas avanzados de seguridad física. Cámaras de videovigilancia IP de alta resolución, control de accesos y sistemas de grabación para la protección integral de instalaciones.",
			"Sistemes avançats de seguretat física. Càmeres de videovigilància IP, control d'accessos i sistemes d'enregistrament per a la protecció integral d'instal·lacions.",
			"Advanced physical security systems. High-resolution IP video surveillance cameras, access control, and recording systems for comprehensive facility protection.",
			"Systèmes de sécurité physique avancés. Caméras de vidéosurveillance IP, contrôle d'accès et systèmes d'enregistrement pour la protection complète.",
			"Fortschrittliche physische Sicherheitssysteme. IP-Videoüberwachungskameras, Zugangskontrolle und Aufzeichnungssysteme für den umfassenden Schutz.",
			"Sistemi di sicurezza fisica avanzati. Telecamere di videosorveglianza IP, controllo accessi e sistemi di registrazione per la protezione completa.",
		),
		Features: list(
			s("Videovigilancia"),
			s("Videovigilància"),
			s("Video Surveillance"),
			s("Vidéosurveillance"),
			s("Videoüberwachung"),
			s("Videosorveglianza"),
		),
	},
}

// Services returns a fresh copy of the bundled catalog, every entry visible
// and ordered by its position.
func Services() []entity.Service {
	out := make([]entity.Service, 0, len(rawServices))
	for i, svc := range rawServices {
		svc.Visible = true
		svc.Order = i
		out = append(out, svc.Normalize())
	}
	return out
}

// CategoryOf maps a service interest label (the English service title) back
// to its category. Unknown labels return "".
func CategoryOf(serviceInterest string) entity.ServiceCategory {
	for _, svc := range rawServices {
		if svc.Title.Get(entity.LanguageEN) == serviceInterest {
			return svc.Category
		}
	}
	return ""
}
