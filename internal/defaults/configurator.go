package defaults

import (
	"fmt"

	"EportsTech/internal/entity"
)

var categoryBenefits = map[entity.ServiceCategory]entity.LocalizedText{
	entity.CategoryConsulting:       lt("Estrategia y eficiencia", "Estratègia i eficiència", "Strategy and efficiency", "Stratégie et efficacité", "Strategie und Effizienz", "Strategia ed efficienza"),
	entity.CategoryConnectivity:     lt("Alta velocidad garantizada", "Alta velocitat garantida", "Guaranteed high speed", "Haute vitesse garantie", "Garantierte hohe Geschwindigkeit", "Alta velocità garantita"),
	entity.CategoryNetworking:       lt("Redes seguras y estables", "Xarxes segures i estables", "Secure and stable networks", "Réseaux sécurisés et stables", "Sichere und stabile Netzwerke", "Reti sicure e stabili"),
	entity.CategoryCybersecurity:    lt("Protección de activos", "Protecció d'actius", "Asset protection", "Protection des actifs", "Vermögensschutz", "Protezione degli asset"),
	entity.CategoryITInfrastructure: lt("Infraestructura escalable", "Infraestructura escalable", "Scalable infrastructure", "Infrastructure évolutive", "Skalierbare Infrastruktur", "Infrastruttura scalabile"),
	entity.CategoryTelephony:        lt("Comunicaciones unificadas", "Comunicacions unificades", "Unified communications", "Communications unifiées", "Unified Communications", "Comunicazioni unificate"),
	entity.CategoryIOT:              lt("Control y ahorro", "Control i estalvi", "Control and savings", "Contrôle et économies", "Kontrolle und Einsparungen", "Controllo e risparmio"),
	entity.CategorySecurity:         lt("Vigilancia 24/7", "Vigilància 24/7", "24/7 Surveillance", "Surveillance 24/7", "24/7 Überwachung", "Sorveglianza 24/7"),
}

// CategoryBenefit falls back to the consulting benefit for unknown categories.
func CategoryBenefit(category entity.ServiceCategory) entity.LocalizedText {
	if b, ok := categoryBenefits[category]; ok {
		return b.Normalize()
	}
	return categoryBenefits[entity.CategoryConsulting].Normalize()
}

// ConfiguratorItems derives one selectable item per feature line of each
// bundled service. The Spanish feature list decides how many items a service
// yields; missing translations reuse the first feature of that language.
func ConfiguratorItems() []entity.ConfiguratorItem {
	return ItemsFromServices(Services())
}

func ItemsFromServices(services []entity.Service) []entity.ConfiguratorItem {
	items := make([]entity.ConfiguratorItem, 0)
	order := 0

	for _, svc := range services {
		base := svc.Features.Get(entity.LanguageES)
		for idx := range base {
			title := make(entity.LocalizedText, len(entity.SupportedLanguages))
			for _, lang := range entity.SupportedLanguages {
				feats := svc.Features.Get(lang)
				if len(feats) == 0 {
					feats = base
				}
				switch {
				case idx < len(feats) && feats[idx] != "":
					title[lang] = feats[idx]
				case len(feats) > 0 && feats[0] != "":
					title[lang] = feats[0]
				default:
					title[lang] = "Service"
				}
			}

			items = append(items, entity.ConfiguratorItem{
				ID:       fmt.Sprintf("conf-%s-%d", svc.Category, idx),
				Icon:     svc.Icon,
				Category: svc.Category,
				Title:    title,
				Benefit:  CategoryBenefit(svc.Category),
				Visible:  true,
				Order:    order,
			})
			order++
		}
	}

	return items
}
