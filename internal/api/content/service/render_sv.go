package contentService

import (
	"time"

	"EportsTech/internal/api/content"
	"EportsTech/internal/defaults"
	"EportsTech/internal/entity"
	"EportsTech/internal/localization"
	contextPkg "EportsTech/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const defaultSiteName = "EportsTech"

func bundledServices() map[string]entity.Service {
	out := make(map[string]entity.Service)
	for _, svc := range defaults.Services() {
		out[svc.ID] = svc
	}
	return out
}

func renderService(svc entity.Service, bundled entity.Service, lang entity.Language) content.RenderedService {
	description := localization.Text(svc.Description, lang, bundled.Description)

	return content.RenderedService{
		ID:          svc.ID,
		Icon:        svc.Icon,
		Category:    svc.Category,
		Title:       localization.Text(svc.Title, lang, bundled.Title),
		Description: description,
		ExtendedDescription: localization.Resolve(
			localization.Text(svc.ExtendedDescription, lang, bundled.ExtendedDescription),
			description,
		),
		Features: localization.List(svc.Features, lang, bundled.Features),
		Order:    svc.Order,
	}
}

// RenderServices resolves the visible services for one language. Hidden
// services stay in the raw collection but never reach the grid.
func (s *contentService) RenderServices(ctx context.Context, lang entity.Language) content.RenderedServicesResponse {
	result := s.FetchServices(ctx)
	bundled := bundledServices()

	rendered := make([]content.RenderedService, 0, len(result.Items))
	for _, svc := range result.Items {
		if !svc.Visible {
			continue
		}
		rendered = append(rendered, renderService(svc, bundled[svc.ID], lang))
	}

	return content.RenderedServicesResponse{
		Status:   result.Status,
		Language: lang,
		Services: rendered,
	}
}

func (s *contentService) RenderBrand(ctx context.Context, lang entity.Language, now time.Time) content.RenderedBrand {
	cfg, status := s.FetchBrandConfig(ctx)

	benefits := make([]content.RenderedBenefit, 0, entity.BenefitItemCount)
	for i := 0; i < entity.BenefitItemCount; i++ {
		var item entity.BenefitItem
		if i < len(cfg.Benefits.Items) {
			item = cfg.Benefits.Items[i]
		}
		benefits = append(benefits, content.RenderedBenefit{
			Title:       localization.Text(item.Title, lang, localization.BenefitTitles[i]),
			Description: localization.Text(item.Description, lang, localization.BenefitDescriptions[i]),
		})
	}

	position := cfg.Hero.ImagePosition
	if !position.Valid() {
		position = entity.ImagePositionCenter
	}

	return content.RenderedBrand{
		Status:       status,
		Language:     lang,
		Version:      cfg.Version,
		SiteName:     localization.Resolve(cfg.SiteName, defaultSiteName),
		Favicon:      cfg.Favicon,
		NavLogo:      localization.Resolve(cfg.NavLogo, defaults.NavLogo),
		FooterLogo:   localization.Resolve(cfg.FooterLogo, defaults.FooterLogo),
		ContactEmail: localization.Resolve(cfg.ContactEmail, defaults.ContactEmail),
		ContactPhone: localization.Resolve(cfg.ContactPhone, defaults.ContactPhone),
		Hero: content.RenderedHero{
			Image:          localization.Resolve(cfg.Hero.Image, defaults.HeroImage),
			ImagePosition:  position,
			OverlayOpacity: cfg.Hero.OverlayOpacity,
			Title:          localization.Text(cfg.Hero.Title, lang, localization.HeroTitle),
			Subtitle:       localization.Text(cfg.Hero.Subtitle, lang, localization.HeroSubtitle),
			CTAText:        localization.Text(cfg.Hero.CTAText, lang, localization.HeroCTA),
		},
		Benefits: content.RenderedBenefits{
			Title:    localization.Text(cfg.Benefits.MainTitle, lang, localization.BenefitsTitle),
			Subtitle: localization.Text(cfg.Benefits.Subtitle, lang, localization.BenefitsSubtitle),
			Items:    benefits,
		},
		Footer: content.RenderedFooter{
			Copyright: localization.Text(cfg.Footer.CopyrightText, lang, localization.FooterCopyright(now.Year())),
			Privacy:   localization.Text(cfg.Footer.PrivacyText, lang, localization.FooterPrivacy),
			Legal:     localization.Text(cfg.Footer.LegalText, lang, localization.FooterLegal),
			Cookies:   localization.Text(cfg.Footer.CookiesText, lang, localization.FooterCookies),
		},
	}
}

// ServiceRequest builds the contact form prefill for one service. The
// service interest is always the English title so leads group by service
// regardless of the visitor's language.
func (s *contentService) ServiceRequest(ctx context.Context, id string, lang entity.Language) (content.PrefillResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	bundled := bundledServices()

	for _, svc := range s.FetchServices(ctx).Items {
		if svc.ID != id {
			continue
		}
		fallback := bundled[svc.ID]
		return content.PrefillResponse{
			ServiceInterest: localization.Text(svc.Title, entity.LanguageEN, fallback.Title),
			Message:         localization.ServiceRequest(lang, localization.Text(svc.Title, lang, fallback.Title)),
		}, nil
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"id":         id,
	}).Warn("Service not found for request prefill")
	return content.PrefillResponse{}, content.ErrServiceNotFound
}

func (s *contentService) Consultation(lang entity.Language) content.PrefillResponse {
	return content.PrefillResponse{
		ServiceInterest: entity.ServiceInterestConsulting,
		Message:         localization.Consultation(lang),
	}
}

func (s *contentService) Insights(ctx context.Context, serviceInterest string, lang entity.Language) content.InsightResponse {
	category := s.categoryOf(ctx, serviceInterest)
	insight := localization.InsightsFor(serviceInterest, category, lang)

	return content.InsightResponse{
		ServiceInterest: serviceInterest,
		Growth:          insight.Growth,
		Security:        insight.Security,
	}
}

// categoryOf matches the interest against live English titles first, then
// the bundled catalog.
func (s *contentService) categoryOf(ctx context.Context, serviceInterest string) entity.ServiceCategory {
	if serviceInterest == "" || serviceInterest == entity.ServiceInterestCustomConfiguration {
		return ""
	}
	for _, svc := range s.FetchServices(ctx).Items {
		if svc.Title.Get(entity.LanguageEN) == serviceInterest {
			return svc.Category
		}
	}
	return defaults.CategoryOf(serviceInterest)
}
