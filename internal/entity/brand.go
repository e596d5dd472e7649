package entity

import (
	"errors"
	"fmt"
	"time"
)

// SingletonID is the fixed row id of every singleton configuration table.
const SingletonID = 1

const BenefitItemCount = 4

type ImagePosition string

const (
	ImagePositionCenter ImagePosition = "center"
	ImagePositionTop    ImagePosition = "top"
	ImagePositionBottom ImagePosition = "bottom"
	ImagePositionLeft   ImagePosition = "left"
	ImagePositionRight  ImagePosition = "right"
)

func (p ImagePosition) Valid() bool {
	switch p {
	case ImagePositionCenter, ImagePositionTop, ImagePositionBottom, ImagePositionLeft, ImagePositionRight:
		return true
	}
	return false
}

type HeroConfig struct {
	Image          string        `json:"image"`
	ImagePosition  ImagePosition `json:"imagePosition"`
	OverlayOpacity float64       `json:"overlayOpacity"`
	Title          LocalizedText `json:"title"`
	Subtitle       LocalizedText `json:"subtitle"`
	CTAText        LocalizedText `json:"ctaText"`
}

type BenefitItem struct {
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description"`
}

type BenefitsConfig struct {
	MainTitle LocalizedText `json:"mainTitle"`
	Subtitle  LocalizedText `json:"subtitle"`
	Items     []BenefitItem `json:"items"`
}

type FooterConfig struct {
	CopyrightText LocalizedText `json:"copyrightText"`
	PrivacyText   LocalizedText `json:"privacyText"`
	LegalText     LocalizedText `json:"legalText"`
	CookiesText   LocalizedText `json:"cookiesText"`
}

type BrandConfig struct {
	SiteName     string         `json:"siteName"`
	Favicon      string         `json:"favicon"`
	NavLogo      string         `json:"navLogo"`
	FooterLogo   string         `json:"footerLogo"`
	ContactEmail string         `json:"contactEmail"`
	ContactPhone string         `json:"contactPhone"`
	Hero         HeroConfig     `json:"hero"`
	Benefits     BenefitsConfig `json:"benefits"`
	Footer       FooterConfig   `json:"footer"`
	Version      int64          `json:"version"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// Normalize fills every localized record and pads the benefit list to
// exactly BenefitItemCount entries.
func (b BrandConfig) Normalize() BrandConfig {
	b.Hero.Title = b.Hero.Title.Normalize()
	b.Hero.Subtitle = b.Hero.Subtitle.Normalize()
	b.Hero.CTAText = b.Hero.CTAText.Normalize()
	if b.Hero.ImagePosition == "" {
		b.Hero.ImagePosition = ImagePositionCenter
	}

	b.Benefits.MainTitle = b.Benefits.MainTitle.Normalize()
	b.Benefits.Subtitle = b.Benefits.Subtitle.Normalize()
	items := make([]BenefitItem, 0, BenefitItemCount)
	for _, it := range b.Benefits.Items {
		items = append(items, BenefitItem{
			Title:       it.Title.Normalize(),
			Description: it.Description.Normalize(),
		})
	}
	for len(items) < BenefitItemCount {
		items = append(items, BenefitItem{Title: EmptyLocalizedText(), Description: EmptyLocalizedText()})
	}
	b.Benefits.Items = items

	b.Footer.CopyrightText = b.Footer.CopyrightText.Normalize()
	b.Footer.PrivacyText = b.Footer.PrivacyText.Normalize()
	b.Footer.LegalText = b.Footer.LegalText.Normalize()
	b.Footer.CookiesText = b.Footer.CookiesText.Normalize()
	return b
}

func (b BrandConfig) Validate() error {
	if !b.Hero.ImagePosition.Valid() {
		return fmt.Errorf("invalid hero image position %q", b.Hero.ImagePosition)
	}
	if b.Hero.OverlayOpacity < 0 || b.Hero.OverlayOpacity > 1 {
		return errors.New("hero overlay opacity must be within [0,1]")
	}
	if len(b.Benefits.Items) != BenefitItemCount {
		return fmt.Errorf("benefits must hold exactly %d items, got %d", BenefitItemCount, len(b.Benefits.Items))
	}
	return nil
}
