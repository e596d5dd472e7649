package leadService

import (
	"fmt"
	"strings"
	"time"

	"EportsTech/internal/entity"
	contextPkg "EportsTech/pkg/context"
	"EportsTech/pkg/smtp"
	"EportsTech/pkg/whatsapp"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const notifyTimeout = 30 * time.Second

// Notifier tells the sales team about new leads. Delivery failures are logged
// and never reach the visitor.
type Notifier interface {
	LeadCreated(ctx context.Context, lead entity.Lead)
	ConfiguratorLeadCreated(ctx context.Context, lead entity.ConfiguratorLead)
}

type SettingsSource interface {
	FetchNotificationSettings(ctx context.Context) (entity.NotificationSettings, entity.CollectionStatus)
}

type notifier struct {
	log      *logrus.Logger
	settings SettingsSource
	mailer   smtp.ItfSmtp
	whatsapp whatsapp.IWhatsappSender
}

// NewNotifier accepts a nil mailer or whatsapp sender for channels that are
// not configured.
func NewNotifier(
	log *logrus.Logger,
	settings SettingsSource,
	mailer smtp.ItfSmtp,
	whatsapp whatsapp.IWhatsappSender,
) Notifier {
	return &notifier{
		log:      log,
		settings: settings,
		mailer:   mailer,
		whatsapp: whatsapp,
	}
}

func (n *notifier) LeadCreated(ctx context.Context, lead entity.Lead) {
	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()

	settings, _ := n.settings.FetchNotificationSettings(ctx)
	if !settings.NotifyOnLead {
		return
	}

	subject := fmt.Sprintf("New lead: %s", lead.FullName)
	n.deliver(ctx, settings, lead.ID, subject, formatLead(lead))
}

func (n *notifier) ConfiguratorLeadCreated(ctx context.Context, lead entity.ConfiguratorLead) {
	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()

	settings, _ := n.settings.FetchNotificationSettings(ctx)
	if !settings.NotifyOnConfigurator {
		return
	}

	subject := fmt.Sprintf("New configurator request: %s (%d items)", lead.FullName, len(lead.SelectedItems))
	n.deliver(ctx, settings, lead.ID, subject, formatConfiguratorLead(lead))
}

func (n *notifier) deliver(ctx context.Context, settings entity.NotificationSettings, leadID, subject, body string) {
	requestID := contextPkg.GetRequestID(ctx)

	if n.mailer != nil && len(settings.EmailRecipients) > 0 {
		if err := n.mailer.SendMail(settings.EmailRecipients, subject, body); err != nil {
			n.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"lead_id":    leadID,
				"error":      err.Error(),
			}).Warn("Failed to send lead e-mail")
		}
	}

	if n.whatsapp == nil || !n.whatsapp.IsConnected() {
		return
	}
	for _, phone := range settings.WhatsappRecipients {
		if err := n.whatsapp.SendMessage(ctx, phone, subject+"\n\n"+body); err != nil {
			n.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"lead_id":    leadID,
				"error":      err.Error(),
			}).Warn("Failed to send lead whatsapp message")
		}
	}
}

func formatLead(lead entity.Lead) string {
	var b strings.Builder
	writeField(&b, "Name", lead.FullName)
	writeField(&b, "Company", lead.Company)
	writeField(&b, "E-mail", lead.Email)
	writeField(&b, "Phone", lead.Phone)
	writeField(&b, "Address", lead.Address)
	writeField(&b, "City", lead.City)
	writeField(&b, "Interest", lead.ServiceInterest)
	if lead.Message != "" {
		b.WriteString("\n")
		b.WriteString(lead.Message)
		b.WriteString("\n")
	}
	return b.String()
}

func formatConfiguratorLead(lead entity.ConfiguratorLead) string {
	var b strings.Builder
	writeField(&b, "Name", lead.FullName)
	writeField(&b, "Company", lead.Company)
	writeField(&b, "E-mail", lead.Email)
	writeField(&b, "Phone", lead.Phone)
	writeField(&b, "Address", lead.Address)
	writeField(&b, "City", lead.City)
	b.WriteString("\nSelected items:\n")
	for _, item := range lead.SelectedItems {
		fmt.Fprintf(&b, "- %s\n", item.Title.Get(entity.LanguageEN))
	}
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}
