package whatsapp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"EportsTech/database/postgres"

	"github.com/sirupsen/logrus"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	waLog "go.mau.fi/whatsmeow/util/log"
	"google.golang.org/protobuf/proto"
)

var ErrNotConnected = errors.New("whatsapp client is not connected")

type IWhatsappSender interface {
	SendMessage(ctx context.Context, phoneNumber, message string) error
	Disconnect() error
	IsConnected() bool
}

type whatsappSender struct {
	client *whatsmeow.Client
}

// New opens the device store in the application database and connects. An
// unpaired device logs its pairing QR code until it is scanned or timeout
// elapses.
func New(ctx context.Context, timeout time.Duration) (IWhatsappSender, error) {
	dsn := postgres.FormatDSN()

	container, err := sqlstore.New(ctx, "postgres", dsn, waLog.Stdout("Database", "WARN", true))
	if err != nil {
		return nil, fmt.Errorf("failed to open whatsapp store: %w", err)
	}

	deviceStore, err := container.GetFirstDevice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get device store: %w", err)
	}

	client := whatsmeow.NewClient(deviceStore, waLog.Stdout("Client", "WARN", true))

	connected := make(chan struct{}, 1)
	client.AddEventHandler(func(evt interface{}) {
		if _, ok := evt.(*events.Connected); ok {
			select {
			case connected <- struct{}{}:
			default:
			}
		}
	})

	if client.Store.ID == nil {
		qrChan, _ := client.GetQRChannel(ctx)
		if err := client.Connect(); err != nil {
			return nil, fmt.Errorf("failed to connect: %w", err)
		}

		go func() {
			for evt := range qrChan {
				if evt.Event == "code" {
					logrus.WithField("qr", evt.Code).Warn("WhatsApp device not paired, scan QR code")
				}
			}
		}()
	} else {
		if err := client.Connect(); err != nil {
			return nil, fmt.Errorf("failed to connect: %w", err)
		}
	}

	select {
	case <-connected:
		logrus.Info("WhatsApp connected")
	case <-time.After(timeout):
		client.Disconnect()
		return nil, fmt.Errorf("whatsapp connection timeout")
	case <-ctx.Done():
		client.Disconnect()
		return nil, ctx.Err()
	}

	return &whatsappSender{
		client: client,
	}, nil
}

func (w *whatsappSender) SendMessage(ctx context.Context, phoneNumber, message string) error {
	if !w.client.IsConnected() {
		return ErrNotConnected
	}

	jid := types.NewJID(normalizePhone(phoneNumber), types.DefaultUserServer)

	waMsg := &waE2E.Message{
		Conversation: proto.String(message),
	}

	if _, err := w.client.SendMessage(ctx, jid, waMsg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (w *whatsappSender) Disconnect() error {
	w.client.Disconnect()
	return nil
}

func (w *whatsappSender) IsConnected() bool {
	return w.client.IsConnected()
}

// normalizePhone keeps digits only, so "+34 600 11 22 33" becomes a JID user.
func normalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
}
