package notifications

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	"github.com/m04kA/SMC-FleetService/internal/service/notifications/models"
)

const (
	channelTeam   = "team"
	channelGarage = "garage"

	resultSent   = "sent"
	resultFailed = "failed"
)

// Dispatcher периодически рассылает новые срочные алерты команде
// и ссылки для записи в автосервис
type Dispatcher struct {
	alerts  AlertSource
	mailer  Mailer
	tokens  TokenRepository
	dedup   *Dedup
	metrics Metrics
	logger  Logger
	cfg     Config

	// mu не дает тикам и ручной рассылке пересекаться
	mu     sync.Mutex
	now    func() time.Time
	random io.Reader
}

// NewDispatcher создает новый экземпляр рассылки
func NewDispatcher(
	alerts AlertSource,
	mailer Mailer,
	tokens TokenRepository,
	dedup *Dedup,
	metrics Metrics,
	logger Logger,
	cfg Config,
) *Dispatcher {
	return &Dispatcher{
		alerts:  alerts,
		mailer:  mailer,
		tokens:  tokens,
		dedup:   dedup,
		metrics: metrics,
		logger:  logger,
		cfg:     cfg,
		now:     time.Now,
		random:  rand.Reader,
	}
}

// Enabled возвращает false без транспорта или без единого адресата
func (d *Dispatcher) Enabled() bool {
	return d.mailer.Enabled() && (len(d.cfg.Recipients) > 0 || d.cfg.GarageEmail != "")
}

// Run выполняет первый тик через InitialDelay, затем каждые Interval до отмены ctx
func (d *Dispatcher) Run(ctx context.Context) {
	if !d.Enabled() {
		d.logger.Warn("Dispatcher: disabled, transport or recipients are not configured")
		return
	}

	d.logger.Info("Dispatcher: started, first check in %s, then every %s", d.cfg.InitialDelay, d.cfg.Interval)

	timer := time.NewTimer(d.cfg.InitialDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
		d.Tick(ctx)
	}

	ticker := time.NewTicker(d.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("Dispatcher: stopped")
			return
		case <-ticker.C:
			d.Tick(ctx)
		}
	}
}

// Tick рассылает срочные алерты, которые ещё не отправлялись.
// Ключи запоминаются независимо от результата отправки.
func (d *Dispatcher) Tick(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	alerts, err := d.alerts.Current(ctx)
	if err != nil {
		d.logger.Error("Tick: failed to compute alerts: %v", err)
		return
	}

	fresh := make([]domain.Alert, 0)
	for _, a := range alerts {
		if a.Priority.IsNotifiable() && !d.dedup.Seen(a.DedupKey()) {
			fresh = append(fresh, a)
		}
	}
	if len(fresh) == 0 {
		return
	}

	d.logger.Info("Tick: %d new alert(s) to notify", len(fresh))

	if len(d.cfg.Recipients) > 0 {
		html, err := renderTeam("🚨 Nouvelles alertes de maintenance", "nouvelle(s) alerte(s) détectée(s)", d.cfg.AppName, fresh)
		if err != nil {
			d.logger.Error("Tick: %v", err)
		} else {
			subject := fmt.Sprintf("🚨 %d nouvelle(s) alerte(s) de maintenance - %s", len(fresh), d.cfg.AppName)
			sent := d.sendAll(ctx, channelTeam, d.cfg.Recipients, subject, html)
			d.logger.Info("Tick: team email sent to %d/%d recipient(s)", sent, len(d.cfg.Recipients))
		}
	}

	if d.cfg.GarageEmail != "" {
		for _, a := range fresh {
			if d.cfg.isGarageRule(a.RuleName) {
				d.notifyGarage(ctx, a)
			}
		}
	}

	for _, a := range fresh {
		d.dedup.Mark(a.DedupKey())
	}
}

// NotifyNow рассылает все текущие срочные алерты получателям без учета dedup
func (d *Dispatcher) NotifyNow(ctx context.Context) (*models.NotifyResponse, error) {
	if len(d.cfg.Recipients) == 0 {
		d.logger.Warn("NotifyNow: no recipients configured")
		return nil, ErrNoRecipients
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	alerts, err := d.alerts.Current(ctx)
	if err != nil {
		d.logger.Error("NotifyNow: failed to compute alerts: %v", err)
		return nil, fmt.Errorf("%w: NotifyNow - compute alerts: %v", ErrInternal, err)
	}

	urgent := make([]domain.Alert, 0)
	for _, a := range alerts {
		if a.Priority.IsNotifiable() {
			urgent = append(urgent, a)
		}
	}
	if len(urgent) == 0 {
		return &models.NotifyResponse{Message: "Aucune alerte urgente à notifier.", Sent: false}, nil
	}

	html, err := renderTeam("⚠️ Alertes de maintenance", "alerte(s) nécessitent votre attention", d.cfg.AppName, urgent)
	if err != nil {
		d.logger.Error("NotifyNow: %v", err)
		return nil, err
	}
	subject := fmt.Sprintf("⚠️ %d alerte(s) de maintenance - %s", len(urgent), d.cfg.AppName)

	sent := d.sendAll(ctx, channelTeam, d.cfg.Recipients, subject, html)
	d.logger.Info("NotifyNow: %d alert(s) sent to %d/%d recipient(s)", len(urgent), sent, len(d.cfg.Recipients))

	if sent == 0 {
		return &models.NotifyResponse{
			Message:    "Échec de l'envoi des notifications.",
			Sent:       false,
			AlertCount: len(urgent),
		}, nil
	}
	return &models.NotifyResponse{
		Message:    fmt.Sprintf("Notifications envoyées à %d destinataire(s).", sent),
		Sent:       true,
		AlertCount: len(urgent),
	}, nil
}

// notifyGarage выпускает токен и отправляет автосервису ссылку для записи
func (d *Dispatcher) notifyGarage(ctx context.Context, a domain.Alert) {
	token, err := mintToken(d.random)
	if err != nil {
		d.logger.Error("notifyGarage: %v", err)
		d.metrics.IncNotification(channelGarage, resultFailed)
		return
	}

	_, err = d.tokens.Create(ctx, &domain.GarageBookingToken{
		Token:         token,
		VehicleID:     a.VehicleID,
		AlertRuleName: a.RuleName,
		ExpiresAt:     d.now().Add(d.cfg.TokenValidity),
	})
	if err != nil {
		d.logger.Error("notifyGarage: failed to store token for vehicle=%s rule=%s: %v", a.VehicleID, a.RuleName, err)
		d.metrics.IncNotification(channelGarage, resultFailed)
		return
	}

	html, err := renderGarage(garageData{
		AppName:      d.cfg.AppName,
		CompanyName:  d.cfg.CompanyName,
		Brand:        a.Brand,
		Model:        a.Model,
		LicensePlate: a.LicensePlate,
		RuleName:     a.RuleName,
		BookingURL:   bookingURL(d.cfg.PublicBaseURL, token),
		ValidityDays: int(d.cfg.TokenValidity / domain.Day),
	})
	if err != nil {
		d.logger.Error("notifyGarage: %v", err)
		d.metrics.IncNotification(channelGarage, resultFailed)
		return
	}

	subject := fmt.Sprintf("🔧 %s %s (%s) - %s - %s", a.Brand, a.Model, a.LicensePlate, a.RuleName, d.cfg.CompanyName)
	if d.sendAll(ctx, channelGarage, []string{d.cfg.GarageEmail}, subject, html) > 0 {
		d.logger.Info("notifyGarage: booking link sent for %s - %s", a.LicensePlate, a.RuleName)
	}
}

// sendAll отправляет письмо каждому адресату и возвращает число успешных отправок
func (d *Dispatcher) sendAll(ctx context.Context, channel string, to []string, subject, html string) int {
	sent := 0
	for _, addr := range to {
		if err := d.mailer.Send(ctx, addr, subject, html); err != nil {
			d.logger.Error("sendAll: %s email to %s failed: %v", channel, addr, err)
			d.metrics.IncNotification(channel, resultFailed)
			continue
		}
		d.metrics.IncNotification(channel, resultSent)
		sent++
	}
	return sent
}

func bookingURL(base, token string) string {
	return strings.TrimRight(base, "/") + "/garage-booking/" + token
}
