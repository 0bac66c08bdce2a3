package notifications

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

type staticAlerts struct {
	alerts []domain.Alert
	err    error
}

func (s *staticAlerts) Current(context.Context) ([]domain.Alert, error) {
	return s.alerts, s.err
}

type sentMail struct {
	to      string
	subject string
	html    string
}

type recordingMailer struct {
	mu      sync.Mutex
	enabled bool
	fail    bool
	sent    []sentMail
}

func (m *recordingMailer) Enabled() bool { return m.enabled }

func (m *recordingMailer) Send(_ context.Context, to, subject, html string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("transport down")
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, html: html})
	return nil
}

func (m *recordingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type recordingTokens struct {
	created []*domain.GarageBookingToken
}

func (r *recordingTokens) Create(_ context.Context, t *domain.GarageBookingToken) (*domain.GarageBookingToken, error) {
	t.ID = uuid.New()
	r.created = append(r.created, t)
	return t, nil
}

type countingMetrics struct {
	counts map[string]int
}

func (c *countingMetrics) IncNotification(channel, result string) {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	c.counts[channel+"/"+result]++
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var fixedNow = time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)

func alert(vehicleID uuid.UUID, rule string, priority domain.Priority) domain.Alert {
	return domain.Alert{
		Kind:         domain.AlertUsage,
		VehicleID:    vehicleID,
		Brand:        "Peugeot",
		Model:        "308",
		LicensePlate: "AB-123-CD",
		RuleName:     rule,
		Description:  "Maintenance due",
		Priority:     priority,
	}
}

func testConfig() Config {
	return Config{
		Recipients:    []string{"fleet@example.com", "boss@example.com"},
		GarageEmail:   "garage@example.com",
		GarageRules:   []string{"Entretien essence/diesel"},
		PublicBaseURL: "https://fleet.example.com/",
		AppName:       "Fleet Manager",
		CompanyName:   "ACME",
		TokenValidity: 30 * domain.Day,
		Interval:      time.Minute,
		InitialDelay:  10 * time.Second,
	}
}

type fixture struct {
	dispatcher *Dispatcher
	source     *staticAlerts
	mailer     *recordingMailer
	tokens     *recordingTokens
	metrics    *countingMetrics
	dedup      *Dedup
}

func newFixture(cfg Config, alerts ...domain.Alert) *fixture {
	f := &fixture{
		source:  &staticAlerts{alerts: alerts},
		mailer:  &recordingMailer{enabled: true},
		tokens:  &recordingTokens{},
		metrics: &countingMetrics{},
		dedup:   NewDedup(0),
	}
	f.dispatcher = NewDispatcher(f.source, f.mailer, f.tokens, f.dedup, f.metrics, nopLogger{}, cfg)
	f.dispatcher.now = func() time.Time { return fixedNow }
	f.dispatcher.random = bytes.NewReader(bytes.Repeat([]byte{0xab}, 64))
	return f
}

func TestTick_SendsTeamAndGarageOnce(t *testing.T) {
	vehicleID := uuid.New()
	f := newFixture(testConfig(),
		alert(vehicleID, "Entretien essence/diesel", domain.PriorityUrgent),
		alert(vehicleID, "Contrôle technique", domain.PriorityHigh),
		alert(vehicleID, "Contrôle pneumatiques", domain.PriorityNormal),
	)

	f.dispatcher.Tick(context.Background())

	// 2 письма команде + 1 автосервису
	require.Len(t, f.mailer.sent, 3)
	assert.Equal(t, "fleet@example.com", f.mailer.sent[0].to)
	assert.Equal(t, "🚨 2 nouvelle(s) alerte(s) de maintenance - Fleet Manager", f.mailer.sent[0].subject)
	assert.Contains(t, f.mailer.sent[0].html, "🔴 Urgent")
	assert.Contains(t, f.mailer.sent[0].html, "🟠 Haute")
	assert.NotContains(t, f.mailer.sent[0].html, "Contrôle pneumatiques")

	garage := f.mailer.sent[2]
	assert.Equal(t, "garage@example.com", garage.to)
	assert.Equal(t, "🔧 Peugeot 308 (AB-123-CD) - Entretien essence/diesel - ACME", garage.subject)
	assert.Contains(t, garage.html, "https://fleet.example.com/garage-booking/"+strings.Repeat("ab", 32))
	assert.Contains(t, garage.html, "valable 30 jours")

	require.Len(t, f.tokens.created, 1)
	token := f.tokens.created[0]
	assert.Len(t, token.Token, 64)
	assert.Equal(t, vehicleID, token.VehicleID)
	assert.Equal(t, "Entretien essence/diesel", token.AlertRuleName)
	assert.Equal(t, fixedNow.Add(30*domain.Day), token.ExpiresAt)

	assert.Equal(t, 2, f.metrics.counts["team/sent"])
	assert.Equal(t, 1, f.metrics.counts["garage/sent"])

	f.dispatcher.Tick(context.Background())
	assert.Len(t, f.mailer.sent, 3, "already notified keys are not sent again")
}

func TestTick_FailedTransportStillMarksKeys(t *testing.T) {
	vehicleID := uuid.New()
	f := newFixture(testConfig(), alert(vehicleID, "Contrôle technique", domain.PriorityUrgent))
	f.mailer.fail = true

	f.dispatcher.Tick(context.Background())

	assert.Equal(t, 2, f.metrics.counts["team/failed"])
	assert.True(t, f.dedup.Seen(domain.DedupKey(vehicleID, "Contrôle technique")))
}

func TestTick_ForgottenKeyIsSentAgain(t *testing.T) {
	vehicleID := uuid.New()
	cfg := testConfig()
	cfg.GarageEmail = ""
	f := newFixture(cfg, alert(vehicleID, "Entretien essence/diesel", domain.PriorityHigh))

	f.dispatcher.Tick(context.Background())
	f.dedup.ForgetVehicle(vehicleID, "Entretien essence/diesel")
	f.dispatcher.Tick(context.Background())

	assert.Len(t, f.mailer.sent, 4)
	assert.Empty(t, f.tokens.created)
}

func TestTick_AlertSourceError(t *testing.T) {
	f := newFixture(testConfig())
	f.source.err = errors.New("db down")

	f.dispatcher.Tick(context.Background())

	assert.Empty(t, f.mailer.sent)
	assert.Zero(t, f.dedup.Len())
}

func TestNotifyNow(t *testing.T) {
	vehicleID := uuid.New()

	t.Run("no recipients", func(t *testing.T) {
		cfg := testConfig()
		cfg.Recipients = nil
		f := newFixture(cfg)

		_, err := f.dispatcher.NotifyNow(context.Background())

		assert.ErrorIs(t, err, ErrNoRecipients)
	})

	t.Run("nothing urgent", func(t *testing.T) {
		f := newFixture(testConfig(), alert(vehicleID, "Vidange", domain.PriorityLow))

		resp, err := f.dispatcher.NotifyNow(context.Background())

		require.NoError(t, err)
		assert.False(t, resp.Sent)
		assert.Zero(t, resp.AlertCount)
		assert.Empty(t, f.mailer.sent)
	})

	t.Run("ignores dedup", func(t *testing.T) {
		a := alert(vehicleID, "Entretien essence/diesel", domain.PriorityUrgent)
		f := newFixture(testConfig(), a)
		f.dedup.Mark(a.DedupKey())

		resp, err := f.dispatcher.NotifyNow(context.Background())

		require.NoError(t, err)
		assert.True(t, resp.Sent)
		assert.Equal(t, 1, resp.AlertCount)
		assert.Equal(t, "Notifications envoyées à 2 destinataire(s).", resp.Message)
		assert.Len(t, f.mailer.sent, 2)
		assert.Empty(t, f.tokens.created, "manual trigger does not contact the garage")
	})

	t.Run("transport failure", func(t *testing.T) {
		f := newFixture(testConfig(), alert(vehicleID, "Contrôle technique", domain.PriorityHigh))
		f.mailer.fail = true

		resp, err := f.dispatcher.NotifyNow(context.Background())

		require.NoError(t, err)
		assert.False(t, resp.Sent)
		assert.Equal(t, 1, resp.AlertCount)
	})
}

func TestRun(t *testing.T) {
	t.Run("disabled without transport", func(t *testing.T) {
		f := newFixture(testConfig())
		f.mailer.enabled = false

		done := make(chan struct{})
		go func() {
			f.dispatcher.Run(context.Background())
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Run did not return for a disabled dispatcher")
		}
	})

	t.Run("first tick after initial delay", func(t *testing.T) {
		cfg := testConfig()
		cfg.InitialDelay = time.Millisecond
		cfg.Interval = time.Hour
		cfg.GarageEmail = ""
		f := newFixture(cfg, alert(uuid.New(), "Contrôle technique", domain.PriorityUrgent))

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			f.dispatcher.Run(ctx)
			close(done)
		}()

		assert.Eventually(t, func() bool { return f.mailer.count() == 2 }, time.Second, 5*time.Millisecond)
		cancel()
		<-done
	})
}

func TestDedup_ForgetVehicle(t *testing.T) {
	d := NewDedup(0)
	v1, v2 := uuid.New(), uuid.New()
	d.Mark(domain.DedupKey(v1, "A"))
	d.Mark(domain.DedupKey(v1, "B"))
	d.Mark(domain.DedupKey(v2, "A"))

	d.ForgetVehicle(v1, "")

	assert.False(t, d.Seen(domain.DedupKey(v1, "A")))
	assert.False(t, d.Seen(domain.DedupKey(v1, "B")))
	assert.True(t, d.Seen(domain.DedupKey(v2, "A")))
	assert.Equal(t, 1, d.Len())
}

func TestDedup_TTL(t *testing.T) {
	d := NewDedup(20 * time.Millisecond)
	d.Mark("k")

	assert.True(t, d.Seen("k"))
	assert.Eventually(t, func() bool { return !d.Seen("k") }, time.Second, 10*time.Millisecond)
}

func TestMintToken(t *testing.T) {
	token, err := mintToken(bytes.NewReader(make([]byte, 10)))

	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrInternal)
}
