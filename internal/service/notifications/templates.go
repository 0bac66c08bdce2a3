package notifications

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

var teamTemplate = template.Must(template.New("team").Parse(`<div style="font-family:Arial,sans-serif;max-width:700px;margin:0 auto;">
  <div style="background:#c05c4f;color:white;padding:20px;border-radius:8px 8px 0 0;">
    <h1 style="margin:0;font-size:22px;">{{.Heading}} - {{.AppName}}</h1>
  </div>
  <div style="padding:20px;background:#faf3f2;border-radius:0 0 8px 8px;">
    <p style="color:#0d0604;"><strong>{{len .Rows}}</strong> {{.Intro}} :</p>
    <table style="width:100%;border-collapse:collapse;margin-top:16px;">
      <thead>
        <tr style="background:#c05c4f;color:white;">
          <th style="padding:8px;text-align:left;">Véhicule</th>
          <th style="padding:8px;text-align:left;">Plaque</th>
          <th style="padding:8px;text-align:left;">Type</th>
          <th style="padding:8px;text-align:left;">Description</th>
          <th style="padding:8px;text-align:left;">Priorité</th>
        </tr>
      </thead>
      <tbody>{{range .Rows}}
        <tr>
          <td style="padding:8px;border:1px solid #ddd;">{{.Brand}} {{.Model}}</td>
          <td style="padding:8px;border:1px solid #ddd;">{{.LicensePlate}}</td>
          <td style="padding:8px;border:1px solid #ddd;">{{.RuleName}}</td>
          <td style="padding:8px;border:1px solid #ddd;">{{.Description}}</td>
          <td style="padding:8px;border:1px solid #ddd;">{{.Priority}}</td>
        </tr>{{end}}
      </tbody>
    </table>
    <p style="margin-top:20px;color:#666;font-size:13px;">Connectez-vous à {{.AppName}} pour planifier les maintenances nécessaires.</p>
  </div>
</div>`))

var garageTemplate = template.Must(template.New("garage").Parse(`<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;border:1px solid #e5e7eb;border-radius:12px;overflow:hidden;">
  <div style="background:#1e40af;color:white;padding:24px 28px;">
    <h1 style="margin:0;font-size:20px;">{{.AppName}}</h1>
    <p style="margin:4px 0 0;font-size:13px;opacity:0.85;">{{.CompanyName}}</p>
  </div>
  <div style="padding:28px;">
    <p style="color:#111827;font-size:15px;line-height:1.6;margin:0 0 16px;">Bonjour,</p>
    <p style="color:#111827;font-size:15px;line-height:1.6;margin:0 0 16px;">
      Le véhicule <strong>{{.Brand}} {{.Model}}</strong> (immatriculation <strong>{{.LicensePlate}}</strong>)
      nécessite une intervention de type <strong>{{.RuleName}}</strong>.
    </p>
    <p style="color:#111827;font-size:15px;line-height:1.6;margin:0 0 24px;">
      Nous vous invitons à planifier un rendez-vous en cliquant sur le bouton ci-dessous.
      Vous pourrez consulter le calendrier de disponibilité du véhicule et proposer un créneau.
    </p>
    <div style="text-align:center;margin:28px 0;">
      <a href="{{.BookingURL}}" style="display:inline-block;background:#1e40af;color:white;text-decoration:none;padding:14px 32px;border-radius:8px;font-size:15px;font-weight:600;">
        Planifier le rendez-vous
      </a>
    </div>
    <p style="color:#6b7280;font-size:12px;line-height:1.5;margin:24px 0 0;border-top:1px solid #e5e7eb;padding-top:16px;">
      Ce lien est valable {{.ValidityDays}} jours. Si vous avez des questions, contactez-nous directement.<br/>
      {{.CompanyName}}
    </p>
  </div>
</div>`))

type teamRow struct {
	Brand        string
	Model        string
	LicensePlate string
	RuleName     string
	Description  string
	Priority     string
}

type teamData struct {
	Heading string
	Intro   string
	AppName string
	Rows    []teamRow
}

type garageData struct {
	AppName      string
	CompanyName  string
	Brand        string
	Model        string
	LicensePlate string
	RuleName     string
	BookingURL   string
	ValidityDays int
}

func priorityLabel(p domain.Priority) string {
	switch p {
	case domain.PriorityUrgent:
		return "🔴 Urgent"
	case domain.PriorityHigh:
		return "🟠 Haute"
	}
	return string(p)
}

func renderTeam(heading, intro, appName string, alerts []domain.Alert) (string, error) {
	rows := make([]teamRow, 0, len(alerts))
	for _, a := range alerts {
		rows = append(rows, teamRow{
			Brand:        a.Brand,
			Model:        a.Model,
			LicensePlate: a.LicensePlate,
			RuleName:     a.RuleName,
			Description:  a.Description,
			Priority:     priorityLabel(a.Priority),
		})
	}

	var buf bytes.Buffer
	if err := teamTemplate.Execute(&buf, teamData{Heading: heading, Intro: intro, AppName: appName, Rows: rows}); err != nil {
		return "", fmt.Errorf("%w: render team email: %v", ErrInternal, err)
	}
	return buf.String(), nil
}

func renderGarage(data garageData) (string, error) {
	var buf bytes.Buffer
	if err := garageTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: render garage email: %v", ErrInternal, err)
	}
	return buf.String(), nil
}
