package return_vehicle

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const incidentJobDescription = "Incident reported on return"

// returnNote формирует строку для журнала бронирования, например
// "Return - Mileage: 50100 km, Fuel: 3/4, Parking: 12.00€, Incident: scratch"
func returnNote(req *Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Return - Mileage: %d km", req.Mileage)

	if req.FuelLevel != nil && *req.FuelLevel != "" {
		fmt.Fprintf(&b, ", Fuel: %s", *req.FuelLevel)
	}
	if req.BatteryLevel != nil {
		fmt.Fprintf(&b, ", Battery: %d%%", *req.BatteryLevel)
	}
	writeCost(&b, "Fuel cost", req.FuelCost)
	writeCost(&b, "Parking", req.ParkingCost)
	writeCost(&b, "Toll", req.TollCost)
	if req.HasIncident {
		fmt.Fprintf(&b, ", Incident: %s", incidentText(req))
	}

	return b.String()
}

func writeCost(b *strings.Builder, label string, cost *decimal.Decimal) {
	if cost == nil || cost.IsZero() {
		return
	}
	fmt.Fprintf(b, ", %s: %s€", label, cost.StringFixed(2))
}

func incidentText(req *Request) string {
	if req.IncidentDescription != nil && strings.TrimSpace(*req.IncidentDescription) != "" {
		return strings.TrimSpace(*req.IncidentDescription)
	}
	return "not described"
}

// appendNote добавляет строку к существующим заметкам через пустую строку
func appendNote(existing *string, line string) string {
	if existing == nil || *existing == "" {
		return line
	}
	return *existing + "\n\n" + line
}
