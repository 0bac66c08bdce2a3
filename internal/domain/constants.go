package domain

import "time"

// Alert engine constants
const (
	// DefaultWarningPercent width of the high band as a percentage of the rule interval
	DefaultWarningPercent = 10

	// CalendarWindowDays document alerts are suppressed above this many days
	CalendarWindowDays = 90
	// CalendarHighDays document alerts at or below this many days are high priority
	CalendarHighDays = 30
	// InspectionValidityYears technical inspection validity
	InspectionValidityYears = 2

	Day = 24 * time.Hour
)

// Calendar alert names
const (
	InsuranceRuleName  = "Assurance véhicule"
	InspectionRuleName = "Contrôle technique"
)

// Garage booking constants
const (
	DefaultTokenValidityDays = 30
	TokenBytes               = 32
	GarageBookingDescription = "Rendez-vous garage"
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Validation constants
const (
	MaxNotesLength       = 2000
	MaxDescriptionLength = 1000
	MinVehicleYear       = 1950
)
