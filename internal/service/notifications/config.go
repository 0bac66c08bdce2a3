package notifications

import "time"

// Config параметры рассылки
type Config struct {
	Recipients    []string
	GarageEmail   string
	GarageRules   []string
	PublicBaseURL string
	AppName       string
	CompanyName   string
	TokenValidity time.Duration
	Interval      time.Duration
	InitialDelay  time.Duration
}

func (c Config) isGarageRule(name string) bool {
	for _, r := range c.GarageRules {
		if r == name {
			return true
		}
	}
	return false
}
