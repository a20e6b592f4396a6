package user

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stashly/stashly/pkg/paycycle"
)

type User struct {
	Id          int
	Uid         string
	Username    string
	DisplayName string
	Settings    Settings
}

type CalendarSyncType string

const (
	NoCalendarSync     CalendarSyncType = "none"
	GoogleCalendarSync CalendarSyncType = "google"
)

type Settings struct {
	Timezone string
	Currency string
	// PayFrequency and PayAmount describe how the user is paid; every
	// per-pay-cycle figure in the application derives from them.
	PayFrequency     paycycle.PayFrequency
	PayAmount        decimal.Decimal
	NextPayDate      *time.Time
	CalendarSync     CalendarSyncType
	GoogleCalendarId string
}
