package domain

// Default configuration values
const (
	DefaultSlotCapacity          = 15
	DefaultSlotDurationMinutes   = 60
	DefaultAttendanceWindowHours = 24
	DefaultTimezone              = "America/Argentina/Buenos_Aires"
)

// Business validation constants
const (
	MinSlotCapacity      = 1
	MaxSlotCapacity      = 100
	MaxClientNameLength  = 120
	MaxClientPhoneLength = 30
	MaxClientEmailLength = 120
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
