package constants

const (
	SeatClassSleeper = "sleeper"
	SeatClassAC      = "ac"
	SeatClassGeneral = "general"
)

var SeatClasses = []string{SeatClassSleeper, SeatClassAC, SeatClassGeneral}

const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

const (
	ScheduleOnTime    = "on-time"
	ScheduleDelayed   = "delayed"
	ScheduleCancelled = "cancelled"
)

const (
	PaymentCard       = "card"
	PaymentUPI        = "upi"
	PaymentNetbanking = "netbanking"
	PaymentWallet     = "wallet"
)

const (
	MaxPassengersPerBooking = 6
	PNRLength               = 10
	PNRMaxAttempts          = 5
)

// User-facing messages.
const (
	ERROR_INTERNAL_ERROR = "Something went wrong, please try again"
	ERROR_INPUT          = "Invalid input"
	MISSING_LOGIN_INPUT  = "Email and password are required"
	INVALID_EMAIL        = "No account with this email"
	INVALID_PASSWORD     = "Incorrect password"
	EMAIL_TAKEN          = "An account with this email already exists"
	NOT_ADMIN            = "Administrator access required"
	TRAIN_NUMBER_TAKEN   = "A train with this number already exists"
	TRAIN_NOT_FOUND      = "Train not found"
	SCHEDULE_NOT_FOUND   = "Schedule not found"
	BOOKING_NOT_FOUND    = "Booking not found"
	SCHEDULE_IS_CANCELLED = "This schedule has been cancelled"
	NOT_ENOUGH_SEATS     = "Not enough seats left in this class"
	DATA_INPUT_IS_NOT_NUMBER = "Route parameter must be a number"
)
