package enums

// Meal slot labels.
const (
	LabelBreakfast = "Breakfast"
	LabelLunch     = "Lunch"
	LabelDinner    = "Dinner"
)

// Days of week as stored on menu items.
const (
	Monday    = "Monday"
	Tuesday   = "Tuesday"
	Wednesday = "Wednesday"
	Thursday  = "Thursday"
	Friday    = "Friday"
	Saturday  = "Saturday"
	Sunday    = "Sunday"
)

// Named periods for menu listing.
const (
	PeriodLastWeek    = "last_week"
	PeriodLastMonth   = "last_month"
	PeriodLastQuarter = "last_quarter"
)

var labels = []string{LabelBreakfast, LabelLunch, LabelDinner}

var daysOfWeek = []string{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func ValidLabel(label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

func ValidDayOfWeek(day string) bool {
	for _, d := range daysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}
