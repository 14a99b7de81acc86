package pricing

import (
	"fmt"
	"time"

	catalogModel "escapade/internal/domains/catalog/model"
	"escapade/shared/constant"
	"escapade/shared/failure"
	"escapade/shared/timezone"
)

const hoursPerDay = 24

// UnitPrice selects the per-participant price for the activity, session type
// and reduced eligibility. An activity must never be priced for a session
// type it does not offer.
func UnitPrice(activity catalogModel.Activity, sessionType string, reduced bool) (float64, error) {
	if !activity.Offers(sessionType) {
		return 0, failure.BadRequestFromString( //nolint:wrapcheck
			fmt.Sprintf("activity %q does not offer the %s formula", activity.Name, sessionType))
	}

	tier := activity.PriceFullDay
	if sessionType == constant.SessionTypeHalfDay {
		tier = activity.PriceHalfDay
	}

	if reduced {
		return tier.Reduced, nil
	}

	return tier.Standard, nil
}

// Total is the booking price for count participants at the unit price.
func Total(unitPrice float64, count int) float64 {
	return unitPrice * float64(count)
}

// IsReduced reports whether a session dated sessionDate (YYYY-MM-DD) falls in
// the last-minute window: 0 to 3 calendar days from now, inclusive. Past
// sessions never qualify.
func IsReduced(sessionDate string, now time.Time) bool {
	day, err := timezone.Parse(constant.DateFormat, sessionDate)
	if err != nil {
		return false
	}

	local := now.In(timezone.GetLocation())
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, timezone.GetLocation())

	days := int(day.Sub(today).Hours() / hoursPerDay)

	return days >= 0 && days <= constant.ReducedWindowDays
}
