package credit

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RateInterval is one time-bounded credit-rate rule for a resource category.
// Intervals for the same category may overlap; overlapping rules are summed,
// not chosen exclusively. Year denormalizes the partition key the schedule
// store caches by.
type RateInterval struct {
	ID          uuid.UUID
	CategoryID  uuid.UUID
	StartsAt    time.Time
	EndsAt      time.Time
	Rate        decimal.Decimal // credit units per hour
	Year        int
	Description string
}
