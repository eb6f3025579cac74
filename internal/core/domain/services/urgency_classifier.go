package services

import (
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// Urgency buckets drive dispatch-view prioritization. The classifier reads
// wall-clock time on every evaluation; nothing here schedules timers.
type UrgencyBucket int

const (
	// BucketUnknown represents an invalid or undefined bucket.
	BucketUnknown UrgencyBucket = iota

	// BucketNewlyAccepted marks an accepted order less than an hour old.
	BucketNewlyAccepted

	// BucketLate marks an order whose delivery deadline has passed.
	BucketLate

	// BucketUrgent marks an order within minutes of its deadline.
	BucketUrgent

	// BucketOkay is everything else.
	BucketOkay
)

// String returns the wire representation of the bucket.
// Implements the fmt.Stringer interface.
func (b UrgencyBucket) String() string {
	switch b {
	case BucketNewlyAccepted:
		return "newly_accepted"
	case BucketLate:
		return "late"
	case BucketUrgent:
		return "urgent"
	case BucketOkay:
		return "okay"
	case BucketUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

const (
	// NewlyAcceptedWindow is how long an accepted order counts as new.
	NewlyAcceptedWindow = time.Hour

	// UrgentWindow is how close to its deadline an order becomes urgent.
	UrgentWindow = 10 * time.Minute
)

// UrgencyClassifier derives a priority bucket from the current time, an
// order's status, its creation time, and its delivery deadline.
//
// Evaluation is strictly first-match in this order: newly_accepted, late,
// urgent, okay. An order that is both newly accepted and near its deadline is
// therefore reported as newly_accepted until the deadline has actually
// passed, at which point late wins.
//
// The classifier is stateless and safe for concurrent use. The clock is
// injectable for tests; NewUrgencyClassifier uses time.Now.
type UrgencyClassifier struct {
	clock func() time.Time
}

// NewUrgencyClassifier creates a classifier reading the system wall clock.
func NewUrgencyClassifier() UrgencyClassifier {
	return UrgencyClassifier{clock: time.Now}
}

// NewUrgencyClassifierWithClock creates a classifier with an injected clock.
// Intended for tests and deterministic replay.
func NewUrgencyClassifierWithClock(clock func() time.Time) UrgencyClassifier {
	return UrgencyClassifier{clock: clock}
}

// Classify evaluates the order against the current clock reading.
func (c UrgencyClassifier) Classify(o *order.Order) UrgencyBucket {
	return ClassifyAt(c.clock(), o.Status(), o.CreatedAt(), o.DeliveryDeadline())
}

// ClassifyAt is the pure classification rule. Exposed for read models that
// carry raw status and timestamp columns rather than full aggregates.
func ClassifyAt(now time.Time, status order.Status, createdAt time.Time, deadline *time.Time) UrgencyBucket {
	deadlinePassed := deadline != nil && !now.Before(*deadline)

	if status == order.Accepted && now.Sub(createdAt) <= NewlyAcceptedWindow && !deadlinePassed {
		return BucketNewlyAccepted
	}

	if deadline != nil {
		if deadlinePassed {
			return BucketLate
		}
		if remaining := deadline.Sub(now); remaining > 0 && remaining <= UrgentWindow {
			return BucketUrgent
		}
	}

	return BucketOkay
}

// overdueUnits are ordered largest-first for FormatOverdue.
var overdueUnits = []struct {
	name string
	size time.Duration
}{
	{"y", 365 * 24 * time.Hour},
	{"mo", 30 * 24 * time.Hour},
	{"w", 7 * 24 * time.Hour},
	{"d", 24 * time.Hour},
	{"h", time.Hour},
	{"m", time.Minute},
}

// FormatOverdue renders a duration using its two largest non-zero units,
// e.g. "1h 12m", "2d 5h", "1mo 2w". Durations under a minute render as "0m".
// Display helper only; it carries no state.
func FormatOverdue(d time.Duration) string {
	if d < time.Minute {
		return "0m"
	}

	first := ""
	for i, unit := range overdueUnits {
		if d < unit.size {
			continue
		}

		count := d / unit.size
		first = fmt.Sprintf("%d%s", count, unit.name)

		remainder := d - count*unit.size
		for _, next := range overdueUnits[i+1:] {
			if remainder >= next.size {
				return fmt.Sprintf("%s %d%s", first, remainder/next.size, next.name)
			}
		}
		return first
	}

	return first
}
