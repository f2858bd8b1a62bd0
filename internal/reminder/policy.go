package reminder

import "time"

// Kind discriminates the notification families the policy evaluates.
type Kind string

const (
	KindWarrantyMilestone   Kind = "warranty_milestone"
	KindMaintenanceReminder Kind = "maintenance_reminder"
	KindRenewalNotice       Kind = "renewal_notice"
)

var (
	// warrantyMilestones are the fixed warranty checkpoints, in months
	// after the invoice date.
	warrantyMilestones = []int{3, 6, 9, 12}

	// maintenanceOffsets are the preventive maintenance dates, in days
	// after the invoice date. Reminders go out 30 and 15 days before each.
	maintenanceOffsets = []int{90, 180, 270, 365}
)

// renewalLeadDays is how many days before the warranty end the one-time
// renewal notice goes out.
const renewalLeadDays = 30

// Due is one notification the policy decided should fire now.
type Due struct {
	Kind      Kind
	Milestone int       // months, warranty milestones only
	Offset    int       // days, maintenance reminders only
	DaysLeft  int       // maintenance/renewal: days until the target date
	Date      time.Time // maintenance/renewal: the target date itself
	NextDate  time.Time // warranty milestones: next unsent milestone date, zero when none remain
}

// DueNotifications returns every notification due for one piece of equipment
// given its invoice date, the current date, and the milestones already
// delivered (SUCCESS records only).
//
// Warranty milestones catch up: when a run happens past the milestone date,
// it still fires once, and the SUCCESS record written after delivery stops
// repeats. Maintenance reminders and the renewal notice are day-exact: they
// fire only when today is exactly 30 or 15 days before the target date, so a
// skipped run day silently misses them.
func DueNotifications(invoiceDate, today time.Time, sentMilestones []int) []Due {
	invoiceDate = Midnight(invoiceDate)
	today = Midnight(today)

	sent := make(map[int]bool, len(sentMilestones))
	for _, m := range sentMilestones {
		sent[m] = true
	}

	var due []Due

	for _, m := range warrantyMilestones {
		if sent[m] {
			continue
		}
		if today.Before(AddMonths(invoiceDate, m)) {
			continue
		}
		d := Due{Kind: KindWarrantyMilestone, Milestone: m}
		if next, ok := nextUnsentMilestone(m, sent); ok {
			d.NextDate = AddMonths(invoiceDate, next)
		}
		due = append(due, d)
	}

	for _, offset := range maintenanceOffsets {
		date := AddDays(invoiceDate, offset)
		diff := DaysBetween(date, today)
		if diff == 30 || diff == 15 {
			due = append(due, Due{Kind: KindMaintenanceReminder, Offset: offset, DaysLeft: diff, Date: date})
		}
	}

	// The renewal notice has no sent record behind it: the day-exact match
	// alone keeps it one-shot, since the diff shrinks by one per day.
	warrantyEnd := AddDays(invoiceDate, 365)
	if DaysBetween(warrantyEnd, today) == renewalLeadDays {
		due = append(due, Due{Kind: KindRenewalNotice, DaysLeft: renewalLeadDays, Date: warrantyEnd})
	}

	return due
}

// nextUnsentMilestone finds the smallest milestone after m that has not been
// delivered yet.
func nextUnsentMilestone(m int, sent map[int]bool) (int, bool) {
	for _, next := range warrantyMilestones {
		if next > m && !sent[next] {
			return next, true
		}
	}
	return 0, false
}
