package reminder

import (
	"fmt"

	"github.com/hospitek/medequip-backend/internal/model"
)

// BuildSchedule computes the full reminder calendar for one piece of
// equipment: every warranty milestone date with its delivered flag, every
// maintenance date, and the warranty end. Used by the admin API to preview
// what the engine will send.
func BuildSchedule(eq model.Equipment, sentMilestones []int) (model.Schedule, error) {
	invoice, err := ParseDate(eq.InvoiceDate)
	if err != nil {
		return model.Schedule{}, err
	}

	sent := make(map[int]bool, len(sentMilestones))
	for _, m := range sentMilestones {
		sent[m] = true
	}

	schedule := model.Schedule{
		EquipmentID:  eq.ID.String(),
		InvoiceDate:  FormatDisplay(invoice),
		WarrantyEnds: FormatDisplay(AddDays(invoice, 365)),
	}

	for _, m := range warrantyMilestones {
		schedule.WarrantyMilestones = append(schedule.WarrantyMilestones, model.ScheduleEntry{
			Label: fmt.Sprintf("%d months", m),
			Date:  FormatDisplay(AddMonths(invoice, m)),
			Sent:  sent[m],
		})
	}

	for _, offset := range maintenanceOffsets {
		label := "Preventive maintenance"
		if offset == 365 {
			label = "End of warranty / annual preventive maintenance"
		}
		schedule.Maintenance = append(schedule.Maintenance, model.ScheduleEntry{
			Label: label,
			Date:  FormatDisplay(AddDays(invoice, offset)),
		})
	}

	return schedule, nil
}
