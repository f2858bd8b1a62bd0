package reminder

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospitek/medequip-backend/internal/model"
)

func TestBuildSchedule(t *testing.T) {
	eq := model.Equipment{
		ID:          uuid.New(),
		InvoiceDate: "2024-01-01",
	}

	schedule, err := BuildSchedule(eq, []int{3, 6})
	require.NoError(t, err)

	assert.Equal(t, eq.ID.String(), schedule.EquipmentID)
	assert.Equal(t, "01/01/2024", schedule.InvoiceDate)
	assert.Equal(t, "31/12/2024", schedule.WarrantyEnds)

	require.Len(t, schedule.WarrantyMilestones, 4)
	assert.Equal(t, "3 months", schedule.WarrantyMilestones[0].Label)
	assert.Equal(t, "01/04/2024", schedule.WarrantyMilestones[0].Date)
	assert.True(t, schedule.WarrantyMilestones[0].Sent)
	assert.True(t, schedule.WarrantyMilestones[1].Sent)
	assert.False(t, schedule.WarrantyMilestones[2].Sent)
	assert.Equal(t, "01/01/2025", schedule.WarrantyMilestones[3].Date)

	require.Len(t, schedule.Maintenance, 4)
	assert.Equal(t, "Preventive maintenance", schedule.Maintenance[0].Label)
	assert.Equal(t, "31/03/2024", schedule.Maintenance[0].Date)
	assert.Equal(t, "End of warranty / annual preventive maintenance", schedule.Maintenance[3].Label)
	assert.Equal(t, "31/12/2024", schedule.Maintenance[3].Date)
}

func TestBuildSchedule_BadDate(t *testing.T) {
	eq := model.Equipment{ID: uuid.New(), InvoiceDate: "soon"}

	_, err := BuildSchedule(eq, nil)

	var parseErr *DateParseError
	assert.True(t, errors.As(err, &parseErr))
}
