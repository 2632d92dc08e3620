package staff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecomputeTotal(t *testing.T) {
	s := Staff{BasicSalary: 10000, Incentive: 2000, HRA: 1500}
	s.RecomputeTotal()
	assert.Equal(t, 13500, s.TotalSalary)
}

func TestArchiveRejoinRoundTrip(t *testing.T) {
	joined := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	left := time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)
	rejoinDate := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	s := Staff{
		ID: "s1", Name: "Ravi", Location: LocationBigShop, Type: TypeFullTime,
		BasicSalary: 10000, Incentive: 2000, HRA: 1500, TotalSalary: 13500,
		JoinedDate: joined, IsActive: true,
	}

	record := s.Archive("moved away", 2500, left)
	assert.Equal(t, "s1", record.StaffID)
	assert.Equal(t, 2500, record.OutstandingAdvance)
	assert.Equal(t, left, record.LeftDate)
	assert.Equal(t, joined, record.JoinedDate)

	restored, outstanding := record.Rejoin(rejoinDate)
	assert.Equal(t, 2500, outstanding)
	assert.Equal(t, s.Name, restored.Name)
	assert.Equal(t, s.Location, restored.Location)
	assert.Equal(t, 13500, restored.TotalSalary)
	assert.Equal(t, rejoinDate, restored.JoinedDate)
	assert.True(t, restored.IsActive)
	assert.Empty(t, restored.ID)
}

func TestIsValidLocation(t *testing.T) {
	assert.True(t, IsValidLocation("Big Shop"))
	assert.True(t, IsValidLocation("Small Shop"))
	assert.True(t, IsValidLocation("Godown"))
	assert.False(t, IsValidLocation("Warehouse"))
	assert.False(t, IsValidLocation(""))
}
