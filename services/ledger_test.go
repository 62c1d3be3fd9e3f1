package services

import (
	"testing"

	"frontdesk-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestChargeLedger(t *testing.T) {
	ledger := NewChargeLedger(
		models.Charge{ID: 1, Description: "Dinner", Amount: 300},
		models.Charge{ID: 2, Description: "Laundry", Amount: 150},
	)

	t.Run("sum and order", func(t *testing.T) {
		assert.Equal(t, 450.0, ledger.Sum())
		entries := ledger.Entries()
		assert.Equal(t, "Dinner", entries[0].Description)
		assert.Equal(t, "Laundry", entries[1].Description)
	})

	t.Run("add appends", func(t *testing.T) {
		ledger.Add(models.Charge{ID: 3, Description: "Mini Bar", Amount: 420})
		assert.Equal(t, 3, ledger.Len())
		assert.Equal(t, 870.0, ledger.Sum())
	})

	t.Run("remove by id", func(t *testing.T) {
		assert.True(t, ledger.RemoveByID(2))
		assert.False(t, ledger.RemoveByID(2))
		assert.Equal(t, 720.0, ledger.Sum())
	})

	t.Run("unconfirmed entry removed by position", func(t *testing.T) {
		ledger.Add(models.Charge{Description: "Late Check-out", Amount: 500})
		assert.False(t, ledger.RemoveByID(0), "zero id never matches")
		assert.True(t, ledger.RemoveAt(ledger.Len()-1))
		assert.Equal(t, 720.0, ledger.Sum())
	})

	t.Run("remove out of range", func(t *testing.T) {
		assert.False(t, ledger.RemoveAt(-1))
		assert.False(t, ledger.RemoveAt(ledger.Len()))
	})

	t.Run("entries returns a copy", func(t *testing.T) {
		entries := ledger.Entries()
		entries[0].Amount = 9999
		assert.Equal(t, 720.0, ledger.Sum())
	})
}

func TestChargeLedger_Empty(t *testing.T) {
	ledger := NewChargeLedger()
	assert.Equal(t, 0, ledger.Len())
	assert.Equal(t, 0.0, ledger.Sum())
	assert.Empty(t, ledger.Entries())
}
