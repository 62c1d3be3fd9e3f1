package services

import "frontdesk-backend/models"

// ChargeLedger holds the ordered ad-hoc charges for one checkout session.
// Append-only during the stay; entries the backend hasn't assigned an id
// yet can still be dropped by position. Mutating the ledger never touches
// the booking's stored total — at checkout the ledger is the source of
// truth for additional charges.
type ChargeLedger struct {
	entries []models.Charge
}

func NewChargeLedger(existing ...models.Charge) *ChargeLedger {
	l := &ChargeLedger{}
	l.entries = append(l.entries, existing...)
	return l
}

func (l *ChargeLedger) Add(c models.Charge) {
	l.entries = append(l.entries, c)
}

// RemoveByID drops the first entry with the given backend-assigned id.
func (l *ChargeLedger) RemoveByID(id uint) bool {
	if id == 0 {
		return false
	}
	for i, c := range l.entries {
		if c.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAt drops the entry at position i, for locally added entries that
// never got a confirmed id.
func (l *ChargeLedger) RemoveAt(i int) bool {
	if i < 0 || i >= len(l.entries) {
		return false
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	return true
}

func (l *ChargeLedger) Len() int {
	return len(l.entries)
}

// Entries returns the charges in insertion order.
func (l *ChargeLedger) Entries() []models.Charge {
	out := make([]models.Charge, len(l.entries))
	copy(out, l.entries)
	return out
}

// Sum is the arithmetic total across all entries. No currency conversion,
// no rounding beyond what the amounts already carry.
func (l *ChargeLedger) Sum() float64 {
	var total float64
	for _, c := range l.entries {
		total += c.Amount
	}
	return total
}
