package bill

import (
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"
)

// Default surcharge percentages for a freshly started bill.
const (
	DefaultServiceChargePercent = 5
	DefaultTaxPercent           = 10
)

// Bill is the in-memory aggregate for one shared bill.
type Bill struct {
	participants []Participant
	items        []Item
	config       Config
}

// New creates an empty bill with the given surcharge configuration.
func New(cfg Config) *Bill {
	return &Bill{config: cfg}
}

// NewDefault creates a bill the way a fresh session starts: two placeholder
// participants and the stock 5% service charge / 10% tax configuration.
func NewDefault() *Bill {
	b := New(Config{
		ServiceChargePercent: DefaultServiceChargePercent,
		TaxPercent:           DefaultTaxPercent,
	})
	b.AddParticipant("Person 1")
	b.AddParticipant("Person 2")
	return b
}

// AddParticipant creates a participant with a fresh ID and appends it.
// The name is trimmed of surrounding whitespace; beyond that any string is
// accepted, including empty. Always succeeds.
func (b *Bill) AddParticipant(name string) Participant {
	p := Participant{
		ID:   uuid.New().String(),
		Name: strings.TrimSpace(name),
	}
	b.participants = append(b.participants, p)
	slog.Debug("Participant added", "participant_id", p.ID, "name", p.Name)
	return p
}

// RemoveParticipant removes the participant and prunes its ID from every
// item's assignment set. Removing an unknown ID is a no-op. Pruning can empty
// an item's assignment set; the item then counts toward the subtotal but
// toward no personal share.
func (b *Bill) RemoveParticipant(id string) {
	found := false
	next := make([]Participant, 0, len(b.participants))
	for _, p := range b.participants {
		if p.ID == id {
			found = true
			continue
		}
		next = append(next, p)
	}
	if !found {
		return
	}
	b.participants = next

	for i := range b.items {
		assigned := b.items[i].AssignedTo
		kept := make([]string, 0, len(assigned))
		for _, pid := range assigned {
			if pid != id {
				kept = append(kept, pid)
			}
		}
		b.items[i].AssignedTo = kept
	}
	slog.Debug("Participant removed", "participant_id", id)
}

// RenameParticipant updates the display name in place. Any string is
// accepted. Unknown IDs are ignored.
func (b *Bill) RenameParticipant(id, name string) {
	for i := range b.participants {
		if b.participants[i].ID == id {
			b.participants[i].Name = name
			return
		}
	}
}

// AddItem creates a line item shared equally by the given participants.
// The add is rejected, leaving the bill unchanged, when the name is blank,
// the price is negative or not a finite number, the assignment set is empty,
// or any assigned ID does not reference an existing participant. Duplicate
// IDs in assignedTo are collapsed.
func (b *Bill) AddItem(name string, price float64, assignedTo []string) (Item, bool) {
	if strings.TrimSpace(name) == "" {
		return Item{}, false
	}
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return Item{}, false
	}
	if len(assignedTo) == 0 {
		return Item{}, false
	}

	seen := make(map[string]bool, len(assignedTo))
	ids := make([]string, 0, len(assignedTo))
	for _, id := range assignedTo {
		if seen[id] {
			continue
		}
		if !b.hasParticipant(id) {
			return Item{}, false
		}
		seen[id] = true
		ids = append(ids, id)
	}

	item := Item{
		ID:         uuid.New().String(),
		Name:       name,
		Price:      price,
		AssignedTo: ids,
	}
	b.items = append(b.items, item)
	slog.Debug("Item added",
		"item_id", item.ID,
		"name", item.Name,
		"price", item.Price,
		"assignees", len(ids),
	)
	return item, true
}

// RemoveItem removes the item. Removing an unknown ID is a no-op.
func (b *Bill) RemoveItem(id string) {
	for i, item := range b.items {
		if item.ID == id {
			b.items = append(b.items[:i], b.items[i+1:]...)
			slog.Debug("Item removed", "item_id", id)
			return
		}
	}
}

// SetServiceCharge updates the service charge percentage. Negative or
// non-finite values are rejected and the configuration is left unchanged.
func (b *Bill) SetServiceCharge(percent float64) bool {
	if !validPercent(percent) {
		return false
	}
	b.config.ServiceChargePercent = percent
	return true
}

// SetTax updates the tax percentage. Negative or non-finite values are
// rejected and the configuration is left unchanged.
func (b *Bill) SetTax(percent float64) bool {
	if !validPercent(percent) {
		return false
	}
	b.config.TaxPercent = percent
	return true
}

// Snapshot returns a detached copy of the bill's full state.
func (b *Bill) Snapshot() Snapshot {
	return Snapshot{
		Participants: b.Participants(),
		Items:        b.Items(),
		Config:       b.config,
	}
}

// Participants returns a copy of the participant list in insertion order.
func (b *Bill) Participants() []Participant {
	out := make([]Participant, len(b.participants))
	copy(out, b.participants)
	return out
}

// Items returns a copy of the item list in insertion order. Assignment sets
// are copied too, so callers cannot reach back into the bill.
func (b *Bill) Items() []Item {
	out := make([]Item, len(b.items))
	for i, item := range b.items {
		item.AssignedTo = append([]string(nil), item.AssignedTo...)
		out[i] = item
	}
	return out
}

// Config returns the current surcharge configuration.
func (b *Bill) Config() Config {
	return b.config
}

func (b *Bill) hasParticipant(id string) bool {
	for _, p := range b.participants {
		if p.ID == id {
			return true
		}
	}
	return false
}

func validPercent(p float64) bool {
	return p >= 0 && !math.IsNaN(p) && !math.IsInf(p, 0)
}
