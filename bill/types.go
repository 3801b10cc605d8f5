package bill

// Participant is one person among whom the bill is split.
type Participant struct {
	// ID is the unique identifier for the participant (UUID format).
	// It is stable for the participant's lifetime.
	ID string

	// Name is the display name. It can be changed at any time and carries
	// no validation; presentation layers gate on it if they need to.
	Name string
}

// Item is a single purchased line item on the bill.
type Item struct {
	// ID is the unique identifier for the item (UUID format).
	ID string

	// Name is the description of the item (e.g., "Coffee", "Pizza").
	Name string

	// Price is the item's full cost before any surcharge. Non-negative.
	Price float64

	// AssignedTo is the ordered, duplicate-free set of participant IDs
	// sharing this item equally. It is non-empty at creation, but removing
	// participants can shrink it all the way to empty; such a zero-payer
	// item still counts toward the bill subtotal while contributing to
	// nobody's personal share.
	AssignedTo []string
}

// Config is the bill-wide surcharge configuration. There are no per-item
// overrides; one Config applies to the whole bill.
type Config struct {
	// ServiceChargePercent is applied to the subtotal.
	ServiceChargePercent float64

	// TaxPercent is applied on top of the service charge: the taxable base
	// is subtotal plus service charge, not the bare subtotal.
	TaxPercent float64
}

// Snapshot is a detached copy of a bill's state, the input to the calculator
// and the export renderer. Mutating the bill after taking a snapshot does not
// affect the snapshot, and vice versa.
type Snapshot struct {
	Participants []Participant
	Items        []Item
	Config       Config
}
