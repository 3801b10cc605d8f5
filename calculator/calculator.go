// Package calculator computes how a bill is apportioned among its
// participants. It is pure math over a bill snapshot: no state, no I/O,
// identical inputs always produce identical outputs.
package calculator

import "github.com/ddaro/billsplit/bill"

// PersonSplit is one participant's computed share of the bill.
type PersonSplit struct {
	// Subtotal is the sum of this person's equal shares of assigned items.
	Subtotal float64

	// ServiceCharge is the service charge percentage applied to Subtotal.
	ServiceCharge float64

	// Tax is the tax percentage applied to Subtotal plus ServiceCharge
	// (tax cascades on top of the service charge).
	Tax float64

	// Total is Subtotal + ServiceCharge + Tax.
	Total float64
}

// Summary is the full computed result for a bill.
type Summary struct {
	// Subtotal is the sum of all item prices, independent of assignment.
	Subtotal float64

	// ServiceChargeAmount is Subtotal times the service charge percentage.
	ServiceChargeAmount float64

	// TaxAmount is (Subtotal + ServiceChargeAmount) times the tax
	// percentage.
	TaxAmount float64

	// Total is Subtotal + ServiceChargeAmount + TaxAmount.
	Total float64

	// Splits maps participant ID to that participant's share. Every
	// participant in the snapshot has an entry, including those assigned
	// to nothing (an all-zero split).
	Splits map[string]PersonSplit
}

// Calculate apportions the snapshot's items among its participants.
//
// Each item's price is divided evenly across its assignment set; the same
// service charge and tax percentages are then applied per participant as at
// the bill level, so personal totals sum to the bill total — except for
// zero-payer items. An item whose assignment set is empty (every assignee was
// removed) still counts toward the bill subtotal but contributes to no
// personal share, so the personal totals then undershoot the bill total by
// exactly that item's fully surcharged price. The bill reflects everything
// ordered; the shares reflect only assigned costs.
//
// No value is rounded here; rounding is the formatter's job. The inputs are
// trusted to be non-negative — the model enforces that at its boundary — and
// are propagated arithmetically as-is.
func Calculate(snap bill.Snapshot) Summary {
	subtotals := make(map[string]float64, len(snap.Participants))
	for _, p := range snap.Participants {
		subtotals[p.ID] = 0
	}

	var subtotal float64
	for _, item := range snap.Items {
		subtotal += item.Price
		if len(item.AssignedTo) == 0 {
			continue
		}
		share := item.Price / float64(len(item.AssignedTo))
		for _, id := range item.AssignedTo {
			if _, ok := subtotals[id]; ok {
				subtotals[id] += share
			}
		}
	}

	cfg := snap.Config
	serviceCharge := subtotal * cfg.ServiceChargePercent / 100
	tax := (subtotal + serviceCharge) * cfg.TaxPercent / 100

	splits := make(map[string]PersonSplit, len(subtotals))
	for id, sub := range subtotals {
		personService := sub * cfg.ServiceChargePercent / 100
		personTax := (sub + personService) * cfg.TaxPercent / 100
		splits[id] = PersonSplit{
			Subtotal:      sub,
			ServiceCharge: personService,
			Tax:           personTax,
			Total:         sub + personService + personTax,
		}
	}

	return Summary{
		Subtotal:            subtotal,
		ServiceChargeAmount: serviceCharge,
		TaxAmount:           tax,
		Total:               subtotal + serviceCharge + tax,
		Splits:              splits,
	}
}
