package export

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Single currency policy for the whole document: Indonesian Rupiah with
// id-ID digit grouping and no fraction digits.
var idPrinter = message.NewPrinter(language.Indonesian)

// FormatIDR renders a monetary amount as zero-decimal, dot-grouped Rupiah,
// e.g. 23100 -> "Rp 23.100". This is the only place an amount is rounded;
// the calculator hands over unrounded values.
func FormatIDR(amount float64) string {
	return idPrinter.Sprintf("Rp %v",
		number.Decimal(math.Round(amount), number.MaxFractionDigits(0)))
}
