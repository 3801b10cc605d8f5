// Package export renders a computed bill into a self-contained HTML summary
// document suitable for printing or saving. Rendering is a read-only
// projection of a snapshot plus its calculated summary; it never touches the
// bill, and a document is not updated if the bill changes afterwards.
package export

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/ddaro/billsplit/bill"
	"github.com/ddaro/billsplit/calculator"
)

// Pre-parsed at startup; a parse failure is a programming error.
var summaryTmpl = template.Must(template.New("summary").Funcs(template.FuncMap{
	"idr": FormatIDR,
	"pct": formatPercent,
}).Parse(summaryTemplate))

type documentData struct {
	Items               []itemView
	Subtotal            float64
	ServiceChargePct    float64
	ServiceChargeAmount float64
	TaxPct              float64
	TaxAmount           float64
	Total               float64
	People              []personView
	ParticipantCount    int
	GeneratedAt         string
}

type itemView struct {
	Name     string
	Price    float64
	SharedBy string
}

type personView struct {
	Name  string
	Total float64
}

// Render produces the summary document for the given snapshot and its
// computed summary. The caller supplies the generation timestamp, which only
// appears in the footer, so rendering itself is deterministic.
//
// Assignee names are resolved from the snapshot's participant list; an
// assigned ID with no matching participant is omitted from the "Shared by"
// join rather than treated as an error.
func Render(snap bill.Snapshot, sum calculator.Summary, generatedAt time.Time) (string, error) {
	names := make(map[string]string, len(snap.Participants))
	for _, p := range snap.Participants {
		names[p.ID] = p.Name
	}

	items := make([]itemView, 0, len(snap.Items))
	for _, item := range snap.Items {
		shared := make([]string, 0, len(item.AssignedTo))
		for _, id := range item.AssignedTo {
			if name, ok := names[id]; ok {
				shared = append(shared, name)
			}
		}
		items = append(items, itemView{
			Name:     item.Name,
			Price:    item.Price,
			SharedBy: strings.Join(shared, ", "),
		})
	}

	people := make([]personView, 0, len(snap.Participants))
	for _, p := range snap.Participants {
		people = append(people, personView{
			Name:  p.Name,
			Total: sum.Splits[p.ID].Total,
		})
	}

	data := documentData{
		Items:               items,
		Subtotal:            sum.Subtotal,
		ServiceChargePct:    snap.Config.ServiceChargePercent,
		ServiceChargeAmount: sum.ServiceChargeAmount,
		TaxPct:              snap.Config.TaxPercent,
		TaxAmount:           sum.TaxAmount,
		Total:               sum.Total,
		People:              people,
		ParticipantCount:    len(snap.Participants),
		GeneratedAt:         generatedAt.Format("2 January 2006, 15:04"),
	}

	var buf bytes.Buffer
	if err := summaryTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render summary document: %w", err)
	}
	return buf.String(), nil
}

// formatPercent renders a percentage without trailing zeros ("5", "7.5").
func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

const summaryTemplate = `<!DOCTYPE html>
<html>
  <head>
    <title>Bill Split Summary</title>
    <style>
      body { font-family: system-ui, -apple-system, sans-serif; padding: 40px; max-width: 800px; margin: 0 auto; background: #0a0a0a; color: #fafafa; }
      h1 { color: #fafafa; text-align: center; margin-bottom: 30px; font-weight: 600; }
      .section { margin-bottom: 30px; }
      .section-title { font-size: 14px; font-weight: 500; margin-bottom: 15px; color: #a1a1a1; text-transform: uppercase; letter-spacing: 0.05em; }
      .item { display: flex; justify-content: space-between; padding: 12px 16px; background: #171717; margin-bottom: 4px; border-radius: 6px; border: 1px solid #262626; }
      .shared-with { font-size: 12px; color: #737373; margin-top: 2px; }
      table { width: 100%; border-collapse: collapse; margin-top: 10px; }
      th, td { text-align: left; padding: 12px; border-bottom: 1px solid #262626; }
      td.amount { text-align: right; }
      tr.total { font-weight: bold; font-size: 18px; }
      .person-summary { padding: 16px; background: #171717; margin-bottom: 8px; border-radius: 8px; border: 1px solid #262626; }
      .person-name { font-weight: 500; font-size: 14px; color: #fafafa; }
      .person-amount { font-size: 20px; font-weight: 600; color: #4ade80; margin-top: 4px; }
      .total-section { background: #171717; border: 1px solid #262626; color: #fafafa; padding: 24px; border-radius: 8px; text-align: center; }
      .total-label { font-size: 12px; text-transform: uppercase; letter-spacing: 0.05em; color: #a1a1a1; }
      .total-amount { font-size: 32px; font-weight: 600; margin: 10px 0; color: #4ade80; }
      .total-note { color: #737373; font-size: 14px; }
      .footer { text-align: center; margin-top: 30px; color: #525252; font-size: 12px; }
    </style>
  </head>
  <body>
    <h1>Bill Split Summary</h1>

    <div class="section">
      <div class="section-title">Items Ordered</div>
      {{range .Items}}
      <div class="item">
        <div>
          <strong>{{.Name}}</strong>
          <div class="shared-with">Shared by: {{.SharedBy}}</div>
        </div>
        <div>{{idr .Price}}</div>
      </div>
      {{end}}
    </div>

    <div class="section">
      <div class="section-title">Bill Breakdown</div>
      <table>
        <tr><td>Subtotal</td><td class="amount">{{idr .Subtotal}}</td></tr>
        <tr><td>Service Charge ({{pct .ServiceChargePct}}%)</td><td class="amount">{{idr .ServiceChargeAmount}}</td></tr>
        <tr><td>Tax/PB1 ({{pct .TaxPct}}%)</td><td class="amount">{{idr .TaxAmount}}</td></tr>
        <tr class="total"><td>Total</td><td class="amount">{{idr .Total}}</td></tr>
      </table>
    </div>

    <div class="section">
      <div class="section-title">Individual Payments</div>
      {{range .People}}
      <div class="person-summary">
        <div class="person-name">{{.Name}}</div>
        <div class="person-amount">{{idr .Total}}</div>
      </div>
      {{end}}
    </div>

    <div class="total-section">
      <div class="total-label">Total Bill</div>
      <div class="total-amount">{{idr .Total}}</div>
      <div class="total-note">Split between {{.ParticipantCount}} people</div>
    </div>

    <div class="footer">Generated on {{.GeneratedAt}}</div>
  </body>
</html>
`
