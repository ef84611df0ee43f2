// Package render turns simulator state into human-readable text. It only
// reads from the simulator; nothing here mutates state.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/restaurant-sim/restaurant-sim/sim"
	"github.com/restaurant-sim/restaurant-sim/sim/menu"
	"github.com/restaurant-sim/restaurant-sim/sim/trace"
)

// PriceFormatter prints minor-unit prices with locale-aware separators.
type PriceFormatter struct {
	printer *message.Printer
	symbol  string
}

// NewPriceFormatter formats for tag, suffixing each amount with symbol.
func NewPriceFormatter(tag language.Tag, symbol string) *PriceFormatter {
	return &PriceFormatter{printer: message.NewPrinter(tag), symbol: symbol}
}

// Format renders price (minor units, 1/100) e.g. 123450 -> "1,234.50 zł".
func (f *PriceFormatter) Format(price int) string {
	s := f.printer.Sprintf("%v", number.Decimal(float64(price)/100, number.Scale(2)))
	if f.symbol == "" {
		return s
	}
	return s + " " + f.symbol
}

// Queue writes the waiting groups in arrival order.
func Queue(w io.Writer, q *sim.GroupQueue) {
	if q.Empty() {
		fmt.Fprintf(w, "\nQueue is empty.\n\n")
		return
	}
	fmt.Fprintf(w, "\nClients in queue:\n")
	for i, g := range q.Items() {
		fmt.Fprintf(w, " %d. %s, people: %d\n", i+1, g.ID, g.Size())
	}
	fmt.Fprintln(w)
}

// Tables writes one line per table with its free seats and state.
func Tables(w io.Writer, tables []*sim.Table) {
	fmt.Fprintf(w, "\nTables:\n")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\tID\tFREE\tSTATE\tGROUP\n")
	for _, t := range tables {
		group := "-"
		if t.Group != nil {
			group = t.Group.ID
		}
		fmt.Fprintf(tw, "\t%d\t%d/%d\t%s\t%s\n", t.ID, t.FreeSeats(), t.Seats, t.State, group)
	}
	tw.Flush()
	fmt.Fprintln(w)
}

// Menu writes every section with its dishes, prices, calories and
// ingredients.
func Menu(w io.Writer, m *menu.Menu, pf *PriceFormatter) {
	fmt.Fprintf(w, "\nMenu:\n")
	for _, s := range m.Sections() {
		fmt.Fprintf(w, "\n  %s:\n", s.Name)
		for _, it := range s.Items() {
			fmt.Fprintf(w, "  - %s\t%s %d kcal\n", it.Name, pf.Format(it.Price), it.TotalCalories())
			for _, ing := range it.Ingredients {
				fmt.Fprintf(w, "     * %s\n", ing.Name)
			}
		}
	}
	fmt.Fprintln(w)
}

// Kitchen writes the ready pool then the pending orders.
func Kitchen(w io.Writer, k *sim.Kitchen) {
	ready := k.ReadyOrders()
	if len(ready) == 0 {
		fmt.Fprintf(w, "\nNo orders ready.\n")
	} else {
		fmt.Fprintf(w, "\nReady orders:\n")
		for i, o := range ready {
			writeOrder(w, i, o)
		}
	}
	todo := k.ToDo()
	if len(todo) == 0 {
		fmt.Fprintf(w, "\nNo orders to prepare.\n")
	} else {
		fmt.Fprintf(w, "\nOrders to prepare:\n")
		for i, o := range todo {
			writeOrder(w, i, o)
		}
	}
	fmt.Fprintln(w)
}

func writeOrder(w io.Writer, i int, o *sim.Order) {
	fmt.Fprintf(w, "\nOrder %d - table %d:\n", i, o.TableID)
	for _, d := range o.Dishes {
		fmt.Fprintf(w, "   - %s\n", d.Name)
	}
}

// Receipt writes an itemized bill.
func Receipt(w io.Writer, tableID uint32, rc *sim.Receipt, pf *PriceFormatter) {
	fmt.Fprintf(w, "\nReceipt - table %d\n", tableID)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	for _, d := range rc.Order.Dishes {
		fmt.Fprintf(tw, "%s\t%s\t\n", d.Name, pf.Format(d.Price))
	}
	fmt.Fprintf(tw, "%s\t%s\t\n", strings.Repeat("-", 10), strings.Repeat("-", 10))
	fmt.Fprintf(tw, "TOTAL\t%s\t\n", pf.Format(rc.Total))
	tw.Flush()
}

// Metrics writes the run's counters.
func Metrics(w io.Writer, m *sim.Metrics, pf *PriceFormatter) {
	fmt.Fprintf(w, "\nMetrics:\n")
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "  Groups admitted\t: %d (%d clients)\n", m.GroupsAdmitted, m.ClientsAdmitted)
	fmt.Fprintf(tw, "  Groups seated\t: %d (%d clients)\n", m.GroupsSeated, m.ClientsSeated)
	fmt.Fprintf(tw, "  Orders taken/prepared/served\t: %d/%d/%d\n", m.OrdersTaken, m.OrdersPrepared, m.OrdersServed)
	fmt.Fprintf(tw, "  Receipts issued\t: %d\n", m.ReceiptsIssued)
	fmt.Fprintf(tw, "  Revenue\t: %s\n", pf.Format(m.Revenue))
	fmt.Fprintf(tw, "  Average bill\t: %s\n", pf.Format(int(m.AverageBill())))
	fmt.Fprintf(tw, "  Tables cleaned\t: %d\n", m.TablesCleaned)
	fmt.Fprintf(tw, "  Rejected commands\t: %d of %d\n", m.TotalFailures(), m.Commands)
	tw.Flush()
	fmt.Fprintln(w)
}

// TraceSummary writes aggregated trace statistics.
func TraceSummary(w io.Writer, s *trace.TraceSummary) {
	fmt.Fprintf(w, "\nTrace: %d commands (%d ok, %d rejected), %d transitions over %d tables\n",
		s.TotalCommands, s.SucceededCount, s.FailedCount, s.TotalTransitions, s.TablesTouched)
	reasons := make([]string, 0, len(s.FailureReasons))
	for reason := range s.FailureReasons {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)
	for _, reason := range reasons {
		fmt.Fprintf(w, "  rejected %dx: %s\n", s.FailureReasons[reason], reason)
	}
}

// Status writes a one-line overview.
func Status(w io.Writer, s *sim.Simulator) {
	free := 0
	for _, t := range s.Restaurant.Tables() {
		if t.IsFree() {
			free++
		}
	}
	k := s.Restaurant.Kitchen()
	fmt.Fprintf(w, "step %d: %d groups queued, %d/%d tables free, %d orders to prepare, %d ready, finished=%t\n",
		s.StepCount, s.Queue.Len(), free, len(s.Restaurant.Tables()), len(k.ToDo()), len(k.ReadyOrders()), s.Finished())
}

// Presenter implements sim.Presenter over an io.Writer.
type Presenter struct {
	Out    io.Writer
	Prices *PriceFormatter
}

// NewPresenter writes to out, formatting prices with pf.
func NewPresenter(out io.Writer, pf *PriceFormatter) *Presenter {
	return &Presenter{Out: out, Prices: pf}
}

// Show renders one of: queue, tables, menu, kitchen, metrics, status.
func (p *Presenter) Show(what string, s *sim.Simulator) error {
	switch what {
	case "queue":
		Queue(p.Out, s.Queue)
	case "tables":
		Tables(p.Out, s.Restaurant.Tables())
	case "menu":
		Menu(p.Out, s.Restaurant.Menu(), p.Prices)
	case "kitchen":
		Kitchen(p.Out, s.Restaurant.Kitchen())
	case "metrics":
		Metrics(p.Out, s.Metrics, p.Prices)
	case "status":
		Status(p.Out, s)
	default:
		return fmt.Errorf("show %q: %w", what, sim.ErrInvalidCommand)
	}
	return nil
}
