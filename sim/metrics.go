// Tracks simulation-wide counters: admissions, seatings, the kitchen
// pipeline, revenue and rejected commands.

package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Metrics aggregates statistics about the simulation for final reporting.
type Metrics struct {
	GroupsAdmitted  int `json:"groups_admitted"`
	ClientsAdmitted int `json:"clients_admitted"`
	GroupsSeated    int `json:"groups_seated"`
	ClientsSeated   int `json:"clients_seated"`
	MaxQueueLength  int `json:"max_queue_length"`

	OrdersTaken    int `json:"orders_taken"`
	OrdersPrepared int `json:"orders_prepared"`
	OrdersServed   int `json:"orders_served"`
	DishesServed   int `json:"dishes_served"`
	PrepTimeTotal  int `json:"prep_time_total"` // sum of per-order preparation times (ticks)

	ReceiptsIssued int `json:"receipts_issued"`
	Revenue        int `json:"revenue"` // minor currency units
	CaloriesServed int `json:"calories_served"`
	TablesCleaned  int `json:"tables_cleaned"`

	Commands       int            `json:"commands"`
	FailedCommands map[string]int `json:"failed_commands"` // ErrorKind -> count
}

// NewMetrics returns zeroed metrics.
func NewMetrics() *Metrics {
	return &Metrics{FailedCommands: make(map[string]int)}
}

// RecordFailure counts a rejected command under its error kind.
func (m *Metrics) RecordFailure(err error) {
	m.FailedCommands[ErrorKind(err)]++
}

// TotalFailures returns the number of rejected commands.
func (m *Metrics) TotalFailures() int {
	total := 0
	for _, n := range m.FailedCommands {
		total += n
	}
	return total
}

// AverageBill returns revenue per receipt, 0 before the first receipt.
func (m *Metrics) AverageBill() float64 {
	if m.ReceiptsIssued == 0 {
		return 0
	}
	return float64(m.Revenue) / float64(m.ReceiptsIssued)
}

// SaveResults writes a header and the metrics as JSON to out, and when
// outputFilePath is non-empty also writes the JSON to that file.
func (m *Metrics) SaveResults(out io.Writer, outputFilePath string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling metrics: %w", err)
	}
	fmt.Fprintln(out, "=== Simulation Metrics ===")
	fmt.Fprintln(out, string(data))
	if outputFilePath != "" {
		if err := os.WriteFile(outputFilePath, data, 0o644); err != nil {
			return fmt.Errorf("writing metrics to %s: %w", outputFilePath, err)
		}
	}
	return nil
}
