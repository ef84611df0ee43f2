package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/restaurant-sim/restaurant-sim/sim"
	"github.com/restaurant-sim/restaurant-sim/sim/menu"
	"github.com/restaurant-sim/restaurant-sim/sim/render"
	"github.com/restaurant-sim/restaurant-sim/sim/roster"
	"github.com/restaurant-sim/restaurant-sim/sim/trace"
)

// priceFormatter builds the formatter for the configured locale.
func priceFormatter(opts Options) (*render.PriceFormatter, error) {
	tag, err := language.Parse(opts.Lang)
	if err != nil {
		return nil, fmt.Errorf("language %q: %w", opts.Lang, err)
	}
	return render.NewPriceFormatter(tag, opts.Currency), nil
}

// buildSimulator loads the menu and roster and wires a simulator whose
// show commands write to out.
func buildSimulator(opts Options, out io.Writer) (*sim.Simulator, *sim.PartitionedRNG, error) {
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}
	m, err := menu.Load(opts.MenuPath)
	if err != nil {
		return nil, nil, err
	}
	entries, err := roster.Load(opts.TablesPath)
	if err != nil {
		return nil, nil, err
	}
	r, err := sim.NewRestaurant(m, entries)
	if err != nil {
		return nil, nil, err
	}
	if opts.MaxGroup > r.MaxSeats() {
		logrus.Warnf("Groups of up to %d may arrive but the largest table seats %d; such groups block the queue",
			opts.MaxGroup, r.MaxSeats())
	}
	pf, err := priceFormatter(opts)
	if err != nil {
		return nil, nil, err
	}

	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(opts.Seed))
	s, err := sim.NewSimulatorFromConfig(r, opts.SimConfig(), rng)
	if err != nil {
		return nil, nil, err
	}
	s.Presenter = render.NewPresenter(out, pf)
	logrus.Infof("Starting simulation: %d tables, %d dishes, seed=%d", len(r.Tables()), m.Len(), opts.Seed)
	return s, rng, nil
}

// runSimulation runs a script, or the autopilot when no script is given,
// and reports metrics and the optional trace summary to out.
func runSimulation(opts Options, out io.Writer) error {
	s, rng, err := buildSimulator(opts, out)
	if err != nil {
		return err
	}

	if opts.ScriptPath != "" {
		f, err := os.Open(opts.ScriptPath)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		res, err := sim.RunScript(s, f, opts.Strict)
		if err != nil {
			return err
		}
		logrus.Infof("Script done: %d commands, %d rejected", res.Executed, res.Rejected)
	} else {
		a := sim.NewAutopilot(s, rng.ForSubsystem(sim.SubsystemDriver))
		a.Pending = opts.Groups
		a.ArrivalProb = opts.ArrivalProb
		steps, finished := a.Run(opts.MaxSteps)
		fmt.Fprintf(out, "Autopilot: %d steps, finished=%t\n", steps, finished)
	}

	if err := s.Metrics.SaveResults(out, opts.MetricsPath); err != nil {
		return err
	}
	if s.Trace.Enabled() {
		render.TraceSummary(out, trace.Summarize(s.Trace))
	}
	return nil
}

// play runs an interactive session: one command per input line until EOF
// or "quit". Rejected commands are reported and the session continues.
func play(opts Options, in io.Reader, out io.Writer) error {
	s, _, err := buildSimulator(opts, out)
	if err != nil {
		return err
	}
	pf, err := priceFormatter(opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Commands: admit N, seat, order ID, prepare, serve ID, bill ID, clean ID, show WHAT, status, quit")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			break
		}
		cmd, err := sim.ParseCommand(line)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		if cmd == nil {
			continue
		}
		if err := cmd.Execute(s); err != nil {
			fmt.Fprintf(out, "rejected: %v\n", err)
			continue
		}
		if bill, ok := cmd.(*sim.BillCommand); ok {
			if t, err := s.Restaurant.Table(bill.TableID); err == nil && t.Receipt != nil {
				render.Receipt(out, t.ID, t.Receipt, pf)
			}
		}
		if cmd.Name() != "show" {
			_ = s.Show("status")
		}
	}
	fmt.Fprintln(out)
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return s.Show("metrics")
}

// printMenu loads the menu alone and prints it.
func printMenu(opts Options, out io.Writer) error {
	if opts.MenuPath == "" {
		return fmt.Errorf("menu file not provided (--menu or RESTSIM_MENU)")
	}
	m, err := menu.Load(opts.MenuPath)
	if err != nil {
		return err
	}
	pf, err := priceFormatter(opts)
	if err != nil {
		return err
	}
	render.Menu(out, m, pf)
	return nil
}
