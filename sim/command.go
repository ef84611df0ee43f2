package sim

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Command defines the interface for every step the simulation can take.
// Execute applies the step to the simulator, or returns the precondition
// failure that prevented it.
type Command interface {
	Name() string
	Execute(*Simulator) error
}

// AdmitCommand admits Count new groups into the queue.
type AdmitCommand struct {
	Count int
}

func (c *AdmitCommand) Name() string { return "admit" }

func (c *AdmitCommand) Execute(sim *Simulator) error {
	return sim.AdmitGroups(c.Count)
}

// SeatCommand seats the group at the head of the queue.
type SeatCommand struct{}

func (c *SeatCommand) Name() string { return "seat" }

func (c *SeatCommand) Execute(sim *Simulator) error {
	_, err := sim.SeatNextGroup()
	return err
}

// TakeOrderCommand takes the order of a seated group.
type TakeOrderCommand struct {
	TableID uint32
}

func (c *TakeOrderCommand) Name() string { return "order" }

func (c *TakeOrderCommand) Execute(sim *Simulator) error {
	_, err := sim.TakeOrder(c.TableID)
	return err
}

// PrepareCommand prepares the oldest pending order.
type PrepareCommand struct{}

func (c *PrepareCommand) Name() string { return "prepare" }

func (c *PrepareCommand) Execute(sim *Simulator) error {
	_, err := sim.PrepareNextOrder()
	return err
}

// ServeCommand serves a table its prepared order.
type ServeCommand struct {
	TableID uint32
}

func (c *ServeCommand) Name() string { return "serve" }

func (c *ServeCommand) Execute(sim *Simulator) error {
	_, err := sim.ServeOrder(c.TableID)
	return err
}

// BillCommand brings a served table its receipt.
type BillCommand struct {
	TableID uint32
}

func (c *BillCommand) Name() string { return "bill" }

func (c *BillCommand) Execute(sim *Simulator) error {
	_, err := sim.IssueReceipt(c.TableID)
	return err
}

// CleanCommand cleans a table whose group has paid.
type CleanCommand struct {
	TableID uint32
}

func (c *CleanCommand) Name() string { return "clean" }

func (c *CleanCommand) Execute(sim *Simulator) error {
	return sim.CleanTable(c.TableID)
}

// ShowCommand renders part of the state through the simulator's Presenter.
type ShowCommand struct {
	What string // queue, tables, menu, kitchen, metrics, status
}

func (c *ShowCommand) Name() string { return "show" }

func (c *ShowCommand) Execute(sim *Simulator) error {
	return sim.Show(c.What)
}

// ValidShowTargets is the set of recognized show targets.
var ValidShowTargets = map[string]bool{
	"queue": true, "tables": true, "menu": true, "kitchen": true, "metrics": true, "status": true,
}

// ParseCommand parses one line of the command language:
//
//	admit N | seat | order ID | prepare | serve ID | bill ID | clean ID
//	show queue|tables|menu|kitchen|metrics | status
//
// Verbs are case-insensitive. Returns (nil, nil) for blank and '#' lines.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}
	fields := strings.Fields(line)
	verb := strings.ToLower(fields[0])
	args := fields[1:]

	switch verb {
	case "admit":
		if len(args) != 1 {
			return nil, fmt.Errorf("%q: admit takes a group count: %w", line, ErrInvalidCommand)
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("%q: bad count: %w", line, ErrInvalidCommand)
		}
		return &AdmitCommand{Count: n}, nil
	case "seat":
		if err := noArgs(line, args); err != nil {
			return nil, err
		}
		return &SeatCommand{}, nil
	case "prepare":
		if err := noArgs(line, args); err != nil {
			return nil, err
		}
		return &PrepareCommand{}, nil
	case "order", "serve", "bill", "clean":
		id, err := tableArg(line, args)
		if err != nil {
			return nil, err
		}
		switch verb {
		case "order":
			return &TakeOrderCommand{TableID: id}, nil
		case "serve":
			return &ServeCommand{TableID: id}, nil
		case "bill":
			return &BillCommand{TableID: id}, nil
		default:
			return &CleanCommand{TableID: id}, nil
		}
	case "show":
		if len(args) != 1 || !ValidShowTargets[strings.ToLower(args[0])] {
			return nil, fmt.Errorf("%q: show takes one of queue, tables, menu, kitchen, metrics: %w", line, ErrInvalidCommand)
		}
		return &ShowCommand{What: strings.ToLower(args[0])}, nil
	case "status":
		if err := noArgs(line, args); err != nil {
			return nil, err
		}
		return &ShowCommand{What: "status"}, nil
	default:
		return nil, fmt.Errorf("%q: unknown verb %q: %w", line, verb, ErrInvalidCommand)
	}
}

func noArgs(line string, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%q: takes no arguments: %w", line, ErrInvalidCommand)
	}
	return nil
}

func tableArg(line string, args []string) (uint32, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%q: takes a table id: %w", line, ErrInvalidCommand)
	}
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%q: bad table id: %w", line, ErrInvalidCommand)
	}
	return uint32(id), nil
}

// ScriptResult summarizes a RunScript call.
type ScriptResult struct {
	Executed int // commands run, accepted or rejected
	Rejected int // commands that returned a precondition failure
}

// RunScript executes one command per line of r. Syntax errors abort the
// script. Rejected commands are logged and skipped unless strict is set, in
// which case the first rejection aborts.
func RunScript(sim *Simulator, r io.Reader, strict bool) (ScriptResult, error) {
	var res ScriptResult
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		cmd, err := ParseCommand(scanner.Text())
		if err != nil {
			return res, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if cmd == nil {
			continue
		}
		res.Executed++
		if err := cmd.Execute(sim); err != nil {
			res.Rejected++
			if strict {
				return res, fmt.Errorf("line %d: %s: %w", lineNo, cmd.Name(), err)
			}
			logrus.Warnf("line %d: %s: %v", lineNo, cmd.Name(), err)
		}
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("reading script: %w", err)
	}
	return res, nil
}
