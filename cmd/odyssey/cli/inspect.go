// Package cli holds operator commands bundled into the server binary.
package cli

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/odyssey-erp/odyssey-rental/internal/period"
)

// InspectOptions defines the flags of the inspect command.
type InspectOptions struct {
	Start      string
	End        string
	FullDays   bool
	Midday     bool
	Convert    bool
	JSONOutput bool
	Location   *time.Location
	Now        func() time.Time
	Stdout     io.Writer
	Stderr     io.Writer
}

// InspectSummary is the JSON output of the inspect command.
type InspectSummary struct {
	Period     period.Record `json:"period"`
	Days       int           `json:"days"`
	Hours      int           `json:"hours"`
	ExactHours string        `json:"exactHours"`
	Ongoing    bool          `json:"ongoing"`
	Past       bool          `json:"past"`
}

// ParseInspectFlags reads inspect flags from args.
func ParseInspectFlags(args []string, stderr io.Writer) (InspectOptions, error) {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts InspectOptions
	fs.StringVar(&opts.Start, "start", "", "period start (YYYY-MM-DD or YYYY-MM-DD HH:MM:SS)")
	fs.StringVar(&opts.End, "end", "", "period end")
	fs.BoolVar(&opts.FullDays, "full-days", false, "treat boundaries as calendar days")
	fs.BoolVar(&opts.Convert, "convert", false, "switch the period to the other granularity before inspecting")
	fs.BoolVar(&opts.Midday, "midday", false, "anchor converted days at 12:00")
	fs.BoolVar(&opts.JSONOutput, "json", false, "print JSON")
	if err := fs.Parse(args); err != nil {
		return InspectOptions{}, err
	}
	opts.Stderr = stderr
	return opts, nil
}

// InspectCommand prints the durations and state of one period. The exit code
// is 0 on success, 2 for an invalid period and 1 for output failures.
func InspectCommand(opts InspectOptions) int {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}

	p, err := period.Parse(opts.Start, opts.End, opts.FullDays, period.WithLocation(opts.Location))
	if err != nil {
		_, _ = fmt.Fprintf(opts.Stderr, "inspect: %v\n", err)
		if errors.Is(err, period.ErrConstruction) {
			return 2
		}
		return 1
	}
	if opts.Convert {
		if p.IsFullDays() {
			p = p.ToPrecise(opts.Midday)
		} else {
			p = p.ToFullDays()
		}
	}

	now := opts.Now()
	summary := InspectSummary{
		Period:     p.ToRecord(),
		Days:       p.AsDays(),
		Hours:      p.AsHours(),
		ExactHours: p.ExactHours().StringFixed(2),
		Ongoing:    p.IsOngoing(now),
		Past:       p.IsPast(now),
	}
	if opts.JSONOutput {
		if err := json.NewEncoder(opts.Stdout).Encode(summary); err != nil {
			_, _ = fmt.Fprintf(opts.Stderr, "inspect: encode json: %v\n", err)
			return 1
		}
		return 0
	}
	renderInspectHuman(opts.Stdout, p, summary)
	return 0
}

func renderInspectHuman(w io.Writer, p period.Period, s InspectSummary) {
	_, _ = fmt.Fprintf(w, "period:  %s\n", p)
	_, _ = fmt.Fprintf(w, "days:    %d\n", s.Days)
	_, _ = fmt.Fprintf(w, "hours:   %d (exact %s)\n", s.Hours, s.ExactHours)
	state := "upcoming"
	switch {
	case s.Past:
		state = "past"
	case s.Ongoing:
		state = "ongoing"
	}
	_, _ = fmt.Fprintf(w, "state:   %s\n", state)
}
