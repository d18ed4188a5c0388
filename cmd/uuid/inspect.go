package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/replicate/uuidkit/uuid"
)

// report is everything inspect prints for one UUID.
type report struct {
	UUID                  string `json:"uuid"`
	Variant               string `json:"variant"`
	Version               *int   `json:"version,omitempty"`
	TimeLow               string `json:"time_low"`
	TimeMid               string `json:"time_mid"`
	TimeHiAndVersion      string `json:"time_hi_and_version"`
	ClockSeqHiAndReserved string `json:"clock_seq_hi_and_reserved"`
	ClockSeqLow           string `json:"clock_seq_low"`
	ClockSeq              string `json:"clock_seq"`
	Node                  string `json:"node"`
	Timestamp             string `json:"timestamp,omitempty"`
	DateTime              string `json:"date_time,omitempty"`
	Hex                   string `json:"hex"`
	Integer               string `json:"integer"`
	URN                   string `json:"urn"`
}

func newInspectCmd(out io.Writer, log *zap.Logger) *cli.Command {
	var asJSON bool
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Print the fields of one or more UUIDs",
		ArgsUsage: "UUID...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "Output data as JSON",
				EnvVars:     []string{"UUIDKIT_JSON"},
				Destination: &asJSON,
			},
		},
		Action: func(ctx *cli.Context) error {
			return inspect(out, log, ctx.Args().Slice(), asJSON)
		},
	}
}

func inspect(out io.Writer, log *zap.Logger, args []string, asJSON bool) error {
	if len(args) == 0 {
		return errors.New("at least one UUID is required")
	}

	reports := make([]report, 0, len(args))
	failed := 0
	for _, arg := range args {
		u, err := parse(arg)
		if err != nil {
			log.Warn("cannot parse UUID", zap.String("input", arg), zap.Error(err))
			failed++
			continue
		}
		reports = append(reports, newReport(u, log))
	}

	var err error
	if asJSON {
		err = writeJSON(out, reports)
	} else {
		err = writeText(out, reports)
	}
	if err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d arguments could not be parsed", failed, len(args))
	}
	return nil
}

// parse accepts the canonical string form or the bare 32-digit hex form.
func parse(s string) (uuid.UUID, error) {
	if len(s) == 2*uuid.Size {
		u, err := uuid.FromHex(s)
		if err != nil {
			return nil, err
		}
		return u, nil
	}

	u, err := uuid.FromString(s)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func newReport(u uuid.UUID, log *zap.Logger) report {
	f := u.Fields()
	r := report{
		UUID:                  u.String(),
		Variant:               u.Variant().String(),
		TimeLow:               f.TimeLow(),
		TimeMid:               f.TimeMid(),
		TimeHiAndVersion:      f.TimeHiAndVersion(),
		ClockSeqHiAndReserved: f.ClockSeqHiAndReserved(),
		ClockSeqLow:           f.ClockSeqLow(),
		ClockSeq:              f.ClockSeq(),
		Node:                  f.Node(),
		Hex:                   u.Hex(),
		Integer:               u.Integer().String(),
		URN:                   u.URN(),
	}

	if v, ok := u.Version(); ok {
		r.Version = &v
	}

	if ts, err := u.Timestamp(); err == nil {
		r.Timestamp = ts
	} else {
		log.Debug("no timestamp", zap.String("uuid", r.UUID), zap.Error(err))
	}

	if dt, err := u.DateTime(); err == nil {
		r.DateTime = dt.Format(time.RFC3339Nano)
	} else {
		log.Debug("no date-time", zap.String("uuid", r.UUID), zap.Error(err))
	}

	return r
}

func writeJSON(out io.Writer, reports []report) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

func writeText(out io.Writer, reports []report) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}

		version := "-"
		if r.Version != nil {
			version = strconv.Itoa(*r.Version)
		}

		rows := [][2]string{
			{"uuid", r.UUID},
			{"variant", r.Variant},
			{"version", version},
			{"time_low", r.TimeLow},
			{"time_mid", r.TimeMid},
			{"time_hi_and_version", r.TimeHiAndVersion},
			{"clock_seq_hi_and_reserved", r.ClockSeqHiAndReserved},
			{"clock_seq_low", r.ClockSeqLow},
			{"clock_seq", r.ClockSeq},
			{"node", r.Node},
			{"timestamp", orDash(r.Timestamp)},
			{"date_time", orDash(r.DateTime)},
			{"hex", r.Hex},
			{"integer", r.Integer},
			{"urn", r.URN},
		}
		for _, row := range rows {
			fmt.Fprintf(w, "%s\t%s\n", row[0], row[1])
		}
	}
	return w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
