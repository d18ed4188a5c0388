package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	guuid "github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/replicate/uuidkit/uuid"
	"github.com/replicate/uuidkit/version"
)

func newApp(out io.Writer, log *zap.Logger) *cli.App {
	return &cli.App{
		Name:      "uuid",
		Usage:     "Generate and inspect UUIDs",
		UsageText: "uuid [command]",
		Version:   version.Version(),
		Writer:    out,
		Commands: []*cli.Command{
			newGenerateCmd(out, log),
			newInspectCmd(out, log),
		},
	}
}

type generateParams struct {
	Version    int
	Count      int
	Timestamps bool
	Name       string
}

func newGenerateCmd(out io.Writer, log *zap.Logger) *cli.Command {
	var params generateParams
	return &cli.Command{
		Name:  "new",
		Usage: "Generate UUIDs",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "version",
				Usage:       "UUID version to generate (1-7)",
				EnvVars:     []string{"UUIDKIT_VERSION"},
				Value:       uuid.V7,
				Destination: &params.Version,
			},
			&cli.IntFlag{
				Name:        "count",
				Usage:       "number of uuids to create",
				Aliases:     []string{"n"},
				EnvVars:     []string{"UUIDKIT_COUNT"},
				Value:       1,
				Destination: &params.Count,
			},
			&cli.BoolFlag{
				Name:        "timestamps",
				Usage:       "include the date-time of time-based UUIDs",
				EnvVars:     []string{"UUIDKIT_TIMESTAMPS"},
				Destination: &params.Timestamps,
			},
			&cli.StringFlag{
				Name:        "name",
				Usage:       "name to hash under the DNS namespace for versions 3 and 5",
				Destination: &params.Name,
			},
		},
		Action: func(ctx *cli.Context) error {
			return generate(out, log, params)
		},
	}
}

func generate(out io.Writer, log *zap.Logger, params generateParams) error {
	if params.Count < 0 {
		return errors.New("count cannot be less than 0")
	}
	if (params.Version == uuid.V3 || params.Version == uuid.V5) && params.Name == "" {
		return fmt.Errorf("--name is required for version %d", params.Version)
	}

	log.Debug("generating", zap.Int("version", params.Version), zap.Int("count", params.Count))

	for i := 0; i < params.Count; i++ {
		u, err := newUUID(params.Version, params.Name)
		if err != nil {
			return fmt.Errorf("error creating uuid: %w", err)
		}

		if !params.Timestamps {
			fmt.Fprintln(out, u)
			continue
		}

		dt, err := u.DateTime()
		if errors.Is(err, uuid.ErrUnsupportedOperation) {
			fmt.Fprintln(out, u)
			continue
		}
		if err != nil {
			return fmt.Errorf("error extracting date-time: %w", err)
		}
		fmt.Fprintln(out, u, dt.Format(time.RFC3339Nano))
	}

	return nil
}

// newUUID generates a UUID of the given version and decodes it back through
// the uuid package. Version 6 is reordered from a version 1 value, since
// google/uuid's NewV6 does not place the timestamp in the v6 fields.
func newUUID(v int, name string) (uuid.UUID, error) {
	var (
		g   guuid.UUID
		err error
	)

	switch v {
	case uuid.V1:
		g, err = guuid.NewUUID()
	case uuid.V2:
		g, err = guuid.NewDCEPerson()
	case uuid.V3:
		g = guuid.NewMD5(guuid.NameSpaceDNS, []byte(name))
	case uuid.V4:
		g, err = guuid.NewRandom()
	case uuid.V5:
		g = guuid.NewSHA1(guuid.NameSpaceDNS, []byte(name))
	case uuid.V6:
		g, err = guuid.NewUUID()
		if err != nil {
			return nil, err
		}
		v1, err := uuid.FromBytes(g[:])
		if err != nil {
			return nil, err
		}
		u, err := uuid.V6FromV1(v1)
		if err != nil {
			return nil, err
		}
		return u, nil
	case uuid.V7:
		u, err := uuid.NewV7()
		if err != nil {
			return nil, err
		}
		return u, nil
	default:
		return nil, fmt.Errorf("unsupported version %d", v)
	}
	if err != nil {
		return nil, err
	}

	u, err := uuid.FromBytes(g[:])
	if err != nil {
		return nil, err
	}
	return u, nil
}
