package main

import (
	"fleet-cargo-service/internal/adapters/events"
	"fleet-cargo-service/internal/adapters/manifest"
	"fleet-cargo-service/internal/adapters/repositories"
	"fleet-cargo-service/internal/config"
	"fleet-cargo-service/internal/domain"
	"fleet-cargo-service/internal/ports"
	"fleet-cargo-service/internal/services"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found (using environment variables)")
	}

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	manifestFlag := &cli.StringFlag{
		Name:    "manifest",
		Aliases: []string{"m"},
		Usage:   "fleet manifest (YAML)",
		EnvVars: []string{"FLEET_MANIFEST_PATH"},
		Value:   "data/fleet.yaml",
	}
	sourceFlag := &cli.StringFlag{
		Name:  "source",
		Usage: "where to read the fleet from: store or manifest",
		Value: "store",
	}
	verboseFlag := &cli.BoolFlag{
		Name:  "verbose",
		Usage: "also log events as structured lines",
	}

	return &cli.App{
		Name:  "fleetctl",
		Usage: "manage the vehicle store and run cargo feasibility checks",
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "create the vehicle schema",
				Action: runInit,
			},
			{
				Name:   "seed",
				Usage:  "load vehicles from a manifest into the store",
				Flags:  []cli.Flag{manifestFlag},
				Action: runSeed,
			},
			{
				Name:   "fleet",
				Usage:  "print fleet composition and totals",
				Flags:  []cli.Flag{manifestFlag, sourceFlag},
				Action: runFleet,
			},
			{
				Name:  "check",
				Usage: "check whether the fleet can carry a cargo list over a route",
				Flags: []cli.Flag{
					manifestFlag,
					sourceFlag,
					verboseFlag,
					&cli.StringFlag{Name: "cargo", Aliases: []string{"c"}, Usage: "cargo list (YAML)", Required: true},
					&cli.IntFlag{Name: "path", Aliases: []string{"p"}, Usage: "route length in km", Required: true},
				},
				Action: runCheck,
			},
		},
	}
}

func openStore() (io.Closer, repositories.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	conn, store, err := repositories.OpenStore(cfg.DBDriver, cfg.DBPath, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	return conn, store, nil
}

// vehicleSource returns the repository selected by --source and a release func.
func vehicleSource(c *cli.Context) (ports.VehicleRepository, func(), error) {
	switch c.String("source") {
	case "manifest":
		return manifest.NewRepository(c.String("manifest")), func() {}, nil
	case "store":
		conn, store, err := openStore()
		if err != nil {
			return nil, nil, err
		}
		return store, func() { conn.Close() }, nil
	default:
		return nil, nil, cli.Exit(fmt.Sprintf("unknown --source %q", c.String("source")), 2)
	}
}

func runInit(c *cli.Context) error {
	conn, _, err := openStore()
	if err != nil {
		return err
	}
	defer conn.Close()

	log.Info("Schema ready.")
	return nil
}

func runSeed(c *cli.Context) error {
	f, err := manifest.Load(c.String("manifest"))
	if err != nil {
		return err
	}
	records, err := f.Records()
	if err != nil {
		return err
	}

	conn, store, err := openStore()
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := store.SaveVehicles(c.Context, records); err != nil {
		return err
	}
	log.WithField("vehicles", len(records)).Info("Seeding complete.")
	return nil
}

func runFleet(c *cli.Context) error {
	repo, release, err := vehicleSource(c)
	if err != nil {
		return err
	}
	defer release()

	summary, err := services.DescribeFleet(c.Context, repo)
	if err != nil {
		return err
	}

	w := c.App.Writer
	for _, v := range summary.Vehicles {
		fmt.Fprintf(w, "%s (range %d km)\n", v.Vehicle, v.MaxDistance)
	}
	fmt.Fprintf(w, "Total capacity: %d kg, current load: %d kg\n", summary.Info.TotalCapacity, summary.Info.TotalCurrentLoad)
	return nil
}

func runCheck(c *cli.Context) error {
	cargoFile, err := manifest.Load(c.String("cargo"))
	if err != nil {
		return err
	}
	cargo, err := cargoFile.CargoList()
	if err != nil {
		return err
	}

	repo, release, err := vehicleSource(c)
	if err != nil {
		return err
	}
	defer release()

	w := c.App.Writer
	var sink domain.EventSink = domain.EventSinkFunc(func(e domain.Event) {
		fmt.Fprintln(w, e.String())
	})
	if c.Bool("verbose") {
		sink = events.Multi(sink, events.NewLogSink(log.StandardLogger()))
	}

	verdict, err := services.CheckRoute(c.Context, services.CheckRouteRequest{Path: c.Int("path"), Cargo: cargo}, repo, sink)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Result: %t\n", verdict.Feasible)
	if !verdict.Feasible {
		return cli.Exit("", 1)
	}
	return nil
}
