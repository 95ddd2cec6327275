// mlptrain: trains a single-hidden-layer perceptron from a CSV file and
// saves the model.
//
// Usage:
//
//	mlptrain -data=iris.csv -mode=classification -label=4 -classes=3 -output=iris.gob
//	mlptrain -data=energy.csv -targets=8,9 -hidden=12 -config=train.json
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/FlavioCFOliveira/gomlp/internal/dataset"
	"github.com/FlavioCFOliveira/gomlp/internal/logging"
	"github.com/FlavioCFOliveira/gomlp/internal/mlp"
	"github.com/FlavioCFOliveira/gomlp/internal/net"
)

var (
	dataFile     = flag.String("data", "", "CSV training data (required)")
	header       = flag.Bool("header", false, "Skip the first CSV row")
	mode         = flag.String("mode", "regression", "regression or classification")
	targets      = flag.String("targets", "-1", "Comma separated target columns, negative counts from the end (regression)")
	labelCol     = flag.Int("label", -1, "Class label column holding labels 1..classes, negative counts from the end (classification)")
	numClasses   = flag.Int("classes", 2, "Number of classes (classification)")
	hidden       = flag.Int("hidden", 8, "Hidden neurons")
	configFile   = flag.String("config", "", "JSON training config, applied over the defaults")
	seed         = flag.Uint64("seed", 1, "Random seed")
	outputFile   = flag.String("output", "model.gob", "Output model file")
	progressFile = flag.String("progress", "", "Write per-epoch errors to this CSV file")
	checkpoint   = flag.String("checkpoint", "", "Save the best network seen during training to this file")
	interval     = flag.Int("interval", 50, "Print progress every n epochs (0 disables)")
	verbose      = flag.Bool("verbose", false, "Enable debug and per-epoch training logs")
)

func main() {
	flag.Parse()
	if *dataFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	logCfg := logging.DefaultConfig()
	logCfg.Debug = *verbose
	logCfg.Training = *verbose
	log := logging.New(logCfg)

	if err := run(log); err != nil {
		log.Error("mlptrain failed", "err", err)
		os.Exit(1)
	}
}

func run(log *logging.Logger) error {
	d, err := loadData()
	if err != nil {
		return err
	}
	log.Info("dataset loaded", "file", *dataFile, "samples", d.Len(), "inputs", d.InputDims(), "targets", d.TargetDims())

	cfg := mlp.DefaultConfig(d.InputDims(), *hidden, d.TargetDims())
	cfg.Seed = *seed
	if *mode == "classification" {
		cfg.Mode = mlp.Classification
	}
	if *configFile != "" {
		if cfg, err = mlp.LoadConfig(*configFile, cfg); err != nil {
			return err
		}
	}

	var callbacks []net.Callback
	if *interval > 0 {
		callbacks = append(callbacks, net.Logger{W: os.Stdout, Interval: *interval})
	}
	var csvLogger *net.CSVLogger
	if *progressFile != "" {
		csvLogger = net.NewCSVLogger(*progressFile, false)
		callbacks = append(callbacks, csvLogger)
	}
	var cp *net.ModelCheckpoint
	if *checkpoint != "" {
		cp = net.NewModelCheckpoint(*checkpoint)
		callbacks = append(callbacks, cp)
	}

	m, err := mlp.New(cfg, mlp.WithLogger(log), mlp.WithCallbacks(callbacks...))
	if err != nil {
		return err
	}
	m.Network().Summary(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := m.Train(ctx, d); err != nil {
		return err
	}
	if csvLogger != nil && csvLogger.Err() != nil {
		log.Warning("progress file incomplete", "file", *progressFile, "err", csvLogger.Err())
	}
	if cp != nil && cp.Err() != nil {
		log.Warning("checkpoint failed", "file", *checkpoint, "err", cp.Err())
	}

	for _, r := range m.Restarts() {
		fmt.Printf("restart %d: epochs=%d error=%.6f diverged=%v\n", r.Restart, r.Epochs, r.Error, r.Diverged)
	}
	fmt.Printf("training error: %.6f\n", m.TrainingError())
	if cfg.Mode == mlp.Classification {
		mu, sigma := m.NullRejectionStats()
		fmt.Printf("null rejection: mu=%.4f sigma=%.4f threshold=%.4f\n", mu, sigma, m.NullRejectionThreshold())
	}

	if err := m.Save(*outputFile); err != nil {
		return err
	}
	log.Info("model saved", "file", *outputFile)
	return nil
}

func loadData() (*dataset.Dataset, error) {
	switch *mode {
	case "classification":
		return dataset.LoadClassificationCSV(*dataFile, *labelCol, *numClasses, *header)
	case "regression":
	default:
		return nil, errors.Wrapf(mlp.ErrConfiguration, "unknown mode %q", *mode)
	}

	var targetCols []int
	for _, s := range strings.Split(*targets, ",") {
		c, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, errors.Wrapf(mlp.ErrConfiguration, "bad target column %q", s)
		}
		targetCols = append(targetCols, c)
	}
	return dataset.LoadCSV(*dataFile, targetCols, *header)
}
