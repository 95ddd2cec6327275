package main

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/FlavioCFOliveira/gomlp/internal/activations"
	"github.com/FlavioCFOliveira/gomlp/internal/dataset"
	"github.com/FlavioCFOliveira/gomlp/internal/logging"
	"github.com/FlavioCFOliveira/gomlp/internal/mlp"
	"github.com/FlavioCFOliveira/gomlp/internal/net"
)

func main() {
	fmt.Println("=== XOR Training Example ===")

	// XOR cannot be solved by a single-layer perceptron but can be solved
	// with one hidden layer.
	cfg := mlp.DefaultConfig(2, 4, 1)
	cfg.InputActivation = activations.Tanh
	cfg.HiddenActivation = activations.Tanh
	cfg.OutputActivation = activations.Tanh
	cfg.MinWeight, cfg.MaxWeight = -1, 1
	cfg.MaxNumEpochs = 2000
	cfg.MinChange = 1e-6
	cfg.UseValidationSet = false

	fmt.Printf("Network architecture: %d-%d-%d\n", cfg.NumInputs, cfg.NumHidden, cfg.NumOutputs)
	fmt.Printf("Learning rate %.2f, momentum %.2f, %d restarts\n",
		cfg.LearningRate, cfg.Momentum, cfg.NumRandomTrainingIterations)

	trainX := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	trainY := [][]float64{{0}, {1}, {1}, {0}}

	d := dataset.New(2, 1)
	for i := range trainX {
		if err := d.Add(trainX[i], trainY[i]); err != nil {
			fmt.Printf("Error building dataset: %v\n", err)
			return
		}
	}

	model, err := mlp.New(cfg,
		mlp.WithLogger(logging.New(logging.DefaultConfig())),
		mlp.WithCallbacks(net.Logger{W: os.Stdout, Interval: 500}),
	)
	if err != nil {
		fmt.Printf("Error creating model: %v\n", err)
		return
	}
	if err := model.Train(context.Background(), d); err != nil {
		fmt.Printf("Error training model: %v\n", err)
		return
	}
	fmt.Printf("Training error (scaled RMSE): %.6f\n", model.TrainingError())

	fmt.Println("\nTesting trained network:")
	for i := range trainX {
		p, _ := model.Predict(trainX[i])
		fmt.Printf("Input: %v, Predicted: %.4f, Target: %v\n", trainX[i], p.Output[0], trainY[i][0])
	}

	fmt.Println("\nSaving model to disk...")
	if err := model.Save("xor_model.gob"); err != nil {
		fmt.Printf("Error saving model: %v\n", err)
		return
	}

	loaded, err := mlp.Load("xor_model.gob")
	if err != nil {
		fmt.Printf("Error loading model: %v\n", err)
		return
	}

	fmt.Println("\nVerifying loaded model:")
	allMatch := true
	for i := range trainX {
		original, _ := model.Predict(trainX[i])
		restored, _ := loaded.Predict(trainX[i])
		match := "OK"
		if math.Abs(original.Output[0]-restored.Output[0]) > 1e-6 {
			match = "MISMATCH"
			allMatch = false
		}
		fmt.Printf("Input: %v, Original: %.4f, Loaded: %.4f [%s]\n",
			trainX[i], original.Output[0], restored.Output[0], match)
	}

	if allMatch {
		fmt.Println("\nSUCCESS: All predictions match between original and loaded model!")
	} else {
		fmt.Println("\nFAILURE: Predictions differ between original and loaded model!")
	}
}
