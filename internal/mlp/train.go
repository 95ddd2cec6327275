package mlp

import (
	"context"
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/FlavioCFOliveira/gomlp/internal/dataset"
	"github.com/FlavioCFOliveira/gomlp/internal/loss"
	"github.com/FlavioCFOliveira/gomlp/internal/net"
)

type snapshot struct {
	net     *net.Network
	err     float64
	history []EpochError
}

// Train fits the model to data. data itself is not modified.
//
// Each restart starts from fresh random weights; the restart with the
// lowest final error is kept. Restarts whose weights become NaN are
// discarded, and Train fails with ErrNumericDivergence if all of them do.
// On any error the previously trained network, its calibration and
// history are left untouched. Restarts always reports the restarts run by
// the latest call, including a failed one.
func (m *MLP) Train(ctx context.Context, data *dataset.Dataset) error {
	if err := m.checkData(data); err != nil {
		return m.fail(err)
	}

	train := data.Clone()
	var validation *dataset.Dataset
	if m.cfg.UseValidationSet && m.cfg.ValidationSetSize > 0 {
		rng := rand.New(rand.NewPCG(m.cfg.Seed, partitionStream))
		rest, err := train.Partition(100-m.cfg.ValidationSetSize, rng)
		if err != nil {
			return m.fail(errors.Wrap(ErrConfiguration, err.Error()))
		}
		if train.Len() == 0 {
			return m.fail(errors.Wrapf(ErrData, "a %v%% validation split leaves no training samples", m.cfg.ValidationSetSize))
		}
		if rest.Len() == 0 {
			m.log.Warning("validation split is empty, using training statistics", "samples", data.Len())
		} else {
			validation = rest
		}
	}

	work := m.net.Clone()
	scaling := m.net.Scaling()
	if m.cfg.EnableScaling {
		inRanges, targetRanges := train.InputRanges(), train.TargetRanges()
		lo, hi := work.OutputRange()
		for _, d := range []*dataset.Dataset{train, validation} {
			if d == nil {
				continue
			}
			if err := d.Scale(inRanges, 0, 1, targetRanges, lo, hi); err != nil {
				return m.fail(errors.Wrap(ErrData, err.Error()))
			}
		}
		if err := work.SetRanges(inRanges, targetRanges); err != nil {
			return m.fail(errors.Wrap(ErrData, err.Error()))
		}
	}
	// The splits are already scaled.
	work.SetScaling(false)

	m.log.Info("training started",
		"mode", m.cfg.Mode,
		"train", train.Len(),
		"validation", lenOf(validation),
		"restarts", m.cfg.NumRandomTrainingIterations)

	m.notify(work, scaling, func(cb net.Callback) { cb.OnTrainBegin(work) })
	best, restarts, err := m.runRestarts(ctx, work, scaling, train, validation)
	m.notify(work, scaling, func(cb net.Callback) { cb.OnTrainEnd(work) })
	m.restarts = restarts
	if err != nil {
		m.log.Error("training failed", "err", err)
		return err
	}

	if m.cfg.Mode == Classification {
		calib := validation
		if calib == nil {
			calib = train
		}
		m.calibrate(best.net, calib)
	}

	best.net.SetScaling(scaling)
	m.net = best.net
	m.trainingError = best.err
	m.history = best.history
	m.trained = true

	m.log.Info("training complete", "error", best.err, "epochs", len(best.history))
	return nil
}

func (m *MLP) fail(err error) error {
	m.log.Error("cannot train", "err", err)
	return err
}

// notify runs call for every callback with work's scaling flag set to the
// one Predict will use, so a network saved by a callback reproduces the
// model's outputs on raw inputs.
func (m *MLP) notify(work *net.Network, scaling bool, call func(net.Callback)) {
	if len(m.callbacks) == 0 {
		return
	}
	work.SetScaling(scaling)
	defer work.SetScaling(false)
	for _, cb := range m.callbacks {
		call(cb)
	}
}

func (m *MLP) checkData(data *dataset.Dataset) error {
	if data == nil || data.Len() == 0 {
		return errors.Wrap(ErrData, "training data is empty")
	}
	if data.InputDims() != m.cfg.NumInputs {
		return errors.Wrapf(ErrConfiguration, "data has %d input dims, network has %d inputs", data.InputDims(), m.cfg.NumInputs)
	}
	if data.TargetDims() != m.cfg.NumOutputs {
		return errors.Wrapf(ErrConfiguration, "data has %d target dims, network has %d outputs", data.TargetDims(), m.cfg.NumOutputs)
	}
	return nil
}

func (m *MLP) runRestarts(ctx context.Context, work *net.Network, scaling bool, train, validation *dataset.Dataset) (*snapshot, []RestartResult, error) {
	var best *snapshot
	bestErr := math.Inf(1)
	results := make([]RestartResult, 0, m.cfg.NumRandomTrainingIterations)

	for r := 0; r < m.cfg.NumRandomTrainingIterations; r++ {
		res, err := m.trainRestart(ctx, r, work, scaling, train, validation)
		if err != nil {
			return nil, results, err
		}
		results = append(results, res)

		if res.Diverged {
			m.log.Warning("restart diverged", "restart", r, "epoch", res.Epochs)
			continue
		}
		m.log.Debug("restart finished", "restart", r, "epochs", res.Epochs, "error", res.Error)
		if res.Error < bestErr {
			bestErr = res.Error
			best = &snapshot{net: work.Clone(), err: res.Error, history: res.History}
		}
	}

	if best == nil || best.net.HasNaN() {
		return nil, results, errors.Wrapf(ErrNumericDivergence, "all %d restarts diverged", len(results))
	}
	return best, results, nil
}

func (m *MLP) trainRestart(ctx context.Context, r int, work *net.Network, scaling bool, train, validation *dataset.Dataset) (RestartResult, error) {
	res := RestartResult{Restart: r}

	rng := rand.New(rand.NewPCG(m.cfg.Seed, uint64(r)))
	if err := work.Init(rng); err != nil {
		return res, errors.Wrap(ErrConfiguration, err.Error())
	}

	numSamples := train.Len()
	order := make([]int, numSamples)
	for i := range order {
		order[i] = i
	}
	if m.cfg.RandomiseTrainingOrder {
		order = rng.Perm(numSamples)
	}

	rule := m.cfg.Rule()
	classification := m.cfg.Mode == Classification
	var lastError float64

	for epoch := 0; ; epoch++ {
		if err := ctx.Err(); err != nil {
			return res, errors.Wrapf(err, "training cancelled at restart %d epoch %d", r, epoch)
		}
		res.Epochs = epoch + 1

		var sse float64
		correct := 0
		for _, i := range order {
			e := train.At(i)
			se := work.Backprop(e.Input, e.Target, rule)
			// Overflow shows up as +Inf one step before the weights turn NaN.
			if math.IsNaN(se) || math.IsInf(se, 0) {
				res.Diverged = true
				break
			}
			sse += se
			if classification && loss.SameClass(work.LastOutput(), e.Target) {
				correct++
			}
		}
		if res.Diverged || work.HasNaN() {
			res.Diverged = true
			return res, nil
		}

		trainErr := m.epochError(sse, correct, numSamples)
		validationErr := trainErr
		if validation != nil {
			validationErr = m.evaluate(work, validation)
		}
		current := validationErr
		delta := math.Abs(current - lastError)

		res.Error = current
		res.History = append(res.History, EpochError{Train: trainErr, Validation: validationErr})

		p := net.Progress{
			Restart:          r,
			Epoch:            epoch,
			Metric:           current,
			TrainMetric:      trainErr,
			ValidationMetric: validationErr,
			Network:          work,
		}
		m.notify(work, scaling, func(cb net.Callback) { cb.OnEpochEnd(p) })
		m.log.Training("epoch", "restart", r, "epoch", epoch, "error", current, "delta", delta)

		if epoch+1 >= m.cfg.MaxNumEpochs {
			break
		}
		if delta <= m.cfg.MinChange && epoch+1 >= m.cfg.MinNumEpochs {
			break
		}
		lastError = current
	}
	return res, nil
}

func (m *MLP) epochError(sse float64, correct, n int) float64 {
	if m.cfg.Mode == Classification {
		return 100 - loss.Accuracy(correct, n)
	}
	return loss.RMSE(sse, n)
}

// evaluate scores n on d without updating it.
func (m *MLP) evaluate(n *net.Network, d *dataset.Dataset) float64 {
	var sse float64
	correct := 0
	for i := 0; i < d.Len(); i++ {
		e := d.At(i)
		y := n.Feedforward(e.Input)
		sse += loss.SquaredError(y, e.Target)
		if loss.SameClass(y, e.Target) {
			correct++
		}
	}
	return m.epochError(sse, correct, d.Len())
}

func lenOf(d *dataset.Dataset) int {
	if d == nil {
		return 0
	}
	return d.Len()
}
