package universe

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

//default options
const (
	DefDimension          = 30
	DefSimulationInterval = time.Millisecond * 500
	DefMaxSteps           = 0
)

//Options represents the Evolver's configurable options
type Options struct {
	Dimension       int           //grid dimension N
	Interval        time.Duration //delay between the generations
	MaxSteps        int           //stop the run after MaxSteps generations, 0 is unlimited
	StopWhenSettled bool          //stop the run when the grid dies out or stops changing
	Engine          string        //engine name, see EngineNames
}

var DefaultOptions = Options{
	Dimension: DefDimension,
	Interval:  DefSimulationInterval,
	MaxSteps:  DefMaxSteps,
	Engine:    DefEngine,
}

//fileOptions is the JSON shape of the configuration file
type fileOptions struct {
	Dimension       *int    `json:"dimension"`
	IntervalMs      *int    `json:"interval_ms"`
	MaxSteps        *int    `json:"max_steps"`
	StopWhenSettled *bool   `json:"stop_when_settled"`
	Engine          *string `json:"engine"`
}

//Validate checks the options are usable to build an Evolver
func (o Options) Validate() error {
	if o.Dimension <= 0 {
		return errors.Wrapf(ErrInvalidDimension, "[Validate] dimension %d", o.Dimension)
	}
	if o.Interval <= 0 {
		return errors.Wrapf(ErrInvalidInterval, "[Validate] interval %v", o.Interval)
	}
	if o.MaxSteps < 0 {
		return errors.Errorf("[Validate] negative max steps %d", o.MaxSteps)
	}
	if _, err := LookupEngine(o.Engine); err != nil {
		return errors.Wrap(err, "[Validate]")
	}
	return nil
}

//LoadOptions loads the options from the JSON file over the defaults
//the fields missing in the file keep their default values
func LoadOptions(filename string) (Options, error) {
	o := DefaultOptions

	data, err := os.ReadFile(filename)
	if err != nil {
		return o, errors.Wrapf(err, "[LoadOptions] failed to read file: %+v", filename)
	}

	var fo fileOptions
	if err = json.Unmarshal(data, &fo); err != nil {
		return o, errors.Wrapf(err, "[LoadOptions] failed to unmarshal data from file: %+v", filename)
	}

	if fo.Dimension != nil {
		o.Dimension = *fo.Dimension
	}
	if fo.IntervalMs != nil {
		o.Interval = time.Duration(*fo.IntervalMs) * time.Millisecond
	}
	if fo.MaxSteps != nil {
		o.MaxSteps = *fo.MaxSteps
	}
	if fo.StopWhenSettled != nil {
		o.StopWhenSettled = *fo.StopWhenSettled
	}
	if fo.Engine != nil {
		o.Engine = *fo.Engine
	}

	if err = o.Validate(); err != nil {
		return o, errors.Wrapf(err, "[LoadOptions] file: %+v", filename)
	}
	return o, nil
}
