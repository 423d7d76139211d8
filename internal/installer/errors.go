package installer

import "fmt"

// Step names one stage of the setup pipeline, in execution order.
type Step string

const (
	StepInitManifest   Step = "init-manifest"
	StepUpdateManifest Step = "update-manifest"
	StepWriteConfig    Step = "write-config"
	StepSeedStylesheet Step = "seed-stylesheet"
	StepInstall        Step = "install"
)

// StepError is returned by Installer.Run when a step fails.
// Files written by earlier steps are left in place.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

func stepErr(step Step, err error) error {
	if err == nil {
		return nil
	}
	return &StepError{Step: step, Err: err}
}
