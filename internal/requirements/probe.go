package requirements

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/framekit-dev/framekit/internal/emit"
	"github.com/framekit-dev/framekit/internal/messages"
	"github.com/framekit-dev/framekit/internal/version"
)

// DefaultProbeTimeout bounds a single tool invocation so a hung subprocess
// cannot stall the whole check run.
const DefaultProbeTimeout = 10 * time.Second

// System abstracts executable lookup and invocation for probes.
type System interface {
	LookPath(name string) (string, error)
	RunOutput(ctx context.Context, name string, args ...string) (string, error)
}

// RealSystem implements System against the host.
type RealSystem struct{}

// LookPath resolves name on the search path.
func (RealSystem) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// RunOutput invokes the tool and returns its combined output. Stdin is not
// connected, so version invocations cannot block on input.
func (RealSystem) RunOutput(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Strategy describes how one tool reports its version: the invocation
// arguments and a pure extraction function from raw output to a version.
type Strategy struct {
	Args    []string
	Extract func(raw string) (version.Version, bool)
}

func genericExtract(raw string) (version.Version, bool) {
	v, err := version.Parse(raw)
	if err != nil {
		return version.Version{}, false
	}
	return v, true
}

// defaultStrategies maps each known command to its version convention.
// Python reports via interpreter introspection; the rest follow --version.
// The registry is data: adding a tool means adding an entry, not editing the
// prober.
func defaultStrategies() map[string]Strategy {
	return map[string]Strategy{
		"python3": {
			Args:    []string{"-c", "import platform; print(platform.python_version())"},
			Extract: genericExtract,
		},
		"git":  {Args: []string{"--version"}, Extract: genericExtract},
		"node": {Args: []string{"--version"}, Extract: genericExtract},
		"npm":  {Args: []string{"--version"}, Extract: genericExtract},
	}
}

// Prober runs requirement checks strictly one after another so emitted
// diagnostics keep a deterministic order.
type Prober struct {
	sys        System
	emitter    emit.Emitter
	timeout    time.Duration
	strategies map[string]Strategy
}

// NewProber returns a prober using the default strategy registry.
func NewProber(sys System, emitter emit.Emitter) *Prober {
	return &Prober{
		sys:        sys,
		emitter:    emitter,
		timeout:    DefaultProbeTimeout,
		strategies: defaultStrategies(),
	}
}

// Register adds or replaces the version strategy for a command.
func (p *Prober) Register(command string, strategy Strategy) {
	p.strategies[command] = strategy
}

// Probe checks one requirement: existence, version extraction, comparison.
// It emits one advisory status line and never returns an error; failures are
// encoded in the verdict.
func (p *Prober) Probe(ctx context.Context, req Requirement) Result {
	result := Result{Requirement: req}

	if _, err := p.sys.LookPath(req.Command); err != nil {
		result.Verdict = VerdictMissing
		p.emitResult(result)
		return result
	}
	result.Found = true

	raw, ok := p.rawVersion(ctx, req)
	if !ok {
		result.Verdict = VerdictVersionUnknown
		p.emitResult(result)
		return result
	}

	detected, ok := p.extractVersion(req, raw)
	if !ok {
		result.Verdict = VerdictVersionUnknown
		p.emitResult(result)
		return result
	}
	result.Detected = &detected

	if detected.AtLeast(req.MinVersion) {
		result.Verdict = VerdictSatisfied
	} else {
		result.Verdict = VerdictVersionTooLow
	}
	p.emitResult(result)
	return result
}

// ProbeAll runs every requirement in order and returns all results. No
// single failure aborts the loop.
func (p *Prober) ProbeAll(ctx context.Context, reqs []Requirement) []Result {
	results := make([]Result, 0, len(reqs))
	for _, req := range reqs {
		results = append(results, p.Probe(ctx, req))
	}
	return results
}

// rawVersion invokes the tool's version convention under the probe timeout.
func (p *Prober) rawVersion(ctx context.Context, req Requirement) (string, bool) {
	strategy, ok := p.strategies[req.Command]
	if !ok {
		strategy = Strategy{Args: []string{"--version"}, Extract: genericExtract}
	}
	runCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	raw, err := p.sys.RunOutput(runCtx, req.Command, strategy.Args...)
	if err != nil {
		return "", false
	}
	return raw, true
}

// extractVersion applies the requirement's override pattern when present,
// else the strategy's extraction function.
func (p *Prober) extractVersion(req Requirement, raw string) (version.Version, bool) {
	if req.Pattern != nil {
		match := req.Pattern.FindString(raw)
		if match == "" {
			return version.Version{}, false
		}
		return genericExtract(match)
	}
	strategy, ok := p.strategies[req.Command]
	if !ok || strategy.Extract == nil {
		return genericExtract(raw)
	}
	return strategy.Extract(raw)
}

// emitResult writes the advisory status line for one result. Optional
// requirement failures are downgraded to warnings.
func (p *Prober) emitResult(result Result) {
	if p.emitter == nil {
		return
	}
	req := result.Requirement
	suffix := ""
	if !req.Mandatory {
		suffix = messages.CheckOptionalSuffix
	}
	switch result.Verdict {
	case VerdictSatisfied:
		p.emitter.Success(fmt.Sprintf(messages.CheckSatisfiedFmt, req.Name, result.Detected, req.MinVersion))
	case VerdictMissing:
		p.emitFailure(req, fmt.Sprintf(messages.CheckMissingFmt, req.Name)+suffix)
	case VerdictVersionTooLow:
		p.emitFailure(req, fmt.Sprintf(messages.CheckVersionTooLowFmt, req.Name, result.Detected, req.MinVersion)+suffix)
	case VerdictVersionUnknown:
		p.emitFailure(req, fmt.Sprintf(messages.CheckVersionUnknownFmt, req.Name)+suffix)
	}
}

func (p *Prober) emitFailure(req Requirement, line string) {
	if req.Mandatory {
		p.emitter.Error(line)
		return
	}
	p.emitter.Warning(line)
}

// FailureLine renders the report entry for one failed result.
func FailureLine(result Result) string {
	req := result.Requirement
	switch result.Verdict {
	case VerdictMissing:
		return fmt.Sprintf(messages.CheckMissingFmt, req.Name)
	case VerdictVersionTooLow:
		return fmt.Sprintf(messages.CheckVersionTooLowFmt, req.Name, result.Detected, req.MinVersion)
	case VerdictVersionUnknown:
		return fmt.Sprintf(messages.CheckVersionUnknownFmt, req.Name)
	default:
		return strings.TrimSpace(fmt.Sprintf("%s %s", req.Name, result.Verdict))
	}
}

// Failures returns the results that fail the aggregate: unsatisfied
// mandatory requirements, in probe order.
func Failures(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Blocking() {
			failed = append(failed, r)
		}
	}
	return failed
}
