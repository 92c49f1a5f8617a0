package install

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/framekit-dev/framekit/internal/emit"
	"github.com/framekit-dev/framekit/internal/messages"
	"github.com/framekit-dev/framekit/internal/platform"
	"github.com/framekit-dev/framekit/internal/requirements"
)

// PayloadDirs are the framework modules installed from the source tree into
// the target. They must all exist in the source before anything runs.
var PayloadDirs = []string{"framekit", "templates"}

// ProbeRunner runs the requirement set. *requirements.Prober satisfies it.
type ProbeRunner interface {
	ProbeAll(ctx context.Context, reqs []requirements.Requirement) []requirements.Result
}

// Options carries the collaborators the lifecycle dispatches to.
type Options struct {
	Sys          System
	Emitter      emit.Emitter
	Requirements []requirements.Requirement
	Prober       ProbeRunner
	Platform     platform.Kind
	// Confirm asks before uninstalling; nil or AssumeYes skips the prompt.
	Confirm      func(prompt string) (bool, error)
	BuildVersion string
}

// Run drives one invocation through the lifecycle: environment gate,
// requirement gate, then exactly one terminal operation. Any failure cancels
// all downstream transitions; a final status line is emitted on every
// completed path.
func Run(ctx context.Context, sess Session, opts Options) error {
	if sess.Mode == ModeUnset {
		return fmt.Errorf("%w: %s", ErrUsage, messages.SessionNoModeSelected)
	}

	// Uninstall never reads the source tree, so it skips the module gate.
	if sess.Mode != ModeUninstall {
		if err := checkSourceModules(opts.Sys, sess.SourceDir); err != nil {
			return err
		}
	}

	if err := runChecks(ctx, sess, opts); err != nil {
		return err
	}

	lc := &lifecycle{sess: sess, opts: opts}
	final, err := lc.dispatch()
	if err != nil {
		return err
	}
	opts.Emitter.Success(final)
	return nil
}

// checkSourceModules verifies the framework payload exists in the source
// tree, aggregating every missing path before reporting.
func checkSourceModules(sys System, sourceDir string) error {
	var missing []string
	for _, dir := range PayloadDirs {
		path := filepath.Join(sourceDir, dir)
		info, err := sys.Stat(path)
		if err != nil || !info.IsDir() {
			missing = append(missing, path)
		}
	}
	if len(missing) > 0 {
		return &EnvironmentError{Missing: missing}
	}
	return nil
}

// runChecks runs the requirement gate unless the session skips it. On
// aggregate failure the full report is emitted and no operation begins.
func runChecks(ctx context.Context, sess Session, opts Options) error {
	if sess.SkipChecks {
		opts.Emitter.Info(messages.ChecksSkipped)
		return nil
	}
	opts.Emitter.Info(fmt.Sprintf(messages.ChecksHeaderFmt, len(opts.Requirements)))
	results := opts.Prober.ProbeAll(ctx, opts.Requirements)
	failures := requirements.Failures(results)
	if len(failures) == 0 {
		return nil
	}
	requirements.Report(failures, opts.Platform, opts.Emitter)
	return ErrRequirements
}

type lifecycle struct {
	sess Session
	opts Options
}

// dispatch runs exactly one terminal operation and returns its final status line.
func (lc *lifecycle) dispatch() (string, error) {
	switch lc.sess.Mode {
	case ModeStandard:
		return lc.runStandard()
	case ModeDevelopment:
		return lc.runDevelopment()
	case ModeUpdate:
		return lc.runUpdate()
	case ModeUninstall:
		return lc.runUninstall()
	default:
		return "", fmt.Errorf("%w: %s", ErrUsage, messages.SessionNoModeSelected)
	}
}

func (lc *lifecycle) runStandard() (string, error) {
	lc.opts.Emitter.Info(fmt.Sprintf(messages.InstallStartFmt, messages.InstallModeStandard, lc.sess.SourceDir, lc.sess.TargetDir))
	if err := lc.applyMode(ModeStandard); err != nil {
		return "", err
	}
	if err := lc.writeManifest(ModeStandard); err != nil {
		return "", err
	}
	return fmt.Sprintf(messages.InstallDoneFmt, messages.InstallModeStandard, lc.sess.TargetDir), nil
}

func (lc *lifecycle) runDevelopment() (string, error) {
	lc.opts.Emitter.Info(fmt.Sprintf(messages.InstallStartFmt, messages.InstallModeDevelopment, lc.sess.SourceDir, lc.sess.TargetDir))
	if err := lc.applyMode(ModeDevelopment); err != nil {
		return "", err
	}
	if err := lc.writeManifest(ModeDevelopment); err != nil {
		return "", err
	}
	return fmt.Sprintf(messages.InstallDoneFmt, messages.InstallModeDevelopment, lc.sess.TargetDir), nil
}

// runUpdate re-applies the mode recorded at install time and restamps the
// manifest. It never degrades into a fresh install.
func (lc *lifecycle) runUpdate() (string, error) {
	lc.opts.Emitter.Info(fmt.Sprintf(messages.UpdateStartFmt, lc.sess.TargetDir))
	manifest, err := ReadManifest(lc.opts.Sys, lc.sess.TargetDir)
	if err != nil {
		return "", err
	}
	if manifest == nil {
		return "", fmt.Errorf(messages.UpdateNoInstallFmt, lc.sess.TargetDir)
	}
	var recorded Mode
	switch manifest.Mode {
	case messages.InstallModeStandard:
		recorded = ModeStandard
	case messages.InstallModeDevelopment:
		recorded = ModeDevelopment
	default:
		return "", fmt.Errorf(messages.UpdateUnknownModeFmt, lc.sess.TargetDir, manifest.Mode)
	}
	if err := lc.applyMode(recorded); err != nil {
		return "", err
	}
	if err := lc.writeManifest(recorded); err != nil {
		return "", err
	}
	return fmt.Sprintf(messages.InstallDoneFmt, messages.InstallModeUpdate, lc.sess.TargetDir), nil
}

// runUninstall removes the installed payload and manifest. Removing an
// absent installation succeeds.
func (lc *lifecycle) runUninstall() (string, error) {
	sys := lc.opts.Sys
	target := lc.sess.TargetDir
	if !lc.installPresent() {
		return fmt.Sprintf(messages.UninstallNothingFmt, target), nil
	}
	if !lc.sess.AssumeYes && lc.opts.Confirm != nil {
		ok, err := lc.opts.Confirm(fmt.Sprintf(messages.UninstallConfirmFmt, target))
		if err != nil {
			return "", err
		}
		if !ok {
			return messages.UninstallDeclined, nil
		}
	}
	lc.opts.Emitter.Info(fmt.Sprintf(messages.UninstallStartFmt, target))
	for _, dir := range PayloadDirs {
		path := filepath.Join(target, dir)
		if err := sys.RemoveAll(path); err != nil {
			return "", fmt.Errorf(messages.UninstallRemoveFailedFmt, path, err)
		}
	}
	if err := sys.RemoveAll(ManifestPath(target)); err != nil {
		return "", fmt.Errorf(messages.UninstallRemoveFailedFmt, ManifestPath(target), err)
	}
	return messages.UninstallDone, nil
}

// installPresent reports whether any payload or manifest exists in the target.
func (lc *lifecycle) installPresent() bool {
	paths := make([]string, 0, len(PayloadDirs)+1)
	for _, dir := range PayloadDirs {
		paths = append(paths, filepath.Join(lc.sess.TargetDir, dir))
	}
	paths = append(paths, ManifestPath(lc.sess.TargetDir))
	for _, path := range paths {
		if _, err := lc.opts.Sys.Stat(path); err == nil {
			return true
		} else if !errors.Is(err, os.ErrNotExist) {
			return true
		}
	}
	return false
}

// applyMode copies or links every payload directory into the target.
func (lc *lifecycle) applyMode(mode Mode) error {
	sys := lc.opts.Sys
	if err := sys.MkdirAll(lc.sess.TargetDir, 0o755); err != nil {
		return fmt.Errorf(messages.InstallCreateDirFailedFmt, lc.sess.TargetDir, err)
	}
	for _, dir := range PayloadDirs {
		src := filepath.Join(lc.sess.SourceDir, dir)
		dst := filepath.Join(lc.sess.TargetDir, dir)
		switch mode {
		case ModeDevelopment:
			if err := sys.LinkTree(src, dst); err != nil {
				return fmt.Errorf(messages.InstallLinkFailedFmt, src, dst, err)
			}
		default:
			if err := sys.CopyTree(src, dst); err != nil {
				return fmt.Errorf(messages.InstallCopyFailedFmt, src, dst, err)
			}
		}
	}
	return nil
}

func (lc *lifecycle) writeManifest(mode Mode) error {
	return WriteManifest(lc.opts.Sys, lc.sess.TargetDir, Manifest{
		Mode:        mode.String(),
		Version:     lc.opts.BuildVersion,
		Source:      lc.sess.SourceDir,
		InstalledAt: manifestNow(),
	})
}

var manifestNow = defaultManifestNow
