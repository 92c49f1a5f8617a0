package install

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framekit-dev/framekit/internal/emit"
	"github.com/framekit-dev/framekit/internal/requirements"
	"github.com/framekit-dev/framekit/internal/version"
)

// fakeProber records whether probing ran and returns canned results.
type fakeProber struct {
	called  bool
	results []requirements.Result
}

func (f *fakeProber) ProbeAll(_ context.Context, reqs []requirements.Requirement) []requirements.Result {
	f.called = true
	if f.results != nil {
		return f.results
	}
	results := make([]requirements.Result, 0, len(reqs))
	for _, req := range reqs {
		results = append(results, requirements.Result{Requirement: req, Found: true, Verdict: requirements.VerdictSatisfied})
	}
	return results
}

func writeSourceTree(t *testing.T) string {
	t.Helper()
	src := t.TempDir()
	for _, dir := range PayloadDirs {
		require.NoError(t, os.MkdirAll(filepath.Join(src, dir), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(src, "framekit", "core.py"), []byte("core-v1"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "templates", "base.html"), []byte("<html>"), 0o644))
	return src
}

func testOptions(prober ProbeRunner) Options {
	return Options{
		Sys:          RealSystem{},
		Emitter:      &emit.Recorder{},
		Requirements: requirements.Defaults(nil),
		Prober:       prober,
		BuildVersion: "1.4.0",
	}
}

func TestRunNoModeSelected(t *testing.T) {
	sess := Session{SourceDir: writeSourceTree(t), TargetDir: t.TempDir()}
	err := Run(context.Background(), sess, testOptions(&fakeProber{}))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, err.Error(), "no mode selected")
}

func TestSetModeConflict(t *testing.T) {
	var sess Session
	require.NoError(t, sess.SetMode(ModeStandard))
	// Repeating the same mode flag is not a conflict.
	require.NoError(t, sess.SetMode(ModeStandard))

	err := sess.SetMode(ModeUpdate)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUsage)
	assert.Equal(t, ModeStandard, sess.Mode, "conflicting flag must not overwrite the mode")
}

func TestRunMissingSourceModules(t *testing.T) {
	src := t.TempDir() // no payload dirs
	sess := Session{Mode: ModeStandard, SkipChecks: true, SourceDir: src, TargetDir: t.TempDir()}
	err := Run(context.Background(), sess, testOptions(&fakeProber{}))

	var envErr *EnvironmentError
	require.ErrorAs(t, err, &envErr)
	require.Len(t, envErr.Missing, len(PayloadDirs))
	for _, missing := range envErr.Missing {
		assert.Contains(t, err.Error(), missing)
	}
}

func TestRunStandardCopiesAndWritesManifest(t *testing.T) {
	src := writeSourceTree(t)
	target := filepath.Join(t.TempDir(), "deploy")
	sess := Session{Mode: ModeStandard, SkipChecks: true, SourceDir: src, TargetDir: target}

	require.NoError(t, Run(context.Background(), sess, testOptions(&fakeProber{})))

	data, err := os.ReadFile(filepath.Join(target, "framekit", "core.py"))
	require.NoError(t, err)
	assert.Equal(t, "core-v1", string(data))

	manifest, err := ReadManifest(RealSystem{}, target)
	require.NoError(t, err)
	require.NotNil(t, manifest)
	assert.Equal(t, "standard", manifest.Mode)
	assert.Equal(t, "1.4.0", manifest.Version)
	assert.Equal(t, src, manifest.Source)
	assert.False(t, manifest.InstalledAt.IsZero())
}

func TestRunDevelopmentLinks(t *testing.T) {
	src := writeSourceTree(t)
	target := filepath.Join(t.TempDir(), "deploy")
	sess := Session{Mode: ModeDevelopment, SkipChecks: true, SourceDir: src, TargetDir: target}

	require.NoError(t, Run(context.Background(), sess, testOptions(&fakeProber{})))

	linkDest, err := os.Readlink(filepath.Join(target, "framekit"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(src, "framekit"), linkDest)

	manifest, err := ReadManifest(RealSystem{}, target)
	require.NoError(t, err)
	require.NotNil(t, manifest)
	assert.Equal(t, "development", manifest.Mode)
}

func TestRunUpdateReappliesRecordedMode(t *testing.T) {
	src := writeSourceTree(t)
	target := filepath.Join(t.TempDir(), "deploy")
	sess := Session{Mode: ModeStandard, SkipChecks: true, SourceDir: src, TargetDir: target}
	require.NoError(t, Run(context.Background(), sess, testOptions(&fakeProber{})))

	// New framework content, then update.
	require.NoError(t, os.WriteFile(filepath.Join(src, "framekit", "core.py"), []byte("core-v2"), 0o644))
	opts := testOptions(&fakeProber{})
	opts.BuildVersion = "1.5.0"
	sess.Mode = ModeUpdate
	require.NoError(t, Run(context.Background(), sess, opts))

	data, err := os.ReadFile(filepath.Join(target, "framekit", "core.py"))
	require.NoError(t, err)
	assert.Equal(t, "core-v2", string(data))

	manifest, err := ReadManifest(RealSystem{}, target)
	require.NoError(t, err)
	assert.Equal(t, "standard", manifest.Mode, "update must keep the recorded mode")
	assert.Equal(t, "1.5.0", manifest.Version)
}

func TestRunUpdateWithoutInstallErrors(t *testing.T) {
	sess := Session{Mode: ModeUpdate, SkipChecks: true, SourceDir: writeSourceTree(t), TargetDir: t.TempDir()}
	err := Run(context.Background(), sess, testOptions(&fakeProber{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--standard")
}

func TestRunUpdateUnknownRecordedMode(t *testing.T) {
	target := t.TempDir()
	require.NoError(t, WriteManifest(RealSystem{}, target, Manifest{Mode: "sideways"}))
	sess := Session{Mode: ModeUpdate, SkipChecks: true, SourceDir: writeSourceTree(t), TargetDir: target}
	err := Run(context.Background(), sess, testOptions(&fakeProber{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sideways")
}

func TestRunUninstallRemovesInstall(t *testing.T) {
	src := writeSourceTree(t)
	target := filepath.Join(t.TempDir(), "deploy")
	sess := Session{Mode: ModeStandard, SkipChecks: true, SourceDir: src, TargetDir: target}
	require.NoError(t, Run(context.Background(), sess, testOptions(&fakeProber{})))

	sess.Mode = ModeUninstall
	sess.AssumeYes = true
	require.NoError(t, Run(context.Background(), sess, testOptions(&fakeProber{})))

	for _, dir := range PayloadDirs {
		_, err := os.Stat(filepath.Join(target, dir))
		assert.True(t, errors.Is(err, os.ErrNotExist), "%s must be removed", dir)
	}
	_, err := os.Stat(ManifestPath(target))
	assert.True(t, errors.Is(err, os.ErrNotExist), "manifest must be removed")

	// Uninstalling again is a no-op, not an error.
	require.NoError(t, Run(context.Background(), sess, testOptions(&fakeProber{})))
}

func TestRunUninstallDeclinedLeavesFiles(t *testing.T) {
	src := writeSourceTree(t)
	target := filepath.Join(t.TempDir(), "deploy")
	sess := Session{Mode: ModeStandard, SkipChecks: true, SourceDir: src, TargetDir: target}
	require.NoError(t, Run(context.Background(), sess, testOptions(&fakeProber{})))

	sess.Mode = ModeUninstall
	opts := testOptions(&fakeProber{})
	opts.Confirm = func(string) (bool, error) { return false, nil }
	require.NoError(t, Run(context.Background(), sess, opts))

	_, err := os.Stat(filepath.Join(target, "framekit", "core.py"))
	assert.NoError(t, err, "declined uninstall must not remove anything")
}

func TestRunSkipChecksBypassesProbes(t *testing.T) {
	prober := &fakeProber{}
	src := writeSourceTree(t)
	sess := Session{Mode: ModeStandard, SkipChecks: true, SourceDir: src, TargetDir: filepath.Join(t.TempDir(), "deploy")}
	require.NoError(t, Run(context.Background(), sess, testOptions(prober)))
	assert.False(t, prober.called, "probes must not run with --skip-checks")
}

func TestRunSkipChecksUninstallDispatchesDirectly(t *testing.T) {
	prober := &fakeProber{}
	sess := Session{Mode: ModeUninstall, SkipChecks: true, AssumeYes: true, TargetDir: t.TempDir()}
	require.NoError(t, Run(context.Background(), sess, testOptions(prober)))
	assert.False(t, prober.called)
}

func TestRunMandatoryFailureBlocksOperation(t *testing.T) {
	reqs := requirements.Defaults(nil)
	failing := requirements.Result{
		Requirement: reqs[0], // python, mandatory
		Verdict:     requirements.VerdictMissing,
	}
	prober := &fakeProber{results: []requirements.Result{failing}}

	src := writeSourceTree(t)
	target := filepath.Join(t.TempDir(), "deploy")
	sess := Session{Mode: ModeStandard, SourceDir: src, TargetDir: target}
	opts := testOptions(prober)
	rec := &emit.Recorder{}
	opts.Emitter = rec

	err := Run(context.Background(), sess, opts)
	require.ErrorIs(t, err, ErrRequirements)
	assert.True(t, prober.called)

	_, statErr := os.Stat(target)
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "no file operation may run after a failed gate")
	assert.NotEmpty(t, rec.Errors, "failure report must be emitted")
}

func TestRunEmitsFinalStatusLine(t *testing.T) {
	src := writeSourceTree(t)
	sess := Session{Mode: ModeStandard, SkipChecks: true, SourceDir: src, TargetDir: filepath.Join(t.TempDir(), "deploy")}
	opts := testOptions(&fakeProber{})
	rec := &emit.Recorder{}
	opts.Emitter = rec
	require.NoError(t, Run(context.Background(), sess, opts))
	require.NotEmpty(t, rec.Successes)
	assert.Contains(t, rec.Successes[len(rec.Successes)-1], "complete")
}

func TestOptionalFailureDoesNotBlock(t *testing.T) {
	reqs := requirements.Defaults(nil)
	var results []requirements.Result
	for _, req := range reqs {
		verdict := requirements.VerdictSatisfied
		if !req.Mandatory {
			verdict = requirements.VerdictVersionUnknown
		}
		results = append(results, requirements.Result{Requirement: req, Verdict: verdict})
	}
	prober := &fakeProber{results: results}

	src := writeSourceTree(t)
	sess := Session{Mode: ModeStandard, SourceDir: src, TargetDir: filepath.Join(t.TempDir(), "deploy")}
	require.NoError(t, Run(context.Background(), sess, testOptions(prober)))
}

func TestManifestRoundTrip(t *testing.T) {
	target := t.TempDir()
	want := Manifest{Mode: "standard", Version: "2.1.0", Source: "/src/framekit", InstalledAt: manifestNow()}
	require.NoError(t, WriteManifest(RealSystem{}, target, want))

	got, err := ReadManifest(RealSystem{}, target)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestReadManifestAbsent(t *testing.T) {
	got, err := ReadManifest(RealSystem{}, t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReadManifestMalformed(t *testing.T) {
	target := t.TempDir()
	require.NoError(t, os.WriteFile(ManifestPath(target), []byte("mode = [not toml"), 0o644))
	_, err := ReadManifest(RealSystem{}, target)
	require.Error(t, err)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "standard", ModeStandard.String())
	assert.Equal(t, "development", ModeDevelopment.String())
	assert.Equal(t, "update", ModeUpdate.String())
	assert.Equal(t, "uninstall", ModeUninstall.String())
	assert.Equal(t, "unset", ModeUnset.String())
}

// Keep the version package honest about the floor used by Defaults.
func TestDefaultPythonFloor(t *testing.T) {
	mins := requirements.DefaultMinVersions()
	assert.Equal(t, version.MustParse("3.12"), mins[requirements.ToolPython])
}
