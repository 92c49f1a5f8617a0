package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/framekit-dev/framekit/internal/emit"
	"github.com/framekit-dev/framekit/internal/install"
	"github.com/framekit-dev/framekit/internal/messages"
	"github.com/framekit-dev/framekit/internal/platform"
	"github.com/framekit-dev/framekit/internal/requirements"
	"github.com/framekit-dev/framekit/internal/terminal"
)

// defaultTargetDir is where the framework lands when --target is not given.
const defaultTargetDir = "~/.framekit"

var (
	getwd          = os.Getwd
	detectPlatform = platform.Detect
	isTerminal     = terminal.IsInteractive
	lifecycleRun   = install.Run
)

// rootFlags holds the parsed flag values for one invocation.
type rootFlags struct {
	standard    bool
	development bool
	update      bool
	uninstall   bool
	skipChecks  bool
	assumeYes   bool
	noColor     bool
	sourceDir   string
	targetDir   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, flags)
		},
	}
	cmd.Flags().BoolVar(&flags.standard, "standard", false, messages.RootFlagStandard)
	cmd.Flags().BoolVar(&flags.development, "development", false, messages.RootFlagDevelopment)
	cmd.Flags().BoolVar(&flags.update, "update", false, messages.RootFlagUpdate)
	cmd.Flags().BoolVar(&flags.uninstall, "uninstall", false, messages.RootFlagUninstall)
	cmd.Flags().BoolVar(&flags.skipChecks, "skip-checks", false, messages.RootFlagSkipChecks)
	cmd.Flags().BoolVarP(&flags.assumeYes, "yes", "y", false, messages.RootFlagYes)
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, messages.RootFlagNoColor)
	cmd.Flags().StringVar(&flags.sourceDir, "source", "", messages.RootFlagSource)
	cmd.Flags().StringVar(&flags.targetDir, "target", "", messages.RootFlagTarget)
	cmd.Flags().Bool("version", false, messages.RootVersionFlag)
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w: %s", install.ErrUsage, err)
	})
	return cmd
}

func runRoot(cmd *cobra.Command, flags *rootFlags) error {
	if flags.noColor {
		color.NoColor = true
	}

	sess, err := buildSession(flags)
	if err != nil {
		return err
	}

	emitter := emit.NewColorEmitter(cmd.OutOrStdout())
	mins := requirements.LoadMinVersions(filepath.Join(sess.SourceDir, messages.RequirementsFileName))
	opts := install.Options{
		Sys:          install.RealSystem{},
		Emitter:      emitter,
		Requirements: requirements.Defaults(mins),
		Prober:       requirements.NewProber(requirements.RealSystem{}, emitter),
		Platform:     detectPlatform(),
		Confirm:      confirmPrompt(cmd),
		BuildVersion: Version,
	}
	return lifecycleRun(cmd.Context(), sess, opts)
}

// buildSession translates flags into a session, rejecting conflicting modes.
func buildSession(flags *rootFlags) (install.Session, error) {
	sess := install.Session{
		SkipChecks: flags.skipChecks,
		AssumeYes:  flags.assumeYes,
	}
	selected := []struct {
		set  bool
		mode install.Mode
	}{
		{flags.standard, install.ModeStandard},
		{flags.development, install.ModeDevelopment},
		{flags.update, install.ModeUpdate},
		{flags.uninstall, install.ModeUninstall},
	}
	for _, s := range selected {
		if !s.set {
			continue
		}
		if err := sess.SetMode(s.mode); err != nil {
			return install.Session{}, err
		}
	}

	sourceDir, err := resolveSourceDir(flags.sourceDir)
	if err != nil {
		return install.Session{}, err
	}
	targetDir, err := resolveTargetDir(flags.targetDir)
	if err != nil {
		return install.Session{}, err
	}
	sess.SourceDir = sourceDir
	sess.TargetDir = targetDir
	return sess, nil
}

// resolveSourceDir returns the absolute source directory, defaulting to the
// current working directory.
func resolveSourceDir(flag string) (string, error) {
	if flag == "" {
		dir, err := getwd()
		if err != nil {
			return "", fmt.Errorf(messages.ResolveSourceDirErrFmt, err)
		}
		return dir, nil
	}
	abs, err := filepath.Abs(flag)
	if err != nil {
		return "", fmt.Errorf(messages.ResolveSourceDirErrFmt, err)
	}
	return abs, nil
}

// resolveTargetDir expands the target directory, defaulting to ~/.framekit.
func resolveTargetDir(flag string) (string, error) {
	if flag == "" {
		flag = defaultTargetDir
	}
	expanded, err := homedir.Expand(flag)
	if err != nil {
		return "", fmt.Errorf(messages.ResolveTargetDirErrFmt, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf(messages.ResolveTargetDirErrFmt, err)
	}
	return abs, nil
}

// confirmPrompt returns a confirmation callback bound to the command's
// streams, or nil when no interactive terminal is attached.
func confirmPrompt(cmd *cobra.Command) func(prompt string) (bool, error) {
	if !isTerminal() {
		return nil
	}
	return func(prompt string) (bool, error) {
		return promptYesNo(cmd.InOrStdin(), cmd.OutOrStdout(), prompt, false)
	}
}

// promptYesNo asks a yes/no question and returns the user's choice or an error.
// defaultYes controls the result when the user provides an empty response.
func promptYesNo(in io.Reader, out io.Writer, prompt string, defaultYes bool) (bool, error) {
	reader := bufio.NewReader(in)
	for {
		if defaultYes {
			if _, err := fmt.Fprintf(out, messages.PromptYesDefaultFmt, prompt); err != nil {
				return false, err
			}
		} else {
			if _, err := fmt.Fprintf(out, messages.PromptNoDefaultFmt, prompt); err != nil {
				return false, err
			}
		}
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}
		response := strings.TrimSpace(line)
		if response == "" {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			if err == nil {
				return defaultYes, nil
			}
		}
		switch strings.ToLower(response) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if errors.Is(err, io.EOF) {
			return false, fmt.Errorf(messages.PromptInvalidResponse, response)
		}
		if _, err := fmt.Fprintln(out, messages.PromptRetryYesNo); err != nil {
			return false, err
		}
	}
}
