package messages

// CLI messages for the root command and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "fk"
	// RootShort is the short description for the root command.
	RootShort = "Install, update, or remove a local FrameKit deployment"
	RootLong  = `fk manages a local FrameKit deployment.

Exactly one mode must be selected per invocation:

  --standard      copy the framework into the target directory
  --development   symlink the framework into the target directory
  --update        re-apply the recorded installation mode
  --uninstall     remove the installed framework

Environment requirements are verified before any file operation unless
--skip-checks is given.`

	RootFlagStandard    = "Install by copying the framework into the target directory"
	RootFlagDevelopment = "Install by symlinking the framework into the target directory (for framework development)"
	RootFlagUpdate      = "Update an existing installation in place"
	RootFlagUninstall   = "Remove the installed framework from the target directory"
	RootFlagSkipChecks  = "Skip environment requirement checks"
	RootFlagSource      = "Framework checkout to install from (default: current directory)"
	RootFlagTarget      = "Deployment directory (default: ~/.framekit)"
	RootFlagYes         = "Assume yes for the uninstall confirmation prompt"
	RootFlagNoColor     = "Disable colored output"
	RootVersionFlag     = "Print version and exit"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	ResolveTargetDirErrFmt = "resolve target directory: %w"
	ResolveSourceDirErrFmt = "resolve source directory: %w"

	UninstallConfirmFmt = "Remove the FrameKit installation in %s?"

	// PromptYesDefaultFmt formats yes/no prompts with yes as default.
	PromptYesDefaultFmt   = "%s [Y/n]: "
	PromptNoDefaultFmt    = "%s [y/N]: "
	PromptInvalidResponse = "invalid response %q"
	PromptRetryYesNo      = "Please enter y or n."
)
