package messages

// Installation lifecycle messages.
const (
	SessionNoModeSelected  = "no mode selected; pass one of --standard, --development, --update, or --uninstall"
	SessionModeConflictFmt = "mode already set to --%s; --%s conflicts with it"

	EnvMissingHeader  = "required framework modules are missing from the source tree:"
	EnvMissingLineFmt = "\n  %s"

	InstallModeStandard    = "standard"
	InstallModeDevelopment = "development"
	InstallModeUpdate      = "update"
	InstallModeUninstall   = "uninstall"
	InstallModeUnset       = "unset"

	InstallStartFmt     = "Installing FrameKit (%s) from %s into %s..."
	UpdateStartFmt      = "Updating FrameKit installation in %s..."
	UninstallStartFmt   = "Removing FrameKit installation from %s..."
	InstallDoneFmt      = "FrameKit %s complete: %s"
	UninstallDone       = "FrameKit removed."
	UninstallNothingFmt = "No FrameKit installation found in %s; nothing to remove."
	UninstallDeclined   = "Uninstall cancelled."

	InstallCreateDirFailedFmt = "create directory %s: %w"
	InstallCopyFailedFmt      = "copy %s to %s: %w"
	InstallLinkFailedFmt      = "link %s to %s: %w"
	UninstallRemoveFailedFmt  = "remove %s: %w"

	UpdateNoInstallFmt     = "no installation recorded in %s; run with --standard (or --development) first"
	UpdateUnknownModeFmt   = "installation manifest in %s records unknown mode %q"
	ManifestReadFailedFmt  = "read installation manifest %s: %w"
	ManifestParseFailedFmt = "parse installation manifest %s: %w"
	ManifestWriteFailedFmt = "write installation manifest %s: %w"
)
