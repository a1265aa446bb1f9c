package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Inspect and exercise self-registering factories"
	MsgListShort       = "List every registry and its productions"
	MsgCreateShort     = "Create an instance by interface and id"
	MsgCheckShort      = "Report duplicate registrations"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat  = "Output format: auto, term, text, json, yaml, toml, xml"
	MsgFlagConfig  = "Config file (default $XDG_CONFIG_HOME/factory/config.toml)"

	// Error messages
	MsgErrUnknownInterface = "unknown interface %q"
	MsgErrUnknownID        = "no production %q for %s"
	MsgErrNeedsArgs        = "production %q of %s takes construction arguments"
	MsgErrDuplicates       = "%d duplicate registration(s) found"
)

// MsgRootLong is the root command description
const MsgRootLong = `factory lists the interfaces that have self-registered productions in this
binary, creates instances by id and reports duplicate registrations.

Productions register themselves when their package is initialised, so every
registry is complete before the first command runs. The registries are sealed
once startup finishes.`

// MsgCreateLong describes the create command
const MsgCreateLong = `Create looks up the registry for <interface> (qualified, like shapes.Shape,
or short, like Shape) and produces a new instance for <id>.

The command fails when the interface or the id is unknown.`

// MsgCheckLong describes the check command
const MsgCheckLong = `Check lists every duplicate registration recorded during startup. A
duplicate is either the same producer registered twice or two producers
choosing the same id; in both cases the last registration won.

The command exits non-zero when any duplicate exists.`
