package cli

import (
	"flag"
	"fmt"
	"os"
)

const RootCLICommand string = "gosyslog"

// Command description for the help menu
type CommandSet struct {
	CommandName     string
	Description     string
	FullDescription string
}

func DefineOptions() (cmdOpts []CommandSet) {
	cmdOpts = []CommandSet{
		{
			CommandName:     "send",
			Description:     "Send a Message",
			FullDescription: "Formats a log message per RFC 3164 or RFC 5424 and sends it over the chosen transport",
		},
		{
			CommandName:     "version",
			Description:     "Show Version Information",
			FullDescription: "Display meta information about program",
		},
	}
	return
}

// Prints usage for the given command set and any parsed flags
func PrintHelpMenu(commandFlags *flag.FlagSet, commandName string, cmdOpts []CommandSet) {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options] [message...]\n\n", commandName)
	fmt.Fprintf(os.Stderr, "Commands:\n")
	for _, opt := range cmdOpts {
		fmt.Fprintf(os.Stderr, "  %-10s %s\n", opt.CommandName, opt.Description)
		fmt.Fprintf(os.Stderr, "             %s\n", opt.FullDescription)
	}
	if commandFlags != nil {
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		commandFlags.PrintDefaults()
	}
}

// Registers arguments shared by all commands
func SetGlobalArguments(commandFlags *flag.FlagSet) (requestedLogLevel *int) {
	requestedLogLevel = commandFlags.Int("verbosity", 1, "Verbosity level (0-3)")
	return
}
