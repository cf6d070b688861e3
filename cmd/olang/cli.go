package main

import (
	"flag"
	"fmt"
	"io"
	"slices"
)

const (
	RUN_SUBCMD                   = "run"
	EVAL_SUBCMD                  = "eval"
	EVAL_ALIAS_SUBCMD            = "e"
	REPL_SUBCMD                  = "repl"
	SHELL_SUBCMD                 = "shell"
	DUMP_SUBCMD                  = "dump"
	INSTALL_COMPLETIONS_SUBCMD   = "install-completions"
	UNINSTALL_COMPLETIONS_SUBCMD = "uninstall-completions"
	HELP_SUBCMD                  = "help"
)

var (
	SUBCOMMANDS = []string{
		RUN_SUBCMD, EVAL_SUBCMD, EVAL_ALIAS_SUBCMD, REPL_SUBCMD, SHELL_SUBCMD, DUMP_SUBCMD,
		INSTALL_COMPLETIONS_SUBCMD, UNINSTALL_COMPLETIONS_SUBCMD, HELP_SUBCMD,
	}

	HELP_SUBCMD_EQUIVALENTS = []string{"--help", "-help", "-h"}

	CLI_SUBCOMMAND_DESCRIPTIONS = [][2]string{
		{RUN_SUBCMD, "run a script"},
		{EVAL_SUBCMD, "evaluate the code passed as argument"},
		{EVAL_ALIAS_SUBCMD, "alias for eval"},
		{REPL_SUBCMD, "start the REPL"},
		{SHELL_SUBCMD, "alias for repl"},
		{DUMP_SUBCMD, "print the tokens or the syntax tree of a script"},

		{INSTALL_COMPLETIONS_SUBCMD, "install CLI completions by addding the completion command to the detected rc file (supported shells are bash, zsh and fish)"},
		{UNINSTALL_COMPLETIONS_SUBCMD, "uninstall CLI completions by removing the completion command from the detected rc file"},
		{HELP_SUBCMD, "show the general help or command-specific help"},
	}

	CLI_SUBCOMMAND_DESCRIPTION_MAP = map[string]string{}

	OLANG_CMD_HELP = "commands:\n"
)

func init() {
	for _, entry := range CLI_SUBCOMMAND_DESCRIPTIONS {
		cmd, desc := entry[0], entry[1]
		CLI_SUBCOMMAND_DESCRIPTION_MAP[cmd] = desc
		OLANG_CMD_HELP += "\t" + cmd + " - " + desc + "\n"
	}
	OLANG_CMD_HELP += "\nWithout a command the REPL is started, or the program is read from stdin if it is not a terminal.\n"
	OLANG_CMD_HELP += "Type `olang help <command>` to get command-specific help.\n"
}

func showHelp(flags *flag.FlagSet, args []string, out io.Writer) bool {
	//only show help
	if slices.Contains(args, "-h") || slices.Contains(args, "--help") {

		cmd := flags.Name()
		if desc, ok := CLI_SUBCOMMAND_DESCRIPTION_MAP[cmd]; ok {
			fmt.Fprintln(out, desc)
		}

		flags.SetOutput(out)
		fmt.Fprint(out, "\noptions:\n")
		flags.PrintDefaults()

		return true
	}

	return false
}
