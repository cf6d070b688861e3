package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"slices"
	"unicode"

	"github.com/Helset123/olang/internal/utils"
	"github.com/posener/complete/v2/install"
	"golang.org/x/term"
)

const (
	ERROR_STATUS_CODE = 1
	MAX_STACK_SIZE    = 200_000_000

	COMMAND_NAME = "olang"

	//maximum edit distance of a 'did you mean' suggestion.
	MAX_SUGGESTION_DISTANCE = 2
)

func main() {
	//handle completions
	completer.Complete(COMMAND_NAME)

	debug.SetMaxStack(MAX_STACK_SIZE)

	statusCode := _main(os.Args, os.Stdin, os.Stdout, os.Stderr)
	if statusCode != 0 {
		os.Exit(statusCode)
	}
}

func _main(args []string, inR io.Reader, outW io.Writer, errW io.Writer) (statusCode int) {
	mainSubCommand := ""
	var mainSubCommandArgs []string

	if len(args) <= 1 { //no subcommand specified
		if !isTerminal(inR) {
			return RunStdin(inR, outW, errW)
		}
		mainSubCommand = REPL_SUBCMD
	} else {
		mainSubCommand = args[1]
		mainSubCommandArgs = args[2:]
	}

	//if the command has the shape help <subcommand> ... we modify the arguments to ask the subcommand to print its help message.
	if mainSubCommand == HELP_SUBCMD && len(mainSubCommandArgs) > 0 && mainSubCommandArgs[0] != "" && unicode.IsLetter(rune(mainSubCommandArgs[0][0])) {
		mainSubCommand = mainSubCommandArgs[0]
		mainSubCommandArgs = []string{"-h"}
	}

	//unknown command
	if !slices.Contains(SUBCOMMANDS, mainSubCommand) && !slices.Contains(HELP_SUBCMD_EQUIVALENTS, mainSubCommand) {
		fmt.Fprintf(errW, "unknown command '%s'", mainSubCommand)

		closest, _, ok := utils.FindClosestString(SUBCOMMANDS, mainSubCommand, MAX_SUGGESTION_DISTANCE)
		if ok {
			fmt.Fprintf(errW, ", did you mean '%s' ?\n", closest)
		} else {
			fmt.Fprint(errW, "\n"+OLANG_CMD_HELP)
		}
		return ERROR_STATUS_CODE
	}

	switch mainSubCommand {
	case HELP_SUBCMD, "--help", "-help", "-h":
		fmt.Fprint(outW, OLANG_CMD_HELP)
		return
	case INSTALL_COMPLETIONS_SUBCMD:
		err := install.Install(COMMAND_NAME)
		if err != nil {
			fmt.Fprintln(errW, err)
			return ERROR_STATUS_CODE
		}
		fmt.Fprintln(outW, "installed")
		return
	case UNINSTALL_COMPLETIONS_SUBCMD:
		err := install.Uninstall(COMMAND_NAME)
		if err != nil {
			fmt.Fprintln(errW, err)
			return ERROR_STATUS_CODE
		}
		fmt.Fprintln(outW, "uninstalled")
		return
	case RUN_SUBCMD:
		return RunProgram(mainSubCommand, mainSubCommandArgs, inR, outW, errW)
	case EVAL_SUBCMD, EVAL_ALIAS_SUBCMD:
		return EvalCode(mainSubCommand, mainSubCommandArgs, inR, outW, errW)
	case REPL_SUBCMD, SHELL_SUBCMD:
		return StartREPL(mainSubCommand, mainSubCommandArgs, outW, errW)
	case DUMP_SUBCMD:
		return Dump(mainSubCommand, mainSubCommandArgs, outW, errW)
	default:
		panic(fmt.Errorf("subcommand %q is not handled", mainSubCommand))
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
