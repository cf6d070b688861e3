package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

func RunProgram(mainSubCommand string, mainSubCommandArgs []string, inR io.Reader, outW, errW io.Writer) (exitCode int) {
	//read and check arguments

	flags := flag.NewFlagSet(mainSubCommand, flag.ContinueOnError)
	flags.SetOutput(errW)

	var common commonFlags
	var watch bool
	common.register(flags)
	flags.BoolVar(&watch, "watch", false, "run the script again each time it is modified")

	if showHelp(flags, mainSubCommandArgs, outW) { //only show help
		return
	}

	err := flags.Parse(mainSubCommandArgs)
	if err != nil {
		return ERROR_STATUS_CODE
	}

	fpath := flags.Arg(0)

	if fpath == "" {
		fmt.Fprintf(errW, "missing script path\n")
		return ERROR_STATUS_CODE
	}

	content, err := os.ReadFile(fpath)
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	s, err := newSession(common, inR, outW, errW)
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	s.logger.Debug().Str("path", fpath).Msg("running script")
	exitCode = s.evalSource(string(content), false)

	if !watch {
		return exitCode
	}

	watcher, err := newScriptWatcher(fpath, s.logger)
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fmt.Fprintf(errW, "watching %s, exit with Ctrl-C\n", fpath)

	watcher.Run(ctx, WATCH_DEBOUNCE_DURATION, func() {
		content, err := os.ReadFile(fpath)
		if err != nil {
			fmt.Fprintln(errW, err)
			return
		}
		s.logger.Debug().Str("path", fpath).Msg("script modified, running it again")
		s.evalSource(string(content), false)
	})
	return 0
}

func EvalCode(mainSubCommand string, mainSubCommandArgs []string, inR io.Reader, outW, errW io.Writer) (exitCode int) {
	flags := flag.NewFlagSet(mainSubCommand, flag.ContinueOnError)
	flags.SetOutput(errW)

	var common commonFlags
	var printResult bool
	common.register(flags)
	flags.BoolVar(&printResult, "p", false, "print the result of the last expression")

	if showHelp(flags, mainSubCommandArgs, outW) { //only show help
		return
	}

	err := flags.Parse(mainSubCommandArgs)
	if err != nil {
		return ERROR_STATUS_CODE
	}

	if flags.NArg() == 0 {
		fmt.Fprintf(errW, "missing code\n")
		return ERROR_STATUS_CODE
	}

	code := strings.Join(flags.Args(), " ")

	s, err := newSession(common, inR, outW, errW)
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	return s.evalSource(code, printResult)
}

// RunStdin runs the program read from inR, the program itself cannot read from stdin.
func RunStdin(inR io.Reader, outW, errW io.Writer) (exitCode int) {
	content, err := io.ReadAll(inR)
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	s, err := newSession(commonFlags{}, strings.NewReader(""), outW, errW)
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	return s.evalSource(string(content), false)
}
