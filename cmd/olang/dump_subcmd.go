package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Helset123/olang/internal/parse"
	"github.com/Helset123/olang/internal/prettyprint"
	"github.com/goccy/go-json"
)

func Dump(mainSubCommand string, mainSubCommandArgs []string, outW, errW io.Writer) (exitCode int) {
	flags := flag.NewFlagSet(mainSubCommand, flag.ContinueOnError)
	flags.SetOutput(errW)

	var common commonFlags
	var dumpTokens, useJSON bool
	common.register(flags)
	flags.BoolVar(&dumpTokens, "tokens", false, "print the tokens instead of the syntax tree")
	flags.BoolVar(&useJSON, "json", false, "print the tokens as JSON (requires -tokens)")

	if showHelp(flags, mainSubCommandArgs, outW) { //only show help
		return
	}

	if err := flags.Parse(mainSubCommandArgs); err != nil {
		return ERROR_STATUS_CODE
	}

	if useJSON && !dumpTokens {
		fmt.Fprintln(errW, "-json requires -tokens")
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
	source := string(content)

	s, err := newSession(common, nil, outW, errW)
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	if dumpTokens {
		tokens, err := parse.Tokenize(source)
		if err != nil {
			s.printError(err, source, nil)
			return ERROR_STATUS_CODE
		}

		if useJSON {
			b, err := json.MarshalIndent(tokens, "", "  ")
			if err != nil {
				fmt.Fprintln(errW, err)
				return ERROR_STATUS_CODE
			}
			fmt.Fprintln(outW, string(b))
			return 0
		}

		if err := prettyprint.PrintTokens(outW, tokens, s.prettyPrintConfig); err != nil {
			fmt.Fprintln(errW, err)
			return ERROR_STATUS_CODE
		}
		return 0
	}

	program, err := parse.ParseSource(source)
	if err != nil {
		s.printError(err, source, nil)
		return ERROR_STATUS_CODE
	}

	if err := parse.PrintProgram(outW, program); err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}
	return 0
}
