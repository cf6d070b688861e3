package main

import (
	"github.com/Helset123/olang/internal/config"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

var (
	predictScripts     = predict.Files("*" + config.SCRIPT_FILE_EXTENSION)
	predictLogLevels   = predict.Set{"debug", "info", "warn", "error"}
	predictColorModes  = predict.Set{string(config.ColorAuto), string(config.ColorAlways), string(config.ColorNever)}
	commonFlagPredicts = map[string]complete.Predictor{
		LOG_LEVEL_FLAG: predictLogLevels,
		COLOR_FLAG:     predictColorModes,
	}

	completer = &complete.Command{
		Sub: map[string]*complete.Command{
			RUN_SUBCMD: {
				Flags: withCommonFlags(map[string]complete.Predictor{
					"watch": predict.Nothing,
				}),
				Args: predictScripts,
			},
			EVAL_SUBCMD: {
				Flags: withCommonFlags(map[string]complete.Predictor{
					"p": predict.Nothing,
				}),
			},
			EVAL_ALIAS_SUBCMD: {
				Flags: withCommonFlags(map[string]complete.Predictor{
					"p": predict.Nothing,
				}),
			},
			REPL_SUBCMD:  {Flags: commonFlagPredicts},
			SHELL_SUBCMD: {Flags: commonFlagPredicts},
			DUMP_SUBCMD: {
				Flags: withCommonFlags(map[string]complete.Predictor{
					"tokens": predict.Nothing,
					"json":   predict.Nothing,
				}),
				Args: predictScripts,
			},
			INSTALL_COMPLETIONS_SUBCMD:   {},
			UNINSTALL_COMPLETIONS_SUBCMD: {},
			HELP_SUBCMD: {
				Args: predict.Set(SUBCOMMANDS),
			},
		},
	}
)

func withCommonFlags(flags map[string]complete.Predictor) map[string]complete.Predictor {
	for name, predictor := range commonFlagPredicts {
		flags[name] = predictor
	}
	return flags
}
