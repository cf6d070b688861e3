package prettyprint

import "github.com/muesli/termenv"

var (
	DEFAULT_DARKMODE_PRINT_COLORS = PrettyPrintColors{
		ControlKeyword:    GetFullColorSequence(termenv.ANSIBrightMagenta, false),
		OtherKeyword:      GetFullColorSequence(termenv.ANSIBlue, false),
		StringLiteral:     GetFullColorSequence(termenv.ANSI256Color(209), false),
		IdentifierLiteral: GetFullColorSequence(termenv.ANSIBrightCyan, false),
		NumberLiteral:     GetFullColorSequence(termenv.ANSIBrightGreen, false),
		Constant:          GetFullColorSequence(termenv.ANSIBlue, false),
		Function:          GetFullColorSequence(termenv.ANSIYellow, false),
		DiscreteColor:     GetFullColorSequence(termenv.ANSIBrightBlack, false),

		SuccessColor: GetFullColorSequence(termenv.ANSIBrightGreen, false),
		WarnColor:    GetFullColorSequence(termenv.ANSIYellow, false),
		ErrorColor:   GetFullColorSequence(termenv.ANSIRed, false),
	}

	DEFAULT_LIGHTMODE_PRINT_COLORS = PrettyPrintColors{
		ControlKeyword:    GetFullColorSequence(termenv.ANSI256Color(90), false),
		OtherKeyword:      GetFullColorSequence(termenv.ANSI256Color(26), false),
		StringLiteral:     GetFullColorSequence(termenv.ANSI256Color(88), false),
		IdentifierLiteral: GetFullColorSequence(termenv.ANSI256Color(27), false),
		NumberLiteral:     GetFullColorSequence(termenv.ANSI256Color(28), false),
		Constant:          GetFullColorSequence(termenv.ANSI256Color(21), false),
		Function:          GetFullColorSequence(termenv.ANSI256Color(130), false),
		DiscreteColor:     GetFullColorSequence(termenv.ANSIBrightBlack, false),

		SuccessColor: GetFullColorSequence(termenv.ANSI256Color(28), false),
		WarnColor:    GetFullColorSequence(termenv.ANSI256Color(136), false),
		ErrorColor:   GetFullColorSequence(termenv.ANSI256Color(160), false),
	}
)

type PrettyPrintColors struct {
	//olang code
	ControlKeyword, OtherKeyword, StringLiteral, IdentifierLiteral,
	NumberLiteral, Constant, Function,

	DiscreteColor,
	SuccessColor, WarnColor, ErrorColor []byte
}

// DefaultColors returns the default palette for a terminal background.
func DefaultColors(darkBackground bool) *PrettyPrintColors {
	if darkBackground {
		return &DEFAULT_DARKMODE_PRINT_COLORS
	}
	return &DEFAULT_LIGHTMODE_PRINT_COLORS
}

type PrettyPrintConfig struct {
	//lists nested deeper than MaxDepth are printed as [...], 0 means no limit.
	MaxDepth int
	Colorize bool
	Colors   *PrettyPrintColors

	//if false lists containing lists are printed on several lines.
	Compact bool
	Indent  []byte

	PrintDecodedTopLevelStrings bool
}

func GetFullColorSequence(color termenv.Color, bg bool) []byte {
	var b = []byte(termenv.CSI)
	b = append(b, []byte(color.Sequence(bg))...)
	b = append(b, 'm')
	return b
}
