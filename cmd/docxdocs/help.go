package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docxdocs <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Generate .docx documentation from docs-json (default)")
	fmt.Fprintln(w, "  doctor     Check the system for PDF preview support")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'docxdocs help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docxdocs generate <docs.json>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a Word document describing web components.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  docs.json   JSON written by Stencil's docs-json output target.")
	fmt.Fprintln(w, "              With several inputs each x.json writes x.docx.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --out-dir <dir>       Output directory (default: docs)")
	fmt.Fprintln(w, "  -f, --out-file <name>     Output file name, single input only (default: docs.docx)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           Cover title")
	fmt.Fprintln(w, "      --author <s>          Cover author")
	fmt.Fprintln(w, "      --font <s>            Body text font (default: Calibri)")
	fmt.Fprintln(w, "      --date-format <s>     Cover date format (default: M/D/YYYY)")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, dddd")
	fmt.Fprintln(w, "                            Presets: locale, iso, us, european, long")
	fmt.Fprintln(w, "                            Use [text] to escape literals")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Filtering:")
	fmt.Fprintln(w, "      --exclude-tag <tag>   Hide components and props with this doc tag")
	fmt.Fprintln(w, "                            (repeatable, default: undocumented)")
	fmt.Fprintln(w, "      --no-exclude          Document everything")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markdown:")
	fmt.Fprintln(w, "      --markdown            Render documentation strings as Markdown")
	fmt.Fprintln(w, "      --code-style <s>      Chroma style for fenced code (default: github)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Previews:")
	fmt.Fprintln(w, "      --html                Also write an HTML preview")
	fmt.Fprintln(w, "      --pdf                 Also write a PDF preview (needs Chrome)")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF preview timeout (default: 30s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing and debug logs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  DOCXDOCS_CONFIG, DOCXDOCS_OUT_DIR, DOCXDOCS_FONT, DOCXDOCS_TITLE,")
	fmt.Fprintln(w, "  DOCXDOCS_AUTHOR, DOCXDOCS_WORKERS, DOCXDOCS_TIMEOUT")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docxdocs doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check Chrome, sandbox settings, the temp directory and DOCXDOCS_CONFIG.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json                Print results as JSON")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: docxdocs version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: docxdocs help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
