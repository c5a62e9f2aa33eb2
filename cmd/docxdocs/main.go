package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches the command and returns the exit code. Arguments that
// are not a command name run generate, so "docxdocs docs.json" works.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	switch {
	case isCommand(cmd, "generate"):
		return runGenerateCmd(ctx, rest, env)
	case isCommand(cmd, "doctor"):
		return runDoctorCmd(rest, env)
	case isCommand(cmd, "version"), cmd == "--version":
		fmt.Fprintf(env.Stdout, "docxdocs %s\n", Version)
		return ExitSuccess
	case isCommand(cmd, "help"), cmd == "-h", cmd == "--help":
		return runHelp(rest, env)
	case looksLikeJSON(cmd), strings.HasPrefix(cmd, "-"):
		return runGenerateCmd(ctx, args[1:], env)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// isCommand reports whether arg names cmd.
func isCommand(arg, cmd string) bool {
	return arg == cmd
}

// looksLikeJSON reports whether arg has a .json extension.
func looksLikeJSON(arg string) bool {
	return strings.EqualFold(filepath.Ext(arg), ".json")
}
