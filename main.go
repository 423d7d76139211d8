package main

import (
	"os"

	"github.com/fatih/color"

	"vite-setup/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// vite-setup turns the current directory into a Vite + Tailwind project that
// deploys to GitHub Pages:
//   - Creates package.json with the package manager's `init -y` when it is missing
//   - Merges build/deploy devDependencies, dependencies and scripts into package.json,
//     keeping any value the user already set
//   - Overwrites vite.config.js with a config whose base path is the directory name
//   - Seeds src/style.css with the Tailwind import unless it already exists
//   - Runs the package manager's install
//
// Error handling strategy:
//   - Every step returns its error; the first failure stops the run and nothing
//     already written is rolled back
//   - The error is printed to stderr and, when the package manager itself failed,
//     its exit status becomes ours
func main() {
	if err := cmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "vite-setup: %v\n", err)
		os.Exit(cmd.ExitCode(err))
	}
}
