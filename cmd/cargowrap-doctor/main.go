package main

import (
	"encoding/json"
	"fmt"
	"os"

	"cargowrap/internal/doctor"
	"cargowrap/internal/model"
	"cargowrap/internal/target"
	"cargowrap/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "cargowrap",
		Repository: "cargowrap",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/cargowrap/cargowrap/releases")
	} else if pflag.Lookup("update").Changed {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cargowrap-doctor [options]\n\n")
		fmt.Fprintf(os.Stderr, "cargowrap-doctor explains how cargowrap picks the target directory\n")
		fmt.Fprintf(os.Stderr, "for the current working directory. It performs the same resolution as\n")
		fmt.Fprintf(os.Stderr, "the wrapper — manifest root, VCS root, symlink discovery, computed\n")
		fmt.Fprintf(os.Stderr, "path — but never runs cargo and never moves any file.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  cargowrap-doctor              # Start TUI mode\n")
		fmt.Fprintf(os.Stderr, "  cargowrap-doctor --report     # Print resolution report to stdout\n")
		fmt.Fprintf(os.Stderr, "  cargowrap-doctor -r -o r.txt  # Save report to file\n")
		fmt.Fprintf(os.Stderr, "  cargowrap-doctor --json       # Output resolution as JSON\n")
	}

	jsonFlag := pflag.BoolP("json", "j", false, "Output the resolution as JSON")
	reportFlag := pflag.BoolP("report", "r", false, "Generate a resolution report (CLI mode)")
	outputFlag := pflag.StringP("output", "o", "", "Save report to the specified file (combined with --report)")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Include every resolution step in the report")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("cargowrap-doctor version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	if *reportFlag {
		runReportMode(*outputFlag, *verboseFlag)
		return
	}

	if *jsonFlag {
		runJsonMode()
		return
	}

	// Default: TUI
	runTuiMode()
}

func resolve() (*model.Resolution, error) {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error determining working directory: %v\n", err)
		os.Exit(1)
	}
	return target.ResolveFrom(cwd)
}

func runReportMode(outputFile string, verbose bool) {
	res, err := resolve()
	report := doctor.GenerateReport(res, verbose)
	if err != nil {
		report += fmt.Sprintf("\nResolution failed: %v\n", err)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(report), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report to %s: %v\n", outputFile, err)
			os.Exit(1)
		}
		fmt.Printf("Report saved to %s\n", outputFile)
	} else {
		fmt.Println(report)
	}
}

func runJsonMode() {
	res, _ := resolve()

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(res)
}

func runTuiMode() {
	m := tui.InitialModel()
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
