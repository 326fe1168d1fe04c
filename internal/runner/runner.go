package runner

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"gz/internal/memory"
	"gz/pkg/color"
	"gz/pkg/interpreter"
	"gz/pkg/scanner"
)

// Runner holds the resolved options for one interpreter run.
type Runner struct {
	Verbose    bool   // Dump normalized token lines before running
	NoColor    bool   // Disable colored output
	Entry      string // Entry function name ("" disables auto-invoke)
	MaxDepth   int    // Call-depth budget
	MaxSteps   int    // Loop iteration budget (0 = unlimited)
	MemoryFile string // Run memory file; empty disables the collaborator
	SourceFile string // Path to the source file
}

// Run reads the source file, optionally dumps the token lines, and
// executes the program.
func (opts *Runner) Run() error {
	log.Info("Processing file", "file", opts.SourceFile)

	input, err := os.ReadFile(opts.SourceFile)
	if err != nil {
		log.Fatal("Failed to read file", "file", opts.SourceFile, "error", err)
	}

	if opts.Verbose {
		lines := scanner.Scan(string(input))
		fmt.Println(color.GreenText("\n=== Token Lines ==="))
		if len(lines) == 0 {
			fmt.Println(color.GrayText("No code to run."))
		}
		for _, ln := range lines {
			fmt.Printf("%s: (indent %s) %s\n",
				color.CyanText(fmt.Sprintf("%d", ln.Num)),
				color.YellowText(fmt.Sprintf("%d", ln.Indent)),
				color.BlueText(ln.Content))
		}
	}

	options := []interpreter.Option{
		interpreter.WithEntry(opts.Entry),
	}
	if opts.MaxDepth > 0 {
		options = append(options, interpreter.WithMaxDepth(opts.MaxDepth))
	}
	if opts.MaxSteps > 0 {
		options = append(options, interpreter.WithMaxSteps(opts.MaxSteps))
	}
	if opts.MemoryFile != "" {
		store := memory.NewStore(opts.MemoryFile)
		options = append(options, interpreter.WithProcessedHook(store.ProgramProcessed))
	}

	intr := interpreter.New(options...)
	fmt.Println(color.GreenText("\n=== Program Output ==="))
	if err := intr.Run(string(input), opts.SourceFile); err != nil {
		fmt.Println(color.BrightRedText("\n=== Runtime Failure ==="))
		return fmt.Errorf("interpretation failed: %w", err)
	}

	return nil
}
