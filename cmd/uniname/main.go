package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/esimov/uniname"
	"github.com/esimov/uniname/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┬ ┬┌┐┌┬┌┐┌┌─┐┌┬┐┌─┐
│ │││││││├─┤│││├┤
└─┘┘└┘┴┘└┘┴ ┴┴ ┴└─┘

Curated Unicode display name generator.
    Version: %s

`

// pipeName is the file name that indicates stdin is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source  = flag.String("in", pipeName, "Source registry file")
	outdir  = flag.String("out", "names", "Output directory")
	workers = flag.Int("conc", runtime.NumCPU(), "Number of records to process concurrently")
	blocks  = flag.Bool("blocks", true, "Write per-block JSON files")
	names   = flag.Bool("names", true, "Write per-codepoint name files")
	quiet   = flag.Bool("quiet", false, "Suppress progress output")

	// spinner used to instantiate and call the progress indicator.
	spinner *utils.Spinner
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, fmt.Sprintf(HelpBanner, Version))
		flag.PrintDefaults()
	}
	flag.Parse()

	if !*blocks && !*names {
		flag.Usage()
		log.Fatal(fmt.Sprintf("%s%s",
			utils.DecorateText("\nPlease enable at least one of the -blocks and -names outputs!", utils.ErrorMessage),
			utils.DefaultColor,
		))
	}

	var src io.Reader
	if *source == pipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			log.Fatal(utils.DecorateText("`-` should be used with a pipe for stdin\n", utils.ErrorMessage))
		}
		src = os.Stdin
	} else {
		f, err := os.Open(*source)
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the registry file: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		defer f.Close()
		src = f
	}

	interactive := term.IsTerminal(int(os.Stderr.Fd())) && !*quiet

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ UNINAME", utils.StatusMessage),
		utils.DecorateText("is decomposing the registry...", utils.DefaultMessage))
	spinner = utils.NewSpinner(spinnerText, time.Millisecond*200, true, interactive)

	// Capture CTRL-C signal and restore the cursor visibility back.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		spinner.RestoreCursor()
		os.Exit(1)
	}()

	now := time.Now()

	proc := &uniname.Processor{
		Workers: *workers,
		Spinner: spinner,
	}
	res, err := proc.Process(src)
	if err != nil {
		log.Fatalf(
			utils.DecorateText("\nError processing the registry: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
	}

	printMismatches(res)

	var blockFiles, nameFiles int
	if *blocks {
		blockFiles, err = res.Table.WriteBlocks(*outdir)
		if err != nil {
			log.Fatalf(
				utils.DecorateText("\nError writing the block files: %s", utils.ErrorMessage),
				utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
			)
		}
	}
	if *names {
		nameFiles, err = res.Table.WriteNames(*outdir, interactive)
		if err != nil {
			log.Fatalf(
				utils.DecorateText("\nError writing the name files: %s", utils.ErrorMessage),
				utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
			)
		}
	}

	fmt.Fprintf(os.Stderr, "\nGenerated %s names (%s block files, %s codepoint files)\n",
		utils.DecorateText(fmt.Sprintf("%d", len(res.Table)), utils.SuccessMessage),
		utils.DecorateText(fmt.Sprintf("%d", blockFiles), utils.SuccessMessage),
		utils.DecorateText(fmt.Sprintf("%d", nameFiles), utils.SuccessMessage),
	)
	fmt.Fprintf(os.Stderr, "Execution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// printMismatches reports the round-trip mismatch count together with the
// bounded sample list. Mismatches are skipped records, never fatal.
func printMismatches(res *uniname.Result) {
	if res.MismatchCount == 0 {
		return
	}
	fmt.Fprintf(os.Stderr, "%s\n",
		utils.DecorateText(fmt.Sprintf("%d codepoint round-trip mismatches:", res.MismatchCount), utils.ErrorMessage))
	for _, mm := range res.Mismatches {
		fmt.Fprintf(os.Stderr, "\t%s %s\n", mm.Hex, mm.Name)
	}
}
