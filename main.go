package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"

	"hexcalc-go/hexcalc"
)

// / The version number of the current hexcalc release.
const kHexcalcVersion = "1.1.0"

type Options struct {
	// Program text given inline with -e.
	EvalText string
	// Program file to read, "-" for stdin.
	InputFile string
	// Workers for the statement prepare phase. 0 picks NumCPU.
	Parallelism int
	// Validate statements without evaluating anything.
	DryRun bool
	// Print statuses only, no variable table.
	Quiet bool
	// Print the run fingerprint and the undefined-variable summary.
	Verbose bool
}

func Usage() {
	fmt.Fprintf(os.Stderr, "usage: hexcalc [options] [file]\n"+
		"\n"+
		"options:\n"+
		"  -e TEXT   evaluate TEXT instead of reading a file\n"+
		"  -f FILE   read the program from FILE ('-' for stdin)\n"+
		"  -j N      prepare statements with N parallel workers (0 = all CPUs)\n"+
		"  -n        validate only, do not evaluate\n"+
		"  -q        print statement statuses only\n"+
		"  -v        verbose: also print fingerprint and undefined variables\n"+
		"  -V        print hexcalc version\n")
}

// / Parse argv for command-line options.
// / Returns an exit code, or -1 if hexcalc should continue.
func ReadFlags(args *[]string, options *Options) int {
	options.Parallelism = 1
	opts, optind, err := getopt.Getopts(*args, "e:f:j:nqvVh")
	if err != nil {
		log.Fatalln(err)
	}
	*args = (*args)[optind:]
	for _, optV := range opts {
		opt := optV.Option
		optarg := optV.Value
		switch opt {
		case 'e':
			options.EvalText = optarg
		case 'f':
			options.InputFile = optarg
		case 'j':
			value, err := strconv.Atoi(optarg)
			if err != nil || value < 0 {
				log.Fatalln("invalid -j parameter")
			}
			if value > 0 {
				options.Parallelism = value
			} else {
				options.Parallelism = runtime.NumCPU()
			}
		case 'n':
			options.DryRun = true
		case 'q':
			options.Quiet = true
		case 'v':
			options.Verbose = true
		case 'V':
			fmt.Printf("hexcalc %s\n", kHexcalcVersion)
			return 0
		case 'h':
			Usage()
			return 0
		}
	}
	return -1
}

func loadSource(options *Options, args []string) (string, error) {
	if options.EvalText != "" {
		return options.EvalText, nil
	}
	path := options.InputFile
	if path == "" && len(args) > 0 {
		path = args[0]
	}
	if path == "" || path == "-" {
		buf, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(buf), nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// / Validate-only mode: run the structural validator over every non-empty
// / statement, evaluate and bind nothing.
func dryRun(source string) int {
	exitCode := 0
	for _, segment := range strings.Split(source, ";") {
		trimmed := strings.TrimSpace(segment)
		if trimmed == "" {
			continue
		}
		if err := hexcalc.ValidateStatement(trimmed); err != nil {
			PrintValidation(trimmed, err.Msg)
			exitCode = 1
		} else {
			PrintValidation(trimmed, "")
		}
	}
	return exitCode
}

func realMain() int {
	args := os.Args
	options := Options{}
	if exitCode := ReadFlags(&args, &options); exitCode >= 0 {
		return exitCode
	}
	source, err := loadSource(&options, args)
	if err != nil {
		log.Fatalln(err)
	}
	if options.DryRun {
		return dryRun(source)
	}
	result := hexcalc.RunParallel(source, options.Parallelism)
	PrintOutcomes(result)
	if !options.Quiet {
		PrintVariables(result.Variables)
	}
	if options.Verbose {
		PrintSummary(result)
	}
	for _, outcome := range result.Outcomes {
		if outcome.Status == hexcalc.Rejected {
			return 1
		}
	}
	return 0
}

func main() {
	os.Exit(realMain())
}
