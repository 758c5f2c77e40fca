package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"

	"hexcalc-go/hexcalc"
)

var (
	tagOk   = color.New(color.FgGreen).SprintFunc()
	tagWarn = color.New(color.FgYellow).SprintFunc()
	tagErr  = color.New(color.FgRed).SprintFunc()
)

// / One line per statement: a colored status tag, the statement text and,
// / when present, the diagnostic message.
func PrintOutcomes(result *hexcalc.RunResult) {
	for _, outcome := range result.Outcomes {
		switch {
		case outcome.Status == hexcalc.Rejected:
			fmt.Printf("%s  %s  %s\n", tagErr("err "), outcome.RawText, outcome.Message)
		case outcome.Message != "":
			fmt.Printf("%s  %s  %s\n", tagWarn("warn"), outcome.RawText, outcome.Message)
		default:
			fmt.Printf("%s  %s\n", tagOk("ok  "), outcome.RawText)
		}
	}
}

func PrintValidation(statement, message string) {
	if message == "" {
		fmt.Printf("%s  %s\n", tagOk("ok  "), statement)
	} else {
		fmt.Printf("%s  %s  %s\n", tagErr("err "), statement, message)
	}
}

// / The final variable table, sorted by name, in decimal and hex.
func PrintVariables(variables map[string]int64) {
	if len(variables) == 0 {
		return
	}
	names := make([]string, 0, len(variables))
	for name := range variables {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println("variables:")
	for _, name := range names {
		value := variables[name]
		if value < 0 {
			fmt.Printf("  %s = %d (-0x%x)\n", name, value, -value)
		} else {
			fmt.Printf("  %s = %d (0x%x)\n", name, value, value)
		}
	}
}

func PrintSummary(result *hexcalc.RunResult) {
	if len(result.Undefined) > 0 {
		fmt.Printf("undefined variables: %v\n", result.Undefined)
	}
	fmt.Printf("fingerprint: %s\n", hexcalc.RunFingerprint(result))
}
