package main

import "testing"

func TestReadFlags(t *testing.T) {
	args := []string{"hexcalc", "-n", "-q", "-v", "-j", "2", "prog.hex"}
	options := Options{}
	if code := ReadFlags(&args, &options); code != -1 {
		t.Fatalf("ReadFlags = %d; want -1 (continue)", code)
	}
	if !options.DryRun || !options.Quiet || !options.Verbose {
		t.Errorf("options = %+v", options)
	}
	if options.Parallelism != 2 {
		t.Errorf("parallelism = %d; want 2", options.Parallelism)
	}
	if len(args) != 1 || args[0] != "prog.hex" {
		t.Errorf("positional args = %v; want [prog.hex]", args)
	}
}

func TestDryRunExitCode(t *testing.T) {
	if code := dryRun("a := 1; b := a + 2;"); code != 0 {
		t.Errorf("valid program dry run = %d; want 0", code)
	}
	if code := dryRun("a := 1; b := 5 +"); code != 1 {
		t.Errorf("invalid program dry run = %d; want 1", code)
	}
	// Dry runs never consult the variable table, so undefined names pass.
	if code := dryRun("x + y"); code != 0 {
		t.Errorf("undefined-only program dry run = %d; want 0", code)
	}
}
