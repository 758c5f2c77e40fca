package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"
)

var (
	dbName   = flag.String("dbName", "hexcalc.db", "run history db name.")
	addr     = flag.String("addr", "localhost:8080", "TCP address to listen to")
	instance = flag.String("instance", "default", "instance tag stored on every history entry")
)

func main() {
	// Parse command-line flags.
	flag.Parse()
	dbPath := filepath.Join(filepath.Dir(os.Args[0]), *dbName)
	err := OpenDb(dbPath)
	if err != nil {
		panic(err)
	}
	err = OpenStatsDb(dbPath)
	if err != nil {
		panic(err)
	}
	go StartExpiredCleanSchedule()
	go ServeRest(*addr, *instance)
	// Make a signal channel. Register SIGINT.
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt)

	// Wait for the signal.
	<-sigch

	fmt.Println("Interrupted. Exiting.")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	shutdown(ctx)
}
