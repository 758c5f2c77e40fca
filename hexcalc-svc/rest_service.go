package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"expvar"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/expvarhandler"
	"github.com/zeebo/blake3"

	"hexcalc-go/hexcalc"
	"hexcalc-go/model"
)

// Various counters - see https://pkg.go.dev/expvar for details.
var (
	// Counter for total number of run calls
	runCalls = expvar.NewInt("runCalls")
	// Counter for total number of validate calls
	validateCalls = expvar.NewInt("validateCalls")

	svcInstance string
	svcServer   *fasthttp.Server
)

// / blake3 digest of the submitted source text, the history lookup key.
func HashSource(source string) string {
	h := blake3.New()
	h.WriteString(source)
	return hex.EncodeToString(h.Sum(nil))
}

func buildRunEntry(source string, result *hexcalc.RunResult) *model.RunEntry {
	now := time.Now()
	entry := model.RunEntry{
		SourceHash:      HashSource(source),
		Source:          source,
		Fingerprint:     hexcalc.RunFingerprint(result),
		Statements:      len(result.Outcomes),
		Instance:        svcInstance,
		CreatedAt:       now.Unix(),
		LastAccess:      now.Unix(),
		ExpiredDuration: int64(24 * time.Hour),
	}
	for i, outcome := range result.Outcomes {
		if outcome.Status == hexcalc.Rejected {
			entry.Rejected++
		} else if outcome.Message != "" {
			entry.Warnings++
		}
		entry.Outcomes = append(entry.Outcomes, &model.OutcomeEntry{
			Ordinal: i,
			RawText: outcome.RawText,
			Status:  outcome.Status.String(),
			Message: outcome.Message,
		})
	}
	return &entry
}

// / POST /run: evaluate the submitted program, store one history entry,
// / respond with the run result. Evaluation itself is pure; only the
// / history row touches storage.
func HandleRun(ctx *fasthttp.RequestCtx) {
	ctx.Response.Reset()
	runCalls.Add(1)
	source := string(ctx.FormValue("source"))
	result := hexcalc.Run(source)
	entry := buildRunEntry(source, result)
	if err := SaveRunEntry(entry); err != nil {
		ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
		return
	}
	buf, err := json.Marshal(result)
	if err != nil {
		ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
		return
	}
	ctx.Success("application/json", buf)
}

type validation struct {
	Statement string `json:"statement"`
	Ok        bool   `json:"ok"`
	Message   string `json:"message,omitempty"`
}

// / POST /validate: structural check only; nothing is evaluated or stored.
func HandleValidate(ctx *fasthttp.RequestCtx) {
	ctx.Response.Reset()
	validateCalls.Add(1)
	source := string(ctx.FormValue("source"))
	results := []validation{}
	for _, segment := range strings.Split(source, ";") {
		trimmed := strings.TrimSpace(segment)
		if trimmed == "" {
			continue
		}
		v := validation{Statement: trimmed, Ok: true}
		if err := hexcalc.ValidateStatement(trimmed); err != nil {
			v.Ok = false
			v.Message = err.Msg
		}
		results = append(results, v)
	}
	buf, err := json.Marshal(results)
	if err != nil {
		ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
		return
	}
	ctx.Success("application/json", buf)
}

// / GET /query?source_hash=...: recent history entries for a source hash.
func HandleQuery(ctx *fasthttp.RequestCtx) {
	ctx.Response.Reset()
	sourceHash := string(ctx.QueryArgs().Peek("source_hash"))
	entries, err := FindRunsBySourceHash(sourceHash, svcInstance)
	if err != nil {
		ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
		return
	}
	if err := UpdateRunAccess(sourceHash); err != nil {
		fmt.Println(err)
	}
	buf, err := json.Marshal(entries)
	if err != nil {
		ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
		return
	}
	ctx.Success("application/json", buf)
}

// / GET /stats: aggregate counters over the whole history table, read
// / through the raw sqlite path.
func HandleStats(ctx *fasthttp.RequestCtx) {
	ctx.Response.Reset()
	stats, err := QueryRunStats()
	if err != nil {
		ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
		return
	}
	buf, err := json.Marshal(stats)
	if err != nil {
		ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
		return
	}
	ctx.Success("application/json", buf)
}

func ServeRest(addr, instance string) {
	svcInstance = instance
	requestHandler := func(ctx *fasthttp.RequestCtx) {
		switch string(ctx.Path()) {
		case "/run":
			HandleRun(ctx)
		case "/validate":
			HandleValidate(ctx)
		case "/query":
			HandleQuery(ctx)
		case "/stats":
			HandleStats(ctx)
		case "/expvar":
			expvarhandler.ExpvarHandler(ctx)
		default:
			ctx.Error("not found", fasthttp.StatusNotFound)
		}
	}
	// Start HTTP server.
	if len(addr) > 0 {
		log.Printf("Starting HTTP server on %q", addr)
		svcServer = &fasthttp.Server{
			Handler:      requestHandler,
			ReadTimeout:  15 * time.Minute,
			WriteTimeout: 15 * time.Minute,
			Concurrency:  256 * 1024,
		}
		if err := svcServer.ListenAndServe(addr); err != nil {
			log.Fatalf("error in ListenAndServe: %v", err)
		}
	}
}

func shutdown(ctx context.Context) {
	CloseDb()
	CloseStatsDb()
	StopScheduler()
	err := svcServer.ShutdownWithContext(ctx)
	if err != nil {
		log.Println(err)
	}
}
