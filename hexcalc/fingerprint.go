package hexcalc

import (
	"fmt"
	"sort"

	"github.com/segmentio/fasthash/fnv1a"
	"lukechampine.com/uint128"
)

// / Order-sensitive digest of a run: one fnv1a hash over the outcome list,
// / one over the sorted final variable table, folded together through a
// / 64x64->128 multiply so the two halves diffuse into each other. Two runs
// / of the same source from a fresh table always produce the same
// / fingerprint.
func RunFingerprint(result *RunResult) string {
	ho := fnv1a.Init64
	for _, outcome := range result.Outcomes {
		ho = fnv1a.AddString64(ho, outcome.RawText)
		ho = fnv1a.AddString64(ho, outcome.Status.String())
		ho = fnv1a.AddString64(ho, outcome.Message)
	}

	names := make([]string, 0, len(result.Variables))
	for name := range result.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	hv := fnv1a.Init64
	for _, name := range names {
		hv = fnv1a.AddString64(hv, fmt.Sprintf("%s=%x", name, result.Variables[name]))
	}

	mixed := uint128.From64(ho).Mul(uint128.From64(hv | 1))
	return fmt.Sprintf("%016x%016x", mixed.Hi^ho, mixed.Lo^hv)
}
