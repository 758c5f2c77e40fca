package hexcalc

import (
	"sort"
	"strings"
	"sync"

	"github.com/ahrtr/gocontainer/set"
	"github.com/edwingeng/deque"
)

// / Everything one run produces: the ordered outcome list, the final
// / variable table and the distinct variables that were reported undefined.
type RunResult struct {
	Outcomes  []Outcome        `json:"outcomes"`
	Variables map[string]int64 `json:"variables"`
	Undefined []string         `json:"undefined,omitempty"`
}

// / Run one program: split on the ';' terminator, process each non-empty
// / segment in order against a single fresh variable table, never fail the
// / run. Trailing text without a terminator is still a statement.
func Run(source string) *RunResult {
	return RunParallel(source, 1)
}

// / Like Run, but prepares (tokenizes + structurally checks) statements with
// / the given number of workers. Preparing is stateless per statement;
// / evaluation stays serialized in statement order because later statements
// / depend on earlier assignments.
func RunParallel(source string, workers int) *RunResult {
	segments := strings.Split(source, ";")
	prepared := make([]*preparedStatement, len(segments))
	if workers > 1 && len(segments) > 1 {
		var wg sync.WaitGroup
		indexes := make(chan int, len(segments))
		for i := range segments {
			indexes <- i
		}
		close(indexes)
		if workers > len(segments) {
			workers = len(segments)
		}
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range indexes {
					prepared[i] = prepareStatement(segments[i])
				}
			}()
		}
		wg.Wait()
	} else {
		for i, segment := range segments {
			prepared[i] = prepareStatement(segment)
		}
	}

	pending := deque.NewDeque()
	for _, stmt := range prepared {
		if stmt.kind_ == stmtEmpty {
			// Consecutive terminators and blank tails produce no outcome.
			continue
		}
		pending.PushBack(stmt)
	}

	env := NewBindingEnv()
	undefined := set.New()
	var undefinedNames []string
	result := RunResult{Outcomes: []Outcome{}}
	for !pending.Empty() {
		stmt := pending.Front().(*preparedStatement)
		pending.PopFront()
		outcome, semErr := stmt.commit(env)
		if outcome.Status == Accepted {
			outcome.RawText += ";"
		}
		if semErr != nil && semErr.Ident != "" && !undefined.Contains(semErr.Ident) {
			undefined.Add(semErr.Ident)
			undefinedNames = append(undefinedNames, semErr.Ident)
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}
	sort.Strings(undefinedNames)
	result.Undefined = undefinedNames
	result.Variables = env.Snapshot()
	return &result
}
