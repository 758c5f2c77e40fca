package hexcalc

// / An Env answers variable lookups during expression evaluation.
type Env interface {
	LookupVariable(name string) (int64, bool)
}

// / BindingEnv 保存一次运行的变量表。 Created empty at run start, mutated
// / only by successful assignment statements, discarded at run end.
type BindingEnv struct {
	bindings_ map[string]int64
}

func NewBindingEnv() *BindingEnv {
	ret := BindingEnv{}
	ret.bindings_ = map[string]int64{}
	return &ret
}

func (this *BindingEnv) LookupVariable(name string) (int64, bool) {
	value, ok := this.bindings_[name]
	return value, ok
}

func (this *BindingEnv) AddBinding(name string, value int64) {
	this.bindings_[name] = value
}

func (this *BindingEnv) Len() int {
	return len(this.bindings_)
}

// / Copy of the current bindings, for result snapshots.
func (this *BindingEnv) Snapshot() map[string]int64 {
	snapshot := make(map[string]int64, len(this.bindings_))
	for name, value := range this.bindings_ {
		snapshot[name] = value
	}
	return snapshot
}
