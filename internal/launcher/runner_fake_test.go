package launcher

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

type call struct {
	Dir  string
	Env  []string
	Name string
	Args []string
}

// fakeRunner answers Output calls from a table keyed by "name arg...".
type fakeRunner struct {
	mu       sync.Mutex
	outputs  map[string][]byte
	fail     map[string]error
	exitCode int
	startErr error

	outputCalls []call
	runCalls    []call
	startCalls  []call
}

func (f *fakeRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outputCalls = append(f.outputCalls, call{Name: name, Args: args})
	key := strings.Join(append([]string{name}, args...), " ")
	if err := f.fail[key]; err != nil {
		return nil, err
	}
	if out, ok := f.outputs[key]; ok {
		return out, nil
	}
	return nil, fmt.Errorf("exec: %q: executable file not found in $PATH", name)
}

func (f *fakeRunner) Run(dir, name string, args ...string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runCalls = append(f.runCalls, call{Dir: dir, Name: name, Args: args})
	return f.exitCode, nil
}

func (f *fakeRunner) Start(env []string, name string, args ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.startCalls = append(f.startCalls, call{Env: env, Name: name, Args: args})
	return f.startErr
}
