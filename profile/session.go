package profile

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Session is one profiling run.
//
// Create instances with [Config.Start].
type Session struct {
	cpuFile       *os.File
	cfg           Config
	prevMutexFrac int
	stopped       bool
}

// Start applies the sampling rates of the requested profiles and begins CPU
// profiling when enabled. The returned session must be stopped with
// [Session.Stop].
func (c *Config) Start() (*Session, error) {
	s := &Session{cfg: *c, prevMutexFrac: -1}

	if c.BlockProfile != "" {
		runtime.SetBlockProfileRate(c.BlockProfileRate)
	}

	if c.MutexProfile != "" {
		s.prevMutexFrac = runtime.SetMutexProfileFraction(c.MutexProfileFraction)
	}

	if c.CPUProfile == "" {
		return s, nil
	}

	f, err := os.Create(c.CPUProfile) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		s.resetRates()
		return nil, fmt.Errorf("create cpu profile: %w", err)
	}

	err = pprof.StartCPUProfile(f)
	if err != nil {
		s.resetRates()
		return nil, errors.Join(fmt.Errorf("start cpu profile: %w", err), f.Close())
	}

	s.cpuFile = f

	return s, nil
}

// Stop ends CPU profiling, writes every requested snapshot profile, and
// resets the sampling rates. Every profile is attempted; failures are
// joined. Stopping twice is a no-op.
func (s *Session) Stop() error {
	if s == nil || s.stopped {
		return nil
	}

	s.stopped = true

	var errs []error

	if s.cpuFile != nil {
		pprof.StopCPUProfile()

		err := s.cpuFile.Close()
		if err != nil {
			errs = append(errs, fmt.Errorf("close cpu profile: %w", err))
		}
	}

	for _, snap := range []struct {
		name string
		path string
	}{
		{"heap", s.cfg.HeapProfile},
		{"goroutine", s.cfg.GoroutineProfile},
		{"block", s.cfg.BlockProfile},
		{"mutex", s.cfg.MutexProfile},
	} {
		if snap.path == "" {
			continue
		}

		err := writeSnapshot(snap.name, snap.path)
		if err != nil {
			errs = append(errs, err)
		}
	}

	s.resetRates()

	return errors.Join(errs...)
}

func (s *Session) resetRates() {
	if s.cfg.BlockProfile != "" {
		runtime.SetBlockProfileRate(0)
	}

	if s.prevMutexFrac >= 0 {
		runtime.SetMutexProfileFraction(s.prevMutexFrac)
	}
}

func writeSnapshot(name, path string) error {
	p := pprof.Lookup(name)
	if p == nil {
		return fmt.Errorf("unknown profile %q", name)
	}

	if name == "heap" {
		runtime.GC()
	}

	f, err := os.Create(path) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("create %s profile: %w", name, err)
	}

	err = p.WriteTo(f, 0)
	if err != nil {
		return errors.Join(fmt.Errorf("write %s profile: %w", name, err), f.Close())
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("close %s profile: %w", name, err)
	}

	return nil
}
