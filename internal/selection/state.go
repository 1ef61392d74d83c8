// Package selection holds a visitor's active gym and branch.
package selection

import (
	"context"
	"sync"

	"eaglegym/internal/gym"
	"eaglegym/internal/logger"
	"eaglegym/internal/metrics"
)

// Directory lists gyms and their branches.
type Directory interface {
	GetGyms(ctx context.Context) ([]gym.Gym, error)
	GetBranches(ctx context.Context, gymSlug string) ([]gym.Branch, error)
}

// BranchSink receives every change of the active pair.
type BranchSink interface {
	SetBranch(gymSlug, branchSlug string)
}

type State struct {
	directory     Directory
	sink          BranchSink
	defaultGym    string
	defaultBranch string

	mu         sync.RWMutex
	gymSlug    string
	branchSlug string
	gyms       []gym.Gym
	branches   []gym.Branch
	loading    int
	err        error
}

func New(directory Directory, sink BranchSink, defaultGym, defaultBranch string) *State {
	return &State{
		directory:     directory,
		sink:          sink,
		defaultGym:    defaultGym,
		defaultBranch: defaultBranch,
	}
}

// Reset selects the default pair without touching the store. The lists load
// on the first selection that needs them.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gymSlug = s.defaultGym
	s.branchSlug = s.defaultBranch
	s.sink.SetBranch(s.gymSlug, s.branchSlug)
}

// Initialize selects the default pair and loads both lists.
func (s *State) Initialize(ctx context.Context) error {
	s.Reset()

	gymsErr := s.RefreshGyms(ctx)
	branchesErr := s.RefreshBranches(ctx)
	if gymsErr != nil {
		return gymsErr
	}
	return branchesErr
}

// SelectGym changes the active gym and reloads its branches. The branch slug
// is left as is.
func (s *State) SelectGym(ctx context.Context, gymSlug string) error {
	s.mu.Lock()
	changed := s.gymSlug != gymSlug
	s.gymSlug = gymSlug
	s.sink.SetBranch(s.gymSlug, s.branchSlug)
	reloadGyms, reloadBranches := s.staleLocked()
	s.mu.Unlock()

	return s.reload(ctx, reloadGyms, changed || reloadBranches)
}

// SelectBranch replaces both identifiers at once.
func (s *State) SelectBranch(ctx context.Context, gymSlug, branchSlug string) error {
	s.mu.Lock()
	gymChanged := s.gymSlug != gymSlug
	s.gymSlug = gymSlug
	s.branchSlug = branchSlug
	s.sink.SetBranch(gymSlug, branchSlug)
	reloadGyms, reloadBranches := s.staleLocked()
	s.mu.Unlock()

	metrics.RecordBranchSelection(gymSlug, branchSlug)

	return s.reload(ctx, reloadGyms, gymChanged || reloadBranches)
}

// staleLocked reports which lists never loaded or are left over from a
// failed load. Callers hold s.mu.
func (s *State) staleLocked() (gyms, branches bool) {
	return len(s.gyms) == 0 || s.err != nil, len(s.branches) == 0 || s.err != nil
}

func (s *State) reload(ctx context.Context, gyms, branches bool) error {
	var gymsErr error
	if gyms {
		gymsErr = s.RefreshGyms(ctx)
	}
	if branches {
		if err := s.RefreshBranches(ctx); err != nil {
			return err
		}
	}
	return gymsErr
}

func (s *State) RefreshGyms(ctx context.Context) error {
	s.beginLoad()
	gyms, err := s.directory.GetGyms(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading--

	if err != nil {
		logger.Error("Failed to load gyms", "error", err)
		s.err = err
		return err
	}

	s.gyms = gyms
	s.err = nil
	if s.gymSlug == "" && len(gyms) > 0 {
		s.gymSlug = gyms[0].Slug
		s.sink.SetBranch(s.gymSlug, s.branchSlug)
	}
	return nil
}

func (s *State) RefreshBranches(ctx context.Context) error {
	s.beginLoad()
	s.mu.RLock()
	gymSlug := s.gymSlug
	s.mu.RUnlock()

	branches, err := s.directory.GetBranches(ctx, gymSlug)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading--

	if err != nil {
		logger.Error("Failed to load branches", "gym", gymSlug, "error", err)
		s.err = err
		return err
	}
	if s.gymSlug != gymSlug {
		// the gym changed while loading; its own refresh will land
		return nil
	}

	s.branches = branches
	s.err = nil
	if s.branchSlug == "" && len(branches) > 0 {
		s.branchSlug = branches[0].Slug
		s.sink.SetBranch(s.gymSlug, s.branchSlug)
	}
	return nil
}

func (s *State) beginLoad() {
	s.mu.Lock()
	s.loading++
	s.mu.Unlock()
}

// CurrentBranch looks the selected branch up in the loaded list.
func (s *State) CurrentBranch() (gym.Branch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.branches {
		if b.Slug == s.branchSlug && (b.GymSlug == "" || b.GymSlug == s.gymSlug) {
			return b, true
		}
	}
	return gym.Branch{}, false
}

func (s *State) CurrentGym() (gym.Gym, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.gyms {
		if g.Slug == s.gymSlug {
			return g, true
		}
	}
	return gym.Gym{}, false
}

func (s *State) SelectedGym() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gymSlug
}

func (s *State) SelectedBranch() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.branchSlug
}

func (s *State) Gyms() []gym.Gym {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]gym.Gym{}, s.gyms...)
}

func (s *State) Branches() []gym.Branch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]gym.Branch{}, s.branches...)
}

func (s *State) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading > 0
}

// Err is the error of the most recent failed load, nil after a success.
func (s *State) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}
