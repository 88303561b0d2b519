package cache

// Mutate runs an optimistic local mutation against shared cached state.
//
// snapshot captures the pre-write state, apply installs the optimistic value,
// and commit performs the remote write. If commit fails the snapshot is
// restored verbatim and the commit error is returned; the optimistic value is
// never trusted as final either way, so callers typically invalidate and
// refetch after a successful commit.
//
// The caller is responsible for holding any lock that guards the state
// touched by apply and restore; Mutate itself performs no locking.
func Mutate[S any](snapshot func() S, apply func(), commit func() error, restore func(S)) error {
	prev := snapshot()
	apply()
	if err := commit(); err != nil {
		restore(prev)
		return err
	}
	return nil
}
