// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package cache

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

// DirLock holds an exclusive advisory flock on a directory. The lock is
// process-exclusive and directory-scoped: whoever holds it owns every
// file underneath.
type DirLock struct {
	path string
	dir  *os.File
}

// NewDirLock creates a lock for the given directory. The directory must
// already exist.
func NewDirLock(path string) *DirLock {
	return &DirLock{path: path}
}

// Lock acquires the lock, blocking until the current holder releases
// it. When the lock is contended a one-time notice is written to stderr
// so a waiting run doesn't look hung. Acquiring an already-held DirLock
// is a usage error, not a reentrant no-op.
func (l *DirLock) Lock() error {
	ok, err := l.TryLock()
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	// Liveness signal, not an error.
	fmt.Fprintf(os.Stderr, "waiting for another hackerlates to release %s ...\n", l.path)

	f, err := os.Open(l.path)
	if err != nil {
		return err
	}

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		f.Close()
		return err
	}

	l.dir = f
	return nil
}

// TryLock attempts to acquire the lock without blocking. It returns
// false when another process holds it.
func (l *DirLock) TryLock() (bool, error) {
	if l.dir != nil {
		return false, errors.New("cache lock already held")
	}

	f, err := os.Open(l.path)
	if err != nil {
		return false, err
	}

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		f.Close()
		if err == syscall.EWOULDBLOCK {
			return false, nil
		}
		return false, err
	}

	l.dir = f
	return true, nil
}

// Unlock releases the lock and closes the directory handle. Unlocking
// an unheld lock is a no-op.
func (l *DirLock) Unlock() error {
	if l.dir == nil {
		return nil
	}

	if err := syscall.Flock(int(l.dir.Fd()), syscall.LOCK_UN); err != nil {
		l.dir.Close()
		l.dir = nil
		return err
	}

	err := l.dir.Close()
	l.dir = nil
	return err
}
