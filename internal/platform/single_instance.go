package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another Pomodoro window already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	minLockPort = 20000
	maxLockPort = 39999
)

// InstanceGuard keeps a localhost listener open for the lifetime of the process.
type InstanceGuard struct {
	listener net.Listener
}

// AcquireSingleInstance binds the lock port derived from appName. A second
// caller with the same name gets ErrAlreadyRunning until Release.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	if appName == "" {
		return nil, fmt.Errorf("acquire single instance: app name is empty")
	}
	listener, err := net.Listen("tcp", LockAddress(appName))
	if err != nil {
		return nil, fmt.Errorf("acquire single instance %s: %w", appName, ErrAlreadyRunning)
	}
	return &InstanceGuard{listener: listener}, nil
}

// Release frees the lock. It is safe to call on a nil guard and more than once.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	err := guard.listener.Close()
	guard.listener = nil
	return err
}

// LockAddress returns the loopback address used as the lock for appName.
func LockAddress(appName string) string {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	span := uint32(maxLockPort - minLockPort + 1)
	return fmt.Sprintf("127.0.0.1:%d", minLockPort+int(hash.Sum32()%span))
}
