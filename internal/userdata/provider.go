package userdata

import "os"

// Provider supplies the environment-dependent inputs used for path
// resolution.
type Provider interface {
	HomeDir() (string, error)
	WorkingDir() (string, error)
	LookupEnv(key string) (string, bool)
}

// OS is the Provider backed by the running process.
type OS struct{}

func (OS) HomeDir() (string, error) { return os.UserHomeDir() }

func (OS) WorkingDir() (string, error) { return os.Getwd() }

func (OS) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

// Static is a fixed Provider, used by tests and by callers that already know
// their roots.
type Static struct {
	Home string
	Dir  string
	Env  map[string]string
}

func (s Static) HomeDir() (string, error) { return s.Home, nil }

func (s Static) WorkingDir() (string, error) { return s.Dir, nil }

func (s Static) LookupEnv(key string) (string, bool) {
	v, ok := s.Env[key]
	return v, ok
}
