// Package userdata resolves the filesystem locations the launcher reads and
// writes: the global Claude skills directory, the installed-plugins manifest,
// and the per-user usage record file. Home and working directory lookups go
// through a Provider so tests can point everything at a synthetic root.
package userdata
