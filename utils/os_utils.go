package utils

import (
	"os"
	"os/signal"
	"syscall"
)

// WaitTerminate returns a channel that receives on SIGINT, SIGTERM or
// SIGQUIT.
func WaitTerminate() <-chan os.Signal {
	c := make(chan os.Signal, 3)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	return c
}

// RedirectFile points the from descriptor at to's file (dup2).
func RedirectFile(from, to *os.File) {
	if err := syscall.Dup2(int(to.Fd()), int(from.Fd())); err != nil {
		LogFatal("failed to redirect fd %v: %v", from.Fd(), err)
	}
}
