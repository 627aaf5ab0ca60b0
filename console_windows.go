package main

import (
	"log"
	"os"
	"syscall"
)

var procAttachConsole = syscall.NewLazyDLL("kernel32.dll").NewProc("AttachConsole")

// init reattaches the parent console so log output from the GUI build is
// visible when it is started from a terminal.
func init() {
	const parentProcess = ^uint32(0)
	r1, _, err := syscall.SyscallN(procAttachConsole.Addr(), uintptr(parentProcess))
	if r1 == 0 {
		if err != syscall.Errno(0) {
			log.Printf("attach console: %v", err)
		}
		return
	}
	for _, std := range []struct {
		handle int
		name   string
		dst    **os.File
	}{
		{syscall.STD_OUTPUT_HANDLE, "/dev/stdout", &os.Stdout},
		{syscall.STD_ERROR_HANDLE, "/dev/stderr", &os.Stderr},
	} {
		h, err := syscall.GetStdHandle(std.handle)
		if err != nil {
			log.Printf("%s: %v", std.name, err)
			continue
		}
		*std.dst = os.NewFile(uintptr(h), std.name)
	}
	log.SetOutput(os.Stderr)
}
