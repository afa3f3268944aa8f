package util

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
)

const TempSuffix = "_tmp"

// SetupInterruptHandler cancels the download on SIGINT/SIGTERM, removes
// half-written chapter folders and exits. The returned func detaches the
// handler once the download finished normally.
func SetupInterruptHandler(outputDir string, cancel context.CancelFunc) (stop func()) {
	sig := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sig:
		case <-done:
			return
		}

		fmt.Fprintln(os.Stderr, "\nInterrupt received. Cleaning up...")
		cancel()

		CleanupUnfinishedTempFolders(outputDir)
		RemoveIfEmpty(outputDir)
		fmt.Fprintln(os.Stderr, "Exiting due to interrupt.")

		os.Exit(1)
	}()

	return func() {
		signal.Stop(sig)
		close(done)
	}
}

// CleanupUnfinishedTempFolders removes every "<name>_tmp" directory in
// outputDir and returns how many were removed.
func CleanupUnfinishedTempFolders(outputDir string) int {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return 0
	}

	removed := 0
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() || !strings.HasSuffix(name, TempSuffix) {
			continue
		}

		full := filepath.Join(outputDir, name)
		if err := os.RemoveAll(full); err != nil {
			fmt.Fprintf(os.Stderr, "Error cleaning up %s: %v\n", full, err)
			continue
		}

		removed++
	}

	return removed
}

func RemoveIfEmpty(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) > 0 {
		return false
	}

	return os.Remove(dir) == nil
}

func CleanupFolder(folder string) {
	_ = os.RemoveAll(folder)
}
