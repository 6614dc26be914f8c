package system

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/presently-app/presently/internal/cli"
	"github.com/presently-app/presently/internal/constants"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: storage round trip
	if err := checkStorage(ctx); err != nil {
		fmt.Printf("❌ Storage round trip: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage round trip: OK\n")
	}

	// Check 2: store load errors
	if err := checkStoreErrors(ctx); err != nil {
		fmt.Printf("❌ Store state: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Store state: OK\n")
	}

	// Check 3: concurrent writers (warning only)
	if err := checkOtherInstances(); err != nil {
		fmt.Printf("⚠ Single instance: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single instance: OK\n")
	}

	// Check 4: clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed")
	return nil
}

func checkStorage(ctx *cli.Context) error {
	c := context.Background()
	key := "presently-doctor-probe"
	if err := ctx.App.KV.Set(c, key, "ok"); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}
	value, ok, err := ctx.App.KV.Get(c, key)
	if err != nil {
		return fmt.Errorf("read failed: %w", err)
	}
	if !ok || value != "ok" {
		return fmt.Errorf("read back %q, want %q", value, "ok")
	}
	return ctx.App.KV.Remove(c, key)
}

func checkStoreErrors(ctx *cli.Context) error {
	if err := ctx.App.People.Err(); err != nil {
		return fmt.Errorf("people store: %w", err)
	}
	if err := ctx.App.Gifts.Err(); err != nil {
		return fmt.Errorf("gift store: %w", err)
	}
	if err := ctx.App.Occasions.Err(); err != nil {
		return fmt.Errorf("occasion store: %w", err)
	}
	if err := ctx.App.Settings.Err(); err != nil {
		return fmt.Errorf("settings store: %w", err)
	}
	return nil
}

// checkOtherInstances looks for another running copy of the binary. The
// stores assume a single writer per data directory.
func checkOtherInstances() error {
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("could not enumerate processes: %w", err)
	}

	self := os.Getpid()
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		if strings.HasPrefix(p.Executable(), constants.AppName) {
			return fmt.Errorf("another %s process is running (PID %d); concurrent writes can lose data", constants.AppName, p.Pid())
		}
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock reads %s, which looks wrong", now.Format(time.RFC3339))
	}
	return nil
}
