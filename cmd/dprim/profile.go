package main

import (
	"fmt"

	"github.com/pkg/profile"
)

// startProfile starts the named profile in the working directory and returns
// its stop function. An empty mode profiles nothing.
func startProfile(mode string) (func(), error) {
	switch mode {
	case "":
		return func() {}, nil
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop, nil
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop, nil
	default:
		return nil, fmt.Errorf("unknown profile %q (want cpu or mem)", mode)
	}
}
