//go:build !windows
// +build !windows

package main

import (
	"fmt"
	"log"

	"github.com/rjkroege/textflow/draw"
)

func openFont(name string) (draw.Font, error) {
	if name == "" {
		return nil, fmt.Errorf("no font: set -font or $font")
	}
	errch := make(chan error, 1)
	go func() {
		for err := range errch {
			log.Printf("draw: %v", err)
		}
	}()
	return draw.OpenFont(errch, name)
}
