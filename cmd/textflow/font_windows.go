package main

import (
	"fmt"

	"github.com/rjkroege/textflow/draw"
)

func openFont(name string) (draw.Font, error) {
	return nil, fmt.Errorf("plan9 fonts are not supported on windows")
}
