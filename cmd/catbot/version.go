package main

import (
	"fmt"

	// Packages
	info "github.com/zentiph/catbot/pkg/info"
)

type VersionCmd struct{}

func (cmd *VersionCmd) Run(g *Globals) error {
	fmt.Println(string(info.JSON(execName())))
	return nil
}
