package main

import (
	"fmt"
	"strings"

	// Packages
	env "github.com/zentiph/catbot/pkg/env"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type EnvCmd struct {
	Init  EnvInitCmd  `cmd:"" help:"Create a fresh .env skeleton"`
	Check EnvCheckCmd `cmd:"" help:"Check the .env file for missing fields"`
}

type EnvInitCmd struct{}

type EnvCheckCmd struct {
	Patch bool `name:"patch" help:"Append placeholders for missing fields"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *EnvInitCmd) Run(g *Globals) error {
	if err := env.Generate(g.EnvFile); err != nil {
		return err
	}
	fmt.Printf("Wrote %s; fill in the placeholder values before running the bot\n", g.EnvFile)
	return nil
}

func (cmd *EnvCheckCmd) Run(g *Globals) error {
	e, err := env.Load(g.EnvFile)
	if err != nil {
		return err
	}

	missing := e.Missing()
	if len(missing) == 0 {
		fmt.Printf("%s has all expected fields\n", g.EnvFile)
		return nil
	}

	fmt.Printf("%s is missing: %s\n", g.EnvFile, strings.Join(missing, ", "))
	if cmd.Patch {
		if err := env.Patch(g.EnvFile, e); err != nil {
			return err
		}
		fmt.Println("Appended placeholders for the missing fields")
	}
	return nil
}
