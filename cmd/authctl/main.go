package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/authkeeper/internal/app"
	"github.com/dmitrijs2005/authkeeper/internal/config"
)

func main() {
	cmd, err := app.ParseCommand(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx := context.Background()
	cfg := config.LoadConfig()

	a, err := app.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	err = a.Run(ctx, cmd)
	a.Close()
	if err != nil {
		os.Exit(1)
	}
}
