package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "texview",
		Short: "Inspect 2D textures with pan and zoom",
	}

	rootCmd.AddCommand(NewViewCmd())
	rootCmd.AddCommand(NewReplayCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
