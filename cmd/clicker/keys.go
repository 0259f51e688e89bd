package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-clicker/internal/config"
	"github.com/vovakirdan/tui-clicker/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the key bindings",
	Long:  `Shows the key bindings in effect after loading the clicker config.`,
	RunE:  runKeys,
}

func runKeys(_ *cobra.Command, _ []string) error {
	clicker, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	keys := tui.NewKeyMap(clicker.Keys)
	bindings := keys.ShortHelp()

	// Calculate column widths
	maxKeyLen := 3 // "Key" header
	for _, b := range bindings {
		if l := len(b.Help().Key); l > maxKeyLen {
			maxKeyLen = l
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxKeyLen, "Key", "Action")
	fmt.Printf("  %-*s  %s\n", maxKeyLen, "---", "------")

	for _, b := range bindings {
		fmt.Printf("  %-*s  %s\n", maxKeyLen, b.Help().Key, b.Help().Desc)
	}

	fmt.Println()
	fmt.Println("A click counts when the press key is followed by the release key.")
	return nil
}
