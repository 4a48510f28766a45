package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/automoto/scrollfx/motion"
)

var (
	// global flags
	presetName string
	reduced    bool
	easeName   string
)

var rootCmd = &cobra.Command{
	Use:   "motion-scrub",
	Short: "scrub motion timelines in the terminal",
	Long: `motion-scrub builds one of the page animations on a headless engine and lets you
scrub, play and reverse it while watching every animated property.`,
	RunE:          runScrub,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list the available presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range presetNames() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", name, builders[name].about)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&presetName, "preset", "p", "stagger", "preset to load ("+strings.Join(presetNames(), ", ")+")")
	rootCmd.PersistentFlags().BoolVarP(&reduced, "reduced-motion", "r", false, "build the preset with reduced motion")
	rootCmd.PersistentFlags().StringVarP(&easeName, "ease", "e", "", "default ease for tweens that name none")
	rootCmd.AddCommand(listCmd)
}

func presetNames() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func runScrub(cmd *cobra.Command, args []string) error {
	b, ok := builders[presetName]
	if !ok {
		return fmt.Errorf("unknown preset %q (try: %s)", presetName, strings.Join(presetNames(), ", "))
	}

	opts := []motion.Option{motion.WithReducedMotion(reduced)}
	if easeName != "" {
		opts = append(opts, motion.WithDefaultEase(easeName))
	}
	e := motion.NewEngine(opts...)

	sc, err := b.build(e)
	if err != nil {
		return fmt.Errorf("failed to build %s: %w", presetName, err)
	}

	p := tea.NewProgram(newModel(presetName, e, sc), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running bubble tea: %w", err)
	}
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
