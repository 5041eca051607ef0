package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/g-m-twostay/go-dsa/Maps"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// readWords returns the non blank lines of the file, trimmed.
func readWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			words = append(words, w)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return words, nil
}

// load inserts every word, its position as the value, into a new table set up by r.
func load(words []string, r Run, bar *progressbar.ProgressBar) (*Maps.LinearProbe[int], error) {
	h, ok := Maps.HasherByName(r.Hasher)
	if !ok {
		return nil, fmt.Errorf("unknown hasher %q", r.Hasher)
	}
	expected := r.Expected
	if expected == 0 {
		expected = uint(len(words))
	}
	table := Maps.New[int](expected, Maps.WithSize(r.Size), Maps.WithHasher(h))
	for i, w := range words {
		if err := table.Set(w, i); err != nil {
			return nil, fmt.Errorf("failed to insert %q: %w", w, err)
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	return table, nil
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "probestat [flags] FILE...",
		Short: "Print linear probing statistics for word lists",
		Long: `Loads every word of each file, one per line, into linear probing tables and prints
name file conflicts probe_total probe_max rehashes elapsed
for every run of the configuration.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path, _ := cmd.Flags().GetString("config")
			sizes, _ := cmd.Flags().GetUintSlice("size")
			hasher, _ := cmd.Flags().GetString("hasher")
			progress, _ := cmd.Flags().GetBool("progress")

			config, err := LoadConfig(path)
			if err != nil {
				log.Fatalf("Error loading configuration: %v", err)
			}
			if err = config.withFlags(sizes, hasher); err != nil {
				log.Fatalf("Error in flags: %v", err)
			}

			for _, file := range args {
				words, err := readWords(file)
				if err != nil {
					log.Fatalf("Error reading words: %v", err)
				}
				for _, r := range config.Runs {
					var bar *progressbar.ProgressBar
					if progress {
						bar = progressbar.Default(int64(len(words)), r.Name)
					}
					start := time.Now()
					table, err := load(words, r, bar)
					elapsed := time.Since(start)
					if err != nil {
						log.Printf("Run %s on %s failed: %v", r.Name, file, err)
						continue
					}
					s := table.Statistics()
					fmt.Printf("%s\t%s\t%d\t%d\t%d\t%d\t%v\n", r.Name, file, s.Conflicts, s.ProbeTotal, s.ProbeMax, s.Rehashes, elapsed)
				}
			}
		},
	}
	rootCmd.Flags().String("config", "", "yaml file with the runs")
	rootCmd.Flags().UintSlice("size", nil, "table size, one run per value; replaces the configured runs")
	rootCmd.Flags().String("hasher", "polynomial", "hasher of the runs that don't name one: polynomial or xxhash")
	rootCmd.Flags().Bool("progress", false, "show a progress bar while loading")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
