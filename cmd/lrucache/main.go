package main

import (
	"fmt"
	"log"
	"os"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/spf13/cobra"

	"lrucache/internal/cache"
)

var rootCmd = &cobra.Command{
	Use:   "lrucache",
	Short: "Demo driver for the LRU cache engine",
	Long: `lrucache exercises the in-process LRU cache engine.
The demo subcommand walks through eviction step by step; the exercise
subcommand runs a randomized workload and reports hit/eviction stats.`,
}

func init() {
	rootCmd.AddCommand(
		demoCmd(),
		exerciseCmd(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// demoCmd walks through the classic capacity-2 eviction sequence.
func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Scripted walk-through of promotion and eviction",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := cache.New[string, string](2)
			if err != nil {
				return fmt.Errorf("construct cache: %w", err)
			}

			log.Println("lrucache demo starting (capacity=2)")

			c.Put("a", "A")
			c.Put("b", "B")
			log.Printf("keys after two puts (MRU->LRU): %v", c.Keys())

			// Touch "a" so "b" becomes least-recently-used.
			if v, ok := c.Get("a"); ok {
				log.Printf("GET a = %q (touches a -> MRU)", v)
			}

			// Insert "c" => cache is full and evicts the LRU entry.
			if evicted, ok := c.Put("c", "C"); ok {
				log.Printf("PUT c evicted %q (was LRU)", evicted)
			}
			if _, ok := c.Get("b"); !ok {
				log.Println("GET b: missing (evicted)")
			}
			log.Printf("keys after eviction (MRU->LRU): %v", c.Keys())

			s := c.Stats()
			log.Printf("stats: hits=%d misses=%d evictions=%d size=%d/%d",
				s.Hits, s.Misses, s.Evictions, s.Size, s.Capacity)
			return nil
		},
	}
}

// exerciseCmd hammers the cache with a randomized workload.
func exerciseCmd() *cobra.Command {
	var (
		capacity int
		ops      int
		keySpace int
		seed     uint64
	)

	cmd := &cobra.Command{
		Use:   "exercise",
		Short: "Run a randomized Get/Put workload and print stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := cache.New[string, string](capacity)
			if err != nil {
				return fmt.Errorf("construct cache: %w", err)
			}

			faker := gofakeit.New(seed)
			keys := make([]string, keySpace)
			for i := range keys {
				keys[i] = faker.LetterN(8)
			}

			log.Printf("exercise: capacity=%d ops=%d keySpace=%d seed=%d",
				capacity, ops, keySpace, seed)

			for i := 0; i < ops; i++ {
				key := keys[faker.Number(0, len(keys)-1)]
				if faker.Bool() {
					c.Put(key, faker.Word())
				} else {
					c.Get(key)
				}
			}

			s := c.Stats()
			lookups := s.Hits + s.Misses
			hitRatio := 0.0
			if lookups > 0 {
				hitRatio = float64(s.Hits) / float64(lookups)
			}
			log.Printf("stats: hits=%d misses=%d evictions=%d size=%d/%d hitRatio=%.2f",
				s.Hits, s.Misses, s.Evictions, s.Size, s.Capacity, hitRatio)
			return nil
		},
	}

	cmd.Flags().IntVar(&capacity, "capacity", 128, "cache capacity")
	cmd.Flags().IntVar(&ops, "ops", 100000, "number of random operations")
	cmd.Flags().IntVar(&keySpace, "keys", 512, "number of distinct keys in the workload")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "workload seed (0 = random)")
	return cmd
}
