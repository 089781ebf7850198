package main

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/TelephoneTan/GoFuture/async/future"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var log *zap.SugaredLogger

var rootCmd = &cobra.Command{
	Use:   "future-demo",
	Short: "Share one simulated fetch between several combinator chains",
	RunE:  run,
}

func init() {
	flags := rootCmd.Flags()
	flags.String("config", "", "yaml config file path")
	flags.Duration("delay", 100*time.Millisecond, "simulated fetch latency")
	flags.Int("consumers", 3, "number of chains sharing the fetch")
	flags.Bool("fail", false, "make the fetch fail")
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "initialize logger failed: %s", err)
		os.Exit(1)
	}
	log = logger.Sugar()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Memoise makes every consumer share a single producer run; without it
	// each Fork below would start its own fetch.
	fetch := future.Memoise(simulatedFetch(conf))

	var wg sync.WaitGroup
	wg.Add(conf.Consumers)
	for i := 0; i < conf.Consumers; i++ {
		i := i
		chain := future.Fold(
			future.Map(fetch, strings.ToUpper),
			func(err error) string { return "fallback: " + err.Error() },
			func(payload string) string { return payload },
		)
		chain.Fork(func(error) {
			// unreachable, Fold collapses both channels into success
		}, func(result string) {
			log.Infow("consumer settled", "consumer", i, "result", result)
			wg.Done()
		})
	}
	wg.Wait()
	return nil
}

func simulatedFetch(conf *Config) future.Future[error, string] {
	return future.New(func(reject func(error), resolve func(string)) {
		log.Infow("fetch started", "delay", conf.Delay)
		time.AfterFunc(conf.Delay, func() {
			if conf.Fail {
				reject(fmt.Errorf("fetch failed after %s", conf.Delay))
				return
			}
			resolve("payload fetched at " + time.Now().Format(time.RFC3339))
		})
	})
}
