// Command kanji2hanzi converts Japanese Kanji to Traditional or Simplified
// Chinese characters, or Chinese characters back to Japanese Kanji.
//
// Text given as arguments is converted and printed; without arguments stdin is
// converted to stdout.
//
// Flags:
//
//	--config     path to YAML config file (default: environment only)
//	--table      path to the kanji mapping table
//	--kanji-list path to the standard kanji list
//	--to         traditional, simplified or japanese
//	--policy     duplicate row policy: last, first or merge
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/transform"

	"github.com/siongui/gokanjihanzi"
	"github.com/siongui/gokanjihanzi/internal/config"
	"github.com/siongui/gokanjihanzi/internal/logging"
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file")
	tableFlag := flag.String("table", "", "path to the kanji mapping table")
	listFlag := flag.String("kanji-list", "", "path to the standard kanji list")
	targetFlag := flag.String("to", "", "traditional, simplified or japanese")
	policyFlag := flag.String("policy", "", "duplicate row policy: last, first or merge")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// CLI flags override config.
	if *tableFlag != "" {
		cfg.TablePath = *tableFlag
	}
	if *listFlag != "" {
		cfg.KanjiListPath = *listFlag
	}
	if *targetFlag != "" {
		cfg.Target = *targetFlag
	}
	if *policyFlag != "" {
		cfg.DuplicatePolicy = *policyFlag
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, flag.Args(), os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("conversion failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, args []string, in io.Reader, out io.Writer, logger *zap.Logger) error {
	target, err := gokanjihanzi.ParseTarget(cfg.Target)
	if err != nil {
		return err
	}
	policy, err := gokanjihanzi.ParseDuplicatePolicy(cfg.DuplicatePolicy)
	if err != nil {
		return err
	}

	table, err := loadTable(cfg, policy, logger)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		_, err := fmt.Fprintln(out, table.Convert(strings.Join(args, " "), target))
		return err
	}

	w := bufio.NewWriter(out)
	if _, err := io.Copy(w, transform.NewReader(in, table.Transformer(target))); err != nil {
		return fmt.Errorf("convert stdin: %w", err)
	}
	return w.Flush()
}

func loadTable(cfg *config.Config, policy gokanjihanzi.DuplicatePolicy, logger *zap.Logger) (*gokanjihanzi.Table, error) {
	tableFile, err := os.Open(cfg.TablePath)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer tableFile.Close()

	listFile, err := os.Open(cfg.KanjiListPath)
	if err != nil {
		return nil, fmt.Errorf("open kanji list: %w", err)
	}
	defer listFile.Close()

	table, _, err := gokanjihanzi.Load(tableFile, listFile,
		gokanjihanzi.WithFormat(cfg.TableFormat()),
		gokanjihanzi.WithPolicy(policy),
		gokanjihanzi.WithLogger(logger.With(zap.String("table_path", cfg.TablePath))),
	)
	return table, err
}
