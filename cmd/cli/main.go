package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gojoins/adapters/memory"
	"gojoins/app"
	"gojoins/domain/joins"
	"gojoins/domain/sample"
	"gojoins/internal/render"
)

func main() {
	seq := flag.String("seq", "", "comma-separated symbol sequence to test")
	file := flag.String("file", "", "CSV or Excel file to import and sweep")
	tails := flag.Int("tails", 2, "1 or 2 tailed p-value")
	noCorrection := flag.Bool("no-correction", false, "disable the continuity correction")
	precision := flag.Int("precision", 0, "decimal places for reported z and p (0 = unrounded)")
	flag.Parse()

	cfg := joins.TestConfig{
		Tails:        *tails,
		NoCorrection: *noCorrection,
		Precision:    *precision,
	}

	switch {
	case *seq != "":
		runSequence(*seq, cfg)
	case *file != "":
		runFile(*file, cfg)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runSequence(raw string, cfg joins.TestConfig) {
	for _, part := range strings.Split(raw, ",") {
		cfg.Sequence = append(cfg.Sequence, joins.Symbol(strings.TrimSpace(part)))
	}

	result, err := joins.Run(cfg)
	if err != nil {
		log.Fatalf("joins test failed: %v", err)
	}
	fmt.Print(render.Text("", result))
}

func runFile(path string, cfg joins.TestConfig) {
	ctx := context.Background()
	store := memory.NewSampleStore()
	service := app.NewJoinsService(store, nil)

	imported, err := service.ImportFile(ctx, path, sample.DichotomizeConfig{})
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}
	log.Printf("Imported %d samples from %s", len(imported), path)

	for _, smp := range imported {
		c := cfg
		c.Sequence = smp.Symbols
		result, err := joins.Run(c)
		if err != nil {
			log.Printf("sample %q: %v", smp.Name, err)
			continue
		}
		fmt.Print(render.Text(smp.Name, result))
		fmt.Println()
	}
}
