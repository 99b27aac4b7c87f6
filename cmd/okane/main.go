package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"okane/internal/chart"
	"okane/internal/cli"
	"okane/internal/config"
	"okane/internal/core"
	"okane/internal/log"
	"okane/internal/report"
	"okane/internal/services"
	"okane/internal/storage"
)

func main() {
	logger, cfg := cli.Init()

	var (
		forecastMonths = flag.Int("forecast", 0, "forecast the balance N months ahead")
		checkAmount    = flag.String("check", "", "check whether an expense of this amount is affordable")
		dateFlag       = flag.String("date", "", "reference date YYYY-MM-DD (default: today)")
		danger         = flag.Bool("danger", false, "scan for dates where the balance falls to the danger threshold")
		threshold      = flag.Int64("threshold", cfg.DangerThreshold, "danger threshold in yen")
		large          = flag.Int64("large", cfg.LargeThreshold, "large transaction threshold in yen")
		horizon        = flag.Int("horizon", cfg.CheckHorizonMonths, "months ahead covered by an affordability check")
		compress       = flag.Bool("compress", false, "compress old months into monthly summaries")
		keepMonths     = flag.Int("keep-months", cfg.KeepMonths, "months of detail to keep when compressing")
		output         = flag.String("o", "", "output path for -compress, -chart and -interactive")
		chartPNG       = flag.Bool("chart", false, "render the balance trajectory as a PNG")
		interactive    = flag.Bool("interactive", false, "render the balance trajectory as interactive HTML")
		chartMonths    = flag.Int("chart-months", cfg.ChartMonths, "months ahead shown on charts")
		openAfter      = flag.Bool("open", false, "open the generated chart")
	)
	flag.BoolVar(interactive, "i", *interactive, "shorthand for -interactive")
	flag.Parse()

	path := flag.Arg(0)
	if path == "" {
		path = cfg.File
	}
	if path == "" {
		logger.Error("No ledger file given: pass a path or set OKANE_FILE")
		os.Exit(1)
	}

	refDate, err := resolveRefDate(*dateFlag)
	if err != nil {
		logger.Error("Unparseable reference date", log.FieldError, err, log.FieldDate, *dateFlag)
		os.Exit(1)
	}

	repo, doc := cli.OpenLedger(logger, path)
	ledger := doc.Ledger
	engineLog := logger.WithComponent(log.ComponentEngine)

	switch {
	case *compress:
		runCompress(engineLog, repo, doc, *keepMonths, refDate, *output)

	case *forecastMonths != 0:
		entries, err := services.Forecast(ledger, refDate, *forecastMonths, *large)
		if err != nil {
			engineLog.Error("Forecast failed", log.FieldError, err, log.FieldOperation, log.OpForecast)
			os.Exit(1)
		}
		fmt.Print(report.RenderForecast(entries))

	case *checkAmount != "":
		amount, err := core.ParseYen(*checkAmount)
		if err != nil {
			engineLog.Error("Unparseable check amount", log.FieldError, err, log.FieldAmount, *checkAmount)
			os.Exit(1)
		}
		result, err := services.Check(ledger, amount, refDate, *horizon)
		if err != nil {
			engineLog.Error("Affordability check failed", log.FieldError, err, log.FieldOperation, log.OpCheck)
			os.Exit(1)
		}
		engineLog.Debug("Affordability check",
			log.FieldAmount, amount,
			log.FieldDate, refDate.String(),
			log.FieldStatus, string(result.Status))
		fmt.Print(report.RenderCheck(result))

	case *danger:
		fmt.Print(report.RenderDanger(services.ScanDanger(ledger, *threshold, refDate)))

	case *chartPNG:
		runChart(logger, ledger, cfg, refDate, *chartMonths, *output, *openAfter, false)

	case *interactive:
		runChart(logger, ledger, cfg, refDate, *chartMonths, *output, *openAfter, true)

	default:
		// forecast plus danger scan, over the same ledger in parallel
		var (
			entries []core.ForecastEntry
			points  []core.DangerPoint
		)
		var g errgroup.Group
		g.Go(func() error {
			var err error
			entries, err = services.Forecast(ledger, refDate, cfg.ForecastMonths, *large)
			return err
		})
		g.Go(func() error {
			points = services.ScanDanger(ledger, *threshold, refDate)
			return nil
		})
		if err := g.Wait(); err != nil {
			engineLog.Error("Analysis failed", log.FieldError, err)
			os.Exit(1)
		}
		fmt.Print(report.RenderForecast(entries))
		fmt.Print(report.RenderDanger(points))
	}
}

// resolveRefDate parses the -date flag, falling back to today. The wall
// clock is read here once; the engine only ever sees explicit dates.
func resolveRefDate(s string) (core.Date, error) {
	if s == "" {
		now := time.Now()
		return core.NewDate(now.Year(), int(now.Month()), now.Day()), nil
	}
	return core.ParseDate(s)
}

func runCompress(logger *log.Logger, repo *storage.FileRepository, doc storage.Document, keepMonths int, refDate core.Date, output string) {
	compressed, err := services.Compress(doc.Ledger, keepMonths, refDate)
	if err != nil {
		logger.Error("Compression failed", log.FieldError, err, log.FieldOperation, log.OpCompress)
		os.Exit(1)
	}

	if output == "" {
		output = compressedPath(repo.Path())
	}
	out := storage.NewFileRepository(output, logger)
	if err := out.Save(storage.Document{
		Ledger:       compressed,
		Compressed:   true,
		CompressedAt: time.Now(),
	}); err != nil {
		logger.Error("Failed to save compressed ledger", log.FieldError, err, log.FieldOutput, output)
		os.Exit(1)
	}
	fmt.Print(report.RenderCompressSummary(len(doc.Ledger.Transactions), len(compressed.Transactions), output))
}

func compressedPath(path string) string {
	if strings.HasSuffix(path, ".json") {
		return strings.TrimSuffix(path, ".json") + "-compressed.json"
	}
	return path + "-compressed.json"
}

func runChart(logger *log.Logger, ledger core.Ledger, cfg *config.Config, refDate core.Date, months int, output string, openAfter, interactive bool) {
	chartLog := logger.WithComponent(log.ComponentChart)
	if len(ledger.Transactions) == 0 {
		chartLog.Error("No transactions to chart")
		os.Exit(1)
	}

	from := ledger.Transactions[0].Date
	to := refDate.AddMonths(months)
	series := services.DailySeries(ledger, from, to)
	markers := services.LargeMarkers(ledger, from, to, cfg.MarkerThreshold)

	ext := ".png"
	if interactive {
		ext = ".html"
	}
	if output == "" {
		output = fmt.Sprintf("okane-chart-%s%s", time.Now().Format("20060102-150405"), ext)
	}

	f, err := os.Create(output)
	if err != nil {
		chartLog.Error("Failed to create chart file", log.FieldError, err, log.FieldOutput, output)
		os.Exit(1)
	}
	if interactive {
		err = chart.RenderHTML(f, series, markers, refDate)
	} else {
		err = chart.RenderPNG(f, series, markers, refDate)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		chartLog.Error("Chart rendering failed", log.FieldError, err, log.FieldOperation, log.OpRender)
		os.Exit(1)
	}
	chartLog.Info("Chart saved", log.FieldOutput, output)

	if openAfter {
		if err := chart.OpenInBrowser(output); err != nil {
			chartLog.Warn("Could not open chart", log.FieldError, err)
		}
	}
}
