package main

import (
	"flag"
	"fmt"
	"os"

	"okane/internal/cli"
	"okane/internal/core"
	"okane/internal/log"
	"okane/internal/report"
	"okane/internal/services"
	"okane/internal/storage"
)

func main() {
	logger, cfg := cli.Init()

	var (
		list     = flag.Bool("list", false, "list transactions")
		add      = flag.Bool("add", false, "add a transaction (needs -date, -type, -amount, -desc)")
		editID   = flag.String("edit", "", "edit the transaction with this id")
		deleteID = flag.String("delete", "", "delete the transaction with this id")
		search   = flag.String("search", "", "search transactions by description keyword")

		dateFlag = flag.String("date", "", "transaction date YYYY-MM-DD")
		kindFlag = flag.String("type", "", "transaction type: income or expense")
		amount   = flag.String("amount", "", "transaction amount in yen")
		desc     = flag.String("desc", "", "transaction description")

		month    = flag.String("month", "", "filter: calendar month YYYY-MM")
		fromFlag = flag.String("from", "", "filter: earliest date YYYY-MM-DD")
		toFlag   = flag.String("to", "", "filter: latest date YYYY-MM-DD")
		minFlag  = flag.String("min", "", "filter: minimum amount")
		maxFlag  = flag.String("max", "", "filter: maximum amount")
		limit    = flag.Int("limit", 50, "maximum rows to list")

		output = flag.String("o", "", "output path (default: the input file)")
	)
	flag.Parse()
	setFlags := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })

	path := flag.Arg(0)
	if path == "" {
		path = cfg.File
	}
	if path == "" {
		logger.Error("No ledger file given: pass a path or set OKANE_FILE")
		os.Exit(1)
	}

	repo, doc := cli.OpenLedger(logger, path)
	editLog := logger.WithComponent(log.ComponentEditor)

	switch {
	case *add:
		if *dateFlag == "" || *kindFlag == "" || *amount == "" || *desc == "" {
			editLog.Error("-add needs -date, -type, -amount and -desc")
			os.Exit(1)
		}
		date := mustDate(editLog, *dateFlag)
		yen := mustYen(editLog, *amount)
		updated, tx, err := services.AddTransaction(doc.Ledger, date, core.Kind(*kindFlag), yen, *desc)
		if err != nil {
			editLog.Error("Failed to add transaction", log.FieldError, err)
			os.Exit(1)
		}
		saveAndPrint(editLog, repo, doc, updated, *output, "追加", tx)

	case *editID != "":
		update, touched := buildUpdate(editLog, *dateFlag, *kindFlag, *amount, *desc, setFlags["desc"])
		if !touched {
			editLog.Error("-edit needs at least one of -date, -type, -amount, -desc")
			os.Exit(1)
		}
		updated, tx, err := services.EditTransaction(doc.Ledger, *editID, update)
		if err != nil {
			editLog.Error("Failed to edit transaction", log.FieldError, err, log.FieldID, *editID)
			os.Exit(1)
		}
		saveAndPrint(editLog, repo, doc, updated, *output, "編集", tx)

	case *deleteID != "":
		updated, tx, err := services.DeleteTransaction(doc.Ledger, *deleteID)
		if err != nil {
			editLog.Error("Failed to delete transaction", log.FieldError, err, log.FieldID, *deleteID)
			os.Exit(1)
		}
		saveAndPrint(editLog, repo, doc, updated, *output, "削除", tx)

	case *search != "":
		filter := buildFilter(editLog, *search, *kindFlag, *fromFlag, *toFlag, *minFlag, *maxFlag)
		txs := clip(services.SearchTransactions(doc.Ledger, filter), *limit)
		fmt.Print(report.RenderTransactions(txs))

	case *list:
		listMode(editLog, doc.Ledger, *month, *kindFlag, *fromFlag, *toFlag, *minFlag, *maxFlag, *limit)

	default:
		listMode(editLog, doc.Ledger, *month, *kindFlag, *fromFlag, *toFlag, *minFlag, *maxFlag, *limit)
	}
}

func listMode(logger *log.Logger, ledger core.Ledger, month, kind, from, to, min, max string, limit int) {
	var txs []core.Transaction
	if month != "" {
		txs = services.ListTransactions(ledger, month)
	} else {
		filter := buildFilter(logger, "", kind, from, to, min, max)
		txs = services.SearchTransactions(ledger, filter)
	}
	fmt.Print(report.RenderTransactions(clip(txs, limit)))
	fmt.Print(report.RenderSummary(services.Summarize(ledger)))
}

func mustDate(logger *log.Logger, s string) core.Date {
	d, err := core.ParseDate(s)
	if err != nil {
		logger.Error("Unparseable date", log.FieldError, err, log.FieldDate, s)
		os.Exit(1)
	}
	return d
}

func mustYen(logger *log.Logger, s string) int64 {
	v, err := core.ParseYen(s)
	if err != nil {
		logger.Error("Unparseable amount", log.FieldError, err, log.FieldAmount, s)
		os.Exit(1)
	}
	return v
}

// buildUpdate collects the fields an edit should change. Description honors
// flag presence rather than emptiness so `-desc ""` clears it.
func buildUpdate(logger *log.Logger, date, kind, amount, desc string, descSet bool) (services.TransactionUpdate, bool) {
	var update services.TransactionUpdate
	touched := false
	if date != "" {
		d := mustDate(logger, date)
		update.Date, touched = &d, true
	}
	if kind != "" {
		k := core.Kind(kind)
		update.Kind, touched = &k, true
	}
	if amount != "" {
		v := mustYen(logger, amount)
		update.Amount, touched = &v, true
	}
	if descSet {
		update.Description, touched = &desc, true
	}
	return update, touched
}

func buildFilter(logger *log.Logger, keyword, kind, from, to, min, max string) services.SearchFilter {
	filter := services.SearchFilter{Keyword: keyword, Kind: core.Kind(kind)}
	if from != "" {
		filter.From = mustDate(logger, from)
	}
	if to != "" {
		filter.To = mustDate(logger, to)
	}
	if min != "" {
		v := mustYen(logger, min)
		filter.MinAmount = &v
	}
	if max != "" {
		v := mustYen(logger, max)
		filter.MaxAmount = &v
	}
	return filter
}

func clip(txs []core.Transaction, limit int) []core.Transaction {
	if limit > 0 && len(txs) > limit {
		return txs[:limit]
	}
	return txs
}

func saveAndPrint(logger *log.Logger, repo *storage.FileRepository, doc storage.Document, updated core.Ledger, output, verb string, tx core.Transaction) {
	doc.Ledger = updated
	out := repo
	if output != "" {
		out = storage.NewFileRepository(output, logger)
	}
	if err := out.Save(doc); err != nil {
		logger.Error("Failed to save ledger", log.FieldError, err, log.FieldOutput, out.Path())
		os.Exit(1)
	}
	fmt.Print(report.RenderTransactionDetail(verb, tx, out.Path()))
}
