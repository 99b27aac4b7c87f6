// Package storage reads and writes the ledger file format.
//
// The file is a single JSON document: a format version, an initial balance
// and the transaction array. Parsing is strict: unknown versions and
// malformed fields are rejected at the boundary, never coerced.
package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"okane/internal/core"
	"okane/internal/log"
)

// SupportedVersion is the only ledger file format version this build reads.
const SupportedVersion = "1"

// Document is a loaded ledger file: the ledger itself plus compression
// metadata carried through load/save cycles.
type Document struct {
	Ledger       core.Ledger
	Compressed   bool
	CompressedAt time.Time
}

type ledgerFile struct {
	Version        string              `json:"version"`
	InitialBalance int64               `json:"initialBalance"`
	Compressed     bool                `json:"compressed,omitempty"`
	CompressedAt   string              `json:"compressedAt,omitempty"`
	Transactions   []transactionRecord `json:"transactions"`
}

type transactionRecord struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Amount      *int64 `json:"amount"`
	Description string `json:"description"`
}

// Decode parses and validates a ledger file. It fails with a
// core.VersionError for an unrecognized format version and a
// core.SchemaError naming the offending field for anything malformed.
func Decode(r io.Reader) (Document, error) {
	var raw ledgerFile
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return Document{}, &core.SchemaError{Field: "document", Value: err.Error()}
	}

	if raw.Version != SupportedVersion {
		return Document{}, &core.VersionError{Got: raw.Version}
	}

	txs := make([]core.Transaction, 0, len(raw.Transactions))
	for i, rec := range raw.Transactions {
		tx, err := rec.toTransaction(i)
		if err != nil {
			return Document{}, err
		}
		txs = append(txs, tx)
	}

	doc := Document{
		Ledger:     core.NewLedger(raw.InitialBalance, txs),
		Compressed: raw.Compressed,
	}
	if raw.CompressedAt != "" {
		at, err := time.Parse(time.RFC3339, raw.CompressedAt)
		if err != nil {
			return Document{}, &core.SchemaError{Field: "compressedAt", Value: raw.CompressedAt}
		}
		doc.CompressedAt = at
	}
	return doc, nil
}

func (rec transactionRecord) toTransaction(i int) (core.Transaction, error) {
	field := func(name string) string {
		return fmt.Sprintf("transactions[%d].%s", i, name)
	}
	if rec.ID == "" {
		return core.Transaction{}, &core.SchemaError{Field: field("id")}
	}
	if rec.Date == "" {
		return core.Transaction{}, &core.SchemaError{Field: field("date")}
	}
	date, err := core.ParseDate(rec.Date)
	if err != nil {
		return core.Transaction{}, &core.SchemaError{Field: field("date"), Value: rec.Date}
	}
	if rec.Type == "" {
		return core.Transaction{}, &core.SchemaError{Field: field("type")}
	}
	kind := core.Kind(rec.Type)
	if !kind.Valid() {
		return core.Transaction{}, &core.SchemaError{Field: field("type"), Value: rec.Type}
	}
	if rec.Amount == nil {
		return core.Transaction{}, &core.SchemaError{Field: field("amount")}
	}
	if *rec.Amount < 0 {
		return core.Transaction{}, &core.SchemaError{Field: field("amount"), Value: *rec.Amount}
	}
	return core.Transaction{
		ID:          rec.ID,
		Date:        date,
		Kind:        kind,
		Amount:      core.Money{Yen: *rec.Amount},
		Description: rec.Description,
	}, nil
}

// Encode writes a Document in the same schema Decode reads, 2-space
// indented, with multibyte description text left unescaped.
func Encode(w io.Writer, doc Document) error {
	raw := ledgerFile{
		Version:        SupportedVersion,
		InitialBalance: doc.Ledger.InitialBalance,
		Compressed:     doc.Compressed,
		Transactions:   make([]transactionRecord, 0, len(doc.Ledger.Transactions)),
	}
	if !doc.CompressedAt.IsZero() {
		raw.CompressedAt = doc.CompressedAt.Format(time.RFC3339)
	}
	for _, tx := range doc.Ledger.Transactions {
		amount := tx.Amount.Yen
		raw.Transactions = append(raw.Transactions, transactionRecord{
			ID:          tx.ID,
			Date:        tx.Date.String(),
			Type:        string(tx.Kind),
			Amount:      &amount,
			Description: tx.Description,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(raw)
}

// FileRepository loads and saves one ledger file at a fixed path.
type FileRepository struct {
	path   string
	logger *log.Logger
}

func NewFileRepository(path string, logger *log.Logger) *FileRepository {
	return &FileRepository{
		path:   path,
		logger: logger.WithComponent(log.ComponentStorage),
	}
}

func (r *FileRepository) Path() string {
	return r.path
}

func (r *FileRepository) Load() (Document, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return Document{}, fmt.Errorf("open ledger file: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return Document{}, fmt.Errorf("load %s: %w", r.path, err)
	}
	r.logger.Debug("Ledger loaded",
		log.FieldFile, r.path,
		log.FieldTransactions, len(doc.Ledger.Transactions))
	return doc, nil
}

func (r *FileRepository) Save(doc Document) error {
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("create ledger file: %w", err)
	}
	defer f.Close()

	if err := Encode(f, doc); err != nil {
		return fmt.Errorf("save %s: %w", r.path, err)
	}
	r.logger.Info("Ledger saved",
		log.FieldFile, r.path,
		log.FieldTransactions, len(doc.Ledger.Transactions))
	return nil
}
