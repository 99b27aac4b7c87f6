package storage

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"okane/internal/core"
	"okane/internal/log"
)

const sampleFile = `{
  "version": "1",
  "initialBalance": 1000000,
  "transactions": [
    {"id": "b", "date": "2026-02-05", "type": "income", "amount": 300000, "description": "給料"},
    {"id": "a", "date": "2026-01-10", "type": "expense", "amount": 200000, "description": "家賃"}
  ]
}`

func TestDecode(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleFile))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Ledger.InitialBalance != 1000000 {
		t.Fatalf("initial balance = %d", doc.Ledger.InitialBalance)
	}
	if len(doc.Ledger.Transactions) != 2 {
		t.Fatalf("transactions = %d", len(doc.Ledger.Transactions))
	}
	// sorted date-ascending regardless of file order
	if doc.Ledger.Transactions[0].ID != "a" || doc.Ledger.Transactions[1].ID != "b" {
		t.Fatalf("unexpected order: %s, %s", doc.Ledger.Transactions[0].ID, doc.Ledger.Transactions[1].ID)
	}
	if doc.Ledger.Transactions[0].Signed() != -200000 {
		t.Fatalf("expense sign lost")
	}
}

func TestDecodeVersionError(t *testing.T) {
	cases := []string{
		`{"version": "2", "initialBalance": 0, "transactions": []}`,
		`{"initialBalance": 0, "transactions": []}`,
	}
	for i, in := range cases {
		_, err := Decode(strings.NewReader(in))
		var verr *core.VersionError
		if !errors.As(err, &verr) {
			t.Fatalf("case %d: expected VersionError, got %v", i, err)
		}
	}
}

func TestDecodeSchemaErrors(t *testing.T) {
	tests := []struct {
		name  string
		tx    string
		field string
	}{
		{
			name:  "missing id",
			tx:    `{"date": "2026-01-10", "type": "expense", "amount": 1, "description": ""}`,
			field: "transactions[0].id",
		},
		{
			name:  "missing date",
			tx:    `{"id": "a", "type": "expense", "amount": 1, "description": ""}`,
			field: "transactions[0].date",
		},
		{
			name:  "malformed date",
			tx:    `{"id": "a", "date": "10/01/2026", "type": "expense", "amount": 1, "description": ""}`,
			field: "transactions[0].date",
		},
		{
			name:  "missing type",
			tx:    `{"id": "a", "date": "2026-01-10", "amount": 1, "description": ""}`,
			field: "transactions[0].type",
		},
		{
			name:  "unknown type",
			tx:    `{"id": "a", "date": "2026-01-10", "type": "transfer", "amount": 1, "description": ""}`,
			field: "transactions[0].type",
		},
		{
			name:  "missing amount",
			tx:    `{"id": "a", "date": "2026-01-10", "type": "expense", "description": ""}`,
			field: "transactions[0].amount",
		},
		{
			name:  "negative amount",
			tx:    `{"id": "a", "date": "2026-01-10", "type": "expense", "amount": -5, "description": ""}`,
			field: "transactions[0].amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := `{"version": "1", "initialBalance": 0, "transactions": [` + tt.tx + `]}`
			_, err := Decode(strings.NewReader(in))
			var serr *core.SchemaError
			if !errors.As(err, &serr) {
				t.Fatalf("expected SchemaError, got %v", err)
			}
			if serr.Field != tt.field {
				t.Fatalf("field = %q, want %q", serr.Field, tt.field)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleFile))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		t.Fatalf("encode: %v", err)
	}
	// multibyte descriptions stay readable
	if !strings.Contains(buf.String(), "給料") {
		t.Fatalf("description was escaped: %s", buf.String())
	}

	again, err := Decode(&buf)
	if err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	if again.Ledger.InitialBalance != doc.Ledger.InitialBalance {
		t.Fatalf("initial balance changed")
	}
	if len(again.Ledger.Transactions) != len(doc.Ledger.Transactions) {
		t.Fatalf("transaction count changed")
	}
	for i := range doc.Ledger.Transactions {
		if again.Ledger.Transactions[i] != doc.Ledger.Transactions[i] {
			t.Fatalf("transaction %d changed: %+v vs %+v",
				i, again.Ledger.Transactions[i], doc.Ledger.Transactions[i])
		}
	}
}

func TestEncodeCompressedMetadata(t *testing.T) {
	at := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
	doc := Document{
		Ledger:       core.NewLedger(0, nil),
		Compressed:   true,
		CompressedAt: at,
	}

	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		t.Fatalf("encode: %v", err)
	}
	again, err := Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !again.Compressed {
		t.Fatalf("compressed flag lost")
	}
	if !again.CompressedAt.Equal(at) {
		t.Fatalf("compressedAt = %s, want %s", again.CompressedAt, at)
	}
}

func TestDecodeBadCompressedAt(t *testing.T) {
	in := `{"version": "1", "initialBalance": 0, "compressedAt": "yesterday", "transactions": []}`
	_, err := Decode(strings.NewReader(in))
	var serr *core.SchemaError
	if !errors.As(err, &serr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if serr.Field != "compressedAt" {
		t.Fatalf("field = %q", serr.Field)
	}
}

func TestFileRepositoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	logger := log.New(log.DefaultConfig())
	repo := NewFileRepository(path, logger)

	doc, err := Decode(strings.NewReader(sampleFile))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if err := repo.Save(doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := repo.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.Ledger.Transactions) != 2 || loaded.Ledger.InitialBalance != 1000000 {
		t.Fatalf("loaded = %+v", loaded.Ledger)
	}
}

func TestFileRepositoryLoadMissingFile(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "nope.json"), log.New(log.DefaultConfig()))
	if _, err := repo.Load(); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
