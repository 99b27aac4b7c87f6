package report

import (
	"fmt"
	"strings"

	"okane/internal/core"
	"okane/internal/services"
)

// warnBelow marks balances worth a warning flag even when still positive.
const warnBelow int64 = 100000

// RenderForecast renders the monthly forecast table.
func RenderForecast(entries []core.ForecastEntry) string {
	b := NewBuilder().Heading(2, "残高予測")

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		balance := core.FormatYen(e.Balance)
		switch {
		case e.Balance < 0:
			balance = fmt.Sprintf("**%s** ⚠️", balance)
		case e.Balance < warnBelow:
			balance = fmt.Sprintf("%s ⚠️", balance)
		}
		rows = append(rows, []string{e.Month, balance, largeItemsCell(e.LargeItems)})
	}
	b.Table([]string{"月", "残高", "大きな出入り"}, rows)
	return b.String()
}

func largeItemsCell(items []core.Transaction) string {
	if len(items) == 0 {
		return ""
	}
	parts := make([]string, 0, len(items))
	for _, tx := range items {
		sign := "-"
		if tx.Kind == core.Income {
			sign = "+"
		}
		parts = append(parts, fmt.Sprintf("%s(%s%s)", tx.Description, sign, tx.Amount))
	}
	return strings.Join(parts, ", ")
}

// RenderCheck renders an affordability check result.
func RenderCheck(res core.CheckResult) string {
	b := NewBuilder().Heading(2, fmt.Sprintf("%sに%sの出費チェック", res.Date, core.FormatYen(res.Amount)))

	b.Line("**判定: %s**", statusLabel(res.Status)).Blank()
	b.Table([]string{"項目", "金額"}, [][]string{
		{"出費前残高", core.FormatYen(res.BalanceBefore)},
		{"出費額", core.FormatYen(res.Amount)},
		{"出費後残高", core.FormatYen(res.BalanceAfter)},
	})

	if len(res.SubsequentObligations) > 0 {
		b.Heading(3, "その後の予定支出")
		rows := make([][]string, 0, len(res.SubsequentObligations))
		for _, tx := range res.SubsequentObligations {
			rows = append(rows, []string{tx.Date.String(), tx.Description, tx.Amount.String()})
		}
		b.Table([]string{"日付", "内容", "金額"}, rows)
	}
	return b.String()
}

func statusLabel(s core.CheckStatus) string {
	switch s {
	case core.StatusOK:
		return "✅ 可能"
	case core.StatusTight:
		return "⚠️ ギリギリ"
	default:
		return "❌ 不足"
	}
}

// RenderDanger renders the danger point table, or an all-clear line.
func RenderDanger(points []core.DangerPoint) string {
	b := NewBuilder().Heading(2, "⚠️ 残高不足の警告")

	if len(points) == 0 {
		b.Line("危険なポイントはありません ✅")
		return b.String()
	}
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{p.Date.String(), core.FormatYen(p.Balance), core.FormatYen(p.Shortfall)})
	}
	b.Table([]string{"日付", "残高", "不足額"}, rows)
	return b.String()
}

// RenderCompressSummary reports how much a compression shrank the file.
func RenderCompressSummary(before, after int, path string) string {
	return NewBuilder().
		Line("✅ ログを圧縮しました").
		Line("   %d件 → %d件", before, after).
		Line("   保存先: %s", path).
		String()
}

// RenderTransactions renders an editor listing.
func RenderTransactions(txs []core.Transaction) string {
	if len(txs) == 0 {
		return NewBuilder().Line("取引が見つかりません").String()
	}
	b := NewBuilder().Heading(2, fmt.Sprintf("取引一覧（%d件）", len(txs)))
	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{
			fmt.Sprintf("`%s`", tx.ID),
			tx.Date.String(),
			kindLabel(tx.Kind),
			tx.Amount.String(),
			tx.Description,
		})
	}
	b.Table([]string{"ID", "日付", "種別", "金額", "説明"}, rows)
	return b.String()
}

func kindLabel(k core.Kind) string {
	if k == core.Income {
		return "収入"
	}
	return "支出"
}

// RenderSummary renders the ledger totals shown under an editor listing.
func RenderSummary(s services.LedgerSummary) string {
	return NewBuilder().
		Heading(2, "サマリー").
		Line("- 取引件数: %d件", s.Count).
		Line("- 収入合計: %s", core.FormatYen(s.IncomeTotal)).
		Line("- 支出合計: %s", core.FormatYen(s.ExpenseTotal)).
		Line("- 残高: %s", core.FormatYen(s.Net)).
		String()
}

// RenderTransactionDetail renders one transaction after an editor change.
func RenderTransactionDetail(verb string, tx core.Transaction, path string) string {
	return NewBuilder().
		Line("✅ 取引を%sしました", verb).
		Line("   ID: %s", tx.ID).
		Line("   日付: %s", tx.Date).
		Line("   種別: %s", kindLabel(tx.Kind)).
		Line("   金額: %s", tx.Amount).
		Line("   説明: %s", tx.Description).
		Line("   保存先: %s", path).
		String()
}
