package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/vfg2006/kol-dashboard-api/internal/domain"
	"github.com/vfg2006/kol-dashboard-api/pkg/utils"
)

func formatAmount(value float64) string {
	return strconv.FormatFloat(utils.RoundWithTwoDecimalPlace(value), 'f', 2, 64)
}

func formatPercent(value float64) string {
	return formatAmount(value) + "%"
}

func renderKPIs(w io.Writer, kpis domain.KPISummary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk([][]string{
		{"Total KOLs", strconv.Itoa(kpis.TotalKols)},
		{"Total Budget (USD)", formatAmount(kpis.TotalBudgetUSD)},
		{"Total Spent (USD)", formatAmount(kpis.TotalSpentUSD)},
		{"Avg Completion", formatPercent(kpis.AverageCompletion)},
		{"Budget Utilization", formatPercent(kpis.BudgetUtilization)},
	})
	table.Render()
}

func renderTopKols(w io.Writer, ranking domain.RankingSeries) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rank", "KOL ID", "Name", "Completion"})
	for _, item := range ranking.Items {
		table.Append([]string{
			strconv.Itoa(item.Position),
			item.KolID,
			item.Name,
			formatPercent(item.CompletionRate),
		})
	}
	table.Render()
}

func renderExpiring(w io.Writer, contracts []domain.ExpiringContract) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"KOL ID", "Name", "Country", "Contract End", "Days Remaining"})
	for _, contract := range contracts {
		table.Append([]string{
			contract.KolID,
			contract.Name,
			contract.Country,
			contract.ContractEnd.Format(time.DateOnly),
			strconv.Itoa(contract.DaysRemaining),
		})
	}
	table.Render()
}

func renderOverdue(w io.Writer, activities []domain.OverdueActivity) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Activity ID", "KOL", "Type", "Status", "Due Date", "Days Overdue"})
	for _, activity := range activities {
		kol := activity.KolName
		if !activity.KolFound {
			kol = fmt.Sprintf("%s (unknown)", activity.KolID)
		}
		table.Append([]string{
			activity.ActivityID,
			kol,
			activity.ActivityType,
			activity.Status,
			activity.DueDate.Format(time.DateOnly),
			strconv.Itoa(activity.DaysOverdue),
		})
	}
	table.Render()
}
