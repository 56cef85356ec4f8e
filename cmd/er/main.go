package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/solver-er/internal/milp/glpk"
	"github.com/napolitain/solver-er/internal/models"
	"github.com/napolitain/solver-er/internal/solver/hospital"
)

var (
	scenarioFile string
	quiet        bool
	lastOnly     bool
	useGreedy    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "er",
		Short: "Friday Night at the ER hourly decision optimizer",
		Long: `Replays a scenario of hourly card data through a one-hour MILP
and prints the best admission, diversion, and staffing decisions.`,
		Run: runScenario,
	}

	rootCmd.Flags().StringVarP(&scenarioFile, "scenario", "s", "", "Path to JSON scenario file (required)")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")
	rootCmd.Flags().BoolVarP(&lastOnly, "summary", "m", false, "Show only the final summary")
	rootCmd.Flags().BoolVarP(&useGreedy, "greedy", "g", false, "Use the rule-based baseline policy instead of the MILP")
	_ = rootCmd.MarkFlagRequired("scenario")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runScenario(cmd *cobra.Command, args []string) {
	titleColor := color.New(color.FgCyan, color.Bold)
	successColor := color.New(color.FgGreen, color.Bold)
	infoColor := color.New(color.FgYellow)

	if !quiet {
		titleColor.Println("\n╭────────────────────────────╮")
		titleColor.Println("│  Friday Night at the ER    │")
		titleColor.Println("│  Decision Optimizer        │")
		titleColor.Println("╰────────────────────────────╯")
		fmt.Println()
	}

	scenario, err := models.LoadScenario(scenarioFile)
	if err != nil {
		color.Red("Error loading scenario: %v", err)
		os.Exit(1)
	}

	if !quiet {
		infoColor.Printf("📄 Loaded %d hours from %s\n", len(scenario.Hours), scenarioFile)
		infoColor.Printf("⚖️  Weights: quality=%.1f flow=%.1f\n\n", scenario.QualityWeight, scenario.FlowReward)
	}

	state := models.NewGameState()
	solver := glpk.New()
	opts := hospital.Options{
		QualityWeight: scenario.QualityWeight,
		FlowReward:    scenario.FlowReward,
	}

	var lastReport *hospital.HourReport
	for i := range scenario.Hours {
		var report *hospital.HourReport
		var err error
		if useGreedy {
			report, err = hospital.GreedyHour(state, &scenario.Hours[i], opts)
		} else {
			report, err = hospital.OptimizeHour(solver, state, &scenario.Hours[i], opts)
		}
		if err != nil {
			color.Red("Hour %d failed: %v", state.Hour, err)
			os.Exit(1)
		}
		lastReport = report

		if !quiet && !lastOnly {
			successColor.Printf("✓ Hour %d optimized (objective %.0f)\n", report.State.Hour-1, report.Metrics.ObjectiveValue)
			printDecisions(report)
			printState(report.State)
		}
	}

	if lastReport == nil {
		infoColor.Println("Scenario has no hours; nothing to do.")
		return
	}

	printSummary(lastReport)
}

func printDecisions(report *hospital.HourReport) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Department", "Admit arrivals", "Admit requests", "Extra staff", "Divert"}),
	)

	report.Decisions.Each(func(d models.Dept, rec *models.Decision) {
		arrivals := fmt.Sprintf("%d", rec.AdmitExternal)
		if d == models.ED {
			arrivals = fmt.Sprintf("%d walk-in / %d ambulance", rec.AdmitWalkins, rec.AdmitAmbulance)
		}
		divert := ""
		if d == models.ED {
			divert = fmt.Sprintf("%d", rec.DivertAmbulances)
		}
		_ = table.Append([]string{
			d.DisplayName(),
			arrivals,
			fmt.Sprintf("%d", rec.AdmitRequests),
			fmt.Sprintf("%d", rec.CallExtraStaff),
			divert,
		})
	})

	_ = table.Render()
}

func printState(state *models.GameState) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Department", "Patients", "Staff", "Arrivals waiting", "Requests (mature/new)"}),
	)

	state.Depts.Each(func(d models.Dept, dept *models.Department) {
		waiting := fmt.Sprintf("%d", dept.ExtWaiting)
		if d == models.ED {
			waiting = fmt.Sprintf("%d walk-in / %d ambulance", dept.EDWalkinWaiting, dept.EDAmbulanceWaiting)
		}
		_ = table.Append([]string{
			d.DisplayName(),
			fmt.Sprintf("%d/%d", dept.Patients, models.RoomCapacity(d)),
			fmt.Sprintf("%d", dept.Staff),
			waiting,
			fmt.Sprintf("%d/%d", dept.ReqWaitingMature, dept.ReqWaitingNew),
		})
	})

	_ = table.Render()
	fmt.Println()
}

func printSummary(report *hospital.HourReport) {
	successColor := color.New(color.FgGreen, color.Bold)
	totals := &report.State.Totals

	successColor.Printf("\n✓ Scenario complete after hour %d\n\n", report.State.Hour-1)
	fmt.Printf("💰 Cumulative cost:     $%d\n", totals.FinancialCost())
	fmt.Printf("🩺 Quality penalty:     %d\n", totals.QualityPenalty())
	fmt.Printf("🛏  Patients admitted:   %d\n", totals.Admitted)
	fmt.Printf("🏠 Patients discharged: %d\n", totals.Discharged)
	fmt.Printf("🚑 Ambulances diverted: %d\n", totals.EDDiversions)
}
