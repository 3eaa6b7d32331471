package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/spinrad/internal/config"
	"github.com/san-kum/spinrad/internal/experiment"
	"github.com/san-kum/spinrad/internal/storage"
	"github.com/san-kum/spinrad/internal/viz"
)

var (
	dataDir    string
	a          float64
	b          float64
	c          float64
	theta      float64
	vertices   int
	truncation int
	maxN       int
	configFile string
	preset     string
	noSave     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "spinrad",
		Short: "collective spin radiance calculator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".spinrad", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [shape]",
		Short: "compute effective interactions for a shape",
		Args:  cobra.ExactArgs(1),
		RunE:  runShape,
	}
	addShapeFlags(runCmd)
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not record the run")

	sweepCmd := &cobra.Command{
		Use:   "sweep [shape]",
		Short: "sweep the lattice truncation and plot convergence",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepShape,
	}
	addShapeFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&maxN, "max-n", config.DefaultMaxN, "largest truncation window")
	sweepCmd.Flags().BoolVar(&noSave, "no-save", false, "do not record the run")

	liveCmd := &cobra.Command{
		Use:   "live [shape]",
		Short: "watch a truncation sweep converge",
		Args:  cobra.ExactArgs(1),
		RunE:  liveShape,
	}
	addShapeFlags(liveCmd)
	liveCmd.Flags().IntVar(&maxN, "max-n", config.DefaultMaxN, "largest truncation window")

	shapesCmd := &cobra.Command{
		Use:   "shapes",
		Short: "list supported shapes",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := experiment.NewRegistry()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SHAPE\tKIND")
			for _, name := range registry.Names() {
				shape, err := registry.Get(name)
				if err != nil {
					return err
				}
				kind := "finite"
				if shape.Infinite {
					kind = "lattice window"
				}
				fmt.Fprintf(w, "%s\t%s\n", name, kind)
			}
			return w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [shape]",
		Short: "list available presets for a shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for shape: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the convergence series of a sweep run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export the convergence series to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	rootCmd.AddCommand(runCmd, sweepCmd, liveCmd, shapesCmd, presetsCmd, listCmd, plotCmd, exportCSVCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addShapeFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&a, "a", config.DefaultSpacing, "side length or lattice spacing")
	cmd.Flags().Float64Var(&b, "b", config.DefaultSpacing, "secondary length")
	cmd.Flags().Float64Var(&c, "c", config.DefaultSpacing, "tertiary length")
	cmd.Flags().Float64Var(&theta, "theta", 0, "polarization tilt from the z-axis (chain)")
	cmd.Flags().IntVar(&vertices, "vertices", config.DefaultVertices, "vertex count (polygon)")
	cmd.Flags().IntVar(&truncation, "n", config.DefaultTruncation, "lattice truncation window")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset parameters")
}

// resolveParams merges preset, config file and command-line flags into the
// shape parameters, with explicit flags taking precedence.
func resolveParams(cmd *cobra.Command, shape string) (experiment.Params, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(shape, preset)
		if p == nil {
			return experiment.Params{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(shape))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return experiment.Params{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("a") {
		cfg.A = a
	}
	if cmd.Flags().Changed("b") {
		cfg.B = b
	}
	if cmd.Flags().Changed("c") {
		cfg.C = c
	}
	if cmd.Flags().Changed("theta") {
		cfg.Theta = theta
	}
	if cmd.Flags().Changed("vertices") {
		cfg.Vertices = vertices
	}
	if cmd.Flags().Changed("n") {
		cfg.N = truncation
	}
	if cfg.MaxN > 0 && !cmd.Flags().Changed("max-n") {
		maxN = cfg.MaxN
	}

	return cfg.Params(), nil
}

func runShape(cmd *cobra.Command, args []string) error {
	shapeName := args[0]

	registry := experiment.NewRegistry()
	shape, err := registry.Get(shapeName)
	if err != nil {
		return err
	}

	params, err := resolveParams(cmd, shapeName)
	if err != nil {
		return err
	}

	omega, gamma, err := shape.Compute(params)
	if err != nil {
		return err
	}

	fmt.Printf("shape: %s\n", shapeName)
	if shape.Infinite {
		fmt.Printf("truncation: %d\n", params.N)
	}
	fmt.Printf("omega_eff: %.12f\n", omega)
	fmt.Printf("gamma_eff: %.12f\n", gamma)

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(shapeName, storage.ParamsMap(params), omega, gamma, nil)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func sweepShape(cmd *cobra.Command, args []string) error {
	shapeName := args[0]

	registry := experiment.NewRegistry()
	shape, err := registry.Get(shapeName)
	if err != nil {
		return err
	}

	params, err := resolveParams(cmd, shapeName)
	if err != nil {
		return err
	}

	points, err := experiment.Sweep(shape, params, maxN)
	if err != nil {
		return err
	}

	series := make([]float64, len(points))
	for i, p := range points {
		series[i] = p.Omega
	}
	fmt.Println(asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("omega_eff vs truncation"),
	))
	fmt.Println()

	for i, p := range points {
		series[i] = p.Gamma
	}
	fmt.Println(asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("gamma_eff vs truncation"),
	))
	fmt.Println()

	last := points[len(points)-1]
	fmt.Printf("omega_eff: %.12f (last step %.2e)\n", last.Omega, last.DeltaOmega)
	fmt.Printf("gamma_eff: %.12f (last step %.2e)\n", last.Gamma, last.DeltaGamma)

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(shapeName, storage.ParamsMap(params), last.Omega, last.Gamma, points)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func liveShape(cmd *cobra.Command, args []string) error {
	shapeName := args[0]

	registry := experiment.NewRegistry()
	shape, err := registry.Get(shapeName)
	if err != nil {
		return err
	}
	if !shape.Infinite {
		return fmt.Errorf("shape %s is finite; live mode sweeps lattice truncations", shapeName)
	}

	params, err := resolveParams(cmd, shapeName)
	if err != nil {
		return err
	}

	m := viz.NewModel(shape, params, maxN)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSHAPE\tTIME\tOMEGA\tGAMMA\tSWEEP")

	for _, run := range runs {
		sweep := "-"
		if run.SweepMax > 0 {
			sweep = strconv.Itoa(run.SweepMax)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.6f\t%.6f\t%s\n",
			run.ID,
			run.Shape,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Omega,
			run.Gamma,
			sweep,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	points, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no series to plot; %s is not a sweep run", runID)
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("shape: %s\n\n", meta.Shape)

	series := make([]float64, len(points))
	for i, p := range points {
		series[i] = p.Omega
	}
	fmt.Println(asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("omega_eff vs truncation"),
	))
	fmt.Println()

	for i, p := range points {
		series[i] = p.Gamma
	}
	fmt.Println(asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("gamma_eff vs truncation"),
	))

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	points, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no series to export; %s is not a sweep run", runID)
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"n", "omega", "gamma", "delta_omega", "delta_gamma"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			strconv.Itoa(p.N),
			strconv.FormatFloat(p.Omega, 'g', -1, 64),
			strconv.FormatFloat(p.Gamma, 'g', -1, 64),
			strconv.FormatFloat(p.DeltaOmega, 'g', -1, 64),
			strconv.FormatFloat(p.DeltaGamma, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}
