package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/controlbox/internal/config"
	"github.com/san-kum/controlbox/internal/metrics"
	"github.com/san-kum/controlbox/internal/registry"
	"github.com/san-kum/controlbox/internal/sim"
	"github.com/san-kum/controlbox/internal/storage"
	"github.com/san-kum/controlbox/internal/viz"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	kp         float64
	t1         float64
	t2         float64
	delay      float64
	omega      float64
	damping    float64
	sigName    string
	pre        float64
	post       float64
	stepTime   float64
	controller string
	pidKp      float64
	pidKi      float64
	pidKd      float64
	configFile string
	preset     string
	frameRate  int
	target     float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "controlbox",
		Short: "plant element simulation for control-loop testing",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".controlbox", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [element]",
		Short: "run a plant element against an input signal",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	liveCmd := &cobra.Command{
		Use:   "live [element]",
		Short: "step a plant element with a live terminal view",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run samples to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [element]",
		Short: "list available presets for an element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for element: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	elementsCmd := &cobra.Command{
		Use:   "elements",
		Short: "list available element kinds",
		Run: func(cmd *cobra.Command, args []string) {
			reg := registry.New()
			for _, name := range reg.ListElements() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, presetsCmd, elementsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", 0.1, "sample time")
	cmd.Flags().Float64Var(&duration, "time", 10.0, "duration")
	cmd.Flags().Float64Var(&kp, "kp", 1.0, "plant gain")
	cmd.Flags().Float64Var(&t1, "t1", 1.0, "first time constant")
	cmd.Flags().Float64Var(&t2, "t2", 1.0, "second time constant (pt2)")
	cmd.Flags().Float64Var(&delay, "delay", 0.0, "delay time (pt0)")
	cmd.Flags().Float64Var(&omega, "omega", 0.0, "natural frequency (pt2, overrides t1/t2)")
	cmd.Flags().Float64Var(&damping, "damping", 1.0, "damping factor (pt2)")
	cmd.Flags().StringVar(&sigName, "signal", "step", "input signal (step, impulse, constant)")
	cmd.Flags().Float64Var(&pre, "pre", 0.0, "signal level before the step")
	cmd.Flags().Float64Var(&post, "post", 1.0, "signal level after the step")
	cmd.Flags().Float64Var(&stepTime, "step-time", 0.0, "step instant")
	cmd.Flags().StringVar(&controller, "controller", "none", "loop controller (none, pid)")
	cmd.Flags().Float64Var(&pidKp, "pid-kp", config.DefaultPIDKp, "pid proportional gain")
	cmd.Flags().Float64Var(&pidKi, "pid-ki", config.DefaultPIDKi, "pid integral gain")
	cmd.Flags().Float64Var(&pidKd, "pid-kd", config.DefaultPIDKd, "pid derivative gain")
	cmd.Flags().Float64Var(&target, "target", 1.0, "step-response target for metrics")
}

// buildConfig resolves preset, config file and flags into one Config, with
// flags taking precedence over the file and the file over the preset.
func buildConfig(cmd *cobra.Command, elem string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(elem, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(elem))
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *loaded
	}

	cfg.Element = elem
	if cmd.Flags().Changed("dt") || cfg.Dt == 0 {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") || cfg.Duration == 0 {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("signal") || cfg.Signal == "" {
		cfg.Signal = sigName
	}
	if cmd.Flags().Changed("controller") || cfg.Controller == "" {
		cfg.Controller = controller
	}
	if cmd.Flags().Changed("kp") {
		cfg.Plant.Kp = kp
	}
	if cmd.Flags().Changed("t1") {
		cfg.Plant.T1 = t1
	}
	if cmd.Flags().Changed("t2") {
		cfg.Plant.T2 = t2
	}
	if cmd.Flags().Changed("delay") {
		cfg.Plant.Delay = delay
	}
	if cmd.Flags().Changed("omega") {
		cfg.Plant.Omega = omega
	}
	if cmd.Flags().Changed("damping") {
		cfg.Plant.Damping = damping
	}
	if cmd.Flags().Changed("pre") {
		cfg.Source.Pre = pre
	}
	if cmd.Flags().Changed("post") {
		cfg.Source.Post = post
	}
	if cmd.Flags().Changed("step-time") {
		cfg.Source.StepTime = stepTime
	}
	// Explicit time constants select the t1/t2 form of pt2 unless the
	// frequency form was also requested.
	if (cmd.Flags().Changed("t1") || cmd.Flags().Changed("t2")) && !cmd.Flags().Changed("omega") {
		cfg.Plant.Omega = 0
		cfg.Plant.Damping = 0
	}
	if cmd.Flags().Changed("pid-kp") {
		cfg.PID.Kp = pidKp
	}
	if cmd.Flags().Changed("pid-ki") {
		cfg.PID.Ki = pidKi
	}
	if cmd.Flags().Changed("pid-kd") {
		cfg.PID.Kd = pidKd
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	reg := registry.New()
	plant, err := reg.Element(cfg.Element, cfg)
	if err != nil {
		return err
	}
	source, err := reg.Signal(cfg.Signal, cfg)
	if err != nil {
		return err
	}
	ctrl, err := reg.Controller(cfg.Controller, cfg)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runner := sim.New(plant, source)
	runner.AddMetric(metrics.NewOvershoot(target))
	runner.AddMetric(metrics.NewSettlingTime(target, 0.02))
	runner.AddMetric(metrics.NewSteadyStateError(target))

	simCfg := sim.Config{Dt: cfg.Dt, Duration: cfg.Duration}

	fmt.Printf("running %s against %s...\n", plant, source)
	start := time.Now()

	var result *sim.Result
	if cfg.Controller == "pid" {
		result, err = runner.RunClosedLoop(context.Background(), simCfg, ctrl)
	} else {
		result, err = runner.Run(context.Background(), simCfg)
	}
	if err != nil {
		return err
	}

	runID, err := st.Save(cfg.Element, cfg.Signal, cfg.Controller, cfg.Dt, cfg.Duration, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n\n", len(result.Times))
	fmt.Println(viz.RenderResponse(result))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	reg := registry.New()
	plant, err := reg.Element(cfg.Element, cfg)
	if err != nil {
		return err
	}
	source, err := reg.Signal(cfg.Signal, cfg)
	if err != nil {
		return err
	}
	return viz.RunLive(plant, source, cfg.Dt, frameRate)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tELEMENT\tSIGNAL\tCONTROLLER\tSTEPS\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			r.ID, r.Element, r.Signal, r.Controller, r.Steps, r.Timestamp.Format(time.RFC3339))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	result, err := st.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Println(viz.RenderResponse(result))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	result, err := st.Load(args[0])
	if err != nil {
		return err
	}
	return storage.ExportCSV(os.Stdout, result)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	result, err := st.Load(args[0])
	if err != nil {
		return err
	}
	runs, err := st.List()
	if err != nil {
		return err
	}
	for _, r := range runs {
		if r.ID == args[0] {
			return storage.ExportJSON(os.Stdout, r, result)
		}
	}
	return fmt.Errorf("run not found: %s", args[0])
}
