package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ironsheep/gaze-fov/internal/config"
	"github.com/ironsheep/gaze-fov/internal/fov"
	"github.com/ironsheep/gaze-fov/internal/imaging"
	"github.com/ironsheep/gaze-fov/internal/log"
	"github.com/ironsheep/gaze-fov/internal/scene"
	"github.com/ironsheep/gaze-fov/internal/server"
)

// app carries what every subcommand needs once flags and env are read.
type app struct {
	envFiles []string
	settings config.Settings
	frames   *imaging.FrameCache
	log      *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{frames: imaging.NewFrameCache()}

	root := &cobra.Command{
		Use:   "gaze-fov",
		Short: "Classify a driver as focused or distracted from a gaze vector",
		Long: `gaze-fov casts a field-of-view wedge from a gaze vector and reports which
scene objects fall inside it. It runs as an MCP server over stdio or as a
one-shot CLI.

Settings come from GAZE_FOV_* environment variables, optionally loaded from
.env files:
  GAZE_FOV_FOV_DEGREE       full FOV angle in degrees, [0, 90)     (60)
  GAZE_FOV_CONF_THRESHOLD   minimum object confidence, (0, 1)      (0.5)
  GAZE_FOV_COUNT_THRESHOLD  box edges that must reach the wedge    (1)
  GAZE_FOV_IMAGE_SIZE       demo canvas size in pixels             (500)
  GAZE_FOV_NUM_OBJECTS      demo object count                      (5)
  GAZE_FOV_GRID_SPACING     grid overlay step, 0 disables          (0)
  GAZE_FOV_LOG_LEVEL        trace, debug, info, warn, error        (info)
  GAZE_FOV_LOG_FILE         also write logs to this rotated file`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.Load(a.envFiles...)
			if err != nil {
				return err
			}
			a.settings = s
			a.log = log.New(log.Options{Level: s.LogLevel, File: s.LogFile})
			return nil
		},
	}
	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "load settings from these .env files (default .env)")

	root.AddCommand(
		newServeCmd(a),
		newDemoCmd(a),
		newClassifyCmd(a),
		newVersionCmd(),
	)
	return root
}

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.WithFields(logrus.Fields{
				"version": Version,
				"built":   BuildTime,
				"commit":  GitCommit,
			}).Debug("starting gaze-fov MCP server")

			srv := server.New(
				server.WithSettings(a.settings),
				server.WithLogger(a.log),
				server.WithVersion(Version),
			)
			return srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func newDemoCmd(a *app) *cobra.Command {
	var (
		out      string
		sceneOut string
		seed     int64
		fovDeg   float64
		rf       renderFlags
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate a random scene, classify it and render it to a PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			gen := scene.NewGenerator(seed)

			cfg := a.settings.FOV()
			cfg.FOVDegree = gen.FOVDegree()
			if cmd.Flags().Changed("fov") {
				cfg.FOVDegree = fovDeg
			}
			a.log.WithField("fov_degree", cfg.FOVDegree).Info("fov degree")

			sc, err := gen.Scene(a.settings.ImageSize, a.settings.NumObjects)
			if err != nil {
				return err
			}
			res, err := classify(a, sc, cfg)
			if err != nil {
				return err
			}

			if sceneOut != "" {
				if err := scene.Save(sceneOut, sc); err != nil {
					return err
				}
			}
			if err := render(a, sc, res, out, rf); err != nil {
				return err
			}

			a.log.WithFields(logrus.Fields{
				"seed":  seed,
				"scene": sc.ID,
				"out":   out,
			}).Info(res.Label)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "example.png", "PNG file to write")
	cmd.Flags().StringVar(&sceneOut, "save-scene", "", "also save the generated scene (.yaml, .yml or .json)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().Float64Var(&fovDeg, "fov", 0, "FOV degree (default random in [30, 90))")
	rf.flags(cmd)
	return cmd
}

func newClassifyCmd(a *app) *cobra.Command {
	var (
		renderPath string
		rf         renderFlags
	)

	cmd := &cobra.Command{
		Use:   "classify <scene-file>",
		Short: "Classify a scene file and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			res, err := classify(a, sc, a.settings.FOV())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return fmt.Errorf("failed to write result: %w", err)
			}

			if renderPath != "" {
				return render(a, sc, res, renderPath, rf)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&renderPath, "render", "", "also render the scene to this PNG file")
	rf.flags(cmd)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Skip settings and logger setup.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "gaze-fov %s\n", Version)
			fmt.Fprintf(w, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
		},
	}
}

func classify(a *app, sc *scene.Scene, cfg fov.Config) (*fov.Result, error) {
	c, err := fov.New(cfg, fov.WithLogger(a.log))
	if err != nil {
		return nil, err
	}
	return sc.Classify(c)
}

// renderFlags holds the rendering flags shared by demo and classify.
type renderFlags struct {
	wedge      float64
	background string
	showLow    bool
}

func (rf *renderFlags) flags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&rf.wedge, "wedge-opacity", 0, "fill the FOV wedge with this opacity in [0, 1]")
	cmd.Flags().StringVar(&rf.background, "background", "", "draw over this camera frame instead of a black canvas")
	cmd.Flags().BoolVar(&rf.showLow, "show-low-confidence", false, "outline low-confidence objects in grey")
}

func render(a *app, sc *scene.Scene, res *fov.Result, path string, rf renderFlags) error {
	if rf.wedge < 0 || rf.wedge > 1 {
		return fmt.Errorf("%w: wedge opacity %g outside [0,1]", fov.ErrInvalidInput, rf.wedge)
	}
	opts := imaging.DefaultRenderOptions()
	opts.GridSpacing = a.settings.GridSpacing
	opts.WedgeOpacity = rf.wedge
	opts.ShowLowConfidence = rf.showLow
	if rf.background != "" {
		frame, err := a.frames.Load(rf.background)
		if err != nil {
			return err
		}
		opts.Background = frame
	}

	img, err := imaging.Render(sc, res, opts)
	if err != nil {
		return err
	}
	if err := imaging.SavePNG(path, img); err != nil {
		return err
	}
	a.log.WithField("path", path).Debug("rendered scene")
	return nil
}
