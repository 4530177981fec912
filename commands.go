package main

import (
	"context"
	"fmt"
	"github.com/jbeshir/moonbird-fitplot/controllers"
	"github.com/jbeshir/moonbird-fitplot/regression"
	"github.com/jbeshir/moonbird-fitplot/render"
	"github.com/jbeshir/moonbird-fitplot/responders"
	"github.com/jbeshir/moonbird-fitplot/tables"
	"github.com/pkg/browser"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"os"
	"os/signal"
	"syscall"
	"time"
)

var (
	version = "dev"
	commit  = "none"
)

type options struct {
	trainingPath    string
	predictionsPath string
	savePath        string
	addr            string
	googleAuth      bool
	verbose         bool
}

func execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := new(options)

	rootCmd := &cobra.Command{
		Use:           "fitplot",
		Short:         "Plot a training set against a model's predictions",
		Long:          "Loads in.csv (x,y) and out.csv (x,y^) and shows the training points as markers with the predictions as a line.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configureLogging(opts.verbose)

			// Precedence: flag > env > default.
			if f := cmd.Flags().Lookup("addr"); f != nil && !f.Changed {
				if port := os.Getenv("PORT"); port != "" {
					opts.addr = "127.0.0.1:" + port
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlot(cmd.Context(), opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.trainingPath, "training", controllers.DefaultTrainingPath, "Training set file (x,y); local path or http(s)://, gs://, s3:// URL")
	rootCmd.PersistentFlags().StringVar(&opts.predictionsPath, "predictions", controllers.DefaultPredictionsPath, "Predictions file (x,y^); local path or http(s)://, gs://, s3:// URL")
	rootCmd.PersistentFlags().BoolVar(&opts.googleAuth, "google-auth", false, "Use Google application default credentials for http(s) fetches")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output")
	rootCmd.Flags().StringVar(&opts.savePath, "save", "", "Save the chart to this file (png, svg, pdf, ...) instead of showing it")
	rootCmd.Flags().StringVar(&opts.addr, "addr", "127.0.0.1:0", "Address to serve the chart on")

	rootCmd.AddCommand(newTrainCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func newTrainCmd(opts *options) *cobra.Command {
	trainer := &regression.Trainer{}

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Generate a noisy training set, fit a line to it, and write both files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			trainer.FileStore = newFileStore(opts)
			c := &controllers.Train{Trainer: trainer}
			return c.Run(cmd.Context(), &controllers.TrainInput{
				TrainingPath:    opts.trainingPath,
				PredictionsPath: opts.predictionsPath,
			})
		},
	}

	cmd.Flags().IntVar(&trainer.Points, "points", regression.DefaultPoints, "Number of training points")
	cmd.Flags().Float64Var(&trainer.LearningRate, "learning-rate", regression.DefaultLearningRate, "Gradient descent step size")
	cmd.Flags().IntVar(&trainer.MaxIterations, "max-iterations", regression.DefaultMaxIterations, "Gradient descent iteration limit")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "fitplot version %s (commit: %s)\n", version, commit)
			return nil
		},
	}
}

func runPlot(ctx context.Context, opts *options) error {
	store := newFileStore(opts)
	c := &controllers.Plot{
		TableLoader: &tables.Loader{FileStore: store},
	}

	var viewer controllers.FigureViewer
	if opts.savePath != "" {
		viewer = &FileViewer{
			Path:      opts.savePath,
			FileStore: store,
			Renderer:  &render.Plot{},
		}
	} else {
		viewer = &BrowserViewer{
			Addr: opts.addr,
			Responder: &responders.WebFigureResponder{
				Title:    fmt.Sprintf("%s vs %s", opts.trainingPath, opts.predictionsPath),
				Renderer: &render.Chart{},
				Simple:   responders.WebSimpleResponder{ExposeErrors: true},
			},
			OpenURL: browser.OpenURL,
		}
	}

	return c.Run(ctx, &controllers.PlotInput{
		TrainingPath:    opts.trainingPath,
		PredictionsPath: opts.predictionsPath,
	}, viewer)
}

func newFileStore(opts *options) *SchemeFileStore {
	var clientMaker HttpClientMaker = &DefaultHttpClientMaker{Timeout: 30 * time.Second}
	if opts.googleAuth {
		clientMaker = &GoogleHttpClientMaker{}
	}
	httpStore := &HTTPFileStore{
		ClientMaker: clientMaker,
		Limiter:     rate.NewLimiter(1, 2),
	}

	return &SchemeFileStore{
		Default: &LocalFileStore{},
		Stores: map[string]FileStore{
			"http":  httpStore,
			"https": httpStore,
			"gs":    &GCSFileStore{Options: []option.ClientOption{option.WithUserAgent("moonbird-fitplot/" + version)}},
			"s3":    NewS3FileStoreFromEnv(),
		},
	}
}

func configureLogging(verbose bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}
