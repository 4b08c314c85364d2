package cmd

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/cv-tailor/internal/keywords"
	"github.com/spigell/cv-tailor/internal/logger"
	"github.com/spigell/cv-tailor/internal/relevance"
	"github.com/spigell/cv-tailor/internal/report"
	"github.com/spigell/cv-tailor/internal/selection"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score how well a CV covers the keywords of a job posting",
	Run: func(cmd *cobra.Command, _ []string) {
		runMatch(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().String("job", "", "job posting: a file, an http(s) URL or - for stdin")
	matchCmd.Flags().String("cv", "", "CV: a .txt, .md, .pdf, .docx or .html file")
	matchCmd.Flags().StringSliceP("keywords", "k", nil, "keywords to check instead of the recommended ones")
	matchCmd.Flags().BoolP("interactive", "i", false, "pick keywords by hand before scoring")
	matchCmd.Flags().StringP("exclude-file", "e", "", "file with keywords to never select, one per line")
	matchCmd.Flags().String("xlsx", "", "write an Excel report to this path")
	matchCmd.Flags().String("report", "", "write a JSON report to this path")
	matchCmd.Flags().Bool("dump", false, "dump a JSON report into a temporary file")
	matchCmd.MarkFlagRequired("job")
	matchCmd.MarkFlagRequired("cv")

	viper.BindPFlag("keywords.exclude-file", matchCmd.Flags().Lookup("exclude-file"))
	viper.BindPFlag("report.xlsx", matchCmd.Flags().Lookup("xlsx"))
	viper.BindPFlag("report.json", matchCmd.Flags().Lookup("report"))
}

func runMatch(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log, config, scorer := setup()

	job, err := loadDocument(ctx, cmd, config, log, "job")
	if err != nil {
		log.Fatal("loading the job posting", zap.Error(err))
	}

	cv, err := loadDocument(ctx, cmd, config, log, "cv")
	if err != nil {
		log.Fatal("loading the cv", zap.Error(err))
	}

	log = logger.WithCommonFields(log, job.Source, cv.Source)

	pool := keywords.BuildPool(job.Text, config.Keywords.PoolLimit)
	if len(pool.All) == 0 {
		log.Info("exiting", zap.String("reason", "no keywords found in the job posting"))
		return
	}

	explicit, _ := cmd.Flags().GetStringSlice("keywords")
	interactive, _ := cmd.Flags().GetBool("interactive")

	steps := selection.Default()
	if !interactive {
		selection.DisableByName(steps, "interactive", "not requested")
	}

	selected, err := selection.Run(ctx, &selection.Config{
		DefaultSelection: config.Keywords.DefaultSelection,
		Explicit:         explicit,
		Exclude:          config.Keywords.Exclude,
		ExcludeFile:      config.Keywords.ExcludeFile,
		Include:          config.Keywords.Include,
	}, selection.Deps{Logger: log, Pool: pool}, steps)
	if err != nil {
		log.Fatal("selecting keywords", zap.Error(err))
	}

	for _, status := range selection.Describe(steps) {
		log.Debug("selection step status",
			zap.String("name", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.String("reason", status.Reason),
			zap.Any("details", status.Details),
		)
	}

	eval := scorer.Evaluate(job.Text, cv.Text, pool, selected.Items)

	log.Info("match computed",
		zap.Int("match_percentage", eval.Result.MatchPercentage),
		zap.String("strength", string(eval.Strength)),
		zap.Int("estimated_ats_boost", eval.Boost),
		zap.Strings("missing", missing(eval.Result)),
	)

	if err := printEvaluation(cmd.OutOrStdout(), eval); err != nil {
		log.Fatal("printing the result", zap.Error(err))
	}

	if err := writeReports(cmd, config, log, report.New(job, cv, eval)); err != nil {
		log.Fatal("writing reports", zap.Error(err))
	}
}

func writeReports(cmd *cobra.Command, config *Config, log *zap.Logger, r *report.Report) error {
	if path := strings.TrimSpace(config.Report.JSON); path != "" {
		if err := r.ToFile(path); err != nil {
			return fmt.Errorf("json report: %w", err)
		}
		log.Info("json report written", zap.String("filename", path))
	}

	if path := strings.TrimSpace(config.Report.XLSX); path != "" {
		written, err := report.ExportExcel(r, path)
		if err != nil {
			return fmt.Errorf("excel report: %w", err)
		}
		log.Info("excel report written", zap.String("filename", written))
	}

	if dump, _ := cmd.Flags().GetBool("dump"); dump {
		filename, err := r.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		log.Info("dumping result to file", zap.String("filename", filename))
	}

	return nil
}

func missing(r relevance.Result) []string {
	out := []string{}
	for _, w := range r.Weighted {
		if !w.Matched {
			out = append(out, w.Keyword)
		}
	}
	return out
}

func printEvaluation(w io.Writer, eval relevance.Evaluation) error {
	r := eval.Result
	_, err := fmt.Fprintf(w,
		"match: %d%% (%s)\nweight: %.2f of %.2f\nestimated ATS boost: +%d%%\nkeyword insights: %d%% (%s)\nmatched: %s\nmissing: %s\n",
		r.MatchPercentage, eval.Strength,
		r.MatchedWeight, r.TotalWeight,
		eval.Boost,
		eval.Insights.MatchPercentage, eval.Insights.Tone,
		strings.Join(r.Matched, ", "),
		strings.Join(missing(r), ", "),
	)
	return err
}
