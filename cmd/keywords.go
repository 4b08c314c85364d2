package cmd

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/cv-tailor/internal/ingest"
	"github.com/spigell/cv-tailor/internal/keywords"
	"github.com/spigell/cv-tailor/internal/utils"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Print the ranked keyword pool of a job posting",
	Run: func(cmd *cobra.Command, _ []string) {
		runKeywords(cmd)
	},
}

func init() {
	rootCmd.AddCommand(keywordsCmd)

	keywordsCmd.Flags().String("job", "", "job posting: a file, an http(s) URL or - for stdin")
	keywordsCmd.Flags().IntP("limit", "l", 0, "maximum number of keywords (default is keywords.pool-limit)")
	keywordsCmd.MarkFlagRequired("job")
}

func runKeywords(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger, config, _ := setup()

	job, err := loadDocument(ctx, cmd, config, logger, "job")
	if err != nil {
		logger.Fatal("loading the job posting", zap.Error(err))
	}

	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		limit = config.Keywords.PoolLimit
	}

	scored := keywords.ExtractScored(job.Text, limit)
	ranked := make([]string, 0, len(scored))
	for _, sc := range scored {
		ranked = append(ranked, sc.Term)
	}
	pool := keywords.NewPool(ranked)

	logger.Info("keyword pool built",
		zap.String("job_source", job.Source),
		zap.Int("keywords", len(pool.All)),
		zap.Int("core", len(pool.Core)),
		zap.Int("optional", len(pool.Optional)),
	)

	if err := printPool(cmd.OutOrStdout(), scored, pool); err != nil {
		logger.Fatal("printing the pool", zap.Error(err))
	}
}

// loadDocument loads and validates the source passed in the named flag.
func loadDocument(ctx context.Context, cmd *cobra.Command, config *Config, logger *zap.Logger, flag string) (*ingest.Document, error) {
	src, _ := cmd.Flags().GetString(flag)

	doc, err := ingest.Load(ctx, src, ingest.Options{
		UserAgent: config.UserAgent,
		Logger:    logger,
		Stdin:     cmd.InOrStdin(),
	})
	if err != nil {
		return nil, err
	}

	if err := ingest.Validate(doc.Text, config.MaxInputLength); err != nil {
		return nil, fmt.Errorf("%s %s: %w", flag, doc.Source, err)
	}

	logger.Debug("document loaded",
		zap.String("flag", flag),
		zap.String("name", doc.Name),
		zap.String("preview", utils.Preview(doc.Text, 120)),
	)

	return doc, nil
}

func printPool(w io.Writer, scored []keywords.Scored, pool keywords.Pool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tKEYWORD\tSCORE\tGROUP\tCATEGORY")
	for i, sc := range scored {
		group := "optional"
		if pool.IsCore(sc.Term) {
			group = "core"
		}
		category := keywords.Category(sc.Term)
		if category == "" {
			category = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n", i+1, sc.Term, sc.Score, group, category)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\ncore: %s\n", strings.Join(pool.Core, ", "))
	return err
}
