package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/sitegen-cli/internal/model"
)

var deployCmd = &cobra.Command{
	Use:   "deploy <record.json>",
	Short: "Generate a site configuration from a record file and deploy it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		raw, err := readRecord(args[0])
		if err != nil {
			return err
		}

		env, err := initPipeline(ctx, cfg)
		if err != nil {
			return err
		}
		defer env.Close()

		siteCfg := env.buildConfig(ctx, raw)
		zap.L().Info("configuration built",
			zap.String("business", siteCfg.Business.Slug),
			zap.String("vertical", string(siteCfg.Business.Vertical)),
			zap.Bool("synthesis_enabled", env.synth.Enabled()),
		)

		res, err := env.deployConfig(ctx, siteCfg)
		if err != nil {
			return err
		}

		printDeployResult(cmd, siteCfg.Business, res.URL, res.ProjectID)
		return nil
	},
}

func printDeployResult(cmd *cobra.Command, biz model.Business, url, projectID string) {
	cmd.Printf("Deployed %s (%s)\n", biz.Name, projectID)
	if url != "" {
		cmd.Printf("URL: %s\n", url)
	} else {
		fmt.Fprintln(cmd.ErrOrStderr(), "Deploy finished but no URL was found in the CLI output.")
	}
}

func init() {
	rootCmd.AddCommand(deployCmd)
}
