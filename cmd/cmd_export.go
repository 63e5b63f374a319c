package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/modules/receipts/exporter"
	"github.com/gaze-network/realpay-receipts/pkg/logger"
	"github.com/gaze-network/realpay-receipts/pkg/logger/slogx"
	"github.com/gaze-network/realpay-receipts/pkg/s3archive"
	"github.com/spf13/cobra"
)

type exportCmdOptions struct {
	Output string
	Upload bool
}

func NewExportCommand() *cobra.Command {
	opts := &exportCmdOptions{}

	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Export all receipts to a parquet snapshot",
		Example: `realpay export --output receipts.parquet --upload`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Output, "output", "receipts.parquet", "Path of the parquet file to write")
	flags.BoolVar(&opts.Upload, "upload", false, "Upload the snapshot to the `export.s3` bucket")

	return cmd
}

func exportHandler(opts *exportCmdOptions, cmd *cobra.Command, _ []string) error {
	ctx := logger.WithContext(cmd.Context(), slogx.String("command", "export"))

	module, conf, err := openReceipts(cmd)
	if err != nil {
		return errors.WithStack(err)
	}
	defer module.Shutdown()

	rows, err := module.Exporter.ExportFile(ctx, opts.Output)
	if err != nil {
		return errors.Wrap(err, "failed to export receipts")
	}
	logger.InfoContext(ctx, "Wrote receipts snapshot", slogx.String("output", opts.Output), slogx.Int64("rows", rows))

	if opts.Upload {
		archive, err := s3archive.New(ctx, conf.Export.S3)
		if err != nil {
			return errors.Wrap(err, "can't create s3 archive")
		}
		key, err := exporter.UploadFile(ctx, archive, opts.Output)
		if err != nil {
			return errors.WithStack(err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "uploaded %d receipts to s3://%s/%s\n", rows, conf.Export.S3.Bucket, key)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported %d receipts to %s\n", rows, opts.Output)
	return nil
}
