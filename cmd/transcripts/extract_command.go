package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ndhoang91/vtt-transcripts/pkg/captureurl"
)

func newExtractIDCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "extract-id <url>",
		Short: "Extract the video ID and segment filename from a capture URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			videoID, filename, err := captureurl.Extract(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "video_id: %s\n", videoID)
			if filename == "" {
				fmt.Fprintln(out, "filename: (none)")
				return nil
			}
			fmt.Fprintf(out, "filename: %s\n", filename)
			if !strings.HasPrefix(filename, videoID) {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: filename does not start with video_id\n")
			}
			return nil
		},
	}
}
