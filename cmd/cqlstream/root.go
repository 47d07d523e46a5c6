package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gocql/gocql"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arloliu/cqlstream"
	"github.com/arloliu/cqlstream/adapter/cql"
	v1 "github.com/arloliu/cqlstream/adapter/cql/v1"
)

type options struct {
	contactPoints []string
	keyspace      string
	pageSize      int
	consistency   string
	format        string
	timeout       time.Duration
	verbose       bool
}

// Execute runs the CLI.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "cqlstream [flags] <statement>",
		Short: "Execute a CQL query and stream its rows as structured records",
		Long: `cqlstream executes a CQL SELECT statement against a Cassandra cluster and
streams the result set one page at a time, rendering each row as a structured
record with lossless type conversion.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd.Context(), opts, args[0], cmd.OutOrStdout())
		},
	}

	bindFlags(cmd.Flags(), opts)

	return cmd
}

func bindFlags(fs *pflag.FlagSet, o *options) {
	fs.StringSliceVar(&o.contactPoints, "contact-points", []string{cqlstream.DefaultContactPoint},
		"cluster contact points")
	fs.StringVar(&o.keyspace, "keyspace", "", "keyspace to use")
	fs.IntVar(&o.pageSize, "page-size", cqlstream.DefaultPageSize, "rows fetched per page")
	fs.StringVar(&o.consistency, "consistency", "quorum",
		"consistency level (any, one, two, three, quorum, all, local-quorum, each-quorum, local-one)")
	fs.StringVar(&o.format, "format", "json", "output format (json, msgpack)")
	fs.DurationVar(&o.timeout, "timeout", 30*time.Second, "query timeout covering all page fetches")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")
}

func parseConsistency(s string) (cql.Consistency, error) {
	switch strings.ToLower(s) {
	case "any":
		return cql.Any, nil
	case "one":
		return cql.One, nil
	case "two":
		return cql.Two, nil
	case "three":
		return cql.Three, nil
	case "quorum":
		return cql.Quorum, nil
	case "all":
		return cql.All, nil
	case "local-quorum":
		return cql.LocalQuorum, nil
	case "each-quorum":
		return cql.EachQuorum, nil
	case "local-one":
		return cql.LocalOne, nil
	default:
		return 0, fmt.Errorf("unknown consistency level %q", s)
	}
}

func runQuery(ctx context.Context, opts *options, stmt string, out io.Writer) error {
	consistency, err := parseConsistency(opts.consistency)
	if err != nil {
		return err
	}

	renderer, err := newRenderer(opts.format, out)
	if err != nil {
		return err
	}

	logger, flushLogs, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer flushLogs()

	cluster := gocql.NewCluster(opts.contactPoints...)
	cluster.Keyspace = opts.keyspace
	cluster.Consistency = v1.ToGocqlConsistency(consistency)
	cluster.Timeout = opts.timeout

	session, err := cluster.CreateSession()
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", strings.Join(opts.contactPoints, ","), err)
	}
	defer session.Close()

	exec := cqlstream.NewExecutor(v1.WrapSession(session),
		cqlstream.WithPageSize(opts.pageSize),
		cqlstream.WithContactPoints(opts.contactPoints...),
		cqlstream.WithConsistency(consistency),
		cqlstream.WithLogger(logger),
	)

	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	stream, err := exec.Execute(ctx, stmt)
	if err != nil {
		return err
	}
	defer stream.Close()

	for stream.Next() {
		if err := renderer.Render(stream.Record()); err != nil {
			return err
		}
	}

	for _, warning := range stream.Warnings() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}

	if err := stream.Err(); err != nil {
		return err
	}

	return renderer.Flush()
}
