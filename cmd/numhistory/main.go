// Command numhistory shows the attempts recorded by the readnum programs' -history flag.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/aerth/readnum/history"
	"github.com/aerth/readnum/ncode"
	"github.com/aerth/readnum/session"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var path string
	root := &cobra.Command{
		Use:          "numhistory",
		Short:        "Inspect recorded number reading attempts",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&path, "file", "f", "readnum.db", "history `file`")
	open := func() (*history.Store, error) {
		return history.Open(path)
	}
	root.AddCommand(newListCmd(open), newStatsCmd(open), newClearCmd(open))
	return root
}

type opener func() (*history.Store, error)

func newListCmd(open opener) *cobra.Command {
	var (
		f      history.Filter
		format string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List attempts, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.Program != "" {
				if _, ok := session.ProgramByName(f.Program); !ok {
					return fmt.Errorf("unknown program %q", f.Program)
				}
			}
			store, err := open()
			if err != nil {
				return err
			}
			defer store.Close()
			attempts, err := store.List(f)
			if err != nil {
				return err
			}
			return writeAttempts(cmd.OutOrStdout(), format, attempts)
		},
	}
	cmd.Flags().StringVarP(&f.Program, "program", "p", "", "only attempts from this program")
	cmd.Flags().BoolVar(&f.FailedOnly, "failed", false, "only failed attempts")
	cmd.Flags().IntVarP(&f.Limit, "limit", "n", 0, "only the newest n attempts")
	cmd.Flags().StringVarP(&format, "output", "o", "text", "output format: text, json or yaml")
	return cmd
}

func writeAttempts(w io.Writer, format string, attempts []history.Attempt) error {
	switch format {
	case "text":
		if len(attempts) == 0 {
			return nil
		}
		_, err := fmt.Fprintln(w, strings.Join(ncode.TwistFormat(attempts, history.Attempt.String), "\n"))
		return err
	case "json":
		if attempts == nil {
			attempts = []history.Attempt{}
		}
		_, err := fmt.Fprintln(w, string(ncode.JsonIndent(attempts)))
		return err
	case "yaml":
		return yaml.NewEncoder(w).Encode(attempts)
	}
	return fmt.Errorf("unknown output format %q", format)
}

func newStatsCmd(open opener) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Count attempts and failures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := open()
			if err != nil {
				return err
			}
			defer store.Close()
			st, err := store.Stats()
			if err != nil {
				return err
			}
			return writeStats(cmd.OutOrStdout(), format, st)
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", "text", "output format: text or yaml")
	return cmd
}

func writeStats(w io.Writer, format string, st history.Stats) error {
	switch format {
	case "yaml":
		return yaml.NewEncoder(w).Encode(st)
	case "text":
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	fmt.Fprintf(w, "total\t%d\nfailed\t%d\n", st.Total, st.Failed)
	programs := make([]string, 0, len(st.ByProgram))
	for name := range st.ByProgram {
		programs = append(programs, name)
	}
	sort.Strings(programs)
	for _, name := range programs {
		fmt.Fprintf(w, "%s\t%d\n", name, st.ByProgram[name])
	}
	return nil
}

func newClearCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every recorded attempt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := open()
			if err != nil {
				return err
			}
			defer store.Close()
			return store.Clear()
		},
	}
}
