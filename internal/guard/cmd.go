package guard

import (
	"fmt"
	"strconv"

	"github.com/compose-network/filedemo/internal/infra/filesystem"
	"github.com/spf13/cobra"
)

var (
	CMD = &cobra.Command{
		Use:   "guard",
		Short: "Run a single guarded operation and print its outcome",
	}

	divideCmd = &cobra.Command{
		Use:   "divide <numerator> <denominator>",
		Short: "Divide two operands; non-numeric operands are kept as text",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := Divide(parseOperand(args[0]), parseOperand(args[1]))
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	indexCmd = &cobra.Command{
		Use:   "index <index>",
		Short: "Look up an element of --items by index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := cmd.Flags().GetStringSlice("items")
			if err != nil {
				return fmt.Errorf("failed to read items flag: %w", err)
			}
			items := make([]any, len(raw))
			for i, item := range raw {
				items[i] = parseOperand(item)
			}

			result := ElementAt(items, parseOperand(args[0]))
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	readCmd = &cobra.Command{
		Use:   "read <path>",
		Short: "Read a file through a scoped handle and print its length",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := NewScopedReader(filesystem.NewOS())
			reader.Closed = func(path string) {
				fmt.Fprintf(cmd.OutOrStdout(), "File handle for '%s' closed.\n", path)
			}
			fmt.Fprintln(cmd.OutOrStdout(), reader.ReadLength(args[0]))
			return nil
		},
	}
)

func init() {
	indexCmd.Flags().StringSlice("items", []string{"1", "2", "3", "4", "5"}, "Sequence to index into")

	CMD.AddCommand(divideCmd)
	CMD.AddCommand(indexCmd)
	CMD.AddCommand(readCmd)
}

// parseOperand turns a command line argument into an int64 or float64
// when it parses as one, and leaves it as a string otherwise.
func parseOperand(arg string) any {
	if i, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(arg, 64); err == nil {
		return f
	}
	return arg
}
