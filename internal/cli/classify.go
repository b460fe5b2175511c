package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pacwatch/pacwatch/internal/firms"
	"github.com/pacwatch/pacwatch/internal/pipeline"
)

var classifyOrg string

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify <name>",
	Short: "Classify a committee or employer name against the rule tables",
	Long: `Classify runs one name through the financial-sector rule tables and
prints the result. Useful for checking why a committee or employer was or
was not counted.

Example:
  pacwatch classify "GOLDMAN SACHS PAC"
  pacwatch classify "EMPLOYEES FUND" --org "WELLS FARGO & COMPANY"`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().StringVar(&classifyOrg, "org", "", "connected organization (committee master field)")
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	name := args[0]
	res := pipeline.New(cfg).ClassifyName(name, classifyOrg)

	fmt.Printf("Name:        %s\n", name)
	if classifyOrg != "" {
		fmt.Printf("Org:         %s\n", classifyOrg)
	}
	fmt.Printf("Normalized:  %s\n", firms.Normalize(name))
	fmt.Printf("Financial:   %t\n", res.IsFinancial)
	if res.IsFinancial {
		fmt.Printf("Sector:      %s\n", res.Sector)
		fmt.Printf("Subsector:   %s\n", res.Subsector)
		fmt.Printf("Confidence:  %s\n", res.Confidence)
		fmt.Printf("Match type:  %s\n", res.MatchType)
	}
	return nil
}
