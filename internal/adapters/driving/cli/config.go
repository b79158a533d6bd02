package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/hyperless/internal/core/domain"
)

var showDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change parser, excerpt, chunker and watch settings.

Settings are stored in config.toml in the configuration directory.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings as TOML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting. List values are comma separated, e.g.

  hyperless config set parser.opaque_tags my-code,x-raw`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the setting keys",
	Args:  cobra.NoArgs,
	RunE:  runConfigKeys,
}

var configWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Prompt for every setting in turn. An empty answer keeps the current value.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigWizard,
}

func init() {
	configShowCmd.Flags().BoolVar(&showDefaults, "defaults", false, "show the default settings")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configKeysCmd)
	configCmd.AddCommand(configWizardCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	settings := settingsService.GetDefaults()
	if !showDefaults {
		current, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		settings = *current
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("Set %s\n", args[0])
	return nil
}

func runConfigKeys(cmd *cobra.Command, _ []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	values, err := currentValues()
	if err != nil {
		return err
	}
	for _, key := range settingsService.Keys() {
		cmd.Printf("%-22s %s\n", key, values[key])
	}
	return nil
}

func runConfigWizard(cmd *cobra.Command, _ []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	cmd.Println("hyperless settings wizard")
	cmd.Println("=========================")
	cmd.Println("Press enter to keep the value in brackets.")
	cmd.Println()

	values, err := currentValues()
	if err != nil {
		return err
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	changed := 0
	for _, key := range settingsService.Keys() {
		cmd.Printf("%s [%s]: ", key, values[key])
		input := readLine(reader)
		if input == "" || input == values[key] {
			continue
		}
		if err := settingsService.Set(key, input); err != nil {
			cmd.Printf("  %v\n", err)
			continue
		}
		changed++
	}

	cmd.Printf("\n%d settings changed.\n", changed)
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// currentValues returns the current settings keyed by "section.name",
// formatted the way Set accepts them.
func currentValues() (map[string]string, error) {
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return flattenSettings(settings)
}

// flattenSettings round-trips settings through TOML into a flat map.
func flattenSettings(settings *domain.Settings) (map[string]string, error) {
	data, err := toml.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}

	var tree map[string]map[string]any
	if err := toml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	out := make(map[string]string)
	for section, fields := range tree {
		for name, value := range fields {
			out[section+"."+name] = formatValue(value)
		}
	}
	return out, nil
}

func formatValue(value any) string {
	if items, ok := value.([]any); ok {
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(value)
}
