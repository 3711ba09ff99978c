package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/exeq-dev/exeq-go"
)

type versionInfo struct {
	Version        string `json:"version" yaml:"version"`
	APIVersion     string `json:"apiVersion" yaml:"apiVersion"`
	SupportedRange string `json:"supportedRange" yaml:"supportedRange"`
	Server         string `json:"serverVersion,omitempty" yaml:"serverVersion,omitempty"`
	Compatibility  string `json:"compatibility,omitempty" yaml:"compatibility,omitempty"`
}

func (a *app) newVersionCmd() *cobra.Command {
	var serverVersion string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the SDK version and supported API range",
		Long: `Print the SDK version and supported API range.

With --check, also report whether the given server version is supported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := versionInfo{
				Version:        exeq.Version,
				APIVersion:     exeq.APIVersion,
				SupportedRange: exeq.APIVersionRange,
			}

			var result exeq.CompatibilityResult
			if serverVersion != "" {
				result = exeq.CheckCompatibility(serverVersion)
				info.Server = serverVersion
				info.Compatibility = result.Status.String()
			}

			p := a.printer(cmd)
			if ok, err := p.structured(info); ok {
				return err
			}

			fmt.Fprintf(p.w, "exeq CLI %s\n", info.Version)
			fmt.Fprintf(p.w, "API version: %s (supports %s)\n", info.APIVersion, info.SupportedRange)
			if serverVersion == "" {
				return nil
			}
			if result.IsCompatible() {
				okLabel.Fprintln(p.w, result.Message)
				return nil
			}
			failedLabel.Fprintln(p.w, result.Message)
			return fmt.Errorf("server version %s is %s", serverVersion, result.Status)
		},
	}

	cmd.Flags().StringVar(&serverVersion, "check", "", "Server version to check for compatibility")
	return cmd
}
