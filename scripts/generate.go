//go:build ignore

// Regenerates the go-swagger client under generated/ from the published
// exeq API definition.
//
//	go run scripts/generate.go
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

const (
	configFile     = "exeq.yaml"
	versionFile    = "version.go"
	swaggerURLTmpl = "https://api.exeq.dev/docs/v%s/swagger.yaml"
	outputDir      = "generated"
	clientName     = "exeq-api"
)

type Config struct {
	APIVersion      string `yaml:"apiVersion"`
	APIVersionRange string `yaml:"apiVersionRange"`
	// SwaggerURL overrides the URL derived from APIVersion.
	SwaggerURL string `yaml:"swaggerUrl"`
}

// swaggerInfo is the part of the swagger document the generator checks.
type swaggerInfo struct {
	Info struct {
		Version string `yaml:"version"`
	} `yaml:"info"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := readConfig(configFile)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	if err := checkVersionFile(versionFile, cfg); err != nil {
		return err
	}

	fmt.Printf("Target API version: %s (range %s)\n", cfg.APIVersion, cfg.APIVersionRange)

	swaggerURL := cfg.SwaggerURL
	if swaggerURL == "" {
		swaggerURL = fmt.Sprintf(swaggerURLTmpl, cfg.APIVersion)
	}
	fmt.Printf("Fetching: %s\n", swaggerURL)

	swaggerPath := filepath.Join(outputDir, "swagger.yaml")
	if err := downloadFile(swaggerURL, swaggerPath); err != nil {
		return fmt.Errorf("downloading swagger: %w", err)
	}

	if err := checkSwaggerVersion(swaggerPath, cfg); err != nil {
		return err
	}

	fmt.Println("Generating client...")
	if err := generateClient(swaggerPath); err != nil {
		return fmt.Errorf("generating client: %w", err)
	}

	fmt.Println("Done!")
	return nil
}

func readConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.APIVersion == "" || cfg.APIVersionRange == "" {
		return nil, fmt.Errorf("%s: apiVersion and apiVersionRange are required", path)
	}
	return &cfg, nil
}

var constRe = regexp.MustCompile(`(?m)^const (APIVersion|APIVersionRange) = "([^"]*)"`)

// checkVersionFile fails when the constants in version.go drift from the
// generator config.
func checkVersionFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	want := map[string]string{
		"APIVersion":      cfg.APIVersion,
		"APIVersionRange": cfg.APIVersionRange,
	}
	for _, m := range constRe.FindAllStringSubmatch(string(data), -1) {
		if want[m[1]] != m[2] {
			return fmt.Errorf("%s: %s is %q but %s says %q", path, m[1], m[2], configFile, want[m[1]])
		}
		delete(want, m[1])
	}
	for name := range want {
		return fmt.Errorf("%s: constant %s not found", path, name)
	}
	return nil
}

// checkSwaggerVersion verifies the downloaded definition is inside the
// supported range.
func checkSwaggerVersion(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var doc swaggerInfo
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing swagger: %w", err)
	}

	v, err := semver.NewVersion(doc.Info.Version)
	if err != nil {
		return fmt.Errorf("swagger info.version %q: %w", doc.Info.Version, err)
	}
	c, err := semver.NewConstraint(cfg.APIVersionRange)
	if err != nil {
		return fmt.Errorf("apiVersionRange: %w", err)
	}
	if !c.Check(v) {
		return fmt.Errorf("swagger version %s is outside %s", v, cfg.APIVersionRange)
	}
	return nil
}

func downloadFile(url, dest string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}

func generateClient(swaggerPath string) error {
	cmd := exec.Command("swagger", "generate", "client",
		"-f", swaggerPath,
		"-t", outputDir,
		"-A", clientName,
		"--skip-validation",
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
