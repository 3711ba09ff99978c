package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/exeq-dev/exeq-go"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func validFormat(f string) bool {
	return f == formatTable || f == formatJSON || f == formatYAML
}

var (
	okLabel      = color.New(color.FgGreen)
	pendingLabel = color.New(color.FgYellow)
	failedLabel  = color.New(color.FgRed)
	doneLabel    = color.New(color.Faint)
)

// printer writes command results in the selected output format.
type printer struct {
	w      io.Writer
	format string
}

// structured writes v as JSON or YAML. It reports false for table output.
func (p *printer) structured(v any) (bool, error) {
	switch p.format {
	case formatJSON:
		return true, printJSON(p.w, v)
	case formatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	}
	return false, nil
}

func (p *printer) sessions(sessions []*exeq.Session) error {
	if ok, err := p.structured(sessions); ok {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(p.w, "No sessions found.")
		return nil
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tCREATED\tEXPIRES")
	for _, s := range sessions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.ID, statusLabel(s.Status), formatTime(&s.CreatedAt), formatTime(s.ExpiresAt))
	}
	return tw.Flush()
}

func (p *printer) session(s *exeq.Session) error {
	if ok, err := p.structured(s); ok {
		return err
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", s.ID)
	fmt.Fprintf(tw, "Status:\t%s\n", statusLabel(s.Status))
	fmt.Fprintf(tw, "CDP URL:\t%s\n", s.CDPURL)
	fmt.Fprintf(tw, "VNC URL:\t%s\n", s.VNCURL)
	fmt.Fprintf(tw, "VNC Password:\t%s\n", s.VNCPassword)
	fmt.Fprintf(tw, "Created:\t%s\n", formatTime(&s.CreatedAt))
	fmt.Fprintf(tw, "Expires:\t%s\n", formatTime(s.ExpiresAt))
	if s.SessionRecordingEnabled != nil {
		fmt.Fprintf(tw, "Recording:\t%t\n", *s.SessionRecordingEnabled)
	}
	if s.SessionRecordingURL != nil {
		fmt.Fprintf(tw, "Recording URL:\t%s\n", *s.SessionRecordingURL)
	}
	if s.ResidentialProxyEnabled != nil {
		fmt.Fprintf(tw, "Residential Proxy:\t%t\n", *s.ResidentialProxyEnabled)
	}
	return tw.Flush()
}

func (p *printer) profiles(profiles []*exeq.Profile) error {
	if ok, err := p.structured(profiles); ok {
		return err
	}
	if len(profiles) == 0 {
		fmt.Fprintln(p.w, "No profiles found.")
		return nil
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCREATED")
	for _, pr := range profiles {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", pr.ID, pr.Name, formatTime(&pr.CreatedAt))
	}
	return tw.Flush()
}

func (p *printer) profile(pr *exeq.Profile) error {
	if ok, err := p.structured(pr); ok {
		return err
	}
	return p.profiles([]*exeq.Profile{pr})
}

// message prints a one-line result, or {"status": msg} in structured formats.
func (p *printer) message(id, msg string) error {
	if ok, err := p.structured(map[string]string{"id": id, "status": msg}); ok {
		return err
	}
	okLabel.Fprintf(p.w, "%s %s\n", id, msg)
	return nil
}

func statusLabel(s exeq.SessionStatus) string {
	switch s {
	case exeq.SessionStatusActive:
		return okLabel.Sprint(s)
	case exeq.SessionStatusFailed:
		return failedLabel.Sprint(s)
	case exeq.SessionStatusStopped:
		return doneLabel.Sprint(s)
	default:
		return pendingLabel.Sprint(s)
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format(time.RFC3339)
}
