package printing

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Printer is one spooler destination.
type Printer struct {
	Name      string `json:"name"`
	IsDefault bool   `json:"isDefault"`
}

// Spooler submits finished PDFs to printers. The implementation shells
// out to CUPS (lp, lpstat), which handles the actual queueing.
type Spooler interface {
	Printers(ctx context.Context) ([]Printer, error)
	Print(ctx context.Context, path, printerName string) error
}

type cupsSpooler struct {
	log *zap.Logger
}

func NewSpooler(log *zap.Logger) Spooler {
	return &cupsSpooler{log: log.Named("printing.spooler")}
}

func (s *cupsSpooler) Printers(ctx context.Context) ([]Printer, error) {
	out, err := exec.CommandContext(ctx, "lpstat", "-p", "-d").CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("lpstat: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return parseLpstat(string(out)), nil
}

func (s *cupsSpooler) Print(ctx context.Context, path, printerName string) error {
	args := []string{}
	if printerName != "" {
		args = append(args, "-d", printerName)
	}
	args = append(args, path)

	out, err := exec.CommandContext(ctx, "lp", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("lp: %w: %s", err, strings.TrimSpace(string(out)))
	}
	s.log.Info("spooled print job",
		zap.String("printer", printerName),
		zap.String("response", strings.TrimSpace(string(out))),
	)
	return nil
}

// parseLpstat reads "lpstat -p -d" output. Printer lines look like
// "printer HP_LaserJet is idle." and the trailing default line like
// "system default destination: HP_LaserJet".
func parseLpstat(out string) []Printer {
	var printers []Printer
	var defaultName string

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if name, ok := strings.CutPrefix(line, "printer "); ok {
			fields := strings.Fields(name)
			if len(fields) > 0 {
				printers = append(printers, Printer{Name: fields[0]})
			}
			continue
		}
		if rest, ok := strings.CutPrefix(line, "system default destination:"); ok {
			defaultName = strings.TrimSpace(rest)
		}
	}

	for i := range printers {
		printers[i].IsDefault = printers[i].Name == defaultName
	}
	return printers
}
